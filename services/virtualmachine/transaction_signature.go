// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package virtualmachine

import (
	"github.com/orbs-network/orbs-incrementer/crypto/signature"
	"github.com/pkg/errors"
)

var ErrInvalidSignature = errors.New("transaction signature is invalid")

func verifyTransactionSignature(signedTransaction *SignedTransaction) error {
	tx := signedTransaction.Transaction
	if !signature.VerifyEd25519(tx.SignerPublicKey, tx.Raw(), signedTransaction.Signature) {
		return ErrInvalidSignature
	}
	return nil
}
