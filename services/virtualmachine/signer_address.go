// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package virtualmachine

import (
	"github.com/orbs-network/orbs-incrementer/crypto/digest"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

func getSignerAddress(transaction *Transaction) (primitives.ClientAddress, error) {
	address, err := digest.CalcClientAddressOfEd25519PublicKey(transaction.SignerPublicKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed deriving signer address")
	}
	return address, nil
}
