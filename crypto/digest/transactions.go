// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package digest

import (
	"github.com/orbs-network/orbs-incrementer/crypto/hash"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

// RawMessage is anything with a canonical byte encoding that can be hashed and signed.
type RawMessage interface {
	Raw() []byte
}

func CalcTxHash(transaction RawMessage) primitives.Sha256 {
	return hash.CalcSha256(transaction.Raw())
}
