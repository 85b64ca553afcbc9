// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package incrementer

import (
	"encoding/hex"
	"github.com/pkg/errors"
)

const IDENTITY_SIZE_BYTES = 20

// Identity is the address of a caller as supplied by the host environment.
type Identity [IDENTITY_SIZE_BYTES]byte

func IdentityFromBytes(address []byte) (Identity, error) {
	var id Identity
	if len(address) != IDENTITY_SIZE_BYTES {
		return id, errors.Errorf("caller address must be %d bytes but has %d", IDENTITY_SIZE_BYTES, len(address))
	}
	copy(id[:], address)
	return id, nil
}

func (id Identity) String() string {
	return hex.EncodeToString(id[:])
}
