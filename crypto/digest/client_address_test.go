// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package digest

import (
	"encoding/hex"
	"github.com/orbs-network/orbs-incrementer/crypto/hash"
	"github.com/orbs-network/orbs-incrementer/test/crypto/keys"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCalcClientAddressOfEd25519PublicKey(t *testing.T) {
	publicKey := keys.Ed25519KeyPairForTests(0).PublicKey()

	address, err := CalcClientAddressOfEd25519PublicKey(publicKey)
	require.NoError(t, err)
	require.Len(t, address, CLIENT_ADDRESS_SIZE_BYTES)

	expected := hash.CalcSha256(publicKey)[CLIENT_ADDRESS_SHA256_OFFSET:]
	require.Equal(t, hex.EncodeToString(expected), hex.EncodeToString(address))
}

func TestCalcClientAddressOfEd25519PublicKey_DifferentKeysDifferentAddresses(t *testing.T) {
	a1, err := CalcClientAddressOfEd25519PublicKey(keys.Ed25519KeyPairForTests(0).PublicKey())
	require.NoError(t, err)
	a2, err := CalcClientAddressOfEd25519PublicKey(keys.Ed25519KeyPairForTests(1).PublicKey())
	require.NoError(t, err)

	require.NotEqual(t, a1, a2)
}

func TestCalcClientAddressOfEd25519PublicKey_InvalidKey(t *testing.T) {
	_, err := CalcClientAddressOfEd25519PublicKey([]byte{0x01, 0x02})
	require.Error(t, err)
}
