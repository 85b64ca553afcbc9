// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package signature

import (
	"github.com/orbs-network/orbs-incrementer/test/crypto/keys"
	"github.com/stretchr/testify/require"
	"testing"
)

var someDataToSign = []byte("this is what we want to sign")

func TestSignEd25519(t *testing.T) {
	kp := keys.Ed25519KeyPairForTests(1)

	sig, err := SignEd25519(kp.PrivateKey(), someDataToSign)
	require.NoError(t, err)
	require.Len(t, sig, ED25519_SIGNATURE_SIZE_BYTES)
	require.True(t, VerifyEd25519(kp.PublicKey(), someDataToSign, sig), "verification failed")
}

func TestSignEd25519InvalidPrivateKey(t *testing.T) {
	_, err := SignEd25519([]byte{0}, someDataToSign)
	require.Error(t, err, "sign succeeded with invalid private key")
}

func TestVerifyEd25519WrongSigner(t *testing.T) {
	sig, err := SignEd25519(keys.Ed25519KeyPairForTests(1).PrivateKey(), someDataToSign)
	require.NoError(t, err)

	require.False(t, VerifyEd25519(keys.Ed25519KeyPairForTests(2).PublicKey(), someDataToSign, sig))
}

func TestVerifyEd25519TamperedData(t *testing.T) {
	kp := keys.Ed25519KeyPairForTests(1)
	sig, err := SignEd25519(kp.PrivateKey(), someDataToSign)
	require.NoError(t, err)

	require.False(t, VerifyEd25519(kp.PublicKey(), []byte("this is not what we signed"), sig))
}

func TestVerifyEd25519InvalidPublicKey(t *testing.T) {
	require.NotPanics(t, func() {
		require.False(t, VerifyEd25519([]byte{0x01}, someDataToSign, make([]byte, ED25519_SIGNATURE_SIZE_BYTES)))
	})
}
