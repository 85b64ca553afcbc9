// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package keys

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGenerateEd25519Key(t *testing.T) {
	keyPair, err := GenerateEd25519Key()
	require.NoError(t, err)
	require.Len(t, keyPair.PublicKey(), ED25519_PUBLIC_KEY_SIZE_BYTES)
	require.Len(t, keyPair.PrivateKey(), ED25519_PRIVATE_KEY_SIZE_BYTES)

	other, err := GenerateEd25519Key()
	require.NoError(t, err)
	require.NotEqual(t, keyPair.PublicKey(), other.PublicKey(), "keys should be random")
}

func TestEd25519KeyPairFromPrivateKeyDerivesPublicKey(t *testing.T) {
	generated, err := GenerateEd25519Key()
	require.NoError(t, err)

	restored, err := Ed25519KeyPairFromPrivateKey(generated.PrivateKey())
	require.NoError(t, err)
	require.Equal(t, generated.PublicKey(), restored.PublicKey())
}

func TestEd25519KeyPairFromPrivateKeyHex(t *testing.T) {
	keyPair, err := Ed25519KeyPairFromPrivateKeyHex("93e919986a22477fda016789cca30cb841a135650938714f85f0000a65076bd4dfc06c5be24a67adee80b35ab4f147bb1a35c55ff85eda69f40ef827bddec173")
	require.NoError(t, err)
	require.Equal(t, "dfc06c5be24a67adee80b35ab4f147bb1a35c55ff85eda69f40ef827bddec173", keyPair.PublicKeyHex())

	_, err = Ed25519KeyPairFromPrivateKeyHex("zz")
	require.Error(t, err, "not hex")

	_, err = Ed25519KeyPairFromPrivateKeyHex("abcd")
	require.Error(t, err, "too short")
}
