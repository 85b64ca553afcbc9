// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package keys

import (
	"github.com/orbs-network/orbs-incrementer/crypto/keys"
)

// private keys only; each one carries its public key in the trailing 32 bytes
var ed25519PrivateKeys = []string{
	"93e919986a22477fda016789cca30cb841a135650938714f85f0000a65076bd4dfc06c5be24a67adee80b35ab4f147bb1a35c55ff85eda69f40ef827bddec173",
	"3b24b5f9e6b1371c3b5de2e402a96930eeafe52111bb4a1b003e5ecad3fab53892d469d7c004cc0b24a192d9457836bf38effa27536627ef60718b00b0f33152",
	"2c72df84be2b994c32a3f4ded0eab901debd3f3e13721a59eed00fbd1da4cc00a899b318e65915aa2de02841eeb72fe51fddad96014b73800ca788a547f8cce0",
	"163987afcee69969cae3528161d84e32f76b09bbf0dd77dd704e5cb915c7d56f58e7ed8169a151602b1349c990c84ca2fb2f62eb17378f9a94e49552fbafb9d8",
	"74b63e4f6f908ac42c1b4c7b3b6028c7b665df4375c1acbf4dce2b1b91aefc5b23f97918acf48728d3f25a39a5f091a1a9574c52ccb20b9bad81306bd2af4631",
}

// Ed25519KeyPairForTests returns one of a fixed set of key pairs so test identities are stable across runs.
func Ed25519KeyPairForTests(setIndex int) *keys.Ed25519KeyPair {
	if setIndex < 0 || setIndex >= len(ed25519PrivateKeys) {
		panic("no test key pair at this index")
	}

	keyPair, err := keys.Ed25519KeyPairFromPrivateKeyHex(ed25519PrivateKeys[setIndex])
	if err != nil {
		panic(err)
	}
	return keyPair
}
