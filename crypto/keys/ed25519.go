// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package keys

import (
	"encoding/hex"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

const (
	ED25519_PUBLIC_KEY_SIZE_BYTES  = 32
	ED25519_PRIVATE_KEY_SIZE_BYTES = 64
)

// Ed25519KeyPair signs transactions; the public key identifies the caller
type Ed25519KeyPair struct {
	publicKey  primitives.Ed25519PublicKey
	privateKey primitives.Ed25519PrivateKey
}

func NewEd25519KeyPair(publicKey primitives.Ed25519PublicKey, privateKey primitives.Ed25519PrivateKey) *Ed25519KeyPair {
	return &Ed25519KeyPair{publicKey, privateKey}
}

// Ed25519KeyPairFromPrivateKey derives the public half, which ed25519 keeps in the trailing bytes of the private key
func Ed25519KeyPairFromPrivateKey(privateKey primitives.Ed25519PrivateKey) (*Ed25519KeyPair, error) {
	if len(privateKey) != ED25519_PRIVATE_KEY_SIZE_BYTES {
		return nil, errors.Errorf("ed25519 private key must be %d bytes, got %d", ED25519_PRIVATE_KEY_SIZE_BYTES, len(privateKey))
	}
	publicKey, ok := ed25519.PrivateKey(privateKey).Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("could not derive ed25519 public key")
	}
	return NewEd25519KeyPair(primitives.Ed25519PublicKey(publicKey), privateKey), nil
}

func Ed25519KeyPairFromPrivateKeyHex(privateKeyHex string) (*Ed25519KeyPair, error) {
	privateKey, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, errors.Wrap(err, "ed25519 private key is not valid hex")
	}
	return Ed25519KeyPairFromPrivateKey(privateKey)
}

func (k *Ed25519KeyPair) PublicKey() primitives.Ed25519PublicKey {
	return k.publicKey
}

func (k *Ed25519KeyPair) PrivateKey() primitives.Ed25519PrivateKey {
	return k.privateKey
}

func (k *Ed25519KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(k.publicKey)
}

func GenerateEd25519Key() (*Ed25519KeyPair, error) {
	pub, pri, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create new key pair from random source")
	}
	return NewEd25519KeyPair(primitives.Ed25519PublicKey(pub), primitives.Ed25519PrivateKey(pri)), nil
}
