// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package builders

import (
	cryptoKeys "github.com/orbs-network/orbs-incrementer/crypto/keys"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository/Incrementer"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-incrementer/services/virtualmachine"
	"github.com/orbs-network/orbs-incrementer/test/crypto/keys"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

/// Test builders for: virtualmachine.SignedTransaction, virtualmachine.Query

type transaction struct {
	signer      primitives.Ed25519PrivateKey
	transaction *virtualmachine.Transaction
}

func Transaction() *transaction {
	keyPair := keys.Ed25519KeyPairForTests(1)
	return &transaction{
		signer: keyPair.PrivateKey(),
		transaction: &virtualmachine.Transaction{
			VirtualChainId:  primitives.VirtualChainId(42),
			ContractName:    incrementer.CONTRACT_NAME,
			MethodName:      incrementer.METHOD_INC,
			InputArguments:  []*types.Argument{types.Int32Argument(1)},
			SignerPublicKey: keyPair.PublicKey(),
			Timestamp:       virtualmachine.UniqueTimestamp(),
		},
	}
}

func (t *transaction) Build() *virtualmachine.SignedTransaction {
	signedTransaction, err := virtualmachine.SignTransaction(t.transaction, t.signer)
	if err != nil {
		panic(err)
	}
	return signedTransaction
}

func (t *transaction) WithSigner(keyPair *cryptoKeys.Ed25519KeyPair) *transaction {
	t.signer = keyPair.PrivateKey()
	t.transaction.SignerPublicKey = keyPair.PublicKey()
	return t
}

func (t *transaction) WithMethod(contractName primitives.ContractName, methodName primitives.MethodName) *transaction {
	t.transaction.ContractName = contractName
	t.transaction.MethodName = methodName
	t.transaction.InputArguments = nil
	return t
}

func (t *transaction) WithArgs(args ...interface{}) *transaction {
	t.transaction.InputArguments = Arguments(args...)
	return t
}

func (t *transaction) WithVirtualChainId(virtualChainId primitives.VirtualChainId) *transaction {
	t.transaction.VirtualChainId = virtualChainId
	return t
}

func (t *transaction) WithInvalidSignature() *invalidTransaction {
	return &invalidTransaction{t}
}

type invalidTransaction struct {
	*transaction
}

func (t *invalidTransaction) Build() *virtualmachine.SignedTransaction {
	signedTransaction := t.transaction.Build()
	signedTransaction.Signature[0] ^= 0xff
	return signedTransaction
}

type query struct {
	query *virtualmachine.Query
}

func Query() *query {
	return &query{
		query: &virtualmachine.Query{
			ContractName:  incrementer.CONTRACT_NAME,
			MethodName:    incrementer.METHOD_GET,
			CallerAddress: ClientAddressForEd25519SignerForTests(1),
		},
	}
}

func (q *query) WithMethod(contractName primitives.ContractName, methodName primitives.MethodName) *query {
	q.query.ContractName = contractName
	q.query.MethodName = methodName
	q.query.InputArguments = nil
	return q
}

func (q *query) WithArgs(args ...interface{}) *query {
	q.query.InputArguments = Arguments(args...)
	return q
}

func (q *query) WithCaller(address primitives.ClientAddress) *query {
	q.query.CallerAddress = address
	return q
}

func (q *query) Build() *virtualmachine.Query {
	return q.query
}
