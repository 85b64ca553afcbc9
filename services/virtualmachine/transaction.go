// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package virtualmachine

import (
	"bytes"
	"encoding/binary"
	"github.com/orbs-network/orbs-incrementer/crypto/signature"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"sync/atomic"
	"time"
)

type Transaction struct {
	VirtualChainId  primitives.VirtualChainId
	ContractName    primitives.ContractName
	MethodName      primitives.MethodName
	InputArguments  []*types.Argument
	SignerPublicKey primitives.Ed25519PublicKey
	Timestamp       primitives.TimestampNano
}

// Raw is the canonical encoding that is hashed and signed
func (t *Transaction) Raw() []byte {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, uint32(t.VirtualChainId))
	types.WriteLengthPrefixed(buf, []byte(t.ContractName))
	types.WriteLengthPrefixed(buf, []byte(t.MethodName))
	types.WriteLengthPrefixed(buf, types.ArgumentsRaw(t.InputArguments))
	types.WriteLengthPrefixed(buf, t.SignerPublicKey)
	_ = binary.Write(buf, binary.BigEndian, uint64(t.Timestamp))
	return buf.Bytes()
}

var lastTimestamp int64

// UniqueTimestamp returns the current time, moved forward when needed so that no two calls in the process
// return the same value. Two transactions that differ only in timestamp then never share a tx hash.
func UniqueTimestamp() primitives.TimestampNano {
	for {
		last := atomic.LoadInt64(&lastTimestamp)
		now := time.Now().UnixNano()
		if now <= last {
			now = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastTimestamp, last, now) {
			return primitives.TimestampNano(now)
		}
	}
}

type SignedTransaction struct {
	Transaction *Transaction
	Signature   primitives.Ed25519Sig
}

func (s *SignedTransaction) Raw() []byte {
	buf := &bytes.Buffer{}
	types.WriteLengthPrefixed(buf, s.Transaction.Raw())
	types.WriteLengthPrefixed(buf, s.Signature)
	return buf.Bytes()
}

func SignTransaction(transaction *Transaction, privateKey primitives.Ed25519PrivateKey) (*SignedTransaction, error) {
	sig, err := signature.SignEd25519(privateKey, transaction.Raw())
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{
		Transaction: transaction,
		Signature:   sig,
	}, nil
}

type Query struct {
	ContractName   primitives.ContractName
	MethodName     primitives.MethodName
	InputArguments []*types.Argument
	CallerAddress  primitives.ClientAddress
}

type DeployInput struct {
	ContractName         primitives.ContractName
	ConstructorName      primitives.MethodName
	ConstructorArguments []*types.Argument
}

type CallOutput struct {
	CallResult      protocol.ExecutionResult
	OutputArguments []*types.Argument
	BlockHeight     primitives.BlockHeight
	TxHash          primitives.Sha256
}
