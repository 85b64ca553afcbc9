// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package jsonapi

import (
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/pkg/errors"
)

const (
	CALL_KIND_DEPLOY      = "deploy"
	CALL_KIND_TRANSACTION = "transaction"
	CALL_KIND_QUERY       = "query"
)

type MethodArgument struct {
	Type        string
	Int32Value  int32  `json:",omitempty"`
	Uint32Value uint32 `json:",omitempty"`
	Uint64Value uint64 `json:",omitempty"`
	StringValue string `json:",omitempty"`
	BytesValue  []byte `json:",omitempty"`
}

// Call is one step of a script. Signer names a key pair generated on first use; queries use its address as the caller.
type Call struct {
	Kind         string
	Signer       string
	ContractName string
	MethodName   string
	Arguments    []MethodArgument
}

// Script lists calls to run in order. Signers optionally pins a signer name to a hex private key; other names get fresh keys.
type Script struct {
	Signers map[string]string `json:",omitempty"`
	Calls   []Call
}

type CallOutput struct {
	Kind            string
	ContractName    string
	MethodName      string
	CallResult      string
	OutputArguments []MethodArgument
	BlockHeight     uint64
	TxHash          string `json:",omitempty"`
}

func ConvertArguments(args []MethodArgument) ([]*types.Argument, error) {
	res := make([]*types.Argument, 0, len(args))
	for i, arg := range args {
		switch arg.Type {
		case types.ARGUMENT_TYPE_INT_32_VALUE.String():
			res = append(res, types.Int32Argument(arg.Int32Value))
		case types.ARGUMENT_TYPE_UINT_32_VALUE.String():
			res = append(res, types.Uint32Argument(arg.Uint32Value))
		case types.ARGUMENT_TYPE_UINT_64_VALUE.String():
			res = append(res, types.Uint64Argument(arg.Uint64Value))
		case types.ARGUMENT_TYPE_STRING_VALUE.String():
			res = append(res, types.StringArgument(arg.StringValue))
		case types.ARGUMENT_TYPE_BYTES_VALUE.String():
			res = append(res, types.BytesArgument(arg.BytesValue))
		default:
			return nil, errors.Errorf("argument %d has unknown type '%s'", i, arg.Type)
		}
	}
	return res, nil
}

func convertMethodArgument(arg *types.Argument) MethodArgument {
	methodArg := MethodArgument{
		Type: arg.Type.String(),
	}
	switch arg.Type {
	case types.ARGUMENT_TYPE_INT_32_VALUE:
		methodArg.Int32Value = arg.Int32Value
	case types.ARGUMENT_TYPE_UINT_32_VALUE:
		methodArg.Uint32Value = arg.Uint32Value
	case types.ARGUMENT_TYPE_UINT_64_VALUE:
		methodArg.Uint64Value = arg.Uint64Value
	case types.ARGUMENT_TYPE_STRING_VALUE:
		methodArg.StringValue = arg.StringValue
	case types.ARGUMENT_TYPE_BYTES_VALUE:
		methodArg.BytesValue = arg.BytesValue
	}
	return methodArg
}

func convertOutputArguments(args []*types.Argument) []MethodArgument {
	res := make([]MethodArgument, 0, len(args))
	for _, arg := range args {
		res = append(res, convertMethodArgument(arg))
	}
	return res
}
