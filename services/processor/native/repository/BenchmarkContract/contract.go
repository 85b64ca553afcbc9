// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package benchmarkcontract

import (
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/pkg/errors"
)

const CONTRACT_NAME = "BenchmarkContract"

var CONTRACT = types.ContractInfo{
	Name:       CONTRACT_NAME,
	Permission: protocol.PERMISSION_SCOPE_SERVICE,
	Methods: map[primitives.MethodName]types.MethodInfo{
		METHOD_INIT.Name:                METHOD_INIT,
		METHOD_ADD.Name:                 METHOD_ADD,
		METHOD_SET.Name:                 METHOD_SET,
		METHOD_GET.Name:                 METHOD_GET,
		METHOD_ARGTYPES.Name:            METHOD_ARGTYPES,
		METHOD_THROW.Name:               METHOD_THROW,
		METHOD_PANIC.Name:               METHOD_PANIC,
		METHOD_INVALID_ARG_TYPE.Name:    METHOD_INVALID_ARG_TYPE,
		METHOD_INVALID_OUTPUT_TYPE.Name: METHOD_INVALID_OUTPUT_TYPE,
	},
}

var EXAMPLE_KEY = []byte("example-key")

///////////////////////////////////////////////////////////////////////////

var METHOD_INIT = types.MethodInfo{
	Name:           "_init",
	External:       false,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: _init,
}

func _init() {
}

///////////////////////////////////////////////////////////////////////////

var METHOD_ADD = types.MethodInfo{
	Name:           "add",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: add,
}

func add(a int32, b int32) int32 {
	return a + b
}

///////////////////////////////////////////////////////////////////////////

var METHOD_SET = types.MethodInfo{
	Name:           "set",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: set,
}

func set(a int32) {
	state.WriteUint32(EXAMPLE_KEY, uint32(a))
}

///////////////////////////////////////////////////////////////////////////

var METHOD_GET = types.MethodInfo{
	Name:           "get",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: get,
}

func get() int32 {
	return int32(state.ReadUint32(EXAMPLE_KEY))
}

///////////////////////////////////////////////////////////////////////////

var METHOD_ARGTYPES = types.MethodInfo{
	Name:           "argTypes",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: argTypes,
}

func argTypes(a1 int32, a2 uint32, a3 uint64, a4 string, a5 []byte) (int32, uint32, uint64, string, []byte) {
	return a1 + 1, a2 + 1, a3 + 1, a4 + "1", append(a5, 0x01)
}

///////////////////////////////////////////////////////////////////////////

var METHOD_THROW = types.MethodInfo{
	Name:           "throw",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: throw,
}

func throw() error {
	return errors.New("contract returns error")
}

///////////////////////////////////////////////////////////////////////////

var METHOD_PANIC = types.MethodInfo{
	Name:           "panic",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: panics,
}

func panics() {
	panic("contract panicked")
}

///////////////////////////////////////////////////////////////////////////

var METHOD_INVALID_ARG_TYPE = types.MethodInfo{
	Name:           "invalidArgType",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: invalidArgType,
}

func invalidArgType(a float64) {
}

///////////////////////////////////////////////////////////////////////////

var METHOD_INVALID_OUTPUT_TYPE = types.MethodInfo{
	Name:           "invalidOutputType",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: invalidOutputType,
}

func invalidOutputType() map[string]int32 {
	return map[string]int32{}
}
