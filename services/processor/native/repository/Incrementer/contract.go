// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package incrementer

import (
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/address"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
)

// helpers for avoiding reliance on strings throughout the system
const CONTRACT_NAME = "Incrementer"
const METHOD_INIT = "_init"
const METHOD_INIT_WITH = "_initWith"
const METHOD_GET = "get"
const METHOD_INC = "inc"
const METHOD_GET_MINE = "getMine"
const METHOD_INC_MINE = "incMine"

// state keys
const VALUE_KEY = "value"
const MINE_KEY_PREFIX = "mine."

func mineKey(caller Identity) string {
	return MINE_KEY_PREFIX + caller.String()
}

var CONTRACT = types.ContractInfo{
	Name:       CONTRACT_NAME,
	Permission: protocol.PERMISSION_SCOPE_SERVICE,
	Methods: map[primitives.MethodName]types.MethodInfo{
		METHOD_INIT:      methodInit,
		METHOD_INIT_WITH: methodInitWith,
		METHOD_GET:       methodGet,
		METHOD_INC:       methodInc,
		METHOD_GET_MINE:  methodGetMine,
		METHOD_INC_MINE:  methodIncMine,
	},
}

///////////////////////////////////////////////////////////////////////////

var methodInit = types.MethodInfo{
	Name:           METHOD_INIT,
	External:       false,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: _init,
}

func _init() {
	store(Default())
}

///////////////////////////////////////////////////////////////////////////

var methodInitWith = types.MethodInfo{
	Name:           METHOD_INIT_WITH,
	External:       false,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: _initWith,
}

func _initWith(initValue int32) {
	store(New(initValue))
}

///////////////////////////////////////////////////////////////////////////

var methodGet = types.MethodInfo{
	Name:           METHOD_GET,
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: get,
}

func get() int32 {
	return load(nil).Get()
}

///////////////////////////////////////////////////////////////////////////

var methodInc = types.MethodInfo{
	Name:           METHOD_INC,
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: inc,
}

func inc(by int32) error {
	s := load(nil)
	if err := s.Inc(by); err != nil {
		return err
	}
	writeInt32(VALUE_KEY, s.Get())
	return nil
}

///////////////////////////////////////////////////////////////////////////

var methodGetMine = types.MethodInfo{
	Name:           METHOD_GET_MINE,
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: getMine,
}

func getMine() (int32, error) {
	caller, err := signer()
	if err != nil {
		return 0, err
	}
	return load(&caller).GetMine(caller), nil
}

///////////////////////////////////////////////////////////////////////////

var methodIncMine = types.MethodInfo{
	Name:           METHOD_INC_MINE,
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: incMine,
}

func incMine(by int32) error {
	caller, err := signer()
	if err != nil {
		return err
	}
	s := load(&caller)
	if err := s.IncMine(caller, by); err != nil {
		return err
	}
	writeInt32(mineKey(caller), s.GetMine(caller))
	return nil
}

///////////////////////////////////////////////////////////////////////////

func signer() (Identity, error) {
	return IdentityFromBytes(address.GetSignerAddress())
}

// load reads the part of the state record a call touches: the global value and, if given, one caller's entry.
func load(caller *Identity) *State {
	mine := map[Identity]int32{}
	if caller != nil {
		mine[*caller] = readInt32(mineKey(*caller))
	}
	return Restore(readInt32(VALUE_KEY), mine)
}

func store(s *State) {
	writeInt32(VALUE_KEY, s.Get())
	for id, v := range s.Entries() {
		writeInt32(mineKey(id), v)
	}
}

func readInt32(key string) int32 {
	return int32(state.ReadUint32([]byte(key)))
}

// zero is the default of every key, so it is stored as a cleared key
func writeInt32(key string, value int32) {
	if value == 0 {
		state.Clear([]byte(key))
	} else {
		state.WriteUint32([]byte(key), uint32(value))
	}
}
