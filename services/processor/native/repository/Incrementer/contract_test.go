// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package incrementer

import (
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"
	. "github.com/orbs-network/orbs-contract-sdk/go/testing/unit"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func addressForTests(b byte) []byte {
	address := make([]byte, IDENTITY_SIZE_BYTES)
	for i := range address {
		address[i] = b
	}
	return address
}

func TestContract_InitWithAndIncrement(t *testing.T) {
	InServiceScope(addressForTests(0x01), nil, func(m Mockery) {
		_initWith(42)
		require.EqualValues(t, 42, get())

		require.NoError(t, inc(5))
		require.EqualValues(t, 47, get())

		require.NoError(t, inc(-50))
		require.EqualValues(t, -3, get())
	})
}

func TestContract_DefaultInit(t *testing.T) {
	diffs, _, _ := InSystemScope(addressForTests(0x01), nil, func(m Mockery) {
		_init()
		require.EqualValues(t, 0, get())
	})

	for _, d := range diffs {
		require.Empty(t, d.Value, "zero values should not occupy state")
	}
}

func TestContract_MineIsScopedToCaller(t *testing.T) {
	alice := addressForTests(0xaa)
	bob := addressForTests(0xbb)

	InServiceScope(alice, nil, func(m Mockery) {
		_initWith(11)

		requireGetMine(t, 0)
		require.NoError(t, incMine(5))
		requireGetMine(t, 5)
		require.NoError(t, incMine(10))
		requireGetMine(t, 15)

		aliceId, err := IdentityFromBytes(alice)
		require.NoError(t, err)
		require.EqualValues(t, 15, state.ReadUint32([]byte(mineKey(aliceId))), "entry should be stored under the caller key")
	})

	InServiceScope(bob, nil, func(m Mockery) {
		_initWith(11)

		requireGetMine(t, 0)
		require.EqualValues(t, 11, get())
	})
}

func TestContract_GlobalIncrementVisibleToEveryCaller(t *testing.T) {
	InServiceScope(addressForTests(0xbb), nil, func(m Mockery) {
		_init()
		require.NoError(t, inc(3))

		require.EqualValues(t, 3, get())
		require.EqualValues(t, 3, readInt32(VALUE_KEY))
	})
}

func TestContract_OverflowDoesNotWrite(t *testing.T) {
	InServiceScope(addressForTests(0x01), nil, func(m Mockery) {
		_initWith(math.MaxInt32)

		err := inc(1)
		require.Equal(t, ErrOverflow, errors.Cause(err))
		require.EqualValues(t, math.MaxInt32, state.ReadUint32([]byte(VALUE_KEY)), "failed inc should leave the stored value")
		require.EqualValues(t, math.MaxInt32, get())
	})
}

func TestContract_NegativeValuesRoundTrip(t *testing.T) {
	InServiceScope(addressForTests(0x01), nil, func(m Mockery) {
		_initWith(math.MinInt32)
		require.EqualValues(t, math.MinInt32, get())

		require.NoError(t, incMine(-7))
		requireGetMine(t, -7)
	})
}

func TestContract_InvalidCallerAddress(t *testing.T) {
	InServiceScope([]byte{0x01}, nil, func(m Mockery) {
		_, err := getMine()
		require.Error(t, err)
		require.Error(t, incMine(1))
	})
}

func TestContract_MethodTable(t *testing.T) {
	require.EqualValues(t, CONTRACT_NAME, CONTRACT.Name)
	for name, method := range CONTRACT.Methods {
		require.EqualValues(t, name, method.Name, "method registered under wrong name")
	}
	require.True(t, CONTRACT.Methods[METHOD_INIT].IsSystem())
	require.True(t, CONTRACT.Methods[METHOD_INIT_WITH].IsSystem())
	require.Equal(t, protocol.ACCESS_SCOPE_READ_ONLY, CONTRACT.Methods[METHOD_GET].Access)
	require.Equal(t, protocol.ACCESS_SCOPE_READ_ONLY, CONTRACT.Methods[METHOD_GET_MINE].Access)
	require.Equal(t, protocol.ACCESS_SCOPE_READ_WRITE, CONTRACT.Methods[METHOD_INC].Access)
	require.Equal(t, protocol.ACCESS_SCOPE_READ_WRITE, CONTRACT.Methods[METHOD_INC_MINE].Access)
}

func requireGetMine(t *testing.T, expected int32) {
	v, err := getMine()
	require.NoError(t, err)
	require.Equal(t, expected, v)
}
