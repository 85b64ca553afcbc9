// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package test

import (
	"github.com/orbs-network/orbs-incrementer/test/with"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCallUnknownContractFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithUnknownContract().Build()

		output, err := h.process(t, call)
		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, output.CallResult, "call result should be contract not deployed")
	})
}

func TestCallUnknownMethodFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithUnknownMethod().Build()

		output, err := h.process(t, call)
		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, output.CallResult, "call result should be input error")
	})
}

func TestCallExternalMethodSucceeds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithExternalMethod().Build()

		output, err := h.process(t, call)
		require.NoError(t, err, "call should succeed")
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, output.CallResult, "call result should be success")
	})
}

func TestCallInternalMethodWithServicePermissionsFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithInternalMethod().WithWriteAccess().Build()

		output, err := h.process(t, call)
		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, output.CallResult, "call result should be input error")
	})
}

func TestCallInternalMethodUnderSystemPermissionsSucceeds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithInternalMethod().WithWriteAccess().WithSystemPermissions().Build()

		output, err := h.process(t, call)
		require.NoError(t, err, "call should succeed")
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, output.CallResult, "call result should be success")
	})
}

func TestCallSystemContractWithServicePermissionsFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithSystemContract().Build()

		output, err := h.process(t, call)
		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, output.CallResult, "call result should be input error")
	})
}

func TestCallSystemContractUnderSystemPermissionsSucceeds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithSystemContract().WithSystemPermissions().Build()

		output, err := h.process(t, call)
		require.NoError(t, err, "call should succeed")
		require.EqualValues(t, 1, output.OutputArguments[0].Uint32Value, "self deployment info should be returned")
	})
}

func TestCallWriteMethodWithWriteAccessSucceeds(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithExternalWriteMethod().WithWriteAccess().Build()

		_, err := h.process(t, call)
		require.NoError(t, err, "call should succeed")
		require.Equal(t, 1, h.sdkHandler.writes, "state write should be made")
	})
}

func TestCallWriteMethodWithoutWriteAccessFails(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithExternalWriteMethod().Build()

		output, err := h.process(t, call)
		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, output.CallResult, "call result should be input error")
		require.Zero(t, h.sdkHandler.writes, "state write should not be made")
	})
}
