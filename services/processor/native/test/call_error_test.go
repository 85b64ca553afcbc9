// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package test

import (
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository/BenchmarkContract"
	"github.com/orbs-network/orbs-incrementer/test/with"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCallThatReturnsErrorFailsWithSmartContractError(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod(benchmarkcontract.CONTRACT_NAME, benchmarkcontract.METHOD_THROW.Name).Build()

		output, err := h.process(t, call)
		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, output.CallResult, "call result should be smart contract error")
		require.Len(t, output.OutputArguments, 1, "error text should be the only output")
		require.Equal(t, "contract returns error", output.OutputArguments[0].StringValue)
	})
}

func TestCallThatPanicsFailsWithSmartContractError(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)
		call := processCallInput().WithMethod(benchmarkcontract.CONTRACT_NAME, benchmarkcontract.METHOD_PANIC.Name).Build()

		output, err := h.process(t, call)
		require.Error(t, err, "call should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, output.CallResult, "call result should be smart contract error")
		require.Equal(t, "contract panicked", output.OutputArguments[0].StringValue)
	})
}

func TestCallRecordsLatencyAndRate(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent.Logger)

		_, err := h.process(t, processCallInput().WithExternalMethod().Build())
		require.NoError(t, err, "call should succeed")

		exported := h.metrics.ExportAll()
		require.Contains(t, exported, "Processor.Native.ProcessCallTime.Millis")
		require.Contains(t, exported, "Processor.Native.Calls.Rate")
	})
}
