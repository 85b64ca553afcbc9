// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package test

import (
	"context"
	"github.com/orbs-network/orbs-incrementer/config"
	"github.com/orbs-network/orbs-incrementer/instrumentation/metric"
	"github.com/orbs-network/orbs-incrementer/services/processor/native"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository/Incrementer"
	"github.com/orbs-network/orbs-incrementer/services/statestorage"
	"github.com/orbs-network/orbs-incrementer/services/statestorage/adapter/memory"
	"github.com/orbs-network/orbs-incrementer/services/virtualmachine"
	"github.com/orbs-network/orbs-incrementer/test/builders"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
)

type harness struct {
	vm           virtualmachine.VirtualMachine
	persistence  *memory.InMemoryStatePersistence
	stateStorage statestorage.Service
	metrics      metric.Registry
}

func newHarness(t testing.TB, logger log.Logger) *harness {
	cfg := config.ForTests()
	registry := metric.NewRegistry()

	persistence := memory.NewStatePersistence(registry)
	stateStorage, err := statestorage.NewStateStorage(cfg, persistence, logger, registry)
	require.NoError(t, err)

	processor := native.NewNativeProcessor(cfg, repository.Contracts, logger, registry)
	vm := virtualmachine.NewVirtualMachine(cfg, stateStorage, processor, logger, registry)

	return &harness{
		vm:           vm,
		persistence:  persistence,
		stateStorage: stateStorage,
		metrics:      registry,
	}
}

func (h *harness) deployIncrementer(t testing.TB, initValue int32) {
	output, err := h.vm.DeployContract(context.Background(), &virtualmachine.DeployInput{
		ContractName:         incrementer.CONTRACT_NAME,
		ConstructorName:      incrementer.METHOD_INIT_WITH,
		ConstructorArguments: builders.Arguments(initValue),
	})
	require.NoError(t, err)
	require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, output.CallResult, "deployment should succeed")
}

func (h *harness) runTransaction(t testing.TB, tx *virtualmachine.SignedTransaction) *virtualmachine.CallOutput {
	output, err := h.vm.RunTransaction(context.Background(), tx)
	require.NoError(t, err)
	return output
}

func (h *harness) queryInt32(t testing.TB, methodName primitives.MethodName, caller primitives.ClientAddress) int32 {
	output, err := h.vm.RunQuery(context.Background(), builders.Query().WithMethod(incrementer.CONTRACT_NAME, methodName).WithCaller(caller).Build())
	require.NoError(t, err)
	require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, output.CallResult, "query should succeed")
	require.Len(t, output.OutputArguments, 1)
	return output.OutputArguments[0].Int32Value
}

func (h *harness) blockHeight(t testing.TB) primitives.BlockHeight {
	height, err := h.stateStorage.GetStateStorageBlockHeight(context.Background())
	require.NoError(t, err)
	return height
}
