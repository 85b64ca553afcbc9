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
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
)

type harness struct {
	service    native.Processor
	sdkHandler *sdkHandlerMock
	metrics    metric.Registry
}

func newHarness(logger log.Logger) *harness {
	registry := metric.NewRegistry()
	sdkHandler := &sdkHandlerMock{state: make(map[string][]byte)}

	service := native.NewNativeProcessor(config.ForTests(), repository.Contracts, logger, registry)
	service.RegisterContractSdkCallHandler(sdkHandler)

	return &harness{
		service:    service,
		sdkHandler: sdkHandler,
		metrics:    registry,
	}
}

func (h *harness) process(t testing.TB, input *native.ProcessCallInput) (*native.ProcessCallOutput, error) {
	output, err := h.service.ProcessCall(context.Background(), input)
	require.NotNil(t, output, "process call must always return an output")
	return output, err
}

func (h *harness) stateValue(contract primitives.ContractName, key string) []byte {
	return h.sdkHandler.state[string(contract)+"/"+key]
}

// sdkHandlerMock stores state in a map keyed by contract and key
type sdkHandlerMock struct {
	state      map[string][]byte
	writes     int
	contextIds []types.ContextId
}

func (m *sdkHandlerMock) HandleSdkStateRead(contextId types.ContextId, contract primitives.ContractName, key string) ([]byte, error) {
	m.contextIds = append(m.contextIds, contextId)
	return m.state[string(contract)+"/"+key], nil
}

func (m *sdkHandlerMock) HandleSdkStateWrite(contextId types.ContextId, contract primitives.ContractName, key string, value []byte) error {
	m.writes++
	m.contextIds = append(m.contextIds, contextId)
	m.state[string(contract)+"/"+key] = value
	return nil
}
