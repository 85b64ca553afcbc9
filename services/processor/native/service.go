// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package native

import (
	"context"
	"fmt"
	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
	"github.com/orbs-network/orbs-incrementer/instrumentation/metric"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
	"time"
)

var LogTag = log.Service("processor-native")

type Config interface {
	ProcessorCallLatencyMax() time.Duration
}

type ProcessCallInput struct {
	ContextId              types.ContextId
	ContractName           primitives.ContractName
	MethodName             primitives.MethodName
	InputArguments         []*types.Argument
	AccessScope            protocol.ExecutionAccessScope
	CallingPermissionScope protocol.ExecutionPermissionScope
	CallerAddress          primitives.ClientAddress
}

type ProcessCallOutput struct {
	OutputArguments []*types.Argument
	CallResult      protocol.ExecutionResult
}

type Processor interface {
	RegisterContractSdkCallHandler(handler types.SdkHandler)
	ProcessCall(ctx context.Context, input *ProcessCallInput) (*ProcessCallOutput, error)
	GetContractInfo(ctx context.Context, contractName primitives.ContractName) (*types.ContractInfo, error)
}

type service struct {
	logger    log.Logger
	contracts map[primitives.ContractName]*types.ContractInfo

	mutex      sync.RWMutex
	sdkHandler types.SdkHandler

	metrics *metrics
}

type metrics struct {
	processCallTime *metric.Histogram
	processCallRate *metric.Rate
	contractErrors  *metric.Gauge
}

func getMetrics(m metric.Factory, config Config) *metrics {
	return &metrics{
		processCallTime: m.NewLatency("Processor.Native.ProcessCallTime.Millis", config.ProcessorCallLatencyMax()),
		processCallRate: m.NewRate("Processor.Native.Calls.Rate"),
		contractErrors:  m.NewGauge("Processor.Native.ContractErrors.Count"),
	}
}

func NewNativeProcessor(config Config, contracts map[primitives.ContractName]*types.ContractInfo, parentLogger log.Logger, metricFactory metric.Factory) Processor {
	return &service{
		logger:    parentLogger.WithTags(LogTag),
		contracts: contracts,
		metrics:   getMetrics(metricFactory, config),
	}
}

// runs once on system initialization (called by the virtual machine constructor)
func (s *service) RegisterContractSdkCallHandler(handler types.SdkHandler) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.sdkHandler = handler
}

func (s *service) ProcessCall(ctx context.Context, input *ProcessCallInput) (*ProcessCallOutput, error) {
	logger := s.logger.WithTags(log.String("context-id", string(input.ContextId)))

	start := time.Now()
	defer s.metrics.processCallTime.RecordSince(start)
	s.metrics.processCallRate.Measure(1)

	// retrieve code
	contractInfo, err := s.GetContractInfo(ctx, input.ContractName)
	if err != nil {
		return &ProcessCallOutput{
			OutputArguments: createMethodOutputArgsWithString(err.Error()),
			CallResult:      protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED,
		}, err
	}

	// get the method and check permissions
	methodInfo, err := s.retrieveMethodInfo(contractInfo, input)
	if err != nil {
		return &ProcessCallOutput{
			OutputArguments: createMethodOutputArgsWithString(err.Error()),
			CallResult:      protocol.EXECUTION_RESULT_ERROR_INPUT,
		}, err
	}

	// setup context for the contract sdk
	sdkContext.PushContext(sdkContext.ContextId(input.ContextId), newContractSdk(s, input), sdkContext.PermissionScope(contractInfo.Permission))
	defer sdkContext.PopContext(sdkContext.ContextId(input.ContextId))

	// execute
	logger.Info("processor executing contract", log.Stringable("contract", input.ContractName), log.Stringable("method", input.MethodName))

	functionNameForErrors := fmt.Sprintf("%s.%s", input.ContractName, input.MethodName)
	outputArgs, contractErr, err := s.processMethodCall(methodInfo, input.InputArguments, functionNameForErrors)
	if err != nil {
		logger.Info("contract execution failed", log.Stringable("contract", input.ContractName), log.Stringable("method", input.MethodName), log.Error(err))

		return &ProcessCallOutput{
			OutputArguments: createMethodOutputArgsWithString(err.Error()),
			CallResult:      protocol.EXECUTION_RESULT_ERROR_INPUT,
		}, err
	}

	// result
	if contractErr != nil {
		logger.Info("contract returned error", log.Stringable("contract", input.ContractName), log.Stringable("method", input.MethodName), log.Error(contractErr))
		s.metrics.contractErrors.Inc()

		return &ProcessCallOutput{
			OutputArguments: createMethodOutputArgsWithString(contractErr.Error()),
			CallResult:      protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT,
		}, contractErr
	}

	return &ProcessCallOutput{
		OutputArguments: outputArgs,
		CallResult:      protocol.EXECUTION_RESULT_SUCCESS,
	}, nil
}

func (s *service) GetContractInfo(ctx context.Context, contractName primitives.ContractName) (*types.ContractInfo, error) {
	contractInfo, found := s.contracts[contractName]
	if !found {
		return nil, errors.Errorf("contract '%s' not found in repository", contractName)
	}
	return contractInfo, nil
}

func (s *service) retrieveMethodInfo(contractInfo *types.ContractInfo, input *ProcessCallInput) (types.MethodInfo, error) {
	methodInfo, found := contractInfo.Methods[input.MethodName]
	if !found {
		return types.MethodInfo{}, errors.Errorf("method '%s' not found on contract '%s'", input.MethodName, input.ContractName)
	}

	if contractInfo.Permission == protocol.PERMISSION_SCOPE_SYSTEM && input.CallingPermissionScope != protocol.PERMISSION_SCOPE_SYSTEM {
		return types.MethodInfo{}, errors.Errorf("contract '%s' can only be called with system permissions", input.ContractName)
	}

	if methodInfo.IsSystem() && input.CallingPermissionScope != protocol.PERMISSION_SCOPE_SYSTEM {
		return types.MethodInfo{}, errors.Errorf("only system contracts can run method '%s'", input.MethodName)
	}

	if methodInfo.Access == protocol.ACCESS_SCOPE_READ_WRITE && input.AccessScope != protocol.ACCESS_SCOPE_READ_WRITE {
		return types.MethodInfo{}, errors.Errorf("method '%s' changes state and cannot run in a read only call", input.MethodName)
	}

	return methodInfo, nil
}

func (s *service) getSdkHandler() (types.SdkHandler, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.sdkHandler == nil {
		return nil, errors.New("no sdk handler registered with the native processor")
	}
	return s.sdkHandler, nil
}
