// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-incrementer/services/processor/native"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository/_Deployments"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

const DEFAULT_CONSTRUCTOR = "_init"

// DeployContract records the deployment and runs the constructor in one context; nothing is committed unless both succeed
func (s *service) DeployContract(ctx context.Context, input *DeployInput) (*CallOutput, error) {
	s.callMutex.Lock()
	defer s.callMutex.Unlock()

	constructor := input.ConstructorName
	if constructor == "" {
		constructor = DEFAULT_CONSTRUCTOR
	}
	logger := s.logger.WithTags(log.Stringable("contract", input.ContractName), log.Stringable("constructor", constructor))

	height, err := s.stateStorage.GetStateStorageBlockHeight(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading state block height")
	}

	contractInfo, err := s.processor.GetContractInfo(ctx, input.ContractName)
	if err != nil {
		return notDeployedOutput(input.ContractName, height), nil
	}
	if methodInfo, found := contractInfo.Methods[constructor]; !found || !methodInfo.IsSystem() {
		return &CallOutput{
			CallResult:      protocol.EXECUTION_RESULT_ERROR_INPUT,
			OutputArguments: []*types.Argument{types.StringArgument(errors.Errorf("'%s' is not a constructor of contract '%s'", constructor, input.ContractName).Error())},
			BlockHeight:     height,
		}, nil
	}

	executionContext := s.allocateExecutionContext(ctx, height, protocol.ACCESS_SCOPE_READ_WRITE)
	defer s.destroyExecutionContext(executionContext.contextId)

	output, err := s.callSystemContract(ctx, executionContext, deployments_systemcontract.METHOD_DEPLOY_SERVICE, types.StringArgument(string(input.ContractName)))
	if output.CallResult != protocol.EXECUTION_RESULT_SUCCESS {
		logger.Info("contract deployment rejected", log.Error(err))
		return &CallOutput{CallResult: output.CallResult, OutputArguments: output.OutputArguments, BlockHeight: height}, nil
	}

	output, err = s.processor.ProcessCall(ctx, &native.ProcessCallInput{
		ContextId:              executionContext.contextId,
		ContractName:           input.ContractName,
		MethodName:             constructor,
		InputArguments:         input.ConstructorArguments,
		AccessScope:            protocol.ACCESS_SCOPE_READ_WRITE,
		CallingPermissionScope: protocol.PERMISSION_SCOPE_SYSTEM,
	})
	if output.CallResult != protocol.EXECUTION_RESULT_SUCCESS {
		logger.Info("contract constructor failed", log.Error(err))
		return &CallOutput{CallResult: output.CallResult, OutputArguments: output.OutputArguments, BlockHeight: height}, nil
	}

	committedHeight, err := s.commitTransientState(ctx, executionContext)
	if err != nil {
		return nil, errors.Wrapf(err, "failed committing deployment of contract %s", input.ContractName)
	}

	logger.Info("contract deployed", log.Uint64("block-height", uint64(committedHeight)))
	return &CallOutput{
		CallResult:      protocol.EXECUTION_RESULT_SUCCESS,
		OutputArguments: output.OutputArguments,
		BlockHeight:     committedHeight,
	}, nil
}
