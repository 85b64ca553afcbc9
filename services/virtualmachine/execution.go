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
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/pkg/errors"
)

func (s *service) callSystemContract(ctx context.Context, executionContext *executionContext, methodName primitives.MethodName, args ...*types.Argument) (*native.ProcessCallOutput, error) {
	return s.processor.ProcessCall(ctx, &native.ProcessCallInput{
		ContextId:              executionContext.contextId,
		ContractName:           deployments_systemcontract.CONTRACT_NAME,
		MethodName:             methodName,
		InputArguments:         args,
		AccessScope:            executionContext.accessScope,
		CallingPermissionScope: protocol.PERMISSION_SCOPE_SYSTEM,
	})
}

func (s *service) isDeployed(ctx context.Context, executionContext *executionContext, contractName primitives.ContractName) (bool, error) {
	output, err := s.callSystemContract(ctx, executionContext, deployments_systemcontract.METHOD_GET_INFO, types.StringArgument(string(contractName)))
	if err != nil {
		return false, errors.Wrapf(err, "failed reading deployment of contract %s", contractName)
	}
	if len(output.OutputArguments) != 1 {
		return false, errors.Errorf("deployment info of contract %s has %d outputs", contractName, len(output.OutputArguments))
	}
	return output.OutputArguments[0].Uint32Value == deployments_systemcontract.DEPLOYED, nil
}

func notDeployedOutput(contractName primitives.ContractName, height primitives.BlockHeight) *CallOutput {
	return &CallOutput{
		CallResult:      protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED,
		OutputArguments: []*types.Argument{types.StringArgument(errors.Errorf("contract '%s' is not deployed", contractName).Error())},
		BlockHeight:     height,
	}
}

// commitTransientState persists the dirty records of the context as the next block height
func (s *service) commitTransientState(ctx context.Context, executionContext *executionContext) (primitives.BlockHeight, error) {
	height := executionContext.blockHeight + 1
	if err := s.stateStorage.CommitStateDiff(ctx, height, executionContext.transientState.toChainState()); err != nil {
		return executionContext.blockHeight, err
	}
	return height, nil
}
