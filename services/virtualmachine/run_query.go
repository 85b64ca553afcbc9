// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-incrementer/services/processor/native"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

// RunQuery executes a read only call against the last committed state
func (s *service) RunQuery(ctx context.Context, query *Query) (*CallOutput, error) {
	if query == nil {
		return nil, errors.New("query is missing")
	}

	s.callMutex.Lock()
	defer s.callMutex.Unlock()

	start := time.Now()
	defer s.metrics.runQueryTime.RecordSince(start)

	height, err := s.stateStorage.GetStateStorageBlockHeight(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading state block height")
	}

	executionContext := s.allocateExecutionContext(ctx, height, protocol.ACCESS_SCOPE_READ_ONLY)
	defer s.destroyExecutionContext(executionContext.contextId)

	deployed, err := s.isDeployed(ctx, executionContext, query.ContractName)
	if err != nil {
		return nil, err
	}
	if !deployed {
		return notDeployedOutput(query.ContractName, height), nil
	}

	output, err := s.processor.ProcessCall(ctx, &native.ProcessCallInput{
		ContextId:              executionContext.contextId,
		ContractName:           query.ContractName,
		MethodName:             query.MethodName,
		InputArguments:         query.InputArguments,
		AccessScope:            protocol.ACCESS_SCOPE_READ_ONLY,
		CallingPermissionScope: protocol.PERMISSION_SCOPE_SERVICE,
		CallerAddress:          query.CallerAddress,
	})
	if err != nil {
		s.logger.Info("query failed", log.Stringable("contract", query.ContractName), log.Stringable("method", query.MethodName), log.Stringable("result", output.CallResult), log.Error(err))
	}

	return &CallOutput{
		CallResult:      output.CallResult,
		OutputArguments: output.OutputArguments,
		BlockHeight:     height,
	}, nil
}
