// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package virtualmachine

import (
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/pkg/errors"
)

func (s *service) HandleSdkStateRead(contextId types.ContextId, contract primitives.ContractName, key string) ([]byte, error) {
	executionContext := s.loadExecutionContext(contextId)
	if executionContext == nil {
		return nil, errors.Errorf("invalid execution context %s", contextId)
	}

	if executionContext.transientState != nil {
		if value, found := executionContext.transientState.getValue(contract, key); found {
			return value, nil
		}
	}

	values, err := s.stateStorage.ReadKeys(executionContext.ctx, contract, []string{key})
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, errors.Errorf("state read of key %s returned %d values", key, len(values))
	}
	return values[0], nil
}

func (s *service) HandleSdkStateWrite(contextId types.ContextId, contract primitives.ContractName, key string, value []byte) error {
	executionContext := s.loadExecutionContext(contextId)
	if executionContext == nil {
		return errors.Errorf("invalid execution context %s", contextId)
	}

	if executionContext.accessScope != protocol.ACCESS_SCOPE_READ_WRITE || executionContext.transientState == nil {
		return errors.Errorf("write of key %s attempted without write access", key)
	}

	executionContext.transientState.setValue(contract, key, value, true)
	return nil
}
