// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package native

import (
	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/pkg/errors"
)

// contractSdk serves the orbs-contract-sdk calls of one contract method while it runs.
// Only state and address calls are served, anything else reaches the nil embedded handler and panics.
type contractSdk struct {
	sdkContext.SdkHandler
	processor *service
	call      *ProcessCallInput
}

func newContractSdk(processor *service, call *ProcessCallInput) *contractSdk {
	return &contractSdk{processor: processor, call: call}
}

func (s *contractSdk) SdkStateReadBytes(executionContextId sdkContext.ContextId, permissionScope sdkContext.PermissionScope, key []byte) []byte {
	handler, err := s.processor.getSdkHandler()
	if err != nil {
		panic(err)
	}
	value, err := handler.HandleSdkStateRead(types.ContextId(executionContextId), s.call.ContractName, string(key))
	if err != nil {
		panic(err)
	}
	return value
}

func (s *contractSdk) SdkStateWriteBytes(executionContextId sdkContext.ContextId, permissionScope sdkContext.PermissionScope, key []byte, value []byte) {
	if s.call.AccessScope != protocol.ACCESS_SCOPE_READ_WRITE {
		panic(errors.Errorf("write of state key '%s' attempted in access scope %s", key, s.call.AccessScope))
	}
	handler, err := s.processor.getSdkHandler()
	if err != nil {
		panic(err)
	}
	err = handler.HandleSdkStateWrite(types.ContextId(executionContextId), s.call.ContractName, string(key), value)
	if err != nil {
		panic(err)
	}
}
