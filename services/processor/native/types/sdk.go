// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package types

import (
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

type ContextId string

// SdkHandler is implemented by the host (virtual machine) and gives the processor access to the
// state overlay of the execution context a call runs in.
type SdkHandler interface {
	HandleSdkStateRead(contextId ContextId, contract primitives.ContractName, key string) ([]byte, error)
	HandleSdkStateWrite(contextId ContextId, contract primitives.ContractName, key string, value []byte) error
}
