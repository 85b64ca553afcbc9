// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package types

import (
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
)

type ContractInfo struct {
	Name       primitives.ContractName
	Permission protocol.ExecutionPermissionScope
	Methods    map[primitives.MethodName]MethodInfo
}

// MethodInfo describes one callable method. Implementation is a plain function taking the
// call arguments. It reaches state and caller through orbs-contract-sdk and may return an error last.
type MethodInfo struct {
	Name           primitives.MethodName
	External       bool
	Access         protocol.ExecutionAccessScope
	Implementation interface{}
}

func (m MethodInfo) IsSystem() bool {
	return !m.External
}
