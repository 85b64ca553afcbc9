// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package test

import (
	"github.com/orbs-network/orbs-incrementer/services/processor/native"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository/BenchmarkContract"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository/Incrementer"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository/_Deployments"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-incrementer/test/builders"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
)

type processCallInputBuilder struct {
	input *native.ProcessCallInput
}

func processCallInput() *processCallInputBuilder {
	return &processCallInputBuilder{
		input: &native.ProcessCallInput{
			ContextId:              "test-context",
			ContractName:           benchmarkcontract.CONTRACT_NAME,
			MethodName:             benchmarkcontract.METHOD_ADD.Name,
			InputArguments:         []*types.Argument{types.Int32Argument(1), types.Int32Argument(2)},
			AccessScope:            protocol.ACCESS_SCOPE_READ_ONLY,
			CallingPermissionScope: protocol.PERMISSION_SCOPE_SERVICE,
			CallerAddress:          builders.ClientAddressForEd25519SignerForTests(0),
		},
	}
}

func (b *processCallInputBuilder) WithUnknownContract() *processCallInputBuilder {
	b.input.ContractName = "UnknownContract"
	return b
}

func (b *processCallInputBuilder) WithUnknownMethod() *processCallInputBuilder {
	b.input.MethodName = "unknownMethod"
	return b
}

func (b *processCallInputBuilder) WithExternalMethod() *processCallInputBuilder {
	b.input.ContractName = benchmarkcontract.CONTRACT_NAME
	b.input.MethodName = benchmarkcontract.METHOD_ADD.Name
	b.input.InputArguments = []*types.Argument{types.Int32Argument(1), types.Int32Argument(2)}
	return b
}

func (b *processCallInputBuilder) WithInternalMethod() *processCallInputBuilder {
	b.input.ContractName = benchmarkcontract.CONTRACT_NAME
	b.input.MethodName = benchmarkcontract.METHOD_INIT.Name
	b.input.InputArguments = nil
	return b
}

func (b *processCallInputBuilder) WithExternalWriteMethod() *processCallInputBuilder {
	b.input.ContractName = benchmarkcontract.CONTRACT_NAME
	b.input.MethodName = benchmarkcontract.METHOD_SET.Name
	b.input.InputArguments = []*types.Argument{types.Int32Argument(3)}
	return b
}

func (b *processCallInputBuilder) WithSystemContract() *processCallInputBuilder {
	b.input.ContractName = deployments_systemcontract.CONTRACT_NAME
	b.input.MethodName = deployments_systemcontract.METHOD_GET_INFO
	b.input.InputArguments = []*types.Argument{types.StringArgument(deployments_systemcontract.CONTRACT_NAME)}
	return b
}

func (b *processCallInputBuilder) WithMethod(contractName primitives.ContractName, methodName primitives.MethodName) *processCallInputBuilder {
	b.input.ContractName = contractName
	b.input.MethodName = methodName
	b.input.InputArguments = nil
	return b
}

func (b *processCallInputBuilder) WithIncrementerMethod(methodName primitives.MethodName) *processCallInputBuilder {
	return b.WithMethod(incrementer.CONTRACT_NAME, methodName)
}

func (b *processCallInputBuilder) WithArgs(args ...interface{}) *processCallInputBuilder {
	arguments, err := types.ArgumentsFromNatives(args...)
	if err != nil {
		panic(err)
	}
	b.input.InputArguments = arguments
	return b
}

func (b *processCallInputBuilder) WithCaller(address primitives.ClientAddress) *processCallInputBuilder {
	b.input.CallerAddress = address
	return b
}

func (b *processCallInputBuilder) WithContextId(contextId types.ContextId) *processCallInputBuilder {
	b.input.ContextId = contextId
	return b
}

func (b *processCallInputBuilder) WithWriteAccess() *processCallInputBuilder {
	b.input.AccessScope = protocol.ACCESS_SCOPE_READ_WRITE
	return b
}

func (b *processCallInputBuilder) WithSystemPermissions() *processCallInputBuilder {
	b.input.CallingPermissionScope = protocol.PERMISSION_SCOPE_SYSTEM
	return b
}

func (b *processCallInputBuilder) Build() *native.ProcessCallInput {
	return b.input
}
