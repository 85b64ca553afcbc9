// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package repository

import (
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository/BenchmarkContract"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository/Incrementer"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository/_Deployments"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

var Contracts = map[primitives.ContractName]*types.ContractInfo{
	// system
	deployments_systemcontract.CONTRACT.Name: &deployments_systemcontract.CONTRACT,

	// public
	incrementer.CONTRACT.Name:       &incrementer.CONTRACT,
	benchmarkcontract.CONTRACT.Name: &benchmarkcontract.CONTRACT,

	// add new native contracts here
}
