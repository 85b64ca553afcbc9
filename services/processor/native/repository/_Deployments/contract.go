// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package deployments_systemcontract

import (
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/pkg/errors"
)

const CONTRACT_NAME = "_Deployments"
const METHOD_GET_INFO = "getInfo"
const METHOD_DEPLOY_SERVICE = "deployService"

const DEPLOYED_KEY_SUFFIX = ".Deployed"

// getInfo results
const NOT_DEPLOYED = uint32(0)
const DEPLOYED = uint32(1)

var ErrAlreadyDeployed = errors.New("contract already deployed")

var CONTRACT = types.ContractInfo{
	Name:       CONTRACT_NAME,
	Permission: protocol.PERMISSION_SCOPE_SYSTEM,
	Methods: map[primitives.MethodName]types.MethodInfo{
		METHOD_GET_INFO:       methodGetInfo,
		METHOD_DEPLOY_SERVICE: methodDeployService,
	},
}

func deployedKey(serviceName string) []byte {
	return []byte(serviceName + DEPLOYED_KEY_SUFFIX)
}

///////////////////////////////////////////////////////////////////////////

var methodGetInfo = types.MethodInfo{
	Name:           METHOD_GET_INFO,
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: getInfo,
}

func getInfo(serviceName string) uint32 {
	if serviceName == CONTRACT_NAME { // getInfo on self
		return DEPLOYED
	}
	if len(state.ReadBytes(deployedKey(serviceName))) == 0 {
		return NOT_DEPLOYED
	}
	return DEPLOYED
}

///////////////////////////////////////////////////////////////////////////

var methodDeployService = types.MethodInfo{
	Name:           METHOD_DEPLOY_SERVICE,
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: deployService,
}

func deployService(serviceName string) error {
	if getInfo(serviceName) == DEPLOYED {
		return ErrAlreadyDeployed
	}

	state.WriteBytes(deployedKey(serviceName), []byte{0x01})
	return nil
}
