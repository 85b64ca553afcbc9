// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package native

import (
	sdkContext "github.com/orbs-network/orbs-contract-sdk/go/context"
)

// contracts run directly from a signed transaction or query, so signer and caller are the same identity
func (s *contractSdk) SdkAddressGetSignerAddress(executionContextId sdkContext.ContextId, permissionScope sdkContext.PermissionScope) []byte {
	return s.call.CallerAddress
}

func (s *contractSdk) SdkAddressGetCallerAddress(executionContextId sdkContext.ContextId, permissionScope sdkContext.PermissionScope) []byte {
	return s.call.CallerAddress
}
