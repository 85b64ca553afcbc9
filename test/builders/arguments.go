// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package builders

import (
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
)

/// Test builders for: []*types.Argument

// Arguments panics on unsupported native types, callers are tests with literal values
func Arguments(args ...interface{}) []*types.Argument {
	res, err := types.ArgumentsFromNatives(args...)
	if err != nil {
		panic(err)
	}
	return res
}
