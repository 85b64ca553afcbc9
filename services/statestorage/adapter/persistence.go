// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package adapter

import (
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

type ChainState map[primitives.ContractName]map[string][]byte

// StatePersistence holds the latest committed state and the height it was committed at.
// A diff value of zero length deletes its key.
type StatePersistence interface {
	Write(height primitives.BlockHeight, diff ChainState) error
	Read(contract primitives.ContractName, key string) ([]byte, bool, error)
	ReadMetadata() (primitives.BlockHeight, error)
	Close() error
}

func IsZeroValue(value []byte) bool {
	return len(value) == 0
}
