// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package virtualmachine

import (
	"github.com/orbs-network/orbs-incrementer/services/statestorage/adapter"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

type transientState struct {
	contracts map[primitives.ContractName]map[string]*transientRecord
}

type transientRecord struct {
	value   []byte
	isDirty bool
}

type keyValuePair struct {
	key     string
	value   []byte
	isDirty bool
}

func newTransientState() *transientState {
	return &transientState{
		contracts: make(map[primitives.ContractName]map[string]*transientRecord),
	}
}

func (t *transientState) getValue(contract primitives.ContractName, key string) ([]byte, bool) {
	records, found := t.contracts[contract]
	if !found {
		return nil, false
	}
	record, found := records[key]
	if !found {
		return nil, false
	}
	return record.value, true
}

func (t *transientState) setValue(contract primitives.ContractName, key string, value []byte, isDirty bool) {
	records, found := t.contracts[contract]
	if !found {
		records = make(map[string]*transientRecord)
		t.contracts[contract] = records
	}
	records[key] = &transientRecord{
		value:   value,
		isDirty: isDirty,
	}
}

func (t *transientState) forDirty(contract primitives.ContractName, f func(key string, value []byte)) {
	for key, record := range t.contracts[contract] {
		if record.isDirty {
			f(key, record.value)
		}
	}
}

func (t *transientState) toChainState() adapter.ChainState {
	res := adapter.ChainState{}
	for contract := range t.contracts {
		t.forDirty(contract, func(key string, value []byte) {
			if _, found := res[contract]; !found {
				res[contract] = make(map[string][]byte)
			}
			res[contract][key] = value
		})
	}
	return res
}
