// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

// hashes of committed transactions live in state under a namespace no repository contract uses,
// and are written in the same state diff as the transaction's records
const COMMITTED_TRANSACTIONS_NAMESPACE = primitives.ContractName("_CommittedTransactions")

var committedMarker = []byte{0x01}

func (s *service) isTransactionCommitted(ctx context.Context, txHash primitives.Sha256) (bool, error) {
	values, err := s.stateStorage.ReadKeys(ctx, COMMITTED_TRANSACTIONS_NAMESPACE, []string{txHash.String()})
	if err != nil {
		return false, errors.Wrap(err, "failed reading committed transactions")
	}
	return len(values) == 1 && len(values[0]) > 0, nil
}

func recordCommittedTransaction(state *transientState, txHash primitives.Sha256) {
	state.setValue(COMMITTED_TRANSACTIONS_NAMESPACE, txHash.String(), committedMarker, true)
}
