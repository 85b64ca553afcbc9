// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-incrementer/crypto/digest"
	"github.com/orbs-network/orbs-incrementer/services/processor/native"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

var ErrVirtualChainMismatch = errors.New("transaction virtual chain does not match")
var ErrMissingArgument = errors.New("transaction argument is missing")
var ErrDuplicateTransactionAlreadyCommitted = errors.New("transaction already committed")

// RunTransaction executes a signed call with write access, state changes are committed only on success
func (s *service) RunTransaction(ctx context.Context, signedTransaction *SignedTransaction) (*CallOutput, error) {
	if signedTransaction == nil || signedTransaction.Transaction == nil {
		return nil, errors.New("transaction is missing")
	}
	tx := signedTransaction.Transaction
	for i, arg := range tx.InputArguments {
		if arg == nil {
			return nil, errors.Wrapf(ErrMissingArgument, "argument %d", i)
		}
	}
	txHash := digest.CalcTxHash(signedTransaction)
	logger := s.logger.WithTags(log.Stringable("tx-hash", txHash), log.Stringable("contract", tx.ContractName), log.Stringable("method", tx.MethodName))

	if tx.VirtualChainId != s.config.VirtualChainId() {
		return nil, errors.Wrapf(ErrVirtualChainMismatch, "expected %d, got %d", s.config.VirtualChainId(), tx.VirtualChainId)
	}

	if err := verifyTransactionSignature(signedTransaction); err != nil {
		logger.Info("transaction rejected", log.Error(err))
		return nil, err
	}

	callerAddress, err := getSignerAddress(tx)
	if err != nil {
		return nil, err
	}

	s.callMutex.Lock()
	defer s.callMutex.Unlock()

	start := time.Now()
	defer s.metrics.runTransactionTime.RecordSince(start)

	height, err := s.stateStorage.GetStateStorageBlockHeight(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading state block height")
	}

	committed, err := s.isTransactionCommitted(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if committed {
		logger.Info("transaction rejected", log.Error(ErrDuplicateTransactionAlreadyCommitted))
		return nil, errors.Wrapf(ErrDuplicateTransactionAlreadyCommitted, "tx hash %s", txHash)
	}

	executionContext := s.allocateExecutionContext(ctx, height, protocol.ACCESS_SCOPE_READ_WRITE)
	defer s.destroyExecutionContext(executionContext.contextId)

	deployed, err := s.isDeployed(ctx, executionContext, tx.ContractName)
	if err != nil {
		return nil, err
	}
	if !deployed {
		s.metrics.failedTransactions.Inc()
		logger.Info("transaction sent to a contract that is not deployed")
		output := notDeployedOutput(tx.ContractName, height)
		output.TxHash = txHash
		return output, nil
	}

	output, err := s.processor.ProcessCall(ctx, &native.ProcessCallInput{
		ContextId:              executionContext.contextId,
		ContractName:           tx.ContractName,
		MethodName:             tx.MethodName,
		InputArguments:         tx.InputArguments,
		AccessScope:            protocol.ACCESS_SCOPE_READ_WRITE,
		CallingPermissionScope: protocol.PERMISSION_SCOPE_SERVICE,
		CallerAddress:          callerAddress,
	})
	if output.CallResult != protocol.EXECUTION_RESULT_SUCCESS {
		s.metrics.failedTransactions.Inc()
		logger.Info("transaction failed, state is unchanged", log.Stringable("result", output.CallResult), log.Error(err))
		return &CallOutput{
			CallResult:      output.CallResult,
			OutputArguments: output.OutputArguments,
			BlockHeight:     height,
			TxHash:          txHash,
		}, nil
	}

	recordCommittedTransaction(executionContext.transientState, txHash)
	committedHeight, err := s.commitTransientState(ctx, executionContext)
	if err != nil {
		return nil, errors.Wrapf(err, "failed committing transaction %s", txHash)
	}
	s.metrics.committedTransactions.Inc()
	logger.Info("transaction committed", log.Uint64("block-height", uint64(committedHeight)))

	return &CallOutput{
		CallResult:      protocol.EXECUTION_RESULT_SUCCESS,
		OutputArguments: output.OutputArguments,
		BlockHeight:     committedHeight,
		TxHash:          txHash,
	}, nil
}
