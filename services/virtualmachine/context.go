// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package virtualmachine

import (
	"context"
	"github.com/google/uuid"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
)

type executionContext struct {
	ctx            context.Context
	contextId      types.ContextId
	blockHeight    primitives.BlockHeight
	accessScope    protocol.ExecutionAccessScope
	transientState *transientState
}

func (s *service) allocateExecutionContext(ctx context.Context, blockHeight primitives.BlockHeight, accessScope protocol.ExecutionAccessScope) *executionContext {
	s.contextsMutex.Lock()
	defer s.contextsMutex.Unlock()

	var state *transientState
	if accessScope == protocol.ACCESS_SCOPE_READ_WRITE {
		state = newTransientState()
	}

	newContext := &executionContext{
		ctx:            ctx,
		contextId:      types.ContextId(uuid.New().String()),
		blockHeight:    blockHeight,
		accessScope:    accessScope,
		transientState: state,
	}
	s.activeContexts[newContext.contextId] = newContext
	return newContext
}

func (s *service) destroyExecutionContext(contextId types.ContextId) {
	s.contextsMutex.Lock()
	defer s.contextsMutex.Unlock()

	delete(s.activeContexts, contextId)
}

func (s *service) loadExecutionContext(contextId types.ContextId) *executionContext {
	s.contextsMutex.RLock()
	defer s.contextsMutex.RUnlock()

	return s.activeContexts[contextId]
}
