// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-incrementer/instrumentation/metric"
	"github.com/orbs-network/orbs-incrementer/services/processor/native"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-incrementer/services/statestorage"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"sync"
	"time"
)

var LogTag = log.Service("virtual-machine")

type Config interface {
	VirtualChainId() primitives.VirtualChainId
	ProcessorCallLatencyMax() time.Duration
}

type VirtualMachine interface {
	DeployContract(ctx context.Context, input *DeployInput) (*CallOutput, error)
	RunTransaction(ctx context.Context, signedTransaction *SignedTransaction) (*CallOutput, error)
	RunQuery(ctx context.Context, query *Query) (*CallOutput, error)
}

type metrics struct {
	runTransactionTime    *metric.Histogram
	runQueryTime          *metric.Histogram
	committedTransactions *metric.Gauge
	failedTransactions    *metric.Gauge
}

func newMetrics(m metric.Factory, config Config) *metrics {
	return &metrics{
		runTransactionTime:    m.NewLatency("VirtualMachine.RunTransactionTime.Millis", config.ProcessorCallLatencyMax()),
		runQueryTime:          m.NewLatency("VirtualMachine.RunQueryTime.Millis", config.ProcessorCallLatencyMax()),
		committedTransactions: m.NewGauge("VirtualMachine.CommittedTransactions.Count"),
		failedTransactions:    m.NewGauge("VirtualMachine.FailedTransactions.Count"),
	}
}

type service struct {
	config       Config
	stateStorage statestorage.Service
	processor    native.Processor
	logger       log.Logger
	metrics      *metrics

	// one call runs to completion before the next one starts
	callMutex sync.Mutex

	contextsMutex  sync.RWMutex
	activeContexts map[types.ContextId]*executionContext
}

func NewVirtualMachine(config Config, stateStorage statestorage.Service, processor native.Processor, parentLogger log.Logger, metricFactory metric.Factory) VirtualMachine {
	s := &service{
		config:         config,
		stateStorage:   stateStorage,
		processor:      processor,
		logger:         parentLogger.WithTags(LogTag),
		metrics:        newMetrics(metricFactory, config),
		activeContexts: make(map[types.ContextId]*executionContext),
	}

	processor.RegisterContractSdkCallHandler(s)

	return s
}
