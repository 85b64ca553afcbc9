// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package bootstrap

import (
	"github.com/orbs-network/orbs-incrementer/config"
	"github.com/orbs-network/orbs-incrementer/instrumentation/metric"
	"github.com/orbs-network/orbs-incrementer/services/processor/native"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/repository"
	"github.com/orbs-network/orbs-incrementer/services/statestorage"
	stateStorageAdapter "github.com/orbs-network/orbs-incrementer/services/statestorage/adapter"
	"github.com/orbs-network/orbs-incrementer/services/statestorage/adapter/leveldb"
	"github.com/orbs-network/orbs-incrementer/services/statestorage/adapter/memory"
	"github.com/orbs-network/orbs-incrementer/services/virtualmachine"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

type Runtime interface {
	VirtualMachine() virtualmachine.VirtualMachine
	StateStorage() statestorage.Service
	Close() error
}

type runtime struct {
	logger           log.Logger
	statePersistence stateStorageAdapter.StatePersistence
	stateStorage     statestorage.Service
	virtualMachine   virtualmachine.VirtualMachine
}

func NewRuntime(nodeConfig config.NodeConfig, logger log.Logger, metricRegistry metric.Registry) (Runtime, error) {
	if err := config.Validate(nodeConfig); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	statePersistence, err := newStatePersistence(nodeConfig, logger, metricRegistry)
	if err != nil {
		return nil, err
	}

	stateStorageService, err := statestorage.NewStateStorage(nodeConfig, statePersistence, logger, metricRegistry)
	if err != nil {
		_ = statePersistence.Close()
		return nil, err
	}

	processor := native.NewNativeProcessor(nodeConfig, repository.Contracts, logger, metricRegistry)
	virtualMachineService := virtualmachine.NewVirtualMachine(nodeConfig, stateStorageService, processor, logger, metricRegistry)

	logger.Info("runtime started", log.String("state-persistence", nodeConfig.StatePersistenceType()), log.Uint64("vcid", uint64(nodeConfig.VirtualChainId())))

	return &runtime{
		logger:           logger,
		statePersistence: statePersistence,
		stateStorage:     stateStorageService,
		virtualMachine:   virtualMachineService,
	}, nil
}

func newStatePersistence(nodeConfig config.NodeConfig, logger log.Logger, metricRegistry metric.Registry) (stateStorageAdapter.StatePersistence, error) {
	switch nodeConfig.StatePersistenceType() {
	case config.STATE_PERSISTENCE_MEMORY:
		return memory.NewStatePersistence(metricRegistry), nil
	case config.STATE_PERSISTENCE_LEVELDB:
		persistence, err := leveldb.NewStatePersistence(nodeConfig.StatePersistencePath(), logger, metricRegistry)
		if err != nil {
			return nil, errors.Wrapf(err, "failed opening state at %s", nodeConfig.StatePersistencePath())
		}
		return persistence, nil
	}
	return nil, errors.Errorf("unknown state persistence type '%s'", nodeConfig.StatePersistenceType())
}

func (r *runtime) VirtualMachine() virtualmachine.VirtualMachine {
	return r.virtualMachine
}

func (r *runtime) StateStorage() statestorage.Service {
	return r.stateStorage
}

func (r *runtime) Close() error {
	r.logger.Info("runtime shutting down")
	return r.statePersistence.Close()
}
