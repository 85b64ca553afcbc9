// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package config

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Validate reports every invalid value in cfg at once
func Validate(cfg NodeConfig) error {
	var result *multierror.Error

	switch cfg.StatePersistenceType() {
	case STATE_PERSISTENCE_MEMORY:
	case STATE_PERSISTENCE_LEVELDB:
		if cfg.StatePersistencePath() == "" {
			result = multierror.Append(result, errors.Errorf("%s must be set when %s is %s", STATE_PERSISTENCE_PATH, STATE_PERSISTENCE_TYPE, STATE_PERSISTENCE_LEVELDB))
		}
	default:
		result = multierror.Append(result, errors.Errorf("%s must be %s or %s, got '%s'", STATE_PERSISTENCE_TYPE, STATE_PERSISTENCE_MEMORY, STATE_PERSISTENCE_LEVELDB, cfg.StatePersistenceType()))
	}

	if cfg.StateStorageCacheSize() == 0 {
		result = multierror.Append(result, errors.Errorf("%s must be positive", STATE_STORAGE_CACHE_SIZE))
	}

	if cfg.ProcessorCallLatencyMax() <= 0 {
		result = multierror.Append(result, errors.Errorf("%s must be positive", PROCESSOR_CALL_LATENCY_MAX))
	}

	return result.ErrorOrNil()
}
