// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package config

import (
	"time"
)

func defaultProductionConfig() mutableNodeConfig {
	cfg := emptyConfig()

	cfg.SetUint32(VIRTUAL_CHAIN_ID, 42)

	cfg.SetString(STATE_PERSISTENCE_TYPE, STATE_PERSISTENCE_LEVELDB)
	cfg.SetString(STATE_PERSISTENCE_PATH, "./_data/state")
	cfg.SetUint32(STATE_STORAGE_CACHE_SIZE, 1024)

	cfg.SetDuration(PROCESSOR_CALL_LATENCY_MAX, 10*time.Second)

	cfg.SetBool(LOGGER_FULL_LOG, false)

	return cfg
}

// config for a durable runtime keeping its state under persistencePath
func ForProduction(persistencePath string) mutableNodeConfig {
	cfg := defaultProductionConfig()
	if persistencePath != "" {
		cfg.SetString(STATE_PERSISTENCE_PATH, persistencePath)
	}
	return cfg
}

// config for tests, state is kept in memory
func ForTests() mutableNodeConfig {
	cfg := defaultProductionConfig()

	cfg.SetString(STATE_PERSISTENCE_TYPE, STATE_PERSISTENCE_MEMORY)
	cfg.SetString(STATE_PERSISTENCE_PATH, "")
	cfg.SetUint32(STATE_STORAGE_CACHE_SIZE, 16)
	cfg.SetDuration(PROCESSOR_CALL_LATENCY_MAX, 1*time.Second)
	cfg.SetBool(LOGGER_FULL_LOG, true)

	return cfg
}
