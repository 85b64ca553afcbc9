// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package config

import (
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"time"
)

type NodeConfig interface {
	// shared
	VirtualChainId() primitives.VirtualChainId

	// state storage
	StatePersistenceType() string
	StatePersistencePath() string
	StateStorageCacheSize() uint32

	// processor
	ProcessorCallLatencyMax() time.Duration

	// logger
	LoggerFullLog() bool
}

type mutableNodeConfig interface {
	NodeConfig
	Set(key string, value NodeConfigValue) mutableNodeConfig
	SetDuration(key string, value time.Duration) mutableNodeConfig
	SetUint32(key string, value uint32) mutableNodeConfig
	SetString(key string, value string) mutableNodeConfig
	SetBool(key string, value bool) mutableNodeConfig
	Modify(newValues ...NodeConfigKeyValue)
}

type NodeConfigKeyValue struct {
	Key   string
	Value NodeConfigValue
}

type NodeConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}

const (
	VIRTUAL_CHAIN_ID = "VIRTUAL_CHAIN_ID"

	STATE_PERSISTENCE_TYPE   = "STATE_PERSISTENCE_TYPE"
	STATE_PERSISTENCE_PATH   = "STATE_PERSISTENCE_PATH"
	STATE_STORAGE_CACHE_SIZE = "STATE_STORAGE_CACHE_SIZE"

	PROCESSOR_CALL_LATENCY_MAX = "PROCESSOR_CALL_LATENCY_MAX"

	LOGGER_FULL_LOG = "LOGGER_FULL_LOG"
)

const (
	STATE_PERSISTENCE_MEMORY  = "memory"
	STATE_PERSISTENCE_LEVELDB = "leveldb"
)

type config struct {
	kv map[string]NodeConfigValue
}

func emptyConfig() mutableNodeConfig {
	return &config{
		kv: make(map[string]NodeConfigValue),
	}
}

func (c *config) Set(key string, value NodeConfigValue) mutableNodeConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetString(key string, value string) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{BoolValue: value}
	return c
}

func (c *config) Modify(newValues ...NodeConfigKeyValue) {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
}

func (c *config) VirtualChainId() primitives.VirtualChainId {
	return primitives.VirtualChainId(c.kv[VIRTUAL_CHAIN_ID].Uint32Value)
}

func (c *config) StatePersistenceType() string {
	return c.kv[STATE_PERSISTENCE_TYPE].StringValue
}

func (c *config) StatePersistencePath() string {
	return c.kv[STATE_PERSISTENCE_PATH].StringValue
}

func (c *config) StateStorageCacheSize() uint32 {
	return c.kv[STATE_STORAGE_CACHE_SIZE].Uint32Value
}

func (c *config) ProcessorCallLatencyMax() time.Duration {
	return c.kv[PROCESSOR_CALL_LATENCY_MAX].DurationValue
}

func (c *config) LoggerFullLog() bool {
	return c.kv[LOGGER_FULL_LOG].BoolValue
}
