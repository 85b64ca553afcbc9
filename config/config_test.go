// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package config

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_ForTestsUsesMemoryPersistence(t *testing.T) {
	cfg := ForTests()

	require.Equal(t, STATE_PERSISTENCE_MEMORY, cfg.StatePersistenceType())
	require.True(t, cfg.LoggerFullLog())
	require.NoError(t, Validate(cfg))
}

func TestConfig_ForProductionSetsPersistencePath(t *testing.T) {
	cfg := ForProduction("/tmp/state")

	require.Equal(t, STATE_PERSISTENCE_LEVELDB, cfg.StatePersistenceType())
	require.Equal(t, "/tmp/state", cfg.StatePersistencePath())
	require.NoError(t, Validate(cfg))
}

func TestConfig_OverrideFromJson(t *testing.T) {
	cfg := ForTests()
	err := modifyFromJson(cfg, `
{
	"virtual-chain-id": 1000,
	"state-persistence-type": "leveldb",
	"state-persistence-path": "/var/state",
	"state-storage-cache-size": 7,
	"processor-call-latency-max": "3s",
	"logger-full-log": false
}`)
	require.NoError(t, err)

	require.EqualValues(t, 1000, cfg.VirtualChainId())
	require.Equal(t, STATE_PERSISTENCE_LEVELDB, cfg.StatePersistenceType())
	require.Equal(t, "/var/state", cfg.StatePersistencePath())
	require.EqualValues(t, 7, cfg.StateStorageCacheSize())
	require.Equal(t, 3*time.Second, cfg.ProcessorCallLatencyMax())
	require.False(t, cfg.LoggerFullLog())
}

func TestConfig_OverrideFromJsonRejectsNegativeNumbers(t *testing.T) {
	err := modifyFromJson(ForTests(), `{"state-storage-cache-size": -1}`)
	require.Error(t, err)
}

func TestConfig_Modify(t *testing.T) {
	cfg := ForTests()
	cfg.Modify(NodeConfigKeyValue{Key: STATE_STORAGE_CACHE_SIZE, Value: NodeConfigValue{Uint32Value: 99}})

	require.EqualValues(t, 99, cfg.StateStorageCacheSize())
}

func TestGetNodeConfigFromFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, ioutil.WriteFile(first, []byte(`{"state-persistence-type": "memory", "state-storage-cache-size": 3}`), 0644))
	require.NoError(t, ioutil.WriteFile(second, []byte(`{"state-storage-cache-size": 5}`), 0644))

	cfg, err := GetNodeConfigFromFiles(FilesPaths{first, second})
	require.NoError(t, err)
	require.Equal(t, STATE_PERSISTENCE_MEMORY, cfg.StatePersistenceType())
	require.EqualValues(t, 5, cfg.StateStorageCacheSize(), "later files should override earlier ones")
}

func TestGetNodeConfigFromFiles_MissingFile(t *testing.T) {
	_, err := GetNodeConfigFromFiles(FilesPaths{"/no/such/config.json"})
	require.Error(t, err)
}
