// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package config

import (
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	require.NoError(t, Validate(defaultProductionConfig()))
}

func TestValidateConfig_FailsOnUnknownPersistenceType(t *testing.T) {
	cfg := defaultProductionConfig()
	cfg.SetString(STATE_PERSISTENCE_TYPE, "redis")

	require.Error(t, Validate(cfg))
}

func TestValidateConfig_FailsOnLeveldbWithoutPath(t *testing.T) {
	cfg := defaultProductionConfig()
	cfg.SetString(STATE_PERSISTENCE_PATH, "")

	require.Error(t, Validate(cfg))
}

func TestValidateConfig_ReportsAllProblems(t *testing.T) {
	cfg := defaultProductionConfig()
	cfg.SetString(STATE_PERSISTENCE_TYPE, "redis")
	cfg.SetUint32(STATE_STORAGE_CACHE_SIZE, 0)
	cfg.SetDuration(PROCESSOR_CALL_LATENCY_MAX, 0)

	err := Validate(cfg)
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "validation error should aggregate problems")
	require.Len(t, merr.Errors, 3)
}
