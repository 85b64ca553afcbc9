// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package instrumentation

import (
	"github.com/orbs-network/orbs-incrementer/config"
	"github.com/orbs-network/orbs-incrementer/services/virtualmachine"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"os"
)

func GetBootstrapCrashLogger() log.Logger {
	return log.GetLogger().WithOutput(log.NewFormattingOutput(os.Stderr, log.NewHumanReadableFormatter()))
}

// GetLogger writes json logs to stderr unless silent, and to path when given; stdout is left for call results
func GetLogger(path string, silent bool, cfg config.NodeConfig) (log.Logger, error) {
	outputs := make([]log.Output, 0, 2)

	if !silent {
		outputs = append(outputs, log.NewFormattingOutput(os.Stderr, log.NewJsonFormatter()))
	}

	if path != "" {
		logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, errors.Wrapf(err, "failed opening log file %s", path)
		}

		outputs = append(outputs, log.NewFormattingOutput(log.NewTruncatingFileWriter(logFile), log.NewJsonFormatter()))
	}

	logger := log.GetLogger().WithOutput(outputs...)

	conditionalFilter := log.NewConditionalFilter(false, nil)

	if !cfg.LoggerFullLog() {
		conditionalFilter = log.NewConditionalFilter(true, log.Or(log.OnlyErrors(), log.MatchField(virtualmachine.LogTag)))
	}

	return logger.WithFilters(conditionalFilter), nil
}
