// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"github.com/orbs-network/orbs-incrementer/bootstrap"
	"github.com/orbs-network/orbs-incrementer/config"
	"github.com/orbs-network/orbs-incrementer/instrumentation"
	"github.com/orbs-network/orbs-incrementer/instrumentation/metric"
	"github.com/orbs-network/orbs-incrementer/jsonapi"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
)

func main() {
	logger := instrumentation.GetBootstrapCrashLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected error in main goroutine", log.Error(errors.Errorf("unknown error: %v", r)))
			os.Exit(2)
		}
	}()

	scriptPath := flag.String("script", "", "path/to/script.json")
	silentLog := flag.Bool("silent", false, "disable log output to stderr")
	pathToLog := flag.String("log", "", "path/to/runtime.log")
	version := flag.Bool("version", false, "returns information about version")

	var configFiles config.FilesPaths
	flag.Var(&configFiles, "config", "path/to/config.json")

	flag.Parse()

	if *version {
		fmt.Println(config.GetVersion())
		return
	}

	cfg, err := config.GetNodeConfigFromFiles(configFiles)
	if err != nil {
		logger.Error("error reading configuration", log.Error(err))
		os.Exit(1)
	}

	logger, err = instrumentation.GetLogger(*pathToLog, *silentLog, cfg)
	if err != nil {
		instrumentation.GetBootstrapCrashLogger().Error("error creating logger", log.Error(err))
		os.Exit(1)
	}

	if *scriptPath == "" {
		logger.Error("missing --script", log.Error(errors.New("nothing to run")))
		os.Exit(1)
	}

	source, err := ioutil.ReadFile(*scriptPath)
	if err != nil {
		logger.Error("error reading script", log.Error(err))
		os.Exit(1)
	}

	script, err := jsonapi.ParseScript(source)
	if err != nil {
		logger.Error("error parsing script", log.Error(err))
		os.Exit(1)
	}

	metricRegistry := metric.NewRegistry()
	runtime, err := bootstrap.NewRuntime(cfg, logger, metricRegistry)
	if err != nil {
		logger.Error("error starting runtime", log.Error(err))
		os.Exit(1)
	}

	outputs, runErr := jsonapi.NewRunner(runtime.VirtualMachine(), cfg.VirtualChainId(), logger).Run(context.Background(), script)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(outputs); err != nil {
		logger.Error("error writing outputs", log.Error(err))
	}

	metricRegistry.Report(logger)

	if err := runtime.Close(); err != nil {
		logger.Error("error closing runtime", log.Error(err))
	}

	if runErr != nil {
		logger.Error("script aborted", log.Error(runErr))
		os.Exit(3)
	}
}
