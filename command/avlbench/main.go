// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"

	"github.com/bitmark-inc/avlmap/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--check] [--config-file=FILE] [--count=N]", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
		if !fileExists(configurationFile) {
			exitwithstatus.Message("%s: configuration file: %q does not exist", program, configurationFile)
		}
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides
	if n := len(options["count"]); n > 0 {
		count, err := strconv.Atoi(options["count"][n-1])
		if nil != err || count <= 0 {
			exitwithstatus.Message("%s: invalid count: %q", program, options["count"][n-1])
		}
		masterConfiguration.Count = count
	}
	if len(options["check"]) > 0 {
		masterConfiguration.Check = true
	}
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}
	quiet := len(options["quiet"]) > 0

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	results, err := run(masterConfiguration)
	if nil != err {
		log.Criticalf("benchmark failed: %s", err)
		exitwithstatus.Message("%s: benchmark failed: %s", program, err)
	}

	if !quiet {
		for _, r := range results {
			fmt.Printf("%-5s  entries: %s  insert: %s  erase: %s  total: %s\n",
				r.name,
				humanize.Comma(int64(r.count)),
				r.insert,
				r.erase,
				r.total(),
			)
		}
	}
}

// run both benchmarks and log the times
func run(configuration *Configuration) ([]result, error) {
	log := logger.New("bench")

	log.Infof("count: %d  limit: %d  check: %v", configuration.Count, configuration.Limit, configuration.Check)

	t, err := benchTree(log, configuration.Count, configuration.Limit, configuration.Check)
	if nil != err {
		return nil, err
	}
	log.Infof("avl insert: %s  erase: %s", t.insert, t.erase)

	r, err := benchReference(log, configuration.Count)
	if nil != err {
		return nil, err
	}
	log.Infof("llrb insert: %s  erase: %s", r.insert, r.erase)

	b, err := benchBTree(log, configuration.Count)
	if nil != err {
		return nil, err
	}
	log.Infof("btree insert: %s  erase: %s", b.insert, b.erase)

	return []result{t, r, b}, nil
}
