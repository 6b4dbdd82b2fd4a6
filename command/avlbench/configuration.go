// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "."

	defaultCount = 1000000

	defaultLogDirectory = "log"
	defaultLogFile      = "avlbench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// fresh map each time since decoding merges into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// Configuration - settings for a benchmark run
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Count         int                  `gluamapper:"count" json:"count"`
	Limit         int                  `gluamapper:"limit" json:"limit"`
	Check         bool                 `gluamapper:"check" json:"check"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults relative to the current
// directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Count:         defaultCount,
		Limit:         avl.MaxEntries,
		Check:         false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	// absolute path to the main directory
	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	if options.Count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if options.Limit <= 0 || options.Limit > avl.MaxEntries {
		options.Limit = avl.MaxEntries
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "." == options.DataDirectory {
		options.DataDirectory = baseDirectory // same directory as the configuration file
	}
	options.DataDirectory = absolutePath(baseDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrNotADirectory
	}

	// log file must be a simple name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.ErrNotAPlainFile
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = absolutePath(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// a relative name is taken as relative to directory
func absolutePath(directory string, name string) string {
	if !filepath.IsAbs(name) {
		name = filepath.Join(directory, name)
	}
	return filepath.Clean(name)
}

// true if the file can be stat-ed
func fileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
