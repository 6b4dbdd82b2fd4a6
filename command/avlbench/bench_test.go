// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

const (
	dir = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func writeConfiguration(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "avlbench.conf")
	err := os.WriteFile(fileName, []byte(text), 0600)
	require.NoError(t, err)
	return fileName
}

func TestBenchTree(t *testing.T) {
	log := logger.New("testing")

	r, err := benchTree(log, 5000, avl.MaxEntries, true)
	require.NoError(t, err)
	assert.Equal(t, "avl", r.name)
	assert.Equal(t, 5000, r.count)
	assert.Equal(t, r.insert+r.erase, r.total())
}

func TestBenchTreeCapacity(t *testing.T) {
	log := logger.New("testing")

	_, err := benchTree(log, 100, 10, false)
	assert.Equal(t, fault.ErrCapacityExceeded, err)
}

func TestBenchReference(t *testing.T) {
	log := logger.New("testing")

	r, err := benchReference(log, 5000)
	require.NoError(t, err)
	assert.Equal(t, "llrb", r.name)
	assert.Equal(t, 5000, r.count)
}

func TestBenchBTree(t *testing.T) {
	log := logger.New("testing")

	r, err := benchBTree(log, 5000)
	require.NoError(t, err)
	assert.Equal(t, "btree", r.name)
	assert.Equal(t, 5000, r.count)
}

func TestRun(t *testing.T) {
	results, err := run(&Configuration{
		Count: 1000,
		Limit: avl.MaxEntries,
		Check: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "avl", results[0].name)
	assert.Equal(t, "llrb", results[1].name)
	assert.Equal(t, "btree", results[2].name)
}

func TestConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.count = 12345
M.limit = 0
M.check = true
M.logging = {
    directory = "logs",
    file = "bench.log",
    levels = { DEFAULT = "info" },
}
return M
`)

	c, err := getConfiguration(fileName)
	require.NoError(t, err)

	base := filepath.Dir(fileName)
	assert.Equal(t, base, c.DataDirectory)
	assert.Equal(t, 12345, c.Count)
	assert.Equal(t, avl.MaxEntries, c.Limit, "zero limit selects the maximum")
	assert.True(t, c.Check)
	assert.Equal(t, filepath.Join(base, "logs"), c.Logging.Directory)
	assert.Equal(t, "bench.log", c.Logging.File)
	assert.Equal(t, "info", c.Logging.Levels[logger.DefaultTag])

	info, err := os.Stat(c.Logging.Directory)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigurationErrors(t *testing.T) {
	_, err := getConfiguration(writeConfiguration(t, `return { count = -1 }`))
	assert.Equal(t, fault.ErrInvalidCount, err)

	_, err = getConfiguration(writeConfiguration(t, `return { logging = { file = "sub/bench.log" } }`))
	assert.Equal(t, fault.ErrNotAPlainFile, err)

	_, err = getConfiguration(writeConfiguration(t, `return { data_directory = "missing" }`))
	assert.Error(t, err)

	_, err = getConfiguration(writeConfiguration(t, `return 1`))
	assert.Equal(t, fault.ErrConfigurationNotATable, err)
}

func TestAbsolutePath(t *testing.T) {
	assert.Equal(t, "/data/log", absolutePath("/data", "log"))
	assert.Equal(t, "/data/log", absolutePath("/data", "./log/"))
	assert.Equal(t, "/var/log", absolutePath("/data", "/var/log"))
	assert.Equal(t, "/var/log", absolutePath("/data", "/var//tmp/../log"))
}

func TestFileExists(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "avlbench.conf")
	assert.False(t, fileExists(fileName))

	err := os.WriteFile(fileName, []byte("return {}"), 0600)
	require.NoError(t, err)
	assert.True(t, fileExists(fileName))
}
