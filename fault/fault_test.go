// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/avlmap/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrLengthOne, false, false, true, false, false},
		{ErrLengthTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
		{fault.ErrKeyNotFound, false, false, false, true, false},
		{fault.ErrInvalidPosition, false, true, false, false, false},
		{fault.ErrCapacityExceeded, false, false, true, false, false},
		{fault.ErrCorruptBalance, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// single instances compare equal, also through errors.Is
func TestInstances(t *testing.T) {
	var err error = fault.ErrKeyNotFound
	if !errors.Is(err, fault.ErrKeyNotFound) {
		t.Errorf("errors.Is failed for: %v", err)
	}
	if errors.Is(err, fault.NotFoundError("key not found ")) {
		t.Errorf("different text matched: %v", err)
	}
	if "invalid tree position" != fault.ErrInvalidPosition.Error() {
		t.Errorf("unexpected text: %q", fault.ErrInvalidPosition.Error())
	}
}

// without a logger channel a panic still carries the message
func TestPanicWithoutLogger(t *testing.T) {
	defer func() {
		r := recover()
		if "abort" != r {
			t.Errorf("recovered: %v  expected: %q", r, "abort")
		}
	}()
	fault.Panic("abort")
}

func TestPanicfWithoutLogger(t *testing.T) {
	defer func() {
		r := recover()
		if "abort, see last messages in log file" != r {
			t.Errorf("recovered: %v", r)
		}
	}()
	fault.Panicf("node: %d", 42)
}
