// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrCapacityExceeded       = LengthError("tree capacity exceeded")
	ErrConfigurationNotATable = InvalidError("configuration did not return a table")
	ErrCorruptBalance         = ProcessError("tree balance factor is corrupt")
	ErrCorruptCount           = ProcessError("tree node count is corrupt")
	ErrCorruptLeftmost        = ProcessError("tree lowest node is corrupt")
	ErrCorruptNode            = ProcessError("tree refers to a free node")
	ErrCorruptOrder           = ProcessError("tree key order is corrupt")
	ErrCorruptParent          = ProcessError("tree parent link is corrupt")
	ErrCorruptSentinel        = ProcessError("tree sentinel is corrupt")
	ErrCountMismatch          = ProcessError("tree and reference count differ")
	ErrInvalidCount           = InvalidError("count must be positive")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidPosition        = InvalidError("invalid tree position")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrKeyNotFound            = NotFoundError("key not found")
	ErrNotAPlainFile          = InvalidError("not a plain file name")
	ErrNotADirectory          = InvalidError("not a directory")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
