// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"time"

	"github.com/NVIDIA/sortedmap"
	"github.com/bitmark-inc/logger"
	"github.com/google/btree"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// children per B-tree node
const btreeDegree = 32

// timings for one run
type result struct {
	name   string
	count  int
	insert time.Duration
	erase  time.Duration
}

// total time of both phases
func (r result) total() time.Duration {
	return r.insert + r.erase
}

// insert 0..count-1 then erase the lowest entry count times
func benchTree(log *logger.L, count int, limit int, check bool) (result, error) {
	tree := avl.NewWithLimit[uint64, uint64](cmp.Less[uint64], limit)
	r := result{
		name:  "avl",
		count: count,
	}

	start := time.Now()
	for i := 0; i < count; i += 1 {
		if _, added := tree.Insert(uint64(i), uint64(i)); !added {
			if tree.Size() >= tree.MaxSize() {
				return r, fault.ErrCapacityExceeded
			}
			return r, fault.ErrCountMismatch
		}
	}
	r.insert = time.Since(start)

	log.Debugf("avl size: %d  height: %d", tree.Size(), tree.Height())

	if check {
		if err := tree.Check(); nil != err {
			log.Errorf("avl check failed: %s", err)
			return r, err
		}
	}
	if count != tree.Size() {
		return r, fault.ErrCountMismatch
	}

	start = time.Now()
	for i := 0; i < count; i += 1 {
		if _, err := tree.Erase(tree.Begin()); nil != err {
			return r, err
		}
	}
	r.erase = time.Since(start)

	if !tree.IsEmpty() {
		return r, fault.ErrCountMismatch
	}
	return r, nil
}

// the same work on an LLRB sorted map
func benchReference(log *logger.L, count int) (result, error) {
	tree := sortedmap.NewLLRBTree(sortedmap.CompareUint64, nil)
	r := result{
		name:  "llrb",
		count: count,
	}

	start := time.Now()
	for i := 0; i < count; i += 1 {
		ok, err := tree.Put(uint64(i), uint64(i))
		if nil != err {
			return r, err
		}
		if !ok {
			return r, fault.ErrCountMismatch
		}
	}
	r.insert = time.Since(start)

	n, err := tree.Len()
	if nil != err {
		return r, err
	}
	log.Debugf("llrb size: %d", n)
	if count != n {
		return r, fault.ErrCountMismatch
	}

	start = time.Now()
	for i := 0; i < count; i += 1 {
		ok, err := tree.DeleteByIndex(0)
		if nil != err {
			return r, err
		}
		if !ok {
			return r, fault.ErrCountMismatch
		}
	}
	r.erase = time.Since(start)

	n, err = tree.Len()
	if nil != err {
		return r, err
	}
	if 0 != n {
		return r, fault.ErrCountMismatch
	}
	return r, nil
}

// the same work on an in-memory B-tree
func benchBTree(log *logger.L, count int) (result, error) {
	tree := btree.New(btreeDegree)
	r := result{
		name:  "btree",
		count: count,
	}

	start := time.Now()
	for i := 0; i < count; i += 1 {
		if nil != tree.ReplaceOrInsert(btree.Int(i)) {
			return r, fault.ErrCountMismatch
		}
	}
	r.insert = time.Since(start)

	log.Debugf("btree size: %d", tree.Len())
	if count != tree.Len() {
		return r, fault.ErrCountMismatch
	}

	start = time.Now()
	for i := 0; i < count; i += 1 {
		if nil == tree.DeleteMin() {
			return r, fault.ErrCountMismatch
		}
	}
	r.erase = time.Since(start)

	if 0 != tree.Len() {
		return r, fault.ErrCountMismatch
	}
	return r, nil
}
