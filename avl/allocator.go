// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/avlmap/fault"
)

// index of a node in the arena
//
// in a child link zero means "no child", in a parent link zero means
// the sentinel
type index uint32

const (
	sentinel index = 0

	chunkBits = 10
	chunkSize = 1 << chunkBits
	chunkMask = chunkSize - 1
)

// MaxEntries - the largest number of entries a tree can hold
const MaxEntries = math.MaxInt32

// a node in the tree
type node[K, V any] struct {
	left    index // left sub-tree
	right   index // right sub-tree
	up      index // parent node, or next free node when on the free list
	balance int8  // -1, 0, +1
	inUse   bool
	key     K // key part for ordering
	value   V // value part for data storage
}

// arena of nodes in fixed size chunks, so a live node never moves
type arena[K, V any] struct {
	chunks    [][]node[K, V]
	allocated index // next never used index
	pool      index // linked list of reclaimed nodes
	freeNodes int   // number of nodes in the pool
}

// set up an arena holding only the sentinel
func (a *arena[K, V]) reset() {
	a.chunks = [][]node[K, V]{make([]node[K, V], chunkSize)}
	a.chunks[0][sentinel].inUse = true
	a.allocated = 1
	a.pool = sentinel
	a.freeNodes = 0
}

// address of a node
func (a *arena[K, V]) at(i index) *node[K, V] {
	return &a.chunks[i>>chunkBits][i&chunkMask]
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *arena[K, V]) newNode(key K, value V, up index) index {
	i := a.pool
	if sentinel == i {
		if 0 != a.freeNodes {
			fault.Panic("avl: pool corrupt")
		}
		i = a.allocated
		if int(i>>chunkBits) == len(a.chunks) {
			a.chunks = append(a.chunks, make([]node[K, V], chunkSize))
		}
		a.allocated += 1
	} else {
		a.pool = a.at(i).up
		a.freeNodes -= 1
	}
	*a.at(i) = node[K, V]{
		up:    up,
		inUse: true,
		key:   key,
		value: value,
	}
	return i
}

// reclaim a node and keep it in the pool
func (a *arena[K, V]) freeNode(i index) {
	*a.at(i) = node[K, V]{
		up: a.pool, // use as free list pointer
	}
	a.pool = i
	a.freeNodes += 1
}

// check that an index refers to a live non-sentinel node
func (a *arena[K, V]) live(i index) bool {
	return sentinel != i && i < a.allocated && a.at(i).inUse
}

// the owning link that refers to a node: the parent's left or right
// field, or the sentinel's left field for the real root
func (tree *Tree[K, V]) slot(i index) *index {
	p := tree.nodes.at(tree.nodes.at(i).up)
	if p.left == i {
		return &p.left
	}
	if p.right == i {
		return &p.right
	}
	fault.Panicf("avl: node: %d is not a child of its parent", i)
	return nil
}
