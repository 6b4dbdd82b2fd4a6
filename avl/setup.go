// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlmap/fault"
)

// Less - strict weak ordering for keys
//
// two keys a and b are equivalent if neither Less(a, b) nor Less(b, a)
type Less[K any] func(a K, b K) bool

// Item - keys that order themselves
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// ItemLess - ordering for keys of type Item
func ItemLess[K Item](a K, b K) bool {
	return a.Compare(b) < 0
}

// Pair - a key and its associated value
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Tree - type to hold the nodes of a tree
type Tree[K, V any] struct {
	nodes    arena[K, V]
	less     Less[K]
	leftmost index // lowest node, sentinel if empty
	count    int
	limit    int
}

// New - create an initially empty tree ordered by less
func New[K, V any](less Less[K]) *Tree[K, V] {
	return NewWithLimit[K, V](less, MaxEntries)
}

// NewOrdered - create an initially empty tree for a naturally ordered key
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](cmp.Less[K])
}

// NewWithLimit - create an initially empty tree that will hold at most
// limit entries
//
// a limit outside 1..MaxEntries selects MaxEntries
func NewWithLimit[K, V any](less Less[K], limit int) *Tree[K, V] {
	if nil == less {
		fault.Panic("avl: nil ordering function")
	}
	if limit <= 0 || limit > MaxEntries {
		limit = MaxEntries
	}
	tree := &Tree[K, V]{
		less:  less,
		limit: limit,
	}
	tree.nodes.reset()
	tree.leftmost = sentinel
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return sentinel == tree.root()
}

// Size - number of nodes currently in the tree
func (tree *Tree[K, V]) Size() int {
	return tree.count
}

// MaxSize - number of nodes the tree is allowed to hold
func (tree *Tree[K, V]) MaxSize() int {
	return tree.limit
}

// Clear - remove all nodes in one step
//
// all positions and value references obtained from the tree become
// invalid
func (tree *Tree[K, V]) Clear() {
	tree.nodes.reset()
	tree.leftmost = sentinel
	tree.count = 0
}

// Root - position of the root node of the tree, End() if empty
func (tree *Tree[K, V]) Root() Iterator[K, V] {
	return tree.position(tree.root())
}

// the real root, sentinel if empty
func (tree *Tree[K, V]) root() index {
	return tree.nodes.at(sentinel).left
}

// internal: lowest node in a sub-tree
func (tree *Tree[K, V]) first(i index) index {
	for {
		l := tree.nodes.at(i).left
		if sentinel == l {
			return i
		}
		i = l
	}
}

// internal: highest node in a sub-tree
func (tree *Tree[K, V]) last(i index) index {
	for {
		r := tree.nodes.at(i).right
		if sentinel == r {
			return i
		}
		i = r
	}
}
