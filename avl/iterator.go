// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avlmap/fault"
)

// Iterator - a position in a tree: either a node or the End position
type Iterator[K, V any] struct {
	tree *Tree[K, V]
	at   index
}

// make a position in this tree
func (tree *Tree[K, V]) position(i index) Iterator[K, V] {
	return Iterator[K, V]{
		tree: tree,
		at:   i,
	}
}

// Begin - return the position of the node with the lowest key value,
// End() if the tree is empty
func (tree *Tree[K, V]) Begin() Iterator[K, V] {
	return tree.position(tree.leftmost)
}

// End - return the position after the node with the highest key
func (tree *Tree[K, V]) End() Iterator[K, V] {
	return tree.position(sentinel)
}

// Last - return the position of the node with the highest key value,
// End() if the tree is empty
func (tree *Tree[K, V]) Last() Iterator[K, V] {
	return tree.position(tree.predecessor(sentinel))
}

// IsEnd - true if this is the End position
func (it Iterator[K, V]) IsEnd() bool {
	return sentinel == it.at
}

// Equal - true if both positions refer to the same place in the same tree
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.tree == other.tree && it.at == other.at
}

// Next - the position with the next highest key, End() after the
// highest key; End() stays at End()
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return it.tree.position(it.tree.successor(it.at))
}

// Prev - the position with the next lowest key; End() before the
// lowest key and the highest key before End()
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	return it.tree.position(it.tree.predecessor(it.at))
}

// Key - read the key at a position
func (it Iterator[K, V]) Key() K {
	return it.node().key
}

// Value - read the value at a position
func (it Iterator[K, V]) Value() V {
	return it.node().value
}

// Ref - address of the value at a position
//
// valid until the node is removed or the tree is cleared
func (it Iterator[K, V]) Ref() *V {
	return &it.node().value
}

// Set - overwrite the value at a position
func (it Iterator[K, V]) Set(value V) {
	it.node().value = value
}

// internal: the node of a non-End position
func (it Iterator[K, V]) node() *node[K, V] {
	if sentinel == it.at {
		fault.Panic("avl: dereference of End position")
	}
	return it.tree.nodes.at(it.at)
}

// internal: in-order successor, the sentinel after the highest node
func (tree *Tree[K, V]) successor(i index) index {
	if sentinel == i {
		return sentinel
	}
	n := tree.nodes.at(i)
	if sentinel != n.right {
		return tree.first(n.right)
	}

	// climb until arriving from a left branch; the root is the left
	// child of the sentinel so this always stops
	for {
		p := n.up
		n = tree.nodes.at(p)
		if n.left == i {
			return p
		}
		i = p
	}
}

// internal: in-order predecessor, the sentinel before the lowest node
func (tree *Tree[K, V]) predecessor(i index) index {
	n := tree.nodes.at(i)
	if sentinel != n.left {
		return tree.last(n.left)
	}
	if sentinel == i {
		return sentinel // empty tree
	}

	// climb until arriving from a right branch
	for {
		p := n.up
		if sentinel == p {
			return sentinel
		}
		n = tree.nodes.at(p)
		if n.right == i {
			return p
		}
		i = p
	}
}

// All - iterate over the key/value pairs in ascending key order
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := tree.leftmost; sentinel != i; i = tree.successor(i) {
			n := tree.nodes.at(i)
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Backward - iterate over the key/value pairs in descending key order
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := tree.predecessor(sentinel); sentinel != i; i = tree.predecessor(i) {
			n := tree.nodes.at(i)
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Ascend - call fn for each key/value pair in ascending key order
// until fn returns false
func (tree *Tree[K, V]) Ascend(fn func(K, V) bool) {
	for i := tree.leftmost; sentinel != i; i = tree.successor(i) {
		n := tree.nodes.at(i)
		if !fn(n.key, n.value) {
			return
		}
	}
}

// Keys - iterate over the keys in ascending order
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := tree.leftmost; sentinel != i; i = tree.successor(i) {
			if !yield(tree.nodes.at(i).key) {
				return
			}
		}
	}
}
