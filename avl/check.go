// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Check - verify the structure of the whole tree
//
// parent links, balance factors against actual heights, key order,
// node count and the lowest node are all compared
func (tree *Tree[K, V]) Check() error {
	s := tree.nodes.at(sentinel)
	if sentinel != s.right || 0 != s.balance {
		return fault.ErrCorruptSentinel
	}

	c := checker[K, V]{tree: tree}
	if _, err := c.check(tree.root(), sentinel); nil != err {
		return err
	}
	if c.count != tree.count {
		return fault.ErrCorruptCount
	}
	if tree.count != tree.nodes.allocatedNodes() {
		return fault.ErrCorruptCount
	}
	if tree.first(tree.root()) != tree.leftmost {
		return fault.ErrCorruptLeftmost
	}
	return nil
}

// Height - number of levels in the tree, zero if empty
func (tree *Tree[K, V]) Height() int {
	return tree.height(tree.root())
}

func (tree *Tree[K, V]) height(i index) int {
	if sentinel == i {
		return 0
	}
	n := tree.nodes.at(i)
	l := tree.height(n.left)
	r := tree.height(n.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// number of nodes handed out and not yet returned to the pool
func (a *arena[K, V]) allocatedNodes() int {
	return int(a.allocated) - 1 - a.freeNodes
}

// state for the consistency walk
type checker[K, V any] struct {
	tree     *Tree[K, V]
	count    int
	previous index
	started  bool
}

// internal: consistency checker, returns the height of the sub-tree
func (c *checker[K, V]) check(i index, up index) (int, error) {
	if sentinel == i {
		return 0, nil
	}
	n := c.tree.nodes.at(i)
	if !n.inUse {
		return 0, fault.ErrCorruptNode
	}
	if n.up != up {
		return 0, fault.ErrCorruptParent
	}

	l, err := c.check(n.left, i)
	if nil != err {
		return 0, err
	}

	// in-order visit
	if c.started && !c.tree.less(c.tree.nodes.at(c.previous).key, n.key) {
		return 0, fault.ErrCorruptOrder
	}
	c.started = true
	c.previous = i
	c.count += 1

	r, err := c.check(n.right, i)
	if nil != err {
		return 0, err
	}

	if n.balance < -1 || n.balance > 1 || int(n.balance) != r-l {
		return 0, fault.ErrCorruptBalance
	}
	if l > r {
		return 1 + l, nil
	}
	return 1 + r, nil
}
