// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Erase - remove the node at a position
//
// returns the position following the removed node
func (tree *Tree[K, V]) Erase(position Iterator[K, V]) (Iterator[K, V], error) {
	if position.tree != tree || !tree.nodes.live(position.at) {
		return tree.End(), fault.ErrInvalidPosition
	}
	next := tree.successor(position.at)
	tree.erase(position.at)
	return tree.position(next), nil
}

// EraseRange - remove the nodes from first up to but not including last
//
// returns last
func (tree *Tree[K, V]) EraseRange(first Iterator[K, V], last Iterator[K, V]) (Iterator[K, V], error) {
	if first.tree != tree || last.tree != tree {
		return tree.End(), fault.ErrInvalidPosition
	}
	if !last.IsEnd() && !tree.nodes.live(last.at) {
		return tree.End(), fault.ErrInvalidPosition
	}
	if first.Equal(last) {
		return last, nil
	}
	if !tree.nodes.live(first.at) {
		return tree.End(), fault.ErrInvalidPosition
	}
	if !last.IsEnd() && tree.less(last.Key(), first.Key()) {
		return tree.End(), fault.ErrInvalidPosition
	}
	for it := first; !it.Equal(last); {
		next := tree.successor(it.at)
		tree.erase(it.at)
		it = tree.position(next)
	}
	return last, nil
}

// Delete - removes a specific item from the tree
//
// returns the value of the removed node and true, or the zero value
// and false if the key was not present
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	i := tree.search(key)
	if sentinel == i {
		var zero V
		return zero, false
	}
	value := tree.nodes.at(i).value // preserve the value part
	tree.erase(i)
	return value, true
}

// internal delete routine
func (tree *Tree[K, V]) erase(q index) {
	qn := tree.nodes.at(q)
	if sentinel != qn.left && sentinel != qn.right {
		tree.exchange(q, tree.first(qn.right))
	}

	// q now has at most one child
	p := qn.up
	child := qn.left
	if sentinel == child {
		child = qn.right
	}

	pp := tree.slot(q)
	fromLeft := pp == &tree.nodes.at(p).left
	*pp = child
	if sentinel != child {
		tree.nodes.at(child).up = p
	}

	if q == tree.leftmost {
		if sentinel == child {
			tree.leftmost = p
		} else {
			tree.leftmost = tree.first(child)
		}
	}

	tree.retraceErase(p, fromLeft)

	tree.nodes.freeNode(q) // return deleted node to pool
	tree.count -= 1
}

// swap a node that has two children with its in-order successor s
// (leftmost node of the right sub-tree), exchanging links and balance
// but not data, so every position remains attached to its own key
//
// afterwards q has no left child
func (tree *Tree[K, V]) exchange(q index, s index) {
	qn := tree.nodes.at(q)
	sn := tree.nodes.at(s)

	qUp, qLeft, qRight := qn.up, qn.left, qn.right
	sUp, sRight := sn.up, sn.right

	*tree.slot(q) = s
	sn.up = qUp

	sn.left = qLeft
	tree.nodes.at(qLeft).up = s

	qn.left = sentinel
	qn.right = sRight
	if sentinel != sRight {
		tree.nodes.at(sRight).up = q
	}

	if sUp == q {
		// s was the right child of q
		sn.right = q
		qn.up = s
	} else {
		sn.right = qRight
		tree.nodes.at(qRight).up = s
		tree.nodes.at(sUp).left = q
		qn.up = sUp
	}

	qn.balance, sn.balance = sn.balance, qn.balance
}

// walk up from the parent of a removed node while the sub-tree
// height has shrunk
//
// fromLeft indicates which branch of p lost height
func (tree *Tree[K, V]) retraceErase(p index, fromLeft bool) {
	for sentinel != p {
		pn := tree.nodes.at(p)

		// record the path upwards before any rotation moves p
		up := pn.up
		upLeft := tree.nodes.at(up).left == p

		if fromLeft {
			// left branch has shrunk
			switch pn.balance {
			case -1:
				pn.balance = 0
			case 0:
				pn.balance = 1
				return
			default: // balance == 1, rebalance
				if _, unchanged := tree.rebalance(p, true); unchanged {
					return
				}
			}
		} else {
			// right branch has shrunk
			switch pn.balance {
			case 1:
				pn.balance = 0
			case 0:
				pn.balance = -1
				return
			default: // balance == -1, rebalance
				if _, unchanged := tree.rebalance(p, false); unchanged {
					return
				}
			}
		}

		p = up
		fromLeft = upLeft
	}
}
