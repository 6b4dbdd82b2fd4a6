// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// The four rotations shared by insert and delete.  Each takes the
// root of an unbalanced sub-tree, restructures it in place (the new
// root takes over the owning slot of the old one) and returns the new
// sub-tree root.
//
// Balance factor rules:
//
//   single rotation, child leaning to the heavy side  →  0 / 0
//   single rotation, child balanced (delete only)      →  old root ±1, new root ∓1
//   double rotation                                    →  depends on the pivot, pivot ends at 0

// internal: move links only, p.right becomes the sub-tree root
//
//	  p                 r
//	 / \               / \
//	a   r     →       p   c
//	   / \           / \
//	  b   c         a   b
func (tree *Tree[K, V]) linkLeft(p index) index {
	pn := tree.nodes.at(p)
	r := pn.right
	rn := tree.nodes.at(r)
	b := rn.left

	*tree.slot(p) = r
	rn.up = pn.up

	pn.right = b
	if sentinel != b {
		tree.nodes.at(b).up = p
	}

	rn.left = p
	pn.up = r
	return r
}

// internal: move links only, p.left becomes the sub-tree root
//
//	    p             l
//	   / \           / \
//	  l   c   →     a   p
//	 / \               / \
//	a   b             b   c
func (tree *Tree[K, V]) linkRight(p index) index {
	pn := tree.nodes.at(p)
	l := pn.left
	ln := tree.nodes.at(l)
	b := ln.right

	*tree.slot(p) = l
	ln.up = pn.up

	pn.left = b
	if sentinel != b {
		tree.nodes.at(b).up = p
	}

	ln.right = p
	pn.up = l
	return l
}

// single RR rotation: right child leans right or is balanced
func (tree *Tree[K, V]) rotateLeft(p index) index {
	r := tree.linkLeft(p)
	pn := tree.nodes.at(p)
	rn := tree.nodes.at(r)
	if 0 == rn.balance {
		pn.balance = 1
		rn.balance = -1
	} else {
		pn.balance = 0
		rn.balance = 0
	}
	return r
}

// single LL rotation: left child leans left or is balanced
func (tree *Tree[K, V]) rotateRight(p index) index {
	l := tree.linkRight(p)
	pn := tree.nodes.at(p)
	ln := tree.nodes.at(l)
	if 0 == ln.balance {
		pn.balance = -1
		ln.balance = 1
	} else {
		pn.balance = 0
		ln.balance = 0
	}
	return l
}

// double RL rotation: right child leans left
//
//	  p                   p2
//	 / \                /    \
//	a   p1      →      p      p1
//	   /  \           / \    /  \
//	  p2   d         a   b  c    d
//	 /  \
//	b    c
func (tree *Tree[K, V]) rotateRightLeft(p index) index {
	p1 := tree.nodes.at(p).right
	tree.linkRight(p1)
	p2 := tree.linkLeft(p)

	pn := tree.nodes.at(p)
	p1n := tree.nodes.at(p1)
	p2n := tree.nodes.at(p2)
	if +1 == p2n.balance {
		pn.balance = -1
	} else {
		pn.balance = 0
	}
	if -1 == p2n.balance {
		p1n.balance = 1
	} else {
		p1n.balance = 0
	}
	p2n.balance = 0
	return p2
}

// double LR rotation: left child leans right
//
//	    p                 p2
//	   / \              /    \
//	  p1  d     →      p1     p
//	 /  \             /  \   / \
//	a    p2          a    b c   d
//	    /  \
//	   b    c
func (tree *Tree[K, V]) rotateLeftRight(p index) index {
	p1 := tree.nodes.at(p).left
	tree.linkLeft(p1)
	p2 := tree.linkRight(p)

	pn := tree.nodes.at(p)
	p1n := tree.nodes.at(p1)
	p2n := tree.nodes.at(p2)
	if -1 == p2n.balance {
		pn.balance = 1
	} else {
		pn.balance = 0
	}
	if +1 == p2n.balance {
		p1n.balance = -1
	} else {
		p1n.balance = 0
	}
	p2n.balance = 0
	return p2
}

// rebalance a node whose balance would go to -2 or +2; the node still
// holds its old ±1 balance and heavy is the side that grew (or whose
// sibling shrank)
//
// returns the new sub-tree root and whether the sub-tree height is
// the same as it was before the height change that caused the
// imbalance (only possible on delete with a balanced heavy child)
func (tree *Tree[K, V]) rebalance(p index, rightHeavy bool) (index, bool) {
	pn := tree.nodes.at(p)
	if rightHeavy {
		child := tree.nodes.at(pn.right)
		if child.balance >= 0 {
			unchanged := 0 == child.balance
			return tree.rotateLeft(p), unchanged
		}
		return tree.rotateRightLeft(p), false
	}
	child := tree.nodes.at(pn.left)
	if child.balance <= 0 {
		unchanged := 0 == child.balance
		return tree.rotateRight(p), unchanged
	}
	return tree.rotateLeftRight(p), false
}
