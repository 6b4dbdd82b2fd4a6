// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns the position of the new node and true, or, if an equivalent
// key is already present, the position of that node and false without
// changing its value
//
// if the tree already holds MaxSize nodes nothing is changed and the
// result is End() and false
func (tree *Tree[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	i, added := tree.insert(key, func() V { return value })
	return tree.position(i), added
}

// Emplace - insert a key/value pair, same result as Insert
func (tree *Tree[K, V]) Emplace(item Pair[K, V]) (Iterator[K, V], bool) {
	return tree.Insert(item.Key, item.Value)
}

// TryEmplace - insert a key whose value is produced by create
//
// create is only called if the key is absent and there is room for a
// new node
func (tree *Tree[K, V]) TryEmplace(key K, create func() V) (Iterator[K, V], bool) {
	i, added := tree.insert(key, create)
	return tree.position(i), added
}

// InsertPairs - insert each pair in turn, returns the number of new
// nodes
func (tree *Tree[K, V]) InsertPairs(items ...Pair[K, V]) int {
	n := 0
	for _, item := range items {
		if _, added := tree.Insert(item.Key, item.Value); added {
			n += 1
		}
	}
	return n
}

// InsertRange - insert each item from first up to but not including
// last, returns the number of new nodes
//
// first and last may belong to another tree; they must not belong to
// this one
func (tree *Tree[K, V]) InsertRange(first Iterator[K, V], last Iterator[K, V]) int {
	n := 0
	for it := first; !it.Equal(last) && !it.IsEnd(); it = it.Next() {
		if _, added := tree.Insert(it.Key(), it.Value()); added {
			n += 1
		}
	}
	return n
}

// internal routine for insert
//
// returns the index of the new or existing node; sentinel if the tree
// is full
func (tree *Tree[K, V]) insert(key K, create func() V) (index, bool) {

	p := tree.root()
	if sentinel == p {
		if tree.count >= tree.limit {
			return sentinel, false
		}
		n := tree.nodes.newNode(key, create(), sentinel)
		tree.nodes.at(sentinel).left = n
		tree.leftmost = n
		tree.count = 1
		return n, true
	}

	// descend to the attachment point
	goLeft := false
	for {
		pn := tree.nodes.at(p)
		var next index
		if tree.less(key, pn.key) {
			goLeft = true
			next = pn.left
		} else if tree.less(pn.key, key) {
			goLeft = false
			next = pn.right
		} else {
			return p, false
		}
		if sentinel == next {
			break
		}
		p = next
	}

	if tree.count >= tree.limit {
		return sentinel, false
	}

	n := tree.nodes.newNode(key, create(), p)
	if goLeft {
		tree.nodes.at(p).left = n
		if p == tree.leftmost {
			tree.leftmost = n
		}
	} else {
		tree.nodes.at(p).right = n
	}
	tree.count += 1

	tree.retraceInsert(n)
	return n, true
}

// walk up from a newly attached node until the height of a sub-tree
// did not grow
func (tree *Tree[K, V]) retraceInsert(i index) {
	for {
		p := tree.nodes.at(i).up
		if sentinel == p {
			return
		}
		pn := tree.nodes.at(p)

		if pn.left == i {
			// left branch has grown
			switch pn.balance {
			case 1:
				pn.balance = 0
				return
			case 0:
				pn.balance = -1
			default: // balance == -1, rebalance
				tree.rebalance(p, false)
				return
			}
		} else {
			// right branch has grown
			switch pn.balance {
			case -1:
				pn.balance = 0
				return
			case 0:
				pn.balance = 1
			default: // balance == 1, rebalance
				tree.rebalance(p, true)
				return
			}
		}
		i = p
	}
}
