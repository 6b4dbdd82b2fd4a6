// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - position of a specific key, End() if not present
func (tree *Tree[K, V]) Find(key K) Iterator[K, V] {
	return tree.position(tree.search(key))
}

// Contains - true if the key is present
func (tree *Tree[K, V]) Contains(key K) bool {
	return sentinel != tree.search(key)
}

// LowerBound - position of the first key that is not less than key
func (tree *Tree[K, V]) LowerBound(key K) Iterator[K, V] {
	result := sentinel
	for p := tree.root(); sentinel != p; {
		pn := tree.nodes.at(p)
		if tree.less(pn.key, key) {
			p = pn.right
		} else {
			result = p
			p = pn.left
		}
	}
	return tree.position(result)
}

// UpperBound - position of the first key that is greater than key
func (tree *Tree[K, V]) UpperBound(key K) Iterator[K, V] {
	result := sentinel
	for p := tree.root(); sentinel != p; {
		pn := tree.nodes.at(p)
		if tree.less(key, pn.key) {
			result = p
			p = pn.left
		} else {
			p = pn.right
		}
	}
	return tree.position(result)
}

func (tree *Tree[K, V]) search(key K) index {
	p := tree.root()
	for sentinel != p {
		pn := tree.nodes.at(p)
		switch {
		case tree.less(key, pn.key): // pn.key > key
			p = pn.left
		case tree.less(pn.key, key): // pn.key < key
			p = pn.right
		default:
			return p
		}
	}
	return sentinel
}
