// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// At - value stored for a key
func (tree *Tree[K, V]) At(key K) (V, error) {
	i := tree.search(key)
	if sentinel == i {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return tree.nodes.at(i).value, nil
}

// Ref - address of the value stored for a key, a zero value is
// inserted if the key is not present
//
// the address is valid until the node is removed or the tree is cleared
func (tree *Tree[K, V]) Ref(key K) (*V, error) {
	i, _ := tree.insert(key, func() V {
		var zero V
		return zero
	})
	if sentinel == i {
		return nil, fault.ErrCapacityExceeded
	}
	return &tree.nodes.at(i).value, nil
}
