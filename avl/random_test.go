// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/avl"
)

// random inserts and erases compared against a plain map, with the
// full consistency check after every change
func TestRandomAgainstMap(t *testing.T) {
	r := rand.New(rand.NewSource(20141019))

	tree := avl.NewOrdered[int, int]()
	reference := make(map[int]int)

	for step := 0; step < 20000; step += 1 {
		k := r.Intn(500)
		switch r.Intn(5) {
		case 0, 1, 2:
			_, added := tree.Insert(k, step)
			_, present := reference[k]
			require.Equal(t, !present, added, "step: %d insert: %d", step, k)
			if !present {
				reference[k] = step
			}
		case 3:
			p := tree.Find(k)
			_, present := reference[k]
			require.Equal(t, present, !p.IsEnd(), "step: %d find: %d", step, k)
			if present {
				next, err := tree.Erase(p)
				require.NoError(t, err)
				delete(reference, k)
				if !next.IsEnd() {
					require.Greater(t, next.Key(), k)
					require.True(t, next.Prev().IsEnd() || next.Prev().Key() < k)
				}
			}
		default:
			v, ok := tree.Delete(k)
			e, present := reference[k]
			require.Equal(t, present, ok, "step: %d delete: %d", step, k)
			require.Equal(t, e, v, "step: %d delete: %d", step, k)
			delete(reference, k)
		}

		require.NoError(t, tree.Check(), "step: %d", step)
		require.Equal(t, len(reference), tree.Size(), "step: %d", step)
	}

	keys := make([]int, 0, len(reference))
	for k := range reference {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	i := 0
	for k, v := range tree.All() {
		require.Equal(t, keys[i], k)
		require.Equal(t, reference[k], v)
		i += 1
	}
	require.Equal(t, len(keys), i)
}

// the height of an AVL tree is below 1.4405·log2(n+2)
func TestHeightBound(t *testing.T) {
	tree := avl.NewOrdered[int, struct{}]()
	n := 1
	limit := 2 // ceiling of the bound for n = 1
	for i := 0; i < 1<<16; i += 1 {
		tree.Insert(i, struct{}{})
		if tree.Size() == n {
			require.LessOrEqual(t, tree.Height(), limit, "size: %d", n)
			n *= 2
			limit += 2 // 1.44 per doubling, rounded up generously
		}
	}
	require.NoError(t, tree.Check())

	// sequential insertion gives a perfectly balanced tree
	require.Equal(t, 17, tree.Height())
}
