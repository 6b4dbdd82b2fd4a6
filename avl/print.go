// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// returns the maximum depth of the tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root(), "", root, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[K, V]) printTree(w io.Writer, i index, prefix string, br branch, printData bool) int {
	if sentinel == i {
		return 0
	}
	n := tree.nodes.at(i)
	rd := 0
	ld := 0
	if sentinel != n.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := "-"
	if sentinel != n.up {
		up = fmt.Sprint(tree.nodes.at(n.up).key)
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %+2d\n", n.key, n.value, up, n.balance)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", n.key, up)
	}
	if sentinel != n.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// Dump - list the nodes in key order with their balance factors
func (tree *Tree[K, V]) Dump(w io.Writer) {
	if sentinel != tree.root() {
		fmt.Fprintf(w, "root: %v\n", tree.nodes.at(tree.root()).key)
	}
	for i := tree.leftmost; sentinel != i; i = tree.successor(i) {
		n := tree.nodes.at(i)
		fmt.Fprintf(w, "%v %d\n", n.key, n.balance)
	}
}
