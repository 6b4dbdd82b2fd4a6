// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered map with the addition of
// parent links to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes live in a per-tree arena and are addressed by index.  Index
// zero is a sentinel whose left child is the real root; it is the
// parent of the root and also the End position of every iteration.
//
// Keys are unique: inserting an existing key does not change the
// stored value.  Erase does not copy data between nodes, so positions
// that refer to other nodes remain valid across the erase.  A position
// that referred to an erased node, or any position held across a
// Clear, must not be used again.
package avl
