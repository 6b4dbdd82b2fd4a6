// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Timing program for the avl ordered map
//
// This program inserts a run of ascending integer keys into an avl
// tree and then removes them again by repeatedly erasing the lowest
// node.  The same work is repeated on an LLRB sorted map and on a
// B-tree for comparison and all the times are reported.
package main
