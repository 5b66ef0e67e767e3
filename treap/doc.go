// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package treap implements an ordered set of unique keys with order statistics
using a treap, a combination of binary search tree and heap semantics.  It is a
self-organizing and randomized data structure that doesn't require complex
operations to maintain balance.  Search, insert, delete, successor,
predecessor, and rank queries are all O(log n) expected time.

Every change to the shape of the tree is made with two primitives.  Split
partitions a tree around a pivot key and merge joins two trees whose key ranges
do not overlap, picking the root with the greater priority.  Each node also
records the size of its subtree, which is what allows the k-th smallest key
and the rank of a key to be found by a single descent.

Two flavors are provided.  Treap takes the priority of every key from the
caller, which is useful for deterministic shapes in tests.  Set draws a uniform
random priority for every new key from a PrioritySource, which may be seeded
for reproducibility.

Neither type is safe for concurrent access.  In particular, Next and Prev split
the tree and merge it back together, so even these reads must not overlap with
any other operation.
*/
package treap
