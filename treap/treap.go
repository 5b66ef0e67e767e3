// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"fmt"
	"strings"
)

// Treap represents an ordered set of unique keys using a combination of binary
// search tree and heap semantics.  Every key is tagged with a priority which is
// only used to choose the root when two subtrees are merged, so when the
// priorities are drawn at random the shape of the tree is that of a random
// binary search tree regardless of the order of insertions and deletions.
//
// All structural changes are performed with two primitives, split and merge,
// and every node records the size of its subtree which allows order statistic
// queries such as Kth and Rank in O(log n) expected time.
//
// A Treap is not safe for concurrent access.  Note that this includes Next and
// Prev which temporarily split the tree and merge it back together.
type Treap[K any, P cmp.Ordered] struct {
	root    *treapNode[K, P]
	compare func(a, b K) int
}

// New returns a new empty treap ready for use which orders keys by their
// natural ordering.
func New[K cmp.Ordered, P cmp.Ordered]() *Treap[K, P] {
	return &Treap[K, P]{compare: cmp.Compare[K]}
}

// NewFunc returns a new empty treap ready for use which orders keys with the
// passed comparison function.  The function must return a negative number when
// a < b, a positive number when a > b and zero when they are equal, and it must
// describe a total order.
func NewFunc[K any, P cmp.Ordered](compare func(a, b K) int) *Treap[K, P] {
	return &Treap[K, P]{compare: compare}
}

// Len returns the number of keys stored in the treap.
func (t *Treap[K, P]) Len() int {
	return nodeSize(t.root)
}

// Height returns the height of the tree.  It is O(n) and is intended for
// diagnostics.
func (t *Treap[K, P]) Height() int {
	return t.root.height()
}

// get returns the treap node that contains the passed key.  It will return nil
// when the key does not exist.
func (t *Treap[K, P]) get(key K) *treapNode[K, P] {
	for node := t.root; node != nil; {
		// Traverse left or right depending on the result of the
		// comparison.
		compareResult := t.compare(key, node.key)
		if compareResult < 0 {
			node = node.left
			continue
		}
		if compareResult > 0 {
			node = node.right
			continue
		}

		// The key exists.
		return node
	}

	// A nil node was reached which means the key does not exist.
	return nil
}

// Has returns whether or not the passed key exists.
func (t *Treap[K, P]) Has(key K) bool {
	return t.get(key) != nil
}

// Insert adds the passed key with the given priority.  Nothing is changed when
// the key already exists, including its priority.
func (t *Treap[K, P]) Insert(key K, priority P) {
	if t.Has(key) {
		return
	}

	// Every key in the left part is less than the new key and every key in
	// the right part is greater, so the new node can be appended to the
	// left part and the result joined with the right part.
	left, right := split(t.root, key, false, t.compare)
	left = merge(left, newTreapNode(key, priority))
	t.root = merge(left, right)
}

// Delete removes the passed key if it exists.
func (t *Treap[K, P]) Delete(key K) {
	if !t.Has(key) {
		return
	}

	// After splitting at the key, the node holding it is the left-most
	// node of the right part.  Peel it off and join what remains.
	left, right := split(t.root, key, false, t.compare)
	node, right := popMin(right)
	log.Tracef("Deleted key %v (priority %v)", node.key, node.priority)
	t.root = merge(left, right)
}

// Next returns the smallest key that is strictly greater than the passed key.
// The returned bool is false when no such key exists.
//
// The tree is split right after the key and merged back together before
// returning, so it must not be used concurrently with any other operation.
func (t *Treap[K, P]) Next(key K) (K, bool) {
	left, right := split(t.root, key, true, t.compare)
	defer func() { t.root = merge(left, right) }()

	if right == nil {
		var zero K
		return zero, false
	}
	return right.min().key, true
}

// Prev returns the largest key that is strictly less than the passed key.  The
// returned bool is false when no such key exists.
//
// The tree is split at the key and merged back together before returning, so
// it must not be used concurrently with any other operation.
func (t *Treap[K, P]) Prev(key K) (K, bool) {
	left, right := split(t.root, key, false, t.compare)
	defer func() { t.root = merge(left, right) }()

	if left == nil {
		var zero K
		return zero, false
	}
	return left.max().key, true
}

// Kth returns the key with the given 1-based rank, so rank 1 is the smallest
// key and rank Len() is the largest.  The returned bool is false when the rank
// is out of range.
func (t *Treap[K, P]) Kth(rank int) (K, bool) {
	if rank < 1 || rank > t.Len() {
		var zero K
		return zero, false
	}

	return t.root.getByIndex(rank - 1).key, true
}

// Rank returns the number of keys stored in the treap that are strictly less
// than the passed key.  For a key that exists, Kth(Rank(key)+1) returns it.
func (t *Treap[K, P]) Rank(key K) int {
	var rank int
	for node := t.root; node != nil; {
		compareResult := t.compare(key, node.key)
		if compareResult <= 0 {
			node = node.left
			continue
		}
		rank += node.leftSize() + 1
		node = node.right
	}
	return rank
}

// Min returns the smallest key.  The returned bool is false when the treap is
// empty.
func (t *Treap[K, P]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.min().key, true
}

// Max returns the largest key.  The returned bool is false when the treap is
// empty.
func (t *Treap[K, P]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.max().key, true
}

// ForEach invokes the passed function with every key in the treap in ascending
// order.  Iteration stops when the function returns false.
func (t *Treap[K, P]) ForEach(fn func(k K) bool) {
	// Add the root node and all children to the left of it to the list of
	// nodes to traverse and loop until they, and all of their child nodes,
	// have been traversed.
	var parents parentStack[K, P]
	for node := t.root; node != nil; node = node.left {
		parents.Push(node)
	}
	for parents.Len() > 0 {
		node := parents.Pop()
		if !fn(node.key) {
			return
		}

		// Extend the nodes to traverse by all children to the left of
		// the current node's right child.
		for node := node.right; node != nil; node = node.left {
			parents.Push(node)
		}
	}
}

// Keys returns all keys in ascending order.
func (t *Treap[K, P]) Keys() []K {
	keys := make([]K, 0, t.Len())
	t.ForEach(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Reset efficiently removes all keys in the treap.
func (t *Treap[K, P]) Reset() {
	t.root = nil
}

// Split moves every key less than the pivot into the first returned treap and
// the remaining keys into the second.  The receiver is left empty.  Both
// returned treaps use the receiver's ordering.
func (t *Treap[K, P]) Split(pivot K) (*Treap[K, P], *Treap[K, P]) {
	left, right := split(t.root, pivot, false, t.compare)
	t.root = nil
	log.Tracef("Split at %v: %d/%d keys", pivot, nodeSize(left),
		nodeSize(right))
	return &Treap[K, P]{root: left, compare: t.compare},
		&Treap[K, P]{root: right, compare: t.compare}
}

// Merge moves every key of other into the receiver.  Every key of the receiver
// must be strictly less than every key of other, otherwise an Error with the
// ErrKeyOrder code is returned and neither treap is modified.  Merging a treap
// into itself returns ErrSelfMerge.  On success other is left empty.
func (t *Treap[K, P]) Merge(other *Treap[K, P]) error {
	if t == other {
		str := "cannot merge a treap into itself"
		log.Debugf("Merge rejected: %s", str)
		return treapError(ErrSelfMerge, str)
	}

	if t.root != nil && other.root != nil {
		leftMax := t.root.max().key
		rightMin := other.root.min().key
		if t.compare(leftMax, rightMin) >= 0 {
			str := fmt.Sprintf("largest key %v of the receiver is not "+
				"less than smallest key %v being merged", leftMax,
				rightMin)
			log.Debugf("Merge rejected: %s", str)
			return treapError(ErrKeyOrder, str)
		}
	}

	t.root = merge(t.root, other.root)
	other.root = nil
	log.Tracef("Merged treap: %v", newLogClosure(t.String))
	return nil
}

// String returns the in-order keys of the treap annotated with subtree sizes
// and priorities in a parenthesized form that reflects the shape of the tree.
func (t *Treap[K, P]) String() string {
	var buf strings.Builder
	var walk func(node *treapNode[K, P])
	walk = func(node *treapNode[K, P]) {
		if node == nil {
			buf.WriteString("nil")
			return
		}
		fmt.Fprintf(&buf, "(%v:%v/%d ", node.key, node.priority, node.size)
		walk(node.left)
		buf.WriteByte(' ')
		walk(node.right)
		buf.WriteByte(')')
	}
	walk(t.root)
	return buf.String()
}
