// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import "cmp"

const (
	// staticDepth is the size of the static array to use for keeping track
	// of the parent stack during treap iteration.  Since a treap has a very
	// high probability that the tree height is logarithmic, it is
	// exceedingly unlikely that the parent stack will ever exceed this size
	// even for extremely large numbers of items.
	staticDepth = 128
)

// treapNode represents a node in the treap.
type treapNode[K any, P cmp.Ordered] struct {
	key      K
	priority P
	size     int // Count of items within this subtree - the node itself counts as 1.
	left     *treapNode[K, P]
	right    *treapNode[K, P]
}

// newTreapNode returns a new node from the given key and priority.  The node is
// not initially linked to any others.
func newTreapNode[K any, P cmp.Ordered](key K, priority P) *treapNode[K, P] {
	return &treapNode[K, P]{key: key, priority: priority, size: 1}
}

// nodeSize returns the number of items in the subtree rooted at the passed
// node, and zero when there is no subtree.
func nodeSize[K any, P cmp.Ordered](node *treapNode[K, P]) int {
	if node == nil {
		return 0
	}
	return node.size
}

// leftSize returns the size of the subtree on the left-hand side, and zero if
// there is no tree present there.
func (n *treapNode[K, P]) leftSize() int {
	return nodeSize(n.left)
}

// rightSize returns the size of the subtree on the right-hand side, and zero if
// there is no tree present there.
func (n *treapNode[K, P]) rightSize() int {
	return nodeSize(n.right)
}

// updateSize recomputes the size of the node from its children.  It must be
// called whenever a child pointer changes and before any ancestor reads the
// size.
func (n *treapNode[K, P]) updateSize() {
	n.size = 1 + n.leftSize() + n.rightSize()
}

// setLeft replaces the left child and refreshes the size.
func (n *treapNode[K, P]) setLeft(child *treapNode[K, P]) {
	n.left = child
	n.updateSize()
}

// setRight replaces the right child and refreshes the size.
func (n *treapNode[K, P]) setRight(child *treapNode[K, P]) {
	n.right = child
	n.updateSize()
}

// min returns the left-most node of the subtree rooted at the node.
func (n *treapNode[K, P]) min() *treapNode[K, P] {
	node := n
	for node.left != nil {
		node = node.left
	}
	return node
}

// max returns the right-most node of the subtree rooted at the node.
func (n *treapNode[K, P]) max() *treapNode[K, P] {
	node := n
	for node.right != nil {
		node = node.right
	}
	return node
}

// height returns the number of nodes on the longest path from the node down to
// a leaf.
func (n *treapNode[K, P]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// getByIndex returns the node at the given zero-based in-order position.  The
// caller must ensure 0 <= idx < n.size.
func (n *treapNode[K, P]) getByIndex(idx int) *treapNode[K, P] {
	node := n
	for {
		leftSize := node.leftSize()
		switch {
		case idx < leftSize:
			node = node.left
		case idx == leftSize:
			return node
		default:
			node, idx = node.right, idx-leftSize-1
		}
	}
}

// split partitions the subtree rooted at node into two subtrees.  The left one
// holds every key less than the pivot, or less than or equal to it when
// inclusive is set, and the right one holds the rest.  Sizes of every node
// whose children change are recomputed on the way back up.
//
// Both returned subtrees keep the BST and heap invariants since nodes only
// ever move to a position below one of their original ancestors.
func split[K any, P cmp.Ordered](node *treapNode[K, P], pivot K,
	inclusive bool, compare func(a, b K) int) (*treapNode[K, P], *treapNode[K, P]) {

	if node == nil {
		return nil, nil
	}

	// The node belongs on the left when its key is below the pivot, or
	// equal to it for an inclusive split.  In that case only its right
	// subtree can still straddle the pivot.
	c := compare(node.key, pivot)
	if c < 0 || (inclusive && c == 0) {
		left, right := split(node.right, pivot, inclusive, compare)
		node.setRight(left)
		return node, right
	}

	left, right := split(node.left, pivot, inclusive, compare)
	node.setLeft(right)
	return left, node
}

// merge combines two subtrees into one.  Every key in left must be less than
// every key in right.  This is not checked.
//
// The root with the strictly greater priority becomes the root of the result
// and the other subtree is merged into the facing child slot.  Ties go to the
// right-hand root.
func merge[K any, P cmp.Ordered](left, right *treapNode[K, P]) *treapNode[K, P] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}

	if left.priority > right.priority {
		left.setRight(merge(left.right, right))
		return left
	}
	right.setLeft(merge(left, right.left))
	return right
}

// popMin detaches the left-most node of the subtree rooted at node.  It
// returns the detached node, with no children, along with the root of what
// remains.
func popMin[K any, P cmp.Ordered](node *treapNode[K, P]) (*treapNode[K, P], *treapNode[K, P]) {
	if node.left == nil {
		rest := node.right
		node.right = nil
		node.size = 1
		return node, rest
	}

	minNode, rest := popMin(node.left)
	node.setLeft(rest)
	return minNode, node
}

// parentStack represents a stack of parent treap nodes that are used during
// iteration.  It consists of a static array for holding the parents and a
// dynamic overflow slice.  It is extremely unlikely the overflow will ever be
// hit during normal operation, however, since a treap's height is
// probabilistic, the overflow case needs to be handled properly.  This approach
// is used because it is much more efficient for the majority case than
// dynamically allocating heap space every time the treap is iterated.
type parentStack[K any, P cmp.Ordered] struct {
	index    int
	items    [staticDepth]*treapNode[K, P]
	overflow []*treapNode[K, P]
}

// Len returns the current number of items in the stack.
func (s *parentStack[K, P]) Len() int {
	return s.index
}

// At returns the item n number of items from the top of the stack, where 0 is
// the topmost item, without removing it.  It returns nil if n exceeds the
// number of items on the stack.
func (s *parentStack[K, P]) At(n int) *treapNode[K, P] {
	index := s.index - n - 1
	if index < 0 {
		return nil
	}

	if index < staticDepth {
		return s.items[index]
	}

	return s.overflow[index-staticDepth]
}

// Pop removes the top item from the stack.  It returns nil if the stack is
// empty.
func (s *parentStack[K, P]) Pop() *treapNode[K, P] {
	if s.index == 0 {
		return nil
	}

	s.index--
	if s.index < staticDepth {
		node := s.items[s.index]
		s.items[s.index] = nil
		return node
	}

	node := s.overflow[s.index-staticDepth]
	s.overflow[s.index-staticDepth] = nil
	return node
}

// Push pushes the passed item onto the top of the stack.
func (s *parentStack[K, P]) Push(node *treapNode[K, P]) {
	if s.index < staticDepth {
		s.items[s.index] = node
		s.index++
		return
	}

	// Only increase the cap one item at a time since the max number of
	// items is related to the tree depth which requires exponentially more
	// items to increase.
	index := s.index - staticDepth
	if index+1 > cap(s.overflow) {
		overflow := make([]*treapNode[K, P], index+1)
		copy(overflow, s.overflow)
		s.overflow = overflow
	}
	s.overflow[index] = node
	s.index++
}
