// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import "cmp"

// Iterator represents an iterator for forwards and backwards iteration over
// the keys of a treap.
//
// Any call on the treap other than Has, Len, Kth, Rank, Min, Max, ForEach and
// Keys may change the shape of the tree, including Next and Prev, and
// invalidates the iterator.  A new iterator must be created afterwards.
type Iterator[K any, P cmp.Ordered] struct {
	root    *treapNode[K, P]  // Root node of treap iterator is associated with
	node    *treapNode[K, P]  // The node the iterator is positioned at
	parents parentStack[K, P] // The stack of parents needed to iterate
	isNew   bool              // Whether the iterator has been positioned
}

// First moves the iterator to the first key.  When there is only a single key
// both First and Last will point to the same key.  Returns false if there are
// no keys.
func (iter *Iterator[K, P]) First() bool {
	// The smallest key is in the left-most node.
	iter.isNew = false
	iter.node = nil
	iter.parents = parentStack[K, P]{}
	for node := iter.root; node != nil; node = node.left {
		if node.left == nil {
			iter.node = node
			return true
		}
		iter.parents.Push(node)
	}
	return false
}

// Last moves the iterator to the last key.  When there is only a single key
// both First and Last will point to the same key.  Returns false if there are
// no keys.
func (iter *Iterator[K, P]) Last() bool {
	// The highest key is in the right-most node.
	iter.isNew = false
	iter.node = nil
	iter.parents = parentStack[K, P]{}
	for node := iter.root; node != nil; node = node.right {
		if node.right == nil {
			iter.node = node
			return true
		}
		iter.parents.Push(node)
	}
	return false
}

// Next moves the iterator to the next key and returns false when the iterator
// is exhausted.  When invoked on a newly created iterator it will position the
// iterator at the first key.
func (iter *Iterator[K, P]) Next() bool {
	if iter.isNew {
		return iter.First()
	}

	if iter.node == nil {
		return false
	}

	// When there is no right node walk the parents until the parent's right
	// node is not equal to the previous child.  This will be the next node.
	if iter.node.right == nil {
		parent := iter.parents.Pop()
		for parent != nil && parent.right == iter.node {
			iter.node = parent
			parent = iter.parents.Pop()
		}
		iter.node = parent
		return iter.node != nil
	}

	// There is a right node, so the next node is the left-most node down
	// the right sub-tree.
	iter.parents.Push(iter.node)
	iter.node = iter.node.right
	for node := iter.node.left; node != nil; node = node.left {
		iter.parents.Push(iter.node)
		iter.node = node
	}
	return true
}

// Prev moves the iterator to the previous key and returns false when the
// iterator is exhausted.  When invoked on a newly created iterator it will
// position the iterator at the last key.
func (iter *Iterator[K, P]) Prev() bool {
	if iter.isNew {
		return iter.Last()
	}

	if iter.node == nil {
		return false
	}

	// When there is no left node walk the parents until the parent's left
	// node is not equal to the previous child.  This will be the previous
	// node.
	if iter.node.left == nil {
		parent := iter.parents.Pop()
		for parent != nil && parent.left == iter.node {
			iter.node = parent
			parent = iter.parents.Pop()
		}
		iter.node = parent
		return iter.node != nil
	}

	// There is a left node, so the previous node is the right-most node
	// down the left sub-tree.
	iter.parents.Push(iter.node)
	iter.node = iter.node.left
	for node := iter.node.right; node != nil; node = node.right {
		iter.parents.Push(iter.node)
		iter.node = node
	}
	return true
}

// Key returns the current key.  The zero value is returned when the iterator
// is not positioned at a valid key.
func (iter *Iterator[K, P]) Key() K {
	if iter.node == nil {
		var zero K
		return zero
	}
	return iter.node.key
}

// Valid indicates whether the iterator is positioned at a valid key.  It will
// be considered invalid when the iterator is newly created or exhausted.
func (iter *Iterator[K, P]) Valid() bool {
	return iter.node != nil
}

// Iterator returns a new iterator for the treap.  The newly returned iterator
// is not pointing to a valid key until a call to one of the methods to
// position it is made.
//
// For example:
//
//	iter := t.Iterator()
//	for iter.Next() {
//		fmt.Println(iter.Key())
//	}
func (t *Treap[K, P]) Iterator() *Iterator[K, P] {
	return &Iterator[K, P]{root: t.root, isNew: true}
}
