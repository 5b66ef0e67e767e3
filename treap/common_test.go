// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// isHeap tests whether the subtree meets the max-heap invariant.
func (n *treapNode[K, P]) isHeap() bool {
	if n == nil {
		return true
	}

	left := n.left == nil || n.left.priority <= n.priority && n.left.isHeap()
	right := n.right == nil || n.right.priority <= n.priority && n.right.isHeap()

	return left && right
}

// hasExactSizes tests whether every node records the exact number of nodes in
// its subtree.
func (n *treapNode[K, P]) hasExactSizes() bool {
	if n == nil {
		return true
	}
	if !n.left.hasExactSizes() || !n.right.hasExactSizes() {
		return false
	}
	return n.size == 1+nodeSize(n.left)+nodeSize(n.right)
}

// countNodes returns the number of nodes reachable from the node.
func (n *treapNode[K, P]) countNodes() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.countNodes() + n.right.countNodes()
}

// assertInvariants fails the test when the treap does not satisfy the BST,
// heap, and size invariants.
func assertInvariants[K any, P cmp.Ordered](t *testing.T, tr *Treap[K, P]) {
	t.Helper()

	keys := tr.Keys()
	for i := 1; i < len(keys); i++ {
		if tr.compare(keys[i-1], keys[i]) >= 0 {
			t.Fatalf("keys are not strictly increasing at %d: %v",
				i, spew.Sdump(keys))
		}
	}
	if !tr.root.isHeap() {
		t.Fatalf("heap invariant violated: %v", tr)
	}
	if !tr.root.hasExactSizes() {
		t.Fatalf("size invariant violated: %v", tr)
	}
	if gotLen, wantLen := tr.Len(), tr.root.countNodes(); gotLen != wantLen {
		t.Fatalf("Len: unexpected length - got %d, want %d", gotLen,
			wantLen)
	}
}

// buildNodes returns a subtree holding the passed keys built by merging nodes
// with priorities drawn from rng.
func buildNodes(keys []int, rng *rand.Rand) *treapNode[int, float64] {
	var root *treapNode[int, float64]
	for _, key := range keys {
		root = merge(root, newTreapNode(key, rng.Float64()))
	}
	return root
}

// inOrder returns the keys of the subtree in ascending order.
func inOrder(node *treapNode[int, float64]) []int {
	tr := &Treap[int, float64]{root: node, compare: cmp.Compare[int]}
	return tr.Keys()
}

// TestParentStack ensures the parentStack functionality works as intended.
func TestParentStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		numNodes int
	}{
		{numNodes: 1},
		{numNodes: staticDepth},
		{numNodes: staticDepth + 1}, // Test dynamic code paths
	}

testLoop:
	for i, test := range tests {
		nodes := make([]*treapNode[int, int], 0, test.numNodes)
		for j := 0; j < test.numNodes; j++ {
			nodes = append(nodes, newTreapNode(j, j))
		}

		// Push all of the nodes onto the parent stack while testing
		// various stack properties.
		stack := &parentStack[int, int]{}
		for j, node := range nodes {
			stack.Push(node)

			// Ensure the stack length is the expected value.
			if stack.Len() != j+1 {
				t.Errorf("Len #%d (%d): unexpected stack "+
					"length - got %d, want %d", i, j,
					stack.Len(), j+1)
				continue testLoop
			}

			// Ensure the node at each index is the expected one.
			for k := 0; k <= j; k++ {
				atNode := stack.At(j - k)
				if !reflect.DeepEqual(atNode, nodes[k]) {
					t.Errorf("At #%d (%d): mismatched node "+
						"- got %v, want %v", i, j-k,
						atNode, nodes[k])
					continue testLoop
				}
			}
		}

		// Ensure each popped node is the expected one.
		for j := 0; j < len(nodes); j++ {
			node := stack.Pop()
			expected := nodes[len(nodes)-j-1]
			if !reflect.DeepEqual(node, expected) {
				t.Errorf("At #%d (%d): mismatched node - "+
					"got %v, want %v", i, j, node, expected)
				continue testLoop
			}
		}

		// Ensure the stack is now empty.
		if stack.Len() != 0 {
			t.Errorf("Len #%d: stack is not empty - got %d", i,
				stack.Len())
			continue testLoop
		}

		// Ensure attempting to retrieve a node at an index beyond the
		// stack's length returns nil.
		if node := stack.At(2); node != nil {
			t.Errorf("At #%d: did not give back nil - got %v", i,
				node)
			continue testLoop
		}

		// Ensure attempting to pop a node from an empty stack returns
		// nil.
		if node := stack.Pop(); node != nil {
			t.Errorf("Pop #%d: did not give back nil - got %v", i,
				node)
			continue testLoop
		}
	}
}

// TestSplitMergeAlgebra ensures that splitting a tree at any pivot, inclusive
// or not, partitions the keys correctly and that merging the two parts
// reproduces the original in-order sequence.
func TestSplitMergeAlgebra(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(0))
	keys := []int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}

	for pivot := 0; pivot <= 22; pivot++ {
		for _, inclusive := range []bool{false, true} {
			root := buildNodes(keys, rng)
			left, right := split(root, pivot, inclusive, cmp.Compare[int])

			// Every key must land on the expected side.
			var wantLeft, wantRight []int
			for _, key := range keys {
				if key < pivot || (inclusive && key == pivot) {
					wantLeft = append(wantLeft, key)
				} else {
					wantRight = append(wantRight, key)
				}
			}
			gotLeft, gotRight := inOrder(left), inOrder(right)
			if !slices.Equal(gotLeft, wantLeft) ||
				!slices.Equal(gotRight, wantRight) {

				t.Fatalf("split(%d, %v): unexpected parts - got "+
					"%v/%v, want %v/%v", pivot, inclusive,
					gotLeft, gotRight, wantLeft, wantRight)
			}
			for _, part := range []*treapNode[int, float64]{left, right} {
				if !part.isHeap() || !part.hasExactSizes() {
					t.Fatalf("split(%d, %v): part violates "+
						"invariants", pivot, inclusive)
				}
			}

			// Merging the parts back must restore every key.
			merged := merge(left, right)
			if got := inOrder(merged); !slices.Equal(got, keys) {
				t.Fatalf("merge after split(%d, %v): got %v, "+
					"want %v", pivot, inclusive, got, keys)
			}
			if !merged.isHeap() || !merged.hasExactSizes() {
				t.Fatalf("merge after split(%d, %v): invariants "+
					"violated", pivot, inclusive)
			}
		}
	}
}

// TestSplitEmpty ensures an empty tree splits into two empty trees.
func TestSplitEmpty(t *testing.T) {
	t.Parallel()

	left, right := split[int, int](nil, 5, false, cmp.Compare[int])
	if left != nil || right != nil {
		t.Fatalf("split: unexpected parts of empty tree - got %v/%v",
			left, right)
	}
}

// TestMergeTieBreak ensures that when both roots carry the same priority the
// right-hand root becomes the parent.
func TestMergeTieBreak(t *testing.T) {
	t.Parallel()

	left := newTreapNode(1, 7)
	right := newTreapNode(2, 7)
	root := merge(left, right)
	if root != right {
		t.Fatalf("merge: unexpected root - got key %d, want key %d",
			root.key, right.key)
	}
	if root.left != left || root.size != 2 {
		t.Fatalf("merge: unexpected shape - left %v, size %d",
			root.left, root.size)
	}

	// A strictly greater left priority wins.
	left = newTreapNode(1, 8)
	right = newTreapNode(2, 7)
	if root := merge(left, right); root != left {
		t.Fatalf("merge: unexpected root - got key %d, want key %d",
			root.key, left.key)
	}
}

// TestPopMin ensures the left-most node is detached and the remainder keeps
// its invariants.
func TestPopMin(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	keys := []int{3, 1, 4, 5, 9, 2, 6}
	root := buildNodes([]int{1, 2, 3, 4, 5, 6, 9}, rng)

	slices.Sort(keys)
	for i, want := range keys {
		var node *treapNode[int, float64]
		node, root = popMin(root)
		if node.key != want {
			t.Fatalf("popMin #%d: unexpected key - got %d, want %d",
				i, node.key, want)
		}
		if node.left != nil || node.right != nil || node.size != 1 {
			t.Fatalf("popMin #%d: detached node still linked", i)
		}
		if got, wantRest := inOrder(root), keys[i+1:]; !slices.Equal(got, wantRest) {
			t.Fatalf("popMin #%d: unexpected remainder - got %v, "+
				"want %v", i, got, wantRest)
		}
		if !root.isHeap() || !root.hasExactSizes() {
			t.Fatalf("popMin #%d: invariants violated", i)
		}
	}
	if root != nil {
		t.Fatalf("popMin: tree not empty after popping every key")
	}
}

// TestGetByIndex ensures nodes are found by their zero-based in-order position.
func TestGetByIndex(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))
	keys := make([]int, 100)
	for i := range keys {
		keys[i] = i * 3
	}
	root := buildNodes(keys, rng)
	for i, want := range keys {
		if got := root.getByIndex(i).key; got != want {
			t.Fatalf("getByIndex(%d): unexpected key - got %d, "+
				"want %d", i, got, want)
		}
	}
}
