// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"math/rand"
	"testing"
)

// TestIteratorEmpty ensures an iterator over an empty treap is never valid.
func TestIteratorEmpty(t *testing.T) {
	t.Parallel()

	iter := New[int, int]().Iterator()
	if iter.Valid() {
		t.Fatal("Valid: new iterator is valid")
	}
	if iter.First() || iter.Last() || iter.Next() || iter.Prev() {
		t.Fatal("iterator over empty treap positioned at a key")
	}
	if got := iter.Key(); got != 0 {
		t.Fatalf("Key: unexpected key - got %d, want 0", got)
	}
}

// TestIterator ensures forwards and backwards iteration visits every key in
// order and that changing direction works as expected.
func TestIterator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		numKeys int
	}{
		{numKeys: 1},
		{numKeys: 2},
		{numKeys: 10},
		{numKeys: 1000},
	}

	rng := rand.New(rand.NewSource(0))
	for i, test := range tests {
		testTreap := New[int, float64]()
		for _, key := range rng.Perm(test.numKeys) {
			testTreap.Insert(key, rng.Float64())
		}

		// A new iterator moved forwards starts at the first key.
		iter := testTreap.Iterator()
		var want int
		for iter.Next() {
			if got := iter.Key(); got != want {
				t.Fatalf("Next #%d: unexpected key - got %d, "+
					"want %d", i, got, want)
			}
			want++
		}
		if want != test.numKeys {
			t.Fatalf("Next #%d: unexpected iterate count - got %d, "+
				"want %d", i, want, test.numKeys)
		}
		if iter.Valid() {
			t.Fatalf("Valid #%d: exhausted iterator is valid", i)
		}

		// A new iterator moved backwards starts at the last key.
		iter = testTreap.Iterator()
		want = test.numKeys - 1
		for iter.Prev() {
			if got := iter.Key(); got != want {
				t.Fatalf("Prev #%d: unexpected key - got %d, "+
					"want %d", i, got, want)
			}
			want--
		}
		if want != -1 {
			t.Fatalf("Prev #%d: unexpected iterate count - stopped "+
				"at %d", i, want)
		}

		// Change direction in the middle.
		if !iter.First() {
			t.Fatalf("First #%d: no keys", i)
		}
		mid := test.numKeys / 2
		for j := 0; j < mid; j++ {
			iter.Next()
		}
		if mid > 0 {
			if !iter.Prev() || iter.Key() != mid-1 {
				t.Fatalf("Prev #%d: unexpected key after direction "+
					"change - got %d, want %d", i, iter.Key(),
					mid-1)
			}
		}
		if !iter.Last() || iter.Key() != test.numKeys-1 {
			t.Fatalf("Last #%d: unexpected key - got %d, want %d",
				i, iter.Key(), test.numKeys-1)
		}
	}
}
