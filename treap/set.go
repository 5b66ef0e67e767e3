// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"math/rand"
	"time"
)

// PrioritySource provides the priorities for keys added to a Set.  Float64
// must return independent values uniformly distributed in [0, 1).  A
// *rand.Rand satisfies the interface.
type PrioritySource interface {
	Float64() float64
}

// SetOption configures a Set when it is created.
type SetOption func(*setConfig)

type setConfig struct {
	source PrioritySource
}

// WithPrioritySource sets the source priorities are drawn from.
func WithPrioritySource(source PrioritySource) SetOption {
	return func(cfg *setConfig) {
		cfg.source = source
	}
}

// WithSeed makes the set draw its priorities from a deterministic generator
// seeded with the passed value.  It is intended for reproducible tests; sets
// used in production should rely on the default source.
func WithSeed(seed int64) SetOption {
	return WithPrioritySource(rand.New(rand.NewSource(seed)))
}

// Set is a Treap that assigns every new key a random priority so callers only
// deal with keys.  Each set owns its own generator which is seeded from the
// clock unless a source is provided with WithPrioritySource or WithSeed.
//
// All of the read operations of the embedded Treap are available on a Set.
// Keys added through the embedded Insert keep the priority passed to it.
type Set[K any] struct {
	*Treap[K, float64]

	source PrioritySource
}

// newSet returns a set wrapping the passed treap with the options applied.
func newSet[K any](t *Treap[K, float64], opts []SetOption) *Set[K] {
	var cfg setConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.source == nil {
		cfg.source = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Set[K]{Treap: t, source: cfg.source}
}

// NewSet returns a new empty set ready for use which orders keys by their
// natural ordering.
func NewSet[K cmp.Ordered](opts ...SetOption) *Set[K] {
	return newSet(New[K, float64](), opts)
}

// NewSetFunc returns a new empty set ready for use which orders keys with the
// passed comparison function.  See NewFunc for the requirements on compare.
func NewSetFunc[K any](compare func(a, b K) int, opts ...SetOption) *Set[K] {
	return newSet(NewFunc[K, float64](compare), opts)
}

// Add inserts the passed key with a freshly drawn priority.  It returns false
// when the key was already present, in which case nothing changes and no
// priority is drawn.
func (s *Set[K]) Add(key K) bool {
	if s.Has(key) {
		return false
	}
	s.Insert(key, s.source.Float64())
	return true
}

// Remove deletes the passed key.  It returns false when the key was not
// present.
func (s *Set[K]) Remove(key K) bool {
	if !s.Has(key) {
		return false
	}
	s.Delete(key)
	return true
}
