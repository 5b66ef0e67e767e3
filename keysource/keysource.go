// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keysource

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/ordset/treap"
)

const (
	// TypeLevelDB identifies a goleveldb database.
	TypeLevelDB = "leveldb"

	// TypePebble identifies a pebble database.
	TypePebble = "pebble"
)

var (
	// ErrSourceClosed is returned when a closed source is used.
	ErrSourceClosed = errors.New("keysource: source closed")

	// ErrUnknownType is returned by Open for an unsupported database type.
	ErrUnknownType = errors.New("keysource: unknown database type")
)

// Source enumerates the keys stored in an existing key/value database.  A
// source never modifies the database.
type Source interface {
	// ForEachKey invokes fn with every key in ascending byte order.  The
	// passed slice is owned by fn.  Iteration stops at the first error
	// returned by fn, which is returned as is.
	ForEachKey(fn func(key []byte) error) error

	// Close releases the database.
	Close() error
}

// SupportedTypes returns the database types Open accepts.
func SupportedTypes() []string {
	return []string{TypeLevelDB, TypePebble}
}

// Open opens the existing database of the given type at path read-only.
func Open(dbType, path string) (Source, error) {
	var (
		src Source
		err error
	)
	switch dbType {
	case TypeLevelDB:
		src, err = openLevelDB(path)
	case TypePebble:
		src, err = openPebble(path)
	default:
		return nil, fmt.Errorf("%w %q -- supported types %v",
			ErrUnknownType, dbType, SupportedTypes())
	}
	if err != nil {
		return nil, fmt.Errorf("open %s database %s: %w", dbType, path, err)
	}

	log.Infof("Opened %s key source at %s", dbType, path)
	return src, nil
}

// Load adds every key of the source to a new set ordered by bytes.Compare.
func Load(src Source, opts ...treap.SetOption) (*treap.Set[[]byte], error) {
	set := treap.NewSetFunc(bytes.Compare, opts...)
	err := src.ForEachKey(func(key []byte) error {
		set.Add(key)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("Loaded %d keys (height %d)", set.Len(), set.Height())
	return set, nil
}

// copyKey returns a copy of an iterator key, which is only valid until the
// iterator moves.
func copyKey(key []byte) []byte {
	k := make([]byte, len(key))
	copy(k, key)
	return k
}
