// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keysource

import (
	"github.com/cockroachdb/pebble"
)

// pebbleSource is a Source backed by a pebble database.
type pebbleSource struct {
	db     *pebble.DB
	closed bool
}

// openPebble opens the existing pebble database at dbPath read-only.
func openPebble(dbPath string) (*pebbleSource, error) {
	opts := &pebble.Options{
		ErrorIfNotExists: true,
		ReadOnly:         true,
	}
	db, err := pebble.Open(dbPath, opts)
	if err != nil {
		return nil, err
	}
	return &pebbleSource{db: db}, nil
}

// ForEachKey invokes fn with every key in ascending byte order.
//
// This is part of the Source interface.
func (s *pebbleSource) ForEachKey(fn func(key []byte) error) error {
	if s.closed {
		return ErrSourceClosed
	}

	iter, err := s.db.NewIter(nil)
	if err != nil {
		return err
	}
	for valid := iter.First(); valid; valid = iter.Next() {
		if err := fn(copyKey(iter.Key())); err != nil {
			iter.Close()
			return err
		}
	}
	if err := iter.Error(); err != nil {
		iter.Close()
		return err
	}
	return iter.Close()
}

// Close releases the database.
//
// This is part of the Source interface.
func (s *pebbleSource) Close() error {
	if s.closed {
		return ErrSourceClosed
	}
	s.closed = true
	log.Debugf("Closing pebble key source")
	return s.db.Close()
}
