// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keysource

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// levelDBSource is a Source backed by a goleveldb database.
type levelDBSource struct {
	db     *leveldb.DB
	closed bool
}

// openLevelDB opens the existing goleveldb database at dbPath read-only.
func openLevelDB(dbPath string) (*levelDBSource, error) {
	opts := opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
		Strict:         opt.DefaultStrict,
	}
	ldb, err := leveldb.OpenFile(dbPath, &opts)
	if err != nil {
		return nil, err
	}
	return &levelDBSource{db: ldb}, nil
}

// ForEachKey invokes fn with every key in ascending byte order.
//
// This is part of the Source interface.
func (s *levelDBSource) ForEachKey(fn func(key []byte) error) error {
	if s.closed {
		return ErrSourceClosed
	}

	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()
	for iter.Next() {
		if err := fn(copyKey(iter.Key())); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Close releases the database.
//
// This is part of the Source interface.
func (s *levelDBSource) Close() error {
	if s.closed {
		return ErrSourceClosed
	}
	s.closed = true
	log.Debugf("Closing leveldb key source")
	return s.db.Close()
}
