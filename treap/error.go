// Copyright (c) 2014 Conformal Systems LLC.
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrKeyOrder indicates an attempt to merge two treaps whose key
	// ranges overlap or are in the wrong order.
	ErrKeyOrder ErrorCode = iota

	// ErrSelfMerge indicates an attempt to merge a treap into itself.
	ErrSelfMerge

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrKeyOrder:  "ErrKeyOrder",
	ErrSelfMerge: "ErrSelfMerge",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a misuse of the treap API.  The caller can use type
// assertions or errors.As to determine the specific error code.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// treapError creates an Error given a set of arguments.
func treapError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
