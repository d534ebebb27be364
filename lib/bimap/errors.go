// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bimap

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is. Every error returned by this
// package is an [*Error] wrapping one of these.
var (
	// ErrNoSuchKey is returned when a lookup by key finds nothing.
	ErrNoSuchKey = errors.New("bimap: no such key")

	// ErrNoSuchValue is returned when a lookup by value finds nothing.
	ErrNoSuchValue = errors.New("bimap: no such value")

	// ErrKeyConflict is returned by Add when the key is already bound.
	ErrKeyConflict = errors.New("bimap: key already exists")

	// ErrValueConflict is returned by Add when the value is already bound.
	ErrValueConflict = errors.New("bimap: value already exists")

	// ErrNotComparable is returned when a key or value cannot be used
	// as a map key (its dynamic type is a slice, map, or func).
	ErrNotComparable = errors.New("bimap: not comparable")
)

// Error carries the key or value that caused a BiMap operation to fail.
//
//	var bimapErr *bimap.Error
//	if errors.As(err, &bimapErr) {
//	    log.Printf("offending item: %v", bimapErr.Item)
//	}
type Error struct {
	// Err is one of the package sentinels.
	Err error
	// Item is the key or value the operation was given.
	Item any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Err, e.Item)
}

// Unwrap returns the sentinel so errors.Is works through the wrapper.
func (e *Error) Unwrap() error { return e.Err }
