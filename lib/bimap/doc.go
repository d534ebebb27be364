// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bimap provides [BiMap], a strict one-to-one bidirectional
// map with insertion-ordered iteration.
//
// A BiMap never holds two pairs that share a key or a value. [BiMap.Set]
// enforces this by evicting whatever pair collides on either side (last
// write wins); [BiMap.Add] refuses to evict and reports
// [ErrKeyConflict] or [ErrValueConflict] instead. Lookups in either
// direction are O(1):
//
//	palette := bimap.New[string, any]()
//	palette.Set("Object", object.ObjectClass)
//	name, err := palette.Key(object.ObjectClass) // "Object"
//
// Iteration ([BiMap.Keys], [BiMap.Values], [BiMap.All], [BiMap.ForEach])
// visits pairs in the order they were inserted. Replacing a pair with
// Set removes the old pair and appends the new one, so a re-set pair
// moves to the end.
//
// Keys and values must be comparable. When V (or K) is an interface
// type, the dynamic value is checked on insertion and a
// non-comparable value (a slice, a map, a func) is rejected with
// [ErrNotComparable] rather than panicking inside the Go runtime.
// Lookups with a non-comparable value simply report absence.
//
// A BiMap is not safe for concurrent mutation. Concurrent readers are
// safe once writers have finished.
package bimap
