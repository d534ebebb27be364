// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package object is the explicit object model that the seriall engine
// encodes and decodes. Go has no prototype chains, property descriptors,
// or interned symbols, so this package supplies them as ordinary values:
//
//   - [Undefined] is a distinct sentinel next to Go nil (null).
//   - Numbers are float64, bigints are *big.Int, strings and booleans
//     are themselves.
//   - [Symbol] values have pointer identity. A [SymbolRegistry] interns
//     symbols by key; only interned symbols can travel by key on the
//     wire.
//   - [Function] is a named, behaviorless stand-in for a callable.
//     Functions created with [NewClass] own a prototype [Object] whose
//     non-enumerable "constructor" property points back at the class.
//   - [Object] holds a prototype link and ordered data properties, each
//     with writable/enumerable/configurable [Flags].
//   - [Array], [Set], and [Map] are the ordered containers.
//
// Identity matters throughout. Two distinct *Object values with equal
// contents are different values, and a graph may reference the same
// value from several places (including from itself). [IdentityKey]
// gives every value, including non-comparable Go slices and maps, a
// key usable in a Go map so that callers can track what they have
// already visited.
//
// The model is not safe for concurrent mutation. Callers that share
// objects across goroutines synchronize externally. The exception is
// [SymbolRegistry], which is mutex-guarded because the process-wide
// [DefaultSymbols] is shared by default.
package object
