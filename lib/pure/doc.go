// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package pure defines the wire model of a serialized object graph.
//
// A [Document] is a flat list of nodes. Slot 0 is the root; every other
// reference between nodes is an [Index] into the same list, which is how
// shared and cyclic references survive serialization. Each node is one
// of:
//
//   - [Raw]: a string, finite number, boolean, or null, written bare.
//   - [Array]: a list of element indices, written as a bare array.
//   - [Symbol], [BigInt], [Special]: values with no direct text form.
//   - [Prototype] and [Object]: a class reference plus, for objects,
//     ordered properties with their descriptor flags.
//   - [RefValue] and [RefAdapter]: references resolved against the
//     palettes and adapters of the decoding side.
//
// Tagged nodes are written as maps with single-letter keys:
//
//	T  tag             V  value
//	C  class index     K  key
//	N  adapter name    P  properties
//
// A property is written as [name, index, flags], where flags holds W,
// E, or C set to false only for a non-default descriptor.
//
// [Document.Tree] and [FromTree] convert between a Document and the
// generic map/slice/primitive tree that JSON, YAML, TOML, and CBOR
// codecs all produce, so a framing format never needs to know the node
// types. [Validate] checks structural soundness (indices in range,
// well-formed nodes) without resolving any reference.
package pure
