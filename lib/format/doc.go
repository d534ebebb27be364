// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package format frames [pure.Document] values as bytes.
//
// Four framings carry the same document:
//
//   - JSON, the default and the most compact text form. Input may be
//     JSONC: // and /* */ comments and trailing commas are stripped
//     before parsing, so hand-edited documents can be annotated.
//   - YAML, for reading and editing by hand.
//   - TOML. A TOML document must be a table and has no null, so the
//     node list is stored under the key "pures" and a null node is
//     written as an empty inline table. No tagged node is ever empty,
//     so the mapping is unambiguous.
//   - CBOR with Core Deterministic Encoding (RFC 8949 §4.2): sorted map
//     keys, smallest integer encoding, no indefinite-length items. The
//     same document always produces the same bytes, which makes CBOR
//     the framing of choice for hashing and packing.
//
// Every framing goes through [pure.Document.Tree] and [pure.FromTree],
// so the number types each decoder produces (int, int64, uint64,
// float64, json.Number) are normalized in one place.
package format
