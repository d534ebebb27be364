// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package builtin provides the default resolution context: a palette of
// the object model's built-in classes and well-known symbols, and
// adapters for the Go standard library types that commonly appear in
// object graphs.
//
// Adapter payloads are ordinary encodable values, so adapters compose:
// a []float64 becomes a little-endian []byte handled by the
// "ArrayBuffer" adapter, which in turn becomes a base64 string.
//
// Adapter names are part of the wire format. Renaming one breaks
// decoding of documents written with the old name.
//
// Some types must never be serialized (open files, in-flight HTTP
// exchanges). Their adapters exist only to fail with [ErrUnserializable]
// instead of the generic resolve failure, so the error names the type.
package builtin
