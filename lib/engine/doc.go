// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package engine turns object graphs into [pure.Document] values and
// back.
//
// Encoding walks a value depth-first, giving every distinct value
// exactly one node. A value reached a second time (shared or cyclic
// references) reuses its first index, so identity survives the round
// trip. Values that cannot be written structurally are resolved against
// an ordered list of [Context] values:
//
//   - A [Palette] maps stable keys to well-known values (classes,
//     prototypes, local symbols). A value found in a palette is written
//     as a key reference and looked up again by key when decoding.
//   - An [Adapters] registry holds named [Adapter] implementations that
//     convert a value to a serializable payload and back. Adapters are
//     selected by class name for [object.Object] instances and by Go
//     type for host values such as time.Time.
//
// Contexts are consulted in order and the first match wins, so callers
// put their own contexts before the built-in one to override it. The
// decoding side must supply compatible contexts: a key or adapter name
// that no context knows is an error, never a silent default.
//
// An [Engine] is safe for concurrent use as long as the contexts passed
// to it are not modified during a call. Each call keeps its own state
// and runs on the calling goroutine. Adapters receive the call's
// context.Context and may block; the engine checks for cancellation
// before every adapter invocation.
package engine
