// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package seriall is the entry point for serializing object graphs.
//
// [Purify] turns a value into a [pure.Document] and [Parse] turns one
// back; [Stringify] and [ParseString] add a framing from lib/format;
// [DeepClone] round-trips a value through a document, producing an
// independent copy with the same shape, sharing, and cycles.
//
// All operations take [Options], which assemble the ordered list of
// resolution contexts:
//
//  1. The inline Palette/PalettePairs and Adapters, if any.
//  2. Each of Contexts, in order.
//  3. The built-in context from lib/builtin, unless both built-in
//     parts are disabled.
//
// Earlier contexts take precedence, so an inline palette entry or
// adapter overrides a built-in one with the same value or name. The
// encoding and decoding sides must use compatible options.
//
//	data, err := seriall.Stringify(ctx, graph, format.JSON, seriall.Options{
//	    Palette: map[string]any{"Point": pointClass},
//	})
//	...
//	restored, err := seriall.ParseString(ctx, data, format.JSON, seriall.Options{
//	    Palette: map[string]any{"Point": pointClass},
//	})
package seriall
