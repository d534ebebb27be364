// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package seriall

import (
	"context"

	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/pure"
)

// Purify serializes value into a document.
func Purify(ctx context.Context, value any, options Options) (pure.Document, error) {
	contexts, err := options.contexts()
	if err != nil {
		return nil, err
	}
	return options.engine().Encode(ctx, value, contexts)
}

// Parse rebuilds the value a document describes.
func Parse(ctx context.Context, document pure.Document, options Options) (any, error) {
	contexts, err := options.contexts()
	if err != nil {
		return nil, err
	}
	return options.engine().Decode(ctx, document, contexts)
}

// Stringify serializes value and frames the document in the compact
// layout of the given format.
func Stringify(ctx context.Context, value any, framing format.Format, options Options) ([]byte, error) {
	document, err := Purify(ctx, value, options)
	if err != nil {
		return nil, err
	}
	return format.Marshal(document, framing, format.MarshalOptions{})
}

// ParseString unframes data and rebuilds the value it describes.
func ParseString(ctx context.Context, data []byte, framing format.Format, options Options) (any, error) {
	document, err := format.Unmarshal(data, framing)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, document, options)
}

// DeepClone copies value by serializing and rebuilding it. Values
// resolved through a palette are shared with the original rather than
// copied.
func DeepClone(ctx context.Context, value any, options Options) (any, error) {
	document, err := Purify(ctx, value, options)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, document, options)
}
