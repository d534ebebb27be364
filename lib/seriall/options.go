// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package seriall

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/bureau-foundation/seriall/lib/bimap"
	"github.com/bureau-foundation/seriall/lib/builtin"
	"github.com/bureau-foundation/seriall/lib/engine"
	"github.com/bureau-foundation/seriall/lib/object"
)

// Options configure resolution and the engine. The zero value uses the
// built-in context only.
type Options struct {
	// Palette adds key/value entries to the leading context. Entries are
	// inserted in key order.
	Palette map[string]any

	// PalettePairs adds entries in the given order, after Palette.
	PalettePairs []bimap.Pair[string, any]

	// Adapters adds named adapters to the leading context, in name
	// order.
	Adapters map[string]engine.Adapter

	// Contexts follow the leading context.
	Contexts []*engine.Context

	// DisableBuiltinPalette and DisableBuiltinAdapters drop the
	// corresponding half of the built-in context.
	DisableBuiltinPalette  bool
	DisableBuiltinAdapters bool

	// Symbols, MaxDepth, and Logger configure the engine; see
	// [engine.Config].
	Symbols  *object.SymbolRegistry
	MaxDepth int
	Logger   *slog.Logger
}

// contexts assembles the ordered context list.
func (o Options) contexts() ([]*engine.Context, error) {
	var contexts []*engine.Context

	if len(o.Palette) > 0 || len(o.PalettePairs) > 0 || len(o.Adapters) > 0 {
		leading := engine.NewContext()
		for _, key := range slices.Sorted(maps.Keys(o.Palette)) {
			if err := leading.Palette.Set(key, o.Palette[key]); err != nil {
				return nil, fmt.Errorf("palette entry %q: %w", key, err)
			}
		}
		if err := leading.Palette.SetPairs(o.PalettePairs); err != nil {
			return nil, fmt.Errorf("palette pairs: %w", err)
		}
		for _, name := range slices.Sorted(maps.Keys(o.Adapters)) {
			if err := leading.Adapters.Register(name, o.Adapters[name]); err != nil {
				return nil, fmt.Errorf("adapter %q: %w", name, err)
			}
		}
		contexts = append(contexts, leading)
	}

	contexts = append(contexts, o.Contexts...)

	if !o.DisableBuiltinPalette || !o.DisableBuiltinAdapters {
		fallback := &engine.Context{}
		if !o.DisableBuiltinPalette {
			fallback.Palette = builtin.Palette()
		}
		if !o.DisableBuiltinAdapters {
			fallback.Adapters = builtin.Adapters()
		}
		contexts = append(contexts, fallback)
	}
	return contexts, nil
}

func (o Options) engine() *engine.Engine {
	if o.Symbols == nil && o.MaxDepth == 0 && o.Logger == nil {
		return engine.Default
	}
	return engine.New(engine.Config{Symbols: o.Symbols, MaxDepth: o.MaxDepth, Logger: o.Logger})
}
