// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"log/slog"

	"github.com/bureau-foundation/seriall/lib/object"
)

// DefaultMaxDepth bounds recursion when Config.MaxDepth is zero.
const DefaultMaxDepth = 10000

// Config configures an [Engine].
type Config struct {
	// Symbols interns symbols: Encode writes only symbols this
	// registry knows, and Decode rebuilds symbols through it. If nil,
	// [object.DefaultSymbols] is used.
	Symbols *object.SymbolRegistry

	// MaxDepth is the deepest nesting Encode and Decode follow before
	// failing with a [DepthError]. Zero means [DefaultMaxDepth].
	MaxDepth int

	// Logger receives debug records for adapter invocations and
	// failures. If nil, a no-op logger is used.
	Logger *slog.Logger
}

// Engine encodes and decodes object graphs. It holds only
// configuration and is safe for concurrent use.
type Engine struct {
	symbols  *object.SymbolRegistry
	maxDepth int
	logger   *slog.Logger
}

// New returns an engine for cfg.
func New(cfg Config) *Engine {
	engine := &Engine{
		symbols:  cfg.Symbols,
		maxDepth: cfg.MaxDepth,
		logger:   cfg.Logger,
	}
	if engine.symbols == nil {
		engine.symbols = object.DefaultSymbols
	}
	if engine.maxDepth <= 0 {
		engine.maxDepth = DefaultMaxDepth
	}
	if engine.logger == nil {
		engine.logger = slog.New(slog.DiscardHandler)
	}
	return engine
}

// Default is an engine with the default configuration.
var Default = New(Config{})
