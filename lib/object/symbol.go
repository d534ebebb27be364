// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"sync"

	"github.com/bureau-foundation/seriall/lib/bimap"
)

// Symbol is a unique value with an optional description. Two symbols
// are the same only if they are the same pointer.
type Symbol struct {
	description string
}

// NewSymbol creates a local symbol. Local symbols are not known to any
// registry, so they can only be serialized through a palette.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// Description returns the text the symbol was created with.
func (s *Symbol) Description() string {
	return s.description
}

func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}

// SymbolRegistry interns symbols by key. For the same key it always
// returns the same *Symbol. Safe for concurrent use.
type SymbolRegistry struct {
	mu      sync.Mutex
	symbols *bimap.BiMap[string, *Symbol]
}

// NewSymbolRegistry returns an empty registry.
func NewSymbolRegistry() *SymbolRegistry {
	return &SymbolRegistry{symbols: bimap.New[string, *Symbol]()}
}

// DefaultSymbols is the process-wide registry used when a caller does
// not inject one.
var DefaultSymbols = NewSymbolRegistry()

// For returns the symbol interned under key, creating it on first use.
func (r *SymbolRegistry) For(key string) *Symbol {
	r.mu.Lock()
	defer r.mu.Unlock()

	if symbol, ok := r.symbols.Lookup(key); ok {
		return symbol
	}
	symbol := &Symbol{description: key}
	// Keys are strings and values pointers; Set cannot fail.
	_ = r.symbols.Set(key, symbol)
	return symbol
}

// KeyFor returns the key a symbol is interned under, or false for a
// symbol this registry did not create.
func (r *SymbolRegistry) KeyFor(symbol *Symbol) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.symbols.LookupKey(symbol)
}

// Len returns the number of interned symbols.
func (r *SymbolRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.symbols.Len()
}
