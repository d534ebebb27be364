// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package builtin

import (
	"github.com/bureau-foundation/seriall/lib/bimap"
	"github.com/bureau-foundation/seriall/lib/engine"
	"github.com/bureau-foundation/seriall/lib/object"
)

// Well-known symbols. They are local symbols, so they travel only by
// palette key.
var (
	SymbolIterator      = object.NewSymbol("Symbol.iterator")
	SymbolAsyncIterator = object.NewSymbol("Symbol.asyncIterator")
	SymbolToStringTag   = object.NewSymbol("Symbol.toStringTag")
	SymbolHasInstance   = object.NewSymbol("Symbol.hasInstance")
)

var palettePairs = []bimap.Pair[string, any]{
	{Key: "Object", Value: object.ObjectClass},
	{Key: "Object.prototype", Value: object.ObjectPrototype},
	{Key: "Array", Value: object.ArrayClass},
	{Key: "Array.prototype", Value: object.ArrayClass.Prototype()},
	{Key: "Function", Value: object.FunctionClass},
	{Key: "Function.prototype", Value: object.FunctionClass.Prototype()},
	{Key: "Symbol.iterator", Value: SymbolIterator},
	{Key: "Symbol.asyncIterator", Value: SymbolAsyncIterator},
	{Key: "Symbol.toStringTag", Value: SymbolToStringTag},
	{Key: "Symbol.hasInstance", Value: SymbolHasInstance},
}

// Palette returns a fresh palette holding the built-in classes, their
// prototypes, and the well-known symbols.
func Palette() *engine.Palette {
	palette, err := bimap.FromPairs(palettePairs)
	if err != nil {
		panic("builtin: palette has duplicate entries: " + err.Error())
	}
	return palette
}

// Context returns a fresh context with the built-in palette and
// adapters. Callers append it after their own contexts so their entries
// take precedence.
func Context() *engine.Context {
	return &engine.Context{Palette: Palette(), Adapters: Adapters()}
}
