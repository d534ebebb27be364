// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import "github.com/bureau-foundation/seriall/lib/bimap"

// Palette is a bijection between stable keys and well-known values.
type Palette = bimap.BiMap[string, any]

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return bimap.New[string, any]()
}

// Context is one layer of resolution state: a palette and an adapter
// registry. Either may be nil.
type Context struct {
	Palette  *Palette
	Adapters *Adapters
}

// NewContext returns a context with an empty palette and registry.
func NewContext() *Context {
	return &Context{Palette: NewPalette(), Adapters: NewAdapters()}
}

// Clone returns a context whose palette and registry can be modified
// without affecting c. Palette values and adapters are shared.
func (c *Context) Clone() *Context {
	cloned := &Context{}
	if c.Palette != nil {
		cloned.Palette = c.Palette.Clone()
	}
	if c.Adapters != nil {
		cloned.Adapters = c.Adapters.Clone()
	}
	return cloned
}

// paletteKey finds value in the first context whose palette holds it.
func paletteKey(contexts []*Context, value any) (string, bool) {
	for _, context := range contexts {
		if context == nil || context.Palette == nil {
			continue
		}
		if key, ok := context.Palette.LookupKey(value); ok {
			return key, true
		}
	}
	return "", false
}

// paletteValue finds key in the first context whose palette binds it.
func paletteValue(contexts []*Context, key string) (any, bool) {
	for _, context := range contexts {
		if context == nil || context.Palette == nil {
			continue
		}
		if value, ok := context.Palette.Lookup(key); ok {
			return value, true
		}
	}
	return nil, false
}

// adapterByName finds the first adapter registered under name.
func adapterByName(contexts []*Context, name string) (Adapter, bool) {
	for _, context := range contexts {
		if context == nil || context.Adapters == nil {
			continue
		}
		if adapter, ok := context.Adapters.Lookup(name); ok {
			return adapter, true
		}
	}
	return nil, false
}

// adapterOwner returns the position of the first context registering
// an adapter under name, or -1. Decoding resolves a name there, so
// encoding may only emit a name from that context.
func adapterOwner(contexts []*Context, name string) int {
	for i, context := range contexts {
		if context == nil || context.Adapters == nil {
			continue
		}
		if _, ok := context.Adapters.Lookup(name); ok {
			return i
		}
	}
	return -1
}

// adapterForClass returns the adapter owning a class name if it
// dispatches by class. A host-typed adapter owning the name shadows any
// later class adapter, and the object is then written structurally.
func adapterForClass(contexts []*Context, class string) (Adapter, bool) {
	owner := adapterOwner(contexts, class)
	if owner < 0 {
		return nil, false
	}
	return contexts[owner].Adapters.lookupClass(class)
}

// adapterForValue finds the first adapter bound to value's Go type whose
// name is not shadowed by an earlier context.
func adapterForValue(contexts []*Context, value any) (string, Adapter, bool) {
	for i, context := range contexts {
		if context == nil || context.Adapters == nil {
			continue
		}
		name, ok := context.Adapters.NameFor(value)
		if !ok || adapterOwner(contexts, name) != i {
			continue
		}
		adapter, _ := context.Adapters.Lookup(name)
		return name, adapter, true
	}
	return "", nil, false
}
