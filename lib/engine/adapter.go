// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/bureau-foundation/seriall/lib/bimap"
	"github.com/bureau-foundation/seriall/lib/object"
)

// Adapter converts a value the engine cannot write structurally into a
// payload it can, and rebuilds the value from the decoded payload. The
// payload is itself encoded as an ordinary value, so it may be any
// graph the engine understands (including values handled by other
// adapters).
type Adapter interface {
	Serialize(ctx context.Context, value any) (any, error)
	Deserialize(ctx context.Context, payload any) (any, error)
}

// HostTyped is implemented by adapters bound to one Go type. Values of
// that type are dispatched to the adapter without a class name.
type HostTyped interface {
	HostType() reflect.Type
}

// FuncAdapter is an [Adapter] built from a pair of typed functions. T is
// the value type and P the payload type.
type FuncAdapter[T, P any] struct {
	serialize   func(context.Context, T) (P, error)
	deserialize func(context.Context, P) (T, error)
	hostType    reflect.Type
}

// Func builds an adapter from non-blocking conversion functions.
func Func[T, P any](serialize func(T) (P, error), deserialize func(P) (T, error)) *FuncAdapter[T, P] {
	return FuncContext(
		func(_ context.Context, value T) (P, error) { return serialize(value) },
		func(_ context.Context, payload P) (T, error) { return deserialize(payload) },
	)
}

// FuncContext builds an adapter from conversion functions that may
// block and honor cancellation.
func FuncContext[T, P any](serialize func(context.Context, T) (P, error), deserialize func(context.Context, P) (T, error)) *FuncAdapter[T, P] {
	return &FuncAdapter[T, P]{
		serialize:   serialize,
		deserialize: deserialize,
		hostType:    reflect.TypeFor[T](),
	}
}

// HostType returns T, or nil when T is [object.Object] or an interface:
// those adapters dispatch by class name only.
func (f *FuncAdapter[T, P]) HostType() reflect.Type {
	if f.hostType.Kind() == reflect.Interface || f.hostType == objectType {
		return nil
	}
	return f.hostType
}

func (f *FuncAdapter[T, P]) Serialize(ctx context.Context, value any) (any, error) {
	typed, ok := convert[T](value)
	if !ok {
		return nil, fmt.Errorf("expected %v, got %s", f.hostType, object.TypeName(value))
	}
	return f.serialize(ctx, typed)
}

func (f *FuncAdapter[T, P]) Deserialize(ctx context.Context, payload any) (any, error) {
	typed, ok := convert[P](payload)
	if !ok {
		return nil, fmt.Errorf("expected payload %v, got %s", reflect.TypeFor[P](), object.TypeName(payload))
	}
	return f.deserialize(ctx, typed)
}

// convert asserts value to X. A nil value converts to the zero X when
// X can hold nil.
func convert[X any](value any) (X, bool) {
	typed, ok := value.(X)
	if ok || value != nil {
		return typed, ok
	}
	switch reflect.TypeFor[X]().Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return typed, true
	}
	return typed, false
}

var objectType = reflect.TypeFor[*object.Object]()

// Adapters is an ordered registry of named adapters.
type Adapters struct {
	names    []string
	byName   map[string]Adapter
	hostType *bimap.BiMap[reflect.Type, string]
}

// NewAdapters returns an empty registry.
func NewAdapters() *Adapters {
	return &Adapters{
		byName:   make(map[string]Adapter),
		hostType: bimap.New[reflect.Type, string](),
	}
}

// Register binds name to adapter, replacing any adapter already under
// that name. An adapter implementing [HostTyped] with a non-nil type is
// also bound to that type; a later registration for the same type takes
// the type over.
func (a *Adapters) Register(name string, adapter Adapter) error {
	if name == "" {
		return errors.New("adapter name is empty")
	}
	if adapter == nil {
		return fmt.Errorf("adapter %q is nil", name)
	}
	if _, exists := a.byName[name]; !exists {
		a.names = append(a.names, name)
	}
	a.byName[name] = adapter
	a.hostType.DeleteValue(name)
	if typed, ok := adapter.(HostTyped); ok {
		if hostType := typed.HostType(); hostType != nil {
			// reflect.Type values are always comparable.
			_ = a.hostType.Set(hostType, name)
		}
	}
	return nil
}

// MustRegister is [Adapters.Register] for static setup; it panics on
// error.
func (a *Adapters) MustRegister(name string, adapter Adapter) {
	if err := a.Register(name, adapter); err != nil {
		panic(err)
	}
}

// Lookup returns the adapter registered under name.
func (a *Adapters) Lookup(name string) (Adapter, bool) {
	adapter, ok := a.byName[name]
	return adapter, ok
}

// lookupClass returns the adapter under name only if it dispatches by
// class name, so a user class that happens to share a name with a
// host-typed adapter is not handed to it.
func (a *Adapters) lookupClass(name string) (Adapter, bool) {
	adapter, ok := a.byName[name]
	if !ok || a.hostType.HasValue(name) {
		return nil, false
	}
	return adapter, true
}

// NameFor returns the name of the adapter bound to value's Go type.
func (a *Adapters) NameFor(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	return a.hostType.Lookup(reflect.TypeOf(value))
}

// Names returns adapter names in registration order.
func (a *Adapters) Names() []string {
	return slices.Clone(a.names)
}

// Len returns the number of registered adapters.
func (a *Adapters) Len() int {
	return len(a.names)
}

// Clone returns an independent registry holding the same adapters.
func (a *Adapters) Clone() *Adapters {
	cloned := NewAdapters()
	for _, name := range a.names {
		cloned.MustRegister(name, a.byName[name])
	}
	return cloned
}
