// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"math"
	"reflect"
)

// nanKey stands in for every NaN so that NaN finds itself in identity
// maps (Go map lookups never match a NaN key).
type nanKey struct{}

type referenceKey struct {
	kind    reflect.Kind
	typ     reflect.Type
	pointer uintptr
	length  int
}

// IdentityKey returns a comparable key that is equal for two values
// exactly when they are the same value: equal primitives, the same
// pointer, or the same slice/map header. It returns false for values
// that have no identity Go can observe, such as structs holding slices.
// Empty slices, slices of zero-size elements and nil maps or functions
// also have none: the runtime may hand distinct values the same base
// pointer.
func IdentityKey(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	switch number := v.(type) {
	case float64:
		if math.IsNaN(number) {
			return nanKey{}, true
		}
		return v, true
	case float32:
		if math.IsNaN(float64(number)) {
			return nanKey{}, true
		}
		return v, true
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Slice:
		if value.Len() == 0 || value.Pointer() == 0 || value.Type().Elem().Size() == 0 {
			return nil, false
		}
		return referenceKey{
			kind:    reflect.Slice,
			typ:     value.Type(),
			pointer: value.Pointer(),
			length:  value.Len(),
		}, true
	case reflect.Map, reflect.Func:
		if value.Pointer() == 0 {
			return nil, false
		}
		return referenceKey{
			kind:    value.Kind(),
			typ:     value.Type(),
			pointer: value.Pointer(),
		}, true
	}
	if value.Comparable() {
		return v, true
	}
	return nil, false
}

// Same reports whether a and b are the same value in the sense of
// [IdentityKey]. Values without an identity are never the same.
func Same(a, b any) bool {
	keyA, ok := IdentityKey(a)
	if !ok {
		return false
	}
	keyB, ok := IdentityKey(b)
	if !ok {
		return false
	}
	return keyA == keyB
}
