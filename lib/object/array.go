// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"iter"
	"slices"
)

// Array is an ordered list of values with reference identity. Unlike a
// Go slice, an *Array can contain itself.
type Array struct {
	values []any
}

// NewArray returns an array holding values.
func NewArray(values ...any) *Array {
	return &Array{values: slices.Clone(values)}
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.values)
}

// At returns element index, or [Undefined] when out of range.
func (a *Array) At(index int) any {
	if index < 0 || index >= len(a.values) {
		return Undefined
	}
	return a.values[index]
}

// SetAt replaces element index, growing the array with [Undefined] holes
// when index is past the end. Negative indices are ignored.
func (a *Array) SetAt(index int, value any) {
	if index < 0 {
		return
	}
	for len(a.values) <= index {
		a.values = append(a.values, Undefined)
	}
	a.values[index] = value
}

// Append adds values to the end.
func (a *Array) Append(values ...any) {
	a.values = append(a.values, values...)
}

// Values iterates elements in order.
func (a *Array) Values() iter.Seq[any] {
	return slices.Values(a.values)
}

// Slice returns a copy of the elements.
func (a *Array) Slice() []any {
	return slices.Clone(a.values)
}
