// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/seriall/lib/object"
	"github.com/bureau-foundation/seriall/lib/pure"
)

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrResolveFailed           = errors.New("value not found in any context")
	ErrReferredValueNotFound   = errors.New("referred value not found in any context")
	ErrReferredAdapterNotFound = errors.New("referred adapter not found in any context")
	ErrInvalidPure             = errors.New("invalid pure document")
	ErrUnsupportedType         = errors.New("unsupported type")
	ErrCycle                   = errors.New("unresolvable reference cycle")
	ErrDepthExceeded           = errors.New("maximum nesting depth exceeded")
)

// ResolveFailedError is returned by Encode for a value that has no
// structural form and is not in any palette or handled by any adapter:
// functions, uninterned symbols, unregistered host types.
type ResolveFailedError struct {
	Value any
}

func (e *ResolveFailedError) Error() string {
	return fmt.Sprintf("value not found in any context: %s", describe(e.Value))
}

func (e *ResolveFailedError) Is(target error) bool { return target == ErrResolveFailed }

// ReferredValueNotFoundError is returned by Decode when a palette key
// is unknown to every context.
type ReferredValueNotFoundError struct {
	Index pure.Index
	Key   string
}

func (e *ReferredValueNotFoundError) Error() string {
	return fmt.Sprintf("node %d: value key %q wasn't found in any context", e.Index, e.Key)
}

func (e *ReferredValueNotFoundError) Is(target error) bool {
	return target == ErrReferredValueNotFound
}

// ReferredAdapterNotFoundError is returned by Decode when an adapter
// name is unknown to every context.
type ReferredAdapterNotFoundError struct {
	Index pure.Index
	Name  string
}

func (e *ReferredAdapterNotFoundError) Error() string {
	return fmt.Sprintf("node %d: adapter name %q wasn't found in any context", e.Index, e.Name)
}

func (e *ReferredAdapterNotFoundError) Is(target error) bool {
	return target == ErrReferredAdapterNotFound
}

// InvalidPureError is returned by Decode for a malformed document or a
// node that is well-formed but meaningless, such as an object whose
// class is not a class.
type InvalidPureError struct {
	Index  pure.Index
	Reason string
}

func (e *InvalidPureError) Error() string {
	if e.Index < 0 {
		return "invalid pure document: " + e.Reason
	}
	return fmt.Sprintf("invalid pure node %d: %s", e.Index, e.Reason)
}

func (e *InvalidPureError) Is(target error) bool {
	return target == ErrInvalidPure || target == pure.ErrInvalid
}

// UnsupportedTypeError is returned by Encode for Go kinds the object
// model has no counterpart for: channels, complex numbers, unsafe
// pointers.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return "unsupported type: " + e.Type
}

func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }

// CycleError is returned by Decode when a node depends on itself before
// it can exist, for example an adapter payload that contains the
// adapter's own result.
type CycleError struct {
	Index pure.Index
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("node %d refers to itself before it can be constructed", e.Index)
}

func (e *CycleError) Is(target error) bool { return target == ErrCycle }

// DepthError is returned when a graph nests deeper than the configured
// limit.
type DepthError struct {
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("nesting deeper than %d levels", e.Limit)
}

func (e *DepthError) Is(target error) bool { return target == ErrDepthExceeded }

// AdapterError wraps a failure returned by an adapter.
type AdapterError struct {
	Name string
	// Op is "serialize" or "deserialize".
	Op  string
	Err error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("adapter %q %s: %v", e.Name, e.Op, e.Err)
}

func (e *AdapterError) Unwrap() error { return e.Err }

func describe(value any) string {
	switch typed := value.(type) {
	case *object.Symbol:
		return typed.String()
	case *object.Function:
		return typed.String()
	case *object.Object:
		return "instance of " + object.TypeName(typed)
	}
	return object.TypeName(value)
}
