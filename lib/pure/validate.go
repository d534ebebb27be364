// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pure

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrInvalid is matched by every [InvalidError].
var ErrInvalid = errors.New("invalid pure document")

// InvalidError reports a structural problem with a document. Index is
// the offending node, or -1 for a problem with the document as a whole.
type InvalidError struct {
	Index  Index
	Reason string
}

func (e *InvalidError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid pure document: %s", e.Reason)
	}
	return fmt.Sprintf("invalid pure node %d: %s", e.Index, e.Reason)
}

func (e *InvalidError) Is(target error) bool {
	return target == ErrInvalid
}

// Validate checks that the document is non-empty, that every node is
// well-formed, and that every index refers to a node in the document.
// It does not resolve palette keys or adapter names.
func Validate(document Document) error {
	if len(document) == 0 {
		return &InvalidError{Index: -1, Reason: "document is empty"}
	}
	size := Index(len(document))
	inRange := func(index Index) bool { return index >= 0 && index < size }

	for position, node := range document {
		index := Index(position)
		invalid := func(format string, args ...any) error {
			return &InvalidError{Index: index, Reason: fmt.Sprintf(format, args...)}
		}

		switch typed := node.(type) {
		case nil:
			return invalid("missing node")
		case Raw:
			switch value := typed.Value.(type) {
			case nil, bool, string:
			case float64:
				if math.IsNaN(value) || math.IsInf(value, 0) {
					return invalid("raw number %v is not finite", value)
				}
			default:
				return invalid("raw value of type %T", typed.Value)
			}
		case Array:
			for element, target := range typed {
				if !inRange(target) {
					return invalid("element %d refers to %d, outside [0, %d)", element, target, size)
				}
			}
		case Symbol:
		case BigInt:
			if _, ok := new(big.Int).SetString(typed.Value, 10); !ok {
				return invalid("bigint %q is not a base-10 integer", typed.Value)
			}
		case Special:
			if !typed.Value.Valid() {
				return invalid("unknown special value %d", int(typed.Value))
			}
		case Prototype:
			if !inRange(typed.Class) {
				return invalid("class refers to %d, outside [0, %d)", typed.Class, size)
			}
		case Object:
			if !inRange(typed.Class) {
				return invalid("class refers to %d, outside [0, %d)", typed.Class, size)
			}
			for _, property := range typed.Properties {
				if !inRange(property.Value) {
					return invalid("property %q refers to %d, outside [0, %d)", property.Name, property.Value, size)
				}
			}
		case RefValue:
		case RefAdapter:
			if !inRange(typed.Value) {
				return invalid("adapter %q payload refers to %d, outside [0, %d)", typed.Name, typed.Value, size)
			}
		default:
			return invalid("unknown node type %T", node)
		}
	}
	return nil
}
