// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"math/big"
	"reflect"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the absent-value sentinel. It is distinct from nil, which
// stands for null.
var Undefined = undefined{}

// IsUndefined reports whether v is [Undefined].
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// TypeName names the type of v the way diagnostics and class dispatch
// refer to it: "null", "undefined", "boolean", "number", "string",
// "bigint", "symbol", "Function", "Array", "Set", "Map", the class name
// of an object, or the Go type for any other host value.
func TypeName(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	case *big.Int:
		return "bigint"
	case *Symbol:
		return "symbol"
	case *Function:
		return "Function"
	case *Object:
		if class := value.Constructor(); class != nil && class.Name() != "" {
			return class.Name()
		}
		return "Object"
	case *Array, []any:
		return "Array"
	case *Set:
		return "Set"
	case *Map:
		return "Map"
	}
	return reflect.TypeOf(v).String()
}
