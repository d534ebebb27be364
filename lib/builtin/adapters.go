// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package builtin

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"maps"
	"math/big"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"slices"
	"time"

	"github.com/bureau-foundation/seriall/lib/engine"
	"github.com/bureau-foundation/seriall/lib/object"
)

// ErrUnserializable is returned when serializing a value whose type
// holds live process state.
var ErrUnserializable = errors.New("type cannot be serialized")

// Adapters returns a fresh registry of the built-in adapters.
func Adapters() *engine.Adapters {
	adapters := engine.NewAdapters()

	adapters.MustRegister("Set", engine.Func(serializeSet, deserializeSet))
	adapters.MustRegister("Map", engine.Func(serializeMap, deserializeMap))
	adapters.MustRegister("Date", engine.Func(
		func(value time.Time) (float64, error) { return float64(value.UnixMilli()), nil },
		func(payload float64) (time.Time, error) { return time.UnixMilli(int64(payload)), nil },
	))
	adapters.MustRegister("RegExp", engine.Func(
		func(value *regexp.Regexp) (string, error) { return value.String(), nil },
		regexp.Compile,
	))
	adapters.MustRegister("URL", engine.Func(
		func(value *url.URL) (string, error) { return value.String(), nil },
		url.Parse,
	))
	adapters.MustRegister("URLSearchParams", engine.Func(
		func(value url.Values) (*object.Array, error) { return pairsPayload(value), nil },
		func(payload *object.Array) (url.Values, error) {
			values, err := pairsFromPayload(payload)
			return url.Values(values), err
		},
	))
	adapters.MustRegister("Headers", engine.Func(
		func(value http.Header) (*object.Array, error) { return pairsPayload(value), nil },
		func(payload *object.Array) (http.Header, error) {
			values, err := pairsFromPayload(payload)
			return http.Header(values), err
		},
	))
	adapters.MustRegister("ArrayBuffer", engine.Func(
		func(value []byte) (string, error) { return base64.StdEncoding.EncodeToString(value), nil },
		base64.StdEncoding.DecodeString,
	))
	adapters.MustRegister("Duration", engine.Func(
		func(value time.Duration) (*big.Int, error) { return big.NewInt(int64(value)), nil },
		func(payload *big.Int) (time.Duration, error) {
			if !payload.IsInt64() {
				return 0, fmt.Errorf("duration %s ns out of range", payload)
			}
			return time.Duration(payload.Int64()), nil
		},
	))
	adapters.MustRegister("BigFloat", engine.Func(serializeBigFloat, deserializeBigFloat))

	adapters.MustRegister("Int8Array", typedArray[int8]())
	adapters.MustRegister("Int16Array", typedArray[int16]())
	adapters.MustRegister("Uint16Array", typedArray[uint16]())
	adapters.MustRegister("Int32Array", typedArray[int32]())
	adapters.MustRegister("Uint32Array", typedArray[uint32]())
	adapters.MustRegister("Float32Array", typedArray[float32]())
	adapters.MustRegister("Float64Array", typedArray[float64]())
	adapters.MustRegister("BigInt64Array", typedArray[int64]())
	adapters.MustRegister("BigUint64Array", typedArray[uint64]())

	adapters.MustRegister("File", unserializable[*os.File]("File"))
	adapters.MustRegister("Request", unserializable[*http.Request]("Request"))
	adapters.MustRegister("Response", unserializable[*http.Response]("Response"))

	return adapters
}

func serializeSet(value *object.Set) (*object.Array, error) {
	return object.NewArray(slices.Collect(value.Values())...), nil
}

func deserializeSet(payload *object.Array) (*object.Set, error) {
	set := object.NewSet()
	for member := range payload.Values() {
		if err := set.Add(member); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func serializeMap(value *object.Map) (*object.Array, error) {
	entries := object.NewArray()
	for key, entry := range value.Entries() {
		entries.Append(object.NewArray(key, entry))
	}
	return entries, nil
}

func deserializeMap(payload *object.Array) (*object.Map, error) {
	collection := object.NewMap()
	for entry := range payload.Values() {
		pair, ok := entry.(*object.Array)
		if !ok || pair.Len() != 2 {
			return nil, fmt.Errorf("map entry must be a [key, value] array, got %s", object.TypeName(entry))
		}
		if err := collection.Set(pair.At(0), pair.At(1)); err != nil {
			return nil, err
		}
	}
	return collection, nil
}

// pairsPayload flattens a multi-valued string map into [name, value]
// pairs, names sorted so equal maps encode identically.
func pairsPayload(values map[string][]string) *object.Array {
	pairs := object.NewArray()
	for _, name := range slices.Sorted(maps.Keys(values)) {
		for _, value := range values[name] {
			pairs.Append(object.NewArray(name, value))
		}
	}
	return pairs
}

func pairsFromPayload(payload *object.Array) (map[string][]string, error) {
	values := make(map[string][]string)
	for entry := range payload.Values() {
		pair, ok := entry.(*object.Array)
		if !ok || pair.Len() != 2 {
			return nil, fmt.Errorf("entry must be a [name, value] array, got %s", object.TypeName(entry))
		}
		name, nameOK := pair.At(0).(string)
		value, valueOK := pair.At(1).(string)
		if !nameOK || !valueOK {
			return nil, fmt.Errorf("entry must hold two strings, got %s and %s",
				object.TypeName(pair.At(0)), object.TypeName(pair.At(1)))
		}
		values[name] = append(values[name], value)
	}
	return values, nil
}

func serializeBigFloat(value *big.Float) (*object.Array, error) {
	return object.NewArray(value.Text('g', -1), float64(value.Prec())), nil
}

func deserializeBigFloat(payload *object.Array) (*big.Float, error) {
	text, ok := payload.At(0).(string)
	if !ok {
		return nil, fmt.Errorf("big float text must be a string, got %s", object.TypeName(payload.At(0)))
	}
	precision, ok := payload.At(1).(float64)
	if !ok || precision < 0 || precision > big.MaxPrec {
		return nil, fmt.Errorf("big float precision must be a number in [0, %d]", uint64(big.MaxPrec))
	}
	value, _, err := big.ParseFloat(text, 10, uint(precision), big.ToNearestEven)
	return value, err
}

type typedElement interface {
	int8 | int16 | uint16 | int32 | uint32 | float32 | float64 | int64 | uint64
}

// typedArray maps a numeric slice to its little-endian bytes.
func typedArray[T typedElement]() *engine.FuncAdapter[[]T, []byte] {
	return engine.Func(
		func(values []T) ([]byte, error) {
			return binary.Append(nil, binary.LittleEndian, values)
		},
		func(buffer []byte) ([]T, error) {
			var zero T
			size := binary.Size(zero)
			if len(buffer)%size != 0 {
				return nil, fmt.Errorf("buffer of %d bytes is not a whole number of %d-byte elements", len(buffer), size)
			}
			values := make([]T, len(buffer)/size)
			if _, err := binary.Decode(buffer, binary.LittleEndian, values); err != nil {
				return nil, err
			}
			return values, nil
		},
	)
}

func unserializable[T any](name string) *engine.FuncAdapter[T, any] {
	return engine.Func(
		func(T) (any, error) { return nil, fmt.Errorf("%s: %w", name, ErrUnserializable) },
		func(any) (T, error) {
			var zero T
			return zero, nil
		},
	)
}
