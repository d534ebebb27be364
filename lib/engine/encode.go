// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"log/slog"
	"math"
	"math/big"
	"reflect"
	"strconv"

	"github.com/bureau-foundation/seriall/lib/object"
	"github.com/bureau-foundation/seriall/lib/pure"
)

// Encode serializes value into a document, resolving what it cannot
// write structurally against contexts in order. On error no document is
// returned.
func (e *Engine) Encode(ctx context.Context, value any, contexts []*Context) (pure.Document, error) {
	encoder := &encoder{
		engine:   e,
		ctx:      ctx,
		contexts: contexts,
		seen:     make(map[any]pure.Index),
	}
	if _, err := encoder.encode(value); err != nil {
		return nil, err
	}
	return encoder.document, nil
}

type encoder struct {
	engine   *Engine
	ctx      context.Context
	contexts []*Context
	document pure.Document
	seen     map[any]pure.Index
	depth    int
}

func (e *encoder) encode(value any) (pure.Index, error) {
	identity, hasIdentity := object.IdentityKey(value)
	if hasIdentity {
		if index, ok := e.seen[identity]; ok {
			return index, nil
		}
	}

	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.engine.maxDepth {
		return 0, &DepthError{Limit: e.engine.maxDepth}
	}

	// Reserve the slot and record the identity before recursing so that
	// cycles back to this value resolve to this index.
	index := pure.Index(len(e.document))
	e.document = append(e.document, nil)
	if hasIdentity {
		e.seen[identity] = index
	}

	node, err := e.node(value)
	if err != nil {
		return 0, err
	}
	e.document[index] = node
	return index, nil
}

func (e *encoder) node(value any) (pure.Node, error) {
	if key, ok := paletteKey(e.contexts, value); ok {
		return pure.RefValue{Key: key}, nil
	}

	switch typed := value.(type) {
	case nil:
		return pure.Raw{Value: nil}, nil
	case bool, string:
		return pure.Raw{Value: typed}, nil
	case float64:
		return numberNode(typed), nil
	case float32:
		return numberNode(float64(typed)), nil
	case int:
		return integerNode(int64(typed)), nil
	case int8:
		return numberNode(float64(typed)), nil
	case int16:
		return numberNode(float64(typed)), nil
	case int32:
		return numberNode(float64(typed)), nil
	case int64:
		return integerNode(typed), nil
	case uint:
		return unsignedNode(uint64(typed)), nil
	case uint8:
		return numberNode(float64(typed)), nil
	case uint16:
		return numberNode(float64(typed)), nil
	case uint32:
		return numberNode(float64(typed)), nil
	case uint64:
		return unsignedNode(typed), nil
	case *big.Int:
		if typed == nil {
			return pure.Raw{Value: nil}, nil
		}
		return pure.BigInt{Value: typed.String()}, nil
	case *object.Symbol:
		if key, ok := e.engine.symbols.KeyFor(typed); ok {
			return pure.Symbol{Key: key}, nil
		}
		return nil, &ResolveFailedError{Value: typed}
	case *object.Function:
		return nil, &ResolveFailedError{Value: typed}
	case *object.Object:
		if typed == nil {
			return pure.Raw{Value: nil}, nil
		}
		return e.objectNode(typed)
	case *object.Array:
		if typed == nil {
			return pure.Raw{Value: nil}, nil
		}
		return e.arrayNode(typed, typed.Slice())
	case []any:
		return e.arrayNode(typed, typed)
	}

	if object.IsUndefined(value) {
		return pure.Special{Value: pure.SpecialUndefined}, nil
	}
	// Adapters receive only values they can dereference.
	if isNilReference(value) {
		return pure.Raw{Value: nil}, nil
	}
	if name, adapter, ok := adapterForValue(e.contexts, value); ok {
		return e.adapt(name, adapter, value)
	}

	switch kind := reflect.TypeOf(value).Kind(); kind {
	case reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return nil, &UnsupportedTypeError{Type: reflect.TypeOf(value).String()}
	}
	return nil, &ResolveFailedError{Value: value}
}

func numberNode(number float64) pure.Node {
	switch {
	case math.IsNaN(number):
		return pure.Special{Value: pure.SpecialNaN}
	case math.IsInf(number, 1):
		return pure.Special{Value: pure.SpecialPositiveInfinity}
	case math.IsInf(number, -1):
		return pure.Special{Value: pure.SpecialNegativeInfinity}
	}
	return pure.Raw{Value: number}
}

// maxSafeInteger is the largest magnitude a float64 holds exactly.
const maxSafeInteger = 1<<53 - 1

// integerNode writes integers a float64 would round as BigInt.
func integerNode(number int64) pure.Node {
	if number > maxSafeInteger || number < -maxSafeInteger {
		return pure.BigInt{Value: strconv.FormatInt(number, 10)}
	}
	return pure.Raw{Value: float64(number)}
}

func unsignedNode(number uint64) pure.Node {
	if number > maxSafeInteger {
		return pure.BigInt{Value: strconv.FormatUint(number, 10)}
	}
	return pure.Raw{Value: float64(number)}
}

func isNilReference(value any) bool {
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return reflected.IsNil()
	}
	return false
}

func (e *encoder) objectNode(obj *object.Object) (pure.Node, error) {
	if object.LooksLikePrototype(obj) {
		constructor, _ := obj.GetOwn("constructor")
		class, err := e.encode(constructor)
		if err != nil {
			return nil, err
		}
		return pure.Prototype{Class: class}, nil
	}

	constructor := obj.Constructor()
	if constructor != nil {
		if adapter, ok := adapterForClass(e.contexts, constructor.Name()); ok {
			return e.adapt(constructor.Name(), adapter, obj)
		}
	}

	var classValue any = object.Undefined
	if constructor != nil {
		classValue = constructor
	}
	class, err := e.encode(classValue)
	if err != nil {
		return nil, err
	}

	ownProperties := obj.OwnProperties()
	properties := make([]pure.Property, 0, len(ownProperties))
	for _, property := range ownProperties {
		valueIndex, err := e.encode(property.Value)
		if err != nil {
			return nil, err
		}
		properties = append(properties, pure.Property{
			Name:  property.Name,
			Value: valueIndex,
			Flags: pure.Flags{
				NotWritable:     !property.Flags.Writable,
				NotEnumerable:   !property.Flags.Enumerable,
				NotConfigurable: !property.Flags.Configurable,
			},
		})
	}
	return pure.Object{Class: class, Properties: properties}, nil
}

func (e *encoder) arrayNode(value any, elements []any) (pure.Node, error) {
	if adapter, ok := adapterByName(e.contexts, object.ArrayClass.Name()); ok {
		return e.adapt(object.ArrayClass.Name(), adapter, value)
	}
	array := make(pure.Array, 0, len(elements))
	for _, element := range elements {
		index, err := e.encode(element)
		if err != nil {
			return nil, err
		}
		array = append(array, index)
	}
	return array, nil
}

func (e *encoder) adapt(name string, adapter Adapter, value any) (pure.Node, error) {
	if err := e.ctx.Err(); err != nil {
		return nil, err
	}
	e.engine.logger.Debug("adapter serialize", slog.String("adapter", name), slog.String("type", object.TypeName(value)))
	payload, err := adapter.Serialize(e.ctx, value)
	if err != nil {
		e.engine.logger.Debug("adapter serialize failed", slog.String("adapter", name), slog.Any("error", err))
		return nil, &AdapterError{Name: name, Op: "serialize", Err: err}
	}
	payloadIndex, err := e.encode(payload)
	if err != nil {
		return nil, err
	}
	return pure.RefAdapter{Name: name, Value: payloadIndex}, nil
}
