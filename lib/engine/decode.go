// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"

	"github.com/bureau-foundation/seriall/lib/object"
	"github.com/bureau-foundation/seriall/lib/pure"
)

// Decode rebuilds the value at slot 0 of document, resolving palette
// keys and adapter names against contexts in order. The document is
// validated first; structural problems are reported as
// [InvalidPureError].
func (e *Engine) Decode(ctx context.Context, document pure.Document, contexts []*Context) (any, error) {
	if err := pure.Validate(document); err != nil {
		var invalid *pure.InvalidError
		if errors.As(err, &invalid) {
			return nil, &InvalidPureError{Index: invalid.Index, Reason: invalid.Reason}
		}
		return nil, err
	}
	decoder := &decoder{
		engine:   e,
		ctx:      ctx,
		contexts: contexts,
		document: document,
		seen:     make(map[pure.Index]any),
		active:   make(map[pure.Index]bool),
	}
	return decoder.decode(0)
}

type decoder struct {
	engine   *Engine
	ctx      context.Context
	contexts []*Context
	document pure.Document
	seen     map[pure.Index]any
	// active holds nodes whose construction is in progress and whose
	// value is not yet in seen.
	active map[pure.Index]bool
	depth  int
}

func (d *decoder) decode(index pure.Index) (any, error) {
	if value, ok := d.seen[index]; ok {
		return value, nil
	}
	if d.active[index] {
		return nil, &CycleError{Index: index}
	}

	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.engine.maxDepth {
		return nil, &DepthError{Limit: d.engine.maxDepth}
	}

	d.active[index] = true
	defer delete(d.active, index)

	value, err := d.value(index)
	if err != nil {
		return nil, err
	}
	d.seen[index] = value
	return value, nil
}

func (d *decoder) value(index pure.Index) (any, error) {
	switch node := d.document[index].(type) {
	case pure.Raw:
		return node.Value, nil
	case pure.Array:
		array := object.NewArray()
		d.seen[index] = array
		for _, element := range node {
			value, err := d.decode(element)
			if err != nil {
				return nil, err
			}
			array.Append(value)
		}
		return array, nil
	case pure.Symbol:
		return d.engine.symbols.For(node.Key), nil
	case pure.BigInt:
		integer, ok := new(big.Int).SetString(node.Value, 10)
		if !ok {
			return nil, &InvalidPureError{Index: index, Reason: fmt.Sprintf("bigint %q is not a base-10 integer", node.Value)}
		}
		return integer, nil
	case pure.Special:
		switch node.Value {
		case pure.SpecialUndefined:
			return object.Undefined, nil
		case pure.SpecialNaN:
			return math.NaN(), nil
		case pure.SpecialPositiveInfinity:
			return math.Inf(1), nil
		case pure.SpecialNegativeInfinity:
			return math.Inf(-1), nil
		}
		return nil, &InvalidPureError{Index: index, Reason: fmt.Sprintf("unknown special value %d", int(node.Value))}
	case pure.RefValue:
		value, ok := paletteValue(d.contexts, node.Key)
		if !ok {
			return nil, &ReferredValueNotFoundError{Index: index, Key: node.Key}
		}
		return value, nil
	case pure.RefAdapter:
		return d.adapt(index, node)
	case pure.Prototype:
		class, err := d.class(index, node.Class)
		if err != nil {
			return nil, err
		}
		if class == nil {
			return nil, &InvalidPureError{Index: index, Reason: "prototype of undefined"}
		}
		return class.Prototype(), nil
	case pure.Object:
		return d.object(index, node)
	}
	return nil, &InvalidPureError{Index: index, Reason: fmt.Sprintf("unrecognized node %T", d.document[index])}
}

// class decodes a class reference. An undefined class yields nil; any
// other non-class value is invalid.
func (d *decoder) class(index, classIndex pure.Index) (*object.Function, error) {
	value, err := d.decode(classIndex)
	if err != nil {
		return nil, err
	}
	if object.IsUndefined(value) {
		return nil, nil
	}
	class, ok := value.(*object.Function)
	if !ok || !class.IsClass() {
		return nil, &InvalidPureError{Index: index, Reason: fmt.Sprintf("class is %s, not a class", object.TypeName(value))}
	}
	return class, nil
}

func (d *decoder) object(index pure.Index, node pure.Object) (any, error) {
	class, err := d.class(index, node.Class)
	if err != nil {
		return nil, err
	}
	var prototype *object.Object
	if class != nil {
		prototype = class.Prototype()
	}
	obj := object.NewWithPrototype(prototype)
	d.seen[index] = obj

	for _, property := range node.Properties {
		value, err := d.decode(property.Value)
		if err != nil {
			return nil, err
		}
		flags := object.Flags{
			Writable:     !property.Flags.NotWritable,
			Enumerable:   !property.Flags.NotEnumerable,
			Configurable: !property.Flags.NotConfigurable,
		}
		if err := obj.DefineProperty(property.Name, value, flags); err != nil {
			return nil, &InvalidPureError{Index: index, Reason: err.Error()}
		}
	}
	return obj, nil
}

func (d *decoder) adapt(index pure.Index, node pure.RefAdapter) (any, error) {
	adapter, ok := adapterByName(d.contexts, node.Name)
	if !ok {
		return nil, &ReferredAdapterNotFoundError{Index: index, Name: node.Name}
	}
	payload, err := d.decode(node.Value)
	if err != nil {
		return nil, err
	}
	if err := d.ctx.Err(); err != nil {
		return nil, err
	}
	d.engine.logger.Debug("adapter deserialize", slog.String("adapter", node.Name), slog.Int("index", int(index)))
	value, err := adapter.Deserialize(d.ctx, payload)
	if err != nil {
		d.engine.logger.Debug("adapter deserialize failed", slog.String("adapter", node.Name), slog.Any("error", err))
		return nil, &AdapterError{Name: node.Name, Op: "deserialize", Err: err}
	}
	return value, nil
}
