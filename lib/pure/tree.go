// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Wire keys of tagged nodes and property flags.
const (
	KeyType       = "T"
	KeyValue      = "V"
	KeyClass      = "C"
	KeyKey        = "K"
	KeyName       = "N"
	KeyProperties = "P"

	KeyWritable     = "W"
	KeyEnumerable   = "E"
	KeyConfigurable = "C"
)

// Tree converts the document to generic values: nil, bool, string,
// float64, int64, []any, and map[string]any. Indices, tags, and special
// values are int64; raw numbers stay float64.
func (d Document) Tree() []any {
	tree := make([]any, len(d))
	for index, node := range d {
		tree[index] = nodeTree(node)
	}
	return tree
}

func nodeTree(node Node) any {
	switch typed := node.(type) {
	case Raw:
		return typed.Value
	case Array:
		elements := make([]any, len(typed))
		for index, element := range typed {
			elements[index] = int64(element)
		}
		return elements
	case Symbol:
		return map[string]any{KeyType: int64(TagSymbol), KeyKey: typed.Key}
	case BigInt:
		return map[string]any{KeyType: int64(TagBigInt), KeyValue: typed.Value}
	case Special:
		return map[string]any{KeyType: int64(TagSpecial), KeyValue: int64(typed.Value)}
	case Prototype:
		return map[string]any{KeyType: int64(TagPrototype), KeyClass: int64(typed.Class)}
	case Object:
		properties := make([]any, len(typed.Properties))
		for index, property := range typed.Properties {
			properties[index] = []any{property.Name, int64(property.Value), flagsTree(property.Flags)}
		}
		return map[string]any{
			KeyType:       int64(TagObject),
			KeyClass:      int64(typed.Class),
			KeyProperties: properties,
		}
	case RefValue:
		return map[string]any{KeyType: int64(TagRefValue), KeyKey: typed.Key}
	case RefAdapter:
		return map[string]any{KeyType: int64(TagRefAdapter), KeyName: typed.Name, KeyValue: int64(typed.Value)}
	}
	return nil
}

func flagsTree(flags Flags) map[string]any {
	tree := make(map[string]any, 3)
	if flags.NotWritable {
		tree[KeyWritable] = false
	}
	if flags.NotEnumerable {
		tree[KeyEnumerable] = false
	}
	if flags.NotConfigurable {
		tree[KeyConfigurable] = false
	}
	return tree
}

// FromTree converts a generic tree back into a document. It accepts
// the numeric types produced by the standard framing decoders (any Go
// integer or float type and json.Number). FromTree checks node shape
// only; use [Validate] to check that indices are in range.
func FromTree(tree any) (Document, error) {
	slots, ok := tree.([]any)
	if !ok {
		return nil, &InvalidError{Index: -1, Reason: fmt.Sprintf("document must be a sequence, got %T", tree)}
	}
	document := make(Document, len(slots))
	for index, slot := range slots {
		node, err := nodeFromTree(slot)
		if err != nil {
			return nil, &InvalidError{Index: Index(index), Reason: err.Error()}
		}
		document[index] = node
	}
	return document, nil
}

func nodeFromTree(slot any) (Node, error) {
	switch typed := slot.(type) {
	case nil:
		return Raw{Value: nil}, nil
	case bool, string:
		return Raw{Value: typed}, nil
	case []any:
		array := make(Array, len(typed))
		for position, element := range typed {
			index, err := treeIndex(element)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", position, err)
			}
			array[position] = index
		}
		return array, nil
	case map[string]any:
		return taggedFromTree(typed)
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for key, value := range typed {
			name, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("node key %v is not a string", key)
			}
			converted[name] = value
		}
		return taggedFromTree(converted)
	}
	number, ok, err := treeNumber(slot)
	if err != nil {
		return nil, err
	}
	if ok {
		return Raw{Value: number}, nil
	}
	return nil, fmt.Errorf("unexpected %T", slot)
}

func taggedFromTree(node map[string]any) (Node, error) {
	tagValue, present := node[KeyType]
	if !present {
		return nil, fmt.Errorf("tagged node has no %q", KeyType)
	}
	tagNumber, err := treeInteger(tagValue)
	if err != nil {
		return nil, fmt.Errorf("tag: %w", err)
	}

	switch tag := Tag(tagNumber); tag {
	case TagSymbol:
		key, err := treeString(node, KeyKey)
		if err != nil {
			return nil, err
		}
		return Symbol{Key: key}, nil
	case TagBigInt:
		value, err := treeString(node, KeyValue)
		if err != nil {
			return nil, err
		}
		return BigInt{Value: value}, nil
	case TagSpecial:
		value, err := treeField(node, KeyValue, treeInteger)
		if err != nil {
			return nil, err
		}
		return Special{Value: SpecialValue(value)}, nil
	case TagPrototype:
		class, err := treeField(node, KeyClass, treeIndex)
		if err != nil {
			return nil, err
		}
		return Prototype{Class: class}, nil
	case TagObject:
		class, err := treeField(node, KeyClass, treeIndex)
		if err != nil {
			return nil, err
		}
		properties, err := propertiesFromTree(node[KeyProperties])
		if err != nil {
			return nil, err
		}
		return Object{Class: class, Properties: properties}, nil
	case TagRefValue:
		key, err := treeString(node, KeyKey)
		if err != nil {
			return nil, err
		}
		return RefValue{Key: key}, nil
	case TagRefAdapter:
		name, err := treeString(node, KeyName)
		if err != nil {
			return nil, err
		}
		value, err := treeField(node, KeyValue, treeIndex)
		if err != nil {
			return nil, err
		}
		return RefAdapter{Name: name, Value: value}, nil
	default:
		return nil, fmt.Errorf("unrecognized tag %d", tagNumber)
	}
}

func propertiesFromTree(value any) ([]Property, error) {
	if value == nil {
		return nil, nil
	}
	entries, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%q must be a sequence, got %T", KeyProperties, value)
	}
	properties := make([]Property, len(entries))
	for position, entry := range entries {
		fields, ok := entry.([]any)
		if !ok || len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("property %d must be [name, index, flags]", position)
		}
		name, ok := fields[0].(string)
		if !ok {
			return nil, fmt.Errorf("property %d: name must be a string, got %T", position, fields[0])
		}
		index, err := treeIndex(fields[1])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		property := Property{Name: name, Value: index}
		if len(fields) == 3 && fields[2] != nil {
			flags, err := flagsFromTree(fields[2])
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			property.Flags = flags
		}
		properties[position] = property
	}
	return properties, nil
}

func flagsFromTree(value any) (Flags, error) {
	var entries map[string]any
	switch typed := value.(type) {
	case map[string]any:
		entries = typed
	case map[any]any:
		entries = make(map[string]any, len(typed))
		for key, flag := range typed {
			name, ok := key.(string)
			if !ok {
				return Flags{}, fmt.Errorf("flag key %v is not a string", key)
			}
			entries[name] = flag
		}
	default:
		return Flags{}, fmt.Errorf("flags must be a map, got %T", value)
	}

	var flags Flags
	for key, flag := range entries {
		set, ok := flag.(bool)
		if !ok {
			return Flags{}, fmt.Errorf("flag %q must be a boolean, got %T", key, flag)
		}
		switch key {
		case KeyWritable:
			flags.NotWritable = !set
		case KeyEnumerable:
			flags.NotEnumerable = !set
		case KeyConfigurable:
			flags.NotConfigurable = !set
		default:
			return Flags{}, fmt.Errorf("unknown flag %q", key)
		}
	}
	return flags, nil
}

func treeString(node map[string]any, key string) (string, error) {
	value, present := node[key]
	if !present {
		return "", fmt.Errorf("missing %q", key)
	}
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%q must be a string, got %T", key, value)
	}
	return text, nil
}

func treeField[T any](node map[string]any, key string, convert func(any) (T, error)) (T, error) {
	value, present := node[key]
	if !present {
		var zero T
		return zero, fmt.Errorf("missing %q", key)
	}
	converted, err := convert(value)
	if err != nil {
		return converted, fmt.Errorf("%q: %w", key, err)
	}
	return converted, nil
}

func treeIndex(value any) (Index, error) {
	integer, err := treeInteger(value)
	if err != nil {
		return 0, err
	}
	if integer < 0 {
		return 0, fmt.Errorf("negative index %d", integer)
	}
	return Index(integer), nil
}

func treeInteger(value any) (int64, error) {
	number, ok, err := treeNumber(value)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("expected an integer, got %T", value)
	}
	if number != math.Trunc(number) || math.Abs(number) > 1<<53 {
		return 0, fmt.Errorf("expected an integer, got %v", number)
	}
	return int64(number), nil
}

// treeNumber widens any numeric tree value to float64. ok is false for
// non-numeric values.
func treeNumber(value any) (number float64, ok bool, err error) {
	switch typed := value.(type) {
	case float64:
		return typed, true, nil
	case float32:
		return float64(typed), true, nil
	case int:
		return float64(typed), true, nil
	case int8:
		return float64(typed), true, nil
	case int16:
		return float64(typed), true, nil
	case int32:
		return float64(typed), true, nil
	case int64:
		return float64(typed), true, nil
	case uint:
		return float64(typed), true, nil
	case uint8:
		return float64(typed), true, nil
	case uint16:
		return float64(typed), true, nil
	case uint32:
		return float64(typed), true, nil
	case uint64:
		return float64(typed), true, nil
	case json.Number:
		parsed, err := strconv.ParseFloat(string(typed), 64)
		if err != nil {
			return 0, true, fmt.Errorf("number %q: %w", typed, err)
		}
		return parsed, true, nil
	}
	return 0, false, nil
}

// MarshalJSON writes the document as a JSON array of nodes.
func (d Document) MarshalJSON() ([]byte, error) {
	for index, node := range d {
		if raw, ok := node.(Raw); ok {
			if number, isFloat := raw.Value.(float64); isFloat && (math.IsNaN(number) || math.IsInf(number, 0)) {
				return nil, &InvalidError{Index: Index(index), Reason: "raw number is not finite"}
			}
		}
	}
	return json.Marshal(d.Tree())
}

// UnmarshalJSON reads a JSON array of nodes.
func (d *Document) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var tree any
	if err := decoder.Decode(&tree); err != nil {
		return err
	}
	document, err := FromTree(tree)
	if err != nil {
		return err
	}
	*d = document
	return nil
}
