// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pure

import "fmt"

// Index is the position of a node in a [Document].
type Index int

// Tag identifies the kind of a node. The numbering is part of the wire
// format.
type Tag int

const (
	TagRaw Tag = iota
	TagArray
	TagSymbol
	TagBigInt
	TagSpecial
	TagPrototype
	TagObject
	TagRefValue
	TagRefAdapter

	tagCount
)

var tagNames = [tagCount]string{
	TagRaw:        "raw",
	TagArray:      "array",
	TagSymbol:     "symbol",
	TagBigInt:     "bigint",
	TagSpecial:    "special",
	TagPrototype:  "prototype",
	TagObject:     "object",
	TagRefValue:   "ref-value",
	TagRefAdapter: "ref-adapter",
}

func (t Tag) String() string {
	if t >= 0 && t < tagCount {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// Tags lists every tag in wire order.
func Tags() []Tag {
	tags := make([]Tag, tagCount)
	for index := range tags {
		tags[index] = Tag(index)
	}
	return tags
}

// SpecialValue enumerates values with no Raw form.
type SpecialValue int

const (
	SpecialUndefined SpecialValue = iota
	SpecialNaN
	SpecialPositiveInfinity
	SpecialNegativeInfinity

	specialCount
)

func (s SpecialValue) String() string {
	switch s {
	case SpecialUndefined:
		return "undefined"
	case SpecialNaN:
		return "NaN"
	case SpecialPositiveInfinity:
		return "Infinity"
	case SpecialNegativeInfinity:
		return "-Infinity"
	}
	return fmt.Sprintf("special(%d)", int(s))
}

// Valid reports whether s is a known special value.
func (s SpecialValue) Valid() bool {
	return s >= 0 && s < specialCount
}

// Node is one entry of a [Document].
type Node interface {
	Tag() Tag
}

// Raw is a value written as itself: string, float64, bool, or nil.
type Raw struct {
	Value any
}

// Array lists the indices of its elements.
type Array []Index

// Symbol is an interned symbol, identified by its registry key.
type Symbol struct {
	Key string
}

// BigInt is an arbitrary-precision integer in base-10 text.
type BigInt struct {
	Value string
}

// Special is undefined, NaN, or an infinity.
type Special struct {
	Value SpecialValue
}

// Prototype is the prototype object of the class at Class.
type Prototype struct {
	Class Index
}

// Object is an instance of the class at Class with ordered own
// properties. Class points at an undefined node for objects with a null
// prototype.
type Object struct {
	Class      Index
	Properties []Property
}

// Property is one own data property of an [Object].
type Property struct {
	Name  string
	Value Index
	Flags Flags
}

// Flags records the descriptor attributes that differ from the default.
// The zero value is a writable, enumerable, configurable property.
type Flags struct {
	NotWritable     bool
	NotEnumerable   bool
	NotConfigurable bool
}

// RefValue refers to the palette entry named Key.
type RefValue struct {
	Key string
}

// RefAdapter refers to the adapter named Name, which rebuilds a value
// from the payload at Value.
type RefAdapter struct {
	Name  string
	Value Index
}

func (Raw) Tag() Tag        { return TagRaw }
func (Array) Tag() Tag      { return TagArray }
func (Symbol) Tag() Tag     { return TagSymbol }
func (BigInt) Tag() Tag     { return TagBigInt }
func (Special) Tag() Tag    { return TagSpecial }
func (Prototype) Tag() Tag  { return TagPrototype }
func (Object) Tag() Tag     { return TagObject }
func (RefValue) Tag() Tag   { return TagRefValue }
func (RefAdapter) Tag() Tag { return TagRefAdapter }

// Document is a serialized object graph. Slot 0 is the root.
type Document []Node

// Root returns the root node, or nil for an empty document.
func (d Document) Root() Node {
	if len(d) == 0 {
		return nil
	}
	return d[0]
}
