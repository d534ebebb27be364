// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import "github.com/bureau-foundation/seriall/lib/bimap"

// Function is a named stand-in for a callable value. It carries no
// behavior. Classes are functions that own a prototype object.
type Function struct {
	name      string
	prototype *Object
	super     *Function
}

// NewFunction creates a function with no prototype object. Such a
// function cannot be used as a class.
func NewFunction(name string) *Function {
	return &Function{name: name}
}

// NewClass creates a class. Its prototype owns a non-enumerable
// "constructor" property pointing back at the class, and inherits from
// super's prototype, or from [ObjectPrototype] when super is nil or has
// no prototype.
func NewClass(name string, super *Function) *Function {
	parent := ObjectPrototype
	if super != nil && super.prototype != nil {
		parent = super.prototype
	}
	return newClass(name, super, parent)
}

func newClass(name string, super *Function, parent *Object) *Function {
	class := &Function{name: name, super: super}
	class.prototype = NewWithPrototype(parent)
	class.prototype.define("constructor", class, Flags{Writable: true, Configurable: true})
	return class
}

// Name returns the function name.
func (f *Function) Name() string {
	return f.name
}

// Prototype returns the class prototype, or nil for a plain function.
func (f *Function) Prototype() *Object {
	return f.prototype
}

// Super returns the class this one extends, or nil.
func (f *Function) Super() *Function {
	return f.super
}

// WithSupers returns name/class palette entries for class and each
// class it extends, nearest first, so instances of any class in the
// chain can travel by palette.
func WithSupers(class *Function) []bimap.Pair[string, any] {
	var pairs []bimap.Pair[string, any]
	for current := class; current != nil; current = current.super {
		pairs = append(pairs, bimap.Pair[string, any]{Key: current.name, Value: current})
	}
	return pairs
}

// IsClass reports whether f owns a prototype object.
func (f *Function) IsClass() bool {
	return f.prototype != nil
}

func (f *Function) String() string {
	if f.name == "" {
		return "function <anonymous>"
	}
	return "function " + f.name
}

var (
	// ObjectClass is the root class. Its prototype has a null prototype.
	ObjectClass = newClass("Object", nil, nil)

	// ObjectPrototype is the prototype of plain objects.
	ObjectPrototype = ObjectClass.prototype

	// ArrayClass is the class of arrays. [Array] values report it as
	// their constructor.
	ArrayClass = NewClass("Array", ObjectClass)

	// FunctionClass is the class of functions.
	FunctionClass = NewClass("Function", ObjectClass)
)
