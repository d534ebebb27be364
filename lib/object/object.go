// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotConfigurable is returned when redefining a non-configurable
// property in a way that would change it.
var ErrNotConfigurable = errors.New("property is not configurable")

// Flags are the attributes of a data property.
type Flags struct {
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// DefaultFlags are the attributes of a property created by assignment.
var DefaultFlags = Flags{Writable: true, Enumerable: true, Configurable: true}

// Property is one own data property.
type Property struct {
	Name  string
	Value any
	Flags Flags
}

// Object is a prototype link plus own data properties kept in
// definition order.
type Object struct {
	prototype  *Object
	properties []Property
	index      map[string]int
}

// New returns an empty plain object inheriting from [ObjectPrototype].
func New() *Object {
	return NewWithPrototype(ObjectPrototype)
}

// NewWithPrototype returns an empty object inheriting from prototype.
// A nil prototype makes a null-prototype object, which has no
// constructor.
func NewWithPrototype(prototype *Object) *Object {
	return &Object{prototype: prototype, index: make(map[string]int)}
}

// Instantiate returns an empty instance of class. A function without a
// prototype object produces a plain object.
func Instantiate(class *Function) *Object {
	if class == nil || class.prototype == nil {
		return New()
	}
	return NewWithPrototype(class.prototype)
}

// Prototype returns the object this one inherits from, or nil.
func (o *Object) Prototype() *Object {
	return o.prototype
}

// Len returns the number of own properties.
func (o *Object) Len() int {
	return len(o.properties)
}

// GetOwn returns an own property value.
func (o *Object) GetOwn(name string) (any, bool) {
	position, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.properties[position].Value, true
}

// Property returns an own property with its flags.
func (o *Object) Property(name string) (Property, bool) {
	position, ok := o.index[name]
	if !ok {
		return Property{}, false
	}
	return o.properties[position], true
}

// Get returns a property value, searching the prototype chain. A
// missing property yields [Undefined].
func (o *Object) Get(name string) any {
	for current := o; current != nil; current = current.prototype {
		if value, ok := current.GetOwn(name); ok {
			return value
		}
	}
	return Undefined
}

// HasOwn reports whether name is an own property.
func (o *Object) HasOwn(name string) bool {
	_, ok := o.index[name]
	return ok
}

// Has reports whether name is an own or inherited property.
func (o *Object) Has(name string) bool {
	for current := o; current != nil; current = current.prototype {
		if current.HasOwn(name) {
			return true
		}
	}
	return false
}

// Set assigns a property the way plain assignment does: an existing
// own property keeps its flags and a new one gets [DefaultFlags]. Set
// returns false, leaving the object unchanged, when the own or
// inherited property is not writable.
func (o *Object) Set(name string, value any) bool {
	for current := o; current != nil; current = current.prototype {
		position, ok := current.index[name]
		if !ok {
			continue
		}
		if !current.properties[position].Flags.Writable {
			return false
		}
		if current == o {
			o.properties[position].Value = value
			return true
		}
		break
	}
	o.define(name, value, DefaultFlags)
	return true
}

// DefineProperty creates or replaces an own property with explicit
// flags. Replacing a non-configurable property fails with
// [ErrNotConfigurable] unless nothing would change.
func (o *Object) DefineProperty(name string, value any, flags Flags) error {
	if position, ok := o.index[name]; ok {
		existing := o.properties[position]
		if !existing.Flags.Configurable {
			if existing.Flags != flags || (!existing.Flags.Writable && !Same(existing.Value, value)) {
				return fmt.Errorf("redefining %q: %w", name, ErrNotConfigurable)
			}
		}
	}
	o.define(name, value, flags)
	return nil
}

// define writes a property without checks. An existing property keeps
// its position.
func (o *Object) define(name string, value any, flags Flags) {
	if position, ok := o.index[name]; ok {
		o.properties[position].Value = value
		o.properties[position].Flags = flags
		return
	}
	o.index[name] = len(o.properties)
	o.properties = append(o.properties, Property{Name: name, Value: value, Flags: flags})
}

// Delete removes an own property. It returns false, leaving the
// property in place, when the property is not configurable; deleting a
// missing property succeeds.
func (o *Object) Delete(name string) bool {
	position, ok := o.index[name]
	if !ok {
		return true
	}
	if !o.properties[position].Flags.Configurable {
		return false
	}
	o.properties = slices.Delete(o.properties, position, position+1)
	delete(o.index, name)
	for index := position; index < len(o.properties); index++ {
		o.index[o.properties[index].Name] = index
	}
	return true
}

// OwnProperties returns a copy of the own properties in definition
// order, including non-enumerable ones.
func (o *Object) OwnProperties() []Property {
	return slices.Clone(o.properties)
}

// Keys returns the names of enumerable own properties in definition
// order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.properties))
	for _, property := range o.properties {
		if property.Flags.Enumerable {
			keys = append(keys, property.Name)
		}
	}
	return keys
}

// Constructor returns the "constructor" found through the prototype
// chain, or nil when it is missing or not a function.
func (o *Object) Constructor() *Function {
	class, _ := o.Get("constructor").(*Function)
	return class
}

// InstanceOf reports whether class's prototype is on this object's
// prototype chain.
func (o *Object) InstanceOf(class *Function) bool {
	if class == nil || class.prototype == nil {
		return false
	}
	for current := o.prototype; current != nil; current = current.prototype {
		if current == class.prototype {
			return true
		}
	}
	return false
}

// LooksLikePrototype reports whether o is some class's prototype: it
// owns a "constructor" that is a class, o is that class's prototype
// object, and o is not itself an instance of the class.
func LooksLikePrototype(o *Object) bool {
	value, ok := o.GetOwn("constructor")
	if !ok {
		return false
	}
	class, ok := value.(*Function)
	if !ok || class.prototype != o {
		return false
	}
	return !o.InstanceOf(class)
}
