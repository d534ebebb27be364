// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"errors"
	"math"
	"math/big"
	"slices"
	"testing"
)

func TestObject_PropertiesKeepDefinitionOrder(t *testing.T) {
	obj := New()
	obj.Set("zeta", 1.0)
	obj.Set("alpha", 2.0)
	obj.DefineProperty("hidden", "x", Flags{Writable: true})
	obj.Set("zeta", 3.0)

	var names []string
	for _, property := range obj.OwnProperties() {
		names = append(names, property.Name)
	}
	if want := []string{"zeta", "alpha", "hidden"}; !slices.Equal(names, want) {
		t.Errorf("OwnProperties names = %v, want %v", names, want)
	}
	if want := []string{"zeta", "alpha"}; !slices.Equal(obj.Keys(), want) {
		t.Errorf("Keys = %v, want %v (hidden is not enumerable)", obj.Keys(), want)
	}
	if value, _ := obj.GetOwn("zeta"); value != 3.0 {
		t.Errorf("zeta = %v, want 3", value)
	}
}

func TestObject_SetRespectsWritable(t *testing.T) {
	obj := New()
	if err := obj.DefineProperty("frozen", 1.0, Flags{Enumerable: true, Configurable: true}); err != nil {
		t.Fatalf("DefineProperty: %v", err)
	}
	if obj.Set("frozen", 2.0) {
		t.Error("Set on a non-writable property reported success")
	}
	if value, _ := obj.GetOwn("frozen"); value != 1.0 {
		t.Errorf("frozen = %v, want 1", value)
	}

	// Inherited non-writable properties block assignment too.
	child := NewWithPrototype(obj)
	if child.Set("frozen", 5.0) {
		t.Error("Set shadowing an inherited non-writable property reported success")
	}
	if child.HasOwn("frozen") {
		t.Error("failed Set created an own property")
	}
}

func TestObject_DefinePropertyNonConfigurable(t *testing.T) {
	obj := New()
	locked := Flags{Enumerable: true}
	if err := obj.DefineProperty("id", 7.0, locked); err != nil {
		t.Fatalf("DefineProperty: %v", err)
	}

	// Identical redefinition is allowed.
	if err := obj.DefineProperty("id", 7.0, locked); err != nil {
		t.Errorf("identical redefinition failed: %v", err)
	}

	err := obj.DefineProperty("id", 8.0, locked)
	if !errors.Is(err, ErrNotConfigurable) {
		t.Errorf("changing value: err = %v, want ErrNotConfigurable", err)
	}
	err = obj.DefineProperty("id", 7.0, DefaultFlags)
	if !errors.Is(err, ErrNotConfigurable) {
		t.Errorf("changing flags: err = %v, want ErrNotConfigurable", err)
	}

	if obj.Delete("id") {
		t.Error("Delete of a non-configurable property reported success")
	}
	if !obj.HasOwn("id") {
		t.Error("non-configurable property was removed")
	}
}

func TestObject_DeleteReindexes(t *testing.T) {
	obj := New()
	obj.Set("a", 1.0)
	obj.Set("b", 2.0)
	obj.Set("c", 3.0)

	if !obj.Delete("a") {
		t.Fatal("Delete(a) = false")
	}
	if !obj.Delete("missing") {
		t.Error("Delete of a missing property should succeed")
	}
	obj.Set("c", 30.0)
	if value, _ := obj.GetOwn("c"); value != 30.0 {
		t.Errorf("c = %v after reindex, want 30", value)
	}
	if want := []string{"b", "c"}; !slices.Equal(obj.Keys(), want) {
		t.Errorf("Keys = %v, want %v", obj.Keys(), want)
	}
}

func TestObject_GetWalksPrototypeChain(t *testing.T) {
	base := NewClass("Base", nil)
	base.Prototype().Set("greeting", "hello")
	derived := NewClass("Derived", base)

	instance := Instantiate(derived)
	if got := instance.Get("greeting"); got != "hello" {
		t.Errorf("inherited greeting = %v, want hello", got)
	}
	if !IsUndefined(instance.Get("missing")) {
		t.Error("missing property should be Undefined")
	}
	if instance.Constructor() != derived {
		t.Errorf("Constructor = %v, want Derived", instance.Constructor())
	}
	if !instance.InstanceOf(base) || !instance.InstanceOf(ObjectClass) {
		t.Error("instance should be an instance of Base and Object")
	}
	if instance.HasOwn("constructor") {
		t.Error("instances must not own constructor")
	}
}

func TestObject_NullPrototype(t *testing.T) {
	obj := NewWithPrototype(nil)
	obj.Set("key", "value")
	if obj.Constructor() != nil {
		t.Error("null-prototype object has a constructor")
	}
	if obj.InstanceOf(ObjectClass) {
		t.Error("null-prototype object is an instance of Object")
	}
	if TypeName(obj) != "Object" {
		t.Errorf("TypeName = %q", TypeName(obj))
	}
}

func TestLooksLikePrototype(t *testing.T) {
	class := NewClass("Point", nil)

	tests := []struct {
		name   string
		object *Object
		want   bool
	}{
		{"ObjectPrototype", ObjectPrototype, true},
		{"class prototype", class.Prototype(), true},
		{"ArrayPrototype", ArrayClass.Prototype(), true},
		{"instance", Instantiate(class), false},
		{"plain object", New(), false},
		{"null prototype", NewWithPrototype(nil), false},
	}

	// An instance that shadows constructor with its own class is still
	// an instance, not a prototype.
	shadowing := Instantiate(class)
	shadowing.Set("constructor", class)
	tests = append(tests, struct {
		name   string
		object *Object
		want   bool
	}{"instance owning its constructor", shadowing, false})

	// An owned constructor that is not a function does not count.
	notFunction := New()
	notFunction.Set("constructor", "Point")
	tests = append(tests, struct {
		name   string
		object *Object
		want   bool
	}{"non-function constructor", notFunction, false})

	// Owning a class as constructor is not enough: the object must be
	// that class's prototype.
	impostor := NewWithPrototype(nil)
	impostor.Set("constructor", class)
	tests = append(tests, struct {
		name   string
		object *Object
		want   bool
	}{"unrelated object owning a class", impostor, false})

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := LooksLikePrototype(test.object); got != test.want {
				t.Errorf("LooksLikePrototype = %v, want %v", got, test.want)
			}
		})
	}
}

func TestClassPrototypeConstructorIsHidden(t *testing.T) {
	class := NewClass("Widget", nil)
	property, ok := class.Prototype().Property("constructor")
	if !ok {
		t.Fatal("prototype does not own constructor")
	}
	if property.Flags.Enumerable {
		t.Error("constructor should not be enumerable")
	}
	if property.Value != class {
		t.Error("constructor does not point back at the class")
	}
	if NewFunction("f").IsClass() {
		t.Error("plain function reported as class")
	}
}

func TestTypeName(t *testing.T) {
	class := NewClass("Point", nil)
	tests := []struct {
		value any
		want  string
	}{
		{nil, "null"},
		{Undefined, "undefined"},
		{true, "boolean"},
		{1.5, "number"},
		{"s", "string"},
		{big.NewInt(1), "bigint"},
		{NewSymbol("s"), "symbol"},
		{NewFunction("f"), "Function"},
		{New(), "Object"},
		{Instantiate(class), "Point"},
		{NewArray(), "Array"},
		{[]any{}, "Array"},
		{NewSet(), "Set"},
		{NewMap(), "Map"},
		{struct{}{}, "struct {}"},
	}
	for _, test := range tests {
		if got := TypeName(test.value); got != test.want {
			t.Errorf("TypeName(%#v) = %q, want %q", test.value, got, test.want)
		}
	}
}

func TestIdentityKey(t *testing.T) {
	slice := []any{1.0}
	other := []any{1.0}
	objectA, objectB := New(), New()

	if !Same(slice, slice) {
		t.Error("a slice is not the same as itself")
	}
	if Same(slice, other) {
		t.Error("distinct slices with equal contents reported same")
	}
	if Same(objectA, objectB) {
		t.Error("distinct objects reported same")
	}
	if !Same(math.NaN(), math.NaN()) {
		t.Error("NaN should be the same as NaN")
	}
	if !Same("x", "x") || !Same(2.0, 2.0) {
		t.Error("equal primitives should be the same")
	}
	if _, ok := IdentityKey(struct{ items []int }{}); ok {
		t.Error("struct holding a slice should have no identity")
	}

	// Distinct empty slices can share the runtime's zero-size base
	// pointer, so none of these may claim an identity.
	for name, value := range map[string]any{
		"empty literal":    []any{},
		"empty make":       make([]any, 0),
		"nil slice":        []any(nil),
		"zero-size values": make([]struct{}, 3),
		"nil map":          map[string]int(nil),
	} {
		if _, ok := IdentityKey(value); ok {
			t.Errorf("%s has an identity", name)
		}
	}
	if Same([]any{}, make([]any, 0)) {
		t.Error("two empty slices reported same")
	}
}

func TestArray(t *testing.T) {
	array := NewArray(1.0, "two")
	array.Append(true)
	array.SetAt(5, "five")

	if array.Len() != 6 {
		t.Fatalf("Len = %d, want 6", array.Len())
	}
	if !IsUndefined(array.At(4)) {
		t.Error("hole should be Undefined")
	}
	if !IsUndefined(array.At(-1)) || !IsUndefined(array.At(100)) {
		t.Error("out of range At should be Undefined")
	}

	array.SetAt(0, array)
	if array.At(0) != array {
		t.Error("array cannot contain itself")
	}
	if got := len(slices.Collect(array.Values())); got != 6 {
		t.Errorf("Values yielded %d elements", got)
	}
}

func TestWithSupers(t *testing.T) {
	a := NewClass("A", nil)
	b := NewClass("B", a)
	c := NewClass("C", b)

	pairs := WithSupers(c)
	var names []string
	for _, pair := range pairs {
		names = append(names, pair.Key)
	}
	if want := []string{"C", "B", "A"}; !slices.Equal(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	if pairs[0].Value != c || pairs[1].Value != b || pairs[2].Value != a {
		t.Error("pairs do not hold the classes themselves")
	}

	root := WithSupers(ObjectClass)
	if len(root) != 1 || root[0].Key != "Object" || root[0].Value != ObjectClass {
		t.Errorf("WithSupers(Object) = %v", root)
	}
}
