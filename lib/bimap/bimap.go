// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bimap

import (
	"container/list"
	"iter"
	"reflect"
)

// Pair is one key/value binding, used for ordered batch insertion and
// as the element type of [BiMap.Pairs].
type Pair[K, V any] struct {
	Key   K
	Value V
}

// BiMap is a strict bijection between keys and values. The zero value
// is not usable; construct with [New] or [FromPairs].
type BiMap[K, V comparable] struct {
	// order holds *Pair[K, V] elements in insertion order. Both index
	// maps point into it so deletion by either side is O(1).
	order   *list.List
	byKey   map[K]*list.Element
	byValue map[V]*list.Element
}

// New returns an empty BiMap.
func New[K, V comparable]() *BiMap[K, V] {
	return &BiMap[K, V]{
		order:   list.New(),
		byKey:   make(map[K]*list.Element),
		byValue: make(map[V]*list.Element),
	}
}

// FromPairs builds a BiMap with [BiMap.AddPairs] semantics: a
// duplicated key or value is an error rather than a silent eviction.
func FromPairs[K, V comparable](pairs []Pair[K, V]) (*BiMap[K, V], error) {
	bimap := New[K, V]()
	if err := bimap.AddPairs(pairs); err != nil {
		return nil, err
	}
	return bimap, nil
}

// Len returns the number of pairs.
func (b *BiMap[K, V]) Len() int {
	return len(b.byKey)
}

// Clear removes every pair.
func (b *BiMap[K, V]) Clear() {
	b.order.Init()
	clear(b.byKey)
	clear(b.byValue)
}

// HasKey reports whether key is bound.
func (b *BiMap[K, V]) HasKey(key K) bool {
	if !hashable(key) {
		return false
	}
	_, ok := b.byKey[key]
	return ok
}

// HasValue reports whether value is bound.
func (b *BiMap[K, V]) HasValue(value V) bool {
	if !hashable(value) {
		return false
	}
	_, ok := b.byValue[value]
	return ok
}

// Lookup returns the value bound to key.
func (b *BiMap[K, V]) Lookup(key K) (V, bool) {
	if !hashable(key) {
		var zero V
		return zero, false
	}
	element, ok := b.byKey[key]
	if !ok {
		var zero V
		return zero, false
	}
	return element.Value.(*Pair[K, V]).Value, true
}

// LookupKey returns the key bound to value.
func (b *BiMap[K, V]) LookupKey(value V) (K, bool) {
	if !hashable(value) {
		var zero K
		return zero, false
	}
	element, ok := b.byValue[value]
	if !ok {
		var zero K
		return zero, false
	}
	return element.Value.(*Pair[K, V]).Key, true
}

// Value returns the value bound to key, or an error wrapping
// [ErrNoSuchKey].
func (b *BiMap[K, V]) Value(key K) (V, error) {
	value, ok := b.Lookup(key)
	if !ok {
		return value, &Error{Err: ErrNoSuchKey, Item: key}
	}
	return value, nil
}

// Key returns the key bound to value, or an error wrapping
// [ErrNoSuchValue].
func (b *BiMap[K, V]) Key(value V) (K, error) {
	key, ok := b.LookupKey(value)
	if !ok {
		return key, &Error{Err: ErrNoSuchValue, Item: value}
	}
	return key, nil
}

// Set binds key to value, first removing any pair that already uses
// key or value. The only possible error is [ErrNotComparable].
func (b *BiMap[K, V]) Set(key K, value V) error {
	if err := checkComparable(key, value); err != nil {
		return err
	}
	b.DeleteKey(key)
	b.DeleteValue(value)
	b.insert(key, value)
	return nil
}

// Add binds key to value only if neither is bound yet. A bound key
// yields [ErrKeyConflict]; a bound value yields [ErrValueConflict].
// The map is unchanged on error.
func (b *BiMap[K, V]) Add(key K, value V) error {
	if err := checkComparable(key, value); err != nil {
		return err
	}
	if _, exists := b.byKey[key]; exists {
		return &Error{Err: ErrKeyConflict, Item: key}
	}
	if _, exists := b.byValue[value]; exists {
		return &Error{Err: ErrValueConflict, Item: value}
	}
	b.insert(key, value)
	return nil
}

// SetPairs calls [BiMap.Set] for each pair in order.
func (b *BiMap[K, V]) SetPairs(pairs []Pair[K, V]) error {
	for _, pair := range pairs {
		if err := b.Set(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// AddPairs calls [BiMap.Add] for each pair in order, stopping at the
// first conflict. Pairs before the conflicting one remain inserted.
func (b *BiMap[K, V]) AddPairs(pairs []Pair[K, V]) error {
	for _, pair := range pairs {
		if err := b.Add(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// DeleteKey removes the pair bound to key and reports whether one
// existed.
func (b *BiMap[K, V]) DeleteKey(key K) bool {
	if !hashable(key) {
		return false
	}
	element, ok := b.byKey[key]
	if !ok {
		return false
	}
	b.remove(element)
	return true
}

// DeleteValue removes the pair bound to value and reports whether one
// existed.
func (b *BiMap[K, V]) DeleteValue(value V) bool {
	if !hashable(value) {
		return false
	}
	element, ok := b.byValue[value]
	if !ok {
		return false
	}
	b.remove(element)
	return true
}

// DeleteKeys removes every listed key and returns how many were bound.
func (b *BiMap[K, V]) DeleteKeys(keys ...K) int {
	removed := 0
	for _, key := range keys {
		if b.DeleteKey(key) {
			removed++
		}
	}
	return removed
}

// DeleteValues removes every listed value and returns how many were
// bound.
func (b *BiMap[K, V]) DeleteValues(values ...V) int {
	removed := 0
	for _, value := range values {
		if b.DeleteValue(value) {
			removed++
		}
	}
	return removed
}

// Keys iterates keys in insertion order.
func (b *BiMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for element := b.order.Front(); element != nil; element = element.Next() {
			if !yield(element.Value.(*Pair[K, V]).Key) {
				return
			}
		}
	}
}

// Values iterates values in insertion order.
func (b *BiMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for element := b.order.Front(); element != nil; element = element.Next() {
			if !yield(element.Value.(*Pair[K, V]).Value) {
				return
			}
		}
	}
}

// All iterates key/value pairs in insertion order.
func (b *BiMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for element := b.order.Front(); element != nil; element = element.Next() {
			pair := element.Value.(*Pair[K, V])
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// ForEach calls fn once per pair in insertion order. fn must not
// mutate the BiMap.
func (b *BiMap[K, V]) ForEach(fn func(key K, value V)) {
	for key, value := range b.All() {
		fn(key, value)
	}
}

// Pairs returns a snapshot of all pairs in insertion order.
func (b *BiMap[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, b.Len())
	for key, value := range b.All() {
		pairs = append(pairs, Pair[K, V]{Key: key, Value: value})
	}
	return pairs
}

// Clone returns an independent BiMap holding the same keys and values
// in the same order. Keys and values themselves are not copied.
func (b *BiMap[K, V]) Clone() *BiMap[K, V] {
	cloned := New[K, V]()
	for key, value := range b.All() {
		cloned.insert(key, value)
	}
	return cloned
}

func (b *BiMap[K, V]) insert(key K, value V) {
	element := b.order.PushBack(&Pair[K, V]{Key: key, Value: value})
	b.byKey[key] = element
	b.byValue[value] = element
}

func (b *BiMap[K, V]) remove(element *list.Element) {
	pair := b.order.Remove(element).(*Pair[K, V])
	delete(b.byKey, pair.Key)
	delete(b.byValue, pair.Value)
}

func checkComparable[K, V comparable](key K, value V) error {
	if !hashable(key) {
		return &Error{Err: ErrNotComparable, Item: key}
	}
	if !hashable(value) {
		return &Error{Err: ErrNotComparable, Item: value}
	}
	return nil
}

// hashable reports whether item can be used as a map key without
// panicking. Only interface-typed items can fail this; for concrete
// comparable types the check is a cheap reflection no-op.
func hashable[T comparable](item T) bool {
	boxed := any(item)
	if boxed == nil {
		return true
	}
	return reflect.ValueOf(boxed).Comparable()
}
