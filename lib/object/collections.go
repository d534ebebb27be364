// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"container/list"
	"fmt"
	"iter"
)

// Set is an insertion-ordered collection of distinct values, compared
// by identity ([IdentityKey]).
type Set struct {
	order   *list.List
	members map[any]*list.Element
}

// NewSet returns a set holding values, in order, without duplicates.
// It panics if a value has no identity; use [Set.Add] to handle that
// case as an error.
func NewSet(values ...any) *Set {
	set := &Set{order: list.New(), members: make(map[any]*list.Element)}
	for _, value := range values {
		if err := set.Add(value); err != nil {
			panic(err)
		}
	}
	return set
}

// Add inserts value if absent.
func (s *Set) Add(value any) error {
	key, ok := IdentityKey(value)
	if !ok {
		return fmt.Errorf("set member of type %T has no identity", value)
	}
	if _, exists := s.members[key]; exists {
		return nil
	}
	s.members[key] = s.order.PushBack(value)
	return nil
}

// Has reports whether value is a member.
func (s *Set) Has(value any) bool {
	key, ok := IdentityKey(value)
	if !ok {
		return false
	}
	_, exists := s.members[key]
	return exists
}

// Delete removes value and reports whether it was a member.
func (s *Set) Delete(value any) bool {
	key, ok := IdentityKey(value)
	if !ok {
		return false
	}
	element, exists := s.members[key]
	if !exists {
		return false
	}
	s.order.Remove(element)
	delete(s.members, key)
	return true
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.members)
}

// Values iterates members in insertion order.
func (s *Set) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for element := s.order.Front(); element != nil; element = element.Next() {
			if !yield(element.Value) {
				return
			}
		}
	}
}

type mapEntry struct {
	key   any
	value any
}

// Map is an insertion-ordered key/value collection whose keys are
// compared by identity ([IdentityKey]).
type Map struct {
	order   *list.List
	entries map[any]*list.Element
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{order: list.New(), entries: make(map[any]*list.Element)}
}

// Set binds key to value. An existing key keeps its position.
func (m *Map) Set(key, value any) error {
	identity, ok := IdentityKey(key)
	if !ok {
		return fmt.Errorf("map key of type %T has no identity", key)
	}
	if element, exists := m.entries[identity]; exists {
		element.Value.(*mapEntry).value = value
		return nil
	}
	m.entries[identity] = m.order.PushBack(&mapEntry{key: key, value: value})
	return nil
}

// Get returns the value bound to key.
func (m *Map) Get(key any) (any, bool) {
	identity, ok := IdentityKey(key)
	if !ok {
		return nil, false
	}
	element, exists := m.entries[identity]
	if !exists {
		return nil, false
	}
	return element.Value.(*mapEntry).value, true
}

// Has reports whether key is bound.
func (m *Map) Has(key any) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was bound.
func (m *Map) Delete(key any) bool {
	identity, ok := IdentityKey(key)
	if !ok {
		return false
	}
	element, exists := m.entries[identity]
	if !exists {
		return false
	}
	m.order.Remove(element)
	delete(m.entries, identity)
	return true
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Entries iterates key/value pairs in insertion order.
func (m *Map) Entries() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for element := m.order.Front(); element != nil; element = element.Next() {
			entry := element.Value.(*mapEntry)
			if !yield(entry.key, entry.value) {
				return
			}
		}
	}
}
