// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"math"
	"slices"
	"sync"
	"testing"
)

func TestSet_IdentitySemantics(t *testing.T) {
	first, second := New(), New()
	set := NewSet(1.0, 2.0, 1.0, first, second, first, math.NaN(), math.NaN())

	if set.Len() != 5 {
		t.Fatalf("Len = %d, want 5", set.Len())
	}
	if !set.Has(math.NaN()) {
		t.Error("NaN should find itself")
	}
	if set.Has(New()) {
		t.Error("a fresh object should not be a member")
	}
	if !set.Delete(first) || set.Has(first) {
		t.Error("Delete(first) failed")
	}

	values := slices.Collect(set.Values())
	if values[0] != 1.0 || values[1] != 2.0 || values[2] != second {
		t.Errorf("insertion order lost: %v", values)
	}
}

func TestSet_RejectsValuesWithoutIdentity(t *testing.T) {
	set := NewSet()
	if err := set.Add(struct{ items []int }{}); err == nil {
		t.Error("Add accepted a value with no identity")
	}
	slice := []any{"a"}
	if err := set.Add(slice); err != nil {
		t.Fatalf("Add(slice): %v", err)
	}
	if !set.Has(slice) {
		t.Error("slice should be found by identity")
	}
}

func TestMap_OrderAndOverwrite(t *testing.T) {
	key := New()
	collection := NewMap()
	collection.Set("a", 1.0)
	collection.Set(key, "object")
	collection.Set("b", 2.0)
	collection.Set("a", 10.0)

	var keys []any
	var values []any
	for entryKey, entryValue := range collection.Entries() {
		keys = append(keys, entryKey)
		values = append(values, entryValue)
	}
	if len(keys) != 3 || keys[0] != "a" || keys[1] != key || keys[2] != "b" {
		t.Errorf("keys = %v", keys)
	}
	if values[0] != 10.0 {
		t.Errorf("overwritten value = %v, want 10", values[0])
	}

	if value, ok := collection.Get(key); !ok || value != "object" {
		t.Errorf("Get(key) = %v, %v", value, ok)
	}
	if !collection.Delete("b") || collection.Has("b") {
		t.Error("Delete(b) failed")
	}
	if collection.Len() != 2 {
		t.Errorf("Len = %d, want 2", collection.Len())
	}
}

func TestSymbolRegistry_InternsByKey(t *testing.T) {
	registry := NewSymbolRegistry()
	first := registry.For("app.token")
	if registry.For("app.token") != first {
		t.Error("For returned a different symbol for the same key")
	}
	if key, ok := registry.KeyFor(first); !ok || key != "app.token" {
		t.Errorf("KeyFor = %q, %v", key, ok)
	}

	local := NewSymbol("app.token")
	if _, ok := registry.KeyFor(local); ok {
		t.Error("local symbol reported as interned")
	}
	if local == first {
		t.Error("local symbol equals interned symbol")
	}

	other := NewSymbolRegistry()
	if other.For("app.token") == first {
		t.Error("separate registries share symbols")
	}
}

func TestSymbolRegistry_Concurrent(t *testing.T) {
	registry := NewSymbolRegistry()
	results := make([]*Symbol, 16)

	var wg sync.WaitGroup
	for index := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[index] = registry.For("shared")
		}()
	}
	wg.Wait()

	for index, symbol := range results {
		if symbol != results[0] {
			t.Fatalf("goroutine %d got a different symbol", index)
		}
	}
	if registry.Len() != 1 {
		t.Errorf("Len = %d, want 1", registry.Len())
	}
}
