// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

import (
	"fmt"
	"strings"
)

// Entry contains a Key and a Value, for constructing a Map from a
// literal sequence.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map associates keys with values. It is built on the open-addressed
// table engine of this package and is not safe for concurrent use.
//
// Example:
//
//	m := hashtable.NewMap[string, int](digest.String,
//		func(a, b string) bool { return a == b },
//		hashtable.Entry[string, int]{Key: "a", Value: 1},
//	)
//	m.Insert("b", 2)
//	v, ok := m.Get("a")
type Map[K, V any] struct {
	t table[K, V]
}

// NewMap returns a map keyed with hash and equal, holding entries.
// Entries are inserted in order, so a later duplicate key replaces an
// earlier one. It panics if hash or equal is nil.
func NewMap[K, V any](hash func(K) uint64, equal func(K, K) bool,
	entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{t: newTable[K, V](hash, equal)}
	for _, e := range entries {
		m.t.insert(e.Key, e.Value)
	}
	return m
}

// Insert adds the key value pair, replacing the stored key and value
// if key is already present.
func (m *Map[K, V]) Insert(key K, value V) {
	m.t.insert(key, value)
}

// Get returns the value stored for key, or the zero value and false
// if key is not present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.t.get(key)
}

// Contains returns whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.t.find(key)
	return ok
}

// Erase removes key and reports whether it was present. Entries that
// share a probe path with key remain reachable.
func (m *Map[K, V]) Erase(key K) bool {
	return m.t.erase(key)
}

// Size returns the number of entries. It scans the table's digest
// buffer, so it costs O(capacity).
func (m *Map[K, V]) Size() int {
	return m.t.size()
}

// Empty returns whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.t.size() == 0
}

// Each calls fn for every entry, in unspecified order. fn must not
// mutate the map.
func (m *Map[K, V]) Each(fn func(K, V)) {
	m.t.each(fn)
}

// Reserve grows the map to at least capacity slots, rehashing the
// entries into the larger buffers. It never shrinks.
func (m *Map[K, V]) Reserve(capacity int) {
	m.t.reserve(capacity)
}

// Clear removes all entries and releases the buffers.
func (m *Map[K, V]) Clear() {
	m.t.clear()
}

// String implements fmt.Stringer. Entries print in unspecified order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	first := true
	m.t.each(func(k K, v V) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	})
	b.WriteByte(']')
	return b.String()
}
