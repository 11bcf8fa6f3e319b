// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

import (
	"fmt"
	"strings"
)

// Set holds values of type T without duplicates, as decided by the
// equal function given at construction. It is the table engine with
// nothing stored in the value buffer, and is not safe for concurrent
// use.
type Set[T any] struct {
	t table[T, struct{}]
}

// NewSet returns a set keyed with hash and equal, holding vals. It
// panics if hash or equal is nil.
func NewSet[T any](hash func(T) uint64, equal func(T, T) bool,
	vals ...T) *Set[T] {
	s := &Set[T]{t: newTable[T, struct{}](hash, equal)}
	for _, v := range vals {
		s.t.insert(v, struct{}{})
	}
	return s
}

// Insert adds val, replacing an equal value already present.
func (s *Set[T]) Insert(val T) {
	s.t.insert(val, struct{}{})
}

// Contains returns whether val is present.
func (s *Set[T]) Contains(val T) bool {
	_, ok := s.t.find(val)
	return ok
}

// Erase removes val and reports whether it was present. Values that
// share a probe path with val remain reachable.
func (s *Set[T]) Erase(val T) bool {
	return s.t.erase(val)
}

// Size returns the number of values. It scans the table's digest
// buffer, so it costs O(capacity).
func (s *Set[T]) Size() int {
	return s.t.size()
}

// Empty returns whether the set holds no values.
func (s *Set[T]) Empty() bool {
	return s.t.size() == 0
}

// Each calls fn for every value, in unspecified order. fn must not
// mutate the set.
func (s *Set[T]) Each(fn func(T)) {
	s.t.each(func(k T, _ struct{}) {
		fn(k)
	})
}

// Reserve grows the set to at least capacity slots, rehashing the
// values into the larger buffers. It never shrinks.
func (s *Set[T]) Reserve(capacity int) {
	s.t.reserve(capacity)
}

// Clear removes all values and releases the buffers.
func (s *Set[T]) Clear() {
	s.t.clear()
}

// String implements fmt.Stringer. Values print in unspecified order.
func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteString("set[")
	first := true
	s.t.each(func(k T, _ struct{}) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", k)
	})
	b.WriteByte(']')
	return b.String()
}
