// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package vector implements a sequence of elements stored contiguously
// in a single exact-fit buffer. The buffer's capacity always equals the
// element count, so a vector never retains memory for elements it does
// not hold; the trade-off is that every insertion and removal
// reallocates the buffer. Use it where memory footprint matters more
// than update throughput.
package vector

import (
	"fmt"

	"github.com/aristanetworks/gods/alloc"
)

// Vector is an exact-fit sequence of T. The zero value is an empty
// vector ready to use. A Vector is not safe for concurrent use.
type Vector[T any] struct {
	buf []T
	mem alloc.Allocator[T]
}

// New returns a new empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// Of returns a vector holding vals in order.
func Of[T any](vals ...T) *Vector[T] {
	return FromSlice(vals)
}

// FromSlice returns a vector holding a copy of s. The vector does not
// alias s.
func FromSlice[T any](s []T) *Vector[T] {
	v := &Vector[T]{}
	v.buf = v.mem.Allocate(len(s))
	copy(v.buf, s)
	return v
}

// Clone returns a copy of v. Elements are copied by assignment.
func (v *Vector[T]) Clone() *Vector[T] {
	return FromSlice(v.buf)
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.buf)
}

// Empty returns whether v holds no elements.
func (v *Vector[T]) Empty() bool {
	return len(v.buf) == 0
}

// At returns the element at index i. It panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	v.check(i)
	return v.buf[i]
}

// Set replaces the element at index i with val. It panics if i is out
// of range.
func (v *Vector[T]) Set(i int, val T) {
	v.check(i)
	v.buf[i] = val
}

// Front returns the first element. It panics if v is empty.
func (v *Vector[T]) Front() T {
	if len(v.buf) == 0 {
		panic("vector: Front of empty vector")
	}
	return v.buf[0]
}

// Back returns the last element. It panics if v is empty.
func (v *Vector[T]) Back() T {
	if len(v.buf) == 0 {
		panic("vector: Back of empty vector")
	}
	return v.buf[len(v.buf)-1]
}

// Insert inserts val at index i, shifting the elements at i and after
// one position towards the back. i may equal Len, which appends. It
// panics if i is out of range.
func (v *Vector[T]) Insert(i int, val T) {
	if i < 0 || i > len(v.buf) {
		panic(fmt.Sprintf("vector: Insert index %d out of range with length %d",
			i, len(v.buf)))
	}
	v.buf = v.mem.Reallocate(v.buf, len(v.buf)+1)
	copy(v.buf[i+1:], v.buf[i:])
	v.buf[i] = val
}

// Erase removes and returns the element at index i, shifting the
// elements after it one position towards the front. It panics if i is
// out of range.
func (v *Vector[T]) Erase(i int) T {
	v.check(i)
	out := v.buf[i]
	copy(v.buf[i:], v.buf[i+1:])
	v.buf = v.mem.Reallocate(v.buf, len(v.buf)-1)
	return out
}

// PushBack appends val.
func (v *Vector[T]) PushBack(val T) {
	v.Insert(len(v.buf), val)
}

// PushFront prepends val, shifting all elements one position towards
// the back.
func (v *Vector[T]) PushFront(val T) {
	v.Insert(0, val)
}

// PopBack removes and returns the last element, or the zero value and
// false if v is empty.
func (v *Vector[T]) PopBack() (T, bool) {
	if len(v.buf) == 0 {
		var zero T
		return zero, false
	}
	return v.Erase(len(v.buf) - 1), true
}

// PopFront removes and returns the first element, or the zero value
// and false if v is empty.
func (v *Vector[T]) PopFront() (T, bool) {
	if len(v.buf) == 0 {
		var zero T
		return zero, false
	}
	return v.Erase(0), true
}

// Clear removes all elements and releases the buffer.
func (v *Vector[T]) Clear() {
	v.buf = v.mem.Deallocate(v.buf)
}

// Data returns the backing buffer. Callers may read and write elements
// through it, but must not change its length; it is only valid until
// the next insertion or removal.
func (v *Vector[T]) Data() []T {
	return v.buf
}

// String implements fmt.Stringer.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.buf)
}

func (v *Vector[T]) check(i int) {
	if i < 0 || i >= len(v.buf) {
		panic(fmt.Sprintf("vector: index %d out of range with length %d",
			i, len(v.buf)))
	}
}
