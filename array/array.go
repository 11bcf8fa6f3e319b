// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package array implements a fixed-length sequence with checked
// access. Unlike a vector, the length is set at construction and never
// changes, so the backing buffer is allocated exactly once.
package array

import (
	"fmt"

	"github.com/aristanetworks/gods/alloc"
)

// Fixed is a fixed-length sequence of T. The zero value is a
// zero-length array.
type Fixed[T any] struct {
	buf []T
}

// New returns an array of n zero-valued elements. It panics if n is
// negative.
func New[T any](n int) *Fixed[T] {
	if n < 0 {
		panic(fmt.Sprintf("array: negative length %d", n))
	}
	var mem alloc.Allocator[T]
	return &Fixed[T]{buf: mem.Allocate(n)}
}

// Of returns an array holding vals in order. It does not alias vals.
func Of[T any](vals ...T) *Fixed[T] {
	var mem alloc.Allocator[T]
	buf := mem.Allocate(len(vals))
	copy(buf, vals)
	return &Fixed[T]{buf: buf}
}

// Len returns the length fixed at construction.
func (a *Fixed[T]) Len() int {
	return len(a.buf)
}

// At returns the element at index i. It panics if i is out of range.
func (a *Fixed[T]) At(i int) T {
	a.check(i)
	return a.buf[i]
}

// Set replaces the element at index i with val. It panics if i is out
// of range.
func (a *Fixed[T]) Set(i int, val T) {
	a.check(i)
	a.buf[i] = val
}

// Fill sets every element to val.
func (a *Fixed[T]) Fill(val T) {
	for i := range a.buf {
		a.buf[i] = val
	}
}

// Data returns the backing buffer. Callers may read and write elements
// through it but must not change its length.
func (a *Fixed[T]) Data() []T {
	return a.buf
}

// String implements fmt.Stringer.
func (a *Fixed[T]) String() string {
	return fmt.Sprint(a.buf)
}

func (a *Fixed[T]) check(i int) {
	if i < 0 || i >= len(a.buf) {
		panic(fmt.Sprintf("array: index %d out of range with length %d",
			i, len(a.buf)))
	}
}
