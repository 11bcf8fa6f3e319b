// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package alloc hands out the exact-fit backing buffers used by the
// containers in this module. A buffer is a plain slice with len == cap
// and a single owner. Reallocate never aliases its argument: resizing
// always produces a fresh buffer, so a container can mutate its buffer
// without worrying about copies it handed out earlier.
package alloc

// Allocator allocates, resizes and releases buffers of T. The zero
// value is ready to use; it carries no state and exists so the buffer
// lifecycle of a container reads as explicit allocator calls.
type Allocator[T any] struct{}

// Allocate returns a zeroed buffer of count elements. A non-positive
// count yields nil, the empty buffer. Failure to allocate is not
// reported to the caller: a request the runtime cannot satisfy aborts
// the process.
func (Allocator[T]) Allocate(count int) []T {
	if count <= 0 {
		return nil
	}
	return make([]T, count)
}

// Reallocate resizes buf to exactly count elements, preserving the
// leading elements that still fit and zeroing any grown tail. The
// result is always a fresh buffer and buf must not be used afterwards.
// A non-positive count releases buf.
func (a Allocator[T]) Reallocate(buf []T, count int) []T {
	if count <= 0 {
		return a.Deallocate(buf)
	}
	next := make([]T, count)
	copy(next, buf)
	return next
}

// Deallocate releases buf. It returns nil so the owner can drop its
// reference in the same assignment, after which the elements are
// unreachable.
func (Allocator[T]) Deallocate([]T) []T {
	return nil
}
