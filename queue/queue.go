// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package queue implements a first in, first out adapter over the
// exact-fit vector: pushes append to the back and pops shift the
// remaining elements forward, reallocating each time like every vector
// update.
package queue

import "github.com/aristanetworks/gods/vector"

// Queue is a FIFO sequence of T. The zero value is an empty queue
// ready to use.
type Queue[T any] struct {
	v vector.Vector[T]
}

// New returns a new empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Of returns a queue with vals pushed in order, so the first value is
// at the front.
func Of[T any](vals ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, val := range vals {
		q.Push(val)
	}
	return q
}

// Push appends val to the back of the queue.
func (q *Queue[T]) Push(val T) {
	q.v.PushBack(val)
}

// Pop removes and returns the front element, or the zero value and
// false if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	return q.v.PopFront()
}

// Front returns the front element without removing it. It panics if
// the queue is empty.
func (q *Queue[T]) Front() T {
	if q.v.Empty() {
		panic("queue: Front of empty queue")
	}
	return q.v.Front()
}

// Back returns the most recently pushed element. It panics if the
// queue is empty.
func (q *Queue[T]) Back() T {
	if q.v.Empty() {
		panic("queue: Back of empty queue")
	}
	return q.v.Back()
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int {
	return q.v.Len()
}

// Empty returns whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.v.Empty()
}

// Clear removes all elements and releases the buffer.
func (q *Queue[T]) Clear() {
	q.v.Clear()
}

// String implements fmt.Stringer. Elements print front first.
func (q *Queue[T]) String() string {
	return q.v.String()
}
