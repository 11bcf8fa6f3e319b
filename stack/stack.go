// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package stack implements a last in, first out adapter over the
// exact-fit vector: pushes and pops both work on the back, so a pop
// never shifts elements.
package stack

import "github.com/aristanetworks/gods/vector"

// Stack is a LIFO sequence of T. The zero value is an empty stack
// ready to use.
type Stack[T any] struct {
	v vector.Vector[T]
}

// New returns a new empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Of returns a stack with vals pushed in order, so the last value is
// on top.
func Of[T any](vals ...T) *Stack[T] {
	s := &Stack[T]{}
	for _, val := range vals {
		s.Push(val)
	}
	return s
}

// Push puts val on top of the stack.
func (s *Stack[T]) Push(val T) {
	s.v.PushBack(val)
}

// Pop removes and returns the top element, or the zero value and
// false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	return s.v.PopBack()
}

// Top returns the top element without removing it. It panics if the
// stack is empty.
func (s *Stack[T]) Top() T {
	if s.v.Empty() {
		panic("stack: Top of empty stack")
	}
	return s.v.Back()
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int {
	return s.v.Len()
}

// Empty returns whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.v.Empty()
}

// Clear removes all elements and releases the buffer.
func (s *Stack[T]) Clear() {
	s.v.Clear()
}

// String implements fmt.Stringer. Elements print bottom first.
func (s *Stack[T]) String() string {
	return s.v.String()
}
