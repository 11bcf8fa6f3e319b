// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package test contains helpers shared by the tests in this module:
// equality and diffing over arbitrary values, and assertions that a
// function panics.
package test

import "reflect"

// equaller types define their own equality, overriding structural
// comparison.
type equaller interface {
	// Equal returns whether this object and other are equal.
	Equal(other interface{}) bool
}

// DeepEqual returns whether a and b are equal. Types implementing
// Equal(other interface{}) bool are compared with it; everything else
// falls back to reflect.DeepEqual.
func DeepEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a, ok := a.(equaller); ok {
		return a.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
