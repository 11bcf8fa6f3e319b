// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package test

import (
	"strings"
	"testing"
)

type fixedDiff struct {
	d string
}

func (f fixedDiff) Equal(interface{}) bool  { return f.d == "" }
func (f fixedDiff) Diff(interface{}) string { return f.d }

func TestDiffEqualValues(t *testing.T) {
	for _, tc := range []struct {
		a, b interface{}
	}{
		{nil, nil},
		{7, 7},
		{[]string{"a"}, []string{"a"}},
		{map[int]int{1: 2}, map[int]int{1: 2}},
	} {
		if d := Diff(tc.a, tc.b); d != "" {
			t.Errorf("Diff(%v, %v) = %q, want empty", tc.a, tc.b, d)
		}
	}
}

func TestDiffUnequalValues(t *testing.T) {
	if d := Diff(3, 4); d == "" {
		t.Error("Diff(3, 4) is empty, want a difference")
	}
	d := Diff(map[string]int{"x": 1}, map[string]int{"x": 2})
	if !strings.Contains(d, "x") {
		t.Errorf("Diff does not mention the differing key: %q", d)
	}
}

func TestDiffDiffable(t *testing.T) {
	if d := Diff(fixedDiff{d: "custom"}, fixedDiff{}); d != "custom" {
		t.Errorf("Diff = %q, want the diffable's own diff", d)
	}
}
