// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package test

import (
	"fmt"
	"runtime"
	"testing"
)

// ShouldPanic tests that fn panics.
func ShouldPanic(t *testing.T, fn func()) {
	t.Helper()
	site := callSite()
	defer func() {
		t.Helper()
		if r := recover(); r == nil {
			t.Errorf("%sthe function should have panicked", site)
		}
	}()
	fn()
}

// ShouldPanicWith tests that fn panics with exactly the value msg.
func ShouldPanicWith(t *testing.T, msg interface{}, fn func()) {
	t.Helper()
	site := callSite()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("%sthe function should have panicked with %#v", site, msg)
		} else if d := Diff(msg, r); d != "" {
			t.Errorf("%sthe function panicked with the wrong value.\n"+
				"Expected: %#v\nReceived: %#v\nDiff: %s", site, msg, r, d)
		}
	}()
	fn()
}

// ShouldPanicWithStr tests that fn panics with the string msg. A panic
// value of type error is matched against its message.
func ShouldPanicWithStr(t *testing.T, msg string, fn func()) {
	t.Helper()
	site := callSite()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("%sthe function should have panicked with %q", site, msg)
			return
		}
		got, ok := r.(string)
		if !ok {
			err, ok := r.(error)
			if !ok {
				t.Errorf("%sthe function panicked with a non string/error value: %#v",
					site, r)
				return
			}
			got = err.Error()
		}
		if got != msg {
			t.Errorf("%sthe function panicked with the wrong message.\n"+
				"Expected: %q\nReceived: %q", site, msg, got)
		}
	}()
	fn()
}

// callSite is invoked at the top of each assertion, before any panic
// unwinds the stack, so the reported location is the assertion's call
// site regardless of how deep the recovery runs.
func callSite() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d\n", file, line)
}
