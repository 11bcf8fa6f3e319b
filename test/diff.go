// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package test

import (
	"fmt"

	"github.com/kylelemons/godebug/pretty"
)

// diffable types produce their own human readable diff.
type diffable interface {
	// Diff returns the diff of this object against other, or the
	// empty string when they are equal.
	Diff(other interface{}) string
}

// Diff returns the difference between a and b in a human readable
// format, or the empty string when DeepEqual considers them equal.
// Types implementing diffable render their own diff.
func Diff(a, b interface{}) string {
	if DeepEqual(a, b) {
		return ""
	}
	if a, ok := a.(diffable); ok {
		return a.Diff(b)
	}
	if d := pretty.Compare(a, b); d != "" {
		return d
	}
	// DeepEqual and the pretty printer can disagree, e.g. for types
	// whose Equal looks at unexported state the printer elides.
	return fmt.Sprintf("%v vs %v", a, b)
}
