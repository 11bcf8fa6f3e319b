// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package monotime provides a fast monotonic clock source.
package monotime

import (
	"time"
	_ "unsafe" // required to use //go:linkname
)

//go:noescape
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Now returns the current time in nanoseconds from a monotonic clock.
// The zero point is platform specific and arbitrary; only differences
// between readings are meaningful. Readings are guaranteed to be
// monotonically non decreasing.
func Now() uint64 {
	return uint64(nanotime())
}

// Since returns the amount of time elapsed since t, which should be a
// value previously returned by Now in the same process.
func Since(t uint64) time.Duration {
	return time.Duration(Now() - t)
}
