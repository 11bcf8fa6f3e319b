// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package glog adapts github.com/aristanetworks/glog to the
// logger.Logger interface and provides a test helper to filter
// expected noise out of glog output.
package glog

import (
	"bytes"
	"io"

	"github.com/aristanetworks/glog"
)

// Glog passes glog as a logger.Logger. The zero value logs Info at
// verbosity 0.
type Glog struct {
	// InfoLevel is the glog verbosity the Info methods log at.
	InfoLevel glog.Level
}

// Info logs at the info level
func (g *Glog) Info(args ...interface{}) {
	glog.V(g.InfoLevel).Info(args...)
}

// Infof logs at the info level, with format
func (g *Glog) Infof(format string, args ...interface{}) {
	glog.V(g.InfoLevel).Infof(format, args...)
}

// Warning logs at the warning level
func (g *Glog) Warning(args ...interface{}) {
	glog.Warning(args...)
}

// Warningf logs at the warning level, with format
func (g *Glog) Warningf(format string, args ...interface{}) {
	glog.Warningf(format, args...)
}

// Error logs at the error level
func (g *Glog) Error(args ...interface{}) {
	glog.Error(args...)
}

// Errorf logs at the error level, with format
func (g *Glog) Errorf(format string, args ...interface{}) {
	glog.Errorf(format, args...)
}

// Fatal logs at the fatal level
func (g *Glog) Fatal(args ...interface{}) {
	glog.Fatal(args...)
}

// Fatalf logs at the fatal level, with format
func (g *Glog) Fatalf(format string, args ...interface{}) {
	glog.Fatalf(format, args...)
}

// SuppressLines filters glog output so that lines containing any of
// the supplied substrings are dropped. It returns a function that
// restores the previous unfiltered writer. Meant for tests that
// provoke expected warnings which would otherwise clutter the output
// of `go test`.
//
// Example usage:
//
//	import aglog "github.com/aristanetworks/gods/glog"
//	func TestBadWorkloadConfig(t *testing.T) {
//		reset := aglog.SuppressLines(
//			`has no operations`,
//		)
//		defer reset()
//		...
//	}
func SuppressLines(substrs ...string) func() {
	drop := make([][]byte, len(substrs))
	for i, s := range substrs {
		drop[i] = []byte(s)
	}
	f := &lineFilter{drop: drop}
	f.out = glog.SetOutput(f)
	return func() {
		f.flush()
		glog.SetOutput(f.out)
	}
}

// lineFilter buffers writes until a full line is available, then
// forwards the line unless it matches a suppressed substring.
type lineFilter struct {
	out  io.Writer
	buf  bytes.Buffer
	drop [][]byte
	err  error
}

func (f *lineFilter) Write(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.buf.Write(p)
	for {
		i := bytes.IndexByte(f.buf.Bytes(), '\n')
		if i < 0 {
			return len(p), nil
		}
		line := f.buf.Next(i + 1)
		if f.suppressed(line) {
			continue
		}
		if _, err := f.out.Write(line); err != nil {
			f.err = err
			return len(p), err
		}
	}
}

func (f *lineFilter) suppressed(line []byte) bool {
	for _, s := range f.drop {
		if bytes.Contains(line, s) {
			return true
		}
	}
	return false
}

// flush forwards any buffered partial line.
func (f *lineFilter) flush() {
	if f.err == nil && f.buf.Len() > 0 {
		f.buf.WriteTo(f.out)
	}
}
