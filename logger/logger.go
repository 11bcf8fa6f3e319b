// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package logger defines the minimal logging interface this module
// programs against, so code taking a logger does not depend on any
// particular logging package.
package logger

import (
	"fmt"
	"log"
)

// Logger is a generic leveled logger. The glog package in this module
// adapts github.com/aristanetworks/glog to it.
type Logger interface {
	// Info logs at the info level
	Info(args ...interface{})
	// Infof logs at the info level, with format
	Infof(format string, args ...interface{})
	// Warning logs at the warning level
	Warning(args ...interface{})
	// Warningf logs at the warning level, with format
	Warningf(format string, args ...interface{})
	// Error logs at the error level
	Error(args ...interface{})
	// Errorf logs at the error level, with format
	Errorf(format string, args ...interface{})
	// Fatal logs at the fatal level
	Fatal(args ...interface{})
	// Fatalf logs at the fatal level, with format
	Fatalf(format string, args ...interface{})
}

// Std implements the Logger interface using the stdlib "log" package.
var Std Logger = std{log.Default()}

type std struct {
	*log.Logger
}

func (l std) Info(args ...interface{}) {
	l.Output(2, fmt.Sprint(args...))
}

func (l std) Infof(format string, args ...interface{}) {
	l.Output(2, fmt.Sprintf(format, args...))
}

func (l std) Warning(args ...interface{}) {
	l.Output(2, fmt.Sprint(args...))
}

func (l std) Warningf(format string, args ...interface{}) {
	l.Output(2, fmt.Sprintf(format, args...))
}

func (l std) Error(args ...interface{}) {
	l.Output(2, fmt.Sprint(args...))
}

func (l std) Errorf(format string, args ...interface{}) {
	l.Output(2, fmt.Sprintf(format, args...))
}
