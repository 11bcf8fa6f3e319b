// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package digest provides fixed-seed digest functions for the keyed
// containers in this module. The primary mixer is 32-bit FNV-1: it is
// deterministic across processes and runs, which keeps table layouts
// reproducible, at the cost of being trivially predictable. Do not use
// it where an attacker controls the keys; it is not a cryptographic
// hash and it is not seeded.
//
// All functions return uint64 so callers share one digest type, but
// the FNV-1 mixers only ever populate the low 32 bits.
package digest

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// 32-bit FNV-1 parameters.
const (
	offsetBasis = 2166136261
	prime       = 16777619
)

// Bytes returns the 32-bit FNV-1 digest of b, widened to uint64.
func Bytes(b []byte) uint64 {
	d := uint32(offsetBasis)
	for _, c := range b {
		d *= prime
		d ^= uint32(c)
	}
	return uint64(d)
}

// String returns the 32-bit FNV-1 digest of s, widened to uint64. It
// is Bytes without the []byte conversion copy.
func String(s string) uint64 {
	d := uint32(offsetBasis)
	for i := 0; i < len(s); i++ {
		d *= prime
		d ^= uint32(s[i])
	}
	return uint64(d)
}

// Uint64 digests the 8 little-endian bytes of v.
func Uint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return Bytes(b[:])
}

// Uint32 digests the 4 little-endian bytes of v.
func Uint32(v uint32) uint64 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return Bytes(b[:])
}

// Int digests v as its 64-bit two's complement representation.
func Int(v int) uint64 {
	return Uint64(uint64(v))
}

// Float64 digests the IEEE 754 bit pattern of v. Note that this makes
// 0.0 and -0.0 distinct keys, and every NaN bit pattern its own key.
func Float64(v float64) uint64 {
	return Uint64(math.Float64bits(v))
}

// Float32 digests the IEEE 754 bit pattern of v.
func Float32(v float32) uint64 {
	return Uint32(math.Float32bits(v))
}

// Bool digests v as a single 0 or 1 byte.
func Bool(v bool) uint64 {
	var b [1]byte
	if v {
		b[0] = 1
	}
	return Bytes(b[:])
}

// XXBytes returns the 64-bit xxHash digest of b. Unlike the FNV-1
// mixers it populates all 64 bits, and it is much faster on large
// inputs.
func XXBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// XXString returns the 64-bit xxHash digest of s.
func XXString(s string) uint64 {
	return xxhash.Sum64String(s)
}
