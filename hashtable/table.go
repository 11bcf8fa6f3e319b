// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package hashtable implements open-addressed, linearly probed hash
// containers over three parallel exact-fit buffers: one of digests,
// one of keys, one of values. A key's digest picks its home slot by
// remainder over the capacity; probing walks forward from there and
// stops at the end of the buffers rather than wrapping around, so an
// exhausted probe path triggers growth even when other slots are free.
//
// The hash and equal functions given at construction must agree: keys
// that compare equal must digest alike, and a key's digest must not
// change while the key is in the table. Lookups compare full keys
// after a digest match, so distinct keys may share a digest.
package hashtable

import "github.com/aristanetworks/gods/alloc"

// Marker values stored in the digest buffer. Digests are folded up
// into the live range by mix, so a stored marker is unambiguous.
const (
	digestEmpty = 0 // never held an entry since the last rehash, ends probe paths
	digestDead  = 1 // entry was erased, probe paths continue past it
	minDigest   = 2 // smallest digest a live entry can store
)

// table is the probing engine shared by Map and Set. Set instantiates
// V as struct{}, storing nothing in the value buffer.
type table[K, V any] struct {
	digests []uint64
	keys    []K
	values  []V

	hash  func(K) uint64
	equal func(K, K) bool

	dmem alloc.Allocator[uint64]
	kmem alloc.Allocator[K]
	vmem alloc.Allocator[V]
}

func newTable[K, V any](hash func(K) uint64, equal func(K, K) bool) table[K, V] {
	if hash == nil {
		panic("hashtable: nil hash function")
	}
	if equal == nil {
		panic("hashtable: nil equal function")
	}
	return table[K, V]{hash: hash, equal: equal}
}

// capacity returns the common length of the parallel buffers.
func (t *table[K, V]) capacity() int {
	return len(t.digests)
}

// mix digests k, folding the marker values up into the live range. A
// hash function is free to return 0 or 1; without the fold those
// digests would alias the empty and erased markers.
func (t *table[K, V]) mix(k K) uint64 {
	d := t.hash(k)
	if d < minDigest {
		d += minDigest
	}
	return d
}

// find returns the slot of the live entry for k.
func (t *table[K, V]) find(k K) (int, bool) {
	capacity := t.capacity()
	if capacity == 0 {
		return 0, false
	}
	d := t.mix(k)
	for i := int(d % uint64(capacity)); i < capacity; i++ {
		probeSteps.Inc()
		if t.digests[i] == digestEmpty {
			return 0, false
		}
		if t.digests[i] == d && t.equal(t.keys[i], k) {
			return i, true
		}
	}
	return 0, false
}

// locate returns the slot an insert of k with digest d should write:
// the slot already holding k, else the first erased slot on k's probe
// path, else the empty slot ending the path. It returns false when the
// path runs off the end of the buffers with no slot to claim, in which
// case the table must grow.
func (t *table[K, V]) locate(d uint64, k K) (int, bool) {
	capacity := t.capacity()
	if capacity == 0 {
		return 0, false
	}
	dead := -1
	for i := int(d % uint64(capacity)); i < capacity; i++ {
		probeSteps.Inc()
		switch {
		case t.digests[i] == digestEmpty:
			if dead >= 0 {
				return dead, true
			}
			return i, true
		case t.digests[i] == digestDead:
			if dead < 0 {
				dead = i
			}
		case t.digests[i] == d && t.equal(t.keys[i], k):
			return i, true
		}
	}
	if dead >= 0 {
		return dead, true
	}
	return 0, false
}

// insert adds the entry for k, replacing the stored key and value if k
// is already present.
func (t *table[K, V]) insert(k K, v V) {
	d := t.mix(k)
	for {
		if i, ok := t.locate(d, k); ok {
			t.digests[i] = d
			t.keys[i] = k
			t.values[i] = v
			return
		}
		t.grow()
	}
}

// grow doubles the capacity, or creates the first slot of an empty
// table.
func (t *table[K, V]) grow() {
	grows.Inc()
	next := 2 * t.capacity()
	if next == 0 {
		next = 1
	}
	t.rehash(next)
}

// reserve grows the table to at least capacity slots. It never
// shrinks.
func (t *table[K, V]) reserve(capacity int) {
	if capacity <= t.capacity() {
		return
	}
	t.rehash(capacity)
}

// rehash reallocates the parallel buffers to capacity slots, then
// clears and reinserts every live entry of the old region so it lands
// on the probe path of the new modulus. Erased markers are dropped.
//
// Reinsertion goes through insert, which can itself grow the table
// again when an entry's new probe path runs off the end. That
// recursion rehashes the part of the old region this loop has not
// reached yet; revisiting those slots afterwards is harmless, since
// clearing and reinserting a live entry keeps exactly one copy of it.
func (t *table[K, V]) rehash(capacity int) {
	old := t.capacity()
	t.digests = t.dmem.Reallocate(t.digests, capacity)
	t.keys = t.kmem.Reallocate(t.keys, capacity)
	t.values = t.vmem.Reallocate(t.values, capacity)
	var zeroK K
	var zeroV V
	for i := 0; i < old; i++ {
		d := t.digests[i]
		if d < minDigest {
			t.digests[i] = digestEmpty
			continue
		}
		k, v := t.keys[i], t.values[i]
		t.digests[i] = digestEmpty
		t.keys[i], t.values[i] = zeroK, zeroV
		t.insert(k, v)
		rehashed.Inc()
	}
}

// erase removes the entry for k, leaving an erased marker in its slot
// so probe paths running through it stay connected. The key and value
// are zeroed to release whatever they reference.
func (t *table[K, V]) erase(k K) bool {
	i, ok := t.find(k)
	if !ok {
		return false
	}
	t.digests[i] = digestDead
	var zeroK K
	var zeroV V
	t.keys[i] = zeroK
	t.values[i] = zeroV
	return true
}

// get returns the value stored for k.
func (t *table[K, V]) get(k K) (V, bool) {
	if i, ok := t.find(k); ok {
		return t.values[i], true
	}
	var zero V
	return zero, false
}

// size counts the live entries. The table keeps no separate count, so
// this scans the whole digest buffer: O(capacity), not O(1).
func (t *table[K, V]) size() int {
	n := 0
	for _, d := range t.digests {
		if d >= minDigest {
			n++
		}
	}
	return n
}

// each calls fn for every live entry, in slot order.
func (t *table[K, V]) each(fn func(K, V)) {
	for i, d := range t.digests {
		if d >= minDigest {
			fn(t.keys[i], t.values[i])
		}
	}
}

// clear releases the buffers, returning the table to capacity zero.
func (t *table[K, V]) clear() {
	t.digests = t.dmem.Deallocate(t.digests)
	t.keys = t.kmem.Deallocate(t.keys)
	t.values = t.vmem.Deallocate(t.values)
}
