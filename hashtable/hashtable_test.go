// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

import (
	"fmt"
	"hash/maphash"
	"strconv"
	"strings"
	"testing"

	"github.com/aristanetworks/gomap"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/exp/rand"

	"github.com/aristanetworks/gods/digest"
	"github.com/aristanetworks/gods/test"
)

func intEqual(a, b int) bool       { return a == b }
func strEqual(a, b string) bool    { return a == b }
func floatEqual(a, b float64) bool { return a == b }

func intMap(entries ...Entry[int, string]) *Map[int, string] {
	return NewMap[int, string](digest.Int, intEqual, entries...)
}

func e(k int, v string) Entry[int, string] {
	return Entry[int, string]{Key: k, Value: v}
}

// debug renders the slot layout when a test fails.
func (t *table[K, V]) debug() string {
	var b strings.Builder
	for i, d := range t.digests {
		switch d {
		case digestEmpty:
			fmt.Fprintf(&b, "%3d: empty\n", i)
		case digestDead:
			fmt.Fprintf(&b, "%3d: erased\n", i)
		default:
			fmt.Fprintf(&b, "%3d: digest=%d key=%v value=%v\n",
				i, d, t.keys[i], t.values[i])
		}
	}
	return b.String()
}

func countDead[K, V any](t *table[K, V]) int {
	n := 0
	for _, d := range t.digests {
		if d == digestDead {
			n++
		}
	}
	return n
}

func TestInsertGet(t *testing.T) {
	m := intMap()
	if !m.Empty() || m.Size() != 0 {
		t.Fatalf("new map: Size() = %d, Empty() = %t", m.Size(), m.Empty())
	}
	m.Insert(1, "one")
	m.Insert(2, "two")
	m.Insert(3, "three")
	if m.Size() != 3 || m.Empty() {
		t.Fatalf("Size() = %d, Empty() = %t, want 3, false\n%s",
			m.Size(), m.Empty(), m.t.debug())
	}
	if v, ok := m.Get(2); !ok || v != "two" {
		t.Errorf("Get(2) = %q, %t, want \"two\", true", v, ok)
	}
	if v, ok := m.Get(4); ok {
		t.Errorf("Get(4) = %q, %t, want ok false", v, ok)
	}
	if !m.Contains(3) || m.Contains(42) {
		t.Errorf("Contains(3) = %t, Contains(42) = %t", m.Contains(3), m.Contains(42))
	}
}

func TestUpsert(t *testing.T) {
	m := intMap(e(1, "first"))
	m.Insert(1, "second")
	if m.Size() != 1 {
		t.Fatalf("Size() = %d after duplicate insert, want 1\n%s",
			m.Size(), m.t.debug())
	}
	if v, _ := m.Get(1); v != "second" {
		t.Errorf("Get(1) = %q, want \"second\"", v)
	}
}

func TestEraseFloatKeys(t *testing.T) {
	m := NewMap[float64, string](digest.Float64, floatEqual)
	m.Insert(1.5, "a")
	m.Insert(2.5, "b")
	m.Insert(3.5, "c")
	if m.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", m.Size())
	}
	if !m.Erase(2.5) {
		t.Fatal("Erase(2.5) = false, want true")
	}
	if m.Size() != 2 {
		t.Fatalf("Size() = %d after erasing one of three keys, want 2\n%s",
			m.Size(), m.t.debug())
	}
	if m.Contains(2.5) {
		t.Error("Contains(2.5) = true after erase")
	}
	if !m.Contains(1.5) || !m.Contains(3.5) {
		t.Errorf("remaining keys lost: Contains(1.5) = %t, Contains(3.5) = %t",
			m.Contains(1.5), m.Contains(3.5))
	}
	if m.Erase(2.5) {
		t.Error("second Erase(2.5) = true, want false")
	}
}

// All keys share one digest, so they occupy consecutive slots of a
// single probe path. Erasing a key in the middle must leave the keys
// behind it reachable, and a later insert reuses the erased slot.
func TestEraseKeepsSharedProbePaths(t *testing.T) {
	collide := func(int) uint64 { return 7 }
	m := NewMap[int, string](collide, intEqual)
	m.Insert(1, "one")
	m.Insert(2, "two")
	m.Insert(3, "three")
	if m.Size() != 3 {
		t.Fatalf("Size() = %d, want 3\n%s", m.Size(), m.t.debug())
	}
	if !m.Erase(2) {
		t.Fatal("Erase(2) = false, want true")
	}
	if !m.Contains(1) || !m.Contains(3) {
		t.Fatalf("keys past the erased slot became unreachable:\n%s", m.t.debug())
	}
	if v, ok := m.Get(3); !ok || v != "three" {
		t.Errorf("Get(3) = %q, %t, want \"three\", true", v, ok)
	}
	if countDead(&m.t) != 1 {
		t.Fatalf("countDead = %d after one erase, want 1\n%s",
			countDead(&m.t), m.t.debug())
	}
	m.Insert(4, "four")
	if countDead(&m.t) != 0 {
		t.Errorf("insert on the same probe path did not reuse the erased slot:\n%s",
			m.t.debug())
	}
	if m.Size() != 3 || !m.Contains(1) || !m.Contains(3) || !m.Contains(4) {
		t.Errorf("unexpected content after reuse: size %d\n%s",
			m.Size(), m.t.debug())
	}
}

func TestDistinctKeysSharedDigest(t *testing.T) {
	same := func(string) uint64 { return 42 }
	m := NewMap[string, int](same, strEqual)
	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("c", 3)
	if m.Size() != 3 {
		t.Fatalf("Size() = %d, want 3: keys with equal digests collapsed\n%s",
			m.Size(), m.t.debug())
	}
	for k, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if v, ok := m.Get(k); !ok || v != want {
			t.Errorf("Get(%q) = %d, %t, want %d, true", k, v, ok, want)
		}
	}
	m.Insert("b", 20)
	if v, _ := m.Get("b"); v != 20 {
		t.Errorf("Get(\"b\") = %d after upsert, want 20", v)
	}
	if m.Size() != 3 {
		t.Errorf("Size() = %d after upsert, want 3", m.Size())
	}
}

// Digests 0 and 1 would alias the empty and erased slot markers, so
// the table folds them into the live range before storing them.
func TestMarkerDigests(t *testing.T) {
	for _, tc := range []struct {
		name   string
		raw    uint64
		stored uint64
	}{
		{name: "zero digest", raw: 0, stored: 2},
		{name: "one digest", raw: 1, stored: 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := func(int) uint64 { return tc.raw }
			m := NewMap[int, string](h, intEqual)
			m.Insert(10, "a")
			m.Insert(20, "b")
			m.Insert(30, "c")
			if m.Size() != 3 {
				t.Fatalf("Size() = %d, want 3\n%s", m.Size(), m.t.debug())
			}
			for _, d := range m.t.digests {
				if d != digestEmpty && d != tc.stored {
					t.Fatalf("stored digest %d, want %d\n%s", d, tc.stored, m.t.debug())
				}
			}
			if !m.Erase(20) || m.Contains(20) {
				t.Fatal("erase of middle key failed")
			}
			if !m.Contains(10) || !m.Contains(30) {
				t.Errorf("keys lost after erase:\n%s", m.t.debug())
			}
		})
	}
}

func TestGrowth(t *testing.T) {
	m := intMap()
	const n = 100
	for i := 0; i < n; i++ {
		m.Insert(i, strconv.Itoa(i))
	}
	if m.Size() != n {
		t.Fatalf("Size() = %d, want %d", m.Size(), n)
	}
	for i := 0; i < n; i++ {
		if v, ok := m.Get(i); !ok || v != strconv.Itoa(i) {
			t.Fatalf("Get(%d) = %q, %t after growth", i, v, ok)
		}
	}
	if c := m.t.capacity(); c < n {
		t.Errorf("capacity %d cannot hold %d entries", c, n)
	}
	if cap(m.t.digests) != len(m.t.digests) {
		t.Errorf("digest buffer not exact-fit: len %d cap %d",
			len(m.t.digests), cap(m.t.digests))
	}
}

func TestReserve(t *testing.T) {
	m := intMap(e(1, "one"), e(2, "two"))
	m.Reserve(64)
	if c := m.t.capacity(); c != 64 {
		t.Fatalf("capacity = %d after Reserve(64), want 64", c)
	}
	if v, ok := m.Get(1); !ok || v != "one" {
		t.Errorf("Get(1) = %q, %t after Reserve", v, ok)
	}
	if v, ok := m.Get(2); !ok || v != "two" {
		t.Errorf("Get(2) = %q, %t after Reserve", v, ok)
	}
	m.Reserve(8)
	if c := m.t.capacity(); c != 64 {
		t.Errorf("capacity = %d after no-op Reserve(8), want 64", c)
	}

	empty := intMap()
	empty.Reserve(16)
	if c := empty.t.capacity(); c != 16 {
		t.Errorf("capacity = %d after Reserve(16) on empty map, want 16", c)
	}
	if empty.Size() != 0 {
		t.Errorf("Size() = %d after Reserve on empty map, want 0", empty.Size())
	}
}

func TestReserveDropsErasedSlots(t *testing.T) {
	collide := func(int) uint64 { return 3 }
	m := NewMap[int, string](collide, intEqual)
	for i := 1; i <= 4; i++ {
		m.Insert(i, strconv.Itoa(i))
	}
	m.Erase(2)
	m.Erase(3)
	if countDead(&m.t) != 2 {
		t.Fatalf("countDead = %d before rehash, want 2\n%s",
			countDead(&m.t), m.t.debug())
	}
	m.Reserve(2 * m.t.capacity())
	if countDead(&m.t) != 0 {
		t.Errorf("countDead = %d after rehash, want 0\n%s",
			countDead(&m.t), m.t.debug())
	}
	if m.Size() != 2 || !m.Contains(1) || !m.Contains(4) {
		t.Errorf("live entries damaged by rehash: size %d\n%s",
			m.Size(), m.t.debug())
	}
}

func TestClear(t *testing.T) {
	m := intMap(e(1, "one"), e(2, "two"))
	m.Clear()
	if m.Size() != 0 || !m.Empty() {
		t.Fatalf("Size() = %d, Empty() = %t after Clear", m.Size(), m.Empty())
	}
	if m.t.capacity() != 0 || m.t.digests != nil {
		t.Errorf("Clear did not release the buffers: capacity %d", m.t.capacity())
	}
	m.Insert(3, "three")
	if v, ok := m.Get(3); !ok || v != "three" {
		t.Errorf("Get(3) = %q, %t after reuse of a cleared map", v, ok)
	}
}

func TestEach(t *testing.T) {
	want := map[int]string{1: "one", 2: "two", 3: "three"}
	m := intMap()
	for k, v := range want {
		m.Insert(k, v)
	}
	got := make(map[int]string)
	m.Each(func(k int, v string) {
		got[k] = v
	})
	if diff := test.Diff(want, got); diff != "" {
		t.Errorf("Each entries diff: %s", diff)
	}
}

func TestNilFuncsPanic(t *testing.T) {
	test.ShouldPanicWithStr(t, "hashtable: nil hash function", func() {
		NewMap[int, int](nil, intEqual)
	})
	test.ShouldPanicWithStr(t, "hashtable: nil equal function", func() {
		NewMap[int, int](digest.Int, nil)
	})
	test.ShouldPanicWithStr(t, "hashtable: nil hash function", func() {
		NewSet[int](nil, intEqual)
	})
	test.ShouldPanicWithStr(t, "hashtable: nil equal function", func() {
		NewSet[int](digest.Int, nil)
	})
}

func TestSetOps(t *testing.T) {
	s := NewSet[string](digest.String, strEqual, "a", "b")
	if s.Size() != 2 || !s.Contains("a") || !s.Contains("b") {
		t.Fatalf("constructed set wrong: size %d", s.Size())
	}
	s.Insert("a")
	if s.Size() != 2 {
		t.Errorf("Size() = %d after duplicate insert, want 2", s.Size())
	}
	s.Insert("c")
	if !s.Contains("c") || s.Size() != 3 {
		t.Errorf("Insert(\"c\"): Size() = %d, Contains = %t", s.Size(), s.Contains("c"))
	}
	if !s.Erase("b") || s.Contains("b") || s.Size() != 2 {
		t.Errorf("Erase(\"b\"): Size() = %d, Contains = %t", s.Size(), s.Contains("b"))
	}
	if s.Erase("b") {
		t.Error("second Erase(\"b\") = true, want false")
	}
	got := make(map[string]bool)
	s.Each(func(v string) {
		got[v] = true
	})
	if diff := test.Diff(map[string]bool{"a": true, "c": true}, got); diff != "" {
		t.Errorf("Each values diff: %s", diff)
	}
	s.Clear()
	if !s.Empty() {
		t.Error("set not empty after Clear")
	}
}

func TestSetFloatScenario(t *testing.T) {
	s := NewSet[float64](digest.Float64, floatEqual, 1.5, 2.5, 3.5)
	if !s.Erase(2.5) {
		t.Fatal("Erase(2.5) = false, want true")
	}
	if s.Size() != 2 {
		t.Fatalf("Size() = %d after erasing one of three values, want 2", s.Size())
	}
	if !s.Contains(1.5) || !s.Contains(3.5) {
		t.Error("remaining values lost after erase")
	}
}

func TestStrings(t *testing.T) {
	if got := intMap(e(1, "one")).String(); got != "map[1:one]" {
		t.Errorf("Map String() = %q, want %q", got, "map[1:one]")
	}
	if got := intMap().String(); got != "map[]" {
		t.Errorf("empty Map String() = %q, want %q", got, "map[]")
	}
	if got := NewSet[int](digest.Int, intEqual, 7).String(); got != "set[7]" {
		t.Errorf("Set String() = %q, want %q", got, "set[7]")
	}
	if got := NewSet[int](digest.Int, intEqual).String(); got != "set[]" {
		t.Errorf("empty Set String() = %q, want %q", got, "set[]")
	}
}

// TestChurn runs a randomized workload against gomap.Map as the
// reference implementation.
func TestChurn(t *testing.T) {
	ref := gomap.New[int, int](intEqual,
		func(_ maphash.Seed, k int) uint64 { return uint64(k) })
	m := NewMap[int, int](digest.Int, intEqual)
	rng := rand.New(rand.NewSource(42))
	const keyspace = 128
	for i := 0; i < 5000; i++ {
		k := rng.Intn(keyspace)
		switch rng.Intn(10) {
		case 0, 1, 2, 3:
			v := rng.Intn(1 << 20)
			m.Insert(k, v)
			ref.Set(k, v)
		case 4, 5:
			_, want := ref.Get(k)
			if got := m.Erase(k); got != want {
				t.Fatalf("op %d: Erase(%d) = %t, want %t", i, k, got, want)
			}
			ref.Delete(k)
		default:
			got, gotOK := m.Get(k)
			want, wantOK := ref.Get(k)
			if got != want || gotOK != wantOK {
				t.Fatalf("op %d: Get(%d) = %d, %t, want %d, %t",
					i, k, got, gotOK, want, wantOK)
			}
		}
	}
	if m.Size() != ref.Len() {
		t.Fatalf("Size() = %d, reference holds %d", m.Size(), ref.Len())
	}
	for it := ref.Iter(); it.Next(); {
		if v, ok := m.Get(it.Key()); !ok || v != it.Elem() {
			t.Fatalf("Get(%d) = %d, %t, reference holds %d",
				it.Key(), v, ok, it.Elem())
		}
	}
}

func TestMetricsAdvance(t *testing.T) {
	probesBefore := testutil.ToFloat64(probeSteps)
	growsBefore := testutil.ToFloat64(grows)
	rehashedBefore := testutil.ToFloat64(rehashed)
	m := intMap()
	for i := 0; i < 32; i++ {
		m.Insert(i, "")
	}
	if testutil.ToFloat64(probeSteps) <= probesBefore {
		t.Error("probe_steps_total did not advance")
	}
	if testutil.ToFloat64(grows) <= growsBefore {
		t.Error("grows_total did not advance")
	}
	if testutil.ToFloat64(rehashed) <= rehashedBefore {
		t.Error("rehashed_entries_total did not advance")
	}
}

func BenchmarkInsert(b *testing.B) {
	b.ReportAllocs()
	m := NewMap[int, int](digest.Int, intEqual)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Insert(i, i)
	}
}

func BenchmarkInsertGomap(b *testing.B) {
	b.ReportAllocs()
	m := gomap.New[int, int](intEqual,
		func(_ maphash.Seed, k int) uint64 { return uint64(k) })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Set(i, i)
	}
}

func BenchmarkInsertBuiltin(b *testing.B) {
	b.ReportAllocs()
	m := make(map[int]int)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m[i] = i
	}
}

const benchSize = 1 << 16

func BenchmarkGet(b *testing.B) {
	m := NewMap[int, int](digest.Int, intEqual)
	for i := 0; i < benchSize; i++ {
		m.Insert(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(i % benchSize)
	}
}

func BenchmarkGetGomap(b *testing.B) {
	m := gomap.New[int, int](intEqual,
		func(_ maphash.Seed, k int) uint64 { return uint64(k) })
	for i := 0; i < benchSize; i++ {
		m.Set(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(i % benchSize)
	}
}

func BenchmarkGetBuiltin(b *testing.B) {
	m := make(map[int]int)
	for i := 0; i < benchSize; i++ {
		m[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[i%benchSize]
	}
}
