// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/rand"

	"github.com/aristanetworks/gods/digest"
	"github.com/aristanetworks/gods/hashtable"
	"github.com/aristanetworks/gods/logger"
	"github.com/aristanetworks/gods/monotime"
	"github.com/aristanetworks/gods/queue"
	"github.com/aristanetworks/gods/stack"
	"github.com/aristanetworks/gods/vector"
)

// result is one workload's report line.
type result struct {
	name    string
	ops     int
	final   int
	elapsed time.Duration
}

func (r result) String() string {
	rate := float64(r.ops) / r.elapsed.Seconds()
	return fmt.Sprintf("%-16s %12s ops in %12v %14s ops/s  final size %s",
		r.name, humanize.Comma(int64(r.ops)), r.elapsed,
		humanize.Comma(int64(rate)), humanize.Comma(int64(r.final)))
}

// runWorkload runs w against a fresh container instance and reports
// the operation count, elapsed time and the container's final size.
func runWorkload(w Workload, log logger.Logger) (result, error) {
	var run func(*rand.Rand, int, int) int
	switch w.Container {
	case "vector":
		run = runVector
	case "stack":
		run = runStack
	case "queue":
		run = runQueue
	case "map":
		run = runMap
	case "set":
		run = runSet
	default:
		return result{}, fmt.Errorf("workload %q: unknown container %q",
			w.Name, w.Container)
	}
	log.Infof("workload %q: %s, %s ops, keyspace %s, seed %d",
		w.Name, w.Container, humanize.Comma(int64(w.Ops)),
		humanize.Comma(int64(w.Keyspace)), w.Seed)
	rng := rand.New(rand.NewSource(w.Seed))
	start := monotime.Now()
	final := run(rng, w.Ops, w.Keyspace)
	elapsed := monotime.Since(start)
	log.Infof("workload %q: done in %v", w.Name, elapsed)
	return result{name: w.Name, ops: w.Ops, final: final, elapsed: elapsed}, nil
}

// runVector mixes pushes at both ends with indexed updates, pops and
// erases, keeping the length under the keyspace bound.
func runVector(rng *rand.Rand, ops, keyspace int) int {
	v := vector.New[int]()
	for i := 0; i < ops; i++ {
		switch rng.Intn(6) {
		case 0:
			v.PushFront(i)
		case 1, 2:
			v.PushBack(i)
		case 3:
			if !v.Empty() {
				v.Set(rng.Intn(v.Len()), i)
			}
		case 4:
			v.PopFront()
		default:
			v.PopBack()
		}
		if v.Len() > keyspace {
			v.Erase(rng.Intn(v.Len()))
		}
	}
	return v.Len()
}

func runStack(rng *rand.Rand, ops, keyspace int) int {
	s := stack.New[int]()
	for i := 0; i < ops; i++ {
		if s.Len() >= keyspace || (s.Len() > 0 && rng.Intn(3) == 0) {
			s.Pop()
		} else {
			s.Push(i)
		}
	}
	return s.Len()
}

func runQueue(rng *rand.Rand, ops, keyspace int) int {
	q := queue.New[int]()
	for i := 0; i < ops; i++ {
		if q.Len() >= keyspace || (q.Len() > 0 && rng.Intn(3) == 0) {
			q.Pop()
		} else {
			q.Push(i)
		}
	}
	return q.Len()
}

// runMap churns inserts, lookups and erases over a bounded keyspace.
func runMap(rng *rand.Rand, ops, keyspace int) int {
	m := hashtable.NewMap[int, int](digest.Int,
		func(a, b int) bool { return a == b })
	for i := 0; i < ops; i++ {
		k := rng.Intn(keyspace)
		switch rng.Intn(4) {
		case 0, 1:
			m.Insert(k, i)
		case 2:
			m.Get(k)
		default:
			m.Erase(k)
		}
	}
	return m.Size()
}

func runSet(rng *rand.Rand, ops, keyspace int) int {
	s := hashtable.NewSet[int](digest.Int,
		func(a, b int) bool { return a == b })
	for i := 0; i < ops; i++ {
		k := rng.Intn(keyspace)
		switch rng.Intn(4) {
		case 0, 1:
			s.Insert(k)
		case 2:
			s.Contains(k)
		default:
			s.Erase(k)
		}
	}
	return s.Size()
}
