// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides maps keyed by disjoint, inclusive integer
// intervals.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Map is a map from disjoint intervals to values. Looking up a point returns
// the interval containing it, if any.
//
// A zero Map is empty and ready to use.
type Map[K Endpoint, V any] struct {
	// Keys are the (inclusive) ends of the intervals.
	tree btree.Map[K, *entry[K, V]]
}

// Interval is an entry in a [Map].
type Interval[K Endpoint, V any] struct {
	// The range for this interval, both ends inclusive.
	Start, End K

	// The value associated with it. Nil if this interval is not present.
	Value *V
}

type entry[K Endpoint, V any] struct {
	start K
	value V
}

// Len returns the number of intervals in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get looks up the interval which contains key.
//
// If no such interval exists, the Value of the returned [Interval] is nil.
func (m *Map[K, V]) Get(key K) Interval[K, V] {
	iter := m.tree.Iter()
	if !iter.Seek(key) || key < iter.Value().start {
		return Interval[K, V]{}
	}
	return m.at(iter)
}

// Insert inserts the interval [start, end] with the given value.
//
// If [start, end] overlaps an interval already in the map, nothing is
// inserted and the overlapping interval with the least start is returned; in
// that case overlap.Value is non-nil.
//
// Panics if start > end.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V]) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	// Find the least interval [c, d] with start <= d. Intervals are disjoint,
	// so it is the only candidate for overlap with a least start: every later
	// interval begins after d.
	iter := m.tree.Iter()
	if iter.Seek(start) && iter.Value().start <= end {
		return m.at(iter)
	}

	m.tree.Set(end, &entry[K, V]{start: start, value: value})
	return Interval[K, V]{}
}

// Intervals returns an iterator over the intervals in this map, in order.
func (m *Map[K, V]) Intervals() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		iter := m.tree.Iter()
		for more := iter.First(); more; more = iter.Next() {
			if !yield(m.at(iter)) {
				return
			}
		}
	}
}

// Format implements [fmt.Formatter].
func (m *Map[K, V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	m.tree.Scan(func(end K, e *entry[K, V]) bool {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false

		if e.start == end {
			fmt.Fprintf(s, "%#v: ", e.start)
		} else {
			fmt.Fprintf(s, "[%#v, %#v]: ", e.start, end)
		}
		fmt.Fprintf(s, fmt.FormatString(s, v), e.value)
		return true
	})
	fmt.Fprint(s, "}")
}

func (m *Map[K, V]) at(iter btree.MapIter[K, *entry[K, V]]) Interval[K, V] {
	return Interval[K, V]{
		Start: iter.Value().start,
		End:   iter.Key(),
		Value: &iter.Value().value,
	}
}
