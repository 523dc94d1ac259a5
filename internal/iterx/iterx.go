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

// Package iterx contains helpers for working with [iter.Seq] values.
package iterx

import "iter"

// Find returns the first element of seq that satisfies p.
func Find[T any](seq iter.Seq[T], p func(T) bool) (v T, ok bool) {
	for v := range seq {
		if p(v) {
			return v, true
		}
	}
	return v, false
}

// FindMap returns the first non-false result of applying f to the elements of
// seq.
func FindMap[T, U any](seq iter.Seq[T], f func(T) (U, bool)) (u U, ok bool) {
	for v := range seq {
		if u, ok := f(v); ok {
			return u, true
		}
	}
	return u, false
}

// Count counts the number of elements in seq.
func Count[T any](seq iter.Seq[T]) int {
	var n int
	for range seq {
		n++
	}
	return n
}

// FilterMap returns an iterator over the results of f that are ok.
func FilterMap[T, U any](seq iter.Seq[T], f func(T) (U, bool)) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if u, ok := f(v); ok && !yield(u) {
				return
			}
		}
	}
}
