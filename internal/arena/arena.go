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

// Package arena provides append-only storage addressed by compressed 32-bit
// pointers.
//
// Syntax trees store their nodes and tokens in arenas so that child and
// parent links are plain integers rather than Go pointers. This keeps the
// garbage collector out of the tree's link structure and means a parent link
// can never keep a subtree alive.
package arena

import (
	"fmt"
	"math/bits"
	"strings"
)

// chunkMinLenShift is the log2 of the length of the first chunk.
const (
	chunkMinLenShift = 4
	chunkMinLen      = 1 << chunkMinLenShift
)

// Pointer is a compressed pointer into an [Arena][T].
//
// The value of a pointer is one plus the number of values allocated before
// it; the zero value is nil.
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// In looks up this pointer in the given arena.
//
// a must be the arena that allocated p. Panics if p is nil or out of range.
func (p Pointer[T]) In(a *Arena[T]) *T {
	return a.Deref(p)
}

// Arena is a slice of T whose elements never move once allocated.
//
// Values live in a table of chunks, each twice as long as the previous one,
// so lookup stays O(1) and growth never copies existing values.
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(chunks[0]) == chunkMinLen.
	// 2. cap(chunks[n]) == 2*cap(chunks[n-1]).
	// 3. len(chunks[n]) == cap(chunks[n]) for n < len(chunks)-1.
	chunks [][]T
}

// New allocates value on the arena and returns a pointer to it.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.chunks == nil {
		a.chunks = [][]T{make([]T, 0, chunkMinLen)}
	}

	last := &a.chunks[len(a.chunks)-1]
	if len(*last) == cap(*last) {
		a.chunks = append(a.chunks, make([]T, 0, 2*cap(*last)))
		last = &a.chunks[len(a.chunks)-1]
	}

	*last = append(*last, value)
	return Pointer[T](a.Len())
}

// Deref returns the value p points to.
//
// Panics if p is nil or was not allocated by this arena.
func (a *Arena[T]) Deref(p Pointer[T]) *T {
	if p.Nil() {
		panic("arena: dereferenced nil pointer")
	}
	chunk, idx := a.coordinates(int(p) - 1)
	return &a.chunks[chunk][idx]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.chunks) == 0 {
		return 0
	}
	return lenOfFirstNChunks(len(a.chunks)-1) + len(a.chunks[len(a.chunks)-1])
}

// Values returns every allocated value in allocation order, paired with its
// pointer.
func (a *Arena[T]) Values(yield func(Pointer[T], *T) bool) {
	var n Pointer[T]
	for _, chunk := range a.chunks {
		for i := range chunk {
			n++
			if !yield(n, &chunk[i]) {
				return
			}
		}
	}
}

// String implements [fmt.Stringer].
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteRune('[')
	// Chunk boundaries are shown with |.
	for i, chunk := range a.chunks {
		if i != 0 {
			b.WriteRune('|')
		}
		for j, v := range chunk {
			if j != 0 {
				b.WriteRune(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteRune(']')
	return b.String()
}

// lenOfFirstNChunks returns the total length of the first n chunks.
func lenOfFirstNChunks(n int) int {
	// 2^m + 2^(m+1) + ... + 2^(m+n-1) = 2^(m+n) - 2^m.
	return (chunkMinLen << n) - chunkMinLen
}

// coordinates maps a zero-based index to a chunk and an offset within it,
// performing a bounds check.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx < 0 || idx >= a.Len() {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx+1))
	}

	// Chunk k starts at index (2^k - 1) << chunkMinLenShift, so adding
	// chunkMinLen and taking the position of the high bit recovers k.
	chunk := bits.UintSize - bits.LeadingZeros(uint(idx)+chunkMinLen)
	chunk -= chunkMinLenShift + 1

	return chunk, idx - lenOfFirstNChunks(chunk)
}
