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

package syntax

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Set is a set of [Kind] values, implicitly ordered by the kinds' numeric
// order.
//
// A zero Set is empty and ready to use.
type Set struct {
	bits [(KindCount + 63) / 64]uint64
}

// NewSet returns a new [Set] with the given kinds set.
//
// Panics if any value is not a valid [Kind].
func NewSet(kinds ...Kind) Set {
	return Set{}.With(kinds...)
}

// Len returns the number of kinds in the set.
func (s Set) Len() int {
	var n int
	for _, v := range s.bits {
		n += bits.OnesCount64(v)
	}
	return n
}

// Has checks whether k is present in this set.
func (s Set) Has(k Kind) bool {
	if !k.IsValid() {
		return false
	}

	has := s.bits[int(k)/64] & (uint64(1) << (int(k) % 64))
	return has != 0
}

// With returns a new Set with the given kinds inserted.
//
// Panics if any value is not a valid [Kind].
func (s Set) With(kinds ...Kind) Set {
	for _, k := range kinds {
		if !k.IsValid() {
			panic(fmt.Sprintf("syntax: inserted invalid kind %d", k))
		}

		s.bits[int(k)/64] |= uint64(1) << (int(k) % 64)
	}
	return s
}

// All returns an iterator over the kinds in the set, in order.
func (s Set) All() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for i, word := range s.bits {
			next := i * 64
			for word != 0 {
				if word&1 == 1 && !yield(Kind(next)) {
					return
				}

				word >>= 1
				next++
			}
		}
	}
}

// String implements [fmt.Stringer].
//
// For example, NewSet(ItemCurly, ItemBracket).String() is
// "{ItemCurly, ItemBracket}".
func (s Set) String() string {
	var out strings.Builder
	out.WriteByte('{')
	first := true
	for k := range s.All() {
		if !first {
			out.WriteString(", ")
		}
		first = false
		out.WriteString(k.String())
	}
	out.WriteByte('}')
	return out.String()
}
