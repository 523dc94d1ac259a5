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

package tree

import (
	"fmt"

	"github.com/bufbuild/texsyntax/internal/arena"
	"github.com/bufbuild/texsyntax/source"
)

// Token is a leaf of a [Tree], covering a slice of the source text.
//
// The zero value is the nil token.
type Token[K comparable] struct {
	tree *Tree[K]
	ptr  arena.Pointer[rawToken]
}

// IsZero returns whether this is the nil token.
func (t Token[K]) IsZero() bool {
	return t.tree == nil
}

// Tree returns the tree this token belongs to.
func (t Token[K]) Tree() *Tree[K] {
	return t.tree
}

// Kind returns this token's kind.
//
// Returns the zero K for the nil token.
func (t Token[K]) Kind() K {
	if t.IsZero() {
		var zero K
		return zero
	}
	return t.tree.kind(t.raw().kind)
}

// RawKind returns this token's kind as stored in the tree.
func (t Token[K]) RawKind() RawKind {
	if t.IsZero() {
		return 0
	}
	return t.raw().kind
}

// Span returns the source span covered by this token.
func (t Token[K]) Span() source.Span {
	if t.IsZero() {
		return source.Span{}
	}
	raw := t.raw()
	return t.tree.file.Span(int(raw.start), int(raw.end))
}

// Text returns this token's text.
//
// Returns "" for the nil token.
func (t Token[K]) Text() string {
	return t.Span().Text()
}

// Parent returns the node containing this token.
func (t Token[K]) Parent() Node[K] {
	if t.IsZero() {
		return Node[K]{}
	}
	return Node[K]{t.tree, t.raw().parent}
}

// NextSiblingOrToken returns the element following this token in its parent.
func (t Token[K]) NextSiblingOrToken() Element[K] {
	if t.IsZero() {
		return Element[K]{}
	}
	raw := t.raw()
	return t.tree.sibling(raw.parent, int(raw.index)+1)
}

// PrevSiblingOrToken returns the element preceding this token in its parent.
func (t Token[K]) PrevSiblingOrToken() Element[K] {
	if t.IsZero() {
		return Element[K]{}
	}
	raw := t.raw()
	return t.tree.sibling(raw.parent, int(raw.index)-1)
}

// String implements [fmt.Stringer].
func (t Token[K]) String() string {
	if t.IsZero() {
		return "<nil>"
	}
	raw := t.raw()
	return fmt.Sprintf("%v@%d..%d %q", t.Kind(), raw.start, raw.end, t.Text())
}

func (t Token[K]) raw() *rawToken {
	return t.tree.tokens.Deref(t.ptr)
}
