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
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/bufbuild/texsyntax/internal/arena"
	"github.com/bufbuild/texsyntax/internal/interval"
	"github.com/bufbuild/texsyntax/source"
)

var (
	// ErrUnbalanced is returned by [Builder.Finish] when some node was
	// started but never finished.
	ErrUnbalanced = errors.New("tree: unfinished node")

	// ErrNoRoot is returned by [Builder.Finish] unless exactly one top-level
	// node was built.
	ErrNoRoot = errors.New("tree: expected exactly one root node")

	// ErrCorrupt is returned by [Unmarshal] for malformed input.
	ErrCorrupt = errors.New("tree: corrupt encoding")
)

// Tree is an immutable lossless syntax tree over a language's kinds K.
type Tree[K comparable] struct {
	lang   Language[K]
	file   *source.File
	nodes  arena.Arena[rawNode]
	tokens arena.Arena[rawToken]
	root   arena.Pointer[rawNode]

	indexOnce sync.Once
	index     interval.Map[int, arena.Pointer[rawToken]]
}

type rawNode struct {
	kind       RawKind
	parent     arena.Pointer[rawNode] // Nil for the root.
	index      uint32                 // Position among the parent's children.
	start, end uint32
	children   []elem
}

type rawToken struct {
	kind       RawKind
	parent     arena.Pointer[rawNode]
	index      uint32
	start, end uint32
}

// elem is a compressed reference to a child: positive values are node
// pointers, negative values are negated token pointers.
type elem int32

func nodeElem(p arena.Pointer[rawNode]) elem {
	checkElem(uint32(p))
	return elem(p)
}

func tokenElem(p arena.Pointer[rawToken]) elem {
	checkElem(uint32(p))
	return -elem(p)
}

func checkElem(p uint32) {
	if p > math.MaxInt32 {
		panic(fmt.Sprintf("tree: too many elements: pointer %#x does not fit in an element", p))
	}
}

func (e elem) node() arena.Pointer[rawNode] {
	if e <= 0 {
		return 0
	}
	return arena.Pointer[rawNode](e)
}

func (e elem) token() arena.Pointer[rawToken] {
	if e >= 0 {
		return 0
	}
	return arena.Pointer[rawToken](-e)
}

// Root returns the root node of this tree.
func (t *Tree[K]) Root() Node[K] {
	if t == nil {
		return Node[K]{}
	}
	return Node[K]{t, t.root}
}

// Language returns the language this tree's kinds belong to.
func (t *Tree[K]) Language() Language[K] {
	return t.lang
}

// File returns the source file this tree covers. Its text is the
// concatenation of every token's text.
func (t *Tree[K]) File() *source.File {
	if t == nil {
		return nil
	}
	return t.file
}

// Text returns the complete text of this tree.
func (t *Tree[K]) Text() string {
	return t.File().Text()
}

// TokenAt returns the token whose text contains the byte at offset.
//
// Returns the zero token if offset is out of bounds. Empty tokens are never
// returned. The lookup index is built on first use.
func (t *Tree[K]) TokenAt(offset int) Token[K] {
	if t == nil || offset < 0 || offset >= len(t.Text()) {
		return Token[K]{}
	}

	t.indexOnce.Do(func() {
		t.tokens.Values(func(p arena.Pointer[rawToken], raw *rawToken) bool {
			if raw.start < raw.end {
				t.index.Insert(int(raw.start), int(raw.end)-1, p)
			}
			return true
		})
	})

	found := t.index.Get(offset)
	if found.Value == nil {
		return Token[K]{}
	}
	return Token[K]{t, *found.Value}
}

// NodeAt returns the innermost node containing the byte at offset, i.e. the
// parent of [Tree.TokenAt].
func (t *Tree[K]) NodeAt(offset int) Node[K] {
	return t.TokenAt(offset).Parent()
}

// Dump returns a human-readable rendering of the whole tree, one element per
// line, indented by depth.
func (t *Tree[K]) Dump() string {
	var out strings.Builder
	t.Root().dump(&out, 0)
	return out.String()
}

func (n Node[K]) dump(out *strings.Builder, depth int) {
	if n.IsZero() {
		return
	}
	fmt.Fprintf(out, "%s%v\n", strings.Repeat("  ", depth), n)
	for child := range n.ChildrenWithTokens() {
		if node := child.AsNode(); !node.IsZero() {
			node.dump(out, depth+1)
			continue
		}
		fmt.Fprintf(out, "%s%v\n", strings.Repeat("  ", depth+1), child.AsToken())
	}
}

// kind converts a raw kind stored in this tree.
func (t *Tree[K]) kind(raw RawKind) K {
	k, err := t.lang.KindFromRaw(raw)
	if err != nil {
		// Every raw kind stored in a tree came out of KindToRaw, or was
		// checked with KindFromRaw by Unmarshal.
		panic(fmt.Sprintf("tree: invalid kind in finished tree: %v", err))
	}
	return k
}

func (t *Tree[K]) element(e elem) Element[K] {
	if p := e.node(); !p.Nil() {
		return Element[K]{node: Node[K]{t, p}}
	}
	if p := e.token(); !p.Nil() {
		return Element[K]{tok: Token[K]{t, p}}
	}
	return Element[K]{}
}

// sibling returns the element at index i of parent's children.
func (t *Tree[K]) sibling(parent arena.Pointer[rawNode], i int) Element[K] {
	if parent.Nil() {
		return Element[K]{}
	}
	children := t.nodes.Deref(parent).children
	if i < 0 || i >= len(children) {
		return Element[K]{}
	}
	return t.element(children[i])
}
