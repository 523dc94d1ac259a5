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
	"strings"

	"github.com/bufbuild/texsyntax/source"
)

// Builder assembles a [Tree] bottom-up from a stream of events: starting a
// node, adding a token, and finishing the innermost open node.
//
// Builder does not decide the shape of the tree; that is up to the parser
// driving it.
type Builder[K comparable] struct {
	lang Language[K]
	path string

	tree     *Tree[K]
	text     strings.Builder
	parents  []frame
	children []elem // Finished children not yet claimed by a parent.
	err      error  // First invalid kind seen.
}

type frame struct {
	kind  RawKind
	first int // Index into Builder.children of this node's first child.
}

// Checkpoint records a position in a [Builder], so that a node can later be
// started retroactively at that position with [Builder.StartNodeAt].
type Checkpoint struct {
	children int
}

// NewBuilder returns a builder for a tree in the given language. path is the
// path recorded in the tree's [source.File].
func NewBuilder[K comparable](lang Language[K], path string) *Builder[K] {
	return &Builder[K]{lang: lang, path: path}
}

// StartNode opens a new node of the given kind. Elements added until the
// matching [Builder.FinishNode] become its children.
func (b *Builder[K]) StartNode(kind K) {
	b.init()
	b.parents = append(b.parents, frame{
		kind:  b.raw(kind),
		first: len(b.children),
	})
}

// Token adds a token with the given kind and text to the innermost open node.
func (b *Builder[K]) Token(kind K, text string) {
	b.init()
	start := b.text.Len()
	b.text.WriteString(text)

	p := b.tree.tokens.New(rawToken{
		kind:  b.raw(kind),
		start: uint32(start),
		end:   uint32(b.text.Len()),
	})
	b.children = append(b.children, tokenElem(p))
}

// FinishNode closes the innermost open node.
//
// Panics if there is no open node.
func (b *Builder[K]) FinishNode() {
	if len(b.parents) == 0 {
		panic("tree: FinishNode called without a matching StartNode")
	}

	top := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	children := make([]elem, len(b.children)-top.first)
	copy(children, b.children[top.first:])
	b.children = b.children[:top.first]

	start := uint32(b.text.Len())
	if len(children) > 0 {
		start = b.start(children[0])
	}

	p := b.tree.nodes.New(rawNode{
		kind:     top.kind,
		start:    start,
		end:      uint32(b.text.Len()),
		children: children,
	})

	for i, child := range children {
		if c := child.node(); !c.Nil() {
			raw := b.tree.nodes.Deref(c)
			raw.parent, raw.index = p, uint32(i)
			continue
		}
		raw := b.tree.tokens.Deref(child.token())
		raw.parent, raw.index = p, uint32(i)
	}

	b.children = append(b.children, nodeElem(p))
}

// Checkpoint returns the current position in the builder.
func (b *Builder[K]) Checkpoint() Checkpoint {
	return Checkpoint{children: len(b.children)}
}

// StartNodeAt opens a new node of the given kind whose children begin at the
// given checkpoint: every element added since then becomes a child of the new
// node.
//
// Panics if the checkpoint lies outside the innermost open node.
func (b *Builder[K]) StartNodeAt(cp Checkpoint, kind K) {
	b.init()
	if cp.children > len(b.children) {
		panic(fmt.Sprintf("tree: checkpoint %d is past the end of the builder (%d)", cp.children, len(b.children)))
	}
	if n := len(b.parents); n > 0 && cp.children < b.parents[n-1].first {
		panic(fmt.Sprintf("tree: checkpoint %d is outside of the current node", cp.children))
	}

	b.parents = append(b.parents, frame{
		kind:  b.raw(kind),
		first: cp.children,
	})
}

// Finish completes the tree and resets the builder.
//
// Returns [ErrUnbalanced] if a node is still open, and [ErrNoRoot] unless
// exactly one node, and nothing else, was built at the top level. If any event
// was given a kind the language rejects, the error wraps the language's error.
func (b *Builder[K]) Finish() (*Tree[K], error) {
	b.init()
	defer b.reset()

	if b.err != nil {
		return nil, b.err
	}
	if n := len(b.parents); n > 0 {
		return nil, fmt.Errorf("%w: %d nodes still open", ErrUnbalanced, n)
	}
	if len(b.children) != 1 || b.children[0].node().Nil() {
		return nil, fmt.Errorf("%w: got %d top-level elements", ErrNoRoot, len(b.children))
	}

	t := b.tree
	t.root = b.children[0].node()
	t.file = source.NewFile(b.path, b.text.String())
	return t, nil
}

func (b *Builder[K]) init() {
	if b.tree == nil {
		b.tree = &Tree[K]{lang: b.lang}
	}
}

func (b *Builder[K]) reset() {
	b.tree = nil
	b.text.Reset()
	b.parents = nil
	b.children = nil
	b.err = nil
}

// raw converts kind, recording an error if the language cannot read it back.
func (b *Builder[K]) raw(kind K) RawKind {
	raw := b.lang.KindToRaw(kind)
	if _, err := b.lang.KindFromRaw(raw); err != nil && b.err == nil {
		b.err = fmt.Errorf("tree: invalid kind %v: %w", kind, err)
	}
	return raw
}

// start returns the start offset of a finished element.
func (b *Builder[K]) start(e elem) uint32 {
	if p := e.node(); !p.Nil() {
		return b.tree.nodes.Deref(p).start
	}
	return b.tree.tokens.Deref(e.token()).start
}
