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
	"iter"

	"github.com/bufbuild/texsyntax/internal/arena"
	"github.com/bufbuild/texsyntax/source"
)

// Node is an interior node of a [Tree].
//
// The zero value is the nil node.
type Node[K comparable] struct {
	tree *Tree[K]
	ptr  arena.Pointer[rawNode]
}

// IsZero returns whether this is the nil node.
func (n Node[K]) IsZero() bool {
	return n.tree == nil
}

// Tree returns the tree this node belongs to.
func (n Node[K]) Tree() *Tree[K] {
	return n.tree
}

// Kind returns this node's kind.
//
// Returns the zero K for the nil node.
func (n Node[K]) Kind() K {
	if n.IsZero() {
		var zero K
		return zero
	}
	return n.tree.kind(n.raw().kind)
}

// RawKind returns this node's kind as stored in the tree.
func (n Node[K]) RawKind() RawKind {
	if n.IsZero() {
		return 0
	}
	return n.raw().kind
}

// Span returns the source span covered by this node.
func (n Node[K]) Span() source.Span {
	if n.IsZero() {
		return source.Span{}
	}
	raw := n.raw()
	return n.tree.file.Span(int(raw.start), int(raw.end))
}

// Text returns the text of every token under this node.
func (n Node[K]) Text() string {
	return n.Span().Text()
}

// Parent returns the node containing this one.
//
// Returns the nil node for the root.
func (n Node[K]) Parent() Node[K] {
	if n.IsZero() || n.raw().parent.Nil() {
		return Node[K]{}
	}
	return Node[K]{n.tree, n.raw().parent}
}

// Ancestors returns an iterator over this node and its ancestors, innermost
// first.
func (n Node[K]) Ancestors() iter.Seq[Node[K]] {
	return func(yield func(Node[K]) bool) {
		for ; !n.IsZero(); n = n.Parent() {
			if !yield(n) {
				return
			}
		}
	}
}

// ChildrenWithTokens returns an iterator over this node's direct children,
// nodes and tokens alike, in document order.
func (n Node[K]) ChildrenWithTokens() iter.Seq[Element[K]] {
	return func(yield func(Element[K]) bool) {
		if n.IsZero() {
			return
		}
		for _, e := range n.raw().children {
			if !yield(n.tree.element(e)) {
				return
			}
		}
	}
}

// Children returns an iterator over this node's direct child nodes, in
// document order. Tokens are skipped.
func (n Node[K]) Children() iter.Seq[Node[K]] {
	return func(yield func(Node[K]) bool) {
		if n.IsZero() {
			return
		}
		for _, e := range n.raw().children {
			if p := e.node(); !p.Nil() && !yield(Node[K]{n.tree, p}) {
				return
			}
		}
	}
}

// NumChildren returns the number of direct children, nodes and tokens alike.
func (n Node[K]) NumChildren() int {
	if n.IsZero() {
		return 0
	}
	return len(n.raw().children)
}

// FirstChildOrToken returns the first direct child.
func (n Node[K]) FirstChildOrToken() Element[K] {
	return n.tree.sibling(n.ptr, 0)
}

// LastChildOrToken returns the last direct child.
func (n Node[K]) LastChildOrToken() Element[K] {
	return n.tree.sibling(n.ptr, n.NumChildren()-1)
}

// FirstChild returns the first direct child that is a node.
func (n Node[K]) FirstChild() Node[K] {
	for child := range n.Children() {
		return child
	}
	return Node[K]{}
}

// LastChild returns the last direct child that is a node.
func (n Node[K]) LastChild() Node[K] {
	if n.IsZero() {
		return Node[K]{}
	}
	children := n.raw().children
	for i := len(children) - 1; i >= 0; i-- {
		if p := children[i].node(); !p.Nil() {
			return Node[K]{n.tree, p}
		}
	}
	return Node[K]{}
}

// FirstToken returns the first token in this subtree, descending through the
// first child at each level.
//
// If the first child is an empty node, returns the nil token.
func (n Node[K]) FirstToken() Token[K] {
	for !n.IsZero() {
		first := n.FirstChildOrToken()
		if tok := first.AsToken(); !tok.IsZero() {
			return tok
		}
		n = first.AsNode()
	}
	return Token[K]{}
}

// LastToken returns the last token in this subtree, descending through the
// last child at each level.
//
// If the last child is an empty node, returns the nil token.
func (n Node[K]) LastToken() Token[K] {
	for !n.IsZero() {
		last := n.LastChildOrToken()
		if tok := last.AsToken(); !tok.IsZero() {
			return tok
		}
		n = last.AsNode()
	}
	return Token[K]{}
}

// NextSiblingOrToken returns the element following this node in its parent.
func (n Node[K]) NextSiblingOrToken() Element[K] {
	if n.IsZero() {
		return Element[K]{}
	}
	raw := n.raw()
	return n.tree.sibling(raw.parent, int(raw.index)+1)
}

// PrevSiblingOrToken returns the element preceding this node in its parent.
func (n Node[K]) PrevSiblingOrToken() Element[K] {
	if n.IsZero() {
		return Element[K]{}
	}
	raw := n.raw()
	return n.tree.sibling(raw.parent, int(raw.index)-1)
}

// NextSibling returns the next node among this node's siblings, skipping
// tokens.
func (n Node[K]) NextSibling() Node[K] {
	for e := n.NextSiblingOrToken(); !e.IsZero(); e = e.NextSiblingOrToken() {
		if node := e.AsNode(); !node.IsZero() {
			return node
		}
	}
	return Node[K]{}
}

// PrevSibling returns the previous node among this node's siblings, skipping
// tokens.
func (n Node[K]) PrevSibling() Node[K] {
	for e := n.PrevSiblingOrToken(); !e.IsZero(); e = e.PrevSiblingOrToken() {
		if node := e.AsNode(); !node.IsZero() {
			return node
		}
	}
	return Node[K]{}
}

// Descendants returns an iterator over this node and every node below it,
// in preorder.
func (n Node[K]) Descendants() iter.Seq[Node[K]] {
	return func(yield func(Node[K]) bool) {
		n.walk(yield, nil)
	}
}

// Tokens returns an iterator over every token in this subtree, in document
// order.
func (n Node[K]) Tokens() iter.Seq[Token[K]] {
	return func(yield func(Token[K]) bool) {
		n.walk(nil, yield)
	}
}

// walk performs a preorder traversal, reporting nodes and tokens to the
// respective callbacks, either of which may be nil. Returns false if a
// callback asked to stop.
func (n Node[K]) walk(onNode func(Node[K]) bool, onToken func(Token[K]) bool) bool {
	if n.IsZero() {
		return true
	}
	if onNode != nil && !onNode(n) {
		return false
	}
	for _, e := range n.raw().children {
		if p := e.node(); !p.Nil() {
			if !(Node[K]{n.tree, p}).walk(onNode, onToken) {
				return false
			}
			continue
		}
		if onToken != nil && !onToken(Token[K]{n.tree, e.token()}) {
			return false
		}
	}
	return true
}

// String implements [fmt.Stringer].
func (n Node[K]) String() string {
	if n.IsZero() {
		return "<nil>"
	}
	raw := n.raw()
	return fmt.Sprintf("%v@%d..%d", n.Kind(), raw.start, raw.end)
}

func (n Node[K]) raw() *rawNode {
	return n.tree.nodes.Deref(n.ptr)
}
