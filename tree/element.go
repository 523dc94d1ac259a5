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

import "github.com/bufbuild/texsyntax/source"

// Element is either a [Node] or a [Token].
//
// The zero value is the nil element, which is neither.
type Element[K comparable] struct {
	node Node[K]
	tok  Token[K]
}

// NodeElement wraps a node as an element.
func NodeElement[K comparable](n Node[K]) Element[K] {
	return Element[K]{node: n}
}

// TokenElement wraps a token as an element.
func TokenElement[K comparable](t Token[K]) Element[K] {
	return Element[K]{tok: t}
}

// IsZero returns whether this is the nil element.
func (e Element[K]) IsZero() bool {
	return e.node.IsZero() && e.tok.IsZero()
}

// AsNode returns the wrapped node, or the nil node if this is a token.
func (e Element[K]) AsNode() Node[K] {
	return e.node
}

// AsToken returns the wrapped token, or the nil token if this is a node.
func (e Element[K]) AsToken() Token[K] {
	return e.tok
}

// Kind returns the kind of the wrapped node or token.
func (e Element[K]) Kind() K {
	if !e.node.IsZero() {
		return e.node.Kind()
	}
	return e.tok.Kind()
}

// Span returns the span of the wrapped node or token.
func (e Element[K]) Span() source.Span {
	if !e.node.IsZero() {
		return e.node.Span()
	}
	return e.tok.Span()
}

// Text returns the text of the wrapped node or token.
func (e Element[K]) Text() string {
	return e.Span().Text()
}

// Parent returns the node containing this element.
func (e Element[K]) Parent() Node[K] {
	if !e.node.IsZero() {
		return e.node.Parent()
	}
	return e.tok.Parent()
}

// NextSiblingOrToken returns the element following this one in its parent.
func (e Element[K]) NextSiblingOrToken() Element[K] {
	if !e.node.IsZero() {
		return e.node.NextSiblingOrToken()
	}
	return e.tok.NextSiblingOrToken()
}

// PrevSiblingOrToken returns the element preceding this one in its parent.
func (e Element[K]) PrevSiblingOrToken() Element[K] {
	if !e.node.IsZero() {
		return e.node.PrevSiblingOrToken()
	}
	return e.tok.PrevSiblingOrToken()
}

// String implements [fmt.Stringer].
func (e Element[K]) String() string {
	if !e.node.IsZero() {
		return e.node.String()
	}
	return e.tok.String()
}
