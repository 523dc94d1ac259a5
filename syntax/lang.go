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
	"github.com/bufbuild/texsyntax/tree"
)

// Lang binds [Kind] to the generic [tree] package.
type Lang struct{}

var _ tree.Language[Kind] = Lang{}

type (
	// Tree is a syntax tree of TeX source.
	Tree = tree.Tree[Kind]
	// Node is an interior node of a [Tree].
	Node = tree.Node[Kind]
	// Token is a leaf of a [Tree].
	Token = tree.Token[Kind]
	// Element is either a [Node] or a [Token].
	Element = tree.Element[Kind]
	// Builder assembles a [Tree] from a stream of events.
	Builder = tree.Builder[Kind]
)

// KindFromRaw implements [tree.Language].
func (Lang) KindFromRaw(raw tree.RawKind) (Kind, error) {
	return FromRaw(uint16(raw))
}

// KindToRaw implements [tree.Language].
func (Lang) KindToRaw(k Kind) tree.RawKind {
	return tree.RawKind(k.Raw())
}

// NewBuilder returns a new builder for a tree of the file at path.
func NewBuilder(path string) *Builder {
	return tree.NewBuilder[Kind](Lang{}, path)
}
