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

// Package tree is a generic, immutable, lossless syntax tree.
//
// A [Tree] stores every byte of its input as the text of some [Token], so the
// original source can always be reconstructed exactly, whitespace and
// comments included. Interior [Node]s own an ordered list of children, each
// either another node or a token.
//
// # Kinds
//
// The tree itself only stores [RawKind]s. A [Language] supplies the
// conversion between raw kinds and a language's own kind type K, which is
// what every accessor in this package returns.
//
// # Pointer-like types
//
// [Node], [Token] and [Element] are thin wrappers over a pointer to their
// [Tree] and an index into one of its arenas. They are intended to be passed
// by value and compared with ==. Their zero values are the "nil" node, token
// and element: every accessor on a zero value returns a zero result instead
// of panicking, so absent structure can be navigated through freely.
//
// Parent links are arena indices too. They exist only for upward navigation;
// children are owned by the tree's arenas, never by their parents.
//
// # Construction
//
// Trees are assembled bottom-up with a [Builder], or decoded from the
// encoding produced by [Marshal]. Once built, a tree is never modified and
// may be shared freely between goroutines.
package tree
