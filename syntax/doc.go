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

// Package syntax defines the taxonomy of TeX syntax: [Kind], the tag every
// token and node of a syntax tree carries.
//
// The same [Kind] values are shared by every layer: [Classify] maps the
// lexer's [token.Token] alphabet onto them, [Lang] binds them to the generic
// [tree] package, and the typed views in package ast dispatch on them.
//
// # Raw kinds
//
// A [Kind] is stored in a tree as its numeric value. [Kind.Raw] and [FromRaw]
// convert between the two; [FromRaw] rejects values at or above [KindCount]
// with an error wrapping [ErrOutOfRange], which indicates a corrupted tree or
// one produced by an incompatible version of this package.
package syntax

//go:generate go run github.com/bufbuild/texsyntax/internal/enum kind.yaml
