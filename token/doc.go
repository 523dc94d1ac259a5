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

// Package token defines the alphabet of tokens produced by the TeX lexical
// analyzer.
//
// The lexer itself lives outside this module; this package only fixes the
// shape of its output, so that [github.com/bufbuild/texsyntax/syntax.Classify]
// can map every variant onto the syntax taxonomy and tests can enumerate the
// whole alphabet with [Variants].
package token

//go:generate go run github.com/bufbuild/texsyntax/internal/enum alphabet.yaml
