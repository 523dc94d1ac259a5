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

package tree_test

import (
	"errors"
	"fmt"

	"github.com/bufbuild/texsyntax/tree"
)

// kind is a toy language for exercising the tree in isolation.
type kind uint16

const (
	kWord kind = iota
	kSpace
	kGroup
	kRoot

	kindCount
)

func (k kind) String() string {
	switch k {
	case kWord:
		return "Word"
	case kSpace:
		return "Space"
	case kGroup:
		return "Group"
	case kRoot:
		return "Root"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var errUnknownKind = errors.New("unknown kind")

type lang struct{}

func (lang) KindFromRaw(raw tree.RawKind) (kind, error) {
	if raw >= tree.RawKind(kindCount) {
		return 0, fmt.Errorf("%w %d", errUnknownKind, raw)
	}
	return kind(raw), nil
}

func (lang) KindToRaw(k kind) tree.RawKind {
	return tree.RawKind(k)
}

// sample builds the tree for "a {b}c", which contains an empty group
// between "}" and "c".
func sample() *tree.Tree[kind] {
	b := tree.NewBuilder[kind](lang{}, "sample.tex")
	b.StartNode(kRoot)
	b.Token(kWord, "a")
	b.Token(kSpace, " ")
	b.StartNode(kGroup)
	b.Token(kWord, "{")
	b.Token(kWord, "b")
	b.Token(kWord, "}")
	b.FinishNode()
	b.StartNode(kGroup)
	b.FinishNode()
	b.Token(kWord, "c")
	b.FinishNode()

	t, err := b.Finish()
	if err != nil {
		panic(err)
	}
	return t
}

const sampleDump = `Root@0..6
  Word@0..1 "a"
  Space@1..2 " "
  Group@2..5
    Word@2..3 "{"
    Word@3..4 "b"
    Word@4..5 "}"
  Group@5..5
  Word@5..6 "c"
`
