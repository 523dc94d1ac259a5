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
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/texsyntax/tree"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	tr := sample()
	assert.Equal(t, "a {b}c", tr.Text())
	assert.Equal(t, "sample.tex", tr.File().Path())
	assert.Equal(t, sampleDump, tr.Dump())

	root := tr.Root()
	assert.Equal(t, kRoot, root.Kind())
	assert.Equal(t, 0, root.Span().Start)
	assert.Equal(t, 6, root.Span().End)
	assert.Equal(t, 5, root.NumChildren())
}

func TestLossless(t *testing.T) {
	t.Parallel()

	tr := sample()
	for node := range tr.Root().Descendants() {
		var text strings.Builder
		for tok := range node.Tokens() {
			text.WriteString(tok.Text())
		}
		assert.Equal(t, node.Text(), text.String(), "%v", node)
	}
}

func TestParents(t *testing.T) {
	t.Parallel()

	tr := sample()
	assert.True(t, tr.Root().Parent().IsZero())

	for node := range tr.Root().Descendants() {
		for child := range node.ChildrenWithTokens() {
			assert.Equal(t, node, child.Parent(), "%v", child)
		}
		for child := range node.Children() {
			assert.Equal(t, node, child.Parent(), "%v", child)
		}
	}

	var kinds []kind
	for n := range tr.TokenAt(3).Parent().Ancestors() {
		kinds = append(kinds, n.Kind())
	}
	assert.Equal(t, []kind{kGroup, kRoot}, kinds)
}

func TestNavigation(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root := sample().Root()
	group := root.FirstChild()
	empty := root.LastChild()

	assert.Equal(kGroup, group.Kind())
	assert.Equal("{b}", group.Text())
	assert.Equal(kGroup, empty.Kind())
	assert.Empty(empty.Text())

	assert.Equal(empty, group.NextSibling())
	assert.Equal(group, empty.PrevSibling())
	assert.True(group.PrevSibling().IsZero())
	assert.True(empty.NextSibling().IsZero())

	assert.Equal(" ", group.PrevSiblingOrToken().Text())
	assert.Equal("c", empty.NextSiblingOrToken().AsToken().Text())
	assert.True(empty.NextSiblingOrToken().NextSiblingOrToken().IsZero())

	assert.Equal("a", root.FirstChildOrToken().AsToken().Text())
	assert.True(root.FirstChildOrToken().AsNode().IsZero())
	assert.Equal("c", root.LastChildOrToken().Text())

	assert.Equal("a", root.FirstToken().Text())
	assert.Equal("c", root.LastToken().Text())
	assert.Equal("{", group.FirstToken().Text())
	assert.Equal("}", group.LastToken().Text())
	assert.True(empty.FirstToken().IsZero())
	assert.True(empty.LastToken().IsZero())

	a := root.FirstToken()
	assert.Equal(" ", a.NextSiblingOrToken().Text())
	assert.True(a.PrevSiblingOrToken().IsZero())
	assert.Equal(`Word@0..1 "a"`, a.String())
	assert.Equal("Group@2..5", group.String())
}

func TestNil(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var n tree.Node[kind]
	assert.True(n.IsZero())
	assert.Equal(kWord, n.Kind())
	assert.Equal(tree.RawKind(0), n.RawKind())
	assert.Empty(n.Text())
	assert.True(n.Parent().IsZero())
	assert.True(n.FirstChild().IsZero())
	assert.True(n.LastChild().IsZero())
	assert.True(n.FirstChildOrToken().IsZero())
	assert.True(n.LastChildOrToken().IsZero())
	assert.True(n.FirstToken().IsZero())
	assert.True(n.NextSibling().IsZero())
	assert.Zero(n.NumChildren())
	assert.Empty(slices.Collect(n.Children()))
	assert.Empty(slices.Collect(n.Descendants()))
	assert.Equal("<nil>", n.String())

	var tok tree.Token[kind]
	assert.True(tok.IsZero())
	assert.Empty(tok.Text())
	assert.True(tok.Parent().IsZero())
	assert.True(tok.NextSiblingOrToken().IsZero())
	assert.Equal("<nil>", tok.String())

	var e tree.Element[kind]
	assert.True(e.IsZero())
	assert.True(e.AsNode().IsZero())
	assert.True(e.AsToken().IsZero())
	assert.Empty(e.Text())

	var tr *tree.Tree[kind]
	assert.True(tr.Root().IsZero())
	assert.True(tr.TokenAt(0).IsZero())
}

func TestTokenAt(t *testing.T) {
	t.Parallel()

	tr := sample()
	tests := []struct {
		offset int
		text   string
	}{
		{-1, ""},
		{0, "a"},
		{1, " "},
		{2, "{"},
		{3, "b"},
		{4, "}"},
		{5, "c"}, // The empty group at 5 never wins.
		{6, ""},
		{100, ""},
	}
	for _, test := range tests {
		tok := tr.TokenAt(test.offset)
		assert.Equal(t, test.text, tok.Text(), "offset %d", test.offset)
		assert.Equal(t, test.text == "", tok.IsZero(), "offset %d", test.offset)
	}

	assert.Equal(t, tr.Root(), tr.NodeAt(0))
	assert.Equal(t, tr.Root().FirstChild(), tr.NodeAt(3))
	assert.True(t, tr.NodeAt(6).IsZero())
}

func TestConcurrentReads(t *testing.T) {
	t.Parallel()

	tr := sample()
	var eg errgroup.Group
	for i := range 16 {
		eg.Go(func() error {
			offset := i % len(tr.Text())
			if tr.TokenAt(offset).IsZero() {
				return assert.AnError
			}
			if tr.Dump() != sampleDump {
				return assert.AnError
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}

func TestCheckpoint(t *testing.T) {
	t.Parallel()

	b := tree.NewBuilder[kind](lang{}, "")
	b.StartNode(kRoot)
	b.Token(kSpace, " ")
	cp := b.Checkpoint()
	b.Token(kWord, "x")
	b.Token(kWord, "y")
	b.StartNodeAt(cp, kGroup)
	b.FinishNode()
	b.FinishNode()

	tr, err := b.Finish()
	require.NoError(t, err)
	assert.Equal(t, `Root@0..3
  Space@0..1 " "
  Group@1..3
    Word@1..2 "x"
    Word@2..3 "y"
`, tr.Dump())
}

func TestBuilderMisuse(t *testing.T) {
	t.Parallel()

	t.Run("finish-without-start", func(t *testing.T) {
		t.Parallel()
		b := tree.NewBuilder[kind](lang{}, "")
		assert.Panics(t, b.FinishNode)
	})

	t.Run("checkpoint-outside-node", func(t *testing.T) {
		t.Parallel()
		b := tree.NewBuilder[kind](lang{}, "")
		b.StartNode(kRoot)
		cp := b.Checkpoint()
		b.Token(kWord, "a")
		b.StartNode(kGroup)
		assert.Panics(t, func() { b.StartNodeAt(cp, kGroup) })
	})

	t.Run("checkpoint-past-end", func(t *testing.T) {
		t.Parallel()
		b := tree.NewBuilder[kind](lang{}, "")
		b.StartNode(kRoot)
		b.Token(kWord, "a")
		b.Token(kWord, "b")
		cp := b.Checkpoint()
		b.FinishNode()
		assert.Panics(t, func() { b.StartNodeAt(cp, kGroup) })
	})

	t.Run("unbalanced", func(t *testing.T) {
		t.Parallel()
		b := tree.NewBuilder[kind](lang{}, "")
		b.StartNode(kRoot)
		b.Token(kWord, "a")
		_, err := b.Finish()
		require.ErrorIs(t, err, tree.ErrUnbalanced)
	})

	t.Run("invalid-kind", func(t *testing.T) {
		t.Parallel()
		b := tree.NewBuilder[kind](lang{}, "")
		b.StartNode(kRoot)
		b.StartNode(kindCount + 3)
		b.Token(kWord, "a")
		b.FinishNode()
		b.FinishNode()
		_, err := b.Finish()
		require.ErrorIs(t, err, errUnknownKind)

		b.StartNode(kRoot)
		b.Token(kindCount, "a")
		b.FinishNode()
		_, err = b.Finish()
		require.ErrorIs(t, err, errUnknownKind)

		b.StartNode(kRoot)
		b.Token(kWord, "a")
		b.StartNodeAt(b.Checkpoint(), kindCount)
		b.FinishNode()
		b.FinishNode()
		_, err = b.Finish()
		require.ErrorIs(t, err, errUnknownKind)

		b.StartNode(kRoot)
		b.FinishNode()
		_, err = b.Finish()
		require.NoError(t, err, "error must not outlive Finish")
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := tree.NewBuilder[kind](lang{}, "").Finish()
		require.ErrorIs(t, err, tree.ErrNoRoot)
	})

	t.Run("two-roots", func(t *testing.T) {
		t.Parallel()
		b := tree.NewBuilder[kind](lang{}, "")
		b.StartNode(kRoot)
		b.FinishNode()
		b.StartNode(kRoot)
		b.FinishNode()
		_, err := b.Finish()
		require.ErrorIs(t, err, tree.ErrNoRoot)
	})

	t.Run("bare-token", func(t *testing.T) {
		t.Parallel()
		b := tree.NewBuilder[kind](lang{}, "")
		b.Token(kWord, "a")
		_, err := b.Finish()
		require.ErrorIs(t, err, tree.ErrNoRoot)
	})
}

func TestBuilderReuse(t *testing.T) {
	t.Parallel()

	b := tree.NewBuilder[kind](lang{}, "reuse.tex")
	b.StartNode(kRoot)
	b.Token(kWord, "first")
	b.FinishNode()
	first, err := b.Finish()
	require.NoError(t, err)

	b.StartNode(kRoot)
	b.Token(kWord, "second")
	b.FinishNode()
	second, err := b.Finish()
	require.NoError(t, err)

	assert.Equal(t, "first", first.Text())
	assert.Equal(t, "second", second.Text())
	assert.Equal(t, "reuse.tex", second.File().Path())
}
