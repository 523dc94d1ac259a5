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

package ast_test

import (
	"slices"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/texsyntax/ast"
	"github.com/bufbuild/texsyntax/internal/corpora"
	"github.com/bufbuild/texsyntax/internal/iterx"
	"github.com/bufbuild/texsyntax/syntax"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpora.Corpus{
		Root:      "testdata",
		Refresh:   "TEXSYNTAX_REFRESH",
		Extension: "yaml",
		Outputs:   []corpora.Output{{Extension: "views"}},
		Test: func(t *testing.T, path, text string) []string {
			return []string{render(parse(t, path, text))}
		},
	}.Run(t)
}

// first returns the first node of the given kind in the tree.
func first(t *testing.T, tree *syntax.Tree, kind syntax.Kind) syntax.Node {
	t.Helper()
	node, ok := iterx.Find(tree.Root().Descendants(), func(n syntax.Node) bool {
		return n.Kind() == kind
	})
	require.True(t, ok, "no %v in:\n%s", kind, tree.Dump())
	return node
}

func TestFormula(t *testing.T) {
	t.Parallel()

	tree := parse(t, "formula.tex", `
ScopeRoot:
  - ItemFormula:
      - TokenDollar: '$$'
      - ItemText:
          - TokenWord: x
      - TokenDollar: '$$'
  - ItemFormula:
      - TokenDollar: '$'
      - ItemText:
          - TokenWord: y
      - TokenDollar: '$'
`)

	formulas := slices.Collect(iterx.FilterMap(tree.Root().Children(), ast.Cast[ast.FormulaItem]))
	require.Len(t, formulas, 2)

	assert.True(t, formulas[0].IsDisplay())
	assert.False(t, formulas[0].IsInline())
	assert.False(t, formulas[1].IsDisplay())
	assert.True(t, formulas[1].IsInline())
}

func TestCommand(t *testing.T) {
	t.Parallel()

	tree := parse(t, "command.tex", `
ScopeRoot:
  - ItemCmd:
      - ClauseCommandName: documentclass
      - ClauseArgument:
          - ItemCurly:
              - TokenLBrace: '{'
              - ItemText:
                  - TokenWord: article
              - TokenRBrace: '}'
`)

	cmd, ok := ast.Cast[ast.CmdItem](first(t, tree, syntax.ItemCmd))
	require.True(t, ok)
	assert.Equal(t, "documentclass", cmd.NameTok().Text())
	assert.Equal(t, syntax.ClauseCommandName, cmd.NameTok().Kind())
	assert.Equal(t, "documentclass", cmd.Name())

	args := slices.Collect(cmd.Arguments())
	require.Len(t, args, 1)
	group := args[0].Group()
	assert.Equal(t, syntax.ItemCurly, group.Syntax().Kind())
	assert.Equal(t, "{", group.Open().Text())
	assert.Equal(t, "}", group.Close().Text())
	assert.Equal(t, 1, iterx.Count(args[0].Contents()))

	contents := slices.Collect(group.Contents())
	require.Len(t, contents, 1)
	assert.Equal(t, syntax.ItemText, contents[0].Kind())
	assert.Equal(t, "article", contents[0].Text())
}

func TestCommandWithoutName(t *testing.T) {
	t.Parallel()

	tree := parse(t, "noname.tex", `
ScopeRoot:
  - ItemCmd:
      - ClauseArgument:
          - TokenWord: x
  - ItemCmd:
      - ClauseCommandName: '\relax'
`)

	cmd, ok := ast.Cast[ast.CmdItem](tree.Root().FirstChild())
	require.True(t, ok)
	assert.True(t, cmd.NameTok().IsZero())
	assert.Empty(t, cmd.Name())
	assert.Equal(t, 1, iterx.Count(cmd.Arguments()))

	// The rest of the tree is still reachable.
	next, ok := ast.Cast[ast.CmdItem](cmd.Syntax().NextSibling())
	require.True(t, ok)
	assert.Equal(t, "relax", next.Name())
	assert.Equal(t, syntax.ScopeRoot, cmd.Syntax().Parent().Kind())
}

func TestEnvironment(t *testing.T) {
	t.Parallel()

	tree := parse(t, "env.tex", `
ScopeRoot:
  - ItemEnv:
      - ItemBegin:
          - TokenCommandSym: theorem
          - ClauseArgument:
              - ItemBracket:
                  - TokenLBracket: '['
                  - TokenWord: Euler
                  - TokenRBracket: ']'
      - ItemText:
          - TokenWord: body
      - ItemEnd:
          - TokenCommandSym: theorem
          - ClauseArgument:
              - TokenWord: stray
`)

	env, ok := ast.Cast[ast.EnvItem](first(t, tree, syntax.ItemEnv))
	require.True(t, ok)

	type facts struct {
		Name, BeginName, EndName string
		HasEnd                   bool
		Args                     []string
	}
	got := facts{
		Name:      env.NameTok().Text(),
		BeginName: env.Begin().Name().Text(),
		EndName:   env.End().Name().Text(),
		HasEnd:    !env.End().IsZero(),
	}
	for arg := range env.Arguments() {
		got.Args = append(got.Args, arg.Syntax().Text())
	}

	want := facts{
		Name:      "theorem",
		BeginName: "theorem",
		EndName:   "theorem",
		HasEnd:    true,
		Args:      []string{"[Euler]"},
	}
	assert.Equal(t, want, got, repr.String(got, repr.Indent("  ")))
	assert.Equal(t, "theorem", env.Name())
	assert.Equal(t, slices.Collect(env.Begin().Arguments()), slices.Collect(env.Arguments()))
}

func TestUnterminatedEnvironment(t *testing.T) {
	t.Parallel()

	tree := parse(t, "open.tex", `
ScopeRoot:
  - ItemEnv:
      - ItemBegin:
          - TokenCommandSym: proof
      - ItemText:
          - TokenWord: body
`)

	env, ok := ast.Cast[ast.EnvItem](first(t, tree, syntax.ItemEnv))
	require.True(t, ok)
	assert.Equal(t, "proof", env.Name())
	assert.True(t, env.End().IsZero())
	assert.True(t, env.End().Name().IsZero())
	assert.Zero(t, iterx.Count(env.Arguments()))
}

func TestLR(t *testing.T) {
	t.Parallel()

	tree := parse(t, "lr.tex", `
ScopeRoot:
  - ItemLR:
      - ClauseLR:
          - ClauseCommandName: '\left'
          - TokenLParen: '('
      - ItemText:
          - TokenWord: x
      - ClauseLR:
          - ClauseCommandName: '\right'
          - TokenRParen: ')'
`)

	lr, ok := ast.Cast[ast.LRItem](first(t, tree, syntax.ItemLR))
	require.True(t, ok)

	left, right := lr.Left(), lr.Right()
	assert.True(t, left.IsLeft())
	assert.Equal(t, "(", left.Sym().Text())
	assert.False(t, right.IsLeft())
	assert.Equal(t, ")", right.Sym().Text())

	assert.Equal(t, left.Sym(), lr.LeftSym())
	assert.Equal(t, right.Sym(), lr.RightSym())
	assert.Equal(t, syntax.TokenRParen, lr.RightSym().Kind())
}

func TestRootItems(t *testing.T) {
	t.Parallel()

	tree := parse(t, "root.tex", `
ScopeRoot:
  - ItemText:
      - TokenWord: a
  - ItemNewLine: "\n\n"
  - TokenWord: loose
  - TokenWhiteSpace: " "
  - ItemText:
      - TokenWord: b
`)

	root, ok := ast.Cast[ast.Root](tree.Root())
	require.True(t, ok)
	var texts []string
	for item := range root.Items() {
		texts = append(texts, item.Text())
	}
	assert.Equal(t, []string{"a", "b"}, texts)
	assert.Equal(t, "a\n\nloose b", root.Text())
}
