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
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/texsyntax/ast"
	"github.com/bufbuild/texsyntax/internal/iterx"
	"github.com/bufbuild/texsyntax/syntax"
)

// parse builds a tree from a YAML description.
//
// Every element is a map with a single key, the name of its kind. A string
// value makes a token with that text; a list value makes a node with those
// children; a null value makes an empty node.
func parse(t *testing.T, path, text string) *syntax.Tree {
	t.Helper()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(text), &doc))
	require.Len(t, doc.Content, 1, "%s: expected one document", path)

	b := syntax.NewBuilder(path)
	build(t, b, doc.Content[0])
	tree, err := b.Finish()
	require.NoError(t, err)
	return tree
}

func build(t *testing.T, b *syntax.Builder, n *yaml.Node) {
	t.Helper()

	require.Equal(t, yaml.MappingNode, n.Kind, "line %d: expected a map", n.Line)
	require.Len(t, n.Content, 2, "line %d: expected exactly one key", n.Line)

	key, value := n.Content[0], n.Content[1]
	kind, ok := syntax.KindByName(key.Value)
	require.True(t, ok, "line %d: unknown kind %q", key.Line, key.Value)

	switch {
	case value.Kind == yaml.ScalarNode && value.Tag == "!!null":
		b.StartNode(kind)
		b.FinishNode()
	case value.Kind == yaml.ScalarNode:
		b.Token(kind, value.Value)
	case value.Kind == yaml.SequenceNode:
		b.StartNode(kind)
		for _, child := range value.Content {
			build(t, b, child)
		}
		b.FinishNode()
	default:
		t.Fatalf("line %d: expected a string, list, or null", value.Line)
	}
}

// render lists every node of the tree that has a view, along with what the
// view reports about it.
func render(tree *syntax.Tree) string {
	var out strings.Builder
	fmt.Fprintf(&out, "# text: %q\n", tree.Text())
	for node := range tree.Root().Descendants() {
		if item := ast.Classify(node); item != nil {
			fmt.Fprintf(&out, "%v %s\n", node, describe(item))
		}
	}
	return out.String()
}

func describe(item ast.Item) string {
	switch item := item.(type) {
	case ast.Root:
		return fmt.Sprintf("Root items=%d", iterx.Count(item.Items()))
	case ast.FormulaItem:
		return fmt.Sprintf("FormulaItem display=%v inline=%v", item.IsDisplay(), item.IsInline())
	case ast.CmdItem:
		return fmt.Sprintf("CmdItem name=%q args=%d", item.Name(), iterx.Count(item.Arguments()))
	case ast.EnvItem:
		return fmt.Sprintf("EnvItem name=%q args=%d end=%v",
			item.Name(), iterx.Count(item.Arguments()), !item.End().IsZero())
	case ast.BeginItem:
		return fmt.Sprintf("BeginItem name=%q args=%d", item.Name().Text(), iterx.Count(item.Arguments()))
	case ast.EndItem:
		return fmt.Sprintf("EndItem name=%q", item.Name().Text())
	case ast.LRItem:
		return fmt.Sprintf("LRItem left=%q right=%q", item.LeftSym().Text(), item.RightSym().Text())
	case ast.LRClause:
		return fmt.Sprintf("LRClause left=%v sym=%q", item.IsLeft(), item.Sym().Text())
	case ast.GroupItem:
		var contents strings.Builder
		for e := range item.Contents() {
			contents.WriteString(e.Text())
		}
		return fmt.Sprintf("GroupItem open=%q close=%q contents=%q",
			item.Open().Text(), item.Close().Text(), contents.String())
	case ast.ArgClause:
		group := "none"
		if g := item.Group(); !g.IsZero() {
			group = g.Syntax().Kind().String()
		}
		return fmt.Sprintf("ArgClause group=%s", group)
	default:
		panic(fmt.Sprintf("unhandled item %T", item))
	}
}
