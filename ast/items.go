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

package ast

import (
	"iter"
	"strings"

	"github.com/bufbuild/texsyntax/internal/iterx"
	"github.com/bufbuild/texsyntax/syntax"
)

var (
	rootKinds    = syntax.NewSet(syntax.ScopeRoot)
	formulaKinds = syntax.NewSet(syntax.ItemFormula)
	cmdKinds     = syntax.NewSet(syntax.ItemCmd)
	argKinds     = syntax.NewSet(syntax.ClauseArgument)
	groupKinds   = syntax.NewSet(syntax.ItemCurly, syntax.ItemBracket, syntax.ItemParen)
)

// Root is the top-level node of a document.
type Root struct{ view }

// Kinds implements [Item].
func (Root) Kinds() syntax.Set { return rootKinds }

// Items returns an iterator over the top-level items of the document.
//
// Only nodes are items. Top-level tokens, trivia included, are skipped.
func (r Root) Items() iter.Seq[syntax.Node] {
	return r.node.Children()
}

// FormulaItem is an inline formula, $...$, or a display formula, $$...$$.
type FormulaItem struct{ view }

// Kinds implements [Item].
func (FormulaItem) Kinds() syntax.Set { return formulaKinds }

// IsDisplay returns whether this formula is delimited by $$.
func (f FormulaItem) IsDisplay() bool {
	return f.opener() == "$$"
}

// IsInline returns whether this formula is delimited by $.
//
// A formula that does not start with a dollar token is neither inline nor
// display.
func (f FormulaItem) IsInline() bool {
	return f.opener() == "$"
}

func (f FormulaItem) opener() string {
	return tokenOf(f.node.FirstToken(), syntax.TokenDollar).Text()
}

// CmdItem is a command invocation with its arguments, such as
// \documentclass{article}.
//
// Its name is a direct [syntax.ClauseCommandName] token child; arguments are
// [syntax.ClauseArgument] node children.
type CmdItem struct{ view }

// Kinds implements [Item].
func (CmdItem) Kinds() syntax.Set { return cmdKinds }

// NameTok returns the command name token.
//
// Returns the nil token if there is none.
func (c CmdItem) NameTok() syntax.Token {
	tok, _ := iterx.FindMap(c.node.ChildrenWithTokens(), func(e syntax.Element) (syntax.Token, bool) {
		tok := tokenOf(e.AsToken(), syntax.ClauseCommandName)
		return tok, !tok.IsZero()
	})
	return tok
}

// Name returns the command name without its leading backslash.
func (c CmdItem) Name() string {
	return strings.TrimPrefix(c.NameTok().Text(), `\`)
}

// Arguments returns an iterator over this command's arguments, in order.
func (c CmdItem) Arguments() iter.Seq[ArgClause] {
	return arguments(c.node)
}

// ArgClause is one argument of a command or environment.
type ArgClause struct{ view }

// Kinds implements [Item].
func (ArgClause) Kinds() syntax.Set { return argKinds }

// Group returns the delimited group this argument consists of.
//
// Returns a zero view for an undelimited argument, such as the x in \hat x.
func (a ArgClause) Group() GroupItem {
	group, _ := iterx.FindMap(a.node.Children(), Cast[GroupItem])
	return group
}

// Contents returns an iterator over every element of this argument.
func (a ArgClause) Contents() iter.Seq[syntax.Element] {
	return a.node.ChildrenWithTokens()
}

// GroupItem is a group delimited by braces, brackets or parentheses.
type GroupItem struct{ view }

// Kinds implements [Item].
func (GroupItem) Kinds() syntax.Set { return groupKinds }

// Open returns the opening delimiter.
//
// Returns the nil token if it is missing.
func (g GroupItem) Open() syntax.Token {
	open, _ := g.delimiters()
	return tokenOf(g.node.FirstChildOrToken().AsToken(), open)
}

// Close returns the closing delimiter.
//
// Returns the nil token if it is missing, as for a group cut off by the end of
// the file.
func (g GroupItem) Close() syntax.Token {
	_, closing := g.delimiters()
	return tokenOf(g.node.LastChildOrToken().AsToken(), closing)
}

// Contents returns an iterator over the elements between the delimiters.
func (g GroupItem) Contents() iter.Seq[syntax.Element] {
	return func(yield func(syntax.Element) bool) {
		open, closing := g.Open(), g.Close()
		for e := range g.node.ChildrenWithTokens() {
			if tok := e.AsToken(); !tok.IsZero() && (tok == open || tok == closing) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (g GroupItem) delimiters() (open, closing syntax.Kind) {
	switch g.node.Kind() {
	case syntax.ItemCurly:
		return syntax.TokenLBrace, syntax.TokenRBrace
	case syntax.ItemBracket:
		return syntax.TokenLBracket, syntax.TokenRBracket
	case syntax.ItemParen:
		return syntax.TokenLParen, syntax.TokenRParen
	default:
		return syntax.TokenError, syntax.TokenError
	}
}
