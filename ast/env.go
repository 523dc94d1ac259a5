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

	"github.com/bufbuild/texsyntax/internal/iterx"
	"github.com/bufbuild/texsyntax/syntax"
)

var (
	envKinds      = syntax.NewSet(syntax.ItemEnv)
	beginKinds    = syntax.NewSet(syntax.ItemBegin)
	endKinds      = syntax.NewSet(syntax.ItemEnd)
	lrKinds       = syntax.NewSet(syntax.ItemLR)
	lrClauseKinds = syntax.NewSet(syntax.ClauseLR)
)

// EnvItem is an environment: a \begin{name} marker, a body, and an
// \end{name} marker.
//
// An unterminated environment has no end marker; everything else about it
// remains accessible.
type EnvItem struct{ view }

// Kinds implements [Item].
func (EnvItem) Kinds() syntax.Set { return envKinds }

// Begin returns the \begin marker.
func (e EnvItem) Begin() BeginItem {
	begin, _ := iterx.FindMap(e.node.Children(), Cast[BeginItem])
	return begin
}

// End returns the \end marker.
//
// Returns a zero view if the environment is unterminated.
func (e EnvItem) End() EndItem {
	end, _ := iterx.FindMap(e.node.Children(), Cast[EndItem])
	return end
}

// NameTok returns the environment's name, as spelled by its \begin marker.
func (e EnvItem) NameTok() syntax.Token {
	return e.Begin().Name()
}

// Name returns the text of [EnvItem.NameTok].
func (e EnvItem) Name() string {
	return e.NameTok().Text()
}

// Arguments returns an iterator over the arguments of the \begin marker.
// The \end marker's arguments, if any, are not included.
func (e EnvItem) Arguments() iter.Seq[ArgClause] {
	return e.Begin().Arguments()
}

// BeginItem is the \begin{name} marker of an environment, along with the
// environment's arguments.
type BeginItem struct{ view }

// Kinds implements [Item].
func (BeginItem) Kinds() syntax.Set { return beginKinds }

// Name returns the environment name token.
//
// Returns the nil token unless the marker starts with a
// [syntax.TokenCommandSym].
func (b BeginItem) Name() syntax.Token {
	return tokenOf(b.node.FirstToken(), syntax.TokenCommandSym)
}

// Arguments returns an iterator over the environment's arguments.
func (b BeginItem) Arguments() iter.Seq[ArgClause] {
	return arguments(b.node)
}

// EndItem is the \end{name} marker of an environment.
type EndItem struct{ view }

// Kinds implements [Item].
func (EndItem) Kinds() syntax.Set { return endKinds }

// Name returns the environment name token.
func (e EndItem) Name() syntax.Token {
	return tokenOf(e.node.FirstToken(), syntax.TokenCommandSym)
}

// LRItem is a \left ... \right pair with everything in between.
type LRItem struct{ view }

// Kinds implements [Item].
func (LRItem) Kinds() syntax.Set { return lrKinds }

// Left returns the \left clause, which must be the first child node.
func (l LRItem) Left() LRClause {
	left, _ := Cast[LRClause](l.node.FirstChild())
	return left
}

// Right returns the \right clause, which must be the last child node.
func (l LRItem) Right() LRClause {
	right, _ := Cast[LRClause](l.node.LastChild())
	return right
}

// LeftSym returns the delimiter following \left.
func (l LRItem) LeftSym() syntax.Token {
	return l.Left().Sym()
}

// RightSym returns the delimiter following \right.
func (l LRItem) RightSym() syntax.Token {
	return l.Right().Sym()
}

// LRClause is a \left or \right command together with its delimiter, such
// as \left( or \right.
type LRClause struct{ view }

// Kinds implements [Item].
func (LRClause) Kinds() syntax.Set { return lrClauseKinds }

// IsLeft returns whether this is a \left clause.
func (c LRClause) IsLeft() bool {
	return tokenOf(c.node.FirstToken(), syntax.ClauseCommandName).Text() == `\left`
}

// Sym returns the delimiter of this clause.
//
// Returns the nil token if the clause ends with the command name itself.
func (c LRClause) Sym() syntax.Token {
	tok := c.node.LastToken()
	if tok.IsZero() || tok.Kind() == syntax.ClauseCommandName {
		return syntax.Token{}
	}
	return tok
}
