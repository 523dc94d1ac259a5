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
	"github.com/bufbuild/texsyntax/source"
	"github.com/bufbuild/texsyntax/syntax"
)

// Item is any view type in this package.
//
// The set of implementations is closed; a type switch over an Item returned
// by [Classify] is exhaustive if it covers every view type.
type Item interface {
	source.Spanner

	// Syntax returns the node this view wraps.
	Syntax() syntax.Node
	// Kinds returns the kinds of node this view accepts.
	Kinds() syntax.Set

	item()
}

// castable is the shape shared by every view.
type castable interface {
	~struct{ view }
	Kinds() syntax.Set
}

// Cast wraps node in the view V, if node's kind is one V accepts.
//
// Returns the zero V and false otherwise, including for the nil node.
func Cast[V castable](node syntax.Node) (V, bool) {
	if node.IsZero() || !CanCast[V](node.Kind()) {
		var zero V
		return zero, false
	}
	return V(struct{ view }{view{node}}), true
}

// CanCast returns whether the view V accepts nodes of the given kind.
func CanCast[V castable](kind syntax.Kind) bool {
	var zero V
	return zero.Kinds().Has(kind)
}

// Classify wraps node in whichever view accepts its kind.
//
// Returns nil if no view does.
func Classify(node syntax.Node) Item {
	if node.IsZero() {
		return nil
	}

	switch node.Kind() {
	case syntax.ScopeRoot:
		return wrap[Root](node)
	case syntax.ItemFormula:
		return wrap[FormulaItem](node)
	case syntax.ItemCmd:
		return wrap[CmdItem](node)
	case syntax.ItemEnv:
		return wrap[EnvItem](node)
	case syntax.ItemBegin:
		return wrap[BeginItem](node)
	case syntax.ItemEnd:
		return wrap[EndItem](node)
	case syntax.ItemLR:
		return wrap[LRItem](node)
	case syntax.ClauseLR:
		return wrap[LRClause](node)
	case syntax.ItemCurly, syntax.ItemBracket, syntax.ItemParen:
		return wrap[GroupItem](node)
	case syntax.ClauseArgument:
		return wrap[ArgClause](node)
	default:
		return nil
	}
}

func wrap[V castable](node syntax.Node) V {
	return V(struct{ view }{view{node}})
}

// view is embedded in every view type.
type view struct {
	node syntax.Node
}

// Syntax returns the node this view wraps.
func (v view) Syntax() syntax.Node {
	return v.node
}

// IsZero returns whether this is a zero view, which wraps the nil node.
func (v view) IsZero() bool {
	return v.node.IsZero()
}

// Span implements [source.Spanner].
func (v view) Span() source.Span {
	return v.node.Span()
}

// Text returns the source text of the wrapped node.
func (v view) Text() string {
	return v.node.Text()
}

// String implements [fmt.Stringer].
func (v view) String() string {
	return v.node.String()
}

func (view) item() {}

// tokenOf returns tok if it has the given kind, and the nil token otherwise.
func tokenOf(tok syntax.Token, kind syntax.Kind) syntax.Token {
	if tok.IsZero() || tok.Kind() != kind {
		return syntax.Token{}
	}
	return tok
}

// arguments returns an iterator over the argument clauses directly under
// node.
func arguments(node syntax.Node) iter.Seq[ArgClause] {
	return iterx.FilterMap(node.Children(), Cast[ArgClause])
}
