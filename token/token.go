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

package token

import (
	"fmt"
	"iter"
)

// MaxMacroArg is the largest macro argument placeholder, `#9`.
const MaxMacroArg = 9

// Token is one variant of the lexer's alphabet.
//
// Only the payload field that matches Kind is meaningful; the others are
// zero. Token does not carry text: the lexer pairs each Token with the slice
// of source it covers.
type Token struct {
	Kind Kind

	Brace   Brace   // For Left and Right.
	Command Command // For CommandName.
	Arg     uint8   // For MacroArg, the placeholder number.
}

// Of returns a token of a kind that carries no payload.
func Of(kind Kind) Token {
	return Token{Kind: kind}
}

// NewLeft returns an opening delimiter token.
func NewLeft(brace Brace) Token {
	return Token{Kind: Left, Brace: brace}
}

// NewRight returns a closing delimiter token.
func NewRight(brace Brace) Token {
	return Token{Kind: Right, Brace: brace}
}

// NewCommandName returns a command name token.
func NewCommandName(cmd Command) Token {
	return Token{Kind: CommandName, Command: cmd}
}

// NewMacroArg returns a macro argument placeholder token for #n.
func NewMacroArg(n uint8) Token {
	return Token{Kind: MacroArg, Arg: n}
}

// Variants returns an iterator over every distinct token in the alphabet:
// each payload-free kind once, Left and Right once per [Brace], CommandName
// once per [Command], and MacroArg once per placeholder number.
func Variants() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for kind := range Kinds() {
			switch kind {
			case Left, Right:
				for brace := range Braces() {
					if !yield(Token{Kind: kind, Brace: brace}) {
						return
					}
				}
			case CommandName:
				for cmd := range Commands() {
					if !yield(NewCommandName(cmd)) {
						return
					}
				}
			case MacroArg:
				for n := uint8(1); n <= MaxMacroArg; n++ {
					if !yield(NewMacroArg(n)) {
						return
					}
				}
			default:
				if !yield(Of(kind)) {
					return
				}
			}
		}
	}
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	switch t.Kind {
	case Left, Right:
		return fmt.Sprintf("%v(%v)", t.Kind, t.Brace)
	case CommandName:
		return fmt.Sprintf("%v(%v)", t.Kind, t.Command)
	case MacroArg:
		return fmt.Sprintf("%v(%d)", t.Kind, t.Arg)
	default:
		return t.Kind.String()
	}
}
