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

package syntax

import "github.com/bufbuild/texsyntax/token"

// Classify maps a lexer token onto the syntax kind it becomes in a tree.
//
// Classify is total: tokens outside the lexer's alphabet classify as
// [TokenError].
func Classify(tok token.Token) Kind {
	switch tok.Kind {
	case token.Left, token.Right:
		return classifyBrace(tok)
	case token.LineBreak:
		return TokenLineBreak
	case token.Whitespace:
		return TokenWhiteSpace
	case token.LineComment:
		return TokenComment
	case token.Comma:
		return TokenComma
	case token.Tilde:
		return TokenTilde
	case token.Slash:
		return TokenSlash
	case token.Underscore:
		return TokenUnderscore
	case token.Caret:
		return TokenCaret
	case token.Apostrophe:
		return TokenApostrophe
	case token.Ditto:
		return TokenDitto
	case token.Semicolon:
		return TokenSemicolon
	case token.Hash:
		return TokenHash
	case token.Ampersand:
		return TokenAmpersand
	case token.NewLine:
		return ItemNewLine
	case token.Word, token.MacroArg:
		return TokenWord
	case token.Dollar:
		return TokenDollar
	case token.CommandName:
		switch tok.Command {
		case token.CommandErrorBeginEnvironment, token.CommandErrorEndEnvironment:
			return TokenError
		case token.CommandBeginEnvironment, token.CommandEndEnvironment:
			return TokenCommandSym
		default:
			return ClauseCommandName
		}
	default:
		return TokenError
	}
}

func classifyBrace(tok token.Token) Kind {
	left := tok.Kind == token.Left
	switch tok.Brace {
	case token.Curly:
		if left {
			return TokenLBrace
		}
		return TokenRBrace
	case token.Bracket:
		if left {
			return TokenLBracket
		}
		return TokenRBracket
	case token.Paren:
		if left {
			return TokenLParen
		}
		return TokenRParen
	default:
		return TokenError
	}
}
