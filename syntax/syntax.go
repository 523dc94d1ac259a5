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

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a raw value does not correspond to any
// [Kind].
var ErrOutOfRange = errors.New("syntax: raw kind out of range")

// Raw returns the raw representation of this kind.
func (k Kind) Raw() uint16 {
	return uint16(k)
}

// FromRaw converts a raw representation back into a [Kind].
//
// Returns an error wrapping [ErrOutOfRange] if raw >= [KindCount].
func FromRaw(raw uint16) (Kind, error) {
	if int(raw) >= KindCount {
		return 0, fmt.Errorf("%w: %d (want less than %d)", ErrOutOfRange, raw, KindCount)
	}
	return Kind(raw), nil
}

// IsValid returns whether this is one of the declared kinds.
func (k Kind) IsValid() bool {
	return int(k) < KindCount
}

// IsTrivia returns whether this kind carries no meaning for consumers of the
// tree: whitespace, comments, line breaks and paragraph breaks. Trivia stays in
// the tree only so that the source can be reproduced exactly.
func (k Kind) IsTrivia() bool {
	return k.properties()&trivia != 0
}

// IsToken returns whether this is one of the Token* kinds.
func (k Kind) IsToken() bool {
	return k.properties()&familyToken != 0
}

// IsClause returns whether this is one of the Clause* kinds.
func (k Kind) IsClause() bool {
	return k.properties()&familyClause != 0
}

// IsItem returns whether this is one of the Item* kinds.
func (k Kind) IsItem() bool {
	return k.properties()&familyItem != 0
}

// IsScope returns whether this is one of the Scope* kinds.
func (k Kind) IsScope() bool {
	return k.properties()&familyScope != 0
}

type property uint8

const (
	familyToken property = 1 << iota
	familyClause
	familyItem
	familyScope

	trivia
)

func (k Kind) properties() property {
	if int(k) < len(properties) {
		return properties[k]
	}
	return 0
}

// properties is a table of kind properties, stored as bitsets.
var properties = [...]property{
	TokenError:      familyToken,
	TokenLineBreak:  familyToken | trivia,
	TokenWhiteSpace: familyToken | trivia,
	TokenComment:    familyToken | trivia,
	TokenLBrace:     familyToken,
	TokenRBrace:     familyToken,
	TokenLBracket:   familyToken,
	TokenRBracket:   familyToken,
	TokenLParen:     familyToken,
	TokenRParen:     familyToken,
	TokenComma:      familyToken,
	TokenTilde:      familyToken,
	TokenSlash:      familyToken,
	TokenWord:       familyToken,
	TokenDollar:     familyToken,
	TokenAmpersand:  familyToken,
	TokenHash:       familyToken,
	TokenUnderscore: familyToken,
	TokenCaret:      familyToken,
	TokenApostrophe: familyToken,
	TokenDitto:      familyToken,
	TokenSemicolon:  familyToken,
	TokenCommandSym: familyToken,

	ClauseCommandName: familyClause,
	ClauseArgument:    familyClause,
	ClauseLR:          familyClause,

	ItemNewLine:         familyItem | trivia,
	ItemText:            familyItem,
	ItemCurly:           familyItem,
	ItemBracket:         familyItem,
	ItemParen:           familyItem,
	ItemCmd:             familyItem,
	ItemEnv:             familyItem,
	ItemLR:              familyItem,
	ItemBegin:           familyItem,
	ItemEnd:             familyItem,
	ItemBlockComment:    familyItem,
	ItemTypstCode:       familyItem,
	ItemAttachComponent: familyItem,
	ItemFormula:         familyItem,

	ScopeRoot: familyScope,
}
