/*
Copyright 2022 by Milo Christiansen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package lex

import "fmt"

// Kind identifies what a token is.
type Kind int

const (
	// Structural
	KindEOF Kind = iota
	KindComment
	KindString
	KindNumber

	// Punctuation
	KindSemicolon    // ;
	KindColon        // :
	KindComma        // ,
	KindEquals       // =
	KindOpenParen    // (
	KindCloseParen   // )
	KindOpenBrace    // {
	KindCloseBrace   // }
	KindOpenBracket  // [
	KindCloseBracket // ]
	KindAsterisk     // *
	KindDash         // -
	KindSlash        // /
	KindBackslash    // \
	KindPlus         // +
	KindAmpersand    // &
	KindQuestion     // ?
	KindPeriod       // .
	KindLess         // <
	KindGreater      // >

	// Cells
	KindCell
	KindCellPolymorphic
	KindCellUncertain

	// Block format keywords
	KindNexus
	KindBegin
	KindEnd
	KindEndBlock
	KindTaxa
	KindCharacters
	KindData
	KindAssumptions
	KindNotes
	KindDimensions
	KindNTax
	KindNChar
	KindNewTaxa
	KindTaxLabels
	KindFormat
	KindCharLabels
	KindStateLabels
	KindCharStateLabels
	KindMatrix
	KindOptions
	KindLink
	KindBlockID
	KindEliminate
	KindTitle
	KindTypeSet
	KindText
	KindTaxon
	KindCharacter
	KindState
	KindLog

	// Line format keywords
	KindXRead
	KindCCode
	KindCNames
	KindComments
	KindMXRam
	KindNStates
	KindTaxName
	KindProc

	// Character ordering
	KindAll
)

var kindNames = map[Kind]string{
	KindEOF:     "end of input",
	KindComment: "comment",
	KindString:  "string",
	KindNumber:  "number",

	KindSemicolon:    "';'",
	KindColon:        "':'",
	KindComma:        "','",
	KindEquals:       "'='",
	KindOpenParen:    "'('",
	KindCloseParen:   "')'",
	KindOpenBrace:    "'{'",
	KindCloseBrace:   "'}'",
	KindOpenBracket:  "'['",
	KindCloseBracket: "']'",
	KindAsterisk:     "'*'",
	KindDash:         "'-'",
	KindSlash:        "'/'",
	KindBackslash:    "'\\'",
	KindPlus:         "'+'",
	KindAmpersand:    "'&'",
	KindQuestion:     "'?'",
	KindPeriod:       "'.'",
	KindLess:         "'<'",
	KindGreater:      "'>'",

	KindCell:            "cell",
	KindCellPolymorphic: "polymorphic cell",
	KindCellUncertain:   "uncertain cell",

	KindNexus:           "#NEXUS",
	KindBegin:           "BEGIN",
	KindEnd:             "END",
	KindEndBlock:        "ENDBLOCK",
	KindTaxa:            "TAXA",
	KindCharacters:      "CHARACTERS",
	KindData:            "DATA",
	KindAssumptions:     "ASSUMPTIONS",
	KindNotes:           "NOTES",
	KindDimensions:      "DIMENSIONS",
	KindNTax:            "NTAX",
	KindNChar:           "NCHAR",
	KindNewTaxa:         "NEWTAXA",
	KindTaxLabels:       "TAXLABELS",
	KindFormat:          "FORMAT",
	KindCharLabels:      "CHARLABELS",
	KindStateLabels:     "STATELABELS",
	KindCharStateLabels: "CHARSTATELABELS",
	KindMatrix:          "MATRIX",
	KindOptions:         "OPTIONS",
	KindLink:            "LINK",
	KindBlockID:         "BLOCKID",
	KindEliminate:       "ELIMINATE",
	KindTitle:           "TITLE",
	KindTypeSet:         "TYPESET",
	KindText:            "TEXT",
	KindTaxon:           "TAXON",
	KindCharacter:       "CHARACTER",
	KindState:           "STATE",
	KindLog:             "LOG",

	KindXRead:    "XREAD",
	KindCCode:    "CCODE",
	KindCNames:   "CNAMES",
	KindComments: "COMMENTS",
	KindMXRam:    "MXRAM",
	KindNStates:  "NSTATES",
	KindTaxName:  "TAXNAME",
	KindProc:     "PROC",

	KindAll: "ALL",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword returns true for the keyword kinds of either format.
func (k Kind) IsKeyword() bool {
	return k >= KindNexus && k <= KindAll
}

// punctuation maps the single character tokens shared by every grammar.
var punctuation = map[rune]Kind{
	';':  KindSemicolon,
	':':  KindColon,
	',':  KindComma,
	'=':  KindEquals,
	'(':  KindOpenParen,
	')':  KindCloseParen,
	'{':  KindOpenBrace,
	'}':  KindCloseBrace,
	'[':  KindOpenBracket,
	']':  KindCloseBracket,
	'*':  KindAsterisk,
	'-':  KindDash,
	'/':  KindSlash,
	'\\': KindBackslash,
	'+':  KindPlus,
	'&':  KindAmpersand,
	'?':  KindQuestion,
	'.':  KindPeriod,
	'<':  KindLess,
	'>':  KindGreater,
}

// Punctuation returns the punctuation kind for a single character.
func Punctuation(r rune) (Kind, bool) {
	k, ok := punctuation[r]
	return k, ok
}

// Token is a single lexical item. Pos is where the token text starts, which is where the reader is rewound
// to if the token is given back.
type Token struct {
	Pos   Position
	Kind  Kind
	Value string
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q at %v", t.Kind, t.Value, t.Pos)
}

// Is returns true if the token is any of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}
