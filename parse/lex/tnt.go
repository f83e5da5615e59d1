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

import "strings"

var tntKeywords = map[string]Kind{
	"XREAD":    KindXRead,
	"CCODE":    KindCCode,
	"CNAMES":   KindCNames,
	"COMMENTS": KindComments,
	"MXRAM":    KindMXRam,
	"NSTATES":  KindNStates,
	"TAXNAME":  KindTaxName,
	"PROC":     KindProc,
}

// tntTerminators drops '=' from the default set, it has no special meaning in the line format.
const tntTerminators = ":,{;"

// TNTTokenizer is the full tokenizer for the line oriented (TNT) format.
type TNTTokenizer struct {
	Scanner
}

// NewTNTTokenizer creates a line format tokenizer. There are no bracket comments in this format, brackets
// are data.
func NewTNTTokenizer(r Reader) *TNTTokenizer {
	t := &TNTTokenizer{}
	t.Scanner = NewScanner(r, t)
	return t
}

func (t *TNTTokenizer) IsKeyword(upper string) (Kind, bool) {
	k, ok := tntKeywords[upper]
	return k, ok
}

func (t *TNTTokenizer) IsTerminator(r rune) bool {
	return r != EOF && strings.ContainsRune(tntTerminators, r)
}

// Next scans one token. A quote only opens a string when it is the first character of a token; a quote in
// the middle of a name (Darwin's) is an ordinary character here.
func (t *TNTTokenizer) Next() (Token, error) {
	c := t.skipWhitespace()
	if c != EOF && !isQuote(c) {
		return t.run(t.r.Position(), true)
	}
	return t.Scanner.Next()
}
