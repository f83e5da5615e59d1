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

// CostCodeTokenizer reads the arguments of a CCODE command. Every token is a single punctuation character
// or a run of digits, there are no strings.
type CostCodeTokenizer struct {
	Base
}

func NewCostCodeTokenizer(r Reader) *CostCodeTokenizer {
	return &CostCodeTokenizer{Base: NewBase(r)}
}

func (t *CostCodeTokenizer) Next() (Token, error) {
	c := t.skipWhitespace()
	pos := t.r.Position()
	if c == EOF {
		return Token{Pos: pos, Kind: KindEOF}, nil
	}

	if IsDigit(c) {
		buf := []rune{}
		for IsDigit(t.r.Peek()) {
			buf = append(buf, t.r.Next())
		}
		return Token{Pos: pos, Kind: KindNumber, Value: string(buf)}, nil
	}

	t.r.Next()
	if k, ok := Punctuation(c); ok {
		return Token{Pos: pos, Kind: k, Value: string(c)}, nil
	}
	// Let the parser complain about it.
	return Token{Pos: pos, Kind: KindString, Value: string(c)}, nil
}
