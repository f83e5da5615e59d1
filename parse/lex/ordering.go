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

// orderingPunctuation stand alone inside a character ordering specification.
const orderingPunctuation = ",-;\\:"

// OrderingTokenizer reads character ordering ranges (the body of a TYPESET). "," "-" ";" "\" and ":" are
// single tokens, "ALL" is a keyword, digit runs are numbers and anything else is a free text run.
//
//	1-8\4 12-24\3;  =>  1 - 8 \ 4 12 - 24 \ 3 ;
type OrderingTokenizer struct {
	Base
}

func NewOrderingTokenizer(r Reader) *OrderingTokenizer {
	return &OrderingTokenizer{Base: NewBase(r)}
}

func (t *OrderingTokenizer) Next() (Token, error) {
	for {
		c := t.skipWhitespace()
		pos := t.r.Position()

		switch {
		case c == EOF:
			return Token{Pos: pos, Kind: KindEOF}, nil
		case c == '[':
			if err := skipComment(&t.Base, pos); err != nil {
				return Token{}, err
			}
			continue
		case strings.ContainsRune(orderingPunctuation, c):
			t.r.Next()
			k, _ := Punctuation(c)
			return Token{Pos: pos, Kind: k, Value: string(c)}, nil
		case IsDigit(c):
			buf := []rune{}
			for IsDigit(t.r.Peek()) {
				buf = append(buf, t.r.Next())
			}
			return Token{Pos: pos, Kind: KindNumber, Value: string(buf)}, nil
		}

		buf := []rune{}
		for {
			n := t.r.Peek()
			if n == EOF || n == '[' || IsWhitespace(n) || strings.ContainsRune(orderingPunctuation, n) {
				break
			}
			buf = append(buf, t.r.Next())
		}

		text := string(buf)
		switch {
		case strings.EqualFold(text, "ALL"):
			return Token{Pos: pos, Kind: KindAll, Value: text}, nil
		case text == ".":
			return Token{Pos: pos, Kind: KindPeriod, Value: text}, nil
		}
		return Token{Pos: pos, Kind: KindString, Value: text}, nil
	}
}
