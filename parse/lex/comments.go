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

// CommentsTokenizer reads a free text note. Everything up to a ';' that ends a line (or the input) is one
// string token, so the body may contain punctuation and even semicolons in the middle of a line.
type CommentsTokenizer struct {
	Base
}

func NewCommentsTokenizer(r Reader) *CommentsTokenizer {
	return &CommentsTokenizer{Base: NewBase(r)}
}

func (t *CommentsTokenizer) Next() (Token, error) {
	c := t.skipWhitespace()
	pos := t.r.Position()
	if c == EOF {
		return Token{Pos: pos, Kind: KindEOF}, nil
	}

	for {
		end := t.r.Position()
		c := t.r.Next()
		if c == EOF {
			return Token{Pos: pos, Kind: KindString, Value: strings.TrimSpace(t.r.Slice(pos, end))}, nil
		}
		if c == ';' {
			n := t.r.Peek()
			if n == EOF || n == '\n' {
				return Token{Pos: pos, Kind: KindString, Value: strings.TrimSpace(t.r.Slice(pos, end))}, nil
			}
		}
	}
}
