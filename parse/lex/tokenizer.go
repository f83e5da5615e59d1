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

import "unicode"

// Tokenizer turns the characters of a Reader into tokens.
type Tokenizer interface {
	// Next scans and returns the next token. At the end of input a KindEOF token is returned.
	Next() (Token, error)

	// Reader returns the reader the tokenizer scans. The lexer uses this to give tokens back.
	Reader() Reader
}

// Base holds the reader plumbing shared by every tokenizer.
type Base struct {
	r Reader
}

// NewBase wraps a reader.
func NewBase(r Reader) Base {
	return Base{r: r}
}

func (b *Base) Reader() Reader {
	return b.r
}

// Reset moves the reader back to where it started.
func (b *Base) Reset() error {
	if sr, ok := b.r.(interface{ Start() Position }); ok {
		return b.r.SetPosition(sr.Start())
	}
	return b.r.SetPosition(Start)
}

func (b *Base) Position() Position {
	return b.r.Position()
}

// Finished returns true when the reader has no more input.
func (b *Base) Finished() bool {
	return b.r.AtEnd()
}

// skipWhitespace eats whitespace and returns the first non-whitespace character without consuming it.
func (b *Base) skipWhitespace() rune {
	c := b.r.Peek()
	for c != EOF && IsWhitespace(c) {
		b.r.Next()
		c = b.r.Peek()
	}
	return c
}

// IsWhitespace returns true for spaces, tabs, newlines and other unicode space characters.
func IsWhitespace(r rune) bool {
	return r != EOF && unicode.IsSpace(r)
}

// IsDigit returns true if r is a decimal digit.
func IsDigit(r rune) bool {
	// Non-arabic numerals never show up in these files.
	return r >= '0' && r <= '9'
}

// IsAlphanumeric returns true for unicode letters and decimal digits.
func IsAlphanumeric(r rune) bool {
	return r != EOF && (unicode.IsLetter(r) || IsDigit(r))
}

// IsNumeric returns true if s is an optionally signed integer or decimal number.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}

	digits, fraction, dot := 0, 0, false
	for _, c := range s {
		switch {
		case IsDigit(c) && dot:
			fraction++
		case IsDigit(c):
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	if dot {
		return digits > 0 && fraction > 0
	}
	return digits > 0
}
