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

import (
	"strings"
	"unicode/utf8"
)

// Grammar is the part of the shared scanner each file format overrides.
type Grammar interface {
	// IsKeyword maps upper-cased token text to a keyword kind.
	IsKeyword(upper string) (Kind, bool)

	// IsTerminator returns true for characters that always end an unquoted run and stand as their own token.
	IsTerminator(r rune) bool
}

// DefaultTerminators are the characters that end an unquoted run unless a grammar says otherwise.
const DefaultTerminators = ":,={;"

// Scanner is the lexical scanner shared by both file formats. It handles whitespace, bracket comments,
// quoting and keyword recognition; a Grammar supplies the keyword set and terminating characters.
type Scanner struct {
	Base
	grammar Grammar

	// BracketComments enables "[...]" comments, which may nest.
	BracketComments bool
}

// NewScanner creates a scanner over r for the given grammar.
func NewScanner(r Reader, g Grammar) Scanner {
	return Scanner{Base: NewBase(r), grammar: g}
}

func isQuote(r rune) bool {
	return r == '\'' || r == '"' || r == '`'
}

// Next scans one token.
func (s *Scanner) Next() (Token, error) {
	c := s.skipWhitespace()
	pos := s.r.Position()

	switch {
	case c == EOF:
		return Token{Pos: pos, Kind: KindEOF}, nil
	case c == '[' && s.BracketComments:
		return s.comment(pos)
	case isQuote(c):
		return s.quoted(pos)
	}
	return s.run(pos, false)
}

// comment reads a bracket comment, returning the raw text between the outermost brackets.
func (s *Scanner) comment(pos Position) (Token, error) {
	s.r.Next()
	start := s.r.Position()

	depth := 1
	for {
		end := s.r.Position()
		switch s.r.Next() {
		case EOF:
			return Token{}, ErrUnterminated{What: "comment", Pos: pos}
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return Token{Pos: pos, Kind: KindComment, Value: s.r.Slice(start, end)}, nil
			}
		}
	}
}

// quoted reads a quoted string. The opening quote character also closes the string.
func (s *Scanner) quoted(pos Position) (Token, error) {
	q := s.r.Next()
	if q == '`' {
		// Some exporters write `` where they mean a double quote.
		if s.r.Peek() == '`' {
			s.r.Next()
			q = '"'
		} else {
			q = '\''
		}
	}

	buf := []rune{}
	for {
		c := s.r.Next()
		switch c {
		case EOF:
			return Token{}, ErrUnterminated{What: "quoted string", Pos: pos}
		case q:
			if s.r.Peek() != q {
				return Token{Pos: pos, Kind: KindString, Value: string(buf)}, nil
			}
			s.r.Next()
			buf = append(buf, s.doubledQuote(q, buf))
		case '^':
			n := s.r.Next()
			if n == EOF {
				return Token{}, ErrUnterminated{What: "quoted string", Pos: pos}
			}
			if n == 'n' {
				n = '\n'
			}
			buf = append(buf, n)
		case '\\':
			n := s.r.Next()
			if n == EOF {
				return Token{}, ErrUnterminated{What: "quoted string", Pos: pos}
			}
			buf = append(buf, n)
		default:
			buf = append(buf, c)
		}
	}
}

// doubledQuote decides what an escaped (doubled) quote stands for. Between two word characters a doubled
// single quote is an apostrophe, anywhere else it is the exporter's way of writing a double quote.
func (s *Scanner) doubledQuote(q rune, buf []rune) rune {
	if q != '\'' {
		return q
	}
	if len(buf) > 0 && IsAlphanumeric(buf[len(buf)-1]) && IsAlphanumeric(s.r.Peek()) {
		return '\''
	}
	return '"'
}

// run reads an unquoted run of characters and classifies it. A run ends when the current or the next
// character is a terminator, before whitespace, and before the start of a comment. Unless literalQuotes is
// set a run also ends before a quote.
func (s *Scanner) run(pos Position, literalQuotes bool) (Token, error) {
	buf := []rune{}
	for {
		c := s.r.Next()
		if c == EOF {
			break
		}
		if c == '_' {
			buf = append(buf, ' ')
		} else {
			buf = append(buf, c)
		}
		if s.grammar.IsTerminator(c) {
			break
		}

		n := s.r.Peek()
		if n == EOF || IsWhitespace(n) || s.grammar.IsTerminator(n) {
			break
		}
		if n == '[' && s.BracketComments {
			break
		}
		if isQuote(n) && !literalQuotes {
			break
		}
	}

	return s.classify(pos, strings.TrimSpace(string(buf))), nil
}

// classify turns run text into a number, punctuation, keyword or string token.
func (s *Scanner) classify(pos Position, text string) Token {
	if IsNumeric(text) {
		return Token{Pos: pos, Kind: KindNumber, Value: text}
	}
	if utf8.RuneCountInString(text) == 1 {
		r, _ := utf8.DecodeRuneInString(text)
		if k, ok := Punctuation(r); ok {
			return Token{Pos: pos, Kind: k, Value: text}
		}
	}
	if k, ok := s.grammar.IsKeyword(strings.ToUpper(text)); ok {
		return Token{Pos: pos, Kind: k, Value: text}
	}
	return Token{Pos: pos, Kind: KindString, Value: text}
}

// isDefaultTerminator reports membership in DefaultTerminators.
func isDefaultTerminator(r rune) bool {
	return r != EOF && strings.ContainsRune(DefaultTerminators, r)
}
