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

// EOF is returned by Reader.Next and Reader.Peek when there is no more input.
const EOF rune = -1

// Reader is a seekable character source. All carriage returns are normalized: "\r\n" and a lone "\r" are both
// read as a single '\n'.
//
// Readers must support arbitrary seeking so that tokens can be given back (the lexer rewinds to the start of a
// buffered token) and so that bounded sub-readers can be opened at, and synced back to, any position.
type Reader interface {
	// Next consumes and returns the next character, or EOF.
	Next() rune
	// Peek returns the next character without consuming it, or EOF.
	Peek() rune

	Position() Position
	SetPosition(p Position) error

	AtEnd() bool

	// Content returns the full backing text, shared by every reader opened over it.
	Content() string
	// Slice returns the raw backing text between two positions.
	Slice(from, to Position) string
}

// decode reads the character at offset without reading past limit. Line endings are normalized.
func decode(text string, offset, limit int) (rune, int) {
	if offset >= limit {
		return EOF, 0
	}
	r, w := utf8.DecodeRuneInString(text[offset:limit])
	if r == '\r' {
		if offset+1 < limit && text[offset+1] == '\n' {
			return '\n', 2
		}
		return '\n', 1
	}
	return r, w
}

func slice(text string, from, to Position) string {
	a, b := from.Offset, to.Offset
	if a < 0 {
		a = 0
	}
	if b > len(text) {
		b = len(text)
	}
	if a >= b {
		return ""
	}
	return text[a:b]
}

// StringReader reads from a whole in-memory string.
type StringReader struct {
	text string
	pos  Position
}

// NewStringReader returns a reader positioned at the start of text.
func NewStringReader(text string) *StringReader {
	return &StringReader{text: text, pos: Start}
}

func (r *StringReader) Next() rune {
	c, w := decode(r.text, r.pos.Offset, len(r.text))
	if w == 0 {
		return EOF
	}
	r.pos = r.pos.advance(c, w)
	return c
}

func (r *StringReader) Peek() rune {
	c, _ := decode(r.text, r.pos.Offset, len(r.text))
	return c
}

func (r *StringReader) Position() Position {
	return r.pos
}

func (r *StringReader) SetPosition(p Position) error {
	if p.Offset < 0 || p.Offset > len(r.text) {
		return ErrSeek{Pos: p}
	}
	r.pos = p
	return nil
}

func (r *StringReader) AtEnd() bool {
	return r.pos.Offset >= len(r.text)
}

func (r *StringReader) Content() string {
	return r.text
}

func (r *StringReader) Slice(from, to Position) string {
	return slice(r.text, from, to)
}

// SubstringReader is a bounded view over another reader's content. It starts where its parent currently is
// and ends just after the first of its stop characters (or at the end of the content). The end is found
// lazily, the first time it is needed.
//
// A SubstringReader never moves its parent: when the caller is done with the region it syncs the parent
// with parent.SetPosition(sub.Position()).
type SubstringReader struct {
	text  string
	stops string

	start Position
	pos   Position
	end   int // -1 until computed
}

// NewSubstringReader opens a bounded reader at the parent's current position.
func NewSubstringReader(parent Reader, stops string) *SubstringReader {
	return &SubstringReader{
		text:  parent.Content(),
		stops: stops,
		start: parent.Position(),
		pos:   parent.Position(),
		end:   -1,
	}
}

// limit returns the end offset, including the stop character.
func (r *SubstringReader) limit() int {
	if r.end >= 0 {
		return r.end
	}

	i := r.start.Offset
	for i < len(r.text) {
		c, w := decode(r.text, i, len(r.text))
		i += w
		if strings.ContainsRune(r.stops, c) {
			break
		}
	}
	r.end = i
	return r.end
}

func (r *SubstringReader) Next() rune {
	c, w := decode(r.text, r.pos.Offset, r.limit())
	if w == 0 {
		return EOF
	}
	r.pos = r.pos.advance(c, w)
	return c
}

func (r *SubstringReader) Peek() rune {
	c, _ := decode(r.text, r.pos.Offset, r.limit())
	return c
}

func (r *SubstringReader) Position() Position {
	return r.pos
}

// SetPosition moves the reader. Positions outside of the bounded region are rejected.
func (r *SubstringReader) SetPosition(p Position) error {
	if p.Offset < r.start.Offset || p.Offset > r.limit() {
		return ErrSeek{Pos: p}
	}
	r.pos = p
	return nil
}

// AtEnd is true once the stop character has been consumed or the content is exhausted.
func (r *SubstringReader) AtEnd() bool {
	return r.pos.Offset >= r.limit()
}

func (r *SubstringReader) Content() string {
	return r.text
}

func (r *SubstringReader) Slice(from, to Position) string {
	return slice(r.text, from, to)
}

// Start returns the position the reader was opened at.
func (r *SubstringReader) Start() Position {
	return r.start
}
