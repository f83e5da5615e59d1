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

/*
The Lexer is a one token lookahead buffer over a replaceable tokenizer.

Grammars for these formats keep switching tokenizers: a matrix row is read by a cell tokenizer, a CCODE by
the cost code tokenizer, and so on. The active tokenizer lives on a stack, Push makes a new one active and Pop
goes back. Any token sitting in the lookahead buffer when the tokenizer changes is given back first, by
rewinding the reader to where the token started, so the new tokenizer scans from exactly the place the old
one had not committed to yet.
*/

// Lexer provides lookahead and assertions over the active tokenizer.
type Lexer struct {
	active Tokenizer
	stack  []Tokenizer

	tok  Token
	full bool

	err    error
	ignore map[Kind]bool
}

// NewLexer creates a lexer with t as the bottom tokenizer.
func NewLexer(t Tokenizer) *Lexer {
	return &Lexer{active: t, ignore: map[Kind]bool{}}
}

// Ignore makes the lexer silently drop tokens of the given kinds (usually comments).
func (l *Lexer) Ignore(kinds ...Kind) {
	for _, k := range kinds {
		l.ignore[k] = true
	}
}

// fill makes sure the lookahead buffer holds a token. Once a tokenizer has failed every later token is EOF,
// the failure is kept in l.err.
func (l *Lexer) fill() {
	if l.full {
		return
	}
	l.full = true

	for l.err == nil {
		t, err := l.active.Next()
		if err != nil {
			l.err = err
			break
		}
		if l.ignore[t.Kind] {
			continue
		}
		l.tok = t
		return
	}
	l.tok = Token{Pos: l.active.Reader().Position(), Kind: KindEOF}
}

// Err returns the tokenizer failure that stopped the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	l.fill()
	return l.tok
}

// Next consumes and returns the next token.
func (l *Lexer) Next() (Token, error) {
	l.fill()
	l.full = false
	return l.tok, l.err
}

// IsToken returns true if the next token is any of the given kinds.
func (l *Lexer) IsToken(kinds ...Kind) bool {
	return l.Peek().Is(kinds...)
}

// ConsumeIfMatch consumes the next token if it is any of the given kinds.
func (l *Lexer) ConsumeIfMatch(kinds ...Kind) bool {
	if l.IsToken(kinds...) {
		l.full = false
		return true
	}
	return false
}

// Assert consumes the next token, which must be one of the given kinds.
func (l *Lexer) Assert(kinds ...Kind) (Token, error) {
	l.fill()
	if l.err != nil {
		return l.tok, l.err
	}
	if !l.tok.Is(kinds...) {
		return l.tok, ErrSyntax{Expected: kinds, Got: l.tok}
	}
	l.full = false
	return l.tok, nil
}

// Unconsume gives the buffered token back to the reader it came from.
func (l *Lexer) Unconsume() {
	if !l.full {
		return
	}
	l.full = false
	if err := l.active.Reader().SetPosition(l.tok.Pos); err != nil && l.err == nil {
		l.err = err
	}
}

// Push makes t the active tokenizer.
func (l *Lexer) Push(t Tokenizer) {
	l.Unconsume()
	l.stack = append(l.stack, l.active)
	l.active = t
}

// Pop restores the tokenizer that was active before the last Push.
func (l *Lexer) Pop() {
	if len(l.stack) == 0 {
		panic("lex: Pop without matching Push")
	}
	l.Unconsume()
	l.active = l.stack[len(l.stack)-1]
	l.stack = l.stack[:len(l.stack)-1]
}

// With runs fn with t as the active tokenizer. The previous tokenizer is restored however fn returns.
func (l *Lexer) With(t Tokenizer, fn func() error) error {
	l.Push(t)
	defer l.Pop()
	return fn()
}

// Tokenizer returns the active tokenizer.
func (l *Lexer) Tokenizer() Tokenizer {
	return l.active
}

// Depth returns the number of suspended tokenizers.
func (l *Lexer) Depth() int {
	return len(l.stack)
}

// Position returns the position of the active reader. A buffered token is not given back.
func (l *Lexer) Position() Position {
	return l.active.Reader().Position()
}
