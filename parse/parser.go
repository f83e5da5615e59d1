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

package parse

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/milochristiansen/phylomatrix"
	"github.com/milochristiansen/phylomatrix/parse/lex"
)

// DefaultLoopLimit is the number of loop iterations without progress after which a parse is abandoned.
const DefaultLoopLimit = 1000

// Format names a supported file format.
type Format string

const (
	FormatNexus Format = "nexus"
	FormatTNT   Format = "tnt"
)

// Parser reads one matrix file.
type Parser interface {
	Format() Format
	Parse() (*phylomatrix.MatrixObject, error)
}

type options struct {
	log       zerolog.Logger
	loopLimit int
}

// Option configures a parser.
type Option func(*options)

// WithLogger sets the logger tolerated irregularities are reported to. By default nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithLoopLimit sets how many iterations without progress are allowed before ErrInfiniteLoop.
func WithLoopLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.loopLimit = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: zerolog.Nop(), loopLimit: DefaultLoopLimit}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// base holds the machinery shared by both grammars.
type base struct {
	options

	reader lex.Reader
	lexer  *lex.Lexer
	matrix *phylomatrix.MatrixObject

	loopPos   lex.Position
	loopCount int
}

func newBase(r lex.Reader, t lex.Tokenizer, opts []Option) base {
	return base{
		options: newOptions(opts),
		reader:  r,
		lexer:   lex.NewLexer(t),
		matrix:  phylomatrix.NewMatrix(),
		loopPos: lex.Position{Offset: -1},
	}
}

// guard must be called once per iteration of every loop that consumes tokens. It fails when the reader has
// not moved for loopLimit calls in a row.
func (p *base) guard() error {
	pos := p.lexer.Position()
	if pos.Offset != p.loopPos.Offset {
		p.loopPos = pos
		p.loopCount = 0
		return nil
	}
	p.loopCount++
	if p.loopCount >= p.loopLimit {
		return ErrInfiniteLoop{Pos: pos}
	}
	return nil
}

// atEnd returns true if the next token is EOF. If the lexer stopped because of an error that error is
// returned as well.
func (p *base) atEnd() (bool, error) {
	if !p.lexer.IsToken(lex.KindEOF) {
		return false, nil
	}
	return true, p.lexer.Err()
}

// skipCommand consumes everything up to and including the next semicolon.
func (p *base) skipCommand() error {
	for {
		if err := p.guard(); err != nil {
			return err
		}
		tok, err := p.lexer.Next()
		if err != nil {
			return err
		}
		if tok.Is(lex.KindSemicolon, lex.KindEOF) {
			return nil
		}
	}
}

// words reads the rest of a command as text. Token values are joined with single spaces.
func (p *base) words() (string, error) {
	out := ""
	for {
		if err := p.guard(); err != nil {
			return "", err
		}
		tok, err := p.lexer.Next()
		if err != nil {
			return "", err
		}
		if tok.Is(lex.KindSemicolon, lex.KindEOF) {
			return out, nil
		}
		if out != "" {
			out += " "
		}
		out += tok.Value
	}
}

// number converts a token to an integer.
func number(tok lex.Token) (int, error) {
	n, err := strconv.Atoi(tok.Value)
	if err != nil {
		return 0, ErrBadNumber{Pos: tok.Pos, Text: tok.Value}
	}
	return n, nil
}

// assertNumber consumes an integer token.
func (p *base) assertNumber() (int, lex.Token, error) {
	tok, err := p.lexer.Assert(lex.KindNumber)
	if err != nil {
		return 0, tok, err
	}
	n, err := number(tok)
	return n, tok, err
}

// withTokenizer runs fn with a tokenizer created over the active reader.
func (p *base) withTokenizer(mk func(lex.Reader) lex.Tokenizer, fn func() error) error {
	p.lexer.Unconsume()
	return p.lexer.With(mk(p.lexer.Tokenizer().Reader()), fn)
}

// withSubReader runs fn with a tokenizer reading a bounded region that starts at the current position and
// ends after the first of the stop characters. Afterwards the active reader continues where fn stopped.
func (p *base) withSubReader(stops string, mk func(lex.Reader) lex.Tokenizer, fn func(sub *lex.SubstringReader) error) error {
	p.lexer.Unconsume()
	parent := p.lexer.Tokenizer().Reader()
	sub := lex.NewSubstringReader(parent, stops)

	err := p.lexer.With(mk(sub), func() error {
		return fn(sub)
	})
	if serr := parent.SetPosition(sub.Position()); serr != nil && err == nil {
		err = serr
	}
	return err
}

// lookahead runs fn and then puts the active reader back where it was, so the same input can be read again.
func (p *base) lookahead(fn func() error) error {
	p.lexer.Unconsume()
	r := p.lexer.Tokenizer().Reader()
	mark := r.Position()

	err := fn()
	p.lexer.Unconsume()
	if serr := r.SetPosition(mark); serr != nil && err == nil {
		err = serr
	}
	return err
}

// lineCells reads the cells on the rest of the current line with the tokenizer mk makes. If want is not
// negative exactly that many cells must be there. When the rest of the line is empty the cells are taken from
// the next line instead. A semicolon ends the row and is left for the caller.
func (p *base) lineCells(mk func(lex.Reader) lex.Tokenizer, pos lex.Position, taxon string, want int) ([]lex.Token, error) {
	cells := []lex.Token{}
	extra := 0
	for {
		if err := p.guard(); err != nil {
			return nil, err
		}

		err := p.withSubReader("\n", mk, func(sub *lex.SubstringReader) error {
			for !p.lexer.IsToken(lex.KindEOF, lex.KindSemicolon) {
				tok, _ := p.lexer.Next()
				if want >= 0 && len(cells) >= want {
					extra++
					continue
				}
				cells = append(cells, tok)
			}
			return p.lexer.Err()
		})
		if err != nil {
			return nil, err
		}

		if len(cells) == 0 && extra == 0 && !p.lexer.IsToken(lex.KindSemicolon, lex.KindEOF) {
			continue
		}
		break
	}

	if want >= 0 && (len(cells) != want || extra > 0) {
		return nil, ErrRowLength{Pos: pos, Taxon: taxon, Got: len(cells) + extra, Want: want}
	}
	return cells, nil
}

// cellTokenizer and friends adapt the narrow tokenizer constructors for withTokenizer/withSubReader.
func cellTokenizer(comments bool) func(lex.Reader) lex.Tokenizer {
	return func(r lex.Reader) lex.Tokenizer {
		t := lex.NewCellTokenizer(r)
		t.BracketComments = comments
		return t
	}
}

func continuousTokenizer(comments bool) func(lex.Reader) lex.Tokenizer {
	return func(r lex.Reader) lex.Tokenizer {
		t := lex.NewContinuousCellTokenizer(r)
		t.BracketComments = comments
		return t
	}
}

func orderingTokenizer(r lex.Reader) lex.Tokenizer {
	return lex.NewOrderingTokenizer(r)
}

func costCodeTokenizer(r lex.Reader) lex.Tokenizer {
	return lex.NewCostCodeTokenizer(r)
}

func commentsTokenizer(r lex.Reader) lex.Tokenizer {
	return lex.NewCommentsTokenizer(r)
}

// cell turns a cell token into a matrix cell.
func cell(tok lex.Token) *phylomatrix.Cell {
	return &phylomatrix.Cell{Value: tok.Value, Uncertain: tok.Kind == lex.KindCellUncertain}
}

// isLabel returns true for tokens that may name a taxon: strings, numbers and keywords.
func isLabel(tok lex.Token) bool {
	return tok.Is(lex.KindString, lex.KindNumber) || tok.Kind.IsKeyword()
}

// addState appends a state to a character. A blank label creates a generic state that is flagged.
func addState(c *phylomatrix.Character, name string) {
	if name == "" {
		s := c.AddState("State " + strconv.Itoa(len(c.States)))
		s.Incomplete = phylomatrix.CreatedOnDemand
		return
	}
	c.AddState(name)
}
