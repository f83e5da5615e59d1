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
	"fmt"
	"strings"

	"github.com/milochristiansen/phylomatrix"
	"github.com/milochristiansen/phylomatrix/parse/lex"
)

/*

The TNT format is a list of commands, each ended by a semicolon:

	nstates 8;
	xread 'optional title'
	3 2
	Homo 012
	Pan 101
	;
	cnames
	{0 bipedal no yes;
	{+ tail absent present;
	;
	ccode +[/2 0.1 - 2;
	comments 1
	0 1 Scored from a photo;
	;

Rows may be spread over several sections (interleaved, or split by &[cont] and &[num] markers), so the matrix
body is gathered per taxon label first and only registered with the MatrixObject once the whole file has been
read.

*/

// TNTParser reads the line oriented (TNT) format.
type TNTParser struct {
	base

	nchar, ntax int

	rows   map[string][]*phylomatrix.Cell
	order  []string          // Row keys in the order first seen.
	labels map[string]string // Label of rows whose key is not the label, see rowKey.
	types  map[int]phylomatrix.CharacterType

	names    map[int]*characterName
	lastName int

	codes map[int]*costCode
	notes []cellNote
}

type characterName struct {
	name   string
	states []string
}

type costCode struct {
	ordering phylomatrix.Ordering
	weight   int // 0 when not set
	active   int // 1 active, -1 inactive, 0 when not set
}

type cellNote struct {
	pos         lex.Position
	taxon, char int
	text        string
}

// NewTNTParser creates a parser over r. The reader should be at the start of the file.
func NewTNTParser(r lex.Reader, opts ...Option) *TNTParser {
	return &TNTParser{
		base:     newBase(r, lex.NewTNTTokenizer(r), opts),
		rows:     map[string][]*phylomatrix.Cell{},
		labels:   map[string]string{},
		types:    map[int]phylomatrix.CharacterType{},
		names:    map[int]*characterName{},
		lastName: -1,
		codes:    map[int]*costCode{},
	}
}

func (p *TNTParser) Format() Format {
	return FormatTNT
}

// IsTNT checks if the reader holds a TNT file: any number of MXRAM, NSTATES and TAXNAME commands followed by
// XREAD. The reader is moved back to where it was.
func IsTNT(r lex.Reader) bool {
	start := r.Position()
	defer r.SetPosition(start)

	l := lex.NewLexer(lex.NewTNTTokenizer(r))
	for i := 0; i < DefaultLoopLimit; i++ {
		tok, err := l.Next()
		if err != nil {
			return false
		}
		switch tok.Kind {
		case lex.KindXRead:
			return true
		case lex.KindMXRam, lex.KindNStates, lex.KindTaxName:
			for !l.IsToken(lex.KindSemicolon, lex.KindEOF) {
				l.Next()
			}
			l.Next()
		default:
			return false
		}
	}
	return false
}

// Parse reads the whole file.
func (p *TNTParser) Parse() (*phylomatrix.MatrixObject, error) {
	for {
		if err := p.guard(); err != nil {
			return nil, err
		}

		tok := p.lexer.Peek()
		var err error
		switch tok.Kind {
		case lex.KindEOF:
			if err := p.lexer.Err(); err != nil {
				return nil, err
			}
			if err := p.finish(); err != nil {
				return nil, err
			}
			return p.matrix, nil
		case lex.KindSemicolon:
			p.lexer.Next()
		case lex.KindXRead:
			err = p.xread()
		case lex.KindCNames:
			err = p.cnames()
		case lex.KindOpenBrace:
			err = p.cname()
		case lex.KindCCode:
			err = p.ccode()
		case lex.KindComments:
			err = p.comments()
		case lex.KindNStates:
			err = p.nstates()
		default:
			p.log.Debug().Str("command", tok.Value).Stringer("pos", tok.Pos).Msg("Skipping command.")
			err = p.skipCommand()
		}
		if err != nil {
			return nil, err
		}
	}
}

// nstates reads "NSTATES DNA;" and "NSTATES CONT;", other forms only matter to TNT itself.
func (p *TNTParser) nstates() error {
	p.lexer.Next()
	switch strings.ToUpper(p.lexer.Peek().Value) {
	case "DNA":
		p.matrix.DataType = phylomatrix.DataDNA
	case "CONT", "CONTINUOUS":
		p.matrix.DataType = phylomatrix.DataMeristic
	}
	return p.skipCommand()
}

// cnames reads "{index name states...;" entries up to a lone semicolon.
func (p *TNTParser) cnames() error {
	p.lexer.Next()
	for {
		if err := p.guard(); err != nil {
			return err
		}
		switch p.lexer.Peek().Kind {
		case lex.KindSemicolon:
			p.lexer.Next()
			return nil
		case lex.KindEOF:
			return p.lexer.Err()
		}
		if err := p.cname(); err != nil {
			return err
		}
	}
}

// cname reads one "{index name states...;" entry. An index of "+" is the one after the previous entry.
func (p *TNTParser) cname() error {
	if _, err := p.lexer.Assert(lex.KindOpenBrace); err != nil {
		return err
	}

	idx := p.lastName + 1
	if !p.lexer.ConsumeIfMatch(lex.KindPlus) {
		n, _, err := p.assertNumber()
		if err != nil {
			return err
		}
		idx = n
	}
	p.lastName = idx

	entry := &characterName{}
	for first := true; ; first = false {
		if err := p.guard(); err != nil {
			return err
		}
		tok, err := p.lexer.Next()
		if err != nil {
			return err
		}
		if tok.Is(lex.KindSemicolon, lex.KindEOF) {
			break
		}
		if first {
			entry.name = tok.Value
			continue
		}
		entry.states = append(entry.states, tok.Value)
	}
	p.names[idx] = entry
	return nil
}

// ccode reads cost code flags and the characters they apply to. Flags stay in effect for every target after
// them in the command.
//
//	+ ordered   - unordered   [ active   ] inactive   /N weight   ( ) ignored
//	n  one character   a.b  a range   a.  a to the end   .  every character
func (p *TNTParser) ccode() error {
	p.lexer.Next()
	return p.withTokenizer(costCodeTokenizer, func() error {
		flags := costCode{}
		for {
			if err := p.guard(); err != nil {
				return err
			}
			tok, err := p.lexer.Next()
			if err != nil {
				return err
			}

			switch tok.Kind {
			case lex.KindSemicolon, lex.KindEOF:
				return nil
			case lex.KindPlus:
				flags.ordering = phylomatrix.Ordered
			case lex.KindDash:
				flags.ordering = phylomatrix.Unordered
			case lex.KindOpenBracket:
				flags.active = 1
			case lex.KindCloseBracket:
				flags.active = -1
			case lex.KindSlash:
				n, _, err := p.assertNumber()
				if err != nil {
					return err
				}
				flags.weight = n
			case lex.KindOpenParen, lex.KindCloseParen:
			case lex.KindPeriod:
				p.applyCode(flags, 0, -1)
			case lex.KindNumber:
				from, err := number(tok)
				if err != nil {
					return err
				}
				to, err := p.rangeEnd(tok, from)
				if err != nil {
					return err
				}
				p.applyCode(flags, from, to)
			default:
				return lex.ErrSyntax{Expected: []lex.Kind{lex.KindNumber, lex.KindPeriod, lex.KindSemicolon}, Got: tok}
			}
		}
	})
}

// rangeEnd reads the rest of a cost code target after its first number. "a.b" is a range and "a." runs to
// the last character (returned as -1). The period must touch the numbers, "3 . 5" is three targets.
func (p *TNTParser) rangeEnd(first lex.Token, from int) (int, error) {
	dot := p.lexer.Peek()
	if dot.Kind != lex.KindPeriod || dot.Pos.Offset != first.Pos.Offset+len(first.Value) {
		return from, nil
	}
	p.lexer.Next()

	end := p.lexer.Peek()
	if end.Kind != lex.KindNumber || end.Pos.Offset != dot.Pos.Offset+1 {
		return -1, nil
	}
	p.lexer.Next()
	return number(end)
}

// applyCode merges the set flags into the cost codes of characters from..to (0 based, -1 is the last one).
// Targets past the last character are dropped.
func (p *TNTParser) applyCode(flags costCode, from, to int) {
	if to < 0 || to >= p.nchar {
		to = p.nchar - 1
	}
	if from >= p.nchar {
		p.log.Warn().Int("index", from).Msg("CCODE for a character that does not exist.")
		return
	}
	for i := from; i <= to; i++ {
		code, ok := p.codes[i]
		if !ok {
			code = &costCode{}
			p.codes[i] = code
		}
		if flags.ordering != phylomatrix.OrderingUnset {
			code.ordering = flags.ordering
		}
		if flags.weight != 0 {
			code.weight = flags.weight
		}
		if flags.active != 0 {
			code.active = flags.active
		}
	}
}

// comments reads "COMMENTS count" and then "taxon character text;" entries up to a lone semicolon. The
// ordinals are 0 based, the text runs to a semicolon at the end of a line.
func (p *TNTParser) comments() error {
	start := p.lexer.Peek().Pos
	p.lexer.Next()
	count, _, err := p.assertNumber()
	if err != nil {
		return err
	}

	found := 0
	for {
		if err := p.guard(); err != nil {
			return err
		}
		if p.lexer.ConsumeIfMatch(lex.KindSemicolon) {
			break
		}
		if end, err := p.atEnd(); end {
			if err != nil {
				return err
			}
			break
		}

		taxon, tok, err := p.assertNumber()
		if err != nil {
			return err
		}
		char, _, err := p.assertNumber()
		if err != nil {
			return err
		}

		note := cellNote{pos: tok.Pos, taxon: taxon, char: char}
		err = p.withTokenizer(commentsTokenizer, func() error {
			text, err := p.lexer.Next()
			note.text = text.Value
			return err
		})
		if err != nil {
			return err
		}
		p.notes = append(p.notes, note)
		found++
	}

	if found != count {
		p.log.Warn().Int("declared", count).Int("found", found).Stringer("pos", start).Msg("COMMENTS count does not match the entries.")
	}
	return nil
}

// finish registers everything gathered during the parse with the matrix: characters first, then taxa and
// their rows, then the flags and notes that refer to them.
func (p *TNTParser) finish() error {
	nchar := p.nchar
	if nchar == 0 {
		nchar = p.width()
	}

	for i := 0; i < nchar; i++ {
		c := phylomatrix.NewCharacter(fmt.Sprintf("Character %d", i+1))
		if n, ok := p.names[i]; ok {
			if n.name != "" {
				c.Name = n.name
			}
			for _, s := range n.states {
				addState(c, s)
			}
		}
		c.Type = p.types[i]
		if c.Type == phylomatrix.TypeDiscrete && p.matrix.DataType == phylomatrix.DataMeristic {
			c.Type = phylomatrix.TypeMeristic
		}
		p.matrix.AddCharacter(c)
	}
	for i := range p.names {
		if i >= nchar {
			p.log.Warn().Int("index", i).Msg("CNAMES entry for a character that does not exist.")
		}
	}

	symbols := p.matrix.Symbols()
	for _, key := range p.order {
		label, ok := p.labels[key]
		if !ok {
			label = key
		}
		t := p.matrix.AddTaxon(phylomatrix.NewTaxon(label))
		for i, v := range p.rows[key] {
			if v == nil || i >= nchar {
				continue
			}
			if err := p.matrix.SetCell(t.Name, i, v); err != nil {
				return err
			}
			c := p.matrix.CharacterAt(i)
			if p.matrix.DataType == phylomatrix.DataRegular && c.Type == phylomatrix.TypeDiscrete {
				c.ScoreValue(v.Value, symbols)
			}
		}
	}

	for i, code := range p.codes {
		c := p.matrix.CharacterAt(i)
		if c == nil {
			p.log.Warn().Int("index", i).Msg("CCODE for a character that does not exist.")
			continue
		}
		if code.ordering != phylomatrix.OrderingUnset {
			c.Ordering = code.ordering
		}
		if code.weight != 0 {
			c.Weight = code.weight
		}
		if code.active != 0 {
			c.Inactive = code.active < 0
		}
	}

	for _, n := range p.notes {
		if err := p.matrix.SetCellNote(n.taxon, n.char, n.text); err != nil {
			p.log.Warn().Err(err).Stringer("pos", n.pos).Msg("Dropped comment.")
		}
	}
	return nil
}
