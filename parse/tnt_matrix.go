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
	"regexp"
	"strings"

	"github.com/milochristiansen/phylomatrix"
	"github.com/milochristiansen/phylomatrix/parse/lex"
)

var continuousRange = regexp.MustCompile(`^-?\d+(\.\d+)?-\d+(\.\d+)?$`)

// xread reads "XREAD ['title'] nchar ntax rows... ;". Rows are gathered per taxon label.
//
// Until a section marker (&[cont], &[num], ...) shows up every row is a label and its cells on one line. A
// label seen again adds to its row (interleaved data) unless that row is already complete, then it is a
// repeated taxon and starts a row of its own. After the first marker the rest of the matrix is read section by
// section.
func (p *TNTParser) xread() error {
	start := p.lexer.Peek().Pos
	p.lexer.Next()

	if p.lexer.IsToken(lex.KindString) {
		title, _ := p.lexer.Next()
		p.matrix.Title["XREAD"] = title.Value
	}

	nchar, _, err := p.assertNumber()
	if err != nil {
		return err
	}
	ntax, _, err := p.assertNumber()
	if err != nil {
		return err
	}
	p.nchar, p.ntax = nchar, ntax
	p.matrix.Dimensions["NCHAR"] = nchar
	p.matrix.Dimensions["NTAX"] = ntax

	mk := cellTokenizer(false)
	if p.matrix.DataType == phylomatrix.DataMeristic {
		mk = continuousTokenizer(false)
	}

	for done := false; !done; {
		if err := p.guard(); err != nil {
			return err
		}

		tok := p.lexer.Peek()
		switch {
		case tok.Kind == lex.KindSemicolon:
			p.lexer.Next()
			done = true
		case tok.Kind == lex.KindEOF:
			if err := p.lexer.Err(); err != nil {
				return err
			}
			p.log.Warn().Stringer("pos", start).Msg("XREAD not closed before end of file.")
			done = true
		case isSectionMarker(tok):
			p.lexer.Next()
			if err := p.section(tok); err != nil {
				return err
			}
		default:
			label, err := p.rowLabel()
			if err != nil {
				return err
			}
			cells, err := p.lineCells(mk, label.Pos, label.Value, -1)
			if err != nil {
				return err
			}
			p.addCells(p.rowKey(label.Value), -1, cells)
		}
	}

	for _, label := range p.order {
		if got := len(p.rows[label]); got != nchar {
			return ErrRowLength{Pos: start, Taxon: label, Got: got, Want: nchar}
		}
	}
	if len(p.order) != ntax {
		p.log.Warn().Int("declared", ntax).Int("found", len(p.order)).Msg("XREAD taxon count does not match.")
	}
	return nil
}

func isSectionMarker(tok lex.Token) bool {
	return tok.Kind == lex.KindString && strings.HasPrefix(tok.Value, "&[")
}

// rowLabel consumes the label at the start of a row.
func (p *TNTParser) rowLabel() (lex.Token, error) {
	tok := p.lexer.Peek()
	if !isLabel(tok) {
		return p.lexer.Assert(lex.KindString)
	}
	p.lexer.Next()
	return tok, nil
}

// rowKey returns the key of the row a label continues: the first row for that label that is not yet nchar
// long. A new key is made for a repeated taxon and remembered in labels.
func (p *TNTParser) rowKey(label string) string {
	if p.nchar <= 0 {
		return label
	}
	key := phylomatrix.UniqueName(label, func(k string) bool {
		return len(p.rows[k]) >= p.nchar
	})
	if key != label {
		p.labels[key] = label
	}
	return key
}

// addCells adds cells to the row of a taxon label. If start is not negative the row is first padded to that
// column.
func (p *TNTParser) addCells(label string, start int, cells []lex.Token) {
	row, ok := p.rows[label]
	if !ok {
		p.order = append(p.order, label)
	}
	for len(row) < start {
		row = append(row, nil)
	}
	for _, tok := range cells {
		row = append(row, cell(tok))
	}
	p.rows[label] = row
}

// width returns the length of the longest row so far.
func (p *TNTParser) width() int {
	w := 0
	for _, row := range p.rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// section reads the rows of one section, up to the next marker or the end of the matrix.
//
// A discrete section is as wide as its first row. A continuous section has no declared width and its values
// may run over several lines, so the width is found by looking ahead over the first row and counting values
// that look continuous.
func (p *TNTParser) section(marker lex.Token) error {
	kind := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(marker.Value, "&["), "]"))
	continuous := strings.HasPrefix(kind, "cont")
	start := p.width()

	width := -1
	if continuous {
		w, err := p.continuousWidth()
		if err != nil {
			return err
		}
		width = w
		for i := start; i < start+width; i++ {
			p.types[i] = phylomatrix.TypeContinuous
		}
	}

	for {
		if err := p.guard(); err != nil {
			return err
		}
		tok := p.lexer.Peek()
		if tok.Is(lex.KindSemicolon, lex.KindEOF) || isSectionMarker(tok) {
			return p.lexer.Err()
		}

		label, err := p.rowLabel()
		if err != nil {
			return err
		}

		var cells []lex.Token
		if continuous {
			cells, err = p.continuousCells(label, width)
		} else {
			cells, err = p.lineCells(cellTokenizer(false), label.Pos, label.Value, width)
		}
		if err != nil {
			return err
		}
		if width < 0 {
			width = len(cells)
		}
		p.addCells(label.Value, start, cells)
	}
}

// continuousLooking returns true for a token that could be a continuous value: a number, a range like 1.5-2
// or a missing data marker.
func continuousLooking(tok lex.Token) bool {
	switch tok.Kind {
	case lex.KindNumber, lex.KindQuestion, lex.KindDash:
		return true
	case lex.KindString:
		return continuousRange.MatchString(tok.Value)
	}
	return false
}

// continuousWidth counts the values of the first row of a continuous section without consuming anything.
// Counting stops at the first token that does not look continuous, which is taken to be the next label. A
// label that is itself a number is counted as a value.
func (p *TNTParser) continuousWidth() (int, error) {
	width := 0
	err := p.lookahead(func() error {
		if !isLabel(p.lexer.Peek()) {
			return p.lexer.Err()
		}
		p.lexer.Next()

		for continuousLooking(p.lexer.Peek()) {
			if err := p.guard(); err != nil {
				return err
			}
			p.lexer.Next()
			width++
		}
		return p.lexer.Err()
	})
	return width, err
}

// continuousCells reads exactly width continuous values, which may span lines.
func (p *TNTParser) continuousCells(label lex.Token, width int) ([]lex.Token, error) {
	cells := []lex.Token{}
	err := p.withTokenizer(continuousTokenizer(false), func() error {
		for len(cells) < width && p.lexer.IsToken(lex.KindCell) {
			tok, _ := p.lexer.Next()
			cells = append(cells, tok)
		}
		return p.lexer.Err()
	})
	if err != nil {
		return nil, err
	}
	if len(cells) != width {
		return nil, ErrRowLength{Pos: label.Pos, Taxon: label.Value, Got: len(cells), Want: width}
	}
	return cells, nil
}
