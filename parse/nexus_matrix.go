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
	"strings"

	"github.com/milochristiansen/phylomatrix"
	"github.com/milochristiansen/phylomatrix/parse/lex"
)

// matrixCommand reads MATRIX. Every row is a taxon label followed by its cells on the same line, a label alone
// on its line takes its cells from the next line.
func (p *NexusParser) matrixCommand() error {
	pos := p.lexer.Peek().Pos
	p.lexer.Next()

	nchar := p.matrix.Dimensions["NCHAR"]
	if nchar > 0 {
		if _, err := p.character(nchar - 1); err != nil {
			return err
		}
	}
	if p.matrix.DataType == phylomatrix.DataMeristic {
		for _, c := range p.matrix.Characters() {
			c.Type = phylomatrix.TypeMeristic
		}
	}

	if v, ok := p.matrix.Parameters["INTERLEAVE"]; ok && !strings.EqualFold(v, "NO") {
		return p.interleavedMatrix(nchar)
	}

	// Without NCHAR the first row sets the width.
	want := nchar
	if want == 0 {
		want = -1
	}

	bound := map[*phylomatrix.Taxon]bool{}
	for row := 0; ; row++ {
		label, done, err := p.rowLabel(pos)
		if err != nil || done {
			return err
		}

		taxon := p.rowTaxon(row, label.Value, bound)
		bound[taxon] = true
		cells, err := p.rowCells(label.Pos, taxon.Name, want)
		if err != nil {
			return err
		}
		if err := p.storeRow(taxon, 0, cells); err != nil {
			return err
		}
		if want < 0 {
			want = len(cells)
		}
	}
}

// interleavedMatrix reads MATRIX with INTERLEAVE set. Each line adds cells to the end of its taxon's row.
func (p *NexusParser) interleavedMatrix(nchar int) error {
	pos := p.lexer.Position()
	ntax := p.matrix.Dimensions["NTAX"]
	next := map[string]int{}

	for line := 0; ; line++ {
		label, done, err := p.rowLabel(pos)
		if err != nil {
			return err
		}
		if done {
			break
		}

		row := line
		if ntax > 0 {
			row = line % ntax
		}
		taxon := p.rowTaxon(row, label.Value, nil)
		cells, err := p.rowCells(label.Pos, taxon.Name, -1)
		if err != nil {
			return err
		}

		start := next[taxon.Name]
		if nchar > 0 && start+len(cells) > nchar {
			return ErrRowLength{Pos: label.Pos, Taxon: taxon.Name, Got: start + len(cells), Want: nchar}
		}
		if err := p.storeRow(taxon, start, cells); err != nil {
			return err
		}
		next[taxon.Name] = start + len(cells)
	}

	if nchar == 0 {
		return nil
	}
	for _, t := range p.matrix.Taxa() {
		if got, ok := next[t.Name]; ok && got != nchar {
			return ErrRowLength{Pos: pos, Taxon: t.Name, Got: got, Want: nchar}
		}
	}
	return nil
}

// rowLabel reads the label that starts a matrix row. done is set (and the semicolon consumed) at the end of
// the matrix.
func (p *NexusParser) rowLabel(start lex.Position) (lex.Token, bool, error) {
	if err := p.guard(); err != nil {
		return lex.Token{}, false, err
	}

	tok := p.lexer.Peek()
	switch {
	case tok.Kind == lex.KindSemicolon:
		p.lexer.Next()
		return tok, true, nil
	case tok.Kind == lex.KindEOF:
		if err := p.lexer.Err(); err != nil {
			return tok, false, err
		}
		p.log.Warn().Stringer("pos", start).Msg("MATRIX not closed before end of file.")
		return tok, true, nil
	case !isLabel(tok):
		_, err := p.lexer.Assert(lex.KindString)
		return tok, false, err
	}
	p.lexer.Next()
	return tok, false, nil
}

// rowTaxon finds the taxon for a matrix row. The taxon in the same position wins if the label matches its
// name (or the name it asked for before it was made unique), then the first other taxon that matches. Taxa in
// bound already have their row and are skipped. A new taxon is added if none match, a repeated label gets a
// unique name.
func (p *NexusParser) rowTaxon(row int, label string, bound map[*phylomatrix.Taxon]bool) *phylomatrix.Taxon {
	t := phylomatrix.NewTaxon(label)
	matches := func(c *phylomatrix.Taxon) bool {
		return c != nil && !bound[c] && (c.Name == t.Name || c.DuplicateTaxon == t.Name)
	}

	found := p.matrix.TaxonAt(row)
	if !matches(found) {
		found = nil
		for _, c := range p.matrix.Taxa() {
			if matches(c) {
				found = c
				break
			}
		}
	}
	if found == nil {
		return p.matrix.AddTaxon(t)
	}
	found.Extinct = found.Extinct || t.Extinct
	return found
}

// rowCells reads the cells on the rest of the current line, see lineCells.
func (p *NexusParser) rowCells(pos lex.Position, taxon string, want int) ([]lex.Token, error) {
	if p.matrix.DataType == phylomatrix.DataMeristic {
		return p.lineCells(continuousTokenizer(true), pos, taxon, want)
	}
	return p.lineCells(cellTokenizer(true), pos, taxon, want)
}

// storeRow puts cells into a taxon's row starting at column start.
func (p *NexusParser) storeRow(taxon *phylomatrix.Taxon, start int, cells []lex.Token) error {
	match := p.matrix.Parameters["MATCHCHAR"]
	symbols := p.matrix.Symbols()

	for i, tok := range cells {
		col := start + i
		c, err := p.character(col)
		if err != nil {
			return err
		}

		v := cell(tok)
		if match != "" && v.Value == match && p.firstRow != "" && p.firstRow != taxon.Name {
			if first := p.matrix.Cell(p.firstRow, col); first != nil {
				v = &phylomatrix.Cell{Value: first.Value, Uncertain: first.Uncertain}
			}
		}
		if err := p.matrix.SetCell(taxon.Name, col, v); err != nil {
			return err
		}

		if p.matrix.DataType == phylomatrix.DataRegular && c.Type == phylomatrix.TypeDiscrete {
			c.ScoreValue(v.Value, symbols)
		}
	}

	if p.firstRow == "" {
		p.firstRow = taxon.Name
	}
	return nil
}
