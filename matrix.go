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

package phylomatrix

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MatrixObject holds everything parsed from one matrix file.
//
// Taxa and characters are kept in the order they were added, that order is the row and column order of the
// matrix. Both are also indexed by their (unique) display name. Cell rows are keyed by taxon name and indexed
// by character position.
type MatrixObject struct {
	Title      map[string]string // Block or command titles, keyed by block kind ("TAXA", "CHARACTERS", "XREAD").
	Dimensions map[string]int    // Declared counts ("NTAX", "NCHAR").
	Blocks     map[string]string // Raw text of blocks that were not understood, keyed by block name.
	Parameters map[string]string // Format command flags, keys upper case.
	DataType   DataType

	taxa       []*Taxon
	taxonIndex map[string]int

	characters []*Character
	charIndex  map[string]int

	cells map[string][]*Cell
}

// NewMatrix returns an empty matrix.
func NewMatrix() *MatrixObject {
	return &MatrixObject{
		Title:      map[string]string{},
		Dimensions: map[string]int{},
		Blocks:     map[string]string{},
		Parameters: map[string]string{},

		taxonIndex: map[string]int{},
		charIndex:  map[string]int{},
		cells:      map[string][]*Cell{},
	}
}

// ErrOrdinal is returned when a command references a taxon, character or state position that does not exist.
type ErrOrdinal struct {
	What  string
	Index int
	Count int
}

func (err ErrOrdinal) Error() string {
	return fmt.Sprintf("No %v at index %v (have %v)", err.What, err.Index, err.Count)
}

// AddTaxon registers a taxon at the end of the row order. If the name is taken the taxon is renamed with
// UniqueName and DuplicateTaxon is set to the name it asked for.
func (m *MatrixObject) AddTaxon(t *Taxon) *Taxon {
	name := UniqueName(t.Name, m.HasTaxon)
	if name != t.Name {
		t.DuplicateTaxon = t.Name
		t.Name = name
	}
	m.taxonIndex[t.Name] = len(m.taxa)
	m.taxa = append(m.taxa, t)
	return t
}

// HasTaxon returns true if a taxon is registered under name.
func (m *MatrixObject) HasTaxon(name string) bool {
	_, ok := m.taxonIndex[name]
	return ok
}

// Taxon returns the taxon registered under name, or nil.
func (m *MatrixObject) Taxon(name string) *Taxon {
	i, ok := m.taxonIndex[name]
	if !ok {
		return nil
	}
	return m.taxa[i]
}

// TaxonAt returns the taxon in row i (0 based), or nil.
func (m *MatrixObject) TaxonAt(i int) *Taxon {
	if i < 0 || i >= len(m.taxa) {
		return nil
	}
	return m.taxa[i]
}

// TaxonIndex returns the row of the named taxon, or -1.
func (m *MatrixObject) TaxonIndex(name string) int {
	i, ok := m.taxonIndex[name]
	if !ok {
		return -1
	}
	return i
}

// Taxa returns the taxa in row order.
func (m *MatrixObject) Taxa() []*Taxon {
	return slices.Clone(m.taxa)
}

func (m *MatrixObject) TaxonCount() int {
	return len(m.taxa)
}

// AddCharacter registers a character at the end of the column order. If the name is taken the character is
// renamed with UniqueName and DuplicateCharacter is set to the name it asked for. A character without a number
// is numbered by its (1 based) column.
func (m *MatrixObject) AddCharacter(c *Character) *Character {
	name := UniqueName(c.Name, m.HasCharacter)
	if name != c.Name {
		c.DuplicateCharacter = c.Name
		c.Name = name
	}
	if c.Number == 0 {
		c.Number = len(m.characters) + 1
	}
	m.charIndex[c.Name] = len(m.characters)
	m.characters = append(m.characters, c)
	return c
}

// RenameCharacter changes the name of the character in column i. Collisions are handled the same way as in
// AddCharacter.
func (m *MatrixObject) RenameCharacter(i int, name string) error {
	c := m.CharacterAt(i)
	if c == nil {
		return ErrOrdinal{"character", i, len(m.characters)}
	}
	if c.Name == name {
		return nil
	}

	delete(m.charIndex, c.Name)
	unique := UniqueName(name, m.HasCharacter)
	c.DuplicateCharacter = ""
	if unique != name {
		c.DuplicateCharacter = name
	}
	c.Name = unique
	m.charIndex[c.Name] = i
	return nil
}

// HasCharacter returns true if a character is registered under name.
func (m *MatrixObject) HasCharacter(name string) bool {
	_, ok := m.charIndex[name]
	return ok
}

// Character returns the character registered under name, or nil.
func (m *MatrixObject) Character(name string) *Character {
	i, ok := m.charIndex[name]
	if !ok {
		return nil
	}
	return m.characters[i]
}

// CharacterAt returns the character in column i (0 based), or nil.
func (m *MatrixObject) CharacterAt(i int) *Character {
	if i < 0 || i >= len(m.characters) {
		return nil
	}
	return m.characters[i]
}

// CharacterIndex returns the column of the named character, or -1.
func (m *MatrixObject) CharacterIndex(name string) int {
	i, ok := m.charIndex[name]
	if !ok {
		return -1
	}
	return i
}

// Characters returns the characters in column order.
func (m *MatrixObject) Characters() []*Character {
	return slices.Clone(m.characters)
}

func (m *MatrixObject) CharacterCount() int {
	return len(m.characters)
}

// SetCell stores the cell of a taxon for the character in column i. The column must already exist, the row
// is grown as needed.
func (m *MatrixObject) SetCell(taxon string, i int, c *Cell) error {
	if !m.HasTaxon(taxon) {
		return ErrOrdinal{"taxon named " + taxon, m.TaxonIndex(taxon), len(m.taxa)}
	}
	if i < 0 || i >= len(m.characters) {
		return ErrOrdinal{"character", i, len(m.characters)}
	}

	row := m.cells[taxon]
	for len(row) <= i {
		row = append(row, nil)
	}
	row[i] = c
	m.cells[taxon] = row
	return nil
}

// Cell returns the cell of a taxon in column i, or nil if it was never scored.
func (m *MatrixObject) Cell(taxon string, i int) *Cell {
	row := m.cells[taxon]
	if i < 0 || i >= len(row) {
		return nil
	}
	return row[i]
}

// Cells returns the row of a taxon. Unscored positions are nil.
func (m *MatrixObject) Cells(taxon string) []*Cell {
	return slices.Clone(m.cells[taxon])
}

// SetTaxonNote attaches a note to the taxon in row ti.
func (m *MatrixObject) SetTaxonNote(ti int, note string) error {
	t := m.TaxonAt(ti)
	if t == nil {
		return ErrOrdinal{"taxon", ti, len(m.taxa)}
	}
	t.Note = note
	return nil
}

// SetCharacterNote attaches a note to the character in column ci.
func (m *MatrixObject) SetCharacterNote(ci int, note string) error {
	c := m.CharacterAt(ci)
	if c == nil {
		return ErrOrdinal{"character", ci, len(m.characters)}
	}
	c.Note = note
	return nil
}

// SetStateNote attaches a note to state si of the character in column ci.
func (m *MatrixObject) SetStateNote(ci, si int, note string) error {
	c := m.CharacterAt(ci)
	if c == nil {
		return ErrOrdinal{"character", ci, len(m.characters)}
	}
	if si < 0 || si >= len(c.States) {
		return ErrOrdinal{"state of " + c.Name, si, len(c.States)}
	}
	c.States[si].Note = note
	return nil
}

// SetCellNote attaches a note to a cell. An unscored cell is created empty to hold the note.
func (m *MatrixObject) SetCellNote(ti, ci int, note string) error {
	t := m.TaxonAt(ti)
	if t == nil {
		return ErrOrdinal{"taxon", ti, len(m.taxa)}
	}
	cell := m.Cell(t.Name, ci)
	if cell == nil {
		cell = &Cell{}
		if err := m.SetCell(t.Name, ci, cell); err != nil {
			return err
		}
	}
	cell.Note = note
	return nil
}

// SetCharacterOrdering sets the ordering of the character in column ci.
func (m *MatrixObject) SetCharacterOrdering(ci int, o Ordering) error {
	c := m.CharacterAt(ci)
	if c == nil {
		return ErrOrdinal{"character", ci, len(m.characters)}
	}
	c.Ordering = o
	return nil
}

// AddBlock stores the raw text of a block that was not understood. The name used is returned, it differs from
// the requested name when a block of that name was already stored.
func (m *MatrixObject) AddBlock(name, text string) string {
	name = UniqueName(name, func(n string) bool {
		_, ok := m.Blocks[n]
		return ok
	})
	m.Blocks[name] = text
	return name
}

// Symbols returns the state symbol order for the matrix, from the SYMBOLS format parameter if present.
func (m *MatrixObject) Symbols() string {
	s, ok := m.Parameters["SYMBOLS"]
	if !ok || s == "" {
		return DefaultSymbols
	}
	return s
}

// CleanCopy returns a deep copy of the matrix. Nothing in the copy is shared with the original.
func (m *MatrixObject) CleanCopy() *MatrixObject {
	n := &MatrixObject{
		Title:      maps.Clone(m.Title),
		Dimensions: maps.Clone(m.Dimensions),
		Blocks:     maps.Clone(m.Blocks),
		Parameters: maps.Clone(m.Parameters),
		DataType:   m.DataType,

		taxonIndex: maps.Clone(m.taxonIndex),
		charIndex:  maps.Clone(m.charIndex),
		cells:      make(map[string][]*Cell, len(m.cells)),
	}

	n.taxa = make([]*Taxon, 0, len(m.taxa))
	for _, t := range m.taxa {
		nt := *t
		n.taxa = append(n.taxa, &nt)
	}

	n.characters = make([]*Character, 0, len(m.characters))
	for _, c := range m.characters {
		nc := *c
		nc.States = make([]*CharacterState, 0, len(c.States))
		for _, s := range c.States {
			ns := *s
			nc.States = append(nc.States, &ns)
		}
		n.characters = append(n.characters, &nc)
	}

	for k, row := range m.cells {
		nrow := make([]*Cell, len(row))
		for i, c := range row {
			if c != nil {
				nc := *c
				nrow[i] = &nc
			}
		}
		n.cells[k] = nrow
	}
	return n
}
