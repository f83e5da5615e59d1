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
	"strings"
)

// DataType is the kind of data a whole matrix holds.
type DataType int

const (
	DataRegular DataType = iota
	DataDNA
	DataMeristic // Continuous numeric scores instead of discrete states.
)

var dataTypeNames = []string{"regular", "dna", "meristic"}

func (d DataType) String() string {
	return enumName(dataTypeNames, int(d))
}

func (d DataType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// CharacterType is the kind of a single character (matrix column).
type CharacterType int

const (
	TypeDiscrete CharacterType = iota
	TypeContinuous
	TypeMeristic
)

var characterTypeNames = []string{"discrete", "continuous", "meristic"}

func (t CharacterType) String() string {
	return enumName(characterTypeNames, int(t))
}

func (t CharacterType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Ordering is the ordering assumption of a character.
type Ordering int

const (
	OrderingUnset Ordering = iota
	Ordered
	Unordered
)

var orderingNames = []string{"", "ordered", "unordered"}

func (o Ordering) String() string {
	return enumName(orderingNames, int(o))
}

func (o Ordering) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// IncompleteType says why a character state is suspect.
type IncompleteType int

const (
	Complete IncompleteType = iota
	CreatedOnDemand         // The file gave a blank label, the state was made up.
	EmptyName               // The state name is empty.
	IncorrectNumberOfScores // The scores in the matrix disagree with the number of states.
	GenericState            // The state has a generic "State N" label.
)

var incompleteNames = []string{"", "CREATED_ON_DEMAND", "EMPTY_NAME", "INCORRECT_NUMBER_OF_SCORES", "GENERIC_STATE"}

func (i IncompleteType) String() string {
	return enumName(incompleteNames, int(i))
}

func (i IncompleteType) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

// DefaultSymbols is the state symbol order used when a file does not declare its own.
const DefaultSymbols = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Character is one column of the matrix.
type Character struct {
	Number   int           `json:"number" yaml:"number"`
	Name     string        `json:"name" yaml:"name"`
	Type     CharacterType `json:"type" yaml:"type"`
	Note     string        `json:"note,omitempty" yaml:"note,omitempty"`
	Ordering Ordering      `json:"ordering,omitempty" yaml:"ordering,omitempty"`
	Weight   int           `json:"weight,omitempty" yaml:"weight,omitempty"`
	Inactive bool          `json:"inactive,omitempty" yaml:"inactive,omitempty"`

	States []*CharacterState `json:"states" yaml:"states"`

	// DuplicateCharacter is the requested name when it collided with an existing character.
	DuplicateCharacter string `json:"duplicateCharacter,omitempty" yaml:"duplicateCharacter,omitempty"`

	// MaxScoredStatePosition is the highest state index used in the matrix, -1 before any score.
	MaxScoredStatePosition int `json:"maxScoredStatePosition" yaml:"maxScoredStatePosition"`
}

// NewCharacter returns a discrete, unscored character with the default weight.
func NewCharacter(name string) *Character {
	return &Character{
		Name:                   name,
		Weight:                 1,
		MaxScoredStatePosition: -1,
	}
}

// AddState appends a state to the character.
func (c *Character) AddState(name string) *CharacterState {
	s := &CharacterState{Name: name}
	c.States = append(c.States, s)
	return s
}

// ScoreState records that state index i is used in the matrix.
func (c *Character) ScoreState(i int) {
	if i > c.MaxScoredStatePosition {
		c.MaxScoredStatePosition = i
	}
}

// ScoreValue records every state symbol in a raw cell value. Symbols not in the symbol list (missing data,
// gaps) are ignored.
func (c *Character) ScoreValue(value, symbols string) {
	if symbols == "" {
		symbols = DefaultSymbols
	}
	for _, r := range value {
		i := strings.IndexRune(symbols, r)
		if i < 0 {
			i = strings.IndexRune(symbols, toUpper(r))
		}
		if i < 0 {
			continue
		}
		// IndexRune gives a byte offset, symbols are counted in runes.
		c.ScoreState(len([]rune(symbols[:i])))
	}
}

func toUpper(r rune) rune {
	return []rune(strings.ToUpper(string(r)))[0]
}

// Incomplete returns true if any state of the character is flagged.
func (c *Character) Incomplete() bool {
	for _, s := range c.States {
		if s.Incomplete != Complete {
			return true
		}
	}
	return false
}

// CharacterState is one state of a discrete character.
type CharacterState struct {
	Name       string         `json:"name" yaml:"name"`
	Note       string         `json:"note,omitempty" yaml:"note,omitempty"`
	Incomplete IncompleteType `json:"incompleteType,omitempty" yaml:"incompleteType,omitempty"`
}

// Taxon is one row of the matrix.
type Taxon struct {
	Name    string `json:"name" yaml:"name"`
	Note    string `json:"note,omitempty" yaml:"note,omitempty"`
	Extinct bool   `json:"extinct,omitempty" yaml:"extinct,omitempty"`

	// DuplicateTaxon is the requested name when it collided with an existing taxon.
	DuplicateTaxon string `json:"duplicateTaxon,omitempty" yaml:"duplicateTaxon,omitempty"`
}

// NewTaxon creates a taxon from a file label. A leading dagger marks an extinct taxon and is dropped from
// the name.
func NewTaxon(label string) *Taxon {
	t := &Taxon{Name: strings.TrimSpace(label)}
	if strings.HasPrefix(t.Name, "†") {
		t.Extinct = true
		t.Name = strings.TrimSpace(strings.TrimPrefix(t.Name, "†"))
	}
	return t
}

// Cell is one scored value. Value is the raw token text, not yet interpreted against the character states.
type Cell struct {
	Value string `json:"value" yaml:"value"`

	// Uncertain is set when the value came from an uncertainty group rather than a plain or polymorphic cell.
	Uncertain bool   `json:"uncertain,omitempty" yaml:"uncertain,omitempty"`
	Note      string `json:"note,omitempty" yaml:"note,omitempty"`
}
