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

package parse_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/milochristiansen/phylomatrix"
	"github.com/milochristiansen/phylomatrix/parse"
	"github.com/milochristiansen/phylomatrix/parse/lex"
)

func parseTNT(t *testing.T, input string, opts ...parse.Option) (*phylomatrix.MatrixObject, error) {
	t.Helper()
	r := lex.NewStringReader(input)
	if !parse.IsTNT(r) {
		t.Fatalf("Input not recognized as TNT.")
	}
	return parse.NewTNTParser(r, opts...).Parse()
}

// Three characters with the same name and different state counts. Each one must keep its own states.
var TestTNTRepeatedNamesInput = `xread
'Bipedal test'
3 3
Homo 012
Pan 101
Gorilla 1?0
;
cnames
{0 bipedal no yes;
{1 bipedal absent present partial;
{2 bipedal one two three four;
;
proc/;
`

func TestTNTRepeatedNames(t *testing.T) {
	m, err := parseTNT(t, TestTNTRepeatedNamesInput)
	if err != nil {
		t.Fatal(err)
	}

	if m.Title["XREAD"] != "Bipedal test" {
		t.Errorf("Incorrect title: %v", m.Title)
	}

	names := []string{"bipedal", "bipedal - 1", "bipedal - 2"}
	states := []int{2, 3, 4}
	for i, c := range m.Characters() {
		if c.Name != names[i] {
			t.Errorf("Incorrect name for character %v: %q", i, c.Name)
		}
		if len(c.States) != states[i] {
			t.Errorf("Incorrect state count for character %v: %v", i, len(c.States))
		}
	}
	if d := m.CharacterAt(2).DuplicateCharacter; d != "bipedal" {
		t.Errorf("Incorrect duplicate marker: %q", d)
	}
	if s := m.CharacterAt(2).States[3].Name; s != "four" {
		t.Errorf("Incorrect last state: %q", s)
	}

	if m.TaxonCount() != 3 {
		t.Errorf("Incorrect taxon count: %v", m.TaxonCount())
	}
	if c := m.Cell("Gorilla", 1); c == nil || c.Value != "?" {
		t.Errorf("Incorrect missing cell: %+v", c)
	}

	if adv := phylomatrix.Validate(m); len(adv) != 0 {
		t.Errorf("Incorrect advisories: %v", adv)
	}
}

var TestTNTSectionsInput = `nstates num 2;
xread
5 2
&[cont]
Homo 1.5 2-3 ?
Pan 0.5 1 2
&[num]
Homo 01
Pan 1?
;
ccode + 0 [ 3 ] /2 4;
comments 2
0 3 Scored from photo; see plate 3;
1 4 second note;
;
`

func TestTNTSections(t *testing.T) {
	m, err := parseTNT(t, TestTNTSectionsInput)
	if err != nil {
		t.Fatal(err)
	}

	if m.CharacterCount() != 5 {
		t.Fatalf("Incorrect character count: %v", m.CharacterCount())
	}
	for i, c := range m.Characters() {
		want := phylomatrix.TypeDiscrete
		if i < 3 {
			want = phylomatrix.TypeContinuous
		}
		if c.Type != want {
			t.Errorf("Incorrect type for character %v: %v", i, c.Type)
		}
	}

	if c := m.Cell("Homo", 1); c == nil || c.Value != "2-3" {
		t.Errorf("Incorrect continuous cell: %+v", c)
	}
	if c := m.Cell("Pan", 3); c == nil || c.Value != "1" {
		t.Errorf("Incorrect discrete cell: %+v", c)
	}

	if c := m.CharacterAt(0); c.Ordering != phylomatrix.Ordered || c.Inactive {
		t.Errorf("Incorrect cost code for character 0: %+v", c)
	}
	if c := m.CharacterAt(3); c.Ordering != phylomatrix.Ordered || c.Inactive || c.Weight != 1 {
		t.Errorf("Incorrect cost code for character 3: %+v", c)
	}
	if c := m.CharacterAt(4); c.Ordering != phylomatrix.Ordered || !c.Inactive || c.Weight != 2 {
		t.Errorf("Incorrect cost code for character 4: %+v", c)
	}

	if c := m.Cell("Homo", 3); c == nil || c.Note != "Scored from photo; see plate 3" {
		t.Errorf("Incorrect first comment: %+v", c)
	}
	if c := m.Cell("Pan", 4); c == nil || c.Note != "second note" || c.Value != "?" {
		t.Errorf("Incorrect second comment: %+v", c)
	}
}

func TestTNTCostCodeRanges(t *testing.T) {
	cases := []struct {
		code    string
		ordered []bool
	}{
		{"ccode + .;", []bool{true, true, true, true}},
		{"ccode + 1.2;", []bool{false, true, true, false}},
		{"ccode + 2.;", []bool{false, false, true, true}},
		{"ccode + 0 . 3;", []bool{true, true, true, true}},
		{"ccode + 0 3;", []bool{true, false, false, true}},
	}

	for _, test := range cases {
		m, err := parseTNT(t, "xread\n4 1\nA 0101\n;\n"+test.code+"\n")
		if err != nil {
			t.Errorf("Unexpected error for %q: %v", test.code, err)
			continue
		}
		for i, want := range test.ordered {
			if got := m.CharacterAt(i).Ordering == phylomatrix.Ordered; got != want {
				t.Errorf("Incorrect ordering for %q character %v: %v", test.code, i, got)
			}
		}
	}
}

func TestTNTInterleavedRows(t *testing.T) {
	m, err := parseTNT(t, `xread
4 2
Homo 01
Pan 10
Homo 11
Pan 00
;
`)
	if err != nil {
		t.Fatal(err)
	}
	if m.TaxonCount() != 2 {
		t.Fatalf("Incorrect taxon count: %v", m.TaxonCount())
	}
	row := m.Cells("Homo")
	if len(row) != 4 || row[2].Value != "1" {
		t.Errorf("Incorrect interleaved row: %v", row)
	}
}

func TestTNTDNA(t *testing.T) {
	m, err := parseTNT(t, "nstates dna;\nxread\n4 2\nA ACGT\nB ACG-\n;\n")
	if err != nil {
		t.Fatal(err)
	}
	if m.DataType != phylomatrix.DataDNA {
		t.Errorf("Incorrect data type: %v", m.DataType)
	}
	if c := m.CharacterAt(0); c.MaxScoredStatePosition != -1 || len(c.States) != 0 {
		t.Errorf("DNA cell scored: %+v", c)
	}
	if c := m.Cell("B", 3); c == nil || c.Value != "-" {
		t.Errorf("Incorrect gap cell: %+v", c)
	}
}

func TestTNTRowLength(t *testing.T) {
	_, err := parseTNT(t, "xread\n3 2\nHomo 01\nPan 010\n;\n")
	var rl parse.ErrRowLength
	if !errors.As(err, &rl) {
		t.Fatalf("Incorrect error: %v", err)
	}
	if rl.Taxon != "Homo" || rl.Got != 2 || rl.Want != 3 {
		t.Errorf("Incorrect row length error: %+v", rl)
	}
}

func TestTNTCommentCountWarning(t *testing.T) {
	buf := &bytes.Buffer{}
	log := zerolog.New(buf)

	m, err := parseTNT(t, "xread\n2 1\nA 01\n;\ncomments 3\n0 1 only one;\n;\n", parse.WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}
	if c := m.Cell("A", 1); c == nil || c.Note != "only one" {
		t.Errorf("Incorrect comment: %+v", c)
	}
	if !strings.Contains(buf.String(), "COMMENTS count does not match") {
		t.Errorf("Missing warning, log was: %v", buf.String())
	}
}

func TestTNTRepeatedTaxon(t *testing.T) {
	m, err := parseTNT(t, "xread\n2 3\nHomo 01\nPan 10\nHomo 11\n;\n")
	if err != nil {
		t.Fatal(err)
	}
	if m.TaxonCount() != 3 {
		t.Fatalf("Incorrect taxon count: %v", m.TaxonCount())
	}
	if taxon := m.TaxonAt(2); taxon.Name != "Homo - 1" || taxon.DuplicateTaxon != "Homo" {
		t.Errorf("Incorrect repeated taxon: %+v", taxon)
	}
	if c := m.Cell("Homo", 1); c == nil || c.Value != "1" {
		t.Errorf("Incorrect cell for first row: %+v", c)
	}
	if c := m.Cell("Homo - 1", 0); c == nil || c.Value != "1" {
		t.Errorf("Incorrect cell for repeated row: %+v", c)
	}
}

func TestTNTCostCodeBounds(t *testing.T) {
	buf := &bytes.Buffer{}
	log := zerolog.New(buf)

	m, err := parseTNT(t, "xread\n2 1\nA 01\n;\nccode + 0.99999999;\nccode - 5;\n", parse.WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range m.Characters() {
		if c.Ordering != phylomatrix.Ordered {
			t.Errorf("Incorrect ordering for character %v: %v", i, c.Ordering)
		}
	}
	if !strings.Contains(buf.String(), "CCODE for a character that does not exist") {
		t.Errorf("Missing warning, log was: %v", buf.String())
	}
}
