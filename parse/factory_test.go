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
	"errors"
	"testing"

	"github.com/milochristiansen/phylomatrix/parse"
)

func TestParserFor(t *testing.T) {
	cases := []struct {
		input  string
		format parse.Format
	}{
		{"#NEXUS\nBEGIN TAXA;\nEND;\n", parse.FormatNexus},
		{"BEGIN DATA;\nEND;\n", parse.FormatNexus},
		{"xread\n1 1\nA 0\n;\n", parse.FormatTNT},
		{"mxram 100;\ntaxname +64;\nnstates 8;\nxread\n1 1\nA 0\n;\n", parse.FormatTNT},
	}

	for _, test := range cases {
		p := parse.ParserFor(test.input)
		if p == nil {
			t.Errorf("Input not recognized: %q", test.input)
			continue
		}
		if p.Format() != test.format {
			t.Errorf("Incorrect format for %q: %v", test.input, p.Format())
		}
	}

	for _, input := range []string{"", "Taxon,Character 1\nHomo,0\n", "mxram 100;\nproc/;\n"} {
		if p := parse.ParserFor(input); p != nil {
			t.Errorf("Input incorrectly recognized as %v: %q", p.Format(), input)
		}
	}
}

func TestParseMatrix(t *testing.T) {
	m, adv, err := parse.ParseMatrix(`#NEXUS
BEGIN DATA;
	DIMENSIONS NTAX=2 NCHAR=1;
	CHARSTATELABELS 1 crest / 'present (bony' 'ridge)' absent;
	MATRIX
	A 0
	B 1
	;
END;
`)
	if err != nil {
		t.Fatal(err)
	}
	if m.CharacterCount() != 1 {
		t.Fatalf("Incorrect character count: %v", m.CharacterCount())
	}
	if len(adv) != 3 {
		t.Errorf("Incorrect advisories: %v", adv)
	}

	_, _, err = parse.ParseMatrix("nothing to see here")
	if !errors.Is(err, parse.ErrUnknownFormat) {
		t.Errorf("Incorrect error: %v", err)
	}
}
