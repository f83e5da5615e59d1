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

package main

import (
	"strings"
	"testing"

	"github.com/milochristiansen/phylomatrix/client"
	"github.com/milochristiansen/phylomatrix/parse"
)

var TestReportInput = `#NEXUS
BEGIN DATA;
	DIMENSIONS NTAX=2 NCHAR=2;
	CHARSTATELABELS 1 tail / absent _, 2 crest / 'present (bony' 'ridge)' absent;
	MATRIX
	Homo 00
	Pan  11
	;
END;
`

func TestRenderReport(t *testing.T) {
	m, adv, err := parse.ParseMatrix(TestReportInput)
	if err != nil {
		t.Fatal(err)
	}
	if len(adv) != 4 {
		t.Fatalf("Incorrect advisories: %v", adv)
	}

	out := renderReport("test.nex", m, adv)
	for _, want := range []string{"test.nex", "2 taxa, 2 characters", "tail", "CREATED_ON_DEMAND", `"State 1"`, "crest", "INCORRECT_NUMBER_OF_SCORES", "4 flagged states"} {
		if !strings.Contains(out, want) {
			t.Errorf("Report missing %q:\n%v", want, out)
		}
	}
	if strings.Index(out, "tail") > strings.Index(out, "crest") {
		t.Errorf("Characters out of order:\n%v", out)
	}

	out = renderReport("clean.nex", m, nil)
	if !strings.Contains(out, "no problems found") {
		t.Errorf("Incorrect clean report:\n%v", out)
	}
}

func TestProbe(t *testing.T) {
	if f := probe(TestReportInput); f != "nexus" {
		t.Errorf("Incorrect format: %v", f)
	}
	if f := probe("xread\n1 1\nA 0\n;\n"); f != "tnt" {
		t.Errorf("Incorrect format: %v", f)
	}
	if f := probe("hello"); f != "unknown" {
		t.Errorf("Incorrect format: %v", f)
	}
}

func TestRenderTable(t *testing.T) {
	lib := client.NewLibrary()
	id, err := lib.Import("test.nex", TestReportInput)
	if err != nil {
		t.Fatal(err)
	}
	info, _ := lib.Info(id)

	out := renderTable([]client.Info{info})
	for _, want := range []string{"ID", "FORMAT", id, "nexus", "test.nex"} {
		if !strings.Contains(out, want) {
			t.Errorf("Table missing %q:\n%v", want, out)
		}
	}
}
