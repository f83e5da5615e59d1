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

package phylomatrix_test

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/milochristiansen/phylomatrix"
)

func exportMatrix() *phylomatrix.MatrixObject {
	m := phylomatrix.NewMatrix()
	m.Dimensions["NTAX"] = 2
	m.AddTaxon(phylomatrix.NewTaxon("Pan"))
	m.AddTaxon(phylomatrix.NewTaxon("Homo"))
	c := m.AddCharacter(phylomatrix.NewCharacter("tail"))
	c.AddState("absent")
	c.Ordering = phylomatrix.Ordered
	m.SetCell("Pan", 0, &phylomatrix.Cell{Value: "01", Uncertain: true})
	m.SetCell("Homo", 0, &phylomatrix.Cell{Value: "0", Note: "seen"})
	return m
}

func TestExportJSON(t *testing.T) {
	data, err := json.Marshal(exportMatrix())
	if err != nil {
		t.Fatal(err)
	}

	doc := struct {
		DataType   string
		Characters []struct {
			Name     string
			Ordering string
		}
		Taxa  []struct{ Name string }
		Cells []struct {
			Taxon string
			Cells []map[string]interface{}
		}
	}{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	if doc.DataType != "regular" {
		t.Errorf("Incorrect data type: %v", doc.DataType)
	}
	if len(doc.Characters) != 1 || doc.Characters[0].Ordering != "ordered" {
		t.Errorf("Incorrect characters: %+v", doc.Characters)
	}
	if len(doc.Taxa) != 2 || doc.Taxa[0].Name != "Pan" || doc.Taxa[1].Name != "Homo" {
		t.Errorf("Incorrect taxon order: %+v", doc.Taxa)
	}
	if len(doc.Cells) != 2 || doc.Cells[0].Taxon != "Pan" {
		t.Fatalf("Incorrect rows: %+v", doc.Cells)
	}
	cell := doc.Cells[0].Cells[0]
	if cell["value"] != "01" || cell["uncertain"] != true {
		t.Errorf("Incorrect cell projection: %v", cell)
	}
	if _, ok := doc.Cells[1].Cells[0]["uncertain"]; ok {
		t.Errorf("Certain cell exported an uncertain flag: %v", doc.Cells[1].Cells[0])
	}
}

func TestExportYAML(t *testing.T) {
	data, err := yaml.Marshal(exportMatrix())
	if err != nil {
		t.Fatal(err)
	}

	doc := struct {
		Taxa []struct {
			Name string `yaml:"name"`
		} `yaml:"taxa"`
		Cells []struct {
			Taxon string `yaml:"taxon"`
			Cells []struct {
				Value string `yaml:"value"`
				Note  string `yaml:"note"`
			} `yaml:"cells"`
		} `yaml:"cells"`
	}{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	if len(doc.Taxa) != 2 || doc.Taxa[1].Name != "Homo" {
		t.Errorf("Incorrect taxa: %+v", doc.Taxa)
	}
	if len(doc.Cells) != 2 || doc.Cells[1].Cells[0].Note != "seen" {
		t.Errorf("Incorrect cells: %+v", doc.Cells)
	}
}
