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
	"encoding/json"
)

// Row is one taxon's cells in an exported matrix.
type Row struct {
	Taxon string  `json:"taxon" yaml:"taxon"`
	Cells []*Cell `json:"cells" yaml:"cells"`
}

// Document is the exported form of a MatrixObject. The ordered collections become plain lists.
type Document struct {
	Title      map[string]string `json:"title,omitempty" yaml:"title,omitempty"`
	Dimensions map[string]int    `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Blocks     map[string]string `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	DataType   DataType          `json:"dataType" yaml:"dataType"`

	Characters []*Character `json:"characters" yaml:"characters"`
	Taxa       []*Taxon     `json:"taxa" yaml:"taxa"`
	Cells      []Row        `json:"cells" yaml:"cells"`
}

// Document builds the export form of the matrix. It shares entities with the matrix, use CleanCopy first if
// the result will be modified.
func (m *MatrixObject) Document() *Document {
	d := &Document{
		Title:      m.Title,
		Dimensions: m.Dimensions,
		Blocks:     m.Blocks,
		Parameters: m.Parameters,
		DataType:   m.DataType,
		Characters: m.Characters(),
		Taxa:       m.Taxa(),
		Cells:      make([]Row, 0, len(m.taxa)),
	}
	for _, t := range m.taxa {
		d.Cells = append(d.Cells, Row{Taxon: t.Name, Cells: m.Cells(t.Name)})
	}
	return d
}

func (m *MatrixObject) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Document())
}

// MarshalYAML implements yaml.Marshaler from gopkg.in/yaml.v3.
func (m *MatrixObject) MarshalYAML() (interface{}, error) {
	return m.Document(), nil
}
