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

package tools

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/milochristiansen/phylomatrix/parse"
)

var TestEncodeInput = `xread
2 2
Homo 01
Pan 1?
;
cnames
{0 tail absent present;
;
`

func TestEncode(t *testing.T) {
	m, _, err := parse.ParseMatrix(TestEncodeInput)
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := Encode(buf, m, FormatJSON, 2); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  \"characters\": [") {
		t.Errorf("Incorrect JSON indent:\n%v", buf.String())
	}
	doc := map[string]interface{}{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc["dataType"] != "regular" {
		t.Errorf("Incorrect JSON data type: %v", doc["dataType"])
	}

	buf.Reset()
	if err := Encode(buf, m, FormatYAML, 4); err != nil {
		t.Fatal(err)
	}
	doc = map[string]interface{}{}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	taxa, ok := doc["taxa"].([]interface{})
	if !ok || len(taxa) != 2 {
		t.Errorf("Incorrect YAML taxa: %v", doc["taxa"])
	}

	if err := Encode(buf, m, "xml", 0); err == nil {
		t.Errorf("Unknown format not reported.")
	}
}
