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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milochristiansen/phylomatrix"
	"github.com/milochristiansen/phylomatrix/parse"
)

// Output formats for matrix files.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ReadText reads a whole file. A path of "-" is standard input.
func ReadText(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// LoadMatrixFile loads a matrix file from the given path, detecting its format. On any error the message is
// logged and the program exits with code 1.
func LoadMatrixFile(path string, opts ...parse.Option) (*phylomatrix.MatrixObject, []phylomatrix.Advisory) {
	text, err := ReadText(path)
	HandleErrF(err, "Reading %v", path)

	m, adv, err := parse.ParseMatrix(text, opts...)
	HandleErrF(err, "Parsing %v", path)
	return m, adv
}

// Encode writes a matrix in the given format. For JSON an indent of 0 gives compact output.
func Encode(w io.Writer, m *phylomatrix.MatrixObject, format string, indent int) error {
	switch format {
	case FormatJSON:
		var data []byte
		var err error
		if indent > 0 {
			data, err = json.MarshalIndent(m, "", strings.Repeat(" ", indent))
		} else {
			data, err = json.Marshal(m)
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format: %q", format)
}

// WriteMatrixFile writes out a matrix to the given path, "-" is standard output. On any error the message is
// logged and the program exits with code 1.
func WriteMatrixFile(path string, m *phylomatrix.MatrixObject, format string, indent int) {
	if path == "-" || path == "" {
		HandleErr(Encode(os.Stdout, m, format, indent))
		return
	}

	f := HandleErrV(os.Create(path))
	defer f.Close()

	HandleErrF(Encode(f, m, format, indent), "Writing %v", path)
}
