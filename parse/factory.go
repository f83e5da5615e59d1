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
	"github.com/milochristiansen/phylomatrix"
	"github.com/milochristiansen/phylomatrix/parse/lex"
)

// ParserFor returns a parser for text, or nil if neither format accepts it. The NEXUS probe is tried first,
// then the TNT probe.
func ParserFor(text string, opts ...Option) Parser {
	r := lex.NewStringReader(text)
	o := newOptions(opts)

	if IsNexus(r) {
		o.log.Debug().Msg("Input looks like NEXUS.")
		return NewNexusParser(r, opts...)
	}
	if err := r.SetPosition(lex.Start); err != nil {
		return nil
	}
	if IsTNT(r) {
		o.log.Debug().Msg("Input looks like TNT.")
		return NewTNTParser(r, opts...)
	}
	o.log.Debug().Msg("Input format not recognized.")
	return nil
}

// ParseMatrix detects the format of text, parses it and runs Validate over the result.
func ParseMatrix(text string, opts ...Option) (*phylomatrix.MatrixObject, []phylomatrix.Advisory, error) {
	p := ParserFor(text, opts...)
	if p == nil {
		return nil, nil, ErrUnknownFormat
	}

	m, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}
	return m, phylomatrix.Validate(m), nil
}
