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

package lex

import "fmt"

// Position is a location in the reader input. Offset is a byte offset into the backing text, Line starts
// at 1 and Column at 0. Positions are plain values so they can be stored, compared and restored freely.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Start is the position of the first character of any input.
var Start = Position{Offset: 0, Line: 1, Column: 0}

func (p Position) String() string {
	return fmt.Sprintf("%v:%v", p.Line, p.Column)
}

// Before returns true if p is strictly earlier in the input than o.
func (p Position) Before(o Position) bool {
	return p.Offset < o.Offset
}

// advance returns the position after reading r, which occupied width bytes of the source.
func (p Position) advance(r rune, width int) Position {
	p.Offset += width
	if r == '\n' {
		p.Line++
		p.Column = 0
		return p
	}
	p.Column++
	return p
}
