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

import (
	"fmt"
	"strings"
)

// ErrSeek is returned when a reader is asked to move outside of its content.
type ErrSeek struct {
	Pos Position
}

func (err ErrSeek) Error() string {
	return fmt.Sprintf("Seek out of range to offset %v (%v)", err.Pos.Offset, err.Pos)
}

// ErrUnterminated is returned by tokenizers when a quoted string, comment or cell group runs off the end of
// the input.
type ErrUnterminated struct {
	What string
	Pos  Position
}

func (err ErrUnterminated) Error() string {
	return fmt.Sprintf("Unterminated %v starting at %v", err.What, err.Pos)
}

// ErrSyntax is returned by Lexer.Assert when the next token is not one of the expected kinds.
type ErrSyntax struct {
	Expected []Kind
	Got      Token
}

func (err ErrSyntax) Error() string {
	names := make([]string, 0, len(err.Expected))
	for _, k := range err.Expected {
		names = append(names, k.String())
	}
	return fmt.Sprintf("Expected %v but found %v %q at %v", strings.Join(names, " or "), err.Got.Kind, err.Got.Value, err.Got.Pos)
}
