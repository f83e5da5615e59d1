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
	"errors"
	"fmt"

	"github.com/milochristiansen/phylomatrix/parse/lex"
)

// ErrUnknownFormat is returned by ParseMatrix when no grammar accepts the input.
var ErrUnknownFormat = errors.New("Input is not a recognized matrix file.")

// ErrUnknownCommand is returned when a block that has no catch all contains a command the parser does not know.
type ErrUnknownCommand struct {
	Pos     lex.Position
	Block   string
	Command string
}

func (err ErrUnknownCommand) Error() string {
	return fmt.Sprintf("Unknown command %q in %v block at %v", err.Command, err.Block, err.Pos)
}

// ErrNoNoteTarget is returned for a note that does not name a taxon or character.
type ErrNoNoteTarget struct {
	Pos lex.Position
}

func (err ErrNoNoteTarget) Error() string {
	return fmt.Sprintf("Note without a taxon or character at %v", err.Pos)
}

// ErrInfiniteLoop is returned when the parser stops making progress.
type ErrInfiniteLoop struct {
	Pos lex.Position
}

func (err ErrInfiniteLoop) Error() string {
	return fmt.Sprintf("Parser stuck at %v", err.Pos)
}

// ErrRowLength is returned when a matrix row does not have the declared number of cells.
type ErrRowLength struct {
	Pos   lex.Position
	Taxon string
	Got   int
	Want  int
}

func (err ErrRowLength) Error() string {
	return fmt.Sprintf("Row for taxon %q at %v has %v cells, expected %v", err.Taxon, err.Pos, err.Got, err.Want)
}

// ErrBadNumber is returned when a token that must be an integer is not one.
type ErrBadNumber struct {
	Pos  lex.Position
	Text string
}

func (err ErrBadNumber) Error() string {
	return fmt.Sprintf("Malformed number %q at %v", err.Text, err.Pos)
}
