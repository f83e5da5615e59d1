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

// CellTokenizer reads the cells of one matrix row. Each character is one cell, "(...)" is a polymorphic
// cell, "[...]" and "{...}" are uncertain cells. Separators (whitespace and commas) inside groups are dropped.
// A ';' is returned as its own token so the caller can see the end of the matrix.
type CellTokenizer struct {
	Base

	// BracketComments makes "[...]" a comment that is skipped instead of an uncertain cell.
	BracketComments bool
}

func NewCellTokenizer(r Reader) *CellTokenizer {
	return &CellTokenizer{Base: NewBase(r)}
}

func (t *CellTokenizer) Next() (Token, error) {
	for {
		c := t.skipWhitespace()
		pos := t.r.Position()

		switch c {
		case EOF:
			return Token{Pos: pos, Kind: KindEOF}, nil
		case ';':
			t.r.Next()
			return Token{Pos: pos, Kind: KindSemicolon, Value: ";"}, nil
		case '(':
			return t.group(pos, ')', KindCellPolymorphic)
		case '{':
			return t.group(pos, '}', KindCellUncertain)
		case '[':
			if !t.BracketComments {
				return t.group(pos, ']', KindCellUncertain)
			}
			if err := skipComment(&t.Base, pos); err != nil {
				return Token{}, err
			}
			continue
		}

		t.r.Next()
		return Token{Pos: pos, Kind: KindCell, Value: string(c)}, nil
	}
}

func (t *CellTokenizer) group(pos Position, closer rune, kind Kind) (Token, error) {
	t.r.Next()

	buf := []rune{}
	for {
		c := t.r.Next()
		switch {
		case c == EOF:
			return Token{}, ErrUnterminated{What: "cell group", Pos: pos}
		case c == closer:
			return Token{Pos: pos, Kind: kind, Value: string(buf)}, nil
		case c == ',' || IsWhitespace(c):
		default:
			buf = append(buf, c)
		}
	}
}

// skipComment eats a (possibly nested) bracket comment. The reader must be on the opening bracket.
func skipComment(b *Base, pos Position) error {
	b.r.Next()
	depth := 1
	for depth > 0 {
		switch b.r.Next() {
		case EOF:
			return ErrUnterminated{What: "comment", Pos: pos}
		case '[':
			depth++
		case ']':
			depth--
		}
	}
	return nil
}

// ContinuousCellTokenizer reads continuous (meristic) cells. Each whitespace delimited run is one cell, this
// covers integers, decimals, ranges like "1.5-2" and missing data markers.
type ContinuousCellTokenizer struct {
	Base

	BracketComments bool
}

func NewContinuousCellTokenizer(r Reader) *ContinuousCellTokenizer {
	return &ContinuousCellTokenizer{Base: NewBase(r)}
}

func (t *ContinuousCellTokenizer) Next() (Token, error) {
	for {
		c := t.skipWhitespace()
		pos := t.r.Position()

		switch {
		case c == EOF:
			return Token{Pos: pos, Kind: KindEOF}, nil
		case c == ';':
			t.r.Next()
			return Token{Pos: pos, Kind: KindSemicolon, Value: ";"}, nil
		case c == '[' && t.BracketComments:
			if err := skipComment(&t.Base, pos); err != nil {
				return Token{}, err
			}
			continue
		}

		buf := []rune{}
		for {
			n := t.r.Peek()
			if n == EOF || n == ';' || IsWhitespace(n) || (n == '[' && t.BracketComments) {
				break
			}
			buf = append(buf, t.r.Next())
		}
		return Token{Pos: pos, Kind: KindCell, Value: string(buf)}, nil
	}
}
