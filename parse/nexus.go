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
	"fmt"
	"strings"

	"github.com/milochristiansen/phylomatrix"
	"github.com/milochristiansen/phylomatrix/parse/lex"
)

/*

A NEXUS file is a list of blocks:

	#NEXUS
	BEGIN TAXA;
		DIMENSIONS NTAX=2;
		TAXLABELS Homo Pan;
	END;
	BEGIN CHARACTERS;
		DIMENSIONS NCHAR=3;
		FORMAT SYMBOLS="01";
		CHARSTATELABELS 1 tail / absent present, 2 ...;
		MATRIX
			Homo 010
			Pan  1(01)1
		;
	END;

Some exporters leave out the BEGIN for the character data, so a bare STATELABELS or MATRIX at the top level
is read as if it was in a CHARACTERS block. Blocks that are not understood are kept as raw text.

*/

// NexusParser reads the block structured format.
type NexusParser struct {
	base

	firstRow string // Taxon of the first matrix row, source for MATCHCHAR cells.
}

// NewNexusParser creates a parser over r. The reader should be at the start of the file.
func NewNexusParser(r lex.Reader, opts ...Option) *NexusParser {
	p := &NexusParser{base: newBase(r, lex.NewNexusTokenizer(r), opts)}
	p.lexer.Ignore(lex.KindComment)
	return p
}

func (p *NexusParser) Format() Format {
	return FormatNexus
}

// IsNexus checks if the first token of the reader is #NEXUS or BEGIN. The reader is moved back to the start.
func IsNexus(r lex.Reader) bool {
	start := r.Position()
	defer r.SetPosition(start)

	l := lex.NewLexer(lex.NewNexusTokenizer(r))
	l.Ignore(lex.KindComment)
	return l.IsToken(lex.KindNexus, lex.KindBegin)
}

// Parse reads the whole file.
func (p *NexusParser) Parse() (*phylomatrix.MatrixObject, error) {
	for {
		if err := p.guard(); err != nil {
			return nil, err
		}

		tok := p.lexer.Peek()
		var err error
		switch tok.Kind {
		case lex.KindEOF:
			if err := p.lexer.Err(); err != nil {
				return nil, err
			}
			return p.matrix, nil
		case lex.KindNexus, lex.KindSemicolon:
			p.lexer.Next()
		case lex.KindBegin:
			err = p.block()
		case lex.KindStateLabels, lex.KindMatrix:
			p.log.Debug().Str("command", tok.Value).Stringer("pos", tok.Pos).Msg("Command outside of a block, reading as character data.")
			err = p.charactersCommand(tok)
		case lex.KindLog:
			err = p.skipCommand()
		default:
			_, err = p.lexer.Assert(lex.KindNexus, lex.KindBegin)
		}
		if err != nil {
			return nil, err
		}
	}
}

// block reads one BEGIN ... END block.
func (p *NexusParser) block() error {
	if _, err := p.lexer.Assert(lex.KindBegin); err != nil {
		return err
	}
	name, err := p.lexer.Next()
	if err != nil {
		return err
	}
	if _, err := p.lexer.Assert(lex.KindSemicolon); err != nil {
		return err
	}

	switch name.Kind {
	case lex.KindTaxa:
		return p.commands("TAXA", p.taxaCommand)
	case lex.KindCharacters, lex.KindData:
		return p.commands("CHARACTERS", p.charactersCommand)
	case lex.KindAssumptions:
		return p.commands("ASSUMPTIONS", p.assumptionsCommand)
	case lex.KindNotes:
		return p.commands("NOTES", p.notesCommand)
	}
	return p.rawBlock(name)
}

// commands reads the commands of a block up to its END. TITLE is handled here for every block kind.
func (p *NexusParser) commands(kind string, command func(tok lex.Token) error) error {
	for {
		if err := p.guard(); err != nil {
			return err
		}

		tok := p.lexer.Peek()
		switch tok.Kind {
		case lex.KindEOF:
			if err := p.lexer.Err(); err != nil {
				return err
			}
			p.log.Warn().Str("block", kind).Msg("Block not closed before end of file.")
			return nil
		case lex.KindEnd, lex.KindEndBlock:
			p.lexer.Next()
			p.lexer.ConsumeIfMatch(lex.KindSemicolon)
			return nil
		case lex.KindSemicolon:
			p.lexer.Next()
		case lex.KindTitle:
			p.lexer.Next()
			title, err := p.words()
			if err != nil {
				return err
			}
			p.matrix.Title[kind] = title
		default:
			if err := command(tok); err != nil {
				return err
			}
		}
	}
}

// rawBlock stores the text of a block the parser does not understand.
func (p *NexusParser) rawBlock(name lex.Token) error {
	start := p.lexer.Position()
	for {
		if err := p.guard(); err != nil {
			return err
		}
		tok, err := p.lexer.Next()
		if err != nil {
			return err
		}
		if tok.Is(lex.KindEnd, lex.KindEndBlock, lex.KindEOF) {
			text := strings.TrimSpace(p.reader.Slice(start, tok.Pos))
			stored := p.matrix.AddBlock(name.Value, text)
			p.log.Debug().Str("block", stored).Msg("Kept unknown block as text.")
			if tok.Kind == lex.KindEOF {
				p.log.Warn().Str("block", name.Value).Msg("Block not closed before end of file.")
			}
			p.lexer.ConsumeIfMatch(lex.KindSemicolon)
			return nil
		}
	}
}

// ignorable commands may show up in TAXA and CHARACTERS blocks, they are skipped.
func ignorable(tok lex.Token) bool {
	return tok.Is(lex.KindOptions, lex.KindLink, lex.KindBlockID, lex.KindEliminate)
}

func (p *NexusParser) taxaCommand(tok lex.Token) error {
	switch {
	case tok.Kind == lex.KindDimensions:
		return p.dimensions()
	case tok.Kind == lex.KindTaxLabels:
		return p.taxLabels()
	case ignorable(tok):
		return p.skipCommand()
	}
	return ErrUnknownCommand{Pos: tok.Pos, Block: "TAXA", Command: tok.Value}
}

func (p *NexusParser) charactersCommand(tok lex.Token) error {
	switch {
	case tok.Kind == lex.KindDimensions:
		return p.dimensions()
	case tok.Kind == lex.KindTaxLabels:
		// DATA blocks with NEWTAXA carry their own taxon list.
		return p.taxLabels()
	case tok.Kind == lex.KindFormat:
		return p.format()
	case tok.Kind == lex.KindCharLabels:
		return p.charLabels()
	case tok.Kind == lex.KindStateLabels:
		return p.stateLabels()
	case tok.Kind == lex.KindCharStateLabels:
		return p.charStateLabels()
	case tok.Kind == lex.KindMatrix:
		return p.matrixCommand()
	case ignorable(tok):
		return p.skipCommand()
	}
	return ErrUnknownCommand{Pos: tok.Pos, Block: "CHARACTERS", Command: tok.Value}
}

// dimensions reads NTAX=n NCHAR=n and the NEWTAXA flag. Running out of input only ends this command.
func (p *NexusParser) dimensions() error {
	p.lexer.Next()
	for {
		if err := p.guard(); err != nil {
			return err
		}
		if end, err := p.atEnd(); end {
			if err == nil {
				p.log.Warn().Msg("DIMENSIONS not finished before end of file.")
			}
			return err
		}

		key, _ := p.lexer.Next()
		if key.Kind == lex.KindSemicolon {
			return nil
		}
		if key.Kind == lex.KindNewTaxa {
			p.matrix.Dimensions["NEWTAXA"] = 1
			continue
		}

		// At the end of input the check at the top of the loop takes over.
		if _, err := p.lexer.Assert(lex.KindEquals); err != nil {
			if p.lexer.IsToken(lex.KindEOF) && p.lexer.Err() == nil {
				continue
			}
			return err
		}
		if p.lexer.IsToken(lex.KindEOF) {
			continue
		}
		n, _, err := p.assertNumber()
		if err != nil {
			return err
		}
		p.matrix.Dimensions[strings.ToUpper(key.Value)] = n
	}
}

func (p *NexusParser) taxLabels() error {
	p.lexer.Next()
	for {
		if err := p.guard(); err != nil {
			return err
		}
		tok, err := p.lexer.Next()
		if err != nil {
			return err
		}
		if tok.Is(lex.KindSemicolon, lex.KindEOF) {
			break
		}
		p.matrix.AddTaxon(phylomatrix.NewTaxon(tok.Value))
	}

	if n, ok := p.matrix.Dimensions["NTAX"]; ok && n != p.matrix.TaxonCount() {
		p.log.Warn().Int("declared", n).Int("found", p.matrix.TaxonCount()).Msg("TAXLABELS does not match NTAX.")
	}
	return nil
}

// format reads the KEY=value pairs of FORMAT. Keys without a value are stored with an empty value.
func (p *NexusParser) format() error {
	p.lexer.Next()
	for {
		if err := p.guard(); err != nil {
			return err
		}
		key, err := p.lexer.Next()
		if err != nil {
			return err
		}
		if key.Is(lex.KindSemicolon, lex.KindEOF) {
			return nil
		}

		name := strings.ToUpper(key.Value)
		value := ""
		if p.lexer.ConsumeIfMatch(lex.KindEquals) {
			tok, err := p.lexer.Next()
			if err != nil {
				return err
			}
			if tok.Is(lex.KindSemicolon, lex.KindEOF) {
				p.matrix.Parameters[name] = ""
				return nil
			}
			value = tok.Value
		}

		switch name {
		case "SYMBOLS":
			value = strings.Join(strings.Fields(value), "")
		case "DATATYPE":
			switch strings.ToUpper(value) {
			case "DNA", "RNA", "NUCLEOTIDE":
				p.matrix.DataType = phylomatrix.DataDNA
			case "CONTINUOUS":
				p.matrix.DataType = phylomatrix.DataMeristic
			}
		}
		p.matrix.Parameters[name] = value
	}
}

// maxCharacters bounds the character columns a file may use when it does not declare NCHAR.
const maxCharacters = 1 << 20

// character returns the character in column i (0 based), adding placeholders up to it as needed. Columns at or
// past NCHAR are an error.
func (p *NexusParser) character(i int) (*phylomatrix.Character, error) {
	limit := maxCharacters
	if n := p.matrix.Dimensions["NCHAR"]; n > 0 {
		limit = n
	}
	if i < 0 || i >= limit {
		return nil, phylomatrix.ErrOrdinal{What: "character", Index: i, Count: limit}
	}

	for p.matrix.CharacterCount() <= i {
		c := phylomatrix.NewCharacter(fmt.Sprintf("Character %d", p.matrix.CharacterCount()+1))
		if p.matrix.DataType == phylomatrix.DataMeristic {
			c.Type = phylomatrix.TypeMeristic
		}
		p.matrix.AddCharacter(c)
	}
	return p.matrix.CharacterAt(i), nil
}

// nameCharacter sets the name of the character in column i. A blank name leaves the placeholder.
func (p *NexusParser) nameCharacter(i int, name string) error {
	if _, err := p.character(i); err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	return p.matrix.RenameCharacter(i, name)
}

func (p *NexusParser) charLabels() error {
	p.lexer.Next()
	for i := 0; ; i++ {
		if err := p.guard(); err != nil {
			return err
		}
		tok, err := p.lexer.Next()
		if err != nil {
			return err
		}
		if tok.Is(lex.KindSemicolon, lex.KindEOF) {
			return nil
		}
		if err := p.nameCharacter(i, tok.Value); err != nil {
			return err
		}
	}
}

// states reads state labels up to a comma or semicolon. The comma is consumed, the semicolon is not.
func (p *NexusParser) states(c *phylomatrix.Character) error {
	for {
		if err := p.guard(); err != nil {
			return err
		}
		tok := p.lexer.Peek()
		switch tok.Kind {
		case lex.KindSemicolon, lex.KindEOF:
			return p.lexer.Err()
		case lex.KindComma:
			p.lexer.Next()
			return nil
		}
		p.lexer.Next()
		addState(c, tok.Value)
	}
}

// stateLabels reads "STATELABELS 1 absent present, 2 small large;".
func (p *NexusParser) stateLabels() error {
	p.lexer.Next()
	for {
		if err := p.guard(); err != nil {
			return err
		}
		if p.lexer.ConsumeIfMatch(lex.KindSemicolon) {
			return nil
		}
		if end, err := p.atEnd(); end {
			return err
		}
		if p.lexer.ConsumeIfMatch(lex.KindComma) {
			continue
		}

		n, tok, err := p.assertNumber()
		if err != nil {
			return err
		}
		if n < 1 {
			return phylomatrix.ErrOrdinal{What: fmt.Sprintf("character (at %v)", tok.Pos), Index: n, Count: p.matrix.CharacterCount()}
		}
		c, err := p.character(n - 1)
		if err != nil {
			return err
		}
		if err := p.states(c); err != nil {
			return err
		}
	}
}

// charStateLabels reads "CHARSTATELABELS 1 tail / absent present, 2 size, 3 / a b;".
func (p *NexusParser) charStateLabels() error {
	p.lexer.Next()
	for {
		if err := p.guard(); err != nil {
			return err
		}
		if p.lexer.ConsumeIfMatch(lex.KindSemicolon) {
			return nil
		}
		if end, err := p.atEnd(); end {
			return err
		}
		if p.lexer.ConsumeIfMatch(lex.KindComma) {
			continue
		}

		n, tok, err := p.assertNumber()
		if err != nil {
			return err
		}
		if n < 1 {
			return phylomatrix.ErrOrdinal{What: fmt.Sprintf("character (at %v)", tok.Pos), Index: n, Count: p.matrix.CharacterCount()}
		}

		name := ""
		if !p.lexer.IsToken(lex.KindSlash, lex.KindComma, lex.KindSemicolon, lex.KindEOF) {
			tok, _ := p.lexer.Next()
			name = tok.Value
		}
		if err := p.nameCharacter(n-1, name); err != nil {
			return err
		}

		if p.lexer.ConsumeIfMatch(lex.KindSlash) {
			c, err := p.character(n - 1)
			if err != nil {
				return err
			}
			if err := p.states(c); err != nil {
				return err
			}
		}
	}
}
