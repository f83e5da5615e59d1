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
	"strings"

	"github.com/milochristiansen/phylomatrix"
	"github.com/milochristiansen/phylomatrix/parse/lex"
)

// assumptionsCommand handles TYPESET, everything else in an ASSUMPTIONS block is skipped.
func (p *NexusParser) assumptionsCommand(tok lex.Token) error {
	if tok.Kind == lex.KindTypeSet {
		return p.typeSet()
	}
	p.log.Debug().Str("command", tok.Value).Msg("Skipping ASSUMPTIONS command.")
	return p.skipCommand()
}

// notesCommand handles TEXT, everything else in a NOTES block is skipped.
func (p *NexusParser) notesCommand(tok lex.Token) error {
	if tok.Kind == lex.KindText {
		return p.text()
	}
	p.log.Debug().Str("command", tok.Value).Msg("Skipping NOTES command.")
	return p.skipCommand()
}

// typeSet reads
//
//	TYPESET [*] name [(options)] = type: ranges [, type: ranges]...;
//
// Only the ord and unord types mean anything here, other types are read and dropped. The whole command is read
// with the ordering tokenizer: everything before the first "type:" is header and skipped.
func (p *NexusParser) typeSet() error {
	p.lexer.Next()
	return p.withTokenizer(orderingTokenizer, func() error {
		ordering := phylomatrix.OrderingUnset
		typed := false
		for {
			if err := p.guard(); err != nil {
				return err
			}
			tok, err := p.lexer.Next()
			if err != nil {
				return err
			}

			switch {
			case tok.Is(lex.KindSemicolon, lex.KindEOF):
				return nil
			case tok.Kind == lex.KindString && p.lexer.IsToken(lex.KindColon):
				p.lexer.Next()
				typed = true
				ordering = orderingType(tok.Value)
			case !typed, tok.Kind == lex.KindComma:
			default:
				if err := p.orderRange(tok, ordering); err != nil {
					return err
				}
			}
		}
	})
}

func orderingType(name string) phylomatrix.Ordering {
	switch strings.ToUpper(strings.TrimSpace(strings.TrimLeft(name, "="))) {
	case "ORD":
		return phylomatrix.Ordered
	case "UNORD":
		return phylomatrix.Unordered
	}
	return phylomatrix.OrderingUnset
}

// orderRange applies an ordering to one range: n, a-b, a-b\step, a-., . or ALL. Numbers are 1 based and "."
// is the last character. A character name may stand in for a number.
func (p *NexusParser) orderRange(first lex.Token, o phylomatrix.Ordering) error {
	count := p.matrix.CharacterCount()

	bound := func(tok lex.Token) (int, error) {
		switch tok.Kind {
		case lex.KindPeriod:
			return count, nil
		case lex.KindNumber:
			return number(tok)
		}
		if i := p.matrix.CharacterIndex(tok.Value); i >= 0 {
			return i + 1, nil
		}
		p.log.Debug().Str("name", tok.Value).Msg("Unknown character in TYPESET.")
		return 0, nil
	}

	from, to, step := 1, count, 1
	if first.Kind != lex.KindAll {
		n, err := bound(first)
		if err != nil {
			return err
		}
		from, to = n, n
		if p.lexer.ConsumeIfMatch(lex.KindDash) {
			tok, err := p.lexer.Next()
			if err != nil {
				return err
			}
			if to, err = bound(tok); err != nil {
				return err
			}
		}
		if p.lexer.ConsumeIfMatch(lex.KindBackslash) {
			if step, _, err = p.assertNumber(); err != nil {
				return err
			}
		}
	}

	if o == phylomatrix.OrderingUnset || from < 1 {
		return nil
	}
	if step < 1 {
		step = 1
	}
	for i := from; i <= to; i += step {
		if err := p.matrix.SetCharacterOrdering(i-1, o); err != nil {
			return err
		}
	}
	return nil
}

// text reads "TEXT TAXON=t CHARACTER=c STATE=s TEXT='note';". TAXON and CHARACTER are 1 based numbers or
// names, STATE is a 0 based state index. The attributes given decide what the note is attached to.
func (p *NexusParser) text() error {
	start := p.lexer.Peek().Pos
	p.lexer.Next()

	taxon, char, state := -1, -1, -1
	hasTaxon, hasChar, hasState := false, false, false
	note := ""
	for {
		if err := p.guard(); err != nil {
			return err
		}
		key, err := p.lexer.Next()
		if err != nil {
			return err
		}
		if key.Is(lex.KindSemicolon, lex.KindEOF) {
			break
		}
		if _, err := p.lexer.Assert(lex.KindEquals); err != nil {
			return err
		}
		value, err := p.lexer.Next()
		if err != nil {
			return err
		}

		switch key.Kind {
		case lex.KindTaxon:
			hasTaxon = true
			if taxon, err = p.ordinal(value, p.matrix.TaxonIndex); err != nil {
				return err
			}
		case lex.KindCharacter:
			hasChar = true
			if char, err = p.ordinal(value, p.matrix.CharacterIndex); err != nil {
				return err
			}
		case lex.KindState:
			hasState = true
			if state, err = number(value); err != nil {
				return err
			}
		case lex.KindText:
			note = value.Value
		}
	}

	switch {
	case hasTaxon && hasChar:
		return p.matrix.SetCellNote(taxon, char, note)
	case hasChar && hasState:
		return p.matrix.SetStateNote(char, state, note)
	case hasChar:
		return p.matrix.SetCharacterNote(char, note)
	case hasTaxon:
		return p.matrix.SetTaxonNote(taxon, note)
	}
	return ErrNoNoteTarget{Pos: start}
}

// ordinal turns a 1 based number or a name into a 0 based index. Unknown names give -1.
func (p *NexusParser) ordinal(tok lex.Token, byName func(string) int) (int, error) {
	if tok.Kind == lex.KindNumber {
		n, err := number(tok)
		return n - 1, err
	}
	return byName(tok.Value), nil
}
