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

package lex_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/milochristiansen/phylomatrix/parse/lex"
)

func TestLexerAssert(t *testing.T) {
	l := lex.NewLexer(lex.NewNexusTokenizer(lex.NewStringReader("BEGIN TAXA;")))

	if _, err := l.Assert(lex.KindBegin); err != nil {
		t.Fatal(err)
	}
	_, err := l.Assert(lex.KindCharacters, lex.KindData)
	var syntax lex.ErrSyntax
	if !errors.As(err, &syntax) {
		t.Fatalf("Incorrect error: %v", err)
	}
	if syntax.Got.Kind != lex.KindTaxa {
		t.Errorf("Incorrect token in error: %v", syntax.Got)
	}
	if !strings.Contains(err.Error(), "CHARACTERS or DATA") {
		t.Errorf("Error does not name the expected kinds: %v", err)
	}

	// A failed assertion does not consume.
	if !l.ConsumeIfMatch(lex.KindTaxa) {
		t.Errorf("TAXA token lost after failed assertion.")
	}
}

func TestLexerPushUnconsumes(t *testing.T) {
	r := lex.NewStringReader("Homo 0(12)1\nPan 000;")
	l := lex.NewLexer(lex.NewNexusTokenizer(r))

	name, err := l.Assert(lex.KindString)
	if err != nil || name.Value != "Homo" {
		t.Fatalf("Incorrect name: %v %v", name, err)
	}

	// Buffer a token with the outer tokenizer, then switch. The cell tokenizer must rescan it.
	if l.Peek().Value != "0(12)1" {
		t.Fatalf("Incorrect lookahead: %v", l.Peek())
	}

	cells := []lex.Token{}
	err = l.With(lex.NewCellTokenizer(r), func() error {
		for !l.IsToken(lex.KindEOF) {
			tok, err := l.Next()
			if err != nil {
				return err
			}
			cells = append(cells, tok)
			if len(cells) == 3 {
				break
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 3 || cells[0].Value != "0" || cells[1].Kind != lex.KindCellPolymorphic || cells[2].Value != "1" {
		t.Fatalf("Incorrect cells: %v", cells)
	}
	if l.Depth() != 0 {
		t.Errorf("Tokenizer not popped.")
	}

	next, err := l.Assert(lex.KindString)
	if err != nil || next.Value != "Pan" {
		t.Errorf("Incorrect token after pop: %v %v", next, err)
	}
}

func TestLexerWithPopsOnError(t *testing.T) {
	r := lex.NewStringReader("abc")
	l := lex.NewLexer(lex.NewNexusTokenizer(r))

	boom := errors.New("boom")
	err := l.With(lex.NewCellTokenizer(r), func() error {
		l.Peek()
		return boom
	})
	if err != boom {
		t.Errorf("Incorrect error: %v", err)
	}
	if l.Depth() != 0 {
		t.Errorf("Tokenizer leaked after error.")
	}
	if _, ok := l.Tokenizer().(*lex.NexusTokenizer); !ok {
		t.Errorf("Incorrect active tokenizer: %T", l.Tokenizer())
	}

	tok, err := l.Assert(lex.KindString)
	if err != nil || tok.Value != "abc" {
		t.Errorf("Incorrect token after failed scope: %v %v", tok, err)
	}
}

func TestLexerStickyError(t *testing.T) {
	l := lex.NewLexer(lex.NewNexusTokenizer(lex.NewStringReader("BEGIN 'unterminated")))
	l.Assert(lex.KindBegin)

	if !l.IsToken(lex.KindEOF) {
		t.Errorf("Failed tokenizer does not read as EOF.")
	}
	if _, ok := l.Err().(lex.ErrUnterminated); !ok {
		t.Errorf("Incorrect lexer error: %v", l.Err())
	}
	if _, err := l.Assert(lex.KindEOF); err == nil {
		t.Errorf("Assert does not report the tokenizer error.")
	}
}

func TestLexerIgnore(t *testing.T) {
	l := lex.NewLexer(lex.NewNexusTokenizer(lex.NewStringReader("[one] BEGIN [two] END")))
	l.Ignore(lex.KindComment)

	if _, err := l.Assert(lex.KindBegin); err != nil {
		t.Error(err)
	}
	if _, err := l.Assert(lex.KindEnd); err != nil {
		t.Error(err)
	}
}
