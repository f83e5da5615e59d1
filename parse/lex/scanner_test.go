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
	"testing"

	"github.com/milochristiansen/phylomatrix/parse/lex"
)

func tokens(t *testing.T, tk lex.Tokenizer) []lex.Token {
	t.Helper()
	out := []lex.Token{}
	for i := 0; i < 1000; i++ {
		tok, err := tk.Next()
		if err != nil {
			t.Fatalf("Unexpected tokenizer error: %v", err)
		}
		if tok.Kind == lex.KindEOF {
			return out
		}
		out = append(out, tok)
	}
	t.Fatalf("Tokenizer did not reach EOF.")
	return nil
}

type expect struct {
	kind  lex.Kind
	value string
}

func checkTokens(t *testing.T, input string, got []lex.Token, want []expect) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Incorrect number of tokens for %q: %v (%v)", input, len(got), got)
	}
	for i := range want {
		if got[i].Kind != want[i].kind || got[i].Value != want[i].value {
			t.Errorf("Incorrect token %v for %q: %v %q, expected %v %q", i, input, got[i].Kind, got[i].Value, want[i].kind, want[i].value)
		}
	}
}

func TestNexusQuotedStrings(t *testing.T) {
	cases := []struct {
		input string
		value string
	}{
		{`'''Human'' boy'`, `"Human" boy`},
		{`'Darwin''s finch'`, `Darwin's finch`},
		{`"say ""hi"""`, `say "hi"`},
		{"`single'", "single"},
		{"``double\"", "double"},
		{`'line^nbreak'`, "line\nbreak"},
		{`'a\'b'`, "a'b"},
		{`'keep ; and = inside'`, "keep ; and = inside"},
		{`''`, ""},
	}

	for _, c := range cases {
		got := tokens(t, lex.NewNexusTokenizer(lex.NewStringReader(c.input)))
		checkTokens(t, c.input, got, []expect{{lex.KindString, c.value}})
	}
}

func TestNexusRuns(t *testing.T) {
	input := "begin TAXA;\n\tDIMENSIONS NTAX=3;\n\tTAXLABELS Homo_sapiens 'Pan' [a [nested] comment] 12 -;"
	got := tokens(t, lex.NewNexusTokenizer(lex.NewStringReader(input)))
	checkTokens(t, input, got, []expect{
		{lex.KindBegin, "begin"},
		{lex.KindTaxa, "TAXA"},
		{lex.KindSemicolon, ";"},
		{lex.KindDimensions, "DIMENSIONS"},
		{lex.KindNTax, "NTAX"},
		{lex.KindEquals, "="},
		{lex.KindNumber, "3"},
		{lex.KindSemicolon, ";"},
		{lex.KindTaxLabels, "TAXLABELS"},
		{lex.KindString, "Homo sapiens"},
		{lex.KindString, "Pan"},
		{lex.KindComment, "a [nested] comment"},
		{lex.KindNumber, "12"},
		{lex.KindDash, "-"},
		{lex.KindSemicolon, ";"},
	})
}

func TestNexusHeader(t *testing.T) {
	got := tokens(t, lex.NewNexusTokenizer(lex.NewStringReader("#NEXUS\n")))
	checkTokens(t, "#NEXUS", got, []expect{{lex.KindNexus, "#NEXUS"}})
}

func TestNexusQuoteEndsRun(t *testing.T) {
	input := "ab'cd'"
	got := tokens(t, lex.NewNexusTokenizer(lex.NewStringReader(input)))
	checkTokens(t, input, got, []expect{
		{lex.KindString, "ab"},
		{lex.KindString, "cd"},
	})
}

func TestTNTRuns(t *testing.T) {
	input := "xread 'A title'\nDarwin's 0101 a=b &[cont] {0 x;"
	got := tokens(t, lex.NewTNTTokenizer(lex.NewStringReader(input)))
	checkTokens(t, input, got, []expect{
		{lex.KindXRead, "xread"},
		{lex.KindString, "A title"},
		{lex.KindString, "Darwin's"},
		{lex.KindNumber, "0101"},
		{lex.KindString, "a=b"},
		{lex.KindString, "&[cont]"},
		{lex.KindOpenBrace, "{"},
		{lex.KindNumber, "0"},
		{lex.KindString, "x"},
		{lex.KindSemicolon, ";"},
	})
}

func TestUnterminated(t *testing.T) {
	for _, input := range []string{"'open", "[never closed", "'ends with caret^"} {
		tk := lex.NewNexusTokenizer(lex.NewStringReader(input))
		_, err := tk.Next()
		if _, ok := err.(lex.ErrUnterminated); !ok {
			t.Errorf("Incorrect error for %q: %v", input, err)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := map[string]bool{
		"0":    true,
		"12":   true,
		"-3":   true,
		"1.5":  true,
		"1.":   false,
		".5":   false,
		"1-2":  false,
		"-":    false,
		"":     false,
		"abc":  false,
		"1.2.": false,
	}
	for in, want := range cases {
		if got := lex.IsNumeric(in); got != want {
			t.Errorf("Incorrect IsNumeric(%q): %v", in, got)
		}
	}
}
