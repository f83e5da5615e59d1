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

func TestCellGroups(t *testing.T) {
	cases := []struct {
		input string
		kind  lex.Kind
	}{
		{"1(2,3)4", lex.KindCellPolymorphic},
		{"1(2 3)4", lex.KindCellPolymorphic},
		{"1[2,3]4", lex.KindCellUncertain},
		{"1{2, 3}4", lex.KindCellUncertain},
	}

	for _, c := range cases {
		got := tokens(t, lex.NewCellTokenizer(lex.NewStringReader(c.input)))
		checkTokens(t, c.input, got, []expect{
			{lex.KindCell, "1"},
			{c.kind, "23"},
			{lex.KindCell, "4"},
		})
	}
}

func TestCellRow(t *testing.T) {
	input := "0 1?-A;"
	got := tokens(t, lex.NewCellTokenizer(lex.NewStringReader(input)))
	checkTokens(t, input, got, []expect{
		{lex.KindCell, "0"},
		{lex.KindCell, "1"},
		{lex.KindCell, "?"},
		{lex.KindCell, "-"},
		{lex.KindCell, "A"},
		{lex.KindSemicolon, ";"},
	})
}

func TestCellBracketComments(t *testing.T) {
	input := "0[a [nested] note]1 [12]"
	tk := lex.NewCellTokenizer(lex.NewStringReader(input))
	tk.BracketComments = true
	got := tokens(t, tk)
	checkTokens(t, input, got, []expect{
		{lex.KindCell, "0"},
		{lex.KindCell, "1"},
	})
}

func TestCellUnterminatedGroup(t *testing.T) {
	tk := lex.NewCellTokenizer(lex.NewStringReader("(01"))
	if _, err := tk.Next(); err == nil {
		t.Errorf("Unterminated group not reported.")
	}
}

func TestContinuousCells(t *testing.T) {
	input := "1.5 2-3\t? 4;"
	got := tokens(t, lex.NewContinuousCellTokenizer(lex.NewStringReader(input)))
	checkTokens(t, input, got, []expect{
		{lex.KindCell, "1.5"},
		{lex.KindCell, "2-3"},
		{lex.KindCell, "?"},
		{lex.KindCell, "4"},
		{lex.KindSemicolon, ";"},
	})
}

func TestOrderingRanges(t *testing.T) {
	input := `1-8\4 12-24\3;`
	got := tokens(t, lex.NewOrderingTokenizer(lex.NewStringReader(input)))
	checkTokens(t, input, got, []expect{
		{lex.KindNumber, "1"},
		{lex.KindDash, "-"},
		{lex.KindNumber, "8"},
		{lex.KindBackslash, `\`},
		{lex.KindNumber, "4"},
		{lex.KindNumber, "12"},
		{lex.KindDash, "-"},
		{lex.KindNumber, "24"},
		{lex.KindBackslash, `\`},
		{lex.KindNumber, "3"},
		{lex.KindSemicolon, ";"},
	})
}

func TestOrderingWords(t *testing.T) {
	input := "unord: all, ord: 3-., Squared:1"
	got := tokens(t, lex.NewOrderingTokenizer(lex.NewStringReader(input)))
	checkTokens(t, input, got, []expect{
		{lex.KindString, "unord"},
		{lex.KindColon, ":"},
		{lex.KindAll, "all"},
		{lex.KindComma, ","},
		{lex.KindString, "ord"},
		{lex.KindColon, ":"},
		{lex.KindNumber, "3"},
		{lex.KindDash, "-"},
		{lex.KindPeriod, "."},
		{lex.KindComma, ","},
		{lex.KindString, "Squared"},
		{lex.KindColon, ":"},
		{lex.KindNumber, "1"},
	})
}

func TestCostCodes(t *testing.T) {
	input := "+[/2 0.3 12;"
	got := tokens(t, lex.NewCostCodeTokenizer(lex.NewStringReader(input)))
	checkTokens(t, input, got, []expect{
		{lex.KindPlus, "+"},
		{lex.KindOpenBracket, "["},
		{lex.KindSlash, "/"},
		{lex.KindNumber, "2"},
		{lex.KindNumber, "0"},
		{lex.KindPeriod, "."},
		{lex.KindNumber, "3"},
		{lex.KindNumber, "12"},
		{lex.KindSemicolon, ";"},
	})
}

func TestCommentsBody(t *testing.T) {
	input := "Scored from photo; see plate 3;\n  second note;"
	got := tokens(t, lex.NewCommentsTokenizer(lex.NewStringReader(input)))
	checkTokens(t, input, got, []expect{
		{lex.KindString, "Scored from photo; see plate 3"},
		{lex.KindString, "second note"},
	})
}
