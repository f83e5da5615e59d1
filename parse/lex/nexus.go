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

// nexusKeywords is the keyword set of the block structured (NEXUS) format.
var nexusKeywords = map[string]Kind{
	"#NEXUS":          KindNexus,
	"BEGIN":           KindBegin,
	"END":             KindEnd,
	"ENDBLOCK":        KindEndBlock,
	"TAXA":            KindTaxa,
	"CHARACTERS":      KindCharacters,
	"DATA":            KindData,
	"ASSUMPTIONS":     KindAssumptions,
	"NOTES":           KindNotes,
	"DIMENSIONS":      KindDimensions,
	"NTAX":            KindNTax,
	"NCHAR":           KindNChar,
	"NEWTAXA":         KindNewTaxa,
	"TAXLABELS":       KindTaxLabels,
	"FORMAT":          KindFormat,
	"CHARLABELS":      KindCharLabels,
	"STATELABELS":     KindStateLabels,
	"CHARSTATELABELS": KindCharStateLabels,
	"MATRIX":          KindMatrix,
	"OPTIONS":         KindOptions,
	"LINK":            KindLink,
	"BLOCKID":         KindBlockID,
	"ELIMINATE":       KindEliminate,
	"TITLE":           KindTitle,
	"TYPESET":         KindTypeSet,
	"TEXT":            KindText,
	"TAXON":           KindTaxon,
	"CHARACTER":       KindCharacter,
	"STATE":           KindState,
	"LOG":             KindLog,
}

// NexusTokenizer is the full tokenizer for the block structured format.
type NexusTokenizer struct {
	Scanner
}

// NewNexusTokenizer creates a block format tokenizer. Bracket comments are enabled.
func NewNexusTokenizer(r Reader) *NexusTokenizer {
	t := &NexusTokenizer{}
	t.Scanner = NewScanner(r, t)
	t.BracketComments = true
	return t
}

func (t *NexusTokenizer) IsKeyword(upper string) (Kind, bool) {
	k, ok := nexusKeywords[upper]
	return k, ok
}

func (t *NexusTokenizer) IsTerminator(r rune) bool {
	return isDefaultTerminator(r)
}
