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

package phylomatrix

import (
	"fmt"
	"regexp"
	"strings"
)

var genericStateName = regexp.MustCompile(`^State \d+$`)

// Advisory is one suspect character state found by Validate.
type Advisory struct {
	Character string
	State     string
	Reason    IncompleteType
}

func (a Advisory) String() string {
	return fmt.Sprintf("%v: state %q: %v", a.Character, a.State, a.Reason)
}

// Validate looks for characters that were probably mangled by the program that wrote the file. Suspect states
// are tagged in place and also returned as a list. Characters that already have a tagged state are reported
// as they are and not checked again.
//
// The score check is a heuristic: if the highest state used in the matrix does not agree with the number of
// states, and the state names look like one label containing brackets was split into several, every state of
// the character is tagged.
func Validate(m *MatrixObject) []Advisory {
	out := []Advisory{}
	for _, c := range m.characters {
		if !c.Incomplete() {
			checkCharacter(c)
		}
		for _, s := range c.States {
			if s.Incomplete != Complete {
				out = append(out, Advisory{Character: c.Name, State: s.Name, Reason: s.Incomplete})
			}
		}
	}
	return out
}

func checkCharacter(c *Character) {
	for _, s := range c.States {
		switch {
		case strings.TrimSpace(s.Name) == "":
			s.Incomplete = EmptyName
		case genericStateName.MatchString(s.Name):
			s.Incomplete = GenericState
		}
	}

	if len(c.States) == 0 || c.MaxScoredStatePosition < 0 {
		return
	}
	if c.MaxScoredStatePosition+1 == len(c.States) {
		return
	}
	if !plausibleSplit(c.States) {
		return
	}
	for _, s := range c.States {
		s.Incomplete = IncorrectNumberOfScores
	}
}

// plausibleSplit is true when the state names balance as a whole but not one by one, or the other way around.
func plausibleSplit(states []*CharacterState) bool {
	all := strings.Builder{}
	each := true
	for _, s := range states {
		all.WriteString(s.Name)
		if !balanced(s.Name) {
			each = false
		}
	}
	return balanced(all.String()) != each
}

// balanced checks each kind of bracket on its own. No count may go negative and all must end at zero.
func balanced(s string) bool {
	round, square, curly := 0, 0, 0
	for _, r := range s {
		switch r {
		case '(':
			round++
		case ')':
			round--
		case '[':
			square++
		case ']':
			square--
		case '{':
			curly++
		case '}':
			curly--
		}
		if round < 0 || square < 0 || curly < 0 {
			return false
		}
	}
	return round == 0 && square == 0 && curly == 0
}
