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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/milochristiansen/phylomatrix"
	"github.com/milochristiansen/phylomatrix/tools"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Report states that look incomplete or damaged",
	Long: `Validate parses each file and reports every character state the validator flags: states created for
blank labels, generic "State N" names, empty names, and labels that look like they were split at the wrong
place. With fail_on_advisory set the exit code is 2 when anything was reported.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		validateFlags.Apply(cfg)

		total := 0
		for _, path := range args {
			m, adv := tools.LoadMatrixFile(path, parseOptions()...)
			fmt.Fprint(cmd.OutOrStdout(), renderReport(path, m, adv))
			total += len(adv)
		}

		if total > 0 && cfg.Validate.FailOnAdvisory {
			os.Exit(2)
		}
	},
}

var validateFlags *tools.FlagSet

func init() {
	validateFlags = tools.CommonFlags(validateCmd, tools.FlagFailOnAdvisory)
	rootCmd.AddCommand(validateCmd)
}

// renderReport formats the validator findings for one file, grouped by character in matrix order.
func renderReport(path string, m *phylomatrix.MatrixObject, adv []phylomatrix.Advisory) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%v %v\n", TitleStyle.Render(path),
		MutedStyle.Render(fmt.Sprintf("(%v taxa, %v characters)", m.TaxonCount(), m.CharacterCount())))

	if len(adv) == 0 {
		fmt.Fprintf(b, "  %v\n", OKStyle.Render("no problems found"))
		return b.String()
	}

	adv = slices.Clone(adv)
	slices.SortStableFunc(adv, func(x, y phylomatrix.Advisory) bool {
		return m.CharacterIndex(x.Character) < m.CharacterIndex(y.Character)
	})

	last := ""
	for i, a := range adv {
		if i == 0 || a.Character != last {
			fmt.Fprintf(b, "  %v\n", a.Character)
			last = a.Character
		}
		fmt.Fprintf(b, "    %v%v\n", CellStyle.Render(WarnStyle.Render(a.Reason.String())), fmt.Sprintf("%q", a.State))
	}
	fmt.Fprintf(b, "  %v\n", WarnStyle.Render(fmt.Sprintf("%v flagged states", len(adv))))
	return b.String()
}
