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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/milochristiansen/phylomatrix/client"
	"github.com/milochristiansen/phylomatrix/tools"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Import several matrix files and list them",
	Long: `Batch imports every file into one library and prints a table of what was loaded. Files that fail to
parse are logged and skipped, the exit code is 1 if any did.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := client.NewLibrary(client.WithParseOptions(parseOptions()...), client.WithEvents(len(args)))

		failed := 0
		for _, path := range args {
			text, err := tools.ReadText(path)
			if err == nil {
				_, err = lib.Import(path, text)
			}
			if err != nil {
				log.Error().Err(err).Str("file", path).Msg("Import failed.")
				failed++
			}
		}
		for len(lib.Events) > 0 {
			ev := <-lib.Events
			log.Debug().Int("type", ev.Type).Str("id", ev.ID).Msg("Library event.")
		}

		infos := []client.Info{}
		for _, id := range lib.List() {
			infos = append(infos, tools.HandleErrV(lib.Info(id)))
		}
		fmt.Fprint(cmd.OutOrStdout(), renderTable(infos))

		if failed > 0 {
			return fmt.Errorf("%v of %v files failed to import", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

// renderTable lays out one row per imported matrix.
func renderTable(infos []client.Info) string {
	cols := [][]string{
		{"ID"}, {"FORMAT"}, {"TAXA"}, {"CHARACTERS"}, {"FLAGGED"}, {"FILE"},
	}
	for _, in := range infos {
		row := []string{in.ID, string(in.Format), fmt.Sprint(in.Taxa), fmt.Sprint(in.Characters), fmt.Sprint(in.Advisories), in.Name}
		for i := range cols {
			cols[i] = append(cols[i], row[i])
		}
	}

	rendered := make([]string, len(cols))
	for i, col := range cols {
		col[0] = TitleStyle.Render(col[0])
		rendered[i] = CellStyle.Render(strings.Join(col, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
}
