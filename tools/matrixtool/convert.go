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
	"github.com/spf13/cobra"

	"github.com/milochristiansen/phylomatrix/tools"
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Convert a matrix file to JSON or YAML",
	Long: `Convert parses a matrix file, runs the validator over it and writes the normalized matrix out.
Validator findings are logged as warnings, they do not stop the conversion.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		convertFlags.Apply(cfg)

		m, adv := tools.LoadMatrixFile(args[0], parseOptions()...)
		tools.HandleErrS(m.TaxonCount() == 0, "No taxa in "+args[0]+", nothing to convert.")
		for _, a := range adv {
			log.Warn().Str("file", args[0]).Str("character", a.Character).Str("state", a.State).Stringer("reason", a.Reason).Msg("Incomplete state.")
		}

		tools.WriteMatrixFile(convertFlags.Output, m, cfg.Output.Format, cfg.Output.Indent)
	},
}

var convertFlags *tools.FlagSet

func init() {
	convertFlags = tools.CommonFlags(convertCmd, tools.FlagOutput|tools.FlagFormat|tools.FlagIndent)
	rootCmd.AddCommand(convertCmd)
}
