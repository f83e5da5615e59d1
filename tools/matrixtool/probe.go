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

	"github.com/spf13/cobra"

	"github.com/milochristiansen/phylomatrix/parse"
	"github.com/milochristiansen/phylomatrix/tools"
)

var probeCmd = &cobra.Command{
	Use:   "probe FILE...",
	Short: "Print the format of each file",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, path := range args {
			text := tools.HandleErrV(tools.ReadText(path))
			fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", path, probe(text))
		}
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func probe(text string) string {
	p := parse.ParserFor(text, parseOptions()...)
	if p == nil {
		return "unknown"
	}
	return string(p.Format())
}
