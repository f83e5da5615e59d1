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
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/milochristiansen/phylomatrix/parse"
	"github.com/milochristiansen/phylomatrix/tools"
)

var (
	cfgFile  string
	logLevel string

	cfg *tools.Config
	log = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "matrixtool",
	Short: "Read phylogenetic character matrix files",
	Long: `matrixtool reads character matrices written in the NEXUS block format or the TNT line format and
converts them to one normalized JSON or YAML document.

Settings are read from matrixtool.toml in the current directory, or the file given with --config.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := tools.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			c.Log.Level = logLevel
		}
		cfg = c

		log = tools.NewLogger(c.Log, os.Stderr)
		tools.Log = log
		log.Debug().Str("config", c.String()).Msg("Loaded config.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config `file` (default: ./"+tools.DefaultConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log `level`: trace, debug, info, warn or error.")
}

// parseOptions are the options every file is parsed with.
func parseOptions() []parse.Option {
	return []parse.Option{parse.WithLogger(log)}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
