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

package tools

import (
	"github.com/spf13/cobra"
)

const (
	FlagOutput         = 1 << iota // The output file
	FlagFormat                     // Output format (json or yaml)
	FlagIndent                     // Output indent
	FlagFailOnAdvisory             // Exit with an error code when the validator has findings
)

// FlagSet is used to store the results from the common flags. Not all of these values will be valid, even if
// their flag is in the set.
type FlagSet struct {
	Output         string
	Format         string
	Indent         int
	FailOnAdvisory bool

	cmd *cobra.Command
}

// CommonFlags adds your choice of several common flags to a command.
func CommonFlags(cmd *cobra.Command, flags int) *FlagSet {
	fs := &FlagSet{Output: "-", cmd: cmd}

	if flags&FlagOutput != 0 {
		cmd.Flags().StringVarP(&fs.Output, "output", "o", fs.Output, "The output file `path`, - for standard output.")
	}

	if flags&FlagFormat != 0 {
		cmd.Flags().StringVar(&fs.Format, "format", "", "Output `format`: json or yaml.")
	}

	if flags&FlagIndent != 0 {
		cmd.Flags().IntVar(&fs.Indent, "indent", 0, "Output indent in `spaces`.")
	}

	if flags&FlagFailOnAdvisory != 0 {
		cmd.Flags().BoolVar(&fs.FailOnAdvisory, "fail-on-advisory", false, "Exit with code 2 if any state is flagged.")
	}

	return fs
}

// Apply overrides config values with the flags that were given on the command line.
func (fs *FlagSet) Apply(c *Config) {
	f := fs.cmd.Flags()
	if f.Changed("format") {
		c.Output.Format = fs.Format
	}
	if f.Changed("indent") {
		c.Output.Indent = fs.Indent
	}
	if f.Changed("fail-on-advisory") {
		c.Validate.FailOnAdvisory = fs.FailOnAdvisory
	}
}
