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
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is read when no config path is given. It is fine for it to not exist.
const DefaultConfigFile = "matrixtool.toml"

// Config holds the settings of the matrix tools.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Output   OutputConfig   `toml:"output"`
	Validate ValidateConfig `toml:"validate"`
}

// LogConfig is the [log] section.
type LogConfig struct {
	Level   string `toml:"level"`  // trace, debug, info, warn, error
	Format  string `toml:"format"` // console or json
	NoColor bool   `toml:"no_color"`
}

// OutputConfig is the [output] section.
type OutputConfig struct {
	Format string `toml:"format"` // json or yaml
	Indent int    `toml:"indent"`
}

// ValidateConfig is the [validate] section.
type ValidateConfig struct {
	FailOnAdvisory bool `toml:"fail_on_advisory"`
}

// LoadConfig reads the TOML config file at path. An empty path means DefaultConfigFile, which may be missing,
// in that case the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	_, err := toml.DecodeFile(path, cfg)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config file not found: %s", path)
	default:
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, cfg.check()
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatJSON
	}
	if c.Output.Indent == 0 {
		c.Output.Indent = 2
	}
}

func (c *Config) check() error {
	switch c.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format: %q", c.Output.Format)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("negative output indent: %v", c.Output.Indent)
	}
	return nil
}

// String renders the config back to TOML.
func (c *Config) String() string {
	b := &strings.Builder{}
	if err := toml.NewEncoder(b).Encode(c); err != nil {
		return err.Error()
	}
	return b.String()
}
