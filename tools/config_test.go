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
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrixtool.toml")
	err := os.WriteFile(path, []byte(`
[log]
level = "debug"

[output]
format = "yaml"

[validate]
fail_on_advisory = true
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Log.Level != "debug" || c.Log.Format != "console" {
		t.Errorf("Incorrect log config: %+v", c.Log)
	}
	if c.Output.Format != FormatYAML || c.Output.Indent != 2 {
		t.Errorf("Incorrect output config: %+v", c.Output)
	}
	if !c.Validate.FailOnAdvisory {
		t.Errorf("Incorrect validate config: %+v", c.Validate)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("Missing explicit config file not reported.")
	}

	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[output]\nformat = \"xml\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("Unknown output format not reported.")
	}

	if err := os.WriteFile(path, []byte("[output\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("Broken TOML not reported.")
	}
}

func TestLoadConfigDefault(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	c, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Missing default config file reported: %v", err)
	}
	if c.Output.Format != FormatJSON || c.Log.Level != "info" {
		t.Errorf("Incorrect defaults: %+v", c)
	}
}
