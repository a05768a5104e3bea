/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for karaconv.
package config

// Config represents the karaconv configuration file.
type Config struct {
	// Files lists attribute-list files to convert. Entries may be doublestar
	// globs such as "keymaps/**/*.txt". Relative paths resolve against the
	// project root.
	Files []string `yaml:"files" json:"files"`

	// Format is the output format: "json" (default) or "yaml".
	Format string `yaml:"format" json:"format"`

	// Indent is the number of spaces used to indent JSON output. Zero gives
	// compact output; nil means DefaultIndent.
	Indent *int `yaml:"indent" json:"indent"`
}

// DefaultIndent is the JSON indent width when none is configured.
const DefaultIndent = 2

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Format: "json",
		Indent: IntPtr(DefaultIndent),
	}
}

// IntPtr returns a pointer to v, for building configs in code.
func IntPtr(v int) *int {
	return &v
}

// IndentWidth returns the configured JSON indent, or DefaultIndent when unset.
func (c *Config) IndentWidth() int {
	if c.Indent == nil {
		return DefaultIndent
	}
	return *c.Indent
}

// applyDefaults fills unset fields from Default.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.Indent == nil || *c.Indent < 0 {
		c.Indent = d.Indent
	}
}
