/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert serializes converted key specs for output.
package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents an output format.
type Format string

const (
	// FormatJSON outputs Karabiner-Elements style JSON (default).
	FormatJSON Format = "json"

	// FormatYAML outputs the same structure as YAML.
	FormatYAML Format = "yaml"
)

// Options configures serialization.
type Options struct {
	// Indent is the number of spaces per JSON nesting level. Zero produces
	// compact JSON. YAML always uses two spaces.
	Indent int
}

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML)}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// Encode serializes v, typically []attrfile.Entry or []keyspec.KeySpec.
// Output always ends in a newline.
func Encode(v any, format Format, opts Options) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if opts.Indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", opts.Indent))
		}
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("error marshaling JSON: %w", err)
		}

	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("error marshaling YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("error marshaling YAML: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return buf.Bytes(), nil
}
