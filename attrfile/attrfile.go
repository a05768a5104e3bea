/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package attrfile reads attribute-list files: plain text holding one
// Karabiner autogen key attribute per line.
//
//	# caps lock becomes control
//	KeyCode::CAPSLOCK, KeyCode::CONTROL_L
//	KeyCode::A, ModifierFlag::FN
//
// Blank lines and lines starting with '#' are skipped.
package attrfile

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	kfs "bennypowers.dev/karaconv/fs"
	"bennypowers.dev/karaconv/keyspec"
	"bennypowers.dev/karaconv/parser"
)

// Entry is one converted attribute.
type Entry struct {
	File   string            `json:"file" yaml:"file"`
	Line   int               `json:"line" yaml:"line"`
	Source string            `json:"source" yaml:"source"`
	Keys   []keyspec.KeySpec `json:"keys" yaml:"keys"`
}

// LineError locates a conversion failure in an attribute-list file.
type LineError struct {
	File   string
	Line   int
	Source string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v (in %q)", e.File, e.Line, e.Err, e.Source)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse converts every attribute in data. name is used for diagnostics.
// The first failing line aborts the parse.
func Parse(name string, data []byte) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	// A single attribute may be longer than bufio.MaxScanTokenSize.
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(data)+1)
	line := 0
	for scanner.Scan() {
		line++
		source := strings.TrimSpace(scanner.Text())
		if source == "" || strings.HasPrefix(source, "#") {
			continue
		}

		keys, err := parser.CollectKeys(source)
		if err != nil {
			return nil, &LineError{File: name, Line: line, Source: source, Err: err}
		}
		entries = append(entries, Entry{File: name, Line: line, Source: source, Keys: keys})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return entries, nil
}

// ParseFile reads and converts an attribute-list file.
func ParseFile(filesystem kfs.FileSystem, path string) ([]Entry, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}
