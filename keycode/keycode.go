/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package keycode provides the lookup tables that translate Karabiner XML
// identifiers into Karabiner-Elements JSON identifiers.
//
// The tables are fixed at build time and never mutated. All lookups are
// exact and case-sensitive; callers trim whitespace before looking up.
package keycode

import (
	"fmt"
	"sort"
)

// Category identifies one of the lookup tables.
type Category int

const (
	// CategoryKey is the KeyCode:: table.
	CategoryKey Category = iota

	// CategoryButton is the PointingButton:: table.
	CategoryButton

	// CategoryModifier is the ModifierFlag:: table.
	CategoryModifier
)

// Categories returns all table categories in display order.
func Categories() []Category {
	return []Category{CategoryKey, CategoryButton, CategoryModifier}
}

// String returns the lower-case category name.
func (c Category) String() string {
	switch c {
	case CategoryKey:
		return "key"
	case CategoryButton:
		return "button"
	case CategoryModifier:
		return "modifier"
	default:
		return "unknown"
	}
}

// XMLName returns the category prefix used in the XML format.
func (c Category) XMLName() string {
	switch c {
	case CategoryKey:
		return "KeyCode"
	case CategoryButton:
		return "PointingButton"
	case CategoryModifier:
		return "ModifierFlag"
	default:
		return ""
	}
}

// ParseCategory returns the category for its name or XML prefix.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "key", "keys", "KeyCode":
		return CategoryKey, nil
	case "button", "buttons", "PointingButton":
		return CategoryButton, nil
	case "modifier", "modifiers", "ModifierFlag":
		return CategoryModifier, nil
	default:
		return 0, fmt.Errorf("unknown category: %s (valid: key, button, modifier)", s)
	}
}

// Entry is a single legacy -> canonical table row.
type Entry struct {
	Legacy    string `json:"legacy"`
	Canonical string `json:"canonical"`
}

// Key returns the canonical key_code for a KeyCode identifier.
func Key(id string) (string, bool) {
	name, ok := keys[id]
	return name, ok
}

// Button returns the canonical pointing_button for a PointingButton identifier.
func Button(id string) (string, bool) {
	name, ok := buttons[id]
	return name, ok
}

// Modifier returns the canonical modifier for a ModifierFlag identifier.
// NONE is not a modifier; callers treat it as an absence marker.
func Modifier(id string) (string, bool) {
	name, ok := modifiers[id]
	return name, ok
}

// Entries returns a sorted copy of the table for category c.
func Entries(c Category) []Entry {
	var table map[string]string
	switch c {
	case CategoryKey:
		table = keys
	case CategoryButton:
		table = buttons
	case CategoryModifier:
		table = modifiers
	default:
		return nil
	}

	entries := make([]Entry, 0, len(table))
	for legacy, canonical := range table {
		entries = append(entries, Entry{Legacy: legacy, Canonical: canonical})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Legacy < entries[j].Legacy
	})
	return entries
}
