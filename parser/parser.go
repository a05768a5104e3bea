/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser converts Karabiner XML key attributes into keyspec values.
//
// An autogen attribute is a comma-delimited list of keys, each optionally
// followed by a modifier token:
//
//	KeyCode::A, ModifierFlag::SHIFT | ModifierFlag::FN, PointingButton::LEFT
//
// All functions are pure and safe for concurrent use.
package parser

import (
	"strings"

	"bennypowers.dev/karaconv/keyspec"
)

const (
	// separator splits a token into category and identifier.
	separator = "::"

	// listSeparator splits an attribute into tokens.
	listSeparator = ","

	// flagSeparator joins modifier flags inside one modifier token.
	flagSeparator = "|"
)

// cursor walks a pre-split token list with one token of lookahead.
type cursor struct {
	tokens []string
	pos    int
}

func newCursor(s string) *cursor {
	parts := strings.Split(s, listSeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return &cursor{tokens: parts}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.tokens)
}

func (c *cursor) next() string {
	tok := c.tokens[c.pos]
	c.pos++
	return tok
}

// peek returns the next token without consuming it.
func (c *cursor) peek() (string, bool) {
	if c.done() {
		return "", false
	}
	return c.tokens[c.pos], true
}

// isModifierToken reports whether a token should be read as the modifier of
// the preceding key. The check is purely syntactic.
func isModifierToken(tok string) bool {
	return strings.HasPrefix(tok, "Mod") || strings.HasPrefix(tok, "VK")
}

// CollectKeys parses a key attribute into an ordered list of key specs.
//
// Each key or button token may be followed by one modifier token (one that
// starts with "Mod" or "VK"). The first conversion error aborts the parse and
// no partial result is returned. An empty attribute yields an empty list.
func CollectKeys(attr string) ([]keyspec.KeySpec, error) {
	specs := []keyspec.KeySpec{}
	if strings.TrimSpace(attr) == "" {
		return specs, nil
	}

	c := newCursor(attr)
	for !c.done() {
		target, err := ConvertKeyOrButton(c.next())
		if err != nil {
			return nil, err
		}

		mods := []string{}
		if tok, ok := c.peek(); ok && isModifierToken(tok) {
			c.next()
			mods, err = ConvertModifierFlags(tok)
			if err != nil {
				return nil, err
			}
		}

		specs = append(specs, keyspec.KeySpec{Target: target, Modifiers: mods})
	}

	return specs, nil
}

// splitToken splits "Category::Identifier" into trimmed parts.
func splitToken(tok string) []string {
	parts := strings.Split(tok, separator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
