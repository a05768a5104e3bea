/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"bennypowers.dev/karaconv/keycode"
	"bennypowers.dev/karaconv/keyspec"
)

const (
	// legacyModifierPrefix is the pre-ModifierFlag:: spelling, e.g. VK_SHIFT.
	legacyModifierPrefix = "VK_"

	// noModifier marks an explicit absence of modifiers.
	noModifier = "NONE"
)

// ConvertModifierFlags converts a "|"-delimited list of ModifierFlag::X
// tokens into canonical modifier names, in input order.
//
// The legacy form VK_X is accepted as ModifierFlag::X. NONE entries are
// dropped, so the result may be empty.
func ConvertModifierFlags(tok string) ([]string, error) {
	if strings.TrimSpace(tok) == "" {
		return nil, keyspec.NewTokenError(keyspec.ErrEmptyModifierList, tok)
	}

	pieces := strings.Split(tok, flagSeparator)
	ids := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		id, err := modifierID(strings.TrimSpace(piece))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	mods := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == noModifier {
			continue
		}
		name, ok := keycode.Modifier(id)
		if !ok {
			return nil, keyspec.NewTokenError(keyspec.ErrUnknownModifier, id)
		}
		mods = append(mods, name)
	}

	return mods, nil
}

// modifierID returns the identifier of one flag, normalizing VK_X to X.
func modifierID(piece string) (string, error) {
	parts := splitToken(piece)
	category := parts[0]

	if category != keycode.CategoryModifier.XMLName() {
		if id, ok := strings.CutPrefix(category, legacyModifierPrefix); ok {
			return id, nil
		}
		return "", keyspec.NewTokenError(keyspec.ErrNotAModifier, category)
	}

	if len(parts) < 2 {
		return "", keyspec.NewTokenError(keyspec.ErrMalformedToken, piece)
	}
	return parts[1], nil
}
