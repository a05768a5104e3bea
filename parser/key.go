/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bennypowers.dev/karaconv/keycode"
	"bennypowers.dev/karaconv/keyspec"
)

// ConvertKeyOrButton converts a single KeyCode::X or PointingButton::X token.
func ConvertKeyOrButton(tok string) (keyspec.KeyOrButton, error) {
	parts := splitToken(tok)
	if len(parts) < 2 {
		return keyspec.KeyOrButton{}, keyspec.NewTokenError(keyspec.ErrMalformedToken, tok)
	}

	category, id := parts[0], parts[1]
	switch category {
	case keycode.CategoryKey.XMLName():
		name, ok := keycode.Key(id)
		if !ok {
			return keyspec.KeyOrButton{}, keyspec.NewTokenError(keyspec.ErrUnknownKeyCode, id)
		}
		return keyspec.Key(name), nil

	case keycode.CategoryButton.XMLName():
		name, ok := keycode.Button(id)
		if !ok {
			return keyspec.KeyOrButton{}, keyspec.NewTokenError(keyspec.ErrUnknownButton, id)
		}
		return keyspec.Button(name), nil

	default:
		return keyspec.KeyOrButton{}, keyspec.NewTokenError(keyspec.ErrNotAKeyCode, category)
	}
}
