/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package keyspec

import (
	"errors"
	"fmt"
)

// Sentinel errors for token conversion. All of them describe bad input.
var (
	// ErrMalformedToken indicates a token lacks the Category::Identifier shape.
	ErrMalformedToken = errors.New("malformed token")

	// ErrUnknownKeyCode indicates a KeyCode identifier missing from the key table.
	ErrUnknownKeyCode = errors.New("unknown key code")

	// ErrUnknownButton indicates a PointingButton identifier missing from the button table.
	ErrUnknownButton = errors.New("unknown mouse button")

	// ErrUnknownModifier indicates a ModifierFlag identifier missing from the modifier table.
	ErrUnknownModifier = errors.New("unknown modifier")

	// ErrNotAKeyCode indicates a key token whose category is neither KeyCode nor PointingButton.
	ErrNotAKeyCode = errors.New("not a key code")

	// ErrNotAModifier indicates a modifier token whose category is neither ModifierFlag nor VK_*.
	ErrNotAModifier = errors.New("not a modifier")

	// ErrEmptyModifierList indicates a modifier token with nothing in it.
	ErrEmptyModifierList = errors.New("empty modifier")
)

// TokenError reports the offending raw substring along with the failure kind.
type TokenError struct {
	// Err is one of the sentinel errors above.
	Err error

	// Value is the substring that failed: the identifier for lookup misses,
	// the category for category mismatches, the whole token otherwise.
	Value string
}

// Error returns e.g. `unknown key code "LEFT_BRACKET"`.
func (e *TokenError) Error() string {
	return fmt.Sprintf("%s %q", e.Err, e.Value)
}

// Unwrap returns the sentinel so errors.Is works.
func (e *TokenError) Unwrap() error {
	return e.Err
}

// NewTokenError wraps a sentinel with the offending value.
func NewTokenError(err error, value string) *TokenError {
	return &TokenError{Err: err, Value: value}
}
