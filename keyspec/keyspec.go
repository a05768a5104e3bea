/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package keyspec provides the converted key types handed to the JSON builder.
package keyspec

import "encoding/json"

// Kind discriminates the variants of KeyOrButton.
type Kind int

const (
	// KindKey is a keyboard key (key_code).
	KindKey Kind = iota

	// KindButton is a pointing device button (pointing_button).
	KindButton
)

// String returns the JSON field name for the kind.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key_code"
	case KindButton:
		return "pointing_button"
	default:
		return "unknown"
	}
}

// KeyOrButton is either a key or a pointing button, holding the canonical
// identifier used by Karabiner-Elements.
type KeyOrButton struct {
	Kind Kind
	Name string
}

// Key returns a KeyOrButton holding a key_code.
func Key(name string) KeyOrButton {
	return KeyOrButton{Kind: KindKey, Name: name}
}

// Button returns a KeyOrButton holding a pointing_button.
func Button(name string) KeyOrButton {
	return KeyOrButton{Kind: KindButton, Name: name}
}

// IsKey reports whether k is a key.
func (k KeyOrButton) IsKey() bool { return k.Kind == KindKey }

// IsButton reports whether k is a pointing button.
func (k KeyOrButton) IsButton() bool { return k.Kind == KindButton }

// String returns e.g. "key_code:a" or "pointing_button:button1".
func (k KeyOrButton) String() string {
	return k.Kind.String() + ":" + k.Name
}

// KeySpec is one remapped key entry: a key or button and the modifiers that
// accompany it. Modifiers may be empty.
type KeySpec struct {
	Target    KeyOrButton
	Modifiers []string
}

type keySpecView struct {
	KeyCode        string   `json:"key_code,omitempty" yaml:"key_code,omitempty"`
	PointingButton string   `json:"pointing_button,omitempty" yaml:"pointing_button,omitempty"`
	Modifiers      []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

func (s KeySpec) view() keySpecView {
	v := keySpecView{Modifiers: s.Modifiers}
	switch s.Target.Kind {
	case KindButton:
		v.PointingButton = s.Target.Name
	default:
		v.KeyCode = s.Target.Name
	}
	return v
}

// MarshalJSON encodes s as a Karabiner-Elements key object:
// {"key_code": "a", "modifiers": ["left_shift"]}.
func (s KeySpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.view())
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (s KeySpec) MarshalYAML() (any, error) {
	return s.view(), nil
}
