/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package keycode_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/karaconv/keycode"
)

func TestKey(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"A", "a"},
		{"Z", "z"},
		{"0", "0"},
		{"KEY_0", "0"},
		{"KEY_9", "9"},
		{"KEYPAD_DOT", "keypad_period"},
		{"KEYPAD_MULTIPLY", "keypad_asterisk"},
		{"BRACKET_LEFT", "open_bracket"},
		{"ENTER", "return_or_enter"},
		{"RETURN", "return_or_enter"},
		{"SPACE", "spacebar"},
		{"F19", "f19"},
		{"BRIGHTNESS_UP", "display_brightness_increment"},
		{"PAGEDOWN", "page_down"},
		{"SHIFT_R", "right_shift"},
		{"CURSOR_DOWN", "down_arrow"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := keycode.Key(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestKey_Misses(t *testing.T) {
	for _, id := range []string{"", "a", "LEFT_BRACKET", " A", "F20", "SHIFT"} {
		t.Run(id, func(t *testing.T) {
			_, ok := keycode.Key(id)
			assert.False(t, ok)
		})
	}
}

func TestKey_NumericAliases(t *testing.T) {
	for _, d := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		bare, ok := keycode.Key(d)
		require.True(t, ok)
		alias, ok := keycode.Key("KEY_" + d)
		require.True(t, ok)
		assert.Equal(t, bare, alias, "KEY_%s should alias %s", d, d)
	}
}

func TestButton(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"LEFT", "button1"},
		{"RIGHT", "button2"},
		{"MIDDLE", "button3"},
		{"BUTTON1", "button1"},
		{"BUTTON9", "button9"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := keycode.Button(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, ok := keycode.Button("BUTTON10")
	assert.False(t, ok)
}

func TestModifier(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"ZERO", "zero"},
		{"SHIFT", "left_shift"},
		{"SHIFT_L", "left_shift"},
		{"SHIFT_R", "right_shift"},
		{"CONTROL", "left_control"},
		{"COMMAND", "left_command"},
		{"COMMAND_R", "right_command"},
		{"OPTION_L", "left_option"},
		{"CAPSLOCK", "caps_lock"},
		{"FN", "fn"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := keycode.Modifier(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestModifier_NoneIsNotAnEntry(t *testing.T) {
	_, ok := keycode.Modifier("NONE")
	assert.False(t, ok)

	// OPTION has no unsided form in the legacy format.
	_, ok = keycode.Modifier("OPTION")
	assert.False(t, ok)
}

func TestCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected keycode.Category
		name     string
		xml      string
	}{
		{"key", keycode.CategoryKey, "key", "KeyCode"},
		{"KeyCode", keycode.CategoryKey, "key", "KeyCode"},
		{"buttons", keycode.CategoryButton, "button", "PointingButton"},
		{"ModifierFlag", keycode.CategoryModifier, "modifier", "ModifierFlag"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := keycode.ParseCategory(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.name, got.String())
			assert.Equal(t, tt.xml, got.XMLName())
		})
	}

	_, err := keycode.ParseCategory("consumer")
	assert.Error(t, err)
}

func TestEntries(t *testing.T) {
	for _, c := range keycode.Categories() {
		t.Run(c.String(), func(t *testing.T) {
			entries := keycode.Entries(c)
			require.NotEmpty(t, entries)
			assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
				return entries[i].Legacy < entries[j].Legacy
			}))
		})
	}

	t.Run("copies are independent", func(t *testing.T) {
		entries := keycode.Entries(keycode.CategoryButton)
		entries[0].Canonical = "mutated"

		got, ok := keycode.Button(entries[0].Legacy)
		require.True(t, ok)
		assert.NotEqual(t, "mutated", got)
	})

	assert.Nil(t, keycode.Entries(keycode.Category(99)))
}
