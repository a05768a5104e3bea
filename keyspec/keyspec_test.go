/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package keyspec_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/karaconv/keyspec"
)

func TestKeyOrButton(t *testing.T) {
	k := keyspec.Key("a")
	assert.True(t, k.IsKey())
	assert.False(t, k.IsButton())
	assert.Equal(t, "key_code:a", k.String())

	b := keyspec.Button("button1")
	assert.True(t, b.IsButton())
	assert.False(t, b.IsKey())
	assert.Equal(t, "pointing_button:button1", b.String())

	assert.Equal(t, keyspec.Key("a"), k, "values compare by kind and name")
	assert.NotEqual(t, keyspec.Key("button1"), b)
}

func TestKeySpec_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		spec     keyspec.KeySpec
		expected string
	}{
		{
			name:     "key with modifiers",
			spec:     keyspec.KeySpec{Target: keyspec.Key("a"), Modifiers: []string{"left_shift", "fn"}},
			expected: `{"key_code":"a","modifiers":["left_shift","fn"]}`,
		},
		{
			name:     "key without modifiers",
			spec:     keyspec.KeySpec{Target: keyspec.Key("b"), Modifiers: []string{}},
			expected: `{"key_code":"b"}`,
		},
		{
			name:     "button",
			spec:     keyspec.KeySpec{Target: keyspec.Button("button3")},
			expected: `{"pointing_button":"button3"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.spec)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(got))
		})
	}
}

func TestKeySpec_MarshalYAML(t *testing.T) {
	specs := []keyspec.KeySpec{
		{Target: keyspec.Key("escape"), Modifiers: []string{"left_control"}},
		{Target: keyspec.Button("button2")},
	}

	out, err := yaml.Marshal(specs)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(out, &got))
	require.Len(t, got, 2)

	assert.Equal(t, "escape", got[0]["key_code"])
	assert.Equal(t, []any{"left_control"}, got[0]["modifiers"])
	assert.NotContains(t, got[0], "pointing_button")

	assert.Equal(t, "button2", got[1]["pointing_button"])
	assert.NotContains(t, got[1], "modifiers")
}

func TestTokenError(t *testing.T) {
	err := fmt.Errorf("line 3: %w", keyspec.NewTokenError(keyspec.ErrUnknownKeyCode, "LEFT_BRACKET"))

	assert.True(t, errors.Is(err, keyspec.ErrUnknownKeyCode))
	assert.False(t, errors.Is(err, keyspec.ErrUnknownButton))

	var tokErr *keyspec.TokenError
	require.True(t, errors.As(err, &tokErr))
	assert.Equal(t, "LEFT_BRACKET", tokErr.Value)
	assert.Equal(t, `line 3: unknown key code "LEFT_BRACKET"`, err.Error())
}
