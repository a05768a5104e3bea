/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package attrfile_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/karaconv/attrfile"
	"bennypowers.dev/karaconv/internal/mapfs"
	"bennypowers.dev/karaconv/keyspec"
)

func TestParse(t *testing.T) {
	data := []byte("# caps lock becomes control\n" +
		"KeyCode::CAPSLOCK, KeyCode::CONTROL_L\n" +
		"\n" +
		"   KeyCode::A, ModifierFlag::FN   \n" +
		"PointingButton::MIDDLE, VK_COMMAND\n")

	entries, err := attrfile.Parse("private.txt", data)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, attrfile.Entry{
		File:   "private.txt",
		Line:   2,
		Source: "KeyCode::CAPSLOCK, KeyCode::CONTROL_L",
		Keys: []keyspec.KeySpec{
			{Target: keyspec.Key("caps_lock"), Modifiers: []string{}},
			{Target: keyspec.Key("left_control"), Modifiers: []string{}},
		},
	}, entries[0])

	assert.Equal(t, 4, entries[1].Line)
	assert.Equal(t, "KeyCode::A, ModifierFlag::FN", entries[1].Source)
	assert.Equal(t, []string{"fn"}, entries[1].Keys[0].Modifiers)

	assert.Equal(t, 5, entries[2].Line)
	assert.Equal(t, keyspec.Button("button3"), entries[2].Keys[0].Target)
}

func TestParse_Empty(t *testing.T) {
	entries, err := attrfile.Parse("empty.txt", []byte("# nothing here\n\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParse_LongLine(t *testing.T) {
	source := strings.Repeat("KeyCode::A, ", 8000) + "KeyCode::B"
	require.Greater(t, len(source), 64*1024)

	entries, err := attrfile.Parse("long.txt", []byte("# generated\n"+source+"\nKeyCode::C\n"))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Len(t, entries[0].Keys, 8001)
	assert.Equal(t, keyspec.Key("b"), entries[0].Keys[8000].Target)
	assert.Equal(t, 3, entries[1].Line)
}

func TestParse_Error(t *testing.T) {
	data := []byte("KeyCode::A\nKeyCode::B\nKeyCode::LEFT_BRACKET, ModifierFlag::SHIFT\nKeyCode::C\n")

	entries, err := attrfile.Parse("broken.txt", data)
	assert.Nil(t, entries)

	var lineErr *attrfile.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, "broken.txt", lineErr.File)
	assert.Equal(t, 3, lineErr.Line)
	assert.True(t, errors.Is(err, keyspec.ErrUnknownKeyCode))
	assert.Equal(t,
		`broken.txt:3: unknown key code "LEFT_BRACKET" (in "KeyCode::LEFT_BRACKET, ModifierFlag::SHIFT")`,
		err.Error())
}

func TestParseFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/keymaps/basic.txt", "KeyCode::ESCAPE\n", 0644)

	entries, err := attrfile.ParseFile(mfs, "/keymaps/basic.txt")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/keymaps/basic.txt", entries[0].File)

	_, err = attrfile.ParseFile(mfs, "/keymaps/missing.txt")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
