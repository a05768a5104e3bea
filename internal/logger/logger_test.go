/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	Warn("skipping %s", "empty.txt")
	Error("line %d: bad", 3)
	Debug("hidden")
	SetVerbose(true)
	Debug("shown %d", 1)
	Info("done")

	assert.Equal(t, "warning: skipping empty.txt\nerror: line 3: bad\nshown 1\ndone\n", buf.String())
}
