/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI's diagnostic logger.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	// Diagnostics go to stderr so converted output on stdout stays clean.
	output  io.Writer = os.Stderr
	logger            = log.New(output, "", 0)
	verbose bool
)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger = log.New(output, "", 0)
}

// SetVerbose enables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// Error logs a conversion or I/O failure.
func Error(format string, args ...any) {
	logger.Printf("error: "+format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Printf(format, args...)
}

// Debug logs only when verbose output is enabled.
func Debug(format string, args ...any) {
	if !verbose {
		return
	}
	logger.Printf(format, args...)
}
