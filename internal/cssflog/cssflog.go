// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cssflog configures the zerolog logger shared by the driver,
// worker pool and CLI: a package-level console-writer setup.
package cssflog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger: caller-annotated, human-readable
// console output on stderr.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Caller().Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// SetLevel adjusts the minimum level emitted by Log, e.g. for a
// CLI --verbose flag.
func SetLevel(level zerolog.Level) {
	Log = Log.Level(level)
}

// Task returns a logger scoped to a single task, tagging every line
// with its name for interleaved concurrent output.
func Task(name string) zerolog.Logger {
	return Log.With().Str("task", name).Logger()
}
