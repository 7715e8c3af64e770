// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cssfinder is the thin, out-of-core driver CLI: it creates
// project scaffolding, registers tasks, runs them (optionally in
// parallel), and reports raw corrections/decay data for downstream
// rendering.
package main

import (
	"fmt"
	"os"
)

const (
	exitOK                    = 0
	exitProjectNotFound       = 10
	exitMalformedProject      = 11
	exitInvalidProjectContent = 12
	exitPersistenceFailure    = 13
	exitAmbiguousTask         = 14
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cssfinder:", err)
		os.Exit(exitCode(err))
	}
}
