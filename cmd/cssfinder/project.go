// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const projectTemplate = `mode: FSnQd
precision: double
backend: default
input: input.mtx
depth: 0
quantity: 0
visibility: 1.0
max_epochs: 1000
iters_per_epoch: 100
max_corrections: -1
resources:
  max_parallel: 1
`

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage CSSFinder project scaffolding",
	}
	cmd.AddCommand(newProjectInitCmd())
	return cmd
}

func newProjectInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init DIR",
		Short: "Create a new project directory with a starter project.yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return wrapExit(exitPersistenceFailure, fmt.Errorf("create project dir: %w", err))
			}
			path := filepath.Join(dir, "project.yaml")
			if _, err := os.Stat(path); err == nil {
				return wrapExit(exitInvalidProjectContent, fmt.Errorf("%s already exists", path))
			}
			if err := os.WriteFile(path, []byte(projectTemplate), 0o644); err != nil {
				return wrapExit(exitPersistenceFailure, fmt.Errorf("write project.yaml: %w", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "created", path)
			return nil
		},
	}
}
