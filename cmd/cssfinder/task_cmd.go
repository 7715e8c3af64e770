// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wiesnim9/CSSFinder/internal/cssfproject"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks registered against a project",
	}
	cmd.AddCommand(newTaskAddCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var manifestPath, outDir string

	cmd := &cobra.Command{
		Use:   "add NAME PROJECT_FILE",
		Short: "Register a named task backed by a project file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, projectPath := args[0], args[1]

			if _, err := cssfproject.Load(projectPath); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return wrapExit(exitProjectNotFound, err)
				}
				return wrapExit(exitInvalidProjectContent, err)
			}

			if outDir == "" {
				outDir = filepath.Join(filepath.Dir(manifestPath), name)
			}

			m, err := loadManifest(manifestPath)
			if err != nil {
				return wrapExit(exitPersistenceFailure, err)
			}
			if err := m.add(manifestEntry{Name: name, Project: projectPath, Dir: outDir}); err != nil {
				return wrapExit(exitInvalidProjectContent, err)
			}
			if err := m.save(manifestPath); err != nil {
				return wrapExit(exitPersistenceFailure, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered task %q -> %s\n", name, outDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "tasks.yaml", "task manifest file")
	cmd.Flags().StringVar(&outDir, "dir", "", "output directory (default: alongside the manifest, named after the task)")
	return cmd
}
