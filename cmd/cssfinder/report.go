// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wiesnim9/CSSFinder/internal/corrections"
)

// newReportCmd is a stub: it writes the raw corrections/decay data a
// full report renderer would consume, without producing PDF/HTML output
// itself (out of scope).
func newReportCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "report NAME",
		Short: "Print a task's raw corrections/decay data as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			m, err := loadManifest(manifestPath)
			if err != nil {
				return wrapExit(exitPersistenceFailure, err)
			}

			var dir string
			for _, e := range m.Tasks {
				if e.Name == name {
					dir = e.Dir
					break
				}
			}
			if dir == "" {
				return wrapExit(exitAmbiguousTask, fmt.Errorf("no registered task named %q", name))
			}

			recs, err := corrections.Load(filepath.Join(dir, "corrections.json"))
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return wrapExit(exitProjectNotFound, err)
				}
				return wrapExit(exitPersistenceFailure, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(recs)
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "tasks.yaml", "task manifest file")
	return cmd
}
