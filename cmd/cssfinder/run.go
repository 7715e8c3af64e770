// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/spf13/cobra"

	"github.com/wiesnim9/CSSFinder/internal/task"
	"github.com/wiesnim9/CSSFinder/internal/taskpool"
)

func newRunCmd() *cobra.Command {
	var manifestPath, match string
	var forceSequential bool
	var maxParallel int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run registered tasks, optionally filtered and in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(manifestPath)
			if err != nil {
				return wrapExit(exitPersistenceFailure, err)
			}

			var selected []*task.Task
			for _, e := range m.Tasks {
				if match != "" {
					ok, err := path.Match(match, e.Name)
					if err != nil {
						return wrapExit(exitInvalidProjectContent, fmt.Errorf("bad --match pattern: %w", err))
					}
					if !ok {
						continue
					}
				}
				tk, err := task.Load(e.Name, e.Project, e.Dir)
				if err != nil {
					if errors.Is(err, os.ErrNotExist) {
						return wrapExit(exitProjectNotFound, err)
					}
					return wrapExit(exitInvalidProjectContent, err)
				}
				selected = append(selected, tk)
			}

			if len(selected) == 0 {
				return wrapExit(exitAmbiguousTask, fmt.Errorf("no task matches %q", match))
			}

			width := maxParallel
			if forceSequential {
				width = 1
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			results, err := taskpool.New(width).Run(ctx, selected)
			if err != nil {
				return wrapExit(exitPersistenceFailure, err)
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "task %s failed: %v\n", r.Name, r.Err)
				}
			}
			if failed > 0 {
				return wrapExit(exitPersistenceFailure, fmt.Errorf("%d of %d tasks failed", failed, len(results)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "tasks.yaml", "task manifest file")
	cmd.Flags().StringVar(&match, "match", "", "glob pattern selecting task names to run")
	cmd.Flags().BoolVar(&forceSequential, "force-sequential", false, "run tasks one at a time")
	cmd.Flags().IntVar(&maxParallel, "max-parallel", 0, "maximum concurrent tasks (default: GOMAXPROCS)")
	return cmd
}
