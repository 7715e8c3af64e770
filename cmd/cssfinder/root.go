// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wiesnim9/CSSFinder/internal/cssflog"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "cssfinder",
		Short: "Search for the closest separable state under the Gilbert algorithm",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				cssflog.SetLevel(zerolog.DebugLevel)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newProjectCmd())
	root.AddCommand(newTaskCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newReportCmd())
	return root
}
