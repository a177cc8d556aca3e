// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"github.com/dacolabs/bindgen/internal/prompts"
	"github.com/dacolabs/bindgen/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the bindgen version",
		Long:  `Show the bindgen version, the VCS revision it was built from and the Go toolchain.`,
		Example: `  # Show the version
  bindgen version`,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
				{Label: "Version", Value: version.Short()},
				{Label: "Commit", Value: version.Commit()},
				{Label: "Built", Value: version.Date()},
			}, "")
			return nil
		},
	}
	return cmd
}
