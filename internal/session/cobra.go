// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"github.com/spf13/cobra"
)

// Names of the persistent flags read by PreRunLoad.
const (
	ConfigFlag  = "config"
	VerboseFlag = "verbose"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	if cmd.Context() == nil {
		return nil
	}
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	sess := FromCommand(cmd)
	if sess == nil {
		return nil, ErrNotLoaded
	}
	return sess, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the session from
// the --config and --verbose flags and stores it in the command's context.
// Configured languages are validated against languages.
func PreRunLoad(languages []string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		configPath, _ := cmd.Flags().GetString(ConfigFlag)
		verbose, _ := cmd.Flags().GetBool(VerboseFlag)

		ctx, err := Load(cmd.Context(), Options{
			ConfigPath: configPath,
			Languages:  languages,
			Verbose:    verbose,
			LogOutput:  cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}
