// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/bindgen/internal/session"
	"github.com/dacolabs/bindgen/internal/translate"
	"github.com/dacolabs/bindgen/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bindgen",
		Short: "Generate type bindings from an OpenRPC spec",
		Long: `Generate type bindings from the named schemas of an OpenRPC spec
for TypeScript, Python, Go and Rust.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: session.PreRunLoad(translators.Available()),
	}

	rootCmd.PersistentFlags().String(session.ConfigFlag, "", "Path to config file (default ./bindgen.yaml)")
	rootCmd.PersistentFlags().Bool(session.VerboseFlag, false, "Enable debug logging")

	rootCmd.AddCommand(newGenCmd(translators))
	rootCmd.AddCommand(newCatalogCmd(translators))
	rootCmd.AddCommand(newInitCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
