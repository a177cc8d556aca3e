// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/bindgen/internal/commands"
	"github.com/dacolabs/bindgen/internal/languages"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, arguments).
func Run(ctx context.Context, args []string) error {
	rootCmd := commands.NewRootCmd(languages.Register())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
