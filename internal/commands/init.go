// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/bindgen/internal/config"
	"github.com/dacolabs/bindgen/internal/prompts"
	"github.com/dacolabs/bindgen/internal/translate"
	"github.com/spf13/cobra"
)

type initOptions struct {
	input          string
	output         string
	languages      []string
	clean          bool
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a bindgen.yaml configuration file",
		Long: `Create a bindgen.yaml configuration file in the current directory
(or at the path given by --config).`,
		Example: `  # Interactive mode
  bindgen init

  # Non-interactive
  bindgen init --openrpc specs/trp.json --lang ts,go --non-interactive`,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVar(&opts.input, "openrpc", config.DefaultInput, "Path to the OpenRPC spec")
	cmd.Flags().StringVarP(&opts.output, "out", "o", config.DefaultOutput, "Output directory")
	cmd.Flags().StringSliceVarP(&opts.languages, "lang", "l", nil, "Target languages, comma-separated")
	cmd.Flags().BoolVar(&opts.clean, "clean", false, "Remove the output directory before each run")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, config.FileName)
	}

	// Check that the target isn't already initialized
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists; project already initialized", path)
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.input, &opts.output, &opts.languages, &opts.clean, translators.Canonical()); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:   config.CurrentConfigVersion,
		Input:     opts.input,
		Output:    opts.output,
		Languages: opts.languages,
		Clean:     opts.clean,
	}
	if err := cfg.Validate(translators.Available()); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Input == "" || cfg.Output == "" {
		return errors.New("spec path and output directory are required")
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: path},
		{Label: "Spec", Value: cfg.Input},
		{Label: "Output", Value: cfg.Output},
	}, "Initialization completed")
	return nil
}
