// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dacolabs/bindgen/internal/generate"
	"github.com/dacolabs/bindgen/internal/prompts"
	"github.com/dacolabs/bindgen/internal/session"
	"github.com/dacolabs/bindgen/internal/translate"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

type genOptions struct {
	openrpc        string
	languages      []string
	out            string
	clean          bool
	check          bool
	pkg            string
	goModule       string
	nonInteractive bool
}

func newGenCmd(translators translate.Register) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate bindings for one or more languages",
		Long: fmt.Sprintf(`Generate type bindings from the components.schemas section of an OpenRPC spec.
Each language is written to its own subdirectory of the output directory.

Available languages: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive language selection
  bindgen gen

  # Generate TypeScript and Python bindings
  bindgen gen --openrpc specs/trp.json --lang ts,python

  # Regenerate everything from scratch
  bindgen gen --lang typescript,python,go,rust --out bindings --clean

  # Fail when committed bindings are stale
  bindgen gen --check --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVar(&opts.openrpc, "openrpc", "", "Path to the OpenRPC spec (default specs/trp.json)")
	cmd.Flags().StringSliceVarP(&opts.languages, "lang", "l", nil, fmt.Sprintf("Target languages, comma-separated (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output directory (default bindings)")
	cmd.Flags().BoolVar(&opts.clean, "clean", false, "Remove the output directory before generating")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Write nothing; fail when generated files would change")
	cmd.Flags().StringVar(&opts.pkg, "package", "", "Package name (default derived from the document title)")
	cmd.Flags().StringVar(&opts.goModule, "go-module", "", "Go module path (default the package name)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runGen(cmd *cobra.Command, translators translate.Register, opts *genOptions) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	genOpts := resolveGenOptions(cmd, sess, opts)

	if len(genOpts.Languages) == 0 {
		if opts.nonInteractive {
			return errors.New("no languages given; use --lang or set languages in bindgen.yaml")
		}
		if err := prompts.RunLanguageSelect(&genOpts.Languages, translators.Canonical()); err != nil {
			return err
		}
	}

	res, err := generate.Run(cmd.Context(), genOpts, translators, sess.Logger)
	if res == nil {
		return err
	}

	fields := make([]prompts.ResultField, 0, len(res.Languages))
	for _, lang := range res.Languages {
		fields = append(fields, prompts.ResultField{
			Label: lang.Language,
			Value: fmt.Sprintf("%s (%d of %d files changed)", lang.Dir, lang.Written, len(lang.Files)),
		})
	}

	msg := fmt.Sprintf("Generated %d language(s) from %d type(s)", len(res.Languages), len(res.Types))
	if genOpts.Check {
		msg = fmt.Sprintf("Bindings are up to date for %d language(s)", len(res.Languages))
	}
	if len(res.Languages) == 0 {
		msg = ""
	}
	prompts.PrintResult(cmd.OutOrStdout(), fields, msg)

	if err != nil {
		errs := multierr.Errors(err)
		failures := make([]string, len(errs))
		for i, e := range errs {
			failures[i] = e.Error()
		}
		prompts.PrintFailures(cmd.ErrOrStderr(), failures)
		return fmt.Errorf("failed to generate %d language(s): %w", len(errs), err)
	}
	return nil
}

// resolveGenOptions merges flags over the session config. Relative paths from
// a config file are resolved against the config file's directory.
func resolveGenOptions(cmd *cobra.Command, sess *session.Context, opts *genOptions) generate.Options {
	cfg := sess.Config
	flags := cmd.Flags()

	configPath := func(p string) string {
		if sess.ConfigPath == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(filepath.Dir(sess.ConfigPath), p)
	}

	genOpts := generate.Options{
		Spec:      configPath(cfg.Input),
		Languages: cfg.Languages,
		OutDir:    configPath(cfg.Output),
		Clean:     cfg.Clean,
		Check:     opts.check,
		Package:   cfg.Package,
		GoModule:  cfg.GoModule,
	}
	if flags.Changed("openrpc") {
		genOpts.Spec = opts.openrpc
	}
	if flags.Changed("lang") {
		genOpts.Languages = opts.languages
	}
	if flags.Changed("out") {
		genOpts.OutDir = opts.out
	}
	if flags.Changed("clean") {
		genOpts.Clean = opts.clean
	}
	if flags.Changed("package") {
		genOpts.Package = opts.pkg
	}
	if flags.Changed("go-module") {
		genOpts.GoModule = opts.goModule
	}
	return genOpts
}
