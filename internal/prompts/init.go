// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(input, output *string, languages *[]string, clean *bool, available []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("OpenRPC spec").
				Placeholder("specs/trp.json").
				Validate(requiredValidator("spec path")).
				Value(input),
			huh.NewInput().
				Title("Output directory").
				Placeholder("bindings").
				Validate(requiredValidator("output directory")).
				Value(output),
		),
		huh.NewGroup(
			LanguageSelect(languages, available),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Remove the output directory before each run?").
				Value(clean),
		),
	).WithTheme(Theme()).Run()
}
