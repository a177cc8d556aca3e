// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// LanguageSelect returns a multi-select field for choosing target languages.
func LanguageSelect(value *[]string, languages []string) *huh.MultiSelect[string] {
	options := make([]huh.Option[string], len(languages))
	for i, l := range languages {
		options[i] = huh.NewOption(l, l)
	}
	return huh.NewMultiSelect[string]().
		Title("Target languages").
		Options(options...).
		Validate(func(selected []string) error {
			if len(selected) == 0 {
				return errors.New("select at least one language")
			}
			return nil
		}).
		Value(value)
}

// RunLanguageSelect asks for the target languages.
func RunLanguageSelect(value *[]string, languages []string) error {
	return huh.NewForm(
		huh.NewGroup(LanguageSelect(value, languages)),
	).WithTheme(Theme()).Run()
}
