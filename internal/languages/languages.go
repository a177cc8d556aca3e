// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package languages wires every supported translator into a register.
package languages

import (
	"github.com/dacolabs/bindgen/internal/translate"
	"github.com/dacolabs/bindgen/internal/translate/golang"
	"github.com/dacolabs/bindgen/internal/translate/python"
	"github.com/dacolabs/bindgen/internal/translate/rust"
	"github.com/dacolabs/bindgen/internal/translate/typescript"
)

// Register returns every supported language keyed by its canonical name and aliases.
func Register() translate.Register {
	ts := &typescript.Translator{}
	goTranslator := &golang.Translator{}

	translators := make(translate.Register)
	translators["typescript"] = ts
	translators["ts"] = ts
	translators["python"] = &python.Translator{}
	translators["go"] = goTranslator
	translators["golang"] = goTranslator
	translators["rust"] = &rust.Translator{}
	return translators
}
