// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rust provides Rust serde struct bindings.
package rust

import (
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/bindgen/internal/catalog"
	"github.com/dacolabs/bindgen/internal/translate"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("rust").Funcs(translate.Funcs()).ParseFS(tmplFS, "*.tmpl"))

// Translator renders a type catalog as Rust structs and type aliases.
type Translator struct{}

// Name returns the canonical language identifier.
func (t *Translator) Name() string {
	return "rust"
}

// Resolver returns the Rust capability table.
func (t *Translator) Resolver() translate.TypeResolver {
	return &resolver{}
}

// Translate renders types.rs and Cargo.toml.
func (t *Translator) Translate(types []catalog.Type, meta translate.Metadata) ([]translate.File, error) {
	ctx := translate.BuildContext(types, t.Name(), t.Resolver())
	data := translate.Prepare(types, ctx, meta)

	// direct self references need indirection to have a known size.
	for _, def := range data.Types {
		boxed := "Box<" + def.Name + ">"
		for i := range def.Fields {
			switch def.Fields[i].Type {
			case def.Name:
				def.Fields[i].Type = boxed
			case "Option<" + def.Name + ">":
				def.Fields[i].Type = "Option<" + boxed + ">"
			}
		}
	}

	files, err := translate.Execute(tmpl, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render rust bindings: %w", err)
	}
	return files, nil
}
