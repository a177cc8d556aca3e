// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package golang provides Go struct bindings.
package golang

import (
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/bindgen/internal/catalog"
	"github.com/dacolabs/bindgen/internal/translate"
	"golang.org/x/tools/imports"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("go").Funcs(translate.Funcs()).ParseFS(tmplFS, "*.tmpl"))

// Translator renders a type catalog as Go structs and defined types.
type Translator struct{}

// Name returns the canonical language identifier.
func (t *Translator) Name() string {
	return "go"
}

// Resolver returns the Go capability table.
func (t *Translator) Resolver() translate.TypeResolver {
	return &resolver{}
}

// Translate renders a gofmt-formatted types.go and a go.mod.
func (t *Translator) Translate(types []catalog.Type, meta translate.Metadata) ([]translate.File, error) {
	ctx := translate.BuildContext(types, t.Name(), t.Resolver())
	data := translate.Prepare(types, ctx, meta)
	data.Extra["Package"] = meta.GoPackage()

	// a struct cannot contain itself by value.
	for _, def := range data.Types {
		for i := range def.Fields {
			if def.Fields[i].Type == def.Name {
				def.Fields[i].Type = "*" + def.Name
			}
		}
	}

	files, err := translate.Execute(tmpl, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render go bindings: %w", err)
	}

	for i, f := range files {
		if f.Name != "types.go" {
			continue
		}
		formatted, err := imports.Process(f.Name, f.Content, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to format %s: %w", f.Name, err)
		}
		files[i].Content = formatted
	}
	return files, nil
}
