// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package python provides Python dataclass bindings.
package python

import (
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/bindgen/internal/catalog"
	"github.com/dacolabs/bindgen/internal/translate"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("python").Funcs(translate.Funcs()).ParseFS(tmplFS, "*.tmpl"))

// Translator renders a type catalog as Python dataclasses and type aliases.
type Translator struct{}

// Name returns the canonical language identifier.
func (t *Translator) Name() string {
	return "python"
}

// Resolver returns the Python capability table.
func (t *Translator) Resolver() translate.TypeResolver {
	return &resolver{}
}

// Translate renders types.py and pyproject.toml.
func (t *Translator) Translate(types []catalog.Type, meta translate.Metadata) ([]translate.File, error) {
	ctx := translate.BuildContext(types, t.Name(), t.Resolver())
	data := translate.Prepare(types, ctx, meta)

	files, err := translate.Execute(tmpl, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render python bindings: %w", err)
	}
	return files, nil
}
