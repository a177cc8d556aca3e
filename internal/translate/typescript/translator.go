// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typescript provides TypeScript declaration bindings.
package typescript

import (
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/bindgen/internal/catalog"
	"github.com/dacolabs/bindgen/internal/translate"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("typescript").Funcs(translate.Funcs()).ParseFS(tmplFS, "*.tmpl"))

// Translator renders a type catalog as TypeScript interfaces and type aliases.
type Translator struct{}

// Name returns the canonical language identifier.
func (t *Translator) Name() string {
	return "typescript"
}

// Resolver returns the TypeScript capability table.
func (t *Translator) Resolver() translate.TypeResolver {
	return &resolver{}
}

// Translate renders types.ts and package.json.
func (t *Translator) Translate(types []catalog.Type, meta translate.Metadata) ([]translate.File, error) {
	ctx := translate.BuildContext(types, t.Name(), t.Resolver())
	data := translate.Prepare(types, ctx, meta)

	files, err := translate.Execute(tmpl, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render typescript bindings: %w", err)
	}
	return files, nil
}
