// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package catalog resolves the named schemas of a spec into flattened type records.
package catalog

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Type is a named catalog entry with its normalized schema and resolved fields.
type Type struct {
	Name   string
	Schema *jsonschema.Schema
	Fields []Field
}

// Build resolves every named schema of src, in declaration order.
func Build(src Source) ([]Type, error) {
	names, ok := src.SchemaNames()
	if !ok {
		return nil, ErrMissingComponents
	}

	types := make([]Type, 0, len(names))
	for _, name := range names {
		raw, _ := src.Schema(name)
		schema := Normalize(raw)

		r := &resolver{src: src, stack: []string{name}}
		fields, err := r.fields(schema)
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", name, err)
		}

		types = append(types, Type{
			Name:   name,
			Schema: schema,
			Fields: fields,
		})
	}
	return types, nil
}
