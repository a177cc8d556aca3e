// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package openrpc provides the OpenRPC document model and parsers.
package openrpc

import (
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
)

// DefaultVersion is used when the document info block carries no version.
const DefaultVersion = "0.1.0"

// Document represents the parts of an OpenRPC specification used for code generation.
type Document struct {
	OpenRPC    string
	Info       Info
	Methods    []Method
	Components *Components

	// schemaOrder is the declaration order of components.schemas.
	schemaOrder []string
	// propertyOrder maps a schema node to the declaration order of its properties.
	propertyOrder map[*jsonschema.Schema][]string
}

// Info contains metadata about the API.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Method is a remote procedure declared by the document.
type Method struct {
	Name        string
	Summary     string
	Description string
}

// Components holds the reusable objects of the document.
type Components struct {
	Schemas map[string]*jsonschema.Schema
}

// Version returns the info version, or DefaultVersion when it is absent.
func (d *Document) Version() string {
	if d.Info.Version == "" {
		return DefaultVersion
	}
	return d.Info.Version
}

// SchemaNames returns the names of components.schemas in declaration order.
// ok is false when the document has no named-schema section at all.
func (d *Document) SchemaNames() (names []string, ok bool) {
	if d.Components == nil || d.Components.Schemas == nil {
		return nil, false
	}
	return orderedKeys(d.schemaOrder, d.Components.Schemas), true
}

// Schema returns the named component schema.
func (d *Document) Schema(name string) (*jsonschema.Schema, bool) {
	if d.Components == nil {
		return nil, false
	}
	s, ok := d.Components.Schemas[name]
	return s, ok
}

// PropertyNames returns the property names of s in their original document order.
// Schemas built in code (without a recorded order) fall back to alphabetical order.
func (d *Document) PropertyNames(s *jsonschema.Schema) []string {
	if s == nil {
		return nil
	}
	return orderedKeys(d.propertyOrder[s], s.Properties)
}

// orderedKeys filters order down to the keys present in m and appends any
// remaining keys of m sorted alphabetically.
func orderedKeys[V any](order []string, m map[string]V) []string {
	seen := make(map[string]bool, len(m))
	result := make([]string, 0, len(m))
	for _, key := range order {
		if _, exists := m[key]; exists && !seen[key] {
			result = append(result, key)
			seen[key] = true
		}
	}

	var rest []string
	for key := range m {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(result, rest...)
}
