// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package catalog

import (
	"slices"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// Source provides the named schemas a catalog is resolved against.
type Source interface {
	// SchemaNames returns the named schemas in declaration order;
	// ok is false when the document has no named-schema section.
	SchemaNames() (names []string, ok bool)

	// Schema looks up a named schema.
	Schema(name string) (*jsonschema.Schema, bool)

	// PropertyNames returns the property names of s in declaration order.
	PropertyNames(s *jsonschema.Schema) []string
}

// Field is a single resolved property of a catalog type.
type Field struct {
	Name     string
	Schema   *jsonschema.Schema // normalized, not resolved
	Required bool
}

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// RefName extracts the referenced schema name from a $ref string,
// e.g. "#/components/schemas/User" -> "User".
func RefName(ref string) (string, error) {
	i := strings.LastIndex(ref, "/")
	if i < 0 || i == len(ref)-1 {
		return "", &ReferenceError{Ref: ref, kind: ErrMalformedReference}
	}
	return pointerUnescaper.Replace(ref[i+1:]), nil
}

// ResolveFields flattens s into an ordered field list, following $ref and allOf.
func ResolveFields(s *jsonschema.Schema, src Source) ([]Field, error) {
	r := &resolver{src: src}
	return r.fields(Normalize(s))
}

type resolver struct {
	src Source
	// stack holds the names currently being resolved, outermost first.
	stack []string
}

func (r *resolver) fields(s *jsonschema.Schema) ([]Field, error) {
	switch {
	case s.Ref != "":
		return r.followRef(s.Ref)
	case len(s.AllOf) > 0:
		return r.flattenAllOf(s.AllOf)
	case len(s.Properties) > 0:
		return r.properties(s), nil
	}
	return nil, nil
}

func (r *resolver) followRef(ref string) ([]Field, error) {
	name, err := RefName(ref)
	if err != nil {
		return nil, err
	}
	if i := slices.Index(r.stack, name); i >= 0 {
		chain := append(slices.Clone(r.stack[i:]), name)
		return nil, &ReferenceError{Ref: ref, Chain: chain, kind: ErrCyclicReference}
	}

	target, ok := r.src.Schema(name)
	if !ok {
		return nil, &ReferenceError{Ref: ref, kind: ErrUnknownReference}
	}

	r.stack = append(r.stack, name)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	return r.fields(Normalize(target))
}

// flattenAllOf concatenates the fields of every member in declaration order.
// A name declared by more than one member keeps its first position; the later
// declaration supplies the schema and required is true if any member requires it.
func (r *resolver) flattenAllOf(members []*jsonschema.Schema) ([]Field, error) {
	var merged []Field
	index := make(map[string]int)
	for _, member := range members {
		fields, err := r.fields(Normalize(member))
		if err != nil {
			return nil, err
		}
		for _, f := range fields {
			if i, dup := index[f.Name]; dup {
				merged[i].Schema = f.Schema
				merged[i].Required = merged[i].Required || f.Required
				continue
			}
			index[f.Name] = len(merged)
			merged = append(merged, f)
		}
	}
	return merged, nil
}

func (r *resolver) properties(s *jsonschema.Schema) []Field {
	names := r.src.PropertyNames(s)
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{
			Name:     name,
			Schema:   Normalize(s.Properties[name]),
			Required: slices.Contains(s.Required, name),
		})
	}
	return fields
}
