// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package catalog

import (
	"iter"
	"maps"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
)

// Walk returns an iterator over every schema node reachable from s without
// following $ref. Each node is yielded once.
func Walk(s *jsonschema.Schema) iter.Seq[*jsonschema.Schema] {
	return func(yield func(*jsonschema.Schema) bool) {
		visited := make(map[*jsonschema.Schema]struct{})
		walk(s, yield, visited)
	}
}

func walk(s *jsonschema.Schema, yield func(*jsonschema.Schema) bool, visited map[*jsonschema.Schema]struct{}) bool {
	if s == nil {
		return true
	}
	if _, ok := visited[s]; ok {
		return true
	}
	visited[s] = struct{}{}

	if !yield(s) {
		return false
	}

	single := []*jsonschema.Schema{
		s.AdditionalProperties, s.PropertyNames, s.UnevaluatedProperties,
		s.Items, s.AdditionalItems, s.Contains, s.UnevaluatedItems,
		s.Not, s.If, s.Then, s.Else, s.ContentSchema,
	}
	lists := [][]*jsonschema.Schema{single, s.ItemsArray, s.PrefixItems, s.AllOf, s.AnyOf, s.OneOf}
	for _, list := range lists {
		for _, child := range list {
			if !walk(child, yield, visited) {
				return false
			}
		}
	}

	keyed := []map[string]*jsonschema.Schema{
		s.Properties, s.PatternProperties, s.DependentSchemas,
		s.DependencySchemas, s.Defs, s.Definitions,
	}
	for _, m := range keyed {
		// Sorted so iteration order is stable between runs.
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !walk(m[key], yield, visited) {
				return false
			}
		}
	}
	return true
}

// DanglingRefs lists the $ref strings anywhere inside the catalog types that
// do not name a schema of src. The resolver only checks references it has to
// follow for fields; a dangling property reference still renders, as the bare
// sanitized name. Results are sorted and unique.
func DanglingRefs(types []Type, src Source) []string {
	seen := make(map[string]struct{})
	for _, t := range types {
		for node := range Walk(t.Schema) {
			if node.Ref == "" {
				continue
			}
			name, err := RefName(node.Ref)
			if err == nil {
				if _, ok := src.Schema(name); ok {
					continue
				}
			}
			seen[node.Ref] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
