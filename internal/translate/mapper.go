// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"github.com/dacolabs/bindgen/internal/catalog"
	"github.com/google/jsonschema-go/jsonschema"
)

// MapType renders the type expression of a schema node for the context's language.
// Shapes are tried in order: reference, union, string enum, array, map,
// primitive; anything else maps to the language's any type.
func MapType(s *jsonschema.Schema, ctx *NamingContext) string {
	r := ctx.resolver
	s = catalog.Normalize(s)

	if s.Ref != "" {
		name, err := catalog.RefName(s.Ref)
		if err != nil {
			return r.AnyType()
		}
		return ctx.TypeName(name)
	}

	if alternatives := unionMembers(s); len(alternatives) > 0 {
		rendered := make([]string, len(alternatives))
		for i, alt := range alternatives {
			rendered[i] = MapType(alt, ctx)
		}
		return r.UnionType(rendered)
	}

	if values := stringEnum(s); len(values) > 0 {
		if typ, ok := r.EnumType(values); ok {
			return typ
		}
	}

	kind := primitiveKind(s)
	switch {
	case kind == "array":
		if item := arrayItem(s); item != nil {
			return r.ArrayType(MapType(item, ctx))
		}
		return r.ArrayType(r.AnyType())
	case kind == "object" || (kind == "" && s.AdditionalProperties != nil):
		if value := additionalProperties(s); value != nil {
			return r.MapType(MapType(value, ctx))
		}
		return r.MapType(r.AnyType())
	case kind != "":
		return r.PrimitiveType(kind)
	}

	return r.AnyType()
}

// FieldType renders a field's type expression including the optional wrap.
func FieldType(f catalog.Field, ctx *NamingContext) string {
	return ctx.WrapOptional(MapType(f.Schema, ctx), f.Required)
}

func unionMembers(s *jsonschema.Schema) []*jsonschema.Schema {
	if len(s.OneOf) > 0 {
		return s.OneOf
	}
	return s.AnyOf
}

// stringEnum returns the string literals of an enum, skipping other values.
func stringEnum(s *jsonschema.Schema) []string {
	var values []string
	for _, v := range s.Enum {
		if str, ok := v.(string); ok {
			values = append(values, str)
		}
	}
	return values
}

// primitiveKind returns the declared type, preferring the first non-null
// entry of a type list.
func primitiveKind(s *jsonschema.Schema) string {
	if s.Type != "" {
		return s.Type
	}
	for _, t := range s.Types {
		if t != "null" {
			return t
		}
	}
	if len(s.Types) > 0 {
		return s.Types[0]
	}
	return ""
}

func arrayItem(s *jsonschema.Schema) *jsonschema.Schema {
	if s.Items != nil {
		return s.Items
	}
	if len(s.PrefixItems) > 0 {
		return s.PrefixItems[0]
	}
	if len(s.ItemsArray) > 0 {
		return s.ItemsArray[0]
	}
	return nil
}

// additionalProperties returns the value schema of a map-like object,
// or nil when none is declared or additional properties are forbidden.
func additionalProperties(s *jsonschema.Schema) *jsonschema.Schema {
	ap := s.AdditionalProperties
	if ap == nil {
		return nil
	}
	if catalog.IsFalse(ap) {
		return nil
	}
	return ap
}
