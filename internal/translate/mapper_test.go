// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"
	"testing"

	"github.com/dacolabs/bindgen/internal/catalog"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
)

// stubResolver is a minimal TypeResolver that spells every shape explicitly.
type stubResolver struct {
	noEnums bool
}

func (s *stubResolver) PrimitiveType(kind string) string  { return kind }
func (s *stubResolver) AnyType() string                   { return "any" }
func (s *stubResolver) ArrayType(elemType string) string  { return "[]" + elemType }
func (s *stubResolver) MapType(valueType string) string   { return "map[" + valueType + "]" }
func (s *stubResolver) OptionalType(typ string) string    { return "?" + typ }
func (s *stubResolver) FormatTypeName(name string) string { return TypeIdentifier(name) }
func (s *stubResolver) FormatFieldName(name string) string {
	return LowerFirst(name)
}

func (s *stubResolver) UnionType(alternatives []string) string {
	return strings.Join(alternatives, " | ")
}

func (s *stubResolver) EnumType(values []string) (string, bool) {
	if s.noEnums {
		return "", false
	}
	return "enum(" + strings.Join(values, ",") + ")", true
}

func (s *stubResolver) EnrichField(f *Field) {
	f.Tag = "wire:" + f.WireName
}

func stubContext(names ...string) *NamingContext {
	types := make([]catalog.Type, len(names))
	for i, n := range names {
		types[i] = catalog.Type{Name: n, Schema: &jsonschema.Schema{}}
	}
	return BuildContext(types, "stub", &stubResolver{})
}

func TestMapType(t *testing.T) {
	tests := []struct {
		name   string
		schema *jsonschema.Schema
		want   string
	}{
		{"nil", nil, "any"},
		{"empty", &jsonschema.Schema{}, "any"},
		{"false", &jsonschema.Schema{Not: &jsonschema.Schema{}}, "any"},
		{"ref", &jsonschema.Schema{Ref: "#/components/schemas/user-profile"}, "UserProfile"},
		{"malformed ref", &jsonschema.Schema{Ref: "#/"}, "any"},
		{"string", &jsonschema.Schema{Type: "string"}, "string"},
		{"null", &jsonschema.Schema{Type: "null"}, "null"},
		{"type list", &jsonschema.Schema{Types: []string{"null", "integer"}}, "integer"},
		{"null only list", &jsonschema.Schema{Types: []string{"null"}}, "null"},
		{
			"oneOf",
			&jsonschema.Schema{OneOf: []*jsonschema.Schema{{Type: "string"}, {Ref: "#/components/schemas/Base"}}},
			"string | Base",
		},
		{
			"anyOf",
			&jsonschema.Schema{AnyOf: []*jsonschema.Schema{{Type: "integer"}, {Type: "boolean"}}},
			"integer | boolean",
		},
		{"string enum", &jsonschema.Schema{Type: "string", Enum: []any{"a", "b"}}, "enum(a,b)"},
		{"numeric enum", &jsonschema.Schema{Type: "integer", Enum: []any{1.0, 2.0}}, "integer"},
		{"array", &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "integer"}}, "[]integer"},
		{
			"tuple",
			&jsonschema.Schema{Type: "array", PrefixItems: []*jsonschema.Schema{{Type: "string"}, {Type: "number"}}},
			"[]string",
		},
		{
			"draft-07 tuple",
			&jsonschema.Schema{Type: "array", ItemsArray: []*jsonschema.Schema{{Type: "boolean"}, {Type: "string"}}},
			"[]boolean",
		},
		{"array without items", &jsonschema.Schema{Type: "array"}, "[]any"},
		{
			"nested array",
			&jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "boolean"}}},
			"[][]boolean",
		},
		{
			"map",
			&jsonschema.Schema{Type: "object", AdditionalProperties: &jsonschema.Schema{Type: "integer"}},
			"map[integer]",
		},
		{
			"untyped map",
			&jsonschema.Schema{AdditionalProperties: &jsonschema.Schema{Type: "string"}},
			"map[string]",
		},
		{"open object", &jsonschema.Schema{Type: "object"}, "map[any]"},
		{
			"closed object",
			&jsonschema.Schema{Type: "object", AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}}},
			"map[any]",
		},
		{
			"permissive map",
			&jsonschema.Schema{Type: "object", AdditionalProperties: &jsonschema.Schema{}},
			"map[any]",
		},
	}

	ctx := stubContext("user-profile", "Base")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapType(tt.schema, ctx))
		})
	}
}

func TestMapType_EnumFallsThrough(t *testing.T) {
	ctx := BuildContext(nil, "stub", &stubResolver{noEnums: true})

	assert.Equal(t, "string", MapType(&jsonschema.Schema{Type: "string", Enum: []any{"a"}}, ctx))
	assert.Equal(t, "any", MapType(&jsonschema.Schema{Enum: []any{"a"}}, ctx))
}

func TestFieldType_OptionalWrap(t *testing.T) {
	ctx := stubContext()
	schema := &jsonschema.Schema{Type: "string"}

	assert.Equal(t, "string", FieldType(catalog.Field{Name: "id", Schema: schema, Required: true}, ctx))
	assert.Equal(t, "?string", FieldType(catalog.Field{Name: "id", Schema: schema}, ctx))
}

func TestNamingContext(t *testing.T) {
	ctx := stubContext("user-profile")

	assert.Equal(t, "stub", ctx.Language)
	assert.Equal(t, "UserProfile", ctx.TypeName("user-profile"))
	assert.Equal(t, "NotInCatalog", ctx.TypeName("not-in-catalog"))
	assert.Equal(t, "displayName", ctx.FieldName("DisplayName"))
	assert.Equal(t, "T", ctx.WrapOptional("T", true))
	assert.Equal(t, "?T", ctx.WrapOptional("T", false))
}
