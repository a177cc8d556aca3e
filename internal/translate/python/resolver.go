// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

import (
	"slices"
	"strings"

	"github.com/dacolabs/bindgen/internal/translate"
)

var keywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await", "break",
	"class", "continue", "def", "del", "elif", "else", "except", "finally", "for",
	"from", "global", "if", "import", "in", "is", "lambda", "nonlocal", "not",
	"or", "pass", "raise", "return", "try", "while", "with", "yield",
}

type resolver struct{}

func (r *resolver) PrimitiveType(kind string) string {
	switch kind {
	case "string":
		return "str"
	case "integer":
		return "int"
	case "number":
		return "float"
	case "boolean":
		return "bool"
	case "null":
		return "None"
	default:
		return r.AnyType()
	}
}

func (r *resolver) AnyType() string {
	return "Any"
}

func (r *resolver) ArrayType(elemType string) string {
	return "List[" + elemType + "]"
}

func (r *resolver) MapType(valueType string) string {
	return "Dict[str, " + valueType + "]"
}

func (r *resolver) UnionType(alternatives []string) string {
	return "Union[" + strings.Join(alternatives, ", ") + "]"
}

func (r *resolver) EnumType(values []string) (string, bool) {
	literals := make([]string, len(values))
	for i, v := range values {
		literals[i] = translate.Quote(v)
	}
	return "Literal[" + strings.Join(literals, ", ") + "]", true
}

func (r *resolver) OptionalType(typ string) string {
	return "Optional[" + typ + "]"
}

func (r *resolver) FormatTypeName(name string) string {
	return translate.TypeIdentifier(name)
}

// FormatFieldName keeps the wire name when it is a usable identifier.
func (r *resolver) FormatFieldName(name string) string {
	if !translate.IsIdentifier(name) {
		name = translate.SnakeCase(name)
	}
	if slices.Contains(keywords, name) {
		return name + "_"
	}
	return name
}

func (r *resolver) EnrichField(f *translate.Field) {
	switch {
	case f.Name != f.WireName && f.Optional:
		f.Tag = " = dataclasses.field(default=None, metadata={\"wire_name\": " + translate.Quote(f.WireName) + "})"
	case f.Name != f.WireName:
		f.Tag = " = dataclasses.field(metadata={\"wire_name\": " + translate.Quote(f.WireName) + "})"
	case f.Optional:
		f.Tag = " = None"
	}
}
