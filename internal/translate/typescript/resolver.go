// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typescript

import (
	"strings"

	"github.com/dacolabs/bindgen/internal/translate"
)

type resolver struct{}

func (r *resolver) PrimitiveType(kind string) string {
	switch kind {
	case "string":
		return "string"
	case "integer", "number":
		return "number"
	case "boolean":
		return "boolean"
	case "null":
		return "null"
	default:
		return r.AnyType()
	}
}

func (r *resolver) AnyType() string {
	return "any"
}

func (r *resolver) ArrayType(elemType string) string {
	if strings.Contains(elemType, " | ") {
		return "(" + elemType + ")[]"
	}
	return elemType + "[]"
}

func (r *resolver) MapType(valueType string) string {
	return "Record<string, " + valueType + ">"
}

func (r *resolver) UnionType(alternatives []string) string {
	return strings.Join(alternatives, " | ")
}

func (r *resolver) EnumType(values []string) (string, bool) {
	literals := make([]string, len(values))
	for i, v := range values {
		literals[i] = translate.Quote(v)
	}
	return strings.Join(literals, " | "), true
}

func (r *resolver) OptionalType(typ string) string {
	return typ + " | null"
}

func (r *resolver) FormatTypeName(name string) string {
	return translate.TypeIdentifier(name)
}

// FormatFieldName lower-firsts valid identifiers. Other names become quoted
// property keys so the interface still matches the wire.
func (r *resolver) FormatFieldName(name string) string {
	if translate.IsIdentifier(name) {
		return translate.LowerFirst(name)
	}
	return translate.Quote(name)
}

func (r *resolver) EnrichField(f *translate.Field) {
	if f.Optional {
		f.Tag = "?"
	}
}
