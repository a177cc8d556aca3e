// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dacolabs/bindgen/internal/translate"
)

var keywords = []string{
	"as", "async", "await", "break", "const", "continue", "dyn", "else", "enum",
	"extern", "false", "fn", "for", "if", "impl", "in", "let", "loop", "match",
	"mod", "move", "mut", "pub", "ref", "return", "static", "struct", "trait",
	"true", "type", "unsafe", "use", "where", "while", "abstract", "become",
	"box", "do", "final", "gen", "macro", "override", "priv", "try", "typeof",
	"unsized", "virtual", "yield",
}

// rawForbidden lists keywords that cannot be used as raw identifiers.
var rawForbidden = []string{"crate", "self", "super"}

type resolver struct{}

func (r *resolver) PrimitiveType(kind string) string {
	switch kind {
	case "string":
		return "String"
	case "integer":
		return "i64"
	case "number":
		return "f64"
	case "boolean":
		return "bool"
	case "null":
		return "Option<serde_json::Value>"
	default:
		return r.AnyType()
	}
}

func (r *resolver) AnyType() string {
	return "serde_json::Value"
}

func (r *resolver) ArrayType(elemType string) string {
	return "Vec<" + elemType + ">"
}

func (r *resolver) MapType(valueType string) string {
	return "std::collections::HashMap<String, " + valueType + ">"
}

func (r *resolver) UnionType(_ []string) string {
	return r.AnyType()
}

func (r *resolver) EnumType(_ []string) (string, bool) {
	return "", false
}

func (r *resolver) OptionalType(typ string) string {
	return "Option<" + typ + ">"
}

func (r *resolver) FormatTypeName(name string) string {
	return translate.TypeIdentifier(name)
}

func (r *resolver) FormatFieldName(name string) string {
	field := translate.SnakeCase(name)
	switch {
	case slices.Contains(rawForbidden, field):
		return field + "_"
	case slices.Contains(keywords, field):
		return "r#" + field
	}
	return field
}

func (r *resolver) EnrichField(f *translate.Field) {
	var attrs []string
	if strings.TrimPrefix(f.Name, "r#") != f.WireName {
		attrs = append(attrs, "rename = "+quote(f.WireName))
	}
	if f.Optional {
		attrs = append(attrs, "default", `skip_serializing_if = "Option::is_none"`)
	}
	if len(attrs) > 0 {
		f.Tag = "#[serde(" + strings.Join(attrs, ", ") + ")]"
	}
}

// quote renders s as a Rust string literal.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&sb, `\u{%x}`, r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
