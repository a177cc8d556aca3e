// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import (
	"strconv"
	"strings"

	"github.com/dacolabs/bindgen/internal/translate"
)

type resolver struct{}

func (r *resolver) PrimitiveType(kind string) string {
	switch kind {
	case "string":
		return "string"
	case "integer":
		return "int64"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	default:
		return r.AnyType()
	}
}

func (r *resolver) AnyType() string {
	return "any"
}

func (r *resolver) ArrayType(elemType string) string {
	return "[]" + elemType
}

func (r *resolver) MapType(valueType string) string {
	return "map[string]" + valueType
}

func (r *resolver) UnionType(_ []string) string {
	return r.AnyType()
}

func (r *resolver) EnumType(_ []string) (string, bool) {
	return "", false
}

func (r *resolver) OptionalType(typ string) string {
	return "*" + typ
}

func (r *resolver) FormatTypeName(name string) string {
	return translate.TypeIdentifier(name)
}

func (r *resolver) FormatFieldName(name string) string {
	return translate.TypeIdentifier(name)
}

func (r *resolver) EnrichField(f *translate.Field) {
	value := f.WireName
	if f.Optional {
		value += ",omitempty"
	}
	tag := "json:" + strconv.Quote(value)
	if strings.Contains(tag, "`") {
		f.Tag = strconv.Quote(tag)
		return
	}
	f.Tag = "`" + tag + "`"
}
