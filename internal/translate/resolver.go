// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// TypeResolver is the capability table of one target language.
// The shared classification in MapType decides which shape a schema has;
// the resolver only decides how that shape is spelled.
type TypeResolver interface {
	// PrimitiveType maps a JSON Schema primitive kind
	// ("string", "integer", "number", "boolean", "null") to a type name.
	PrimitiveType(kind string) string

	// AnyType returns the most permissive type of the language.
	AnyType() string

	// ArrayType wraps an element type string in a sequence type.
	ArrayType(elemType string) string

	// MapType wraps a value type string in a string-keyed map type.
	MapType(valueType string) string

	// UnionType joins alternative type strings with the language's union idiom.
	UnionType(alternatives []string) string

	// EnumType renders string literals as a literal union type.
	// It returns false when the language has no literal types.
	EnumType(values []string) (string, bool)

	// OptionalType wraps a type string in the language's nullable idiom.
	OptionalType(typ string) string

	// FormatTypeName formats a catalog type name for the target language.
	FormatTypeName(name string) string

	// FormatFieldName formats a property name for the target language.
	FormatFieldName(name string) string

	// EnrichField applies language-specific annotations to a prepared field,
	// e.g. json struct tags for Go or serde attributes for Rust.
	// Called once per field after type resolution, before template execution.
	EnrichField(f *Field)
}
