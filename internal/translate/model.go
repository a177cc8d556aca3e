// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// Bindings is the complete input passed to a language template.
type Bindings struct {
	Types    []TypeDef      // catalog types in declaration order
	Metadata Metadata       // package identity derived from the OpenRPC info block
	Extra    map[string]any // translator-specific template data
}

// TypeDef represents one catalog entry rendered for a language.
// A type without fields is rendered as an alias of Alias.
type TypeDef struct {
	Name        string  // formatted name, e.g. "UserProfile"
	Description string  // schema description, if any
	Alias       string  // target type expression when Fields is empty
	Fields      []Field // ordered fields
}

// IsAlias reports whether the type renders as an alias rather than a record.
func (t TypeDef) IsAlias() bool {
	return len(t.Fields) == 0
}

// Field represents a single property within a type definition.
type Field struct {
	Name        string // formatted field name (may be mutated by EnrichField)
	WireName    string // property name as it appears on the wire
	Type        string // fully resolved target type string, optional wrap included
	Optional    bool   // true if not in the schema's required list
	Tag         string // language-specific annotation, e.g. `json:"name,omitempty"`
	Description string // schema description, if any
}
