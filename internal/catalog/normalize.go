// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package catalog

import "github.com/google/jsonschema-go/jsonschema"

// Normalize converts a schema node into its structural form.
// Boolean schemas (decoded as {} for true and {"not": {}} for false) and nil
// become the empty node; any other node is returned unchanged.
func Normalize(s *jsonschema.Schema) *jsonschema.Schema {
	if s == nil || IsFalse(s) {
		return &jsonschema.Schema{}
	}
	return s
}

// IsFalse reports whether s is the decoded form of the `false` literal.
func IsFalse(s *jsonschema.Schema) bool {
	if s.Not == nil || !isEmpty(s.Not) {
		return false
	}
	withoutNot := *s
	withoutNot.Not = nil
	return isEmpty(&withoutNot)
}

// isEmpty reports whether s carries no keywords that affect type mapping.
func isEmpty(s *jsonschema.Schema) bool {
	return s.Ref == "" &&
		s.Type == "" &&
		len(s.Types) == 0 &&
		len(s.Enum) == 0 &&
		s.Const == nil &&
		len(s.Properties) == 0 &&
		len(s.Required) == 0 &&
		s.AdditionalProperties == nil &&
		s.Items == nil &&
		len(s.PrefixItems) == 0 &&
		len(s.AllOf) == 0 &&
		len(s.AnyOf) == 0 &&
		len(s.OneOf) == 0 &&
		s.Not == nil
}
