// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/bindgen/internal/catalog"

// NamingContext holds the display names of every catalog type for one language.
// It is built once per (catalog, language) pair and is read-only afterwards.
type NamingContext struct {
	Language string

	resolver TypeResolver
	names    map[string]string
}

// BuildContext precomputes the formatted name of every catalog type.
func BuildContext(types []catalog.Type, language string, resolver TypeResolver) *NamingContext {
	names := make(map[string]string, len(types))
	for _, t := range types {
		names[t.Name] = resolver.FormatTypeName(t.Name)
	}
	return &NamingContext{
		Language: language,
		resolver: resolver,
		names:    names,
	}
}

// Resolver returns the language capability table of the context.
func (c *NamingContext) Resolver() TypeResolver {
	return c.resolver
}

// TypeName returns the display name of a catalog type.
// Names outside the catalog are formatted on the fly.
func (c *NamingContext) TypeName(raw string) string {
	if name, ok := c.names[raw]; ok {
		return name
	}
	return c.resolver.FormatTypeName(raw)
}

// FieldName formats a property name for the language.
func (c *NamingContext) FieldName(raw string) string {
	return c.resolver.FormatFieldName(raw)
}

// WrapOptional wraps typ in the language's optional idiom unless required.
func (c *NamingContext) WrapOptional(typ string, required bool) string {
	if required {
		return typ
	}
	return c.resolver.OptionalType(typ)
}
