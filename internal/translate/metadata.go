// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"

	"github.com/dacolabs/bindgen/internal/openrpc"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPackage is the package name used when the document has no usable title.
const DefaultPackage = "bindings"

// Metadata identifies the generated package in every language.
type Metadata struct {
	Title       string
	Description string
	Version     string
	Package     string // lowercase, dash-separated package slug
	Module      string // Go module path
}

// NewMetadata derives package metadata from an OpenRPC document.
// Empty pkg and module values are derived from the document title.
func NewMetadata(doc *openrpc.Document, pkg, module string) Metadata {
	meta := Metadata{
		Title:       doc.Info.Title,
		Description: doc.Info.Description,
		Version:     doc.Version(),
		Package:     pkg,
		Module:      module,
	}

	if meta.Package == "" {
		meta.Package = Slug(doc.Info.Title)
	}
	if meta.Module == "" {
		meta.Module = meta.Package
	}
	return meta
}

// Slug lowercases s and joins its alphanumeric runs with dashes.
func Slug(s string) string {
	lower := cases.Lower(language.Und).String(s)
	parts := strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	if len(parts) == 0 {
		return DefaultPackage
	}
	return strings.Join(parts, "-")
}

// SnakePackage returns the package slug with dashes replaced by underscores.
func (m Metadata) SnakePackage() string {
	return strings.ReplaceAll(m.Package, "-", "_")
}

// GoPackage returns a Go package name for the last element of the module path.
func (m Metadata) GoPackage() string {
	base := m.Module
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	name := strings.ToLower(Sanitize(base))
	if isDigit(name[0]) {
		return DefaultPackage
	}
	return name
}
