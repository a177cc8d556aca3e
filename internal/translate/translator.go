// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate turns a type catalog into source files for a target language.
package translate

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/dacolabs/bindgen/internal/catalog"
	"github.com/goccy/go-json"
)

// ErrUnsupportedLanguage is returned when no translator is registered for a language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// File is one generated output file, relative to the language directory.
type File struct {
	Name    string
	Content []byte
}

// Translator defines the interface all language translators must implement.
type Translator interface {
	// Name returns the canonical language identifier (e.g., "typescript", "go")
	Name() string

	// Resolver returns the language capability table.
	Resolver() TypeResolver

	// Translate renders the catalog into the language's type file and manifest.
	Translate(types []catalog.Type, meta Metadata) ([]File, error)
}

// Register maps language identifiers, aliases included, to translators.
type Register map[string]Translator

// Get retrieves a translator by language identifier, ignoring case.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnsupportedLanguage, name, strings.Join(r.Canonical(), ", "))
	}
	return t, nil
}

// Available returns all registered identifiers, aliases included, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Canonical returns the sorted canonical names of the registered translators.
func (r Register) Canonical() []string {
	names := make([]string, 0, len(r))
	for _, t := range r {
		if !slices.Contains(names, t.Name()) {
			names = append(names, t.Name())
		}
	}
	slices.Sort(names)
	return names
}

// Funcs returns the template helpers shared by all languages.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"comment": Comment,
		"quote":   Quote,
	}
}

// Quote renders s as a double-quoted JSON string literal, which is also a
// valid string literal in TypeScript, Python and TOML.
func Quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}

// Comment prefixes every line of text with prefix and a space.
func Comment(prefix, text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(prefix+" "+strings.TrimSpace(line), " ")
	}
	return strings.Join(lines, "\n")
}

// Execute runs every "*.tmpl" template into a file of the same name
// minus the suffix. Files are returned sorted by name.
func Execute(tmpl *template.Template, data *Bindings) ([]File, error) {
	var files []File
	for _, name := range templateNames(tmpl) {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
			return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
		}
		files = append(files, File{
			Name:    strings.TrimSuffix(name, ".tmpl"),
			Content: buf.Bytes(),
		})
	}
	return files, nil
}

func templateNames(tmpl *template.Template) []string {
	var names []string
	for _, t := range tmpl.Templates() {
		if strings.HasSuffix(t.Name(), ".tmpl") {
			names = append(names, t.Name())
		}
	}
	slices.Sort(names)
	return names
}
