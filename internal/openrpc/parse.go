// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package openrpc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates a spec file whose extension is neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported spec format")

// Parser decodes an OpenRPC document from an io.Reader.
type Parser struct {
	parse func([]byte) (*rawDocument, *keyOrder, error)
}

var (
	// JSON parses OpenRPC documents from JSON.
	JSON = Parser{parseJSON}
	// YAML parses OpenRPC documents from YAML.
	YAML = Parser{parseYAML}
)

// ParserFor returns the parser matching the file extension of name.
func ParserFor(name string) (Parser, error) {
	switch {
	case strings.HasSuffix(name, ".json"):
		return JSON, nil
	case strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml"):
		return YAML, nil
	default:
		return Parser{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// Load reads and parses the named spec file from fsys.
func Load(fsys fs.FS, name string) (*Document, error) {
	parser, err := ParserFor(name)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open OpenRPC spec: %w", err)
	}
	defer f.Close() //nolint:errcheck

	doc, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenRPC spec from %s: %w", name, err)
	}
	return doc, nil
}

// Parse decodes an OpenRPC document from r.
func (p Parser) Parse(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw, order, err := p.parse(data)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		OpenRPC: raw.OpenRPC,
		Methods: make([]Method, 0, len(raw.Methods)),
	}
	if raw.Info != nil {
		doc.Info = Info(*raw.Info)
	}
	for _, m := range raw.Methods {
		doc.Methods = append(doc.Methods, Method(m))
	}
	if raw.Components != nil {
		doc.Components = &Components{Schemas: raw.Components.Schemas}
	}
	doc.bindOrder(order)

	return doc, nil
}

type rawDocument struct {
	OpenRPC    string         `json:"openrpc"`
	Info       *rawInfo       `json:"info,omitempty"`
	Methods    []rawMethod    `json:"methods,omitempty"`
	Components *rawComponents `json:"components,omitempty"`
}

type rawInfo struct {
	Title       string `json:"title,omitempty"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
}

type rawMethod struct {
	Name        string `json:"name"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
}

type rawComponents struct {
	Schemas map[string]*jsonschema.Schema `json:"schemas,omitempty"`
}

func parseJSON(data []byte) (*rawDocument, *keyOrder, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}

	order, err := extractKeyOrderJSON(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to extract key order: %w", err)
	}

	return &raw, order, nil
}

// parseYAML decodes YAML into a node tree, re-encodes it as JSON for the schema
// decoder and reads key order from the node tree.
func parseYAML(data []byte) (*rawDocument, *keyOrder, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, nil, errors.New("empty YAML document")
	}

	var generic any
	if err := root.Decode(&generic); err != nil {
		return nil, nil, err
	}
	jsonData, err := json.Marshal(generic)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}

	var raw rawDocument
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, nil, err
	}

	return &raw, extractKeyOrderYAML(&root), nil
}
