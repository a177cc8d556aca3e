// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package openrpc

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// keyOrder records the key order of a decoded object, recursively.
// Arrays keep one entry per element; scalars are nil.
type keyOrder struct {
	keys   []string
	fields map[string]*keyOrder
	items  []*keyOrder
}

func (o *keyOrder) field(key string) *keyOrder {
	if o == nil {
		return nil
	}
	return o.fields[key]
}

func (o *keyOrder) item(i int) *keyOrder {
	if o == nil || i >= len(o.items) {
		return nil
	}
	return o.items[i]
}

func (o *keyOrder) add(key string, child *keyOrder) {
	if o.fields == nil {
		o.fields = make(map[string]*keyOrder)
	}
	if _, dup := o.fields[key]; !dup {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = child
}

// extractKeyOrderJSON walks the raw JSON token stream and records object key order.
func extractKeyOrderJSON(data []byte) (*keyOrder, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return walkJSON(dec, tok)
}

func walkJSON(dec *json.Decoder, tok json.Token) (*keyOrder, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, nil
	}

	node := &keyOrder{}
	switch delim {
	case '{':
		for {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			if d, ok := keyTok.(json.Delim); ok && d == '}' {
				return node, nil
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			valTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			child, err := walkJSON(dec, valTok)
			if err != nil {
				return nil, err
			}
			node.add(key, child)
		}
	case '[':
		for {
			elemTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			if d, ok := elemTok.(json.Delim); ok && d == ']' {
				return node, nil
			}
			child, err := walkJSON(dec, elemTok)
			if err != nil {
				return nil, err
			}
			node.items = append(node.items, child)
		}
	}
	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}

// extractKeyOrderYAML records mapping key order from a parsed YAML node tree.
func extractKeyOrderYAML(n *yaml.Node) *keyOrder {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return extractKeyOrderYAML(n.Content[0])
	case yaml.AliasNode:
		return extractKeyOrderYAML(n.Alias)
	case yaml.MappingNode:
		node := &keyOrder{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			node.add(n.Content[i].Value, extractKeyOrderYAML(n.Content[i+1]))
		}
		return node
	case yaml.SequenceNode:
		node := &keyOrder{}
		for _, c := range n.Content {
			node.items = append(node.items, extractKeyOrderYAML(c))
		}
		return node
	}
	return nil
}

// bindOrder attaches the recorded key order of the document to its decoded schemas.
func (d *Document) bindOrder(root *keyOrder) {
	schemas := root.field("components").field("schemas")
	if schemas == nil || d.Components == nil {
		return
	}
	d.schemaOrder = schemas.keys
	d.propertyOrder = make(map[*jsonschema.Schema][]string)
	for name, s := range d.Components.Schemas {
		bindSchemaOrder(s, schemas.field(name), d.propertyOrder)
	}
}

func bindSchemaOrder(s *jsonschema.Schema, o *keyOrder, out map[*jsonschema.Schema][]string) {
	if s == nil || o == nil {
		return
	}
	if props := o.field("properties"); props != nil {
		out[s] = props.keys
		for name, ps := range s.Properties {
			bindSchemaOrder(ps, props.field(name), out)
		}
	}

	bindSchemaOrder(s.Items, o.field("items"), out)
	bindSchemaOrder(s.AdditionalProperties, o.field("additionalProperties"), out)
	bindSchemaOrder(s.Not, o.field("not"), out)
	bindSchemaList(s.ItemsArray, o.field("items"), out)
	bindSchemaList(s.PrefixItems, o.field("prefixItems"), out)
	bindSchemaList(s.AllOf, o.field("allOf"), out)
	bindSchemaList(s.AnyOf, o.field("anyOf"), out)
	bindSchemaList(s.OneOf, o.field("oneOf"), out)

	defs := o.field("$defs")
	for name, ds := range s.Defs {
		bindSchemaOrder(ds, defs.field(name), out)
	}
	definitions := o.field("definitions")
	for name, ds := range s.Definitions {
		bindSchemaOrder(ds, definitions.field(name), out)
	}
}

func bindSchemaList(list []*jsonschema.Schema, o *keyOrder, out map[*jsonschema.Schema][]string) {
	for i, s := range list {
		bindSchemaOrder(s, o.item(i), out)
	}
}
