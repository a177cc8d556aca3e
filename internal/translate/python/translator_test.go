// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

import (
	"strings"
	"testing"

	"github.com/dacolabs/bindgen/internal/catalog"
	"github.com/dacolabs/bindgen/internal/openrpc"
	"github.com/dacolabs/bindgen/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translateSpec(t *testing.T, src string) map[string]string {
	t.Helper()
	doc, err := openrpc.JSON.Parse(strings.NewReader(src))
	require.NoError(t, err)
	types, err := catalog.Build(doc)
	require.NoError(t, err)

	files, err := (&Translator{}).Translate(types, translate.NewMetadata(doc, "", ""))
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Name] = string(f.Content)
	}
	return out
}

func TestTranslate_UserProfile(t *testing.T) {
	files := translateSpec(t, `{
		"openrpc": "1.3.2",
		"info": {"title": "Users", "version": "1.0.0"},
		"methods": [],
		"components": {"schemas": {
			"user-profile": {
				"type": "object",
				"required": ["id"],
				"properties": {
					"displayName": {"type": "string"},
					"id": {"type": "string"}
				}
			}
		}}
	}`)

	assert.Equal(t, `# Code generated by bindgen from Users 1.0.0. DO NOT EDIT.

from __future__ import annotations

import dataclasses
from typing import Any, Dict, List, Literal, Optional, TypeAlias, Union


@dataclasses.dataclass(kw_only=True)
class UserProfile:
    displayName: Optional[str] = None
    id: str
`, files["types.py"])
}

func TestTranslate_AdditionalProperties(t *testing.T) {
	files := translateSpec(t, `{
		"openrpc": "1.3.2",
		"info": {"title": "Counters"},
		"methods": [],
		"components": {"schemas": {
			"Holder": {
				"type": "object",
				"required": ["counts"],
				"properties": {
					"counts": {"type": "object", "additionalProperties": {"type": "integer"}}
				}
			},
			"Counters": {"type": "object", "additionalProperties": {"type": "integer"}}
		}}
	}`)

	result := files["types.py"]
	assert.Contains(t, result, "    counts: Dict[str, int]\n")
	assert.Contains(t, result, `Counters: TypeAlias = "Dict[str, int]"`)
}

func TestTranslate_Shapes(t *testing.T) {
	files := translateSpec(t, `{
		"openrpc": "1.3.2",
		"info": {"title": "Shapes", "description": "Line one.\nLine two."},
		"methods": [],
		"components": {"schemas": {
			"Shapes": {
				"type": "object",
				"description": "Every shape.",
				"required": ["ref", "tags", "status", "either", "nothing", "class", "user-id"],
				"properties": {
					"ref": {"$ref": "#/components/schemas/tx-envelope"},
					"tags": {"type": "array", "items": {"type": "number"}},
					"status": {"type": "string", "enum": ["pending", "done"]},
					"either": {"anyOf": [{"type": "string"}, {"type": "boolean"}]},
					"nothing": {"type": "null"},
					"class": {"type": "string"},
					"user-id": {"type": "integer"},
					"maybe": {"type": "string", "description": "Optional note."},
					"free": true
				}
			},
			"tx-envelope": {"type": "object", "properties": {"hash": {"type": "string"}}}
		}}
	}`)

	result := files["types.py"]
	assert.Contains(t, result, "# Code generated by bindgen from Shapes 0.1.0. DO NOT EDIT.\n#\n# Line one.\n# Line two.\n")
	assert.Contains(t, result, "# Every shape.\n@dataclasses.dataclass(kw_only=True)\nclass Shapes:\n    ref: TxEnvelope\n")
	assert.Contains(t, result, "    tags: List[float]\n")
	assert.Contains(t, result, `    status: Literal["pending", "done"]`)
	assert.Contains(t, result, "    either: Union[str, bool]\n")
	assert.Contains(t, result, "    nothing: None\n")
	assert.Contains(t, result, "    class_: str = dataclasses.field(metadata={\"wire_name\": \"class\"})\n")
	assert.Contains(t, result, "    user_id: int = dataclasses.field(metadata={\"wire_name\": \"user-id\"})\n")
	assert.Contains(t, result, "    # Optional note.\n    maybe: Optional[str] = None\n")
	assert.Contains(t, result, "    free: Optional[Any] = None\n")
	assert.Contains(t, result, "class TxEnvelope:\n    hash: Optional[str] = None\n")
}

func TestTranslate_DeclaredFieldOrder(t *testing.T) {
	files := translateSpec(t, `{
		"openrpc": "1.3.2",
		"info": {"title": "Order"},
		"methods": [],
		"components": {"schemas": {
			"A": {
				"type": "object",
				"required": ["b"],
				"properties": {
					"a": {"type": "string"},
					"b": {"type": "string"},
					"c": {"type": "integer"}
				}
			}
		}}
	}`)

	assert.Contains(t, files["types.py"], "@dataclasses.dataclass(kw_only=True)\n"+
		"class A:\n"+
		"    a: Optional[str] = None\n"+
		"    b: str\n"+
		"    c: Optional[int] = None\n")
}

func TestTranslate_Pyproject(t *testing.T) {
	files := translateSpec(t, `{
		"openrpc": "1.3.2",
		"info": {"title": "Transaction Resolve Protocol", "version": "2.1.0"},
		"methods": [],
		"components": {"schemas": {}}
	}`)

	assert.Equal(t, `[build-system]
requires = ["setuptools>=61"]
build-backend = "setuptools.build_meta"

[project]
name = "transaction-resolve-protocol"
version = "2.1.0"
requires-python = ">=3.10"

[tool.setuptools]
packages = ["transaction_resolve_protocol"]

[tool.setuptools.package-dir]
transaction_resolve_protocol = "."
`, files["pyproject.toml"])
}

func TestResolver_FieldNames(t *testing.T) {
	r := &resolver{}
	assert.Equal(t, "displayName", r.FormatFieldName("displayName"))
	assert.Equal(t, "avatar_url", r.FormatFieldName("avatar_url"))
	assert.Equal(t, "user_id", r.FormatFieldName("user-id"))
	assert.Equal(t, "from_", r.FormatFieldName("from"))
	assert.Equal(t, "_2fa", r.FormatFieldName("2fa"))
}
