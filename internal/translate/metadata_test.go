// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/dacolabs/bindgen/internal/openrpc"
	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "transaction-resolve-protocol", Slug("Transaction Resolve Protocol"))
	assert.Equal(t, "trp-v2", Slug("TRP  v2!"))
	assert.Equal(t, DefaultPackage, Slug(""))
	assert.Equal(t, DefaultPackage, Slug("???"))
}

func TestNewMetadata(t *testing.T) {
	doc := &openrpc.Document{
		Info: openrpc.Info{Title: "Transaction Resolve Protocol", Description: "TRP"},
	}

	meta := NewMetadata(doc, "", "")
	assert.Equal(t, "Transaction Resolve Protocol", meta.Title)
	assert.Equal(t, "TRP", meta.Description)
	assert.Equal(t, openrpc.DefaultVersion, meta.Version)
	assert.Equal(t, "transaction-resolve-protocol", meta.Package)
	assert.Equal(t, "transaction-resolve-protocol", meta.Module)
	assert.Equal(t, "transaction_resolve_protocol", meta.SnakePackage())
	assert.Equal(t, "transactionresolveprotocol", meta.GoPackage())
}

func TestNewMetadata_Overrides(t *testing.T) {
	doc := &openrpc.Document{Info: openrpc.Info{Title: "ignored", Version: "3.1.0"}}

	meta := NewMetadata(doc, "trp", "github.com/acme/trp-go")
	assert.Equal(t, "3.1.0", meta.Version)
	assert.Equal(t, "trp", meta.Package)
	assert.Equal(t, "github.com/acme/trp-go", meta.Module)
	assert.Equal(t, "trpgo", meta.GoPackage())
}

func TestGoPackage_DigitLeading(t *testing.T) {
	meta := Metadata{Module: "example.com/2fa"}
	assert.Equal(t, DefaultPackage, meta.GoPackage())
}
