// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strconv"

	"github.com/dacolabs/bindgen/internal/catalog"
)

// Prepare converts a type catalog into Bindings ready for template execution.
// Field order and type order follow the catalog.
func Prepare(types []catalog.Type, ctx *NamingContext, meta Metadata) *Bindings {
	data := &Bindings{
		Types:    make([]TypeDef, 0, len(types)),
		Metadata: meta,
		Extra:    make(map[string]any),
	}

	for _, t := range types {
		def := TypeDef{
			Name:        ctx.TypeName(t.Name),
			Description: t.Schema.Description,
			Fields:      make([]Field, 0, len(t.Fields)),
		}

		used := make(map[string]bool, len(t.Fields))
		for _, f := range t.Fields {
			field := Field{
				Name:        uniqueName(ctx.FieldName(f.Name), used),
				WireName:    f.Name,
				Type:        FieldType(f, ctx),
				Optional:    !f.Required,
				Description: f.Schema.Description,
			}
			ctx.resolver.EnrichField(&field)
			def.Fields = append(def.Fields, field)
		}

		if def.IsAlias() {
			def.Alias = MapType(t.Schema, ctx)
		}
		data.Types = append(data.Types, def)
	}

	return data
}

// uniqueName returns name, or name with the smallest numeric suffix that is
// not yet used, when two properties format to the same identifier.
func uniqueName(name string, used map[string]bool) string {
	unique := name
	for i := 2; used[unique]; i++ {
		unique = name + strconv.Itoa(i)
	}
	used[unique] = true
	return unique
}
