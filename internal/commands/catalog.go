// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/dacolabs/bindgen/internal/catalog"
	"github.com/dacolabs/bindgen/internal/generate"
	"github.com/dacolabs/bindgen/internal/openrpc"
	"github.com/dacolabs/bindgen/internal/session"
	"github.com/dacolabs/bindgen/internal/translate"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

type catalogOptions struct {
	openrpc string
	lang    string
}

func newCatalogCmd(translators translate.Register) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the resolved type catalog",
		Long: `Show every named schema of the OpenRPC spec with its resolved fields,
after following references and flattening allOf compositions.
With --lang, field names and types are shown as that language renders them.`,
		Example: `  # Show the catalog of the configured spec
  bindgen catalog

  # Show the catalog as Rust sees it
  bindgen catalog --openrpc specs/trp.json --lang rust`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVar(&opts.openrpc, "openrpc", "", "Path to the OpenRPC spec (default from config)")
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "Show names and types for a target language")

	return cmd
}

func runCatalog(cmd *cobra.Command, translators translate.Register, opts *catalogOptions) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	path := opts.openrpc
	if path == "" {
		path = sess.Config.Input
		if sess.ConfigPath != "" && !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(sess.ConfigPath), path)
		}
	}

	var ctx *translate.NamingContext
	doc, types, err := generate.LoadCatalog(path)
	if err != nil {
		return err
	}
	if opts.lang != "" {
		t, err := translators.Get(opts.lang)
		if err != nil {
			return err
		}
		ctx = translate.BuildContext(types, t.Name(), t.Resolver())
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), catalogTree(doc, types, ctx).String())
	return err
}

// catalogTree renders the catalog. A nil ctx shows wire names and required flags.
func catalogTree(doc *openrpc.Document, types []catalog.Type, ctx *translate.NamingContext) treeprint.Tree {
	root := fmt.Sprintf("%s %s (%d types)", doc.Info.Title, doc.Version(), len(types))
	if ctx != nil {
		root += " [" + ctx.Language + "]"
	}
	tree := treeprint.NewWithRoot(root)

	for _, t := range types {
		label := t.Name
		if ctx != nil {
			label = ctx.TypeName(t.Name)
		}
		if len(t.Fields) == 0 {
			if ctx != nil {
				label += " = " + translate.MapType(t.Schema, ctx)
			}
			tree.AddNode(label)
			continue
		}

		branch := tree.AddBranch(label)
		for _, f := range t.Fields {
			if ctx != nil {
				branch.AddNode(ctx.FieldName(f.Name) + ": " + translate.FieldType(f, ctx))
				continue
			}
			if f.Required {
				branch.AddNode(f.Name + " (required)")
			} else {
				branch.AddNode(f.Name)
			}
		}
	}

	if dangling := catalog.DanglingRefs(types, doc); len(dangling) > 0 {
		branch := tree.AddBranch("unresolved references")
		for _, ref := range dangling {
			branch.AddNode(ref)
		}
	}
	return tree
}
