// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package generate runs a full bindings generation: parse the OpenRPC
// document, build the type catalog once and render every requested language.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dacolabs/bindgen/internal/catalog"
	"github.com/dacolabs/bindgen/internal/openrpc"
	"github.com/dacolabs/bindgen/internal/translate"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoSpec is returned when no OpenRPC document path is given.
	ErrNoSpec = errors.New("no OpenRPC spec given")
	// ErrNoOutput is returned when no output directory is given.
	ErrNoOutput = errors.New("no output directory given")
	// ErrNoLanguages is returned when no target language is requested.
	ErrNoLanguages = errors.New("no target languages given")
)

// Options configures a generation run.
type Options struct {
	Spec      string   // path to the OpenRPC document (.json, .yaml or .yml)
	Languages []string // requested languages, aliases allowed
	OutDir    string   // output root; each language gets a subdirectory
	Clean     bool     // remove the output root before generating
	Check     bool     // write nothing and fail when any file would change
	Package   string   // package name override
	GoModule  string   // Go module path override
}

// LanguageResult describes the output of one language.
type LanguageResult struct {
	Language string   // canonical language name
	Dir      string   // output directory of the language
	Files    []string // generated file paths
	Written  int      // number of files created or changed
}

// Result summarizes a generation run.
type Result struct {
	Types     []string         // catalog type names in declaration order
	Dangling  []string         // $refs that name no schema of the document
	Languages []LanguageResult // successful languages in request order
}

// Run executes a generation. Languages are rendered concurrently and fail
// independently: the returned Result lists the languages that succeeded and
// the error combines every per-language failure.
func Run(ctx context.Context, opts Options, translators translate.Register, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch {
	case opts.Spec == "":
		return nil, ErrNoSpec
	case opts.OutDir == "":
		return nil, ErrNoOutput
	case len(opts.Languages) == 0:
		return nil, ErrNoLanguages
	}

	selected, langErr := selectTranslators(opts.Languages, translators)

	if opts.Clean && !opts.Check {
		logger.Debug("removing output directory", "dir", opts.OutDir)
		if err := os.RemoveAll(opts.OutDir); err != nil {
			return nil, fmt.Errorf("failed to clean %s: %w", opts.OutDir, err)
		}
	}
	if !opts.Check {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", opts.OutDir, err)
		}
	}

	doc, types, err := LoadCatalog(opts.Spec)
	if err != nil {
		return nil, err
	}
	logger.Debug("built type catalog", "spec", opts.Spec, "types", len(types))
	dangling := catalog.DanglingRefs(types, doc)
	for _, ref := range dangling {
		logger.Warn("reference to unknown schema, emitting the bare name", "ref", ref)
	}

	meta := translate.NewMetadata(doc, opts.Package, opts.GoModule)

	results := make([]*LanguageResult, len(selected))
	errs := make([]error, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range selected {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dir := filepath.Join(opts.OutDir, t.Name())
			results[i], errs[i] = renderLanguage(t, types, meta, dir, opts.Check)
			if errs[i] != nil {
				logger.Error("language failed", "language", t.Name(), "error", errs[i])
			} else {
				logger.Info("generated bindings", "language", t.Name(), "dir", dir, "written", results[i].Written)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Dangling: dangling}
	for _, t := range types {
		res.Types = append(res.Types, t.Name)
	}
	for _, r := range results {
		if r != nil {
			res.Languages = append(res.Languages, *r)
		}
	}

	return res, multierr.Combine(append([]error{langErr}, errs...)...)
}

// LoadCatalog parses the OpenRPC document at path and builds its type catalog.
func LoadCatalog(path string) (*openrpc.Document, []catalog.Type, error) {
	doc, err := openrpc.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, nil, err
	}
	types, err := catalog.Build(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build type catalog: %w", err)
	}
	return doc, types, nil
}

// selectTranslators resolves requested languages, dropping duplicates by
// canonical name. Unknown languages are collected into the returned error.
func selectTranslators(languages []string, translators translate.Register) ([]translate.Translator, error) {
	var (
		selected []translate.Translator
		seen     = make(map[string]bool)
		err      error
	)
	for _, lang := range languages {
		t, getErr := translators.Get(lang)
		if getErr != nil {
			err = multierr.Append(err, getErr)
			continue
		}
		if seen[t.Name()] {
			continue
		}
		seen[t.Name()] = true
		selected = append(selected, t)
	}
	return selected, err
}

func renderLanguage(t translate.Translator, types []catalog.Type, meta translate.Metadata, dir string, check bool) (*LanguageResult, error) {
	files, err := t.Translate(types, meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name(), err)
	}

	res := &LanguageResult{Language: t.Name(), Dir: dir}
	var writeErr error
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		wrote, err := writeFile(path, f.Content, check)
		if err != nil {
			writeErr = multierr.Append(writeErr, err)
			continue
		}
		res.Files = append(res.Files, path)
		if wrote {
			res.Written++
		}
	}
	if writeErr != nil {
		return nil, fmt.Errorf("%s: %w", t.Name(), writeErr)
	}
	return res, nil
}
