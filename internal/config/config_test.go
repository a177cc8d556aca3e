// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var known = []string{"go", "python", "rust", "ts", "typescript"}

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{
		Version:   1,
		Input:     "specs/trp.json",
		Output:    "bindings",
		Languages: []string{"ts", "python"},
		Clean:     true,
		GoModule:  "github.com/acme/trp",
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg, *loaded)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		known   []string
		wantErr error
	}{
		{
			name:  "valid config",
			cfg:   Config{Version: 1, Languages: []string{"ts", "Go"}},
			known: known,
		},
		{
			name: "no languages",
			cfg:  Config{Version: 1},
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99},
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "unknown language",
			cfg:     Config{Version: 1, Languages: []string{"go", "cobol"}},
			known:   known,
			wantErr: ErrUnknownLanguage,
		},
		{
			name: "languages unchecked without known list",
			cfg:  Config{Version: 1, Languages: []string{"cobol"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(tt.known)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Languages = []string{"rust"}
	cfg.GoModule = "example.com/trp"
	require.NoError(t, cfg.Save(cfgPath))

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "input: specs/trp.json")
	assert.Contains(t, output, "output: bindings")
	assert.Contains(t, output, "languages:\n  - rust")
	assert.Contains(t, output, "goModule: example.com/trp")
	assert.NotContains(t, output, "clean")
	assert.NotContains(t, output, "package")
}

func TestConfig_Load(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Version:   1,
		Input:     "specs/trp.yaml",
		Output:    "out",
		Languages: []string{"typescript", "go"},
		Clean:     true,
		Package:   "trp",
		GoModule:  "github.com/acme/trp-go",
	}, cfg)
}

func TestConfig_Load_Defaults(t *testing.T) {
	cfg, err := Load("testdata/minimal.yaml")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Load_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	cfg := Config{Version: 1}

	err := cfg.Save("/nonexistent/directory/config.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Empty(t *testing.T) {
	emptyFile := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, []byte(""), 0o600))

	_, err := Load(emptyFile)
	assert.Error(t, err)
}
