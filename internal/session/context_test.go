// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/bindgen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var known = []string{"go", "python", "rust", "ts", "typescript"}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		configPath string
		wantErr    error
		wantOutput string // only checked if wantErr is nil
		wantPath   string // relative to the test dir, only checked if wantErr is nil
	}{
		{
			name:       "defaults without config",
			wantOutput: config.DefaultOutput,
		},
		{
			name:       "config in directory",
			files:      map[string]string{config.FileName: "version: 1\noutput: out\n"},
			wantOutput: "out",
			wantPath:   config.FileName,
		},
		{
			name:       "explicit config",
			files:      map[string]string{"conf/custom.yaml": "version: 1\noutput: custom\nlanguages: [rust]\n"},
			configPath: "conf/custom.yaml",
			wantOutput: "custom",
			wantPath:   "conf/custom.yaml",
		},
		{
			name:       "explicit config missing",
			configPath: "missing.yaml",
			wantErr:    ErrConfigNotFound,
		},
		{
			name:    "invalid yaml",
			files:   map[string]string{config.FileName: "version: [1\n"},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unsupported version",
			files:   map[string]string{config.FileName: "version: 2\n"},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown language",
			files:   map[string]string{config.FileName: "version: 1\nlanguages: [cobol]\n"},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, filepath.Join(dir, name), content)
			}

			ctx, err := Load(context.Background(), Options{
				Dir:        dir,
				ConfigPath: tt.configPath,
				Languages:  known,
				LogOutput:  &bytes.Buffer{},
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			sess := From(ctx)
			require.NotNil(t, sess)
			require.NotNil(t, sess.Logger)
			assert.Equal(t, tt.wantOutput, sess.Config.Output)
			if tt.wantPath == "" {
				assert.Empty(t, sess.ConfigPath)
			} else {
				assert.Equal(t, filepath.Join(dir, tt.wantPath), sess.ConfigPath)
			}
		})
	}
}

func TestLoad_VerboseLogging(t *testing.T) {
	var quiet, verbose bytes.Buffer

	_, err := Load(context.Background(), Options{Dir: t.TempDir(), LogOutput: &quiet})
	require.NoError(t, err)
	assert.Empty(t, quiet.String())

	_, err = Load(context.Background(), Options{Dir: t.TempDir(), LogOutput: &verbose, Verbose: true})
	require.NoError(t, err)
	assert.Contains(t, verbose.String(), "level=DEBUG")
	assert.Contains(t, verbose.String(), "no config file")
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
