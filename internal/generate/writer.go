// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrOutOfDate is returned in check mode when a file would be written or changed.
var ErrOutOfDate = errors.New("generated file is out of date")

// writeFile writes data to path through a temporary file and rename.
// It reports false when the file already holds data. In check mode nothing
// is written and any difference is an ErrOutOfDate error.
func writeFile(path string, data []byte, check bool) (wrote bool, err error) {
	existing, readErr := os.ReadFile(path)
	switch {
	case readErr == nil && bytes.Equal(existing, data):
		return false, nil
	case readErr != nil && !errors.Is(readErr, fs.ErrNotExist):
		return false, fmt.Errorf("failed to read %s: %w", path, readErr)
	}

	if check {
		if readErr != nil {
			return false, fmt.Errorf("%w: %s would be created", ErrOutOfDate, path)
		}
		return false, fmt.Errorf("%w: %s differs", ErrOutOfDate, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return false, fmt.Errorf("failed to rename %s: %w", tmp, err)
	}

	return true, nil
}
