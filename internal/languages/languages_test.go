// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	translators := Register()

	assert.Equal(t, []string{"go", "golang", "python", "rust", "ts", "typescript"}, translators.Available())
	assert.Equal(t, []string{"go", "python", "rust", "typescript"}, translators.Canonical())

	for name, tr := range translators {
		got, err := translators.Get(name)
		require.NoError(t, err)
		assert.Same(t, tr, got)
	}
}

func TestRegister_Aliases(t *testing.T) {
	translators := Register()

	ts, err := translators.Get("ts")
	require.NoError(t, err)
	assert.Equal(t, "typescript", ts.Name())

	golang, err := translators.Get("golang")
	require.NoError(t, err)
	assert.Equal(t, "go", golang.Name())
}
