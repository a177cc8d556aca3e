// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides configuration and logger loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dacolabs/bindgen/internal/config"
)

var (
	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigNotFound indicates an explicitly requested config file doesn't exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrNotLoaded indicates a command ran without a loaded session.
	ErrNotLoaded = errors.New("session not loaded")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration and logger of a CLI invocation.
type Context struct {
	// Config is the loaded configuration, or the defaults when no file exists.
	Config *config.Config

	// ConfigPath is the file Config was read from; empty when defaults are used.
	ConfigPath string

	// Logger writes diagnostics to stderr.
	Logger *slog.Logger
}

// Options controls how a session is loaded.
type Options struct {
	Dir        string    // working directory; empty means the process working directory
	ConfigPath string    // explicit config file; empty means Dir/bindgen.yaml if present
	Languages  []string  // known language names used to validate the config
	Verbose    bool      // enable debug logging
	LogOutput  io.Writer // log destination; nil means os.Stderr
}

// Load resolves the configuration and logger and returns a new
// context.Context with the session Context stored in it.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	dir := opts.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = cwd
	}

	logOutput := opts.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}
	sess := &Context{
		Config: config.Default(),
		Logger: NewLogger(logOutput, opts.Verbose),
	}

	configPath := opts.ConfigPath
	if configPath != "" && !filepath.IsAbs(configPath) {
		configPath = filepath.Join(dir, configPath)
	}
	if configPath == "" {
		configPath = filepath.Join(dir, config.FileName)
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			sess.Logger.Debug("no config file, using defaults", "dir", dir)
			return context.WithValue(ctx, contextKey{}, sess), nil
		}
	}

	cfg, err := config.Load(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(opts.Languages); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	sess.Config = cfg
	sess.ConfigPath = configPath
	sess.Logger.Debug("loaded config", "path", configPath)
	return context.WithValue(ctx, contextKey{}, sess), nil
}

// NewLogger returns a text logger; verbose enables debug records.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sess, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sess
	}
	return nil
}
