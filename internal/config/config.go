// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles bindgen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the bindgen configuration file.
const FileName = "bindgen.yaml"

// Defaults used when neither flags nor the config file set a value.
const (
	DefaultInput  = "specs/trp.json"
	DefaultOutput = "bindings"
)

var (
	// ErrUnsupportedVersion indicates a config file version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrUnknownLanguage indicates a configured language without a translator.
	ErrUnknownLanguage = errors.New("unknown language")
)

// Config represents the bindgen.yaml project configuration file.
type Config struct {
	Version   int      `yaml:"version"`
	Input     string   `yaml:"input,omitempty"`
	Output    string   `yaml:"output,omitempty"`
	Languages []string `yaml:"languages,omitempty"`
	Clean     bool     `yaml:"clean,omitempty"`
	Package   string   `yaml:"package,omitempty"`
	GoModule  string   `yaml:"goModule,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Input:   DefaultInput,
		Output:  DefaultOutput,
	}
}

// Load reads a Config from a file path.
// Unset input and output fall back to the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	if cfg.Input == "" {
		cfg.Input = DefaultInput
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration version and, when known is non-empty,
// that every configured language is one of known.
func (c *Config) Validate(known []string) error {
	if c.Version != CurrentConfigVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}
	if len(known) == 0 {
		return nil
	}
	for _, lang := range c.Languages {
		if !slices.Contains(known, strings.ToLower(lang)) {
			return fmt.Errorf("%w: %q (available: %s)", ErrUnknownLanguage, lang, strings.Join(known, ", "))
		}
	}
	return nil
}
