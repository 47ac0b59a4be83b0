// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional crosszip command line configuration file
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"

	"github.com/choria-io/crosszip/archiver"
	iu "github.com/choria-io/crosszip/internal/util"
)

// SystemFile is the system wide configuration, consulted when the user has none
var SystemFile = "/etc/choria/crosszip/config.yaml"

// Config holds defaults for the archiver, command line flags override it
type Config struct {
	// Backend forces a specific backend rather than the platform default
	Backend string `yaml:"backend"`
	// TempRoot is where staging directories are created
	TempRoot string `yaml:"temp_root"`
	// Executables maps a backend command to the absolute path to run it from
	Executables map[string]string `yaml:"executables"`

	source string
}

// UserFile is the per user configuration file, empty when XDG has no config home
func UserFile() string {
	if xdg.ConfigHome == "" {
		return ""
	}

	return filepath.Join(xdg.ConfigHome, "choria", "crosszip", "config.yaml")
}

// Load reads path when set, otherwise the user file or the system file, an empty Config when neither exist
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}

	for _, candidate := range []string{UserFile(), SystemFile} {
		if candidate != "" && iu.FileExists(candidate) {
			return LoadFile(candidate)
		}
	}

	return &Config{}, nil
}

// LoadFile reads and validates a configuration file, unknown keys are errors
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{source: path}

	err = yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField())
	if err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}

	return cfg, nil
}

// Source is the file the configuration was read from, empty for defaults
func (c *Config) Source() string {
	return c.source
}

func (c *Config) Validate() error {
	for command, path := range c.Executables {
		if !filepath.IsAbs(path) {
			return fmt.Errorf("executable %s: path %q is not absolute", command, path)
		}
	}

	return nil
}

// Options creates archiver options for the configured values
func (c *Config) Options() []archiver.Option {
	var opts []archiver.Option

	if c.Backend != "" {
		opts = append(opts, archiver.WithBackend(c.Backend))
	}

	if c.TempRoot != "" {
		opts = append(opts, archiver.WithTempRoot(c.TempRoot))
	}

	commands := make([]string, 0, len(c.Executables))
	for command := range c.Executables {
		commands = append(commands, command)
	}
	sort.Strings(commands)

	for _, command := range commands {
		opts = append(opts, archiver.WithExecutable(command, c.Executables[command]))
	}

	return opts
}
