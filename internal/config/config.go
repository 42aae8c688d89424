// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package config loads vcpcat's optional configuration file. Per the
// catalog's own design this collaborator is out of scope for the catalog
// itself (it never reads a config file, never sees a filesystem); it exists
// only to let the command-line front end remember a few defaults between
// invocations, the way any cobra-based tool in this family picks up an INI
// file from the user's config directory.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Config holds the handful of settings vcpcat persists across runs.
type Config struct {
	// DefaultVersion is the MCCS version string (e.g. "2.2") used by the
	// format/lookup subcommands when the caller does not pass --version.
	DefaultVersion string

	// TraceDir is the trace_dir setting. The replay subcommand does not
	// read it: it opens the path it is given as is.
	TraceDir string
}

// defaults mirror what the catalog and CLI already assume with no config
// file present.
func defaults() *Config {
	return &Config{
		DefaultVersion: "2.2",
		TraceDir:       ".",
	}
}

// Path returns the config file vcpcat would load: $XDG_CONFIG_HOME/vcpcat/config.ini,
// falling back to $HOME/.config/vcpcat/config.ini.
func Path() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "vcpcat", "config.ini")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vcpcat", "config.ini")
}

// Load reads the config file at Path(), applying its values over the
// built-in defaults. A missing file is not an error: Load silently returns
// the defaults, since having no config file is the common case.
func Load() (*Config, error) {
	cfg := defaults()

	path := Path()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	sec := f.Section("vcpcat")
	if v := sec.Key("default_version").String(); v != "" {
		cfg.DefaultVersion = v
	}
	if v := sec.Key("trace_dir").String(); v != "" {
		cfg.TraceDir = v
	}

	return cfg, nil
}
