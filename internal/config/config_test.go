// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DefaultVersion != "2.2" {
		t.Errorf("DefaultVersion = %q, want 2.2", cfg.DefaultVersion)
	}
	if cfg.TraceDir != "." {
		t.Errorf("TraceDir = %q, want .", cfg.TraceDir)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	confDir := filepath.Join(dir, "vcpcat")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	contents := "[vcpcat]\ndefault_version = 3.0\ntrace_dir = /var/traces\n"
	if err := os.WriteFile(filepath.Join(confDir, "config.ini"), []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DefaultVersion != "3.0" {
		t.Errorf("DefaultVersion = %q, want 3.0", cfg.DefaultVersion)
	}
	if cfg.TraceDir != "/var/traces" {
		t.Errorf("TraceDir = %q, want /var/traces", cfg.TraceDir)
	}
}

func TestPathUsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdgtest")
	want := filepath.Join("/tmp/xdgtest", "vcpcat", "config.ini")
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
