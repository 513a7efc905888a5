package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != "bin" {
		t.Fatalf("expected default output dir bin, got %q", cfg.OutputDir)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected logging defaults: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Jobs != 0 {
		t.Fatalf("expected jobs default 0, got %d", cfg.Jobs)
	}
}

func TestLoadFromFile(t *testing.T) {
	doc := "outputDir: /srv/wrappers\nlogLevel: debug\njobs: 2\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != "/srv/wrappers" {
		t.Fatalf("expected file output dir, got %q", cfg.OutputDir)
	}
	if cfg.LogLevel != "debug" || cfg.Jobs != 2 {
		t.Fatalf("unexpected values: %+v", cfg)
	}
	if cfg.LogFormat != "text" {
		t.Fatalf("unset file keys must keep defaults, got %q", cfg.LogFormat)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestEnvOverridesBeatFile(t *testing.T) {
	doc := "outputDir: /srv/wrappers\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("ARCHWRAP_OUTPUT", "/tmp/out")
	t.Setenv("ARCHWRAP_LOG_LEVEL", "error")
	t.Setenv("ARCHWRAP_JOBS", "8")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Fatalf("env must beat file, got %q", cfg.OutputDir)
	}
	if cfg.LogLevel != "error" || cfg.Jobs != 8 {
		t.Fatalf("unexpected values: %+v", cfg)
	}
}

func TestBadJobsEnv(t *testing.T) {
	t.Setenv("ARCHWRAP_JOBS", "many")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for non-numeric ARCHWRAP_JOBS")
	}
}

func TestDefaultPathHonorsEnv(t *testing.T) {
	t.Setenv("ARCHWRAP_CONFIG", "/etc/archwrap.yaml")
	if got := DefaultPath(); got != "/etc/archwrap.yaml" {
		t.Fatalf("expected env path, got %q", got)
	}
}
