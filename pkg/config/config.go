package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines runtime settings for archwrap.
type Config struct {
	// OutputDir is where wrapper artifacts are written.
	OutputDir string `yaml:"outputDir"`
	// TablesPath optionally points at a YAML table-override document.
	TablesPath string `yaml:"tablesPath"`
	LogLevel   string `yaml:"logLevel"`
	LogFormat  string `yaml:"logFormat"`
	// Jobs bounds the generation worker pool; 0 means one per CPU.
	Jobs int `yaml:"jobs"`
}

// Load loads configuration from a YAML file and environment overrides.
// An empty path skips the file and applies defaults and environment
// only.
func Load(path string) (*Config, error) {
	cfg := &Config{
		OutputDir: "bin",
		LogLevel:  "info",
		LogFormat: "text",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if out := os.Getenv("ARCHWRAP_OUTPUT"); out != "" {
		cfg.OutputDir = out
	}
	if tables := os.Getenv("ARCHWRAP_TABLES"); tables != "" {
		cfg.TablesPath = tables
	}
	if level := os.Getenv("ARCHWRAP_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := os.Getenv("ARCHWRAP_LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}
	if jobs := os.Getenv("ARCHWRAP_JOBS"); jobs != "" {
		n, err := strconv.Atoi(jobs)
		if err != nil {
			return nil, fmt.Errorf("parse ARCHWRAP_JOBS: %w", err)
		}
		cfg.Jobs = n
	}

	return cfg, nil
}

// DefaultPath returns the default location for the CLI config file.
func DefaultPath() string {
	if path := os.Getenv("ARCHWRAP_CONFIG"); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".archwrap", "config.yaml")
}
