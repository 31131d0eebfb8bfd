package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// CurrentVersion is written by Default and config init.
const CurrentVersion = "1"

// Config represents ~/.kvedit/config.yaml.
type Config struct {
	Version     string `yaml:"version"`
	Indent      int    `yaml:"indent"`
	DefaultMode string `yaml:"default_mode"`
	IDs         string `yaml:"ids"`
	LogLevel    string `yaml:"log_level"`
	Color       string `yaml:"color"`
}

// Default returns a config with default values.
func Default() Config {
	return Config{
		Version:     CurrentVersion,
		Indent:      2,
		DefaultMode: "visual",
		IDs:         "uuid",
		LogLevel:    "warn",
		Color:       "auto",
	}
}

// Parse parses config.yaml bytes into a Config. Missing fields take their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if c.Indent < 1 || c.Indent > 8 {
		return fmt.Errorf("invalid indent %d: must be between 1 and 8", c.Indent)
	}
	if !oneOf(c.DefaultMode, "visual", "json") {
		return fmt.Errorf("invalid default_mode %q: must be visual or json", c.DefaultMode)
	}
	if !oneOf(c.IDs, "uuid", "fallback", "sequence") {
		return fmt.Errorf("invalid ids %q: must be uuid, fallback or sequence", c.IDs)
	}
	if !oneOf(strings.ToLower(c.LogLevel), "debug", "info", "warn", "error") {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if !oneOf(c.Color, "auto", "always", "never") {
		return fmt.Errorf("invalid color %q: must be auto, always or never", c.Color)
	}
	return nil
}

// IndentString returns the JSON indentation the config asks for.
func (c Config) IndentString() string {
	return strings.Repeat(" ", c.Indent)
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func oneOf(s string, options ...string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
