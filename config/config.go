// Package config provides configuration loading and management for accountgen.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/accountgen/prompts"
	"github.com/c360studio/accountgen/taxonomy"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	validFormats   = []string{FormatText, FormatJSON, FormatYAML}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Config represents the complete accountgen configuration
type Config struct {
	Taxonomy   TaxonomyConfig   `yaml:"taxonomy"`
	Sampling   SamplingConfig   `yaml:"sampling"`
	Generation GenerationConfig `yaml:"generation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// TaxonomyConfig selects the account-type table
type TaxonomyConfig struct {
	// Path is a taxonomy file or a directory of them (empty = built-in table).
	// Relative paths in a config file resolve against that file's directory.
	Path string `yaml:"path"`
	// Pattern selects files when Path is a directory (default: **/*.{yaml,yml,json})
	Pattern string `yaml:"pattern"`
}

// SamplingConfig configures the random draw
type SamplingConfig struct {
	// Seed makes draws reproducible (0 = seed from entropy)
	Seed uint64 `yaml:"seed"`
	// Count is the number of accounts drawn when not given on the command line
	Count int `yaml:"count"`
}

// GenerationConfig configures prompt output
type GenerationConfig struct {
	// PostCount is the number of posts requested from the generator
	PostCount int `yaml:"post_count"`
	// OutputDir is where batch envelopes are written
	OutputDir string `yaml:"output_dir"`
	// Format is the default output format: text, json or yaml
	Format string `yaml:"format"`
}

// LoggingConfig configures the process logger
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Taxonomy: TaxonomyConfig{
			Path:    "", // Built-in
			Pattern: taxonomy.DefaultPattern,
		},
		Sampling: SamplingConfig{
			Seed:  0,
			Count: 1,
		},
		Generation: GenerationConfig{
			PostCount: prompts.DefaultPostCount,
			OutputDir: "accounts",
			Format:    FormatText,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Sampling.Count < 1 {
		return fmt.Errorf("sampling.count must be at least 1")
	}
	if c.Generation.PostCount < 1 {
		return fmt.Errorf("generation.post_count must be at least 1")
	}
	if c.Generation.OutputDir == "" {
		return fmt.Errorf("generation.output_dir is required")
	}
	if !slices.Contains(validFormats, c.Generation.Format) {
		return fmt.Errorf("generation.format must be one of %v, got %q", validFormats, c.Generation.Format)
	}
	if !slices.Contains(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %v, got %q", validLogLevels, c.Logging.Level)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
// ${VAR} and ${VAR:-default} references are expanded before parsing.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal([]byte(ExpandEnvWithDefaults(string(data))), config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if p := config.Taxonomy.Path; p != "" && !filepath.IsAbs(p) {
		config.Taxonomy.Path = filepath.Join(filepath.Dir(path), p)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Taxonomy
	if other.Taxonomy.Path != "" {
		c.Taxonomy.Path = other.Taxonomy.Path
	}
	if other.Taxonomy.Pattern != "" {
		c.Taxonomy.Pattern = other.Taxonomy.Pattern
	}

	// Sampling
	if other.Sampling.Seed != 0 {
		c.Sampling.Seed = other.Sampling.Seed
	}
	if other.Sampling.Count != 0 {
		c.Sampling.Count = other.Sampling.Count
	}

	// Generation
	if other.Generation.PostCount != 0 {
		c.Generation.PostCount = other.Generation.PostCount
	}
	if other.Generation.OutputDir != "" {
		c.Generation.OutputDir = other.Generation.OutputDir
	}
	if other.Generation.Format != "" {
		c.Generation.Format = other.Generation.Format
	}

	// Logging
	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
}

// LoadTaxonomy loads the configured taxonomy: the built-in table when no path
// is set, every matching file when the path is a directory, otherwise the file.
func (c *Config) LoadTaxonomy() (*taxonomy.Taxonomy, error) {
	path := c.Taxonomy.Path
	if path == "" {
		return taxonomy.Default(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open taxonomy: %w", err)
	}
	if info.IsDir() {
		return taxonomy.LoadGlob(path, c.Taxonomy.Pattern)
	}
	return taxonomy.LoadFromFile(path)
}
