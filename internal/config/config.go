package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsonpp/internal/formatter"
)

// Config represents the complete configuration for jsonpp
type Config struct {
	Formatting FormattingConfig `yaml:"formatting"`
}

// FormattingConfig controls output formatting options
type FormattingConfig struct {
	// Indent is the number of spaces per nesting level in pretty mode.
	Indent int `yaml:"indent"`
	// EnsureASCII escapes non-ASCII characters as \uXXXX sequences.
	EnsureASCII bool `yaml:"ensure_ascii"`
	// Compact makes compact mode the default when no mode flag is given.
	Compact bool `yaml:"compact"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Formatting: FormattingConfig{
			Indent:      formatter.DefaultIndent,
			EnsureASCII: false,
			Compact:     false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults so omitted keys keep their default values.
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration values for consistency
func (c *Config) Validate() error {
	if c.Formatting.Indent < 0 {
		return fmt.Errorf("formatting.indent must not be negative, got %d", c.Formatting.Indent)
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonpp.yml", ".jsonpp.yaml", "jsonpp.yml", "jsonpp.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}
