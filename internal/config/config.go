// Package config provides configuration management for vocab.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/vocab-cli/internal/view"
)

// Environment variables that override file values.
const (
	EnvVocabulary    = "VOCAB_VOCABULARY"
	EnvOutputFormat  = "VOCAB_OUTPUT_FORMAT"
	EnvEmphasisColor = "VOCAB_EMPHASIS_COLOR"
	EnvWidth         = "VOCAB_WIDTH"
	EnvLogLevel      = "VOCAB_LOG_LEVEL"
)

// Config holds the vocab configuration.
type Config struct {
	Vocabulary    []string `yaml:"vocabulary,omitempty" json:"vocabulary,omitempty"`
	OutputFormat  string   `yaml:"output_format,omitempty" json:"output_format,omitempty"`
	EmphasisColor string   `yaml:"emphasis_color,omitempty" json:"emphasis_color,omitempty"`
	Width         int      `yaml:"width,omitempty" json:"width,omitempty"`
	LogLevel      string   `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// Validate checks that every set field holds a usable value.
func (c *Config) Validate() error {
	if c.OutputFormat != "" {
		if err := view.ValidateFormat(c.OutputFormat); err != nil {
			return err
		}
	}
	if c.EmphasisColor != "" {
		if _, ok := view.ColorByName(c.EmphasisColor); !ok {
			return fmt.Errorf("unknown emphasis_color %q (valid: %s)", c.EmphasisColor, strings.Join(view.ColorNames(), ", "))
		}
	}
	if c.Width < 0 {
		return errors.New("width must not be negative")
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv(EnvVocabulary); v != "" {
		c.Vocabulary = SplitList(v)
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.OutputFormat = v
	}
	if v := os.Getenv(EnvEmphasisColor); v != "" {
		c.EmphasisColor = v
	}
	if v := os.Getenv(EnvWidth); v != "" {
		width, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvWidth, err)
		}
		c.Width = width
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// SplitList splits a comma separated list, dropping blank items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "vocab", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".vocab", "config.yml")
	}

	return filepath.Join(home, ".config", "vocab", "config.yml")
}

// ResolvePath returns override when set, else the default path.
func ResolvePath(override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return DefaultConfigPath()
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file is not an error; an unparsable one is.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
