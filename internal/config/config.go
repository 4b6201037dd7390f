// SPDX-License-Identifier: MIT

// Package config loads the linalg driver configuration from YAML.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the complete driver configuration
type Config struct {
	LogLevel  string  `yaml:"log_level"`  // zerolog level name (trace..panic, disabled)
	LogFormat string  `yaml:"log_format"` // console | json
	Precision int     `yaml:"precision"`  // fraction digits when printing results, -1 = shortest
	Locale    string  `yaml:"locale"`     // BCP 47 tag for number formatting
	Epsilon   float64 `yaml:"epsilon"`    // rank tolerance, see matrix.WithEpsilon
	Workspace string  `yaml:"workspace"`  // default workspace file
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:  zerolog.InfoLevel.String(),
		LogFormat: FormatConsole,
		Precision: -1,
		Locale:    "en",
		Epsilon:   0,
		Workspace: "workspace.yaml",
	}
}

// Load reads path over the defaults. An empty path returns Default().
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate ensures the configuration is valid and consistent
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	if c.LogFormat != FormatConsole && c.LogFormat != FormatJSON {
		return fmt.Errorf("log_format must be %q or %q, got %q", FormatConsole, FormatJSON, c.LogFormat)
	}
	if c.Precision < -1 || c.Precision > 17 {
		return fmt.Errorf("precision must be between -1 and 17, got %d", c.Precision)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("epsilon must be finite and >= 0, got %g", c.Epsilon)
	}

	return nil
}

// Level returns the parsed zerolog level. Validate guarantees it parses.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

// Tag returns the parsed locale, falling back to English.
func (c *Config) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}

	return tag
}
