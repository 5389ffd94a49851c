// Package config provides configuration loading and validation for the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the server configuration loaded from a JSON file.
// All fields are optional; missing values fall back to defaults or
// environment variables.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// DebounceMS is the Brand-Fit write debounce window in milliseconds.
	DebounceMS int `json:"debounce_ms,omitempty"`

	// CategorySynonyms overrides the built-in category alias table used by
	// the matching engine: canonical category -> aliases.
	CategorySynonyms map[string][]string `json:"category_synonyms,omitempty"`
}

// Defaults returns the configuration used when nothing is specified.
func Defaults() Config {
	return Config{
		Port:       8080,
		DebounceMS: 1000,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from environment variables: PORT,
// DATABASE_URL, BRAND_FIT_DEBOUNCE_MS.
func (c *Config) FromEnv() {
	if c.Port == 0 {
		if v := os.Getenv("PORT"); v != "" {
			if port, err := strconv.Atoi(v); err == nil {
				c.Port = port
			}
		}
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.DebounceMS == 0 {
		if v := os.Getenv("BRAND_FIT_DEBOUNCE_MS"); v != "" {
			if ms, err := strconv.Atoi(v); err == nil {
				c.DebounceMS = ms
			}
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.DebounceMS < 0 {
		return fmt.Errorf("config error: 'debounce_ms' must be non-negative")
	}
	for canonical, aliases := range c.CategorySynonyms {
		if canonical == "" {
			return fmt.Errorf("config error: 'category_synonyms' has an empty canonical key")
		}
		for _, alias := range aliases {
			if alias == "" {
				return fmt.Errorf("config error: 'category_synonyms.%s' has an empty alias", canonical)
			}
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.DebounceMS == 0 {
		result.DebounceMS = defaults.DebounceMS
	}
	if result.CategorySynonyms == nil {
		result.CategorySynonyms = defaults.CategorySynonyms
	}
	return result
}
