// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults applied when a value is absent from both the config file and
// the environment.
const (
	DefaultPort                 = 8080
	DefaultMaxConcurrentMatches = 4
)

// Config represents the service configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or can
// be provided via environment variables and CLI flags.
type Config struct {
	Port                 int   `json:"port,omitempty"`                   // HTTP listen port
	MaxConcurrentMatches int64 `json:"max_concurrent_matches,omitempty"` // cap on simultaneous solver runs
	Verbose              bool  `json:"verbose,omitempty"`                // print detailed match reports
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv builds a configuration from environment variables
// (PORT, MAX_CONCURRENT_MATCHES, VERBOSE). Unset variables leave the
// zero value for ApplyDefaults to fill in.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", port, err)
		}
		cfg.Port = p
	}

	if limit := os.Getenv("MAX_CONCURRENT_MATCHES"); limit != "" {
		l, err := strconv.ParseInt(limit, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_CONCURRENT_MATCHES value %q: %w", limit, err)
		}
		cfg.MaxConcurrentMatches = l
	}

	cfg.Verbose = os.Getenv("VERBOSE") == "true"

	return cfg, nil
}

// ApplyDefaults fills in default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.MaxConcurrentMatches == 0 {
		c.MaxConcurrentMatches = DefaultMaxConcurrentMatches
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535], got %d", c.Port)
	}
	if c.MaxConcurrentMatches < 0 {
		return fmt.Errorf("config error: 'max_concurrent_matches' must be non-negative, got %d", c.MaxConcurrentMatches)
	}
	return nil
}
