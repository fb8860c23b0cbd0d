// Package config provides configuration loading and validation for the
// matcher CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds tunable matcher settings, loadable from a JSON file. Missing
// values fall back to Default(); the database URL may also arrive via the
// DATABASE_URL environment variable.
type Config struct {
	// Ranking weights
	Alpha float64 `json:"alpha,omitempty"` // match weight
	Beta  float64 `json:"beta,omitempty"`  // complementarity weight
	TopK  int     `json:"top_k,omitempty"` // recommendations per team

	// NormalizeMatch selects the scoring variant: min-max scale match
	// scores across candidates before weighting (true) or use raw cosine
	// (false). Both variants existed historically; scaled is the default.
	NormalizeMatch *bool `json:"normalize_match,omitempty"`

	// Ceiling-avoidance step applied to final scores.
	CompressThreshold float64 `json:"compress_threshold,omitempty"`
	CompressOffset    float64 `json:"compress_offset,omitempty"`

	// Deployment
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// Default returns the production defaults.
func Default() Config {
	normalize := true
	return Config{
		Alpha:             0.7,
		Beta:              0.3,
		TopK:              6,
		NormalizeMatch:    &normalize,
		CompressThreshold: 0.9,
		CompressOffset:    0.1,
		Port:              8080,
	}
}

// Load reads configuration from a JSON file and merges it over the
// defaults. An empty path returns the defaults with environment overrides
// applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
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

		var file Config
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
		cfg = cfg.merge(file)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge overlays non-zero fields of file onto c.
func (c Config) merge(file Config) Config {
	out := c
	if file.Alpha != 0 {
		out.Alpha = file.Alpha
	}
	if file.Beta != 0 {
		out.Beta = file.Beta
	}
	if file.TopK != 0 {
		out.TopK = file.TopK
	}
	if file.NormalizeMatch != nil {
		out.NormalizeMatch = file.NormalizeMatch
	}
	if file.CompressThreshold != 0 {
		out.CompressThreshold = file.CompressThreshold
	}
	if file.CompressOffset != 0 {
		out.CompressOffset = file.CompressOffset
	}
	if file.Port != 0 {
		out.Port = file.Port
	}
	if file.DatabaseURL != "" {
		out.DatabaseURL = file.DatabaseURL
	}
	if file.Verbose {
		out.Verbose = true
	}
	return out
}

// Validate checks numeric ranges.
func (c *Config) Validate() error {
	if c.Alpha < 0 {
		return fmt.Errorf("config error: 'alpha' must be non-negative")
	}
	if c.Beta < 0 {
		return fmt.Errorf("config error: 'beta' must be non-negative")
	}
	if c.Alpha == 0 && c.Beta == 0 {
		return fmt.Errorf("config error: 'alpha' and 'beta' cannot both be zero")
	}
	if c.TopK < 1 {
		return fmt.Errorf("config error: 'top_k' must be at least 1")
	}
	if c.CompressOffset < 0 {
		return fmt.Errorf("config error: 'compress_offset' must be non-negative")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	return nil
}
