// Package config holds the process configuration: registry origin, HTTP
// timeout, and log level. Values come from built-in defaults, an optional
// YAML file, and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither file nor flags override a value.
const (
	DefaultBaseURL  = "https://promptdex.dev"
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "info"
)

// Config is the in-memory representation of a promptdex configuration.
type Config struct {
	// BaseURL is the registry origin, without a trailing slash.
	BaseURL string

	// Timeout bounds a single registry HTTP request.
	Timeout time.Duration

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// rawConfig is the on-disk YAML schema. Timeout is a Go duration string
// such as "5s" or "1m".
type rawConfig struct {
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML config file over the defaults. An empty path skips
// the file entirely; a missing file at an explicitly given path is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("cannot parse config %s: %w", path, err)
	}

	if raw.BaseURL != "" {
		cfg.BaseURL = raw.BaseURL
	}
	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("invalid timeout in %s: %w", path, err)
		}
		cfg.Timeout = timeout
	}
	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}

	return cfg, nil
}
