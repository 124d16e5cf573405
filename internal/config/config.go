// Package config loads the constellations CLI configuration from YAML with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/constellations/constellation"
)

// Environment variables that override file values.
const (
	EnvThreshold = "CONSTELLATIONS_THRESHOLD"
	EnvMethod    = "CONSTELLATIONS_METHOD"
	EnvLogLevel  = "CONSTELLATIONS_LOG_LEVEL"
)

// Config is the on-disk configuration.
type Config struct {
	// Threshold is the inclusive linking distance.
	Threshold int64 `yaml:"threshold"`
	// Method is one of constellation.Methods.
	Method string `yaml:"method"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

var logLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Threshold: constellation.DefaultThreshold,
		Method:    constellation.MethodMerge,
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error; an empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvThreshold); v != "" {
		d, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvThreshold, err)
		}
		c.Threshold = d
	}
	if v := os.Getenv(EnvMethod); v != "" {
		c.Method = strings.TrimSpace(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.TrimSpace(v)
	}

	return nil
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("threshold %d: %w", c.Threshold, constellation.ErrNegativeThreshold)
	}
	if !contains(constellation.Methods, c.Method) {
		return fmt.Errorf("method %q (want one of %s): %w",
			c.Method, strings.Join(constellation.Methods, ", "), constellation.ErrUnknownMethod)
	}
	if !contains(logLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("invalid logging.level %q (want one of %s)", c.Logging.Level, strings.Join(logLevels, ", "))
	}

	return nil
}

// Options converts c into clustering options.
func (c *Config) Options() []constellation.Option {
	return []constellation.Option{
		constellation.WithThreshold(c.Threshold),
		constellation.WithMethod(c.Method),
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
