package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360/apphealth/errors"
)

// Log format constants
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Default tuning values
const (
	// DefaultDebounceInterval bounds notification frequency to at most one
	// published snapshot per second regardless of publish volume
	DefaultDebounceInterval = time.Second

	// MaxDebounceInterval is the upper bound accepted by validation
	MaxDebounceInterval = time.Minute
)

// Config represents the complete application configuration
type Config struct {
	Aggregator AggregatorConfig `yaml:"aggregator"`
	Logging    LoggingConfig    `yaml:"logging"`
	Demo       DemoConfig       `yaml:"demo,omitempty"`
}

// AggregatorConfig tunes the recomputation and debounce engine
type AggregatorConfig struct {
	// DebounceInterval is the period of the background recomputation pass.
	// Publisher updates become visible to observers at most this long after
	// they are written.
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// KickOnWait makes a wait-for-change request trigger an immediate
	// recomputation pass instead of waiting for the next tick, bounding
	// wait latency when the debounce interval is large
	KickOnWait bool `yaml:"kick_on_wait"`
}

// LoggingConfig defines log output settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DemoConfig defines the simulated workload run by cmd/healthmon
type DemoConfig struct {
	Duration   time.Duration   `yaml:"duration,omitempty"`
	Components []DemoComponent `yaml:"components,omitempty"`
}

// DemoComponent describes one simulated component and its publishers
type DemoComponent struct {
	Name         string        `yaml:"name"`
	Publishers   int           `yaml:"publishers"`
	FlapInterval time.Duration `yaml:"flap_interval"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Aggregator: AggregatorConfig{
			DebounceInterval: DefaultDebounceInterval,
			KickOnWait:       true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: LogFormatJSON,
		},
	}
}

// Load reads configuration from a YAML file, applies environment variable
// overrides, and validates the result. An empty path yields the defaults
// plus environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapInvalid(err, "Config", "Load", "read configuration file")
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapInvalid(err, "Config", "Load", "parse configuration file")
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides configuration values from the environment
func (c *Config) applyEnv() {
	if v := os.Getenv("APPHEALTH_DEBOUNCE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Aggregator.DebounceInterval = d
		}
	}

	if v := os.Getenv("APPHEALTH_KICK_ON_WAIT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Aggregator.KickOnWait = b
		}
	}

	if v := os.Getenv("APPHEALTH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv("APPHEALTH_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Aggregator.DebounceInterval <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: debounce_interval must be positive, got %s",
				errors.ErrInvalidConfig, c.Aggregator.DebounceInterval),
			"Config", "Validate", "check debounce interval")
	}

	if c.Aggregator.DebounceInterval > MaxDebounceInterval {
		return errors.WrapInvalid(
			fmt.Errorf("%w: debounce_interval must not exceed %s, got %s",
				errors.ErrInvalidConfig, MaxDebounceInterval, c.Aggregator.DebounceInterval),
			"Config", "Validate", "check debounce interval")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.WrapInvalid(
			fmt.Errorf("%w: unknown log level %q", errors.ErrInvalidConfig, c.Logging.Level),
			"Config", "Validate", "check log level")
	}

	switch c.Logging.Format {
	case LogFormatJSON, LogFormatText:
	default:
		return errors.WrapInvalid(
			fmt.Errorf("%w: unknown log format %q", errors.ErrInvalidConfig, c.Logging.Format),
			"Config", "Validate", "check log format")
	}

	for i, dc := range c.Demo.Components {
		if dc.Name == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: demo component %d has no name", errors.ErrInvalidConfig, i),
				"Config", "Validate", "check demo components")
		}
		if dc.Publishers <= 0 {
			return errors.WrapInvalid(
				fmt.Errorf("%w: demo component %q needs at least one publisher",
					errors.ErrInvalidConfig, dc.Name),
				"Config", "Validate", "check demo components")
		}
	}

	return nil
}
