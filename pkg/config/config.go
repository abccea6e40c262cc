// Package config loads the optional YAML configuration for the tram stop hours console.
package config

import (
	"fmt"
	"github.com/rycus86/tram-stop-hours/pkg/hours"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// MetricsAddr is the listen address of the Prometheus endpoint, empty to disable it.
	MetricsAddr string `yaml:"metrics_addr"`

	// Seed replaces the default records the store starts with.
	Seed []hours.Record `yaml:"seed"`
}

func Default() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// Load reads the config at path on top of the defaults and applies
// environment overrides. An empty path only applies the overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("TRAMSTOP_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TRAMSTOP_METRICS_ADDR")); v != "" {
		c.MetricsAddr = v
	}
}

func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	for i, r := range c.Seed {
		if strings.TrimSpace(r.StopName) == "" {
			return fmt.Errorf("seed record %d: missing stop name", i)
		}
		if r.PassengerCount < 0 {
			return fmt.Errorf("seed record %d: %w", i, hours.ErrNegativeCount)
		}
		for _, route := range r.RouteNumbers {
			if route < 0 {
				return fmt.Errorf("seed record %d: negative route number %d", i, route)
			}
		}
	}

	return nil
}

func (c *Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewStore returns a store holding the configured seed records, or the
// default seed when none are configured.
func (c *Config) NewStore() *hours.Store {
	if c.Seed == nil {
		return hours.New()
	}
	return hours.NewWithRecords(c.Seed)
}
