package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all harness configuration.
type Config struct {
	Pipeline PipelineConfig
	Metrics  MetricsConfig
	Logging  LogConfig
}

// PipelineConfig holds the worker population and workload parameters for a
// single run.
type PipelineConfig struct {
	// Producers is the number of producer workers spawned per run.
	Producers int `envconfig:"HARNESS_PRODUCERS" default:"2"`
	// Consumers is the number of consumer workers spawned per run.
	Consumers int `envconfig:"HARNESS_CONSUMERS" default:"5"`
	// Items is each producer's quota. A quota of N emits N-1 items.
	Items int `envconfig:"HARNESS_ITEMS" default:"30"`
	// BoredCount is the number of non-sentinel items a consumer accepts
	// before giving up on ever seeing a stop item.
	BoredCount int `envconfig:"HARNESS_BORED_COUNT" default:"10000"`
	// Buffer is the hand-off channel capacity. Zero means rendezvous.
	Buffer int `envconfig:"HARNESS_BUFFER" default:"8"`
}

// MetricsConfig holds the optional metrics endpoint configuration.
type MetricsConfig struct {
	// Addr is the listen address for /metrics and /health. Empty disables
	// the endpoint entirely.
	Addr string `envconfig:"HARNESS_METRICS_ADDR" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration. The pipeline defaults match the
// original kernel test driver: 2 producers, 5 consumers, 30 items each, a
// bored bound of 10000.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Producers:  2,
			Consumers:  5,
			Items:      30,
			BoredCount: 10000,
			Buffer:     8,
		},
		Metrics: MetricsConfig{
			Addr: "",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// Validate reports whether the pipeline parameters describe a runnable
// population. Violations are fatal setup errors.
func (c PipelineConfig) Validate() error {
	if c.Producers < 1 {
		return fmt.Errorf("producers must be >= 1, got %d", c.Producers)
	}
	if c.Consumers < 1 {
		return fmt.Errorf("consumers must be >= 1, got %d", c.Consumers)
	}
	if c.Items < 1 {
		return fmt.Errorf("items must be >= 1, got %d", c.Items)
	}
	if c.BoredCount < 1 {
		return fmt.Errorf("bored count must be >= 1, got %d", c.BoredCount)
	}
	if c.Buffer < 0 {
		return fmt.Errorf("buffer must be >= 0, got %d", c.Buffer)
	}
	return nil
}
