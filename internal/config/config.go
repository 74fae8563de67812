// Package config loads and validates the hullbench configuration from
// files, environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hullbench/hullbench/internal/generator"
	"github.com/hullbench/hullbench/internal/harness"
	"github.com/hullbench/hullbench/internal/hull"
)

// DefaultConfig returns the configuration used when no file, flag or
// environment variable overrides a setting.
func DefaultConfig() *Config {
	bench := harness.DefaultConfig()

	distributions := make([]string, len(bench.Distributions))
	for i, d := range bench.Distributions {
		distributions[i] = string(d)
	}
	algorithms := make([]string, len(bench.Algorithms))
	for i, a := range bench.Algorithms {
		algorithms[i] = string(a)
	}

	return &Config{
		LogLevel: "info",
		Verbose:  false,
		Output: OutputConfig{
			Format: "text",
		},
		Bench: BenchConfig{
			Sizes:         bench.Sizes,
			Distributions: distributions,
			Algorithms:    algorithms,
			Trials:        bench.Trials,
			Seed:          bench.Seed,
			Workers:       bench.Workers,
			TimeoutSec:    int(bench.Timeout / time.Second),
			Aggregate:     false,
		},
	}
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)",
			c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	validFormats := []string{"text", "json", "csv", "yaml"}
	if c.Output.Format != "" && !contains(validFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)",
			c.Output.Format, strings.Join(validFormats, ", "))
	}

	benchCfg, err := c.ToBenchConfig()
	if err != nil {
		return err
	}
	if err := benchCfg.Validate(); err != nil {
		return fmt.Errorf("bench configuration invalid: %w", err)
	}

	return nil
}

// ToBenchConfig converts the config to the harness configuration format.
func (c *Config) ToBenchConfig() (harness.Config, error) {
	distributions := make([]generator.Distribution, 0, len(c.Bench.Distributions))
	for _, name := range c.Bench.Distributions {
		d, err := generator.ParseDistribution(name)
		if err != nil {
			return harness.Config{}, err
		}
		distributions = append(distributions, d)
	}

	algorithms := make([]hull.Algorithm, 0, len(c.Bench.Algorithms))
	for _, name := range c.Bench.Algorithms {
		a, err := hull.ParseAlgorithm(name)
		if err != nil {
			return harness.Config{}, err
		}
		algorithms = append(algorithms, a)
	}

	if c.Bench.TimeoutSec < 0 {
		return harness.Config{}, fmt.Errorf("invalid timeout: %d (must be non-negative)", c.Bench.TimeoutSec)
	}

	return harness.Config{
		Sizes:         c.Bench.Sizes,
		Distributions: distributions,
		Algorithms:    algorithms,
		Trials:        c.Bench.Trials,
		Seed:          c.Bench.Seed,
		Workers:       c.Bench.Workers,
		Timeout:       time.Duration(c.Bench.TimeoutSec) * time.Second,
	}, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
