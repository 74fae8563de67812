package config

import (
	"testing"
	"time"

	"github.com/hullbench/hullbench/internal/generator"
	"github.com/hullbench/hullbench/internal/hull"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "trace" },
			wantErr: "invalid log level",
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "invalid output format",
		},
		{
			name:    "unknown distribution",
			mutate:  func(c *Config) { c.Bench.Distributions = []string{"poisson"} },
			wantErr: "unknown distribution",
		},
		{
			name:    "unknown algorithm",
			mutate:  func(c *Config) { c.Bench.Algorithms = []string{"chan"} },
			wantErr: "unknown algorithm",
		},
		{
			name:    "negative size",
			mutate:  func(c *Config) { c.Bench.Sizes = []int{-1} },
			wantErr: "invalid input size",
		},
		{
			name:    "empty sizes",
			mutate:  func(c *Config) { c.Bench.Sizes = nil },
			wantErr: "input size",
		},
		{
			name:    "zero trials",
			mutate:  func(c *Config) { c.Bench.Trials = 0 },
			wantErr: "invalid trial count",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Bench.TimeoutSec = -1 },
			wantErr: "invalid timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestToBenchConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bench.Sizes = []int{100, 200}
	cfg.Bench.Distributions = []string{"uniform", "circle"}
	cfg.Bench.Algorithms = []string{"graham", "monotone_chain"}
	cfg.Bench.Trials = 3
	cfg.Bench.Seed = 7
	cfg.Bench.Workers = 2
	cfg.Bench.TimeoutSec = 10

	benchCfg, err := cfg.ToBenchConfig()
	require.NoError(t, err)
	require.Equal(t, []int{100, 200}, benchCfg.Sizes)
	require.Equal(t, []generator.Distribution{generator.Uniform, generator.Circle}, benchCfg.Distributions)
	require.Equal(t, []hull.Algorithm{hull.AlgorithmGraham, hull.AlgorithmMonotoneChain}, benchCfg.Algorithms)
	require.Equal(t, 3, benchCfg.Trials)
	require.Equal(t, uint64(7), benchCfg.Seed)
	require.Equal(t, 2, benchCfg.Workers)
	require.Equal(t, 10*time.Second, benchCfg.Timeout)
	require.NoError(t, benchCfg.Validate())
}

func TestToBenchConfig_UnknownNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bench.Algorithms = []string{"voronoi"}
	_, err := cfg.ToBenchConfig()
	require.ErrorIs(t, err, hull.ErrUnknownAlgorithm)

	cfg = DefaultConfig()
	cfg.Bench.Distributions = []string{"bimodal"}
	_, err = cfg.ToBenchConfig()
	require.ErrorIs(t, err, generator.ErrUnknownDistribution)
}
