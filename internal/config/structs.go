package config

// Config represents the complete configuration for the hullbench
// application. It supports loading from configuration files,
// environment variables, and command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Benchmark configuration (for the bench command)
	Bench BenchConfig `mapstructure:"bench" yaml:"bench" json:"bench"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	File   string `mapstructure:"file" yaml:"file" json:"file"`
}

// BenchConfig contains benchmark harness settings.
type BenchConfig struct {
	Sizes         []int    `mapstructure:"sizes" yaml:"sizes" json:"sizes"`
	Distributions []string `mapstructure:"distributions" yaml:"distributions" json:"distributions"`
	Algorithms    []string `mapstructure:"algorithms" yaml:"algorithms" json:"algorithms"`
	Trials        int      `mapstructure:"trials" yaml:"trials" json:"trials"`
	Seed          uint64   `mapstructure:"seed" yaml:"seed" json:"seed"`
	Workers       int      `mapstructure:"workers" yaml:"workers" json:"workers"`
	TimeoutSec    int      `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	Aggregate     bool     `mapstructure:"aggregate" yaml:"aggregate" json:"aggregate"`
}
