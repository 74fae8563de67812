package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestLoader() *Loader {
	// Isolated viper instance so tests do not pollute the global one.
	return &Loader{v: viper.New()}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := newTestLoader().Load()
	require.NoError(t, err)

	defaults := DefaultConfig()
	require.Equal(t, defaults.LogLevel, cfg.LogLevel)
	require.Equal(t, defaults.Output.Format, cfg.Output.Format)
	require.Equal(t, defaults.Bench.Sizes, cfg.Bench.Sizes)
	require.Equal(t, defaults.Bench.Trials, cfg.Bench.Trials)
}

func TestLoadWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hullbench.yaml")
	content := `log_level: debug
output:
  format: csv
bench:
  sizes: [10, 20]
  distributions: [uniform]
  algorithms: [graham, jarvis]
  trials: 2
  seed: 99
  workers: 1
  timeout_sec: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := newTestLoader().LoadWithFile(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "csv", cfg.Output.Format)
	require.Equal(t, []int{10, 20}, cfg.Bench.Sizes)
	require.Equal(t, []string{"uniform"}, cfg.Bench.Distributions)
	require.Equal(t, []string{"graham", "jarvis"}, cfg.Bench.Algorithms)
	require.Equal(t, uint64(99), cfg.Bench.Seed)
}

func TestLoadWithFile_Missing(t *testing.T) {
	_, err := newTestLoader().LoadWithFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestLoadWithFile_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hullbench.yaml")
	content := `bench:
  trials: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := newTestLoader().LoadWithFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "validation failed")
}

func TestGenerateDefaultConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, GenerateDefaultConfigFile(path))

	// The generated file must load back cleanly.
	cfg, err := newTestLoader().LoadWithFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}
