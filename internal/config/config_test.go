package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func TestLoadDefaults(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.OutputDir)
	assert.Equal(t, "core", cfg.Catalog)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFile(t *testing.T) {
	isolateConfigDir(t)

	path := filepath.Join(t.TempDir(), "clarigen.yaml")
	content := `output_dir: build/contracts
catalog: sandbox
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "build/contracts", cfg.OutputDir)
	assert.Equal(t, "sandbox", cfg.Catalog)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.LoggingOptions().Format)
}

func TestLoadDefaultConfigDir(t *testing.T) {
	isolateConfigDir(t)

	dir := DefaultConfigDir()
	require.NotEmpty(t, dir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("catalog: mocks\n"), 0644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "mocks", cfg.Catalog)
}

func TestLoadEnvOverride(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("CLARIGEN_OUTPUT_DIR", "/tmp/out")
	t.Setenv("CLARIGEN_LOGGING_LEVEL", "warn")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolateConfigDir(t)

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "chatty"}}
	require.Error(t, cfg.Validate())

	cfg = &Config{Logging: LoggingConfig{Level: "info", Format: "xml"}}
	require.Error(t, cfg.Validate())

	cfg = &Config{Logging: LoggingConfig{Level: "error", Format: "JSON"}}
	require.NoError(t, cfg.Validate())
}

func TestResolveOutputDir(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultOutputDir, cfg.ResolveOutputDir(""))
	assert.Equal(t, "contracts/external", cfg.ResolveOutputDir("contracts/external"))

	cfg.OutputDir = "out"
	assert.Equal(t, "out", cfg.ResolveOutputDir("contracts/external"))
}
