// Package config loads clarigen settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/x402-marketplace/clarigen/internal/logging"
)

// EnvPrefix is the prefix for environment overrides, e.g. CLARIGEN_OUTPUT_DIR.
const EnvPrefix = "CLARIGEN"

// DefaultOutputDir is used when neither config nor catalog names an output directory.
const DefaultOutputDir = "contracts"

// Config is the resolved clarigen configuration.
type Config struct {
	// OutputDir overrides the catalog's output directory when set.
	OutputDir string `mapstructure:"output_dir"`

	// Catalog is a builtin catalog name or a path to a catalog file.
	Catalog string `mapstructure:"catalog"`

	// TemplatesDir is searched for template overrides before the standard paths.
	TemplatesDir string `mapstructure:"templates_dir"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoggingOptions converts the logging section for logging.Init.
func (c LoggingConfig) LoggingOptions() logging.Config {
	return logging.Config{Level: c.Level, Format: c.Format}
}

// DefaultConfigDir returns the user configuration directory for clarigen.
func DefaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "clarigen")
	}
	return ""
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", "")
	v.SetDefault("catalog", "core")
	v.SetDefault("templates_dir", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads configuration into a new Config. An empty path searches the
// default config directory; a missing default file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := DefaultConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config logging.level: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("config logging.format: unknown format %q", c.Logging.Format)
	}
	return nil
}

// ResolveOutputDir picks the output directory: explicit config wins, then the
// catalog's own directory, then DefaultOutputDir.
func (c *Config) ResolveOutputDir(catalogDir string) string {
	if dir := strings.TrimSpace(c.OutputDir); dir != "" {
		return dir
	}
	if dir := strings.TrimSpace(catalogDir); dir != "" {
		return dir
	}
	return DefaultOutputDir
}
