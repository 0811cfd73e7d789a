// Package settings loads process-level configuration using Viper.
// Values come from defaults, an optional vitrine.yaml, an optional .env file
// and VITRINE_* environment variables, in increasing order of precedence.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/vitrine/internal/overlay"
)

const (
	defaultLogLevel         = "info"
	defaultLogPretty        = false
	defaultMetricsEnabled   = false
	defaultMetricsAddr      = "127.0.0.1:9464"
	defaultMediaVerify      = true
	defaultOverlayBaseZ     = overlay.DefaultBaseZ
	defaultOverlayIncrement = overlay.DefaultIncrement
	envPrefix               = "VITRINE"
)

// Config holds all process configuration
type Config struct {
	Logging LoggingConfig
	Metrics MetricsConfig
	Media   MediaConfig
	Overlay OverlayConfig
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool
	Addr    string
}

// MediaConfig controls how media files are resolved
type MediaConfig struct {
	// Root overrides the directory relative sources resolve against. Empty
	// means the catalog's own directory.
	Root string
	// Verify sniffs file content and rejects files whose type does not
	// match the declared kind.
	Verify bool
}

// OverlayConfig tunes the process-wide stacking counter
type OverlayConfig struct {
	BaseZ     int
	Increment int
}

// Options selects where Load looks for files. Zero values use the working
// directory.
type Options struct {
	// ConfigFile is an explicit config path. When set, a missing file is an
	// error.
	ConfigFile string
	// EnvFiles are loaded before reading the environment. Missing files are
	// ignored.
	EnvFiles []string
}

// Load reads configuration from .env files, config files, environment variables, and defaults
func Load(opts Options) (*Config, error) {
	envFiles := opts.EnvFiles
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		_ = godotenv.Load(path) // nolint:errcheck // .env files are optional
	}

	v := viper.New()

	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("vitrine")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vitrine")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.pretty", defaultLogPretty)

	v.SetDefault("metrics.enabled", defaultMetricsEnabled)
	v.SetDefault("metrics.addr", defaultMetricsAddr)

	v.SetDefault("media.root", "")
	v.SetDefault("media.verify", defaultMediaVerify)

	v.SetDefault("overlay.basez", defaultOverlayBaseZ)
	v.SetDefault("overlay.increment", defaultOverlayIncrement)
}

// Validate checks that configuration values are valid
func (c *Config) Validate() error {
	validLevels := []string{"trace", "debug", "info", "warn", "error"}
	if !contains(validLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.Logging.Level, strings.Join(validLevels, ", "))
	}

	if c.Metrics.Enabled && strings.TrimSpace(c.Metrics.Addr) == "" {
		return fmt.Errorf("metrics enabled without an address")
	}

	if c.Overlay.BaseZ < 0 {
		return fmt.Errorf("invalid overlay base z-index: %d (must be >= 0)", c.Overlay.BaseZ)
	}
	if c.Overlay.Increment <= 0 {
		return fmt.Errorf("invalid overlay increment: %d (must be > 0)", c.Overlay.Increment)
	}

	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
