// Package config loads the core's runtime tunables — decimal
// precision, max frame depth, and whether metrics are recorded — from
// an optional .env file, environment variables, and defaults, layered
// with spf13/viper. Grounded on Sumatoshi-tech-codefang's
// internal/config/loader.go (defaults-then-env-then-file precedence,
// SetEnvPrefix/AutomaticEnv wiring) and termfx-morfx's godotenv.Load()
// convention for populating the process environment before viper
// reads it.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/guillep/wollok-core/internal/ids"
)

const (
	envPrefix       = "WOLLOK_CORE"
	envKeySeparator = "_"
)

// Defaults mirror spec.md §4.7's worked example (DECIMAL_PRECISION =
// 5) and the teacher's CallStack default maxDepth of 1024.
const (
	DefaultDecimalPrecision = ids.DefaultDecimalPrecision
	DefaultMaxFrameDepth    = 1024
	DefaultMetricsEnabled   = false
)

// Config is the core's runtime configuration surface.
type Config struct {
	DecimalPrecision int  `mapstructure:"decimal_precision"`
	MaxFrameDepth    int  `mapstructure:"max_frame_depth"`
	MetricsEnabled   bool `mapstructure:"metrics_enabled"`
}

// Load reads configuration from (in ascending precedence) defaults,
// an optional .env file loaded into the process environment, and
// environment variables prefixed WOLLOK_CORE_. A missing .env file is
// not an error, matching godotenv's typical development-convenience
// use (termfx-morfx ignores its Load() error for the same reason).
func Load(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		_ = godotenv.Load(envFilePath)
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetDefault("decimal_precision", DefaultDecimalPrecision)
	v.SetDefault("max_frame_depth", DefaultMaxFrameDepth)
	v.SetDefault("metrics_enabled", DefaultMetricsEnabled)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the runtime cannot operate under.
func (c *Config) Validate() error {
	if c.DecimalPrecision <= 0 {
		return fmt.Errorf("config: decimal_precision must be positive, got %d", c.DecimalPrecision)
	}
	if c.MaxFrameDepth <= 0 {
		return fmt.Errorf("config: max_frame_depth must be positive, got %d", c.MaxFrameDepth)
	}
	return nil
}
