// Package config loads application configuration from config file and
// environment via viper, applying defaults for anything unset.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/fashionbook/harvester/internal/logger"
)

// Default configuration values.
const (
	defaultDataDir     = "data"
	defaultTimeout     = 12 * time.Second
	defaultUserAgent   = "fashionbook-bot/1.0 (+https://github.com/)"
	defaultMaxPerBrand = 8
	defaultLocale      = "en-US"
	defaultRegion      = "US"
	defaultChannel     = "US:en"
	defaultLogLevel    = "info"
	defaultLogEncoding = "console"
)

// FeedConfig holds the locale parameters of the feed-search endpoint.
type FeedConfig struct {
	Locale  string `mapstructure:"locale"`
	Region  string `mapstructure:"region"`
	Channel string `mapstructure:"channel"`
}

// Config holds all application configuration. It is constructed once at
// process start and passed into every component that needs it; there are no
// package-level configuration singletons.
type Config struct {
	// DataDir is the directory holding the JSON document store
	DataDir string `mapstructure:"data_dir"`
	// Timeout bounds every outbound HTTP request
	Timeout time.Duration `mapstructure:"timeout"`
	// UserAgent identifies the harvester to upstream servers
	UserAgent string `mapstructure:"user_agent"`
	// MaxPerBrand caps accepted new posts per brand per run
	MaxPerBrand int `mapstructure:"max_per_brand"`
	// Feed holds locale parameters for the search feed
	Feed FeedConfig `mapstructure:"feed"`
	// Logging configures the zap logger
	Logging logger.Config `mapstructure:"logging"`
}

// Load builds a Config from the current viper state with defaults applied.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg = cfg.WithDefaults()

	return &cfg, nil
}

// WithDefaults returns a copy of the config with default values applied for
// zero-value fields.
func (c Config) WithDefaults() Config {
	if c.DataDir == "" {
		c.DataDir = defaultDataDir
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.MaxPerBrand <= 0 {
		c.MaxPerBrand = defaultMaxPerBrand
	}
	if c.Feed.Locale == "" {
		c.Feed.Locale = defaultLocale
	}
	if c.Feed.Region == "" {
		c.Feed.Region = defaultRegion
	}
	if c.Feed.Channel == "" {
		c.Feed.Channel = defaultChannel
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Encoding == "" {
		c.Logging.Encoding = defaultLogEncoding
	}
	return c
}
