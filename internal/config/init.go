package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// defaults registers every config key with viper. Unmarshal only decodes
// keys viper knows about, so unregistered keys would never see environment
// overrides.
var defaults = map[string]any{
	"data_dir":         defaultDataDir,
	"timeout":          defaultTimeout,
	"user_agent":       defaultUserAgent,
	"max_per_brand":    defaultMaxPerBrand,
	"feed.locale":      defaultLocale,
	"feed.region":      defaultRegion,
	"feed.channel":     defaultChannel,
	"logging.level":    defaultLogLevel,
	"logging.encoding": defaultLogEncoding,
}

// envBindings maps config keys to their environment variable names.
var envBindings = map[string]string{
	"data_dir":         "DATA_DIR",
	"timeout":          "TIMEOUT",
	"user_agent":       "USER_AGENT",
	"max_per_brand":    "MAX_PER_BRAND",
	"feed.locale":      "FEED_LOCALE",
	"feed.region":      "FEED_REGION",
	"feed.channel":     "FEED_CHANNEL",
	"logging.level":    "LOG_LEVEL",
	"logging.encoding": "LOG_ENCODING",
}

// Init registers defaults and environment variable bindings with viper.
// It must run before Load so config file values and environment variables
// take precedence over the defaults.
func Init() error {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s: %w", env, err)
		}
	}

	return nil
}
