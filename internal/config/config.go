package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// FUZZYTRIE_MAX_DISTANCE.
const EnvPrefix = "FUZZYTRIE"

// AutoDistance selects the distance bound from the query length.
const AutoDistance = -1

// Config holds all configuration for the CLI
type Config struct {
	Dictionary    string `mapstructure:"dictionary"`
	MaxDistance   int    `mapstructure:"max_distance"`
	CaseSensitive bool   `mapstructure:"case_sensitive"`
	Normalise     bool   `mapstructure:"normalise"`
	LogLevel      string `mapstructure:"log_level"`
	Limit         int    `mapstructure:"limit"`
}

// LoadConfig loads configuration from an optional file and environment
// variables, on top of the defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary", "")
	v.SetDefault("max_distance", AutoDistance)
	v.SetDefault("case_sensitive", false)
	v.SetDefault("normalise", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("limit", 0)
}

// Validate checks the configuration for values the CLI cannot work with.
func (c *Config) Validate() error {
	if c.MaxDistance < AutoDistance {
		return fmt.Errorf("invalid max_distance %d", c.MaxDistance)
	}
	if c.Limit < 0 {
		return fmt.Errorf("invalid limit %d", c.Limit)
	}
	return nil
}
