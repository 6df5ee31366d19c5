package config

import "github.com/spf13/viper"

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func (config SeedConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("seed.enabled", "SEED_ENABLED")
}
