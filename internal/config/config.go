package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service *svcConfig
}

type svcConfig struct {
	LogLevel string `envconfig:"FOOTPRINT_LOG_LEVEL" default:"warn"`
	Profile  string `envconfig:"FOOTPRINT_PROFILE" default:""`
	Output   string `envconfig:"FOOTPRINT_OUTPUT" default:"text"`
}

// New returns the process wide configuration, reading the environment on first use.
func New() (*Config, error) {
	if singleConfig == nil {
		cfg, err := Load()
		if err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// Load reads the configuration from the environment without caching it.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
