package config

import "time"

// Config is the root configuration for the apitest tool.
type Config struct {
	API APIConfig `yaml:"api"`
}

// APIConfig holds lemon.markets API settings.
type APIConfig struct {
	Key         string        `yaml:"key"`         // Trading API key (bearer token)
	Environment string        `yaml:"environment"` // "paper" or "live"
	BaseURL     string        `yaml:"base_url"`    // Optional override, mainly for testing
	Timeout     time.Duration `yaml:"timeout"`
}
