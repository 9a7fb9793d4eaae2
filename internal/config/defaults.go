package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultEnvironment = "paper"
	DefaultTimeout     = 10 * time.Second
)

func (c *Config) applyDefaults() {
	if c.API.Environment == "" {
		c.API.Environment = DefaultEnvironment
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultTimeout
	}
}
