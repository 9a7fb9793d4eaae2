package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return errors.New("api.key is required")
	}

	if c.API.Environment != "paper" && c.API.Environment != "live" {
		return fmt.Errorf("api.environment must be \"paper\" or \"live\", got %q", c.API.Environment)
	}

	if c.API.Timeout < 0 {
		return errors.New("api.timeout must be >= 0")
	}

	return nil
}
