package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Output formats understood by the report package.
var outputFormats = map[string]bool{"text": true, "json": true, "yaml": true}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if !outputFormats[c.Output] {
		return fmt.Errorf("output: unknown format %q", c.Output)
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr: must not be empty")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes: must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}
