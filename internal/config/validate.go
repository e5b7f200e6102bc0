package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. The OMDb API key is not
// required here because only the add path needs it; the CLI reports a
// configuration error when an enrichment lookup is attempted without one.
func (c *Config) Validate() error {
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.FuzzyThreshold < 0 || c.Search.FuzzyThreshold > 100 {
		return errors.New("search.fuzzy_threshold must be between 0 and 100")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
