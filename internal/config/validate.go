package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.CatalogPath == "" {
		return errors.New("paths.catalog_path must be set")
	}
	if c.Paths.PinDBPath == "" {
		return errors.New("paths.pin_db_path must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	scores := []struct {
		key   string
		value float64
	}{
		{"matching.auto_accept_score", c.Matching.AutoAcceptScore},
		{"matching.auto_accept_margin", c.Matching.AutoAcceptMargin},
		{"matching.preselect_score", c.Matching.PreselectScore},
		{"matching.preselect_margin", c.Matching.PreselectMargin},
	}
	for _, score := range scores {
		if score.value < 0 || score.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1", score.key)
		}
	}
	if c.Matching.YearTolerance < 0 {
		return errors.New("matching.year_tolerance must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
