package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(ValidOutputFormats, c.OutputFormat) {
		return fmt.Errorf("unknown output format %q (available: %s)",
			c.OutputFormat, strings.Join(ValidOutputFormats, ", "))
	}
	if c.Precision < ShortestPrecision {
		return fmt.Errorf("precision must be %d or greater, got %d", ShortestPrecision, c.Precision)
	}
	if !slices.Contains(ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("unknown log level %q (available: %s)",
			c.LogLevel, strings.Join(ValidLogLevels, ", "))
	}
	return nil
}

// SlogLevel maps the configured log level onto slog. Verbose forces debug.
func (c *Config) SlogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
