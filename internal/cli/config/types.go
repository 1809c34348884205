// Package config provides configuration management for the opcalc CLI.
//
// Configuration only shapes how the CLI presents results. Operations
// themselves take no configuration.
package config

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string `koanf:"output"`
	Precision    int    `koanf:"precision"`
	Verbose      bool   `koanf:"verbose"`
	LogLevel     string `koanf:"log_level"`
}

// Default configuration values.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultPrecision = 6      // Significant digits, matching %g
	DefaultLogLevel  = "warn"
)

// ShortestPrecision asks for the fewest digits that round-trip the value.
const ShortestPrecision = -1

// ValidOutputFormats lists the accepted values for the output option.
var ValidOutputFormats = []string{"auto", "text", "markdown", "json", "yaml", "plain"}

// ValidLogLevels lists the accepted values for the log_level option.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}
