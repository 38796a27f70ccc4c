// Package config provides configuration management for the kabidiff
// CLI: defaults, an optional kabidiff.yaml file, KABIDIFF_ environment
// variables and command-line flags, in ascending precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	Suffix       string `koanf:"suffix"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultSuffix = ".symtypes"
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
