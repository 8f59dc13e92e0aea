// Package config provides configuration management for the nblint CLI.
//
// Configuration is resolved from four layers, lowest to highest precedence:
// built-in defaults, an optional nblint.yaml file, NBLINT_* environment
// variables, and CLI flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Interpreter  string `koanf:"interpreter"`
	EnvFile      string `koanf:"env_file"`
	Notebook     string `koanf:"notebook"`
	Strict       bool   `koanf:"strict"`
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultInterpreter = "python3"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
