// Package config provides configuration management for the clisp CLI
// and REPL. Configuration is loaded from TOML files with embedded
// defaults.
package config

// Config is the root configuration structure.
type Config struct {
	REPL REPLConfig `mapstructure:"repl"`
}

// REPLConfig holds interactive-session settings.
type REPLConfig struct {
	Verbose bool   `mapstructure:"verbose"`
	Prompt  string `mapstructure:"prompt"`
	Color   bool   `mapstructure:"color"`
}
