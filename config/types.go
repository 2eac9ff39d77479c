package config

import (
	"time"
)

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Debug   DebugConfig   `mapstructure:"debug"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds Modrinth API connection details
type APIConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
	// Token is a personal access token, sent verbatim in the Authorization header
	Token       string        `mapstructure:"token"`
	TokenPrefix string        `mapstructure:"token_prefix"`
	UserAgent   string        `mapstructure:"user_agent" validate:"required"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// DebugConfig controls wire dumps of every request and response
type DebugConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// File receives the dumps in append mode; stderr when empty
	File string `mapstructure:"file"`
}

// FilterConfig contains named notification filters
type FilterConfig struct {
	// Default names the preset applied when no filter is given
	Default string            `mapstructure:"default"`
	Presets map[string]string `mapstructure:"presets" validate:"dive,keys,required,endkeys,required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	Color  bool   `mapstructure:"color"`
}
