package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/s0up4200/modrinth-go/openapi"
)

// EnvPrefix prefixes environment overrides, e.g. MODRINTH_API_TOKEN
const EnvPrefix = "MODRINTH"

// Load loads the configuration. With an empty path the standard locations
// are searched and a missing file is not an error: defaults and environment
// variables still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".modrinth-go"))
		}

		v.AddConfigPath("/etc/modrinth-go/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key gets a default so
// that environment overrides are picked up on unmarshal.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.url", openapi.DefaultBaseURL)
	v.SetDefault("api.token", "")
	v.SetDefault("api.token_prefix", "")
	v.SetDefault("api.user_agent", openapi.DefaultUserAgent)
	v.SetDefault("api.timeout", 30*time.Second)

	// Debug defaults
	v.SetDefault("debug.enabled", false)
	v.SetDefault("debug.file", "")

	// Filter defaults
	v.SetDefault("filter.default", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// Configuration converts the API and debug sections into client settings
func (c *Config) Configuration() *openapi.Configuration {
	opts := []openapi.ConfigOption{
		openapi.WithBaseURL(c.API.URL),
		openapi.WithUserAgent(c.API.UserAgent),
		openapi.WithAPIKey(openapi.HeaderAuthorization, c.API.Token),
		openapi.WithAPIKeyPrefix(openapi.HeaderAuthorization, c.API.TokenPrefix),
	}

	if c.Debug.Enabled {
		opts = append(opts, openapi.WithDebugFile(c.Debug.File))
	}

	return openapi.NewConfiguration(opts...)
}
