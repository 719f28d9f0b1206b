// Package config defines the client configuration and how it is loaded.
//
// Conventions:
// - New returns a Config populated with defaults.
// - Load layers a YAML file and XENDIT_* environment variables on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"time"
)

// Default values.
const (
	DefaultBaseURL   = "https://api.xendit.co"
	DefaultTimeoutMS = 30_000
)

// Config contains process configuration.
type Config struct {
	// SecretKey is the Xendit API secret used for Basic authentication.
	SecretKey string `koanf:"secret_key"`

	// BaseURL is the API host, e.g. "https://api.xendit.co".
	BaseURL string `koanf:"base_url"`

	// TimeoutMS bounds every API round trip.
	TimeoutMS int `koanf:"timeout_ms"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// ForUserID is the default sub-account for endpoints that accept for-user-id.
	ForUserID string `koanf:"for_user_id"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		TimeoutMS: DefaultTimeoutMS,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Timeout returns TimeoutMS as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
