// Package config loads runtime settings for the storydeck CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
// defaults, JSON file (-c/-config), environment, command-line flags.
package config

import "time"

// Config holds runtime settings for the storydeck CLI.
type Config struct {
	// ServerBaseURL is the base URL of the bookmarking backend.
	ServerBaseURL string `env:"STORYDECK_SERVER_URL"`
	// RequestTimeout bounds every backend round-trip.
	RequestTimeout time.Duration `env:"STORYDECK_REQUEST_TIMEOUT"`
	// CredentialsDSN is the path of the local credential database.
	CredentialsDSN string `env:"STORYDECK_CREDENTIALS_DSN"`
	LogLevel       string `env:"STORYDECK_LOG_LEVEL"`
	LogPretty      bool   `env:"STORYDECK_LOG_PRETTY"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.CredentialsDSN = "storydeck.db"
	c.LogLevel = "info"
	c.LogPretty = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
