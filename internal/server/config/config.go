// Package config handles configuration for the bookshop server,
// including defaults, a JSON/YAML file overlay, environment and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the bookshop server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - SecretKey: HMAC secret for signing session tokens (HS256). The default
//     is a fixed lab value and must be overridden in production.
//   - TokenValidityDuration: lifetime of a session token.
//   - BooksFile: optional YAML/JSON catalog used instead of the built-in seed.
//   - LogBackend: "slog" (JSON to stdout) or "zap".
type Config struct {
	EndpointAddr          string
	SecretKey             string
	TokenValidityDuration time.Duration
	BooksFile             string
	LogBackend            string
}

const (
	LogBackendSlog = "slog"
	LogBackendZap  = "zap"
)

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.SecretKey = "replace_with_a_strong_secret_for_prod"
	c.TokenValidityDuration = 1 * time.Hour
	c.BooksFile = ""
	c.LogBackend = LogBackendSlog
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file, the PORT environment variable and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
