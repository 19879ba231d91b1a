package config

import "time"

// Config holds runtime settings for the bookshop demo client.
//
// Fields:
//   - ServerURL: base URL of the bookshop HTTP API.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - ISBN, Title, Author: the lookups the demo run performs.
//   - Review: also run the register/login/review scenario.
//   - Username, Password: credentials for the review scenario.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	ISBN           string
	Title          string
	Author         string
	Review         bool
	Username       string
	Password       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.ISBN = "9780143127741"
	c.Title = "Sapiens"
	c.Author = "Harari"
	c.Review = false
	c.Username = "bob"
	c.Password = "pw1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
