// Package config holds runtime settings for the accountkeeper CLI and
// the defaults/JSON/flags overlay used to load them.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - IAMBaseURL: base URL of the authentication surface.
//   - AccountsBaseURL: base URL of the account service.
//   - RequestTimeout: end-to-end bound on each HTTP request.
//   - OnlineCheckInterval: how often the client probes backend liveness.
//   - DatabasePath: location of the local session database.
type Config struct {
	IAMBaseURL          string
	AccountsBaseURL     string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	DatabasePath        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.IAMBaseURL = "http://localhost:8000/api/iam"
	c.AccountsBaseURL = "http://localhost:5000/facebook"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "accountkeeper.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from JSON (if a config file was given) and command-line
// flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
