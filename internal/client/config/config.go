package config

import "time"

// Config holds runtime settings for the SciCon CLI.
//
// Fields:
//   - BaseURL: base URL of the SciCon backend REST API.
//   - StoragePath: path to the local sqlite file holding the session store.
//   - RequestTimeout: per-request timeout applied by the API client.
type Config struct {
	BaseURL        string
	StoragePath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000"
	c.StoragePath = "scicon.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
