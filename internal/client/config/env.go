package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv does not overwrite).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SCICON_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SCICON_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("SCICON_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
