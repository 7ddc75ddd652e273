package config

import "os"

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("NOTEFOLD_CONFIG_DIR"); v != "" {
		cfg.ConfigDir = v
	}
	if v := os.Getenv("NOTEFOLD_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("NOTEFOLD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("NOTEFOLD_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("NOTEFOLD_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
}

func boolFromString(v string) bool {
	switch v {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
