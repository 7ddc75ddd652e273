// Package config handles runtime configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/seedtail/notefold/internal/appdir"
)

// Default values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the backend binary's own runtime configuration. This is the
// tool's config, distinct from the application-level config.json owned by
// the UI: it controls where that file lives and how the process logs.
type Config struct {
	// ConfigDir is the fixed application-config directory holding config.json.
	ConfigDir string `toml:"config_dir"`

	// DataDir overrides the data directory for CLI commands that need one
	// and are given none. Normally the data path comes from config.json.
	DataDir string `toml:"data_dir"`

	// Logging configuration.
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (notefold.toml in the OS config dir)
// 3. Environment variables
// 4. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	setDefaults(cfg)

	userConfigFile := findUserConfigFile()
	if userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", userConfigFile, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	finalize(cfg)
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false

	if dir, err := appdir.ConfigDir(); err == nil {
		cfg.ConfigDir = dir
	}
}

func findUserConfigFile() string {
	dir, err := appdir.ConfigDir()
	if err != nil {
		return ""
	}
	path := appdir.ToolConfigPath(dir)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.ConfigDir, "config-dir", cfg.ConfigDir, "Application config directory")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Data directory override")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error|fatal)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in logs")

	return fs.Parse(args)
}

func finalize(cfg *Config) {
	cfg.ConfigDir = expandPath(cfg.ConfigDir)
	cfg.DataDir = expandPath(cfg.DataDir)
}
