// Package appconfig reads and writes the singleton application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/seedtail/notefold/internal/appdir"
	"github.com/seedtail/notefold/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Default values.
const (
	DefaultLanguage       = "zh-CN"
	DefaultTheme          = "light"
	DefaultFontFamily     = "Arial"
	DefaultFontSize       = 14
	DefaultTextColorLight = "#333333"
	DefaultTextColorDark  = "#e5e5e5"
)

// Config holds user-configurable application settings persisted to disk.
// One instance exists per installation, at a fixed path outside the
// relocatable data directory.
type Config struct {
	DataPath       string `json:"data_path"`
	Language       string `json:"language"`
	Theme          string `json:"theme"`
	FontFamily     string `json:"font_family"`
	FontSize       uint   `json:"font_size"`
	TextColorLight string `json:"text_color_light"`
	TextColorDark  string `json:"text_color_dark"`
	LaunchAtLogin  bool   `json:"launch_at_login"`
}

// Store reads and writes the config file within a fixed config directory.
type Store struct {
	configDir string
	logger    *log.Logger
}

// NewStore creates a Store rooted at configDir. A nil logger discards
// diagnostics.
func NewStore(configDir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{configDir: configDir, logger: logger}
}

// Default returns the configuration used when no config file exists. The
// data path defaults to the OS application-data location; when that cannot
// be resolved it is left empty for the caller to fill in.
func (s *Store) Default() Config {
	dataPath, err := appdir.DefaultDataDir()
	if err != nil {
		s.logger.Warn("resolve default data dir", "err", err)
		dataPath = ""
	}
	return Config{
		DataPath:       dataPath,
		Language:       DefaultLanguage,
		Theme:          DefaultTheme,
		FontFamily:     DefaultFontFamily,
		FontSize:       DefaultFontSize,
		TextColorLight: DefaultTextColorLight,
		TextColorDark:  DefaultTextColorDark,
		LaunchAtLogin:  false,
	}
}

// Load reads the config file. A missing or unparsable file yields the
// defaults; the underlying error is logged but never surfaced, so a corrupt
// config can never block the user.
func (s *Store) Load() Config {
	path := appdir.ConfigPath(s.configDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read config, using defaults", "path", path, "err", err)
		}
		return s.Default()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.logger.Warn("parse config, using defaults", "path", path, "err", err)
		return s.Default()
	}
	return cfg
}

// Save writes the config to disk, creating the config directory if needed.
func (s *Store) Save(cfg Config) error {
	path := appdir.ConfigPath(s.configDir)

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create config dir %q: %w", filepath.Dir(path), err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	return nil
}
