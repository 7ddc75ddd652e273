// Package appdir provides constants and utilities for the notefold on-disk layout.
package appdir

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the directory name used under OS config/data roots.
	AppName = "notefold"

	// ConfigFile is the application configuration file name (inside the config dir).
	ConfigFile = "config.json"

	// IndexFile is the todo index file name (inside the data dir).
	IndexFile = "todos.json"

	// DetailFile is the per-todo detail file name (inside a todo folder).
	DetailFile = "content.json"

	// AssetsDir is the asset subdirectory name (inside a todo folder).
	AssetsDir = "assets"

	// ToolConfigFile is the backend's own runtime config file name.
	ToolConfigFile = "notefold.toml"
)

// ConfigDir returns the fixed application-config directory. The config
// directory is never part of a data-directory move.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// DefaultDataDir returns the default data directory used when the
// application config carries no data_path yet. Falls back to the config
// root when no better location exists.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName, "data"), nil
}

// ConfigPath returns the full path to the application config file.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, ConfigFile)
}

// IndexPath returns the full path to the todo index file within a data directory.
func IndexPath(dataDir string) string {
	return filepath.Join(dataDir, IndexFile)
}

// DetailPath returns the full path to a todo's detail file.
func DetailPath(dataDir, folderName string) string {
	return filepath.Join(dataDir, folderName, DetailFile)
}

// AssetsPath returns the full path to a todo's asset directory.
func AssetsPath(dataDir, folderName string) string {
	return filepath.Join(dataDir, folderName, AssetsDir)
}

// ToolConfigPath returns the full path to the runtime config file.
func ToolConfigPath(configDir string) string {
	return filepath.Join(configDir, ToolConfigFile)
}
