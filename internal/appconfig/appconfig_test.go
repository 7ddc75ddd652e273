// Package appconfig tests application configuration persistence.
package appconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/seedtail/notefold/internal/appdir"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "no-such-dir"), nil)

	cfg := s.Load()
	if cfg.Language != DefaultLanguage {
		t.Errorf("Language: got %q, want %q", cfg.Language, DefaultLanguage)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.FontFamily != DefaultFontFamily {
		t.Errorf("FontFamily: got %q, want %q", cfg.FontFamily, DefaultFontFamily)
	}
	if cfg.FontSize != DefaultFontSize {
		t.Errorf("FontSize: got %d, want %d", cfg.FontSize, DefaultFontSize)
	}
	if cfg.TextColorLight != DefaultTextColorLight {
		t.Errorf("TextColorLight: got %q", cfg.TextColorLight)
	}
	if cfg.TextColorDark != DefaultTextColorDark {
		t.Errorf("TextColorDark: got %q", cfg.TextColorDark)
	}
	if cfg.LaunchAtLogin {
		t.Error("LaunchAtLogin should default to false")
	}
}

func TestLoadDefaultsWhenCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(appdir.ConfigPath(dir), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := NewStore(dir, nil).Load()
	if cfg.Language != DefaultLanguage {
		t.Errorf("corrupt config should yield defaults, got language %q", cfg.Language)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	s := NewStore(dir, nil)

	want := Config{
		DataPath:       "/tmp/notefold-data",
		Language:       "en-US",
		Theme:          "dark",
		FontFamily:     "Menlo",
		FontSize:       16,
		TextColorLight: "#000000",
		TextColorDark:  "#ffffff",
		LaunchAtLogin:  true,
	}

	// Save must create the config directory.
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := s.Load()
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestSavedFileUsesSnakeCase(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, nil)

	if err := s.Save(s.Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(appdir.ConfigPath(dir))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, key := range []string{
		"data_path", "language", "theme", "font_family",
		"font_size", "text_color_light", "text_color_dark", "launch_at_login",
	} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in saved config", key)
		}
	}
}

func TestLaunchAtLoginDefaultsFalseWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	// A config written before launch_at_login existed.
	legacy := `{"data_path":"/d","language":"zh-CN","theme":"light","font_family":"Arial","font_size":14,"text_color_light":"#333333","text_color_dark":"#e5e5e5"}`
	if err := os.WriteFile(appdir.ConfigPath(dir), []byte(legacy), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := NewStore(dir, nil).Load()
	if cfg.LaunchAtLogin {
		t.Error("LaunchAtLogin should be false when absent from the file")
	}
	if cfg.DataPath != "/d" {
		t.Errorf("DataPath: got %q, want /d", cfg.DataPath)
	}
}
