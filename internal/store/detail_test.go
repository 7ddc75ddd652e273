// Package store tests todo folder and detail persistence.
package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/seedtail/notefold/internal/appdir"
)

func TestCreateFolder(t *testing.T) {
	dir := t.TempDir()
	s := New(nil)

	name, err := s.CreateFolder(dir)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	if _, err := uuid.Parse(name); err != nil {
		t.Errorf("folder name %q is not a UUID: %v", name, err)
	}

	// The assets directory exists immediately after return.
	info, err := os.Stat(appdir.AssetsPath(dir, name))
	if err != nil {
		t.Fatalf("stat assets dir: %v", err)
	}
	if !info.IsDir() {
		t.Error("assets is not a directory")
	}

	entries, err := os.ReadDir(appdir.AssetsPath(dir, name))
	if err != nil {
		t.Fatalf("read assets dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("assets dir should start empty, has %d entries", len(entries))
	}
}

func TestCreateFolderUniqueNames(t *testing.T) {
	dir := t.TempDir()
	s := New(nil)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		name, err := s.CreateFolder(dir)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		if seen[name] {
			t.Fatalf("duplicate folder name %q", name)
		}
		seen[name] = true
	}
}

func TestDetailDefault(t *testing.T) {
	dir := t.TempDir()
	s := New(nil)

	name, err := s.CreateFolder(dir)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	got, err := s.Detail(dir, name)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if got != "{}" {
		t.Errorf("missing detail: got %q, want {}", got)
	}
}

func TestSaveAndReadDetailVerbatim(t *testing.T) {
	dir := t.TempDir()
	s := New(nil)

	name, err := s.CreateFolder(dir)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	// The payload is opaque; whitespace and field order must survive.
	content := "{\n  \"blocks\": [1, 2, 3]\n}"
	if err := s.SaveDetail(dir, name, content); err != nil {
		t.Fatalf("SaveDetail: %v", err)
	}

	got, err := s.Detail(dir, name)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if got != content {
		t.Errorf("detail round trip: got %q, want %q", got, content)
	}
}

func TestSaveDetailMissingFolder(t *testing.T) {
	dir := t.TempDir()
	s := New(nil)

	err := s.SaveDetail(dir, "no-such-folder", "{}")
	if err == nil {
		t.Error("SaveDetail into a missing folder should fail")
	}
}

func TestDetailForMissingFolder(t *testing.T) {
	s := New(nil)

	// A folder that never existed still yields the default document.
	got, err := s.Detail(filepath.Join(t.TempDir(), "data"), "ghost")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if got != "{}" {
		t.Errorf("got %q, want {}", got)
	}
}
