// Package migrate relocates the data directory tree between filesystem roots.
package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/seedtail/notefold/internal/appdir"
	"github.com/seedtail/notefold/internal/logging"
)

const dirPerm = 0o755

// Engine moves the contents of a data-directory root to a new root with
// copy-then-delete semantics. A native rename is not used because the
// destination may live on a different filesystem, which disallows rename
// across devices.
type Engine struct {
	logger *log.Logger
}

// New creates an Engine. A nil logger discards diagnostics.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Engine{logger: logger}
}

// Move relocates every entry of oldRoot into newRoot, excluding the
// application config file, which belongs to the config lifetime and never
// migrates with the data.
//
// The operation is not atomic: a failure partway through leaves some
// entries moved and others not. Re-invoking is safe, entries already moved
// no longer exist at oldRoot and are skipped, while files already present
// at newRoot are overwritten by the copy phase.
//
// No-op cases, all returning nil: identical roots, an empty root on either
// side, and a missing oldRoot.
func (e *Engine) Move(oldRoot, newRoot string) error {
	if oldRoot == newRoot || oldRoot == "" || newRoot == "" {
		return nil
	}
	if _, err := os.Stat(oldRoot); err != nil {
		// Nothing to migrate.
		return nil
	}

	if err := os.MkdirAll(newRoot, dirPerm); err != nil {
		return fmt.Errorf("create new directory %q: %w", newRoot, err)
	}

	entries, err := os.ReadDir(oldRoot)
	if err != nil {
		return fmt.Errorf("read old directory %q: %w", oldRoot, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == appdir.ConfigFile {
			continue
		}

		src := filepath.Join(oldRoot, name)
		dst := filepath.Join(newRoot, name)

		if entry.IsDir() {
			if err := copyTree(src, dst); err != nil {
				return fmt.Errorf("copy directory %q: %w", src, err)
			}
			if err := os.RemoveAll(src); err != nil {
				return fmt.Errorf("remove old directory %q: %w", src, err)
			}
		} else {
			if err := copyFile(src, dst); err != nil {
				return fmt.Errorf("copy file %q: %w", src, err)
			}
			if err := os.Remove(src); err != nil {
				return fmt.Errorf("remove old file %q: %w", src, err)
			}
		}
		e.logger.Debug("moved entry", "name", name, "from", oldRoot, "to", newRoot)
	}

	return nil
}

// copyTree recursively copies src into dst, creating dst and any missing
// parents first. The first I/O failure aborts the branch; partial trees are
// left for a later retry to overwrite.
func copyTree(src, dst string) error {
	if err := os.MkdirAll(dst, dirPerm); err != nil {
		return fmt.Errorf("create directory %q: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("read directory %q: %w", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file, preserving its mode. An existing
// destination file is overwritten.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %q: %w", src, err)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %q: %w", src, err)
	}

	if err := os.WriteFile(dst, data, info.Mode()); err != nil {
		return fmt.Errorf("write %q: %w", dst, err)
	}
	return nil
}
