// Package store persists the todo index and per-todo detail documents.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/seedtail/notefold/internal/appdir"
	"github.com/seedtail/notefold/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store persists todo data beneath a caller-supplied data directory. Every
// operation takes the data path explicitly so the store can run against
// temporary directories in tests and follow the user's configured location
// at runtime.
type Store struct {
	logger *log.Logger
}

// New creates a Store. A nil logger discards diagnostics.
func New(logger *log.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{logger: logger}
}

// Todos reads the todo index from dataPath. A missing or unparsable index
// yields an empty sequence; the underlying error is logged but never
// surfaced. Order is preserved exactly as stored.
func (s *Store) Todos(dataPath string) []TodoItem {
	path := appdir.IndexPath(dataPath)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read todo index, using empty list", "path", path, "err", err)
		}
		return []TodoItem{}
	}

	if err := ValidateIndex(data); err != nil {
		s.logger.Warn("todo index failed schema check", "path", path, "err", err)
	}

	var todos []TodoItem
	if err := json.Unmarshal(data, &todos); err != nil {
		s.logger.Warn("parse todo index, using empty list", "path", path, "err", err)
		return []TodoItem{}
	}
	if todos == nil {
		todos = []TodoItem{}
	}
	return todos
}

// SaveTodos writes the todo index to dataPath, creating the directory if
// needed. The sequence is stored verbatim, no sorting.
func (s *Store) SaveTodos(dataPath string, todos []TodoItem) error {
	if todos == nil {
		todos = []TodoItem{}
	}

	data, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("marshal todo index: %w", err)
	}

	if err := ValidateIndex(data); err != nil {
		return err
	}

	if err := os.MkdirAll(dataPath, dirPerm); err != nil {
		return fmt.Errorf("create data dir %q: %w", dataPath, err)
	}

	path := appdir.IndexPath(dataPath)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write todo index %q: %w", path, err)
	}
	return nil
}
