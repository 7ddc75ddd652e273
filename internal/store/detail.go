package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/seedtail/notefold/internal/appdir"
)

// emptyDetail is returned when a todo folder has no detail document yet.
const emptyDetail = "{}"

// CreateFolder creates a fresh UUID-named todo folder under dataPath,
// including its assets subdirectory, and returns the folder name. The
// assets directory exists by the time this returns.
func (s *Store) CreateFolder(dataPath string) (string, error) {
	name := uuid.NewString()

	folder := filepath.Join(dataPath, name)
	if err := os.MkdirAll(folder, dirPerm); err != nil {
		return "", fmt.Errorf("create todo folder %q: %w", folder, err)
	}

	assets := filepath.Join(folder, appdir.AssetsDir)
	if err := os.MkdirAll(assets, dirPerm); err != nil {
		return "", fmt.Errorf("create assets dir %q: %w", assets, err)
	}

	return name, nil
}

// SaveDetail writes a todo's detail document verbatim. The payload is
// opaque to this layer. The folder must already exist.
func (s *Store) SaveDetail(dataPath, folderName, content string) error {
	path := appdir.DetailPath(dataPath, folderName)
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write todo detail %q: %w", path, err)
	}
	return nil
}

// Detail reads a todo's detail document verbatim. A folder with no detail
// document yields the literal "{}" rather than an error.
func (s *Store) Detail(dataPath, folderName string) (string, error) {
	path := appdir.DetailPath(dataPath, folderName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return emptyDetail, nil
	}
	if err != nil {
		return "", fmt.Errorf("read todo detail %q: %w", path, err)
	}
	return string(data), nil
}
