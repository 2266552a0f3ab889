package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nkaya/mixplan/pkg/domain/entities"
)

// FileStore persists the snapshot to a single file. Saves go through a
// temp file and rename so a crash mid-write cannot corrupt the data file.
type FileStore struct {
	path string
}

// NewFileStore creates a file store for the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the data file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and parses the snapshot file. A missing file is a fresh
// workspace and yields an empty snapshot, not an error.
func (s *FileStore) Load() (*entities.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &entities.Snapshot{
				Materials: []*entities.Material{},
				Recipes:   []*entities.Recipe{},
				Logs:      []*entities.ProductionLog{},
			}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", s.path, err)
	}

	snapshot, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot file %s: %w", s.path, err)
	}
	return snapshot, nil
}

// Save atomically writes the snapshot to the data file
func (s *FileStore) Save(snapshot *entities.Snapshot) error {
	data, err := Marshal(snapshot)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".mixplan-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}
