package store

import (
	"fmt"
	"path/filepath"

	"github.com/thruflo/tur/internal/document"
	"github.com/thruflo/tur/internal/level"
)

func (s *Store) levelsDir() string {
	return filepath.Join(s.basePath, levelsDir)
}

// LevelPath returns the file a level with this name is stored in.
func (s *Store) LevelPath(name string) string {
	return filepath.Join(s.levelsDir(), fileName(name))
}

// LevelExists checks if a level file exists for name.
func (s *Store) LevelExists(name string) bool {
	return exists(s.LevelPath(name))
}

// ListLevels decodes every stored level. Invalid files are returned with
// their error instead of failing the whole listing.
func (s *Store) ListLevels() ([]Entry[*level.Level], error) {
	return listDocuments(s.levelsDir(), document.DecodeLevel)
}

// GetLevel reads and validates the level called name.
func (s *Store) GetLevel(name string) (*level.Level, error) {
	return getDocument(s.levelsDir(), "level", name, document.DecodeLevel,
		func(l *level.Level) string { return l.Name })
}

// SaveLevel writes l, replacing any existing file.
func (s *Store) SaveLevel(l *level.Level) error {
	data, err := document.EncodeLevel(l)
	if err != nil {
		return err
	}
	return writeFile(s.LevelPath(l.Name), data, false)
}

// CreateLevel writes a starter document for a new level and returns its
// path. It fails with ErrExists if the file is already there.
func (s *Store) CreateLevel(name string) (string, error) {
	data, err := document.LevelTemplate(name)
	if err != nil {
		return "", err
	}
	path := s.LevelPath(name)
	if err := writeFile(path, data, true); err != nil {
		return "", fmt.Errorf("level %q: %w", name, err)
	}
	return path, nil
}

// DeleteLevel removes the level file for name.
func (s *Store) DeleteLevel(name string) error {
	return removeFile(s.LevelPath(name), "level", name)
}
