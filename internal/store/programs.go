package store

import (
	"fmt"
	"path/filepath"

	"github.com/thruflo/tur/internal/document"
	"github.com/thruflo/tur/internal/program"
)

func (s *Store) programsDir() string {
	return filepath.Join(s.basePath, programsDir)
}

// ProgramPath returns the file a program with this name is stored in.
func (s *Store) ProgramPath(name string) string {
	return filepath.Join(s.programsDir(), fileName(name))
}

// ProgramExists checks if a program file exists for name.
func (s *Store) ProgramExists(name string) bool {
	return exists(s.ProgramPath(name))
}

// ListPrograms decodes every stored program. Invalid files are returned
// with their error instead of failing the whole listing.
func (s *Store) ListPrograms() ([]Entry[*program.Program], error) {
	return listDocuments(s.programsDir(), document.DecodeProgram)
}

// GetProgram reads and validates the program called name.
func (s *Store) GetProgram(name string) (*program.Program, error) {
	return getDocument(s.programsDir(), "program", name, document.DecodeProgram,
		func(p *program.Program) string { return p.Name })
}

// SaveProgram writes p, replacing any existing file.
func (s *Store) SaveProgram(p *program.Program) error {
	data, err := document.EncodeProgram(p)
	if err != nil {
		return err
	}
	return writeFile(s.ProgramPath(p.Name), data, false)
}

// CreateProgram writes a starter document for a new program and returns
// its path. It fails with ErrExists if the file is already there.
func (s *Store) CreateProgram(name string) (string, error) {
	data, err := document.ProgramTemplate(name)
	if err != nil {
		return "", err
	}
	path := s.ProgramPath(name)
	if err := writeFile(path, data, true); err != nil {
		return "", fmt.Errorf("program %q: %w", name, err)
	}
	return path, nil
}

// DeleteProgram removes the program file for name.
func (s *Store) DeleteProgram(name string) error {
	return removeFile(s.ProgramPath(name), "program", name)
}
