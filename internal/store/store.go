// Package store keeps programs, levels and run results under a data home:
//
//	<home>/programs/<name>.yaml
//	<home>/levels/<name>.yaml
//	<home>/results/<id>.json
//
// Program and level files are validated through internal/document on every
// read, so a file edited by hand into an invalid state is reported rather
// than executed.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// ErrExists is returned when creating a document whose file already exists.
var ErrExists = errors.New("already exists")

// ErrNotFound is returned when no stored document has the requested name.
var ErrNotFound = errors.New("not found")

const (
	programsDir = "programs"
	levelsDir   = "levels"
	resultsDir  = "results"
	docExt      = ".yaml"
)

// Store handles local program, level and result storage.
type Store struct {
	basePath string
}

// NewStore creates a new Store rooted at basePath.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// BasePath returns the data home.
func (s *Store) BasePath() string {
	return s.basePath
}

// Init creates the storage directories.
func (s *Store) Init() error {
	for _, dir := range []string{programsDir, levelsDir, resultsDir} {
		if err := os.MkdirAll(filepath.Join(s.basePath, dir), 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// fileName converts a document name to a safe file name.
// Path separators become "-" and whitespace becomes "_".
func fileName(name string) string {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == '/' || r == '\\':
			sb.WriteRune('-')
		case unicode.IsSpace(r):
			sb.WriteRune('_')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String() + docExt
}

// Entry is one stored document: either its decoded value or the error
// that prevented decoding it.
type Entry[T any] struct {
	File  string
	Value T
	Err   error
}

func listDocuments[T any](dir string, decode func([]byte) (T, error)) ([]Entry[T], error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry[T]{}, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	entries := []Entry[T]{}
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != docExt {
			continue
		}
		entry := Entry[T]{File: filepath.Join(dir, f.Name())}
		data, err := os.ReadFile(entry.File)
		if err != nil {
			entry.Err = fmt.Errorf("failed to read %s: %w", f.Name(), err)
		} else {
			entry.Value, entry.Err = decode(data)
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].File < entries[j].File })
	return entries, nil
}

// getDocument reads the file named after name. If there is none, it looks
// for a valid document carrying that name under another file name.
func getDocument[T any](dir, kind, name string, decode func([]byte) (T, error), nameOf func(T) string) (T, error) {
	var zero T
	data, err := os.ReadFile(filepath.Join(dir, fileName(name)))
	if err == nil {
		return decode(data)
	}
	if !os.IsNotExist(err) {
		return zero, fmt.Errorf("failed to read %s file: %w", kind, err)
	}

	entries, err := listDocuments(dir, decode)
	if err != nil {
		return zero, err
	}
	for _, e := range entries {
		if e.Err == nil && nameOf(e.Value) == name {
			return e.Value, nil
		}
	}
	return zero, fmt.Errorf("%s %q: %w", kind, name, ErrNotFound)
}

func writeFile(path string, data []byte, exclusive bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if exclusive {
		flags = os.O_CREATE | os.O_WRONLY | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return ErrExists
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func removeFile(path, kind, name string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %q: %w", kind, name, ErrNotFound)
		}
		return fmt.Errorf("failed to delete %s file: %w", kind, err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
