package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thruflo/tur/internal/config"
	"github.com/thruflo/tur/internal/store"
)

// SetupTestHome creates a temporary tur home with its directories and a
// config.yaml using test defaults. Returns the home path and a Store.
// The directory is automatically cleaned up when the test completes.
func SetupTestHome(t *testing.T) (string, *store.Store) {
	t.Helper()

	home := t.TempDir()
	st := store.NewStore(home)
	require.NoError(t, st.Init())

	cfg := config.DefaultConfig()
	cfg.Run.MaxSteps = 1000
	cfg.Run.StepDelayMS = 0
	require.NoError(t, config.SaveConfig(home, &cfg))

	return home, st
}

// MustMarshalJSON marshals a value to JSON, failing the test on error.
// Uses indented format for readability.
func MustMarshalJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	return data
}

// MustUnmarshalJSON unmarshals JSON data into v, failing the test on error.
func MustUnmarshalJSON(t *testing.T, data []byte, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, v))
}

// WriteTestFile writes content to a file in the test directory.
// Creates parent directories as needed.
func WriteTestFile(t *testing.T, basePath, relativePath string, content []byte) {
	t.Helper()
	fullPath := filepath.Join(basePath, relativePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, content, 0o644))
}
