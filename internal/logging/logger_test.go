package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The logger is package-level state, so these tests do not run in parallel.

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelWarn)
		require.NoError(t, Close())
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)

	Debug("hidden")
	Info("hidden")
	Warn("shown warn")
	Error("shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "shown error")

	buf.Reset()
	SetLevel(LevelDebug)
	Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestKeyValues(t *testing.T) {
	buf := capture(t)

	With("puzzle", "Night time").Warn("case failed", "case", 1, "steps", 4)

	out := buf.String()
	assert.Contains(t, out, `puzzle="Night time"`)
	assert.Contains(t, out, "case=1")
	assert.Contains(t, out, "steps=4")
	assert.Contains(t, out, "level=WARN")
}

func TestOpenFile_WritesJSON(t *testing.T) {
	buf := capture(t)
	path := filepath.Join(t.TempDir(), "tur.log")

	require.NoError(t, OpenFile(path))
	Error("run failed", "program", "Go right")
	require.NoError(t, Close())

	assert.Contains(t, buf.String(), "run failed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "run failed", record["msg"])
	assert.Equal(t, "Go right", record["program"])
	assert.Equal(t, "ERROR", record["level"])
}

func TestOpenFile_BadPath(t *testing.T) {
	capture(t)

	err := OpenFile(filepath.Join(t.TempDir(), "missing", "dir", "tur.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")

	assert.NotPanics(t, func() { Warn("still works") })
}

type failingCloser struct{ bytes.Buffer }

func (*failingCloser) Close() error { return errors.New("disk full") }

func TestClose_ReportsCloseError(t *testing.T) {
	capture(t)

	mu.Lock()
	file = &failingCloser{}
	current = build()
	mu.Unlock()

	err := Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to close log file: disk full")

	require.NoError(t, Close())
	assert.NotPanics(t, func() { Warn("still works") })
}
