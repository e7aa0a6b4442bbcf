package cli

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// captureOutput captures stdout during the execution of f.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = old
	return <-done
}

// useHome points commands at a fresh home directory and stubs the editor.
// It returns the home path.
func useHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	homeFlag = home
	editor := runEditor
	runEditor = func(string, string) error { return nil }
	t.Cleanup(func() {
		homeFlag = ""
		runEditor = editor
	})
	return home
}

// editWith stubs the editor to replace the edited file with content.
func editWith(t *testing.T, content string) *[]string {
	t.Helper()

	var edited []string
	runEditor = func(_ string, path string) error {
		edited = append(edited, path)
		return os.WriteFile(path, []byte(content), 0o644)
	}
	return &edited
}
