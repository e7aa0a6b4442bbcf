//go:build e2e

package integration

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thruflo/tur/internal/testutil"
)

const commandTimeout = 30 * time.Second

// CLIHarness runs a freshly built tur binary against a private home.
type CLIHarness struct {
	t      *testing.T
	binary string
	Home   string
}

type CLIResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (r *CLIResult) Success() bool {
	return r.ExitCode == 0 && r.Err == nil
}

func NewCLIHarness(t *testing.T) *CLIHarness {
	t.Helper()

	dir := t.TempDir()
	binary := filepath.Join(dir, "tur")
	build := exec.Command("go", "build", "-o", binary, "./cmd/tur")
	build.Dir = moduleRoot(t)
	out, err := build.CombinedOutput()
	require.NoError(t, err, "go build: %s", out)

	home := filepath.Join(dir, "home")
	require.NoError(t, os.MkdirAll(home, 0o755))
	return &CLIHarness{t: t, binary: binary, Home: home}
}

// Run executes tur with args. EDITOR is set to true so create and edit
// return immediately.
func (h *CLIHarness) Run(args ...string) *CLIResult {
	h.t.Helper()

	ctx, cancel := testutil.ContextWithTimeout(h.t, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, h.binary, args...)
	cmd.Env = append(os.Environ(), "TUR_HOME="+h.Home, "EDITOR=true", "VISUAL=")
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr

	res := &CLIResult{Err: cmd.Run()}
	res.Stdout, res.Stderr = stdout.String(), stderr.String()
	var exitErr *exec.ExitError
	switch {
	case errors.As(res.Err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	case res.Err != nil:
		res.ExitCode = -1
	}
	return res
}

func (h *CLIHarness) WriteHomeFile(rel, content string) {
	h.t.Helper()
	path := filepath.Join(h.Home, rel)
	require.NoError(h.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(h.t, os.WriteFile(path, []byte(content), 0o644))
}

func (h *CLIHarness) RequireSuccess(res *CLIResult) {
	h.t.Helper()
	if !res.Success() {
		h.t.Fatalf("tur failed: exit=%d err=%v\nstdout: %s\nstderr: %s",
			res.ExitCode, res.Err, res.Stdout, res.Stderr)
	}
}

func (h *CLIHarness) RequireFailure(res *CLIResult) {
	h.t.Helper()
	if res.Success() {
		h.t.Fatalf("tur succeeded unexpectedly\nstdout: %s", res.Stdout)
	}
}

func moduleRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found")
		dir = parent
	}
}
