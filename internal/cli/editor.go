package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// runEditor opens path in editor and waits for it to exit.
// It can be overridden in tests.
var runEditor = func(editor, path string) error {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return fmt.Errorf("no editor configured")
	}
	c := exec.Command(fields[0], append(fields[1:], path)...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed to run editor %q: %w", editor, err)
	}
	return nil
}

// editAndValidate opens path in the configured editor, then decodes the
// file to report any problems left in it.
func editAndValidate(env *environment, path string, validate func([]byte) error) error {
	if err := runEditor(env.cfg.ResolveEditor(), path); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := validate(data); err != nil {
		return fmt.Errorf("%s was saved but is not valid (run edit again to fix it): %w", path, err)
	}
	return nil
}
