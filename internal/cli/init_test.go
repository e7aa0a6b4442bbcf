package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/tur/internal/config"
)

func TestInitCommand(t *testing.T) {
	home := useHome(t)
	initForce = false

	output := captureOutput(func() {
		require.NoError(t, runInit(initCmd, nil))
	})
	assert.Contains(t, output, "Initialized tur home at "+home)

	for _, dir := range []string{"programs", "levels", "results"} {
		info, err := os.Stat(filepath.Join(home, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), *cfg)
}

func TestInitCommand_KeepsExistingConfig(t *testing.T) {
	home := useHome(t)
	initForce = false
	defer func() { initForce = false }()

	cfg := config.DefaultConfig()
	cfg.Run.MaxSteps = 42
	require.NoError(t, config.SaveConfig(home, &cfg))

	output := captureOutput(func() {
		require.NoError(t, runInit(initCmd, nil))
	})
	assert.Contains(t, output, "already initialized")

	loaded, err := config.LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), loaded.Run.MaxSteps)

	initForce = true
	output = captureOutput(func() {
		require.NoError(t, runInit(initCmd, nil))
	})
	assert.Contains(t, output, "Reset config")

	loaded, err = config.LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, uint64(config.DefaultMaxSteps), loaded.Run.MaxSteps)
}
