package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/tur/internal/document"
	"github.com/thruflo/tur/internal/execution"
	"github.com/thruflo/tur/internal/runner"
	"github.com/thruflo/tur/internal/store"
	"github.com/thruflo/tur/internal/testutil"
)

// setRunFlags sets the run flags for one test and restores the defaults
// afterwards.
func setRunFlags(t *testing.T, headless bool, startCase int, maxSteps uint64) {
	t.Helper()

	runDelay = 0
	runHeadless = headless
	runStartCase = startCase
	runMaxSteps = maxSteps
	t.Cleanup(func() {
		runDelay = -1
		runHeadless = false
		runStartCase = 1
		runMaxSteps = 0
	})
}

func runAndCapture(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var err error
	output := captureOutput(func() {
		err = runRun(runCmd, args)
	})
	return output, err
}

func TestRunCommand_Passes(t *testing.T) {
	home := useHome(t)
	setRunFlags(t, true, 1, 0)

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	oldNow := now
	now = func() time.Time { return started }
	defer func() { now = oldNow }()

	output, err := runAndCapture(t, "Just stop", "Sandbox")
	require.NoError(t, err)
	assert.Contains(t, output, "Success")
	assert.Contains(t, output, "PASSED in 1 steps")

	records, err := store.NewStore(home).ListResults()
	require.NoError(t, err)
	require.Len(t, records, 1)
	r := records[0]
	assert.NotEmpty(t, r.ID)
	assert.True(t, r.Passed)
	assert.Equal(t, "completed", r.Reason)
	assert.True(t, started.Equal(r.StartedAt))
	assert.Equal(t, "Sandbox", r.Outcome.Level)
	assert.Equal(t, "Just stop", r.Outcome.Program)
}

func TestRunCommand_Animated(t *testing.T) {
	useHome(t)
	setRunFlags(t, false, 1, 0)

	output, err := runAndCapture(t, "Just stop", "Night time")
	require.ErrorIs(t, err, runner.ErrNotPassed)
	assert.Contains(t, err.Error(), "completed")

	assert.Contains(t, output, "total steps: 0")
	assert.Contains(t, output, "total steps: 2")
	assert.Contains(t, output, "expected position 3 to be off, but it was on")
	assert.Contains(t, output, "FAILED (completed) after 2 steps")
}

func TestRunCommand_MaxSteps(t *testing.T) {
	home := useHome(t)
	setRunFlags(t, true, 1, 25)

	output, err := runAndCapture(t, "Go right", "Sandbox")
	require.ErrorIs(t, err, runner.ErrNotPassed)
	assert.Contains(t, err.Error(), "max steps")
	assert.Contains(t, output, "Running")

	records, err := store.NewStore(home).ListResults()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Passed)
	assert.Equal(t, uint64(25), records[0].Outcome.TotalSteps)
}

func TestRunCommand_StartCase(t *testing.T) {
	home := useHome(t)
	setRunFlags(t, true, 2, 0)

	_, err := runAndCapture(t, "Just stop", "Night time")
	require.Error(t, err)

	records, err := store.NewStore(home).ListResults()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].StartCase)
	require.Len(t, records[0].Outcome.Cases, 1)
	assert.Equal(t, 1, records[0].Outcome.Cases[0].Index)
	assert.Equal(t, []string{"expected position 6 to be off, but it was on"}, records[0].Outcome.Cases[0].Errors)
}

func TestRunCommand_BadArguments(t *testing.T) {
	useHome(t)

	tests := []struct {
		name      string
		startCase int
		args      []string
		wantErr   string
	}{
		{"unknown program", 1, []string{"Nope", "Sandbox"}, `program "Nope": not found`},
		{"unknown level", 1, []string{"Just stop", "Nope"}, `level "Nope": not found`},
		{"start case zero", 0, []string{"Just stop", "Sandbox"}, "--start-case must be at least 1"},
		{"start case too large", 3, []string{"Just stop", "Night time"}, "--start-case 3 is out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRunFlags(t, true, tt.startCase, 0)
			_, err := runAndCapture(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunCommand_StoredDocuments(t *testing.T) {
	useHome(t)
	home, st := testutil.SetupTestHome(t)
	homeFlag = home
	setRunFlags(t, true, 1, 0)

	testutil.WriteTestFile(t, home, "programs/Broken.yaml", []byte(testutil.InvalidProgramYAML))
	testutil.WriteTestFile(t, home, "levels/Lights_out.yaml", []byte(testutil.SampleLevelYAML))

	_, err := runAndCapture(t, "Broken", "Sandbox")
	require.Error(t, err)
	assert.True(t, document.IsValidationError(err))

	_, err = runAndCapture(t, "Just stop", "Lights out")
	require.ErrorIs(t, err, runner.ErrNotPassed)

	records, err := st.ListResults()
	require.NoError(t, err)
	require.Len(t, records, 1)
	o := records[0].Outcome
	testutil.AssertCaseErrors(t, o, 0, "expected position 2 to be off, but it was on")
	testutil.AssertCaseErrors(t, o, 1,
		"expected position 0 to be off, but it was on",
		"expected position 1 to be off, but it was on")
	testutil.AssertCaseStatus(t, o, 2, execution.StatusSuccess)
}
