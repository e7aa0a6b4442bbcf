package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/tur/internal/execution"
	"github.com/thruflo/tur/internal/level"
	"github.com/thruflo/tur/internal/program"
)

func TestFrame_Pending(t *testing.T) {
	t.Parallel()

	le := execution.NewLevelExecution(level.NightTime(), program.JustStop())
	lines := Frame(le, RenderOptions{Window: 16})

	require.NotEmpty(t, lines)
	assert.Equal(t, "Night time / Just stop", lines[0])
	assert.Equal(t, "case 1/2  card: "+program.JustStop().Cards[0].Name+"  step: 0", lines[1])
	assert.Contains(t, lines, "total steps: 0")

	out := strings.Join(lines, "\n")
	assert.Contains(t, out, "case 1   Pending")
	assert.Contains(t, out, "case 2   Pending")
	assert.Contains(t, out, CellOn)
}

func TestFrame_Finished(t *testing.T) {
	t.Parallel()

	le := execution.NewLevelExecution(level.NightTime(), program.JustStop())
	for !le.IsTerminated() {
		le.Step()
	}
	out := strings.Join(Frame(le, RenderOptions{}), "\n")

	assert.Contains(t, out, "case 1   Failure")
	assert.Contains(t, out, "case 2   Failure")
	assert.Contains(t, out, "expected position 3 to be off, but it was on")
	assert.Contains(t, out, "expected position 6 to be off, but it was on")
	assert.Contains(t, out, "total steps: 2")
	assert.NotContains(t, out, "card:")
	assert.NotContains(t, out, "\033[")
}

func TestFrame_IndexOffset(t *testing.T) {
	t.Parallel()

	lvl, err := level.NightTime().FromCase(1)
	require.NoError(t, err)
	le := execution.NewLevelExecution(lvl, program.JustStop())

	out := strings.Join(Frame(le, RenderOptions{IndexOffset: 1}), "\n")
	assert.Contains(t, out, "case 2/2")
	assert.Contains(t, out, "case 2   Pending")
	assert.NotContains(t, out, "case 1 ")
}

func TestFrame_Color(t *testing.T) {
	t.Parallel()

	le := execution.NewLevelExecution(level.Sandbox(), program.JustStop())
	le.Step()
	out := strings.Join(Frame(le, RenderOptions{Color: true}), "\n")
	assert.Contains(t, out, FgGreen+"Success")
}

func TestRenderer_NonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewRenderer(&buf, RenderOptions{Color: true, Clear: true})
	le := execution.NewLevelExecution(level.Sandbox(), program.JustStop())

	r.Begin()
	require.NoError(t, r.Render(le))
	r.End()

	out := buf.String()
	assert.NotContains(t, out, ClearScreen)
	assert.NotContains(t, out, CursorHide)
	assert.Contains(t, out, "Sandbox / Just stop")
	assert.True(t, strings.HasSuffix(out, "total steps: 0\n"))
}
