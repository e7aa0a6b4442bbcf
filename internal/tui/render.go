package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/thruflo/tur/internal/execution"
)

// DefaultWindow is the number of tape cells shown when none is configured.
const DefaultWindow = 64

// RenderOptions controls how a level execution is drawn.
type RenderOptions struct {
	// Window is the number of tape cells shown around the head.
	Window int
	// Color enables ANSI styling.
	Color bool
	// Clear redraws from the top of the screen instead of appending.
	Clear bool
	// IndexOffset is added to case numbers, for runs that start part way
	// through a level.
	IndexOffset int
}

// Frame renders the state of le as lines of text. It has no side effects.
func Frame(le *execution.LevelExecution, opts RenderOptions) []string {
	window := int64(opts.Window)
	if window <= 0 {
		window = DefaultWindow
	}
	style := func(s string, codes ...string) string {
		if !opts.Color {
			return s
		}
		return Style(s, codes...)
	}

	execs := le.Executions()
	lines := []string{
		style(fmt.Sprintf("%s / %s", le.Level().Name, le.Program().Name), Bold),
	}

	if cur := le.Current(); cur != nil {
		idx := le.CurrentIndex()
		card := "halted"
		if ref, ok := cur.ActiveCard(); ok {
			card = le.Program().Card(ref).Name
		}
		lines = append(lines,
			fmt.Sprintf("case %d/%d  card: %s  step: %d",
				idx+1+opts.IndexOffset, len(execs)+opts.IndexOffset, card, cur.Steps()),
			"",
		)
		start := WindowStart(cur.Position(), window)
		for _, l := range TapeLines(cur, cur.Position(), start, window, opts.Color) {
			lines = append(lines, style(l, FgCyan))
		}
	}

	lines = append(lines, "")
	for i, e := range execs {
		st := e.State()
		status := st.Status.String()
		lines = append(lines, fmt.Sprintf("  case %-3d %s %6d steps",
			i+1+opts.IndexOffset,
			style(PadOrTruncate(status, 8), StatusColor(status)),
			e.Steps()))
		for _, msg := range st.Errors {
			lines = append(lines, "           "+style(msg, Dim))
		}
	}
	lines = append(lines, "", fmt.Sprintf("total steps: %d", le.Steps()))
	return lines
}

// Renderer draws level executions to a terminal.
type Renderer struct {
	term *Terminal
	opts RenderOptions
}

// NewRenderer creates a Renderer writing to out. Color and screen clearing
// are disabled when out is not a terminal.
func NewRenderer(out io.Writer, opts RenderOptions) *Renderer {
	t := NewTerminal(out)
	if !t.IsTerminal() {
		opts.Color = false
		opts.Clear = false
	}
	return &Renderer{term: t, opts: opts}
}

// Render draws one frame.
func (r *Renderer) Render(le *execution.LevelExecution) error {
	if r.opts.Clear {
		r.term.Clear()
	}
	r.term.WriteLine(strings.Join(Frame(le, r.opts), "\n"))
	return nil
}

// Begin prepares the terminal for an animated run.
func (r *Renderer) Begin() {
	if r.opts.Clear {
		r.term.HideCursor()
	}
}

// End restores the terminal after an animated run.
func (r *Renderer) End() {
	if r.opts.Clear {
		r.term.ShowCursor()
	}
}
