// Package level defines puzzles: ordered test cases, each an initial tape
// with an optional target that decides success once a program halts.
package level

import (
	"fmt"

	"github.com/thruflo/tur/internal/tape"
)

// Target is the success condition of a test case. The implementations are
// TapeExact and Position.
type Target interface {
	// Check returns one message per unmet expectation, or nil if the final
	// head position and tape satisfy the target.
	Check(position int64, t *tape.Tape) []string

	isTarget()
}

// TapeExact requires the final on positions to equal Tape exactly.
type TapeExact struct {
	Tape *tape.Tape
}

func (TapeExact) isTarget() {}

// Check implements Target.
func (e TapeExact) Check(_ int64, t *tape.Tape) []string {
	want := e.Tape
	if want == nil {
		want = tape.New()
	}
	extra, missing := t.Diff(want)
	var errs []string
	for _, p := range extra {
		errs = append(errs, fmt.Sprintf("expected position %d to be off, but it was on", p))
	}
	for _, p := range missing {
		errs = append(errs, fmt.Sprintf("expected position %d to be on, but it was off", p))
	}
	return errs
}

// Position requires the head to end at Position.
type Position struct {
	Position int64
}

func (Position) isTarget() {}

// Check implements Target.
func (e Position) Check(position int64, _ *tape.Tape) []string {
	if position == e.Position {
		return nil
	}
	return []string{fmt.Sprintf("expected final position %d, but was %d", e.Position, position)}
}

// TestCase is one initial tape and an optional target. A nil Target
// succeeds on any halt.
type TestCase struct {
	InitialTape *tape.Tape
	Target      Target
}

// Level is a named, ordered collection of test cases.
type Level struct {
	Name        string
	Description string
	Cases       []TestCase
}

// New builds a normalized level.
func New(name, description string, cases ...TestCase) *Level {
	l := &Level{Name: name, Description: description, Cases: cases}
	l.Normalize()
	return l
}

// Normalize gives a level without cases a single sandbox case with an
// empty tape and no target, and fills in nil initial tapes.
func (l *Level) Normalize() {
	if len(l.Cases) == 0 {
		l.Cases = []TestCase{{InitialTape: tape.New()}}
	}
	for i := range l.Cases {
		if l.Cases[i].InitialTape == nil {
			l.Cases[i].InitialTape = tape.New()
		}
	}
}

// FromCase returns a copy of the level without its first n cases.
func (l *Level) FromCase(n int) (*Level, error) {
	if n < 0 || n >= len(l.Cases) {
		return nil, fmt.Errorf("level %q has %d test cases, cannot skip %d", l.Name, len(l.Cases), n)
	}
	cases := make([]TestCase, len(l.Cases)-n)
	copy(cases, l.Cases[n:])
	return &Level{Name: l.Name, Description: l.Description, Cases: cases}, nil
}
