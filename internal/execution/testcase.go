package execution

import (
	"github.com/thruflo/tur/internal/level"
	"github.com/thruflo/tur/internal/program"
	"github.com/thruflo/tur/internal/tape"
)

// Status is the derived state of a test case execution.
type Status int

const (
	StatusPending Status = iota // no step taken yet
	StatusRunning               // stepped at least once, not halted
	StatusSuccess               // halted and the target is met
	StatusFailure               // halted and the target is not met
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusRunning:
		return "Running"
	case StatusSuccess:
		return "Success"
	case StatusFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// State is a read-only view of an execution. Errors is only set for
// StatusFailure.
type State struct {
	Status Status
	Errors []string
}

// TestCaseExecution runs a program against a single initial tape.
type TestCaseExecution struct {
	program  *program.Program
	target   level.Target
	tape     *tape.Tape
	position int64
	card     *program.CardRef
	steps    uint64
}

// NewTestCaseExecution starts at position 0 on the program's initial card.
// The initial tape is copied. A nil target succeeds on any halt.
func NewTestCaseExecution(initial *tape.Tape, target level.Target, p *program.Program) *TestCaseExecution {
	t := tape.New()
	if initial != nil {
		t = initial.Clone()
	}
	return &TestCaseExecution{
		program: p,
		target:  target,
		tape:    t,
		card:    program.Goto(p.InitialCard),
	}
}

// Step applies one instruction: write, move, then jump to the next card or
// halt. It does nothing once the execution has halted.
func (e *TestCaseExecution) Step() {
	if e.card == nil {
		return
	}
	card := e.program.Card(*e.card)
	ins := card.Select(e.tape.Read(e.position))
	if ins.Write != nil {
		e.tape.Write(e.position, *ins.Write)
	}
	if ins.Move != nil {
		e.position += ins.Move.Delta()
	}
	e.card = ins.Next
	e.steps++
}

// Run steps until the execution halts or maxSteps steps have been taken,
// and reports whether it halted. Running out of steps is not an error.
func (e *TestCaseExecution) Run(maxSteps uint64) bool {
	if e.IsTerminated() {
		return true
	}
	for i := uint64(0); i < maxSteps; i++ {
		e.Step()
		if e.IsTerminated() {
			return true
		}
	}
	return false
}

// IsTerminated reports whether the program has halted.
func (e *TestCaseExecution) IsTerminated() bool {
	return e.card == nil
}

// Position returns the head position.
func (e *TestCaseExecution) Position() int64 {
	return e.position
}

// TapeAt reads the tape at position.
func (e *TestCaseExecution) TapeAt(position int64) bool {
	return e.tape.Read(position)
}

// Tape returns the on positions in ascending order.
func (e *TestCaseExecution) Tape() []int64 {
	return e.tape.Positions()
}

// Steps returns the number of instructions applied so far.
func (e *TestCaseExecution) Steps() uint64 {
	return e.steps
}

// ActiveCard returns the card that the next step will use, or false once
// halted.
func (e *TestCaseExecution) ActiveCard() (program.CardRef, bool) {
	if e.card == nil {
		return 0, false
	}
	return *e.card, true
}

// State derives the status of the execution. Zero steps always reads as
// pending, even for a program that would halt on its first step.
func (e *TestCaseExecution) State() State {
	switch {
	case e.steps == 0:
		return State{Status: StatusPending}
	case !e.IsTerminated():
		return State{Status: StatusRunning}
	case e.target == nil:
		return State{Status: StatusSuccess}
	}
	if errs := e.target.Check(e.position, e.tape); len(errs) > 0 {
		return State{Status: StatusFailure, Errors: errs}
	}
	return State{Status: StatusSuccess}
}
