package execution

import (
	"github.com/thruflo/tur/internal/level"
	"github.com/thruflo/tur/internal/program"
)

// LevelExecution runs one program against every case of a level, one case
// at a time.
type LevelExecution struct {
	level      *level.Level
	program    *program.Program
	executions []*TestCaseExecution
}

// NewLevelExecution creates an execution for every case up front. All of
// them share the program read-only.
func NewLevelExecution(l *level.Level, p *program.Program) *LevelExecution {
	executions := make([]*TestCaseExecution, 0, len(l.Cases))
	for _, tc := range l.Cases {
		executions = append(executions, NewTestCaseExecution(tc.InitialTape, tc.Target, p))
	}
	return &LevelExecution{
		level:      l,
		program:    p,
		executions: executions,
	}
}

// Level returns the level being executed.
func (le *LevelExecution) Level() *level.Level {
	return le.level
}

// Program returns the program being executed.
func (le *LevelExecution) Program() *program.Program {
	return le.program
}

// Executions returns the case executions in level order.
func (le *LevelExecution) Executions() []*TestCaseExecution {
	return le.executions
}

// CurrentIndex returns the index of the first case that has not halted,
// or -1 if every case has halted.
func (le *LevelExecution) CurrentIndex() int {
	for i, e := range le.executions {
		if !e.IsTerminated() {
			return i
		}
	}
	return -1
}

// Current returns the first case that has not halted, or nil.
func (le *LevelExecution) Current() *TestCaseExecution {
	if i := le.CurrentIndex(); i >= 0 {
		return le.executions[i]
	}
	return nil
}

// Step advances the current case by one step.
func (le *LevelExecution) Step() {
	if le.IsTerminated() {
		return
	}
	if e := le.Current(); e != nil {
		e.Step()
	}
}

// IsTerminated reports whether the last case has halted. Cases halt in
// order, so this means every case has halted. A level without cases is
// terminated.
func (le *LevelExecution) IsTerminated() bool {
	if len(le.executions) == 0 {
		return true
	}
	return le.executions[len(le.executions)-1].IsTerminated()
}

// Steps returns the total number of steps taken across all cases.
func (le *LevelExecution) Steps() uint64 {
	var total uint64
	for _, e := range le.executions {
		total += e.Steps()
	}
	return total
}
