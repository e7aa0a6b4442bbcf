package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/thruflo/tur/internal/execution"
	"github.com/thruflo/tur/internal/logging"
)

// ExitReason indicates why a run stopped.
type ExitReason int

const (
	ExitReasonUnknown   ExitReason = iota
	ExitReasonCompleted            // Every case halted
	ExitReasonMaxSteps             // A case hit the step limit
	ExitReasonCancelled            // Context cancelled
)

// String returns a human-readable description of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitReasonCompleted:
		return "completed"
	case ExitReasonMaxSteps:
		return "max steps"
	case ExitReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ErrNotPassed is returned by callers that treat a failed run as an error.
var ErrNotPassed = errors.New("run did not pass")

// Result contains the outcome of a run.
type Result struct {
	Reason  ExitReason
	Steps   uint64
	Outcome *execution.Outcome
	Error   error
}

// Passed reports whether the run completed and every case succeeded.
func (r Result) Passed() bool {
	return r.Reason == ExitReasonCompleted && r.Outcome != nil && r.Outcome.Passed()
}

// Renderer draws a level execution.
type Renderer interface {
	Render(le *execution.LevelExecution) error
}

// Options configures a Runner.
type Options struct {
	// MaxSteps bounds the steps of each case. Zero means no limit.
	MaxSteps uint64
	// StepDelay is the pause between steps in animated mode.
	StepDelay time.Duration
	// Renderer is optional. It is called once before the first step and
	// after every step.
	Renderer Renderer
	// IndexOffset is added to case indices in the outcome.
	IndexOffset int
}

// Runner drives one level execution.
type Runner struct {
	le   *execution.LevelExecution
	opts Options
	log  *logging.Logger
}

// New creates a Runner for le.
func New(le *execution.LevelExecution, opts Options) *Runner {
	return &Runner{
		le:   le,
		opts: opts,
		log: logging.With("level_name", le.Level().Name).
			With("program", le.Program().Name),
	}
}

// Run steps the level once per limiter tick, rendering after each step,
// until every case halts, a case reaches MaxSteps, or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) Result {
	limit := rate.Inf
	if r.opts.StepDelay > 0 {
		limit = rate.Every(r.opts.StepDelay)
	}
	limiter := rate.NewLimiter(limit, 1)

	if err := r.render(); err != nil {
		return r.result(ExitReasonUnknown, err)
	}

	for {
		if r.le.IsTerminated() {
			return r.result(ExitReasonCompleted, nil)
		}
		if r.exhausted(r.le.Current()) {
			return r.result(ExitReasonMaxSteps, nil)
		}

		// Wait also fails early when the next step would land past the
		// context deadline.
		if err := limiter.Wait(ctx); err != nil {
			return r.result(ExitReasonCancelled, nil)
		}

		r.le.Step()
		if err := r.render(); err != nil {
			return r.result(ExitReasonUnknown, err)
		}
	}
}

// RunHeadless runs each case in order without pacing. The renderer, if
// any, is only called once at the end.
func (r *Runner) RunHeadless() Result {
	reason := ExitReasonCompleted
	for i, e := range r.le.Executions() {
		if !e.Run(r.budget(e)) {
			r.log.Debug("case hit step limit", "case", i+r.opts.IndexOffset, "steps", e.Steps())
			reason = ExitReasonMaxSteps
			break
		}
	}
	if err := r.render(); err != nil {
		return r.result(ExitReasonUnknown, err)
	}
	return r.result(reason, nil)
}

// budget returns the number of steps e may still take.
func (r *Runner) budget(e *execution.TestCaseExecution) uint64 {
	if r.opts.MaxSteps == 0 {
		return ^uint64(0)
	}
	if e.Steps() >= r.opts.MaxSteps {
		return 0
	}
	return r.opts.MaxSteps - e.Steps()
}

func (r *Runner) exhausted(e *execution.TestCaseExecution) bool {
	return e != nil && r.opts.MaxSteps > 0 && e.Steps() >= r.opts.MaxSteps
}

func (r *Runner) render() error {
	if r.opts.Renderer == nil {
		return nil
	}
	if err := r.opts.Renderer.Render(r.le); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return nil
}

func (r *Runner) result(reason ExitReason, err error) Result {
	res := Result{
		Reason:  reason,
		Steps:   r.le.Steps(),
		Outcome: execution.NewOutcome(r.le, r.opts.IndexOffset),
		Error:   err,
	}
	r.log.Info("run finished", "reason", reason.String(), "steps", res.Steps, "passed", res.Passed())
	return res
}
