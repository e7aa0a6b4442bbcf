package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thruflo/tur/internal/execution"
	"github.com/thruflo/tur/internal/logging"
	"github.com/thruflo/tur/internal/runner"
	"github.com/thruflo/tur/internal/store"
	"github.com/thruflo/tur/internal/tui"
)

var (
	runDelay     int
	runStartCase int
	runMaxSteps  uint64
	runHeadless  bool
)

// now returns the current time. It can be overridden in tests.
var now = time.Now

var runCmd = &cobra.Command{
	Use:   "run <program> <level>",
	Short: "Run a program against every test case of a level",
	Long: `Runs the program on each test case of the level in order and checks
the halted tape or head position against the case target.

By default every step is drawn in the terminal. --headless runs at full
speed and only prints the final state. Each case is stopped after
--max-steps steps, since programs are not guaranteed to halt.

The run is recorded in the results store. The command fails unless every
case halts and meets its target.`,
	Args: cobra.ExactArgs(2),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runDelay, "delay", -1, "milliseconds between steps (default from config)")
	runCmd.Flags().IntVar(&runStartCase, "start-case", 1, "first test case to run, counting from 1")
	runCmd.Flags().Uint64Var(&runMaxSteps, "max-steps", 0, "step limit per test case (default from config)")
	runCmd.Flags().BoolVar(&runHeadless, "headless", false, "run without animation")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	p, err := findProgram(env.store, args[0])
	if err != nil {
		return err
	}
	lvl, err := findLevel(env.store, args[1])
	if err != nil {
		return err
	}

	if runStartCase < 1 {
		return fmt.Errorf("--start-case must be at least 1")
	}
	offset := runStartCase - 1
	if offset >= len(lvl.Cases) {
		return fmt.Errorf("--start-case %d is out of range: level %q has %d test cases", runStartCase, lvl.Name, len(lvl.Cases))
	}
	lvl, err = lvl.FromCase(offset)
	if err != nil {
		return err
	}

	renderer := tui.NewRenderer(os.Stdout, tui.RenderOptions{
		Window:      env.cfg.Run.Window,
		Color:       true,
		Clear:       !runHeadless,
		IndexOffset: offset,
	})
	opts := runner.Options{
		MaxSteps:    env.cfg.Run.MaxSteps,
		StepDelay:   time.Duration(env.cfg.Run.StepDelayMS) * time.Millisecond,
		Renderer:    renderer,
		IndexOffset: offset,
	}
	if runMaxSteps > 0 {
		opts.MaxSteps = runMaxSteps
	}
	if runDelay >= 0 {
		opts.StepDelay = time.Duration(runDelay) * time.Millisecond
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.With("program", p.Name).With("level_name", lvl.Name)
	log.Info("starting run", "cases", len(lvl.Cases), "start_case", runStartCase, "headless", runHeadless)

	started := now()
	r := runner.New(execution.NewLevelExecution(lvl, p), opts)
	var res runner.Result
	if runHeadless {
		res = r.RunHeadless()
	} else {
		renderer.Begin()
		res = r.Run(ctx)
		renderer.End()
	}
	if res.Error != nil {
		return res.Error
	}

	record := &store.RunRecord{
		StartedAt:  started,
		FinishedAt: now(),
		Reason:     res.Reason.String(),
		Passed:     res.Passed(),
		StartCase:  runStartCase,
		Outcome:    res.Outcome,
	}
	if err := env.store.SaveResult(record); err != nil {
		log.Warn("failed to save result", "error", err)
	}

	if res.Passed() {
		fmt.Printf("PASSED in %d steps\n", res.Steps)
		return nil
	}
	fmt.Printf("FAILED (%s) after %d steps\n", res.Reason, res.Steps)
	return fmt.Errorf("%w: %s", runner.ErrNotPassed, res.Reason)
}
