package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/tur/internal/execution"
	"github.com/thruflo/tur/internal/store"
)

var resultsLevel string

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&resultsLevel, "level", "", "only show runs of this level")
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	records, err := env.store.ListResults()
	if err != nil {
		return err
	}

	var rows []*store.RunRecord
	for _, r := range records {
		if r.Outcome == nil {
			continue
		}
		if resultsLevel != "" && r.Outcome.Level != resultsLevel {
			continue
		}
		rows = append(rows, r)
	}

	if len(rows) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	levelWidth := len("LEVEL")
	programWidth := len("PROGRAM")
	for _, r := range rows {
		levelWidth = max(levelWidth, len(r.Outcome.Level))
		programWidth = max(programWidth, len(r.Outcome.Program))
	}

	fmt.Printf("%-16s  %-*s  %-*s  %-6s  %-9s  %s\n", "STARTED", levelWidth, "LEVEL", programWidth, "PROGRAM", "RESULT", "CASES", "STEPS")
	for _, r := range rows {
		result := "FAIL"
		if r.Passed {
			result = "PASS"
		}
		fmt.Printf("%-16s  %-*s  %-*s  %-6s  %-9s  %d\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			levelWidth, r.Outcome.Level,
			programWidth, r.Outcome.Program,
			result,
			casesPassed(r),
			r.Outcome.TotalSteps)
	}
	return nil
}

func casesPassed(r *store.RunRecord) string {
	passed := 0
	for _, c := range r.Outcome.Cases {
		if c.Status == execution.StatusSuccess.String() {
			passed++
		}
	}
	return fmt.Sprintf("%d/%d", passed, len(r.Outcome.Cases))
}
