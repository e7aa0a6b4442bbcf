package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/thruflo/tur/internal/execution"
)

// RunRecord is one stored `tur run`.
type RunRecord struct {
	ID         string             `json:"id"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	Reason     string             `json:"reason"`
	Passed     bool               `json:"passed"`
	StartCase  int                `json:"start_case,omitempty"`
	Outcome    *execution.Outcome `json:"outcome"`
}

func (s *Store) resultsDir() string {
	return filepath.Join(s.basePath, resultsDir)
}

// SaveResult writes r to results/<id>.json, assigning an ID if it has none.
func (s *Store) SaveResult(r *RunRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	return writeFile(filepath.Join(s.resultsDir(), r.ID+".json"), data, false)
}

// ListResults returns stored run records, newest first. Unreadable files
// are skipped.
func (s *Store) ListResults() ([]*RunRecord, error) {
	files, err := os.ReadDir(s.resultsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []*RunRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read results directory: %w", err)
	}

	records := []*RunRecord{}
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.resultsDir(), f.Name()))
		if err != nil {
			continue // Skip unreadable files
		}
		var r RunRecord
		if err := json.Unmarshal(data, &r); err != nil {
			continue // Skip invalid result files
		}
		records = append(records, &r)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartedAt.After(records[j].StartedAt)
	})
	return records, nil
}
