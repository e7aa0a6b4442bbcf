package execution

// CaseResult is a snapshot of one test case execution.
type CaseResult struct {
	Index    int      `json:"index"`
	Status   string   `json:"status"`
	Errors   []string `json:"errors,omitempty"`
	Steps    uint64   `json:"steps"`
	Position int64    `json:"position"`
	Tape     []int64  `json:"tape"`
}

// Outcome is a snapshot of a level execution, suitable for reporting and
// storage.
type Outcome struct {
	Level      string       `json:"level"`
	Program    string       `json:"program"`
	Cases      []CaseResult `json:"cases"`
	TotalSteps uint64       `json:"total_steps"`
}

// Passed reports whether every case succeeded.
func (o *Outcome) Passed() bool {
	if len(o.Cases) == 0 {
		return false
	}
	for _, c := range o.Cases {
		if c.Status != StatusSuccess.String() {
			return false
		}
	}
	return true
}

// NewOutcome snapshots le. indexOffset is added to every case index, for
// executions that started part way through a level.
func NewOutcome(le *LevelExecution, indexOffset int) *Outcome {
	o := &Outcome{
		Level:      le.Level().Name,
		Program:    le.Program().Name,
		Cases:      make([]CaseResult, 0, len(le.executions)),
		TotalSteps: le.Steps(),
	}
	for i, e := range le.executions {
		st := e.State()
		o.Cases = append(o.Cases, CaseResult{
			Index:    i + indexOffset,
			Status:   st.Status.String(),
			Errors:   st.Errors,
			Steps:    e.Steps(),
			Position: e.Position(),
			Tape:     e.Tape(),
		})
	}
	return o
}
