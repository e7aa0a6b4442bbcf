package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/tur/internal/execution"
)

// AssertCaseStatus checks the status of one case of an outcome.
func AssertCaseStatus(t *testing.T, o *execution.Outcome, index int, status execution.Status) {
	t.Helper()
	require.NotNil(t, o)
	require.Less(t, index, len(o.Cases), "outcome has %d cases", len(o.Cases))
	assert.Equal(t, status.String(), o.Cases[index].Status, "case %d", index)
}

// AssertAllPassed checks that every case of an outcome succeeded.
func AssertAllPassed(t *testing.T, o *execution.Outcome) {
	t.Helper()
	require.NotNil(t, o)
	for i := range o.Cases {
		AssertCaseStatus(t, o, i, execution.StatusSuccess)
	}
	assert.True(t, o.Passed())
}

// AssertCaseErrors checks that a case failed with exactly msgs.
func AssertCaseErrors(t *testing.T, o *execution.Outcome, index int, msgs ...string) {
	t.Helper()
	AssertCaseStatus(t, o, index, execution.StatusFailure)
	assert.Equal(t, msgs, o.Cases[index].Errors, "case %d", index)
}
