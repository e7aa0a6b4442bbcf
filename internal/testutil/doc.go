// Package testutil provides shared test utilities for tur.
//
// # Fixtures
//
// The fixtures.go file provides sample programs and documents:
//
//   - SampleProgramYAML, SampleLevelYAML - valid documents
//   - InvalidProgramYAML - a program with unresolved card references
//   - ChainRight(n) - a program that moves right n times, then halts
//   - WalkToLight() - a program that halts on the first on cell to the right
//
// # Environment Helpers
//
// The env.go file provides test environment setup:
//
//   - SetupTestHome(t) - creates an initialized tur home and its store
//   - WriteTestFile(t, base, path, content) - writes a file in test dir
//   - MustMarshalJSON(t, v), MustUnmarshalJSON(t, data, v)
//
// # Assertions
//
// The assertions.go file provides outcome assertions:
//
//   - AssertCaseStatus(t, outcome, index, status)
//   - AssertAllPassed(t, outcome), AssertCaseErrors(t, outcome, index, msgs...)
//
// # Timeouts
//
// The timeout.go file provides contexts bound to the test deadline:
//
//   - ContextWithTestDeadline(t, fallback) for runs bounded by the test deadline
//   - ContextWithTimeout(t, d) for animated runs and CLI subprocesses
package testutil
