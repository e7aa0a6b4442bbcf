// Package runner drives a level execution to completion.
//
// Two modes are provided:
//   - Run renders every step and paces them with a rate limiter, for
//     watching a program work in a terminal.
//   - RunHeadless steps each case as fast as possible and only reports the
//     result.
//
// Both modes bound each test case by Options.MaxSteps, since a program is
// not guaranteed to halt.
package runner
