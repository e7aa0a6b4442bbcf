// Package execution runs a program against the test cases of a level.
//
// A TestCaseExecution owns one tape, head position, active card and step
// counter, and advances them one instruction per Step. A LevelExecution
// holds one TestCaseExecution per case and always advances the first case
// that has not halted, so cases run strictly in order.
//
// Everything here is synchronous and single-threaded. Non-halting programs
// are bounded by the caller, either by counting Step calls or through
// TestCaseExecution.Run.
package execution
