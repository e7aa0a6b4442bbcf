package level

import "github.com/thruflo/tur/internal/tape"

// Builtins returns the levels shipped with tur. Each call returns fresh
// values.
func Builtins() []*Level {
	return []*Level{
		Sandbox(),
		NightTime(),
		MoveEightRight(),
	}
}

// Sandbox has a single empty case and no target.
func Sandbox() *Level {
	return New("Sandbox", "Do whatever you want.")
}

// NightTime asks the program to switch off every light.
func NightTime() *Level {
	dark := TapeExact{Tape: tape.New()}
	return New(
		"Night time",
		"It's night time, turn off the light.",
		TestCase{InitialTape: tape.New(3), Target: dark},
		TestCase{InitialTape: tape.New(6), Target: dark},
	)
}

// MoveEightRight asks the program to stop eight cells right of the origin.
func MoveEightRight() *Level {
	return New(
		"Move 8 right",
		"Stop with the head eight cells to the right.",
		TestCase{InitialTape: tape.New(), Target: Position{Position: 8}},
	)
}
