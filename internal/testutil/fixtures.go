package testutil

import "github.com/thruflo/tur/internal/program"

// SampleProgramYAML is "Light to the right" as a document.
const SampleProgramYAML = `format: 1.0.0
name: Light to the right
description: Lights cells while walking right.
initial_card: Light right
cards:
  - name: Light right
    instruction_on:
      move_direction: Right
      next_card: Light right
    instruction_off:
      write_symbol: true
      move_direction: Right
      next_card: Light right
`

// SampleLevelYAML has a level-wide tape target and one case that
// overrides it with a position.
const SampleLevelYAML = `format: 1.0.0
name: Lights out
description: Turn every light off.
target:
  tape: []
cases:
  - initial_tape: [2]
  - initial_tape: [0, 1]
  - initial_tape: []
    target:
      position: 0
`

// InvalidProgramYAML is well formed but names cards that do not exist.
const InvalidProgramYAML = `name: Broken
initial_card: Nowhere
cards:
  - name: Only
    instruction_on: {next_card: Gone}
    instruction_off: {}
`

// ChainRight returns a program of n cards that moves right once per card
// and halts on the last move.
func ChainRight(n int) *program.Program {
	p := &program.Program{Name: "chain"}
	for i := 0; i < n; i++ {
		ins := program.Instruction{Move: program.Move(program.Right)}
		if i < n-1 {
			ins.Next = program.Goto(program.CardRef(i + 1))
		}
		p.Cards = append(p.Cards, program.Card{Name: "step", On: ins, Off: ins})
	}
	return p
}

// WalkToLight returns a program that walks right until it reads an on
// cell, then halts there.
func WalkToLight() *program.Program {
	return &program.Program{
		Name: "walk to light",
		Cards: []program.Card{{
			Name: "walk",
			On:   program.Halt(),
			Off:  program.Instruction{Move: program.Move(program.Right), Next: program.Goto(0)},
		}},
	}
}
