// Package program defines the card-based state machine executed against a
// tape. Cards reference each other by index into Program.Cards; a Program is
// expected to be validated before it reaches this package (see
// internal/document) and is never mutated during execution.
package program

import "fmt"

// Direction is a head movement.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns the direction name used in documents.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Delta returns the head offset for the direction.
func (d Direction) Delta() int64 {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	default:
		panic(fmt.Sprintf("program: invalid direction %d", int(d)))
	}
}

// ParseDirection parses a direction name.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "Left":
		return Left, nil
	case "Right":
		return Right, nil
	default:
		return 0, fmt.Errorf("invalid direction %q", s)
	}
}

// CardRef is the index of a card within its Program.
type CardRef int

// Instruction is what a card does for one symbol under the head.
// A nil field means "leave as is": no write, no move, or halt.
type Instruction struct {
	Write *bool
	Move  *Direction
	Next  *CardRef
}

// Halts reports whether execution stops after this instruction.
func (i Instruction) Halts() bool {
	return i.Next == nil
}

// Card holds the instructions selected by the bit under the head.
type Card struct {
	Name string
	On   Instruction
	Off  Instruction
}

// Select returns the instruction for the given symbol.
func (c *Card) Select(symbol bool) Instruction {
	if symbol {
		return c.On
	}
	return c.Off
}

// Program is a named list of cards with a designated initial card.
type Program struct {
	Name        string
	Description string
	InitialCard CardRef
	Cards       []Card
}

// Card returns the card at ref. An out-of-range ref means the program was
// never validated, so it panics rather than returning an error.
func (p *Program) Card(ref CardRef) *Card {
	if ref < 0 || int(ref) >= len(p.Cards) {
		panic(fmt.Sprintf("program %q: card index %d out of range [0, %d)", p.Name, ref, len(p.Cards)))
	}
	return &p.Cards[ref]
}

// Write returns an optional symbol for Instruction.Write.
func Write(v bool) *bool {
	return &v
}

// Move returns an optional direction for Instruction.Move.
func Move(d Direction) *Direction {
	return &d
}

// Goto returns an optional card reference for Instruction.Next.
func Goto(ref CardRef) *CardRef {
	return &ref
}

// Halt is an instruction that neither writes nor moves and stops execution.
func Halt() Instruction {
	return Instruction{}
}
