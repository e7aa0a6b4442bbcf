package document

import (
	"errors"
	"fmt"
	"strings"
)

// ProgramDocument is the on-disk form of a program.
type ProgramDocument struct {
	Format      string         `yaml:"format,omitempty"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	InitialCard string         `yaml:"initial_card"`
	Cards       []CardDocument `yaml:"cards"`
}

// CardDocument is one named card.
type CardDocument struct {
	Name           string              `yaml:"name"`
	InstructionOn  InstructionDocument `yaml:"instruction_on"`
	InstructionOff InstructionDocument `yaml:"instruction_off"`
}

// InstructionDocument is an instruction with its next card given by name.
type InstructionDocument struct {
	WriteSymbol   *bool   `yaml:"write_symbol,omitempty"`
	MoveDirection *string `yaml:"move_direction,omitempty"`
	NextCard      *string `yaml:"next_card,omitempty"`
}

// LevelDocument is the on-disk form of a level.
type LevelDocument struct {
	Format      string             `yaml:"format,omitempty"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description,omitempty"`
	Target      *TargetDocument    `yaml:"target,omitempty"`
	Cases       []TestCaseDocument `yaml:"cases"`
}

// TestCaseDocument is one test case. A nil Target inherits the level target.
type TestCaseDocument struct {
	InitialTape []int64         `yaml:"initial_tape"`
	Target      *TargetDocument `yaml:"target,omitempty"`
}

// TargetDocument sets exactly one of Tape or Position.
type TargetDocument struct {
	Tape     *[]int64 `yaml:"tape,omitempty"`
	Position *int64   `yaml:"position,omitempty"`
}

// ValidationError lists everything wrong with a document.
type ValidationError struct {
	Kind     string
	Name     string
	Problems []string
}

func (e *ValidationError) Error() string {
	name := e.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, name, strings.Join(e.Problems, "; "))
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// problems collects validation messages for one document.
type problems struct {
	kind string
	name string
	list []string
}

func (p *problems) add(format string, args ...any) {
	p.list = append(p.list, fmt.Sprintf(format, args...))
}

func (p *problems) err() error {
	if len(p.list) == 0 {
		return nil
	}
	return &ValidationError{Kind: p.kind, Name: p.name, Problems: p.list}
}
