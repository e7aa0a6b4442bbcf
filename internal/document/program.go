package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thruflo/tur/internal/program"
	"gopkg.in/yaml.v3"
)

// DecodeProgram parses, validates and resolves a program document.
func DecodeProgram(data []byte) (*program.Program, error) {
	raw, err := parseGeneric(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse program document: %w", err)
	}
	schema, err := programSchema()
	if err != nil {
		return nil, err
	}
	if shape := checkShape(schema, raw); len(shape) > 0 {
		return nil, &ValidationError{Kind: "program", Name: nameOf(raw), Problems: shape}
	}

	var doc ProgramDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse program document: %w", err)
	}
	return ResolveProgram(&doc)
}

// ResolveProgram turns card names into indices. It reports an empty name,
// duplicate card names, an unknown initial card and every unknown next card
// together.
func ResolveProgram(doc *ProgramDocument) (*program.Program, error) {
	probs := &problems{kind: "program", name: doc.Name}

	if msg := checkFormat(doc.Format); msg != "" {
		probs.add("%s", msg)
	}
	if strings.TrimSpace(doc.Name) == "" {
		probs.add("name cannot be empty")
	}

	index := make(map[string]program.CardRef, len(doc.Cards))
	var duplicates []string
	for i, c := range doc.Cards {
		if _, ok := index[c.Name]; ok {
			duplicates = append(duplicates, c.Name)
			continue
		}
		index[c.Name] = program.CardRef(i)
	}
	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		probs.add("duplicate card names: %s", strings.Join(uniq(duplicates), ", "))
	}

	initial, ok := index[doc.InitialCard]
	if !ok {
		probs.add("initial card not found: %s", doc.InitialCard)
	}

	cards := make([]program.Card, 0, len(doc.Cards))
	for _, c := range doc.Cards {
		cards = append(cards, program.Card{
			Name: c.Name,
			On:   resolveInstruction(c.InstructionOn, c.Name, "instruction_on", index, probs),
			Off:  resolveInstruction(c.InstructionOff, c.Name, "instruction_off", index, probs),
		})
	}

	if err := probs.err(); err != nil {
		return nil, err
	}
	return &program.Program{
		Name:        doc.Name,
		Description: doc.Description,
		InitialCard: initial,
		Cards:       cards,
	}, nil
}

func resolveInstruction(doc InstructionDocument, card, field string, index map[string]program.CardRef, probs *problems) program.Instruction {
	var ins program.Instruction
	if doc.WriteSymbol != nil {
		ins.Write = program.Write(*doc.WriteSymbol)
	}
	if doc.MoveDirection != nil {
		d, err := program.ParseDirection(*doc.MoveDirection)
		if err != nil {
			probs.add("card %s: %s: %v", card, field, err)
		} else {
			ins.Move = program.Move(d)
		}
	}
	if doc.NextCard != nil {
		ref, ok := index[*doc.NextCard]
		if !ok {
			probs.add("card %s: %s: card does not exist: %s", card, field, *doc.NextCard)
		} else {
			ins.Next = program.Goto(ref)
		}
	}
	return ins
}

// ProgramToDocument converts a resolved program back to its named form.
func ProgramToDocument(p *program.Program) *ProgramDocument {
	names := make([]string, len(p.Cards))
	for i, c := range p.Cards {
		names[i] = c.Name
	}
	doc := &ProgramDocument{
		Format:      FormatVersion,
		Name:        p.Name,
		Description: p.Description,
		Cards:       make([]CardDocument, 0, len(p.Cards)),
	}
	if int(p.InitialCard) < len(names) {
		doc.InitialCard = names[p.InitialCard]
	}
	for _, c := range p.Cards {
		doc.Cards = append(doc.Cards, CardDocument{
			Name:           c.Name,
			InstructionOn:  instructionToDocument(c.On, names),
			InstructionOff: instructionToDocument(c.Off, names),
		})
	}
	return doc
}

func instructionToDocument(ins program.Instruction, names []string) InstructionDocument {
	var doc InstructionDocument
	if ins.Write != nil {
		v := *ins.Write
		doc.WriteSymbol = &v
	}
	if ins.Move != nil {
		s := ins.Move.String()
		doc.MoveDirection = &s
	}
	if ins.Next != nil {
		s := names[*ins.Next]
		doc.NextCard = &s
	}
	return doc
}

// EncodeProgram writes p as a YAML document that DecodeProgram reads back
// to an equal program.
func EncodeProgram(p *program.Program) ([]byte, error) {
	data, err := yaml.Marshal(ProgramToDocument(p))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal program: %w", err)
	}
	return data, nil
}

// ProgramTemplate returns a starter document for a new program.
func ProgramTemplate(name string) ([]byte, error) {
	return renderTemplate("templates/program.yaml", name)
}

func renderTemplate(path, name string) ([]byte, error) {
	tmpl, err := assets.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	quoted, err := yaml.Marshal(name)
	if err != nil {
		return nil, fmt.Errorf("failed to quote name: %w", err)
	}
	return []byte(strings.Replace(string(tmpl), "__NAME__", strings.TrimSpace(string(quoted)), 1)), nil
}

func uniq(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
