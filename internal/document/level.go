package document

import (
	"fmt"
	"strings"

	"github.com/thruflo/tur/internal/level"
	"github.com/thruflo/tur/internal/tape"
	"gopkg.in/yaml.v3"
)

// DecodeLevel parses, validates and resolves a level document.
func DecodeLevel(data []byte) (*level.Level, error) {
	raw, err := parseGeneric(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level document: %w", err)
	}
	schema, err := levelSchema()
	if err != nil {
		return nil, err
	}
	if shape := checkShape(schema, raw); len(shape) > 0 {
		return nil, &ValidationError{Kind: "level", Name: nameOf(raw), Problems: shape}
	}

	var doc LevelDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse level document: %w", err)
	}
	return ResolveLevel(&doc)
}

// ResolveLevel builds a normalized level. Cases without a target inherit
// the level target; a level without cases gets one empty sandbox case.
func ResolveLevel(doc *LevelDocument) (*level.Level, error) {
	probs := &problems{kind: "level", name: doc.Name}

	if msg := checkFormat(doc.Format); msg != "" {
		probs.add("%s", msg)
	}
	if strings.TrimSpace(doc.Name) == "" {
		probs.add("name cannot be empty")
	}

	var fallback level.Target
	if doc.Target != nil {
		t, err := resolveTarget(doc.Target)
		if err != nil {
			probs.add("target: %v", err)
		}
		fallback = t
	}

	cases := make([]level.TestCase, 0, len(doc.Cases))
	for i, c := range doc.Cases {
		target := fallback
		if c.Target != nil {
			t, err := resolveTarget(c.Target)
			if err != nil {
				probs.add("case %d: target: %v", i, err)
			}
			target = t
		}
		cases = append(cases, level.TestCase{
			InitialTape: tape.New(c.InitialTape...),
			Target:      target,
		})
	}

	if err := probs.err(); err != nil {
		return nil, err
	}
	return level.New(doc.Name, doc.Description, cases...), nil
}

func resolveTarget(doc *TargetDocument) (level.Target, error) {
	switch {
	case doc.Tape != nil && doc.Position != nil:
		return nil, fmt.Errorf("set either tape or position, not both")
	case doc.Tape != nil:
		return level.TapeExact{Tape: tape.New(*doc.Tape...)}, nil
	case doc.Position != nil:
		return level.Position{Position: *doc.Position}, nil
	default:
		return nil, fmt.Errorf("set one of tape or position")
	}
}

// LevelToDocument converts a level to its on-disk form. Every case carries
// its own target.
func LevelToDocument(l *level.Level) *LevelDocument {
	doc := &LevelDocument{
		Format:      FormatVersion,
		Name:        l.Name,
		Description: l.Description,
		Cases:       make([]TestCaseDocument, 0, len(l.Cases)),
	}
	for _, c := range l.Cases {
		tc := TestCaseDocument{InitialTape: []int64{}}
		if c.InitialTape != nil {
			tc.InitialTape = c.InitialTape.Positions()
		}
		tc.Target = targetToDocument(c.Target)
		doc.Cases = append(doc.Cases, tc)
	}
	return doc
}

func targetToDocument(t level.Target) *TargetDocument {
	switch t := t.(type) {
	case level.TapeExact:
		positions := []int64{}
		if t.Tape != nil {
			positions = t.Tape.Positions()
		}
		return &TargetDocument{Tape: &positions}
	case level.Position:
		p := t.Position
		return &TargetDocument{Position: &p}
	default:
		return nil
	}
}

// EncodeLevel writes l as a YAML document.
func EncodeLevel(l *level.Level) ([]byte, error) {
	data, err := yaml.Marshal(LevelToDocument(l))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal level: %w", err)
	}
	return data, nil
}

// LevelTemplate returns a starter document for a new level.
func LevelTemplate(name string) ([]byte, error) {
	return renderTemplate("templates/level.yaml", name)
}
