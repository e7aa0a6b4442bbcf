package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/thruflo/tur/internal/level"
	"github.com/thruflo/tur/internal/program"
	"github.com/thruflo/tur/internal/store"
)

// Document sources shown by list commands.
const (
	sourceBuiltin = "builtin"
	sourceStored  = "stored"
	sourceInvalid = "invalid"
)

// catalogEntry is one row of a list command.
type catalogEntry struct {
	Name   string
	Source string
	Detail string
}

// findProgram looks up a stored program, then a builtin. Stored documents
// shadow builtins of the same name.
func findProgram(st *store.Store, name string) (*program.Program, error) {
	p, err := st.GetProgram(name)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if b := builtinProgram(name); b != nil {
		return b, nil
	}
	return nil, err
}

// findLevel looks up a stored level, then a builtin.
func findLevel(st *store.Store, name string) (*level.Level, error) {
	l, err := st.GetLevel(name)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if b := builtinLevel(name); b != nil {
		return b, nil
	}
	return nil, err
}

func builtinProgram(name string) *program.Program {
	for _, b := range program.Builtins() {
		if b.Name == name {
			return b
		}
	}
	return nil
}

func builtinLevel(name string) *level.Level {
	for _, b := range level.Builtins() {
		if b.Name == name {
			return b
		}
	}
	return nil
}

func programCatalog(st *store.Store) ([]catalogEntry, error) {
	stored, err := st.ListPrograms()
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}

	shadowed := map[string]bool{}
	var rows []catalogEntry
	for _, e := range stored {
		if e.Err != nil {
			rows = append(rows, catalogEntry{Name: filepath.Base(e.File), Source: sourceInvalid, Detail: e.Err.Error()})
			continue
		}
		shadowed[e.Value.Name] = true
		rows = append(rows, catalogEntry{Name: e.Value.Name, Source: sourceStored, Detail: cardCount(e.Value)})
	}
	var builtins []catalogEntry
	for _, b := range program.Builtins() {
		if !shadowed[b.Name] {
			builtins = append(builtins, catalogEntry{Name: b.Name, Source: sourceBuiltin, Detail: cardCount(b)})
		}
	}
	return append(builtins, rows...), nil
}

func levelCatalog(st *store.Store) ([]catalogEntry, error) {
	stored, err := st.ListLevels()
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}

	shadowed := map[string]bool{}
	var rows []catalogEntry
	for _, e := range stored {
		if e.Err != nil {
			rows = append(rows, catalogEntry{Name: filepath.Base(e.File), Source: sourceInvalid, Detail: e.Err.Error()})
			continue
		}
		shadowed[e.Value.Name] = true
		rows = append(rows, catalogEntry{Name: e.Value.Name, Source: sourceStored, Detail: caseCount(e.Value)})
	}
	var builtins []catalogEntry
	for _, b := range level.Builtins() {
		if !shadowed[b.Name] {
			builtins = append(builtins, catalogEntry{Name: b.Name, Source: sourceBuiltin, Detail: caseCount(b)})
		}
	}
	return append(builtins, rows...), nil
}

func cardCount(p *program.Program) string {
	if len(p.Cards) == 1 {
		return "1 card"
	}
	return fmt.Sprintf("%d cards", len(p.Cards))
}

func caseCount(l *level.Level) string {
	if len(l.Cases) == 1 {
		return "1 case"
	}
	return fmt.Sprintf("%d cases", len(l.Cases))
}

// printCatalog prints rows as an aligned table.
func printCatalog(rows []catalogEntry, empty string) {
	if len(rows) == 0 {
		fmt.Println(empty)
		return
	}

	nameWidth := len("NAME")
	sourceWidth := len("SOURCE")
	for _, r := range rows {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
		if len(r.Source) > sourceWidth {
			sourceWidth = len(r.Source)
		}
	}

	fmt.Printf("%-*s  %-*s  %s\n", nameWidth, "NAME", sourceWidth, "SOURCE", "DETAIL")
	for _, r := range rows {
		fmt.Printf("%-*s  %-*s  %s\n", nameWidth, r.Name, sourceWidth, r.Source, r.Detail)
	}
}
