// Package tape provides the sparse, unbounded binary tape read and written
// by programs. Every position is off unless explicitly switched on.
package tape

import (
	"slices"
)

// Tape is a set of on positions. The zero value is an empty tape.
type Tape struct {
	on map[int64]struct{}
}

// New returns a tape with the given positions switched on.
func New(positions ...int64) *Tape {
	t := &Tape{on: make(map[int64]struct{}, len(positions))}
	for _, p := range positions {
		t.on[p] = struct{}{}
	}
	return t
}

// Read reports whether position is on.
func (t *Tape) Read(position int64) bool {
	_, ok := t.on[position]
	return ok
}

// Write switches position on or off.
func (t *Tape) Write(position int64, value bool) {
	if !value {
		delete(t.on, position)
		return
	}
	if t.on == nil {
		t.on = make(map[int64]struct{})
	}
	t.on[position] = struct{}{}
}

// Len returns the number of on positions.
func (t *Tape) Len() int {
	return len(t.on)
}

// Positions returns the on positions in ascending order.
func (t *Tape) Positions() []int64 {
	positions := make([]int64, 0, len(t.on))
	for p := range t.on {
		positions = append(positions, p)
	}
	slices.Sort(positions)
	return positions
}

// Clone returns an independent copy of the tape.
func (t *Tape) Clone() *Tape {
	c := &Tape{on: make(map[int64]struct{}, len(t.on))}
	for p := range t.on {
		c.on[p] = struct{}{}
	}
	return c
}

// Equal reports whether both tapes have exactly the same on positions.
func (t *Tape) Equal(other *Tape) bool {
	if t.Len() != other.Len() {
		return false
	}
	for p := range t.on {
		if !other.Read(p) {
			return false
		}
	}
	return true
}

// Diff compares t against want and returns the positions that are on but
// should be off (extra) and the positions that should be on but are off
// (missing), both ascending.
func (t *Tape) Diff(want *Tape) (extra, missing []int64) {
	for _, p := range t.Positions() {
		if !want.Read(p) {
			extra = append(extra, p)
		}
	}
	for _, p := range want.Positions() {
		if !t.Read(p) {
			missing = append(missing, p)
		}
	}
	return extra, missing
}
