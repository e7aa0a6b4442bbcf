package tui

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

type cells map[int64]bool

func (c cells) TapeAt(p int64) bool { return c[p] }

func TestWindowStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		position int64
		size     int64
		want     int64
	}{
		{0, 64, -32},
		{31, 64, -32},
		{-32, 64, -32},
		{32, 64, 32},
		{95, 64, 32},
		{-33, 64, -96},
		{0, 4, -2},
		{2, 4, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WindowStart(tt.position, tt.size), "position %d size %d", tt.position, tt.size)
	}
}

func TestWindowStart_Properties(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("window contains position", prop.ForAll(
		func(pos int64, size int64) bool {
			start := WindowStart(pos, size)
			return start <= pos && pos < start+size
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(1, 512),
	))

	properties.Property("shifting by whole windows shifts the start", prop.ForAll(
		func(pos int64, size int64, n int64) bool {
			return WindowStart(pos+size*n, size) == WindowStart(pos, size)+size*n
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(1, 512),
		gen.Int64Range(-100, 100),
	))

	properties.TestingRun(t)
}

func TestTapeLines(t *testing.T) {
	t.Parallel()

	lines := TapeLines(cells{1: true}, 0, -2, 4, false)

	assert.Equal(t, []string{
		"  v",
		"□□□■□",
		"|",
		"-2",
	}, lines)
}

func TestTapeLines_HeadOutsideWindow(t *testing.T) {
	t.Parallel()

	lines := TapeLines(cells{}, 100, 0, 4, false)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "□□□□□", lines[1])
}

func TestTapeLines_Ticks(t *testing.T) {
	t.Parallel()

	lines := TapeLines(cells{}, 0, -32, 64, false)

	assert.Equal(t, 65, len([]rune(lines[1])))
	assert.Equal(t, "|               |               |               |               |", lines[2])
	assert.Equal(t, "-32             -16             0               16              32", lines[3])
}
