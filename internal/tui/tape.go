package tui

import (
	"fmt"
	"strings"
)

// Tape cell glyphs.
const (
	CellOn  = "■"
	CellOff = "□"
	Head    = "v"

	tickSpacing = 16
)

// TapeReader reads one tape cell.
type TapeReader interface {
	TapeAt(position int64) bool
}

// WindowStart returns the first position of the window of the given size
// that contains position. Windows are aligned to multiples of size shifted
// left by half a window, so the head stays near the middle on the first
// window and the view only jumps when the head leaves it.
func WindowStart(position, size int64) int64 {
	offset := size / 2
	return floorDiv(position+offset, size)*size - offset
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// TapeLines renders the head marker, the cells from start to start+size
// inclusive, a tick line and position labels every 16 cells.
func TapeLines(t TapeReader, head, start, size int64, color bool) []string {
	var headLine string
	if head >= start && head <= start+size {
		headLine = strings.Repeat(" ", int(head-start)) + Head
	}

	var cells strings.Builder
	for p := start; p <= start+size; p++ {
		switch {
		case !t.TapeAt(p):
			cells.WriteString(CellOff)
		case color:
			cells.WriteString(Style(CellOn, FgYellow))
		default:
			cells.WriteString(CellOn)
		}
	}

	var ticks, labels strings.Builder
	for n := int64(0); n <= size/tickSpacing; n++ {
		ticks.WriteString(fmt.Sprintf("%-*s", tickSpacing, "|"))
		labels.WriteString(fmt.Sprintf("%-*d", tickSpacing, start+n*tickSpacing))
	}

	return []string{
		headLine,
		cells.String(),
		strings.TrimRight(ticks.String(), " "),
		strings.TrimRight(labels.String(), " "),
	}
}
