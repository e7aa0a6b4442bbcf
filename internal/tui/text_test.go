package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadOrTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"exact", "hello", 5, "hello"},
		{"pad", "hi", 5, "hi   "},
		{"truncate", "hello world", 8, "hello..."},
		{"short width", "hello", 2, "he"},
		{"zero width", "hello", 0, ""},
		{"unicode", "■□■", 5, "■□■  "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PadOrTruncate(tt.input, tt.width))
		})
	}
}

func TestStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", Style("plain"))
	assert.Equal(t, Bold+FgRed+"x"+Reset, Style("x", Bold, FgRed))
}

func TestStatusColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FgGreen, StatusColor("Success"))
	assert.Equal(t, FgRed, StatusColor("Failure"))
	assert.Equal(t, FgYellow, StatusColor("Running"))
	assert.Equal(t, Dim, StatusColor("Pending"))
	assert.Equal(t, "", StatusColor("unknown"))
}
