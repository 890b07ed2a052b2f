package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestComposite_ReplacesCells(t *testing.T) {
	bg := "aaaaa\nbbbbb\nccccc"
	got := Composite(bg, "XY\nZW", 1, 1)
	assert.Equal(t, "aaaaa\nbXYbb\ncZWcc", got)
}

func TestComposite_PadsShortLinesAndGrows(t *testing.T) {
	got := Composite("ab", "XY\nZW", 4, 0)
	assert.Equal(t, "ab  XY\n    ZW", got)
}

func TestComposite_EmptyForeground(t *testing.T) {
	assert.Equal(t, "abc", Composite("abc", "", 1, 0))
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name       string
		hpos, vpos lipgloss.Position
		want       Rect
	}{
		{"center", lipgloss.Center, lipgloss.Center, Rect{X: 45, Y: 10, W: 10, H: 4}},
		{"top left", lipgloss.Left, lipgloss.Top, Rect{X: 1, Y: 1, W: 10, H: 4}},
		{"bottom right", lipgloss.Right, lipgloss.Bottom, Rect{X: 89, Y: 19, W: 10, H: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Place(100, 24, 10, 4, tt.hpos, tt.vpos, 1))
		})
	}
}

func TestPlace_LargerThanScreen(t *testing.T) {
	r := Place(10, 5, 20, 8, lipgloss.Center, lipgloss.Center, 1)
	assert.Equal(t, 0, r.X)
	assert.Equal(t, 0, r.Y)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(2, 5))
	assert.False(t, Rect{}.Contains(0, 0))
}

func TestDim_FixedSize(t *testing.T) {
	got := Dim("hello\nworld", 3, 3)
	assert.Equal(t, 3, lipgloss.Height(got))
	assert.Equal(t, 3, lipgloss.Width(got))
}
