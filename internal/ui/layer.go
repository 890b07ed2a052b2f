package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rect is a cell-addressed rectangle on screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Place computes where a block of size w×h lands on a width×height screen.
// hpos and vpos follow lipgloss conventions (0 = left/top, 0.5 = center, 1 = right/bottom);
// margin keeps the block away from the anchored edges.
func Place(width, height, w, h int, hpos, vpos lipgloss.Position, margin int) Rect {
	x := place(width, w, float64(hpos), margin)
	y := place(height, h, float64(vpos), margin)
	return Rect{X: x, Y: y, W: w, H: h}
}

func place(total, size int, pos float64, margin int) int {
	free := total - size
	if free <= 0 {
		return 0
	}
	switch {
	case pos <= 0:
		return min(margin, free)
	case pos >= 1:
		return max(free-margin, 0)
	default:
		return int(float64(free) * pos)
	}
}

// Composite draws fg over bg with fg's top-left corner at (x, y).
// Both may contain ANSI styling; cells of bg outside fg's lines are kept intact.
// bg grows with blank lines when fg extends below it.
func Composite(bg, fg string, x, y int) string {
	if fg == "" {
		return bg
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}
	for i, fl := range fgLines {
		row := y + i
		line := bgLines[row]
		lw := ansi.StringWidth(line)
		if lw < x {
			line += strings.Repeat(" ", x-lw)
		}
		left := ansi.Truncate(line, x, "")
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(fl), "")
		bgLines[row] = left + fl + right
	}
	return strings.Join(bgLines, "\n")
}

// Dim renders s as a faint, unstyled backdrop of exactly width×height cells.
func Dim(s string, width, height int) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	faint := lipgloss.NewStyle().Faint(true)
	out := make([]string, height)
	for i := 0; i < height; i++ {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], width, "")
		}
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = faint.Render(line)
	}
	return strings.Join(out, "\n")
}
