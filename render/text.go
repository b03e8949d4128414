package render

import (
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Text draws w as ASCII art: "+" at every corner, "---" for horizontal and
// "|" for vertical walls, three spaces per cell. Open boundary walls show as
// gaps. Every line, including the last, ends with a newline.
//
// Complexity: O(W×H).
func Text(w Walls) string {
	var b strings.Builder
	b.Grow((4*w.Width() + 2) * (2*w.Height() + 1))

	for x := 0; x < w.Width(); x++ {
		b.WriteString("+")
		b.WriteString(horizontal(w.Wall(x, 0, grid.North)))
	}
	b.WriteString("+\n")

	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			b.WriteString(vertical(w.Wall(x, y, grid.West)))
			b.WriteString("   ")
		}
		b.WriteString(vertical(w.Wall(w.Width()-1, y, grid.East)))
		b.WriteString("\n")

		for x := 0; x < w.Width(); x++ {
			b.WriteString("+")
			b.WriteString(horizontal(w.Wall(x, y, grid.South)))
		}
		b.WriteString("+\n")
	}
	return b.String()
}

func horizontal(closed bool) string {
	if closed {
		return "---"
	}
	return "   "
}

func vertical(closed bool) string {
	if closed {
		return "|"
	}
	return " "
}
