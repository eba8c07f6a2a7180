package solver

import "strings"

// Grid is a two dimensional array of glyphs indexed by [row][col].
type Grid [][]rune

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the width of the first row, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	clone := make(Grid, len(g))
	for row := range g {
		clone[row] = make([]rune, len(g[row]))
		copy(clone[row], g[row])
	}
	return clone
}

// Lines returns every row of the grid as a string.
func (g Grid) Lines() []string {
	lines := make([]string, len(g))
	for row := range g {
		lines[row] = string(g[row])
	}
	return lines
}

// String joins the rows of the grid with newlines.
func (g Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func (g Grid) set(row, col int, glyph rune) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return
	}
	g[row][col] = glyph
}
