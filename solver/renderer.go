package solver

import (
	"errors"
	"fmt"
)

// DefaultPathGlyph marks route cells and the corridors between them.
const DefaultPathGlyph = '.'

var (
	ErrEmptyRoute  = errors.New("route is empty")
	ErrBrokenRoute = errors.New("route steps between non adjacent cells")
)

// Overlay draws route onto a copy of m's display grid and returns the copy.
// Every route cell is marked with glyph, and so is the wall position lying between
// each consecutive pair of cells. The maze's own grid is left untouched.
func Overlay(m Maze, route Route, glyph rune) (Grid, error) {
	if len(route) == 0 {
		return nil, ErrEmptyRoute
	}

	solved := m.DisplayGrid().Clone()
	for i, cell := range route {
		solved.set(cell.GetDisplayRow(), cell.GetDisplayCol(), glyph)
		if i == 0 {
			continue
		}

		prev := route[i-1]
		dRow := cell.GetRow() - prev.GetRow()
		dCol := cell.GetCol() - prev.GetCol()
		if abs(dRow)+abs(dCol) != 1 {
			return nil, fmt.Errorf("step %d from (%d,%d) to (%d,%d): %w",
				i, prev.GetRow(), prev.GetCol(), cell.GetRow(), cell.GetCol(), ErrBrokenRoute)
		}

		// The connector sits one display unit back from the current cell, against the
		// direction of movement.
		solved.set(cell.GetDisplayRow()-dRow, cell.GetDisplayCol()-dCol, glyph)
	}

	return solved, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
