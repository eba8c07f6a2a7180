/*
Package solver finds a route through a maze and draws it onto the maze's display grid.

The maze itself is an external collaborator consumed only through the Maze interface:
generation, wall storage and the logical to display coordinate mapping live elsewhere.
*/
package solver

// Cell defines the methods that a maze cell must implement.
// Two cells are the same cell iff their logical row and column match.
type Cell interface {
	GetRow() int        // logical row
	GetCol() int        // logical column
	GetDisplayRow() int // row on the double resolution display grid
	GetDisplayCol() int // column on the double resolution display grid
}

// Maze defines the methods that a solvable maze must implement.
type Maze interface {
	// StartCell returns the cell a route begins at.
	StartCell() Cell

	// EndCell returns the cell a route must reach.
	EndCell() Cell

	// Neighbors returns the cells reachable in one step from c, in a stable order,
	// without duplicates and never including c itself.
	Neighbors(c Cell) []Cell

	// DisplayGrid returns a fresh snapshot of the maze drawn at double resolution.
	DisplayGrid() Grid
}

// position is the logical identity of a cell.
type position struct {
	row int
	col int
}

func positionOf(c Cell) position {
	return position{row: c.GetRow(), col: c.GetCol()}
}

// SameCell reports whether a and b share logical coordinates.
func SameCell(a, b Cell) bool {
	return positionOf(a) == positionOf(b)
}
