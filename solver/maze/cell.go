package maze

// Cell represents a single cell in a maze grid and the walls around it.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
}

// closed returns a cell with all four walls up.
func closed() *Cell {
	return &Cell{NorthWall: true, SouthWall: true, EastWall: true, WestWall: true}
}

// hasWall reports whether the wall facing direction is up.
func (c *Cell) hasWall(direction string) bool {
	switch direction {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	}
	return true
}

// CellPosition is the logical position of a cell in the maze grid.
// It satisfies solver.Cell.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// GetRow returns the row index of the cell.
func (cp CellPosition) GetRow() int {
	return cp.Row
}

// GetCol returns the column index of the cell.
func (cp CellPosition) GetCol() int {
	return cp.Col
}

// GetDisplayRow returns the row of the cell on the display grid.
func (cp CellPosition) GetDisplayRow() int {
	return 2*cp.Row + 1
}

// GetDisplayCol returns the column of the cell on the display grid.
func (cp CellPosition) GetDisplayCol() int {
	return 2*cp.Col + 1
}

// Move represents a step from one cell to an adjacent one.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction string       // Direction of the move (North, South, East, West)
}
