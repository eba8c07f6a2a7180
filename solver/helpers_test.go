package solver

import "strings"

// testCell is a bare Cell using the same doubled display mapping as real mazes.
type testCell struct {
	row, col int
}

func (c testCell) GetRow() int        { return c.row }
func (c testCell) GetCol() int        { return c.col }
func (c testCell) GetDisplayRow() int { return 2*c.row + 1 }
func (c testCell) GetDisplayCol() int { return 2*c.col + 1 }

// graphMaze is a Maze backed by an explicit adjacency list.
type graphMaze struct {
	rows, cols int
	start, end testCell
	adjacency  map[testCell][]testCell
	calls      map[testCell]int
}

func newGraphMaze(rows, cols int, start, end testCell) *graphMaze {
	return &graphMaze{
		rows:      rows,
		cols:      cols,
		start:     start,
		end:       end,
		adjacency: map[testCell][]testCell{},
		calls:     map[testCell]int{},
	}
}

// link connects a and b in both directions, appending to each neighbor list.
func (g *graphMaze) link(a, b testCell) *graphMaze {
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	return g
}

func (g *graphMaze) StartCell() Cell { return g.start }
func (g *graphMaze) EndCell() Cell   { return g.end }

func (g *graphMaze) Neighbors(c Cell) []Cell {
	key := testCell{c.GetRow(), c.GetCol()}
	g.calls[key]++
	var result []Cell
	for _, n := range g.adjacency[key] {
		result = append(result, n)
	}
	return result
}

func (g *graphMaze) DisplayGrid() Grid {
	grid := make(Grid, 2*g.rows+1)
	for r := range grid {
		grid[r] = []rune(strings.Repeat("#", 2*g.cols+1))
	}
	return grid
}

// isNeighbor reports whether b is in a's neighbor list.
func (g *graphMaze) isNeighbor(a, b Cell) bool {
	for _, n := range g.adjacency[testCell{a.GetRow(), a.GetCol()}] {
		if SameCell(n, b) {
			return true
		}
	}
	return false
}

// fullGrid links every pair of orthogonally adjacent cells, which gives many cycles.
func fullGrid(rows, cols int) *graphMaze {
	g := newGraphMaze(rows, cols, testCell{0, 0}, testCell{rows - 1, cols - 1})
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r+1 < rows {
				g.link(testCell{r, c}, testCell{r + 1, c})
			}
			if c+1 < cols {
				g.link(testCell{r, c}, testCell{r, c + 1})
			}
		}
	}
	return g
}
