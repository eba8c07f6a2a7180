/*
Package maze provides rectangular mazes that can be handed to the solver.

A WillsonMaze is generated with Wilson's algorithm from a seeded random source, so the
same seed and dimensions always produce the same maze. Walls can later be eroded to add
cycles, or a cell can be walled in completely to make it unreachable.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/beka-birhanu/vinom-solver/solver"
)

const (
	maxMazeDimension = 100
)

// Directions a move can take.
const (
	North = "North"
	South = "South"
	East  = "East"
	West  = "West"
)

// Glyphs the display grid is drawn with.
const (
	CornerGlyph         = '+'
	HorizontalWallGlyph = '-'
	VerticalWallGlyph   = '|'
	OpenGlyph           = ' '
)

// IsMazeGlyph reports whether r is one of the glyphs DisplayGrid draws with,
// which makes it unusable for marking a route.
func IsMazeGlyph(r rune) bool {
	switch r {
	case CornerGlyph, HorizontalWallGlyph, VerticalWallGlyph, OpenGlyph:
		return true
	}
	return false
}

var (
	// directions is ordered so generation and neighbor lookups are deterministic.
	directions = []struct {
		name  string
		delta CellPosition
	}{
		{North, CellPosition{Row: -1, Col: 0}},
		{South, CellPosition{Row: 1, Col: 0}},
		{East, CellPosition{Row: 0, Col: 1}},
		{West, CellPosition{Row: 0, Col: -1}},
	}

	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidErosion    = errors.New("erosion must be a percentage between 0 and 100")
	ErrOutOfBounds       = errors.New("cell is out of the maze")
)

// WillsonMaze represents a rectangular maze consisting of cells with walls.
type WillsonMaze struct {
	width  int        // Width of the maze (number of columns)
	height int        // Height of the maze (number of rows)
	grid   [][]*Cell  // 2D grid of cells forming the maze
	rng    *rand.Rand // Source for generation and erosion
}

// New initializes a maze of the given dimensions and generates its layout from seed.
func New(width, height int, seed int64) (*WillsonMaze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}

	grid := make([][]*Cell, height)
	for i := range grid {
		grid[i] = make([]*Cell, width)
		for j := range grid[i] {
			grid[i][j] = closed()
		}
	}

	m := &WillsonMaze{
		width:  width,
		height: height,
		grid:   grid,
		rng:    rand.New(rand.NewSource(seed)),
	}
	m.generateMaze()
	return m, nil
}

// Width returns the number of columns.
func (m *WillsonMaze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *WillsonMaze) Height() int {
	return m.height
}

// InBound checks whether the position lies inside the maze.
func (m *WillsonMaze) InBound(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// CellAt returns the walls of the cell at pos.
func (m *WillsonMaze) CellAt(pos CellPosition) (Cell, error) {
	if !m.InBound(pos.Row, pos.Col) {
		return Cell{}, ErrOutOfBounds
	}
	return *m.grid[pos.Row][pos.Col], nil
}

// StartCell returns the top left cell.
func (m *WillsonMaze) StartCell() solver.Cell {
	return CellPosition{Row: 0, Col: 0}
}

// EndCell returns the bottom right cell.
func (m *WillsonMaze) EndCell() solver.Cell {
	return CellPosition{Row: m.height - 1, Col: m.width - 1}
}

// Neighbors returns the cells reachable from c through an open wall,
// in North, South, East, West order.
func (m *WillsonMaze) Neighbors(c solver.Cell) []solver.Cell {
	if !m.InBound(c.GetRow(), c.GetCol()) {
		return nil
	}
	pos := CellPosition{Row: c.GetRow(), Col: c.GetCol()}
	var result []solver.Cell
	for _, move := range m.moves(pos) {
		if !m.grid[pos.Row][pos.Col].hasWall(move.Direction) {
			result = append(result, move.To)
		}
	}
	return result
}

// randomCellPosition generates a random position within the maze.
func (m *WillsonMaze) randomCellPosition() CellPosition {
	return CellPosition{Row: m.rng.Intn(m.height), Col: m.rng.Intn(m.width)}
}

// randomUnvisitedCellPosition selects a random position that has not been visited.
func (m *WillsonMaze) randomUnvisitedCellPosition(visited map[CellPosition]struct{}) CellPosition {
	for {
		pos := m.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// moves finds all in-bound moves from a given cell position, walls ignored.
func (m *WillsonMaze) moves(pos CellPosition) []Move {
	var result []Move
	for _, d := range directions {
		to := CellPosition{Row: pos.Row + d.delta.Row, Col: pos.Col + d.delta.Col}
		if m.InBound(to.Row, to.Col) {
			result = append(result, Move{From: pos, To: to, Direction: d.name})
		}
	}
	return result
}

// setWall raises or removes the wall crossed by move on both sides.
func (m *WillsonMaze) setWall(move Move, up bool) {
	from := m.grid[move.From.Row][move.From.Col]
	to := m.grid[move.To.Row][move.To.Col]
	switch move.Direction {
	case North:
		from.NorthWall, to.SouthWall = up, up
	case South:
		from.SouthWall, to.NorthWall = up, up
	case East:
		from.EastWall, to.WestWall = up, up
	case West:
		from.WestWall, to.EastWall = up, up
	}
}

// randomWalk walks from an unvisited cell until it hits the visited tree,
// recording the last exit taken out of every cell on the way.
func (m *WillsonMaze) randomWalk(visited map[CellPosition]struct{}) map[CellPosition]Move {
	cell := m.randomUnvisitedCellPosition(visited)
	visits := make(map[CellPosition]Move)

	for {
		moves := m.moves(cell)
		next := moves[m.rng.Intn(len(moves))]
		visits[cell] = next
		if _, included := visited[next.To]; included {
			break
		}
		cell = next.To
	}

	return visits
}

// generateMaze carves a perfect maze using Wilson's algorithm.
func (m *WillsonMaze) generateMaze() {
	visited := make(map[CellPosition]struct{})
	visited[m.randomCellPosition()] = struct{}{}

	for len(visited) < m.width*m.height {
		for cell, move := range m.randomWalk(visited) {
			m.setWall(move, false)
			visited[cell] = struct{}{}
		}
	}
}

// ErodeWalls opens roughly percent of the remaining interior walls, which adds cycles.
func (m *WillsonMaze) ErodeWalls(percent int) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidErosion
	}
	if percent == 0 {
		return nil
	}

	// Only South and East moves, so every interior wall is considered once.
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			for _, move := range m.moves(pos) {
				if move.Direction != South && move.Direction != East {
					continue
				}
				if !m.grid[row][col].hasWall(move.Direction) {
					continue
				}
				if m.rng.Intn(100) < percent {
					m.setWall(move, false)
				}
			}
		}
	}
	return nil
}

// Isolate raises every wall around pos, cutting it off from the rest of the maze.
func (m *WillsonMaze) Isolate(pos CellPosition) error {
	if !m.InBound(pos.Row, pos.Col) {
		return ErrOutOfBounds
	}
	for _, move := range m.moves(pos) {
		m.setWall(move, true)
	}
	return nil
}

// DisplayGrid draws the maze at double resolution: cell (r, c) sits at
// (2r+1, 2c+1) and odd offsets between cells hold walls or open corridors.
func (m *WillsonMaze) DisplayGrid() solver.Grid {
	rows, cols := 2*m.height+1, 2*m.width+1
	g := make(solver.Grid, rows)
	for r := range g {
		g[r] = []rune(strings.Repeat(string(OpenGlyph), cols))
	}

	for r := 0; r < rows; r += 2 {
		for c := 0; c < cols; c += 2 {
			g[r][c] = CornerGlyph
		}
	}

	// Top and left boundary
	for col := 0; col < m.width; col++ {
		if m.grid[0][col].NorthWall {
			g[0][2*col+1] = HorizontalWallGlyph
		}
	}
	for row := 0; row < m.height; row++ {
		if m.grid[row][0].WestWall {
			g[2*row+1][0] = VerticalWallGlyph
		}
	}

	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			cell := m.grid[row][col]
			if cell.EastWall {
				g[2*row+1][2*col+2] = VerticalWallGlyph
			}
			if cell.SouthWall {
				g[2*row+2][2*col+1] = HorizontalWallGlyph
			}
		}
	}

	return g
}

// String provides a textual representation of the maze.
func (m *WillsonMaze) String() string {
	return m.DisplayGrid().String()
}
