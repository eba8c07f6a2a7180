package solver

import (
	"errors"

	"github.com/zyedidia/generic/mapset"
)

// ErrNoRoute is returned when the end cell cannot be reached from the start cell.
var ErrNoRoute = errors.New("no route between start and end cell")

// Route is an ordered sequence of adjacent cells from the start cell to the end cell.
type Route []Cell

// frame is one level of the depth first search: the cell on the path and the
// neighbors of it that have not been tried yet.
type frame struct {
	cell       Cell
	candidates []Cell
}

// PathFinder performs a backtracking depth first search over a maze.
// Neighbors are tried in exactly the order the maze reports them, so the route found
// is not necessarily the shortest.
type PathFinder struct{}

// NewPathFinder returns a ready to use PathFinder.
func NewPathFinder() *PathFinder {
	return &PathFinder{}
}

// Find returns a route from m's start cell to its end cell, or ErrNoRoute.
// The maze is never modified.
func (f *PathFinder) Find(m Maze) (Route, error) {
	start, end := m.StartCell(), m.EndCell()
	if SameCell(start, end) {
		return Route{start}, nil
	}

	// A cell stays visited after its branch is abandoned, which bounds the search
	// by the number of reachable cells.
	visited := mapset.New[position]()
	visited.Put(positionOf(start))

	stack := make([]frame, 0, 16)
	top, reached := f.expand(m, start, end, visited)
	if reached {
		return Route{start, end}, nil
	}
	stack = append(stack, top)

	for len(stack) > 0 {
		current := &stack[len(stack)-1]
		if len(current.candidates) == 0 {
			// Dead end: undo this cell and let the parent try its next candidate.
			stack = stack[:len(stack)-1]
			continue
		}

		next := current.candidates[0]
		current.candidates = current.candidates[1:]
		if visited.Has(positionOf(next)) {
			// Claimed by a deeper branch after the candidates were filtered.
			continue
		}
		visited.Put(positionOf(next))

		nextFrame, reached := f.expand(m, next, end, visited)
		stack = append(stack, nextFrame)
		if reached {
			return routeOf(stack, end), nil
		}
	}

	return nil, ErrNoRoute
}

// expand builds the frame for c. reached is true when end is an unvisited neighbor of c.
func (f *PathFinder) expand(m Maze, c, end Cell, visited mapset.Set[position]) (frame, bool) {
	neighbors := m.Neighbors(c)
	candidates := make([]Cell, 0, len(neighbors))
	for _, n := range neighbors {
		if visited.Has(positionOf(n)) {
			continue
		}
		if SameCell(n, end) {
			return frame{cell: c}, true
		}
		candidates = append(candidates, n)
	}
	return frame{cell: c, candidates: candidates}, false
}

// routeOf copies the cells on the stack into a new route terminated by end.
func routeOf(stack []frame, end Cell) Route {
	route := make(Route, 0, len(stack)+1)
	for _, fr := range stack {
		route = append(route, fr.cell)
	}
	return append(route, end)
}
