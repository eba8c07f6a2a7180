package i

import (
	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/google/uuid"
)

// Solution is the outcome of one generate, solve and render cycle.
type Solution struct {
	ID      uuid.UUID    // Identifies this solve in logs and responses
	Variant int64        // Maze variant the maze was generated from
	Width   int          // Logical columns
	Height  int          // Logical rows
	Maze    solver.Grid  // The unsolved display grid
	Solved  solver.Grid  // The display grid with the route drawn on it; nil when Found is false
	Route   solver.Route // The route found; nil when Found is false
	Found   bool         // Whether a route exists
}

// Solver generates maze variants and solves them.
type Solver interface {
	// Maze returns the unsolved display grid of a variant.
	Maze(variant int64) (solver.Grid, error)

	// Solve generates the variant, searches it for a route and renders the result.
	// An unreachable end cell is reported through Solution.Found, not as an error.
	Solve(variant int64) (*Solution, error)
}
