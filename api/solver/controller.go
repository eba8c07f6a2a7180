package solverapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/gin-gonic/gin"
)

var ErrNilSolver = errors.New("solver must not be nil")

// SolverController serves maze variants and their solutions.
type SolverController struct {
	solver i.Solver
	width  int
	height int
}

// NewSolverController initializes a SolverController.
func NewSolverController(s i.Solver, width, height int) (*SolverController, error) {
	if s == nil {
		return nil, ErrNilSolver
	}
	return &SolverController{
		solver: s,
		width:  width,
		height: height,
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SolverController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:variant", sc.maze)
		mazes.GET("/:variant/solution", sc.solution)
	}
}

// variant parses the variant path parameter, answering 400 when it is not an integer.
func (sc *SolverController) variant(ctx *gin.Context) (int64, bool) {
	variant, err := strconv.ParseInt(ctx.Param("variant"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "variant must be an integer"})
		return 0, false
	}
	return variant, true
}

// maze returns the unsolved maze of a variant.
func (sc *SolverController) maze(ctx *gin.Context) {
	variant, ok := sc.variant(ctx)
	if !ok {
		return
	}

	grid, err := sc.solver.Maze(variant)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusOK, &MazeResponse{
		Variant: variant,
		Width:   sc.width,
		Height:  sc.height,
		Maze:    grid.Lines(),
	})
}

// solution solves a variant and returns both grids and the route.
func (sc *SolverController) solution(ctx *gin.Context) {
	variant, ok := sc.variant(ctx)
	if !ok {
		return
	}

	solution, err := sc.solver.Solve(variant)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		return
	}

	response := &SolutionResponse{
		ID:      solution.ID,
		Variant: solution.Variant,
		Found:   solution.Found,
		Maze:    solution.Maze.Lines(),
	}
	if solution.Found {
		response.Solved = solution.Solved.Lines()
		response.Route = make([]CellResponse, len(solution.Route))
		for idx, c := range solution.Route {
			response.Route[idx] = CellResponse{Row: c.GetRow(), Col: c.GetCol()}
		}
	}

	ctx.JSON(http.StatusOK, response)
}
