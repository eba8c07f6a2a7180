package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/beka-birhanu/vinom-solver/solver/maze"
	"github.com/google/uuid"
)

var (
	ErrNilLogger    = errors.New("logger must not be nil")
	ErrInvalidGlyph = errors.New("path glyph must differ from the maze's wall and open glyphs")
)

// SolveConfig holds the settings every generated maze shares.
type SolveConfig struct {
	Width     int      // Logical columns of generated mazes
	Height    int      // Logical rows of generated mazes
	Erode     int      // Percentage of interior walls opened after generation
	PathGlyph rune     // Glyph the route is drawn with
	Logger    i.Logger // Logger for solve events
}

// SolveService builds mazes from variant numbers and solves them.
type SolveService struct {
	width     int
	height    int
	erode     int
	pathGlyph rune
	finder    *solver.PathFinder
	logger    i.Logger
}

// NewSolveService validates the config by building a throwaway maze.
func NewSolveService(cfg SolveConfig) (*SolveService, error) {
	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}
	if _, err := maze.New(cfg.Width, cfg.Height, 0); err != nil {
		return nil, err
	}
	if cfg.Erode < 0 || cfg.Erode > 100 {
		return nil, maze.ErrInvalidErosion
	}
	if cfg.PathGlyph == 0 {
		cfg.PathGlyph = solver.DefaultPathGlyph
	}
	if maze.IsMazeGlyph(cfg.PathGlyph) {
		return nil, fmt.Errorf("%q: %w", cfg.PathGlyph, ErrInvalidGlyph)
	}

	return &SolveService{
		width:     cfg.Width,
		height:    cfg.Height,
		erode:     cfg.Erode,
		pathGlyph: cfg.PathGlyph,
		finder:    solver.NewPathFinder(),
		logger:    cfg.Logger,
	}, nil
}

// build generates the maze for a variant.
func (s *SolveService) build(variant int64) (*maze.WillsonMaze, error) {
	m, err := maze.New(s.width, s.height, variant)
	if err != nil {
		return nil, fmt.Errorf("generating variant %d: %w", variant, err)
	}
	if err := m.ErodeWalls(s.erode); err != nil {
		return nil, fmt.Errorf("eroding variant %d: %w", variant, err)
	}
	return m, nil
}

// Maze returns the unsolved display grid of a variant.
func (s *SolveService) Maze(variant int64) (solver.Grid, error) {
	m, err := s.build(variant)
	if err != nil {
		return nil, err
	}
	return m.DisplayGrid(), nil
}

// Solve generates the variant, finds a route and draws it.
func (s *SolveService) Solve(variant int64) (*i.Solution, error) {
	m, err := s.build(variant)
	if err != nil {
		return nil, err
	}
	return s.solve(m, variant)
}

func (s *SolveService) solve(m solver.Maze, variant int64) (*i.Solution, error) {
	solution := &i.Solution{
		ID:      uuid.New(),
		Variant: variant,
		Width:   s.width,
		Height:  s.height,
		Maze:    m.DisplayGrid(),
	}
	s.logger.Debug(fmt.Sprintf("solve %s: variant %d, %dx%d", solution.ID, variant, s.width, s.height))

	started := time.Now()
	route, err := s.finder.Find(m)
	if errors.Is(err, solver.ErrNoRoute) {
		s.logger.Warning(fmt.Sprintf("solve %s: no route for variant %d", solution.ID, variant))
		return solution, nil
	}
	if err != nil {
		return nil, fmt.Errorf("solve %s: %w", solution.ID, err)
	}

	solved, err := solver.Overlay(m, route, s.pathGlyph)
	if err != nil {
		s.logger.Error(fmt.Sprintf("solve %s: rendering route: %v", solution.ID, err))
		return nil, fmt.Errorf("solve %s: %w", solution.ID, err)
	}

	solution.Route = route
	solution.Solved = solved
	solution.Found = true
	s.logger.Info(fmt.Sprintf("solve %s: variant %d solved with %d cells in %s",
		solution.ID, variant, len(route), time.Since(started)))
	return solution, nil
}
