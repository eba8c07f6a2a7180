package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-solver/api"
	apii "github.com/beka-birhanu/vinom-solver/api/i"
	solverapi "github.com/beka-birhanu/vinom-solver/api/solver"
	"github.com/beka-birhanu/vinom-solver/config"
	"github.com/beka-birhanu/vinom-solver/logger"
	"github.com/beka-birhanu/vinom-solver/render"
	"github.com/beka-birhanu/vinom-solver/service"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"golang.org/x/term"
)

const defaultVariant = 1

var (
	errTooManyArgs   = errors.New("please only enter one argument")
	errNotAnInteger  = errors.New("you must enter an integer")
	errUnknownColour = errors.New("-color must be auto, always or never")
)

// options are the parsed command line settings.
type options struct {
	variant  int64
	pngPath  string
	pngScale int
	color    string
	serve    bool
}

// valueFlags take a separate value argument when not written as -flag=value.
var valueFlags = map[string]bool{"-png": true, "--png": true, "-scale": true, "--scale": true, "-color": true, "--color": true}

// splitNumbers pulls negative integers out of args so flag does not read them as
// undefined flags. Values following a flag that expects one are left in place.
func splitNumbers(args []string) (flagArgs, numbers []string) {
	for idx := 0; idx < len(args); idx++ {
		arg := args[idx]
		if arg == "--" {
			return flagArgs, append(numbers, args[idx+1:]...)
		}
		if valueFlags[arg] && idx+1 < len(args) {
			flagArgs = append(flagArgs, arg, args[idx+1])
			idx++
			continue
		}
		if strings.HasPrefix(arg, "-") {
			if _, err := strconv.ParseInt(arg, 10, 64); err == nil {
				numbers = append(numbers, arg)
				continue
			}
		}
		flagArgs = append(flagArgs, arg)
	}
	return flagArgs, numbers
}

// parseArgs reads flags and the optional variant argument.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("vinom-solver", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := &options{variant: defaultVariant}
	fs.StringVar(&opts.pngPath, "png", "", "also write the solved maze to this PNG file")
	fs.IntVar(&opts.pngScale, "scale", 8, "pixels per glyph in the PNG output")
	fs.StringVar(&opts.color, "color", "auto", "highlight the route: auto, always or never")
	fs.BoolVar(&opts.serve, "serve", false, "serve the HTTP API instead of printing a maze")
	flagArgs, numbers := splitNumbers(args)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}

	switch opts.color {
	case "auto", "always", "never":
	default:
		return nil, errUnknownColour
	}

	rest := append(numbers, fs.Args()...)
	if len(rest) > 1 {
		return nil, errTooManyArgs
	}
	if len(rest) == 1 {
		variant, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return nil, errNotAnInteger
		}
		opts.variant = variant
	}
	return opts, nil
}

// useColour decides whether the route gets highlighted.
func useColour(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(out.Fd()))
}

// printSolution writes the unsolved maze, then the solved one.
func printSolution(w io.Writer, s *i.Solution, glyph rune, colour bool) {
	fmt.Fprintln(w, s.Maze.String())
	fmt.Fprintln(w)
	if !s.Found {
		fmt.Fprintln(w, "No route found")
		return
	}
	if colour {
		fmt.Fprintln(w, render.Colorize(s.Solved, glyph))
		return
	}
	fmt.Fprintln(w, s.Solved.String())
}

// exportPNG writes the solved grid to path, or warns and skips when there is no route.
func exportPNG(path string, s *i.Solution, glyph rune, scale int, log i.Logger) error {
	if !s.Found {
		log.Warning(fmt.Sprintf("No route for variant %d, skipping %s", s.Variant, path))
		return nil
	}
	if err := writePNG(path, s, glyph, scale); err != nil {
		return err
	}
	log.Info(fmt.Sprintf("Wrote %s", path))
	return nil
}

func writePNG(path string, s *i.Solution, glyph rune, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, s.Solved, glyph, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func serve(svc *service.SolveService, appLogger *logger.Logger) error {
	controller, err := solverapi.NewSolverController(svc, config.Envs.MazeWidth, config.Envs.MazeHeight)
	if err != nil {
		return err
	}
	router := api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		GinMode:     config.Envs.GinMode,
		Controllers: []apii.Controller{controller},
	})
	appLogger.Info(fmt.Sprintf("Serving on %s:%v", config.Envs.HostIP, config.Envs.RESTPort))
	return router.Run()
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	// Logs go to stderr so stdout carries only the mazes.
	appLogger, err := logger.New("APP", config.ColorGreen, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := logger.ParseLevel(config.Envs.LogLevel)
	if err != nil {
		appLogger.Warning(err.Error())
	}
	appLogger.SetLevel(level)

	solverLogger, err := logger.New("SOLVER", config.ColorCyan, os.Stderr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver logger: %v", err))
		os.Exit(1)
	}
	solverLogger.SetLevel(level)

	svc, err := service.NewSolveService(service.SolveConfig{
		Width:     config.Envs.MazeWidth,
		Height:    config.Envs.MazeHeight,
		Erode:     config.Envs.MazeErode,
		PathGlyph: config.Envs.PathGlyph,
		Logger:    solverLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve service: %v", err))
		os.Exit(1)
	}

	if opts.serve {
		if err := serve(svc, appLogger); err != nil {
			appLogger.Error(fmt.Sprintf("Starting server: %v", err))
			os.Exit(1)
		}
		return
	}

	solution, err := svc.Solve(opts.variant)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Solving variant %d: %v", opts.variant, err))
		os.Exit(1)
	}
	printSolution(os.Stdout, solution, config.Envs.PathGlyph, useColour(opts.color, os.Stdout))

	if opts.pngPath != "" {
		if err := exportPNG(opts.pngPath, solution, config.Envs.PathGlyph, opts.pngScale, appLogger); err != nil {
			appLogger.Error(fmt.Sprintf("Writing %s: %v", opts.pngPath, err))
			os.Exit(1)
		}
	}
}
