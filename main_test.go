package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Run("Default variant", func(t *testing.T) {
		opts, err := parseArgs(nil, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, int64(defaultVariant), opts.variant)
		assert.Equal(t, "auto", opts.color)
	})

	t.Run("Variant and flags", func(t *testing.T) {
		opts, err := parseArgs([]string{"-png", "out.png", "-scale", "3", "-color", "never", "42"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, int64(42), opts.variant)
		assert.Equal(t, "out.png", opts.pngPath)
		assert.Equal(t, 3, opts.pngScale)
		assert.Equal(t, "never", opts.color)
	})

	t.Run("Negative variant", func(t *testing.T) {
		opts, err := parseArgs([]string{"--", "-7"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, int64(-7), opts.variant)
	})

	t.Run("Bare negative variant", func(t *testing.T) {
		opts, err := parseArgs([]string{"-7"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, int64(-7), opts.variant)
	})

	t.Run("Negative variant after flags", func(t *testing.T) {
		opts, err := parseArgs([]string{"-color", "never", "-12"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, int64(-12), opts.variant)
		assert.Equal(t, "never", opts.color)
	})

	t.Run("Negative variant before flags", func(t *testing.T) {
		opts, err := parseArgs([]string{"-3", "-png", "out.png"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, int64(-3), opts.variant)
		assert.Equal(t, "out.png", opts.pngPath)
	})

	t.Run("Two negative variants", func(t *testing.T) {
		_, err := parseArgs([]string{"-1", "-2"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, errTooManyArgs)
	})

	t.Run("Non integer", func(t *testing.T) {
		_, err := parseArgs([]string{"maze"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, errNotAnInteger)
	})

	t.Run("Too many arguments", func(t *testing.T) {
		_, err := parseArgs([]string{"1", "2"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, errTooManyArgs)
	})

	t.Run("Unknown colour mode", func(t *testing.T) {
		_, err := parseArgs([]string{"-color", "sometimes"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, errUnknownColour)
	})
}

func TestPrintSolution(t *testing.T) {
	maze := solver.Grid{[]rune("+-+-+"), []rune("|   |"), []rune("+-+-+")}
	solved := solver.Grid{[]rune("+-+-+"), []rune("|...|"), []rune("+-+-+")}

	t.Run("Unsolved then solved", func(t *testing.T) {
		var buf bytes.Buffer
		printSolution(&buf, &i.Solution{Maze: maze, Solved: solved, Found: true}, '.', false)
		assert.Equal(t, "+-+-+\n|   |\n+-+-+\n\n+-+-+\n|...|\n+-+-+\n", buf.String())
	})

	t.Run("No route", func(t *testing.T) {
		var buf bytes.Buffer
		printSolution(&buf, &i.Solution{Maze: maze}, '.', false)
		assert.Equal(t, "+-+-+\n|   |\n+-+-+\n\nNo route found\n", buf.String())
	})
}

// recordingLogger keeps every message it receives.
type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debug(msg string)   { r.lines = append(r.lines, "DEBUG "+msg) }
func (r *recordingLogger) Info(msg string)    { r.lines = append(r.lines, "INFO "+msg) }
func (r *recordingLogger) Warning(msg string) { r.lines = append(r.lines, "WARNING "+msg) }
func (r *recordingLogger) Error(msg string)   { r.lines = append(r.lines, "ERROR "+msg) }

func TestExportPNG(t *testing.T) {
	maze := solver.Grid{[]rune("+-+-+"), []rune("|   |"), []rune("+-+-+")}
	solved := solver.Grid{[]rune("+-+-+"), []rune("|...|"), []rune("+-+-+")}

	t.Run("Writes the solved maze", func(t *testing.T) {
		log := &recordingLogger{}
		path := filepath.Join(t.TempDir(), "solved.png")

		err := exportPNG(path, &i.Solution{Maze: maze, Solved: solved, Found: true}, '.', 2, log)
		require.NoError(t, err)
		_, err = os.Stat(path)
		assert.NoError(t, err)
		require.Len(t, log.lines, 1)
		assert.Contains(t, log.lines[0], "INFO")
	})

	t.Run("Warns and skips without a route", func(t *testing.T) {
		log := &recordingLogger{}
		path := filepath.Join(t.TempDir(), "solved.png")

		err := exportPNG(path, &i.Solution{Variant: 4, Maze: maze}, '.', 2, log)
		require.NoError(t, err)
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
		require.Len(t, log.lines, 1)
		assert.Contains(t, log.lines[0], "WARNING")
		assert.Contains(t, log.lines[0], "variant 4")
	})
}
