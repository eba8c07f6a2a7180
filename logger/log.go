// Package logger provides a small levelled logger that tags every line with a
// coloured component prefix, e.g. "[SOLVER] [INFO] solved maze".
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gookit/color"
)

// Level orders log severities; messages below the logger's level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

var (
	ErrEmptyPrefix  = errors.New("logger prefix must not be empty")
	ErrNilWriter    = errors.New("logger writer must not be nil")
	ErrUnknownLevel = errors.New("unknown log level")
)

// Logger writes prefixed, levelled lines to a writer.
type Logger struct {
	out    *log.Logger
	prefix string
	level  Level
}

// New creates a logger whose prefix is rendered in c.
func New(prefix string, c color.Color, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		out:    log.New(w, "", log.LstdFlags),
		prefix: c.Sprintf("[%s]", prefix),
		level:  LevelInfo,
	}, nil
}

// ParseLevel maps a level name (debug, info, warning, error) to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
}

// SetLevel changes the minimum level that gets written.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// Debug writes msg at debug level.
func (l *Logger) Debug(msg string) {
	l.write(LevelDebug, "DEBUG", msg)
}

// Info writes msg at info level.
func (l *Logger) Info(msg string) {
	l.write(LevelInfo, "INFO", msg)
}

// Warning writes msg at warning level.
func (l *Logger) Warning(msg string) {
	l.write(LevelWarning, "WARNING", msg)
}

// Error writes msg at error level, with the level tag in red.
func (l *Logger) Error(msg string) {
	l.write(LevelError, color.Red.Sprint("ERROR"), msg)
}

// write prints msg with the prefix and tag when level is enabled.
func (l *Logger) write(level Level, tag, msg string) {
	if level < l.level {
		return
	}
	l.out.Printf("%s [%s] %s", l.prefix, tag, msg)
}
