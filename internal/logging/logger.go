// Package logging is the leveled logger shared by the genchem binaries.
// A *Logger satisfies genchem.Logger, so it can be handed to the engine,
// the chemistry manager and the notification manager directly.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string log level (case-insensitive). Unknown values
// fall back to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger provides leveled logging functionality
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to stderr with the standard log flags.
func New(level string) *Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(level string, w io.Writer) *Logger {
	return &Logger{
		level: ParseLevel(level),
		out:   log.New(w, "", log.LstdFlags),
	}
}

// Level returns the minimum level that is written.
func (l *Logger) Level() Level { return l.level }

func (l *Logger) logf(level Level, tag, format string, v ...any) {
	if level < l.level {
		return
	}
	l.out.Printf("["+tag+"] "+format, v...)
}

// Debugf logs a debug message
func (l *Logger) Debugf(format string, v ...any) { l.logf(LevelDebug, "DEBUG", format, v...) }

// Infof logs an info message
func (l *Logger) Infof(format string, v ...any) { l.logf(LevelInfo, "INFO", format, v...) }

// Warnf logs a warning message
func (l *Logger) Warnf(format string, v ...any) { l.logf(LevelWarn, "WARN", format, v...) }

// Errorf logs an error message
func (l *Logger) Errorf(format string, v ...any) { l.logf(LevelError, "ERROR", format, v...) }

// Fatalf logs an error message and exits
func (l *Logger) Fatalf(format string, v ...any) {
	l.out.Fatalf("[FATAL] "+format, v...)
}

// Info logs an info message built with fmt.Sprint
func (l *Logger) Info(v ...any) { l.logf(LevelInfo, "INFO", "%s", fmt.Sprint(v...)) }

// Error logs an error message built with fmt.Sprint
func (l *Logger) Error(v ...any) { l.logf(LevelError, "ERROR", "%s", fmt.Sprint(v...)) }
