// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// dspace-utils commands.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain run-scoped
// loggers via FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Verbosity levels accepted by the --verbose flag.
var verbosityLevels = map[string]zerolog.Level{
	"critical": zerolog.FatalLevel,
	"error":    zerolog.ErrorLevel,
	"warning":  zerolog.WarnLevel,
	"info":     zerolog.InfoLevel,
	"debug":    zerolog.DebugLevel,
}

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// ParseVerbosity maps a --verbose value to a zerolog level. Matching is case
// insensitive.
func ParseVerbosity(verbosity string) (zerolog.Level, error) {
	level, ok := verbosityLevels[strings.ToLower(strings.TrimSpace(verbosity))]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("unknown verbosity %q: want one of critical, error, warning, info, debug", verbosity)
	}
	return level, nil
}

// NewCLILogger constructs a *Logger for a command-line run.
//
// The logger is configured with:
//   - the given minimum level;
//   - a "role" field set to role (the command name);
//   - a timestamp on every entry;
//   - a "func" caller field with the fully-qualified function name, emitted
//     only at debug level to keep regular output short.
//
// Output goes to w (os.Stderr when nil) through a human-readable console
// writer, leaving os.Stdout to command results such as metadata dumps.
func NewCLILogger(w io.Writer, role string, level zerolog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return newLogger(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}, role, level)
}

func newLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	ctx := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp()
	if level <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}

	return &Logger{ctx.Logger()}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default (or
// disabled) logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
