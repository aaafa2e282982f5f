// Package cli implements the gridpath command-line interface.
//
// This package provides the interactive terminal board, the headless solve
// command, and config file helpers. The CLI is built using cobra and bubbletea
// and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - play: Draw a board in the terminal and run the search (default)
//   - solve: Solve a text map and export it as txt, dot, svg, png or json
//   - config: Show, locate or initialize the config file
//   - cache: Locate or clear the rendered SVG cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
// While the terminal board owns the screen, logs go to --log-file or nowhere.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a timestamped logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// openLogFile returns a logger for use while the terminal is in alt-screen
// mode. An empty path discards all output. The returned closer must be called
// when the program exits.
func openLogFile(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if path == "" {
		return newLogger(io.Discard, level), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, level), f, nil
}

// progress logs how long a headless step took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time as an "elapsed" field.
func (p *progress) done(msg string) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg, "elapsed", elapsed)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger stored by withLogger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
