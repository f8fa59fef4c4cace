package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger returns the logger used during play. The terminal belongs to
// the game, so logs go to path or nowhere.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

// stderrLogger writes short user-facing messages outside the game screen.
func stderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake"})
}
