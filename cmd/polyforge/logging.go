package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// setupLogging builds the process logger. Without debug the logger is
// disabled entirely; stdout belongs to the terminal renderer, so debug output
// always goes to a file.
func setupLogging(debug bool, path string) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.Nop(), nil
	}
	if path == "" {
		path = filepath.Join("logs", "polyforge.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Nop(), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil
	}

	var w io.Writer = f
	logger := zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return logger, f
}
