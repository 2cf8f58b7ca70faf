// Package logging builds the zap logger. The terminal is owned by the
// viewer, so logs only ever go to a file.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a logger writing to logFile. When debug is true, uses
// development config (human-readable, debug level); otherwise uses
// production config (JSON, info level). An empty logFile yields a no-op
// logger.
func New(logFile string, debug bool) (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{logFile}
	cfg.ErrorOutputPaths = []string{logFile}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), fmt.Errorf("open log file %s: %w", logFile, err)
	}
	return logger, nil
}
