// Package logging provides an optional debug logger for quip.
//
// The TUI owns the terminal, so log output never goes to stdout. When debug
// mode is on, a zap logger writes to quip.log next to the config file;
// otherwise callers get a no-op logger and pay nothing.
package logging

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sant0-9/quip/internal/config"
)

// New returns a file-backed debug logger, or a no-op logger when debug is
// disabled or the log file cannot be opened.
func New(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{filepath.Join(dir, "quip.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
