// Package beamlog wires up structured logging for the solver CLI, in the
// same style as the teacher codebase's pkg/logging: parse a level string,
// build a slog handler, return a cleanup closure.
package beamlog

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/aurel42/beamplanner/pkg/beamconfig"
)

// RunMetadata identifies a single solve run across every log line it
// produces, the way a request ID threads through the teacher's HTTP logs.
type RunMetadata struct {
	RunID string
}

// NewRunMetadata mints a fresh run identifier.
func NewRunMetadata() RunMetadata {
	return RunMetadata{RunID: uuid.New().String()}
}

// Init configures the default slog logger from cfg and returns it along
// with a cleanup closure to call before the process exits. Output always
// goes to stdout, so the cleanup closure has nothing to release and does
// nothing. Passing an empty LogLevel falls back to info.
func Init(cfg *beamconfig.RunnerConfig) (*slog.Logger, func(), error) {
	level := parseLevel(cfg.LogLevel)

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	})

	run := NewRunMetadata()
	logger := slog.New(handler).With("run_id", run.RunID)
	slog.SetDefault(logger)

	cleanup := func() {}
	return logger, cleanup, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO", "":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogLevelNames lists the level strings Init accepts, for use in config
// validation and CLI help text.
func LogLevelNames() []string {
	return []string{"debug", "info", "warn", "error"}
}
