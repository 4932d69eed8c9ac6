package beamlog

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurel42/beamplanner/pkg/beamconfig"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "parseLevel(%q)", in)
	}
}

func TestNewRunMetadataIsUnique(t *testing.T) {
	a := NewRunMetadata()
	b := NewRunMetadata()
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.NotEmpty(t, a.RunID)
}

func TestInitReturnsUsableLogger(t *testing.T) {
	cfg := beamconfig.DefaultRunnerConfig()
	logger, cleanup, err := Init(&cfg)
	assert.NoError(t, err)
	assert.NotNil(t, logger)
	cleanup()
}
