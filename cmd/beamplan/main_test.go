package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunSingleTrivialScenario(t *testing.T) {
	scenarioPath := writeScenario(t, "sat 1 6371 0 0\nuser 1 6371 0 0\nmin_coverage 1.0\n")
	outPath := filepath.Join(t.TempDir(), "result.txt")

	err := run(outPath, scenarioPath, "")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	line := string(data)
	assert.True(t, strings.HasPrefix(line, scenarioPath+" "))
	assert.Contains(t, line, "100.0000")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "s"))
}

func TestRunReportsCoverageShortfall(t *testing.T) {
	scenarioPath := writeScenario(t, "sat 1 6371 0 0\nuser 1 -6371 0 0\nmin_coverage 1.0\n")
	outPath := filepath.Join(t.TempDir(), "result.txt")

	err := run(outPath, scenarioPath, "")
	require.Error(t, err)

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr, "result line should still be written even on failure")
	assert.Contains(t, string(data), "0.0000")
}
