// Package beamconfig holds the solver's numeric constants and the runner's
// operational settings, loaded the way the rest of this codebase loads
// config: a YAML struct with an optional .env overlay for local overrides.
package beamconfig

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SolverConfig is the scenario-independent constants surface from the
// specification. Defaults match the reference values exactly; tests may
// override them to exercise edge cases without rebuilding scenarios.
type SolverConfig struct {
	MinBeamDeg      float64 `yaml:"min_beam_deg"`
	MaxElevationDeg float64 `yaml:"max_elevation_deg"`
	MaxFanout       int     `yaml:"max_fanout"`
	ColorCount      int     `yaml:"color_count"`
	// ToleranceDeg is the epsilon used consistently by the feasibility
	// builder and the validator when comparing angles near the
	// MinBeamDeg/MaxElevationDeg boundaries.
	ToleranceDeg float64 `yaml:"tolerance_deg"`
}

// DefaultSolverConfig returns the constants from spec section 3.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		MinBeamDeg:      10.0,
		MaxElevationDeg: 45.0,
		MaxFanout:       32,
		ColorCount:      4,
		ToleranceDeg:    1e-3,
	}
}

// Duration wraps time.Duration so RunnerConfig can read plain strings like
// "60s" out of YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("beamconfig: invalid duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// RunnerConfig holds the ambient settings for the CLI runner: the
// wall-clock budget, the feasibility builder's worker count, and the log
// level. These are never consulted by the solver itself.
type RunnerConfig struct {
	Timeout  Duration `yaml:"timeout"`
	Workers  int      `yaml:"workers"`
	LogLevel string   `yaml:"log_level"`
}

// DefaultRunnerConfig returns sane defaults: a 60s timeout (matching the
// reference harness), one worker per CPU, and info-level logging.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Timeout:  Duration(60 * time.Second),
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
	}
}

// Load reads an optional YAML file at path into a RunnerConfig, starting
// from DefaultRunnerConfig. A missing file is not an error: callers that
// never ship a config file still get usable defaults. Before parsing, a
// ".env" file in the working directory, if present, is loaded into the
// process environment so YAML
// values can reference it via os.ExpandEnv-style interpolation performed
// by the caller if desired.
func Load(path string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("beamconfig: loading .env: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("beamconfig: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("beamconfig: parsing %s: %w", path, err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	return cfg, nil
}
