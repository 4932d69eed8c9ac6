package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurel42/beamplanner/pkg/beam"
	"github.com/aurel42/beamplanner/pkg/beamconfig"
	"github.com/aurel42/beamplanner/pkg/geovec"
	"github.com/aurel42/beamplanner/pkg/solver"
)

func TestValidateAcceptsTrivialSolution(t *testing.T) {
	in := Input{
		Users:       map[beam.UserID]geovec.Vector{1: geovec.New(6371, 0, 0)},
		Sats:        map[beam.SatID]geovec.Vector{1: geovec.New(6371, 0, 0)},
		MinCoverage: 1.0,
	}
	a := solver.Assignment{1: {Sat: 1, Color: beam.A}}
	assert.NoError(t, Validate(in, a, beamconfig.DefaultSolverConfig()))
}

func TestValidateRejectsExcessiveElevation(t *testing.T) {
	in := Input{
		Users:       map[beam.UserID]geovec.Vector{1: geovec.New(6371, 0, 0)},
		Sats:        map[beam.SatID]geovec.Vector{1: geovec.New(0, 0, 20000)},
		MinCoverage: 0,
	}
	a := solver.Assignment{1: {Sat: 1, Color: beam.A}}
	err := Validate(in, a, beamconfig.DefaultSolverConfig())
	assert.Error(t, err)
	var vf *ValidationFailure
	assert.ErrorAs(t, err, &vf)
}

func TestValidateRejectsFanoutOverflow(t *testing.T) {
	cfg := beamconfig.DefaultSolverConfig()
	cfg.MaxFanout = 1

	users := map[beam.UserID]geovec.Vector{
		1: geovec.New(6371, 0, 0),
		2: geovec.New(6371, 0.001, 0),
	}
	sats := map[beam.SatID]geovec.Vector{1: geovec.New(10000, 0, 0)}
	a := solver.Assignment{
		1: {Sat: 1, Color: beam.A},
		2: {Sat: 1, Color: beam.B},
	}
	err := Validate(Input{Users: users, Sats: sats, MinCoverage: 0}, a, cfg)
	assert.Error(t, err)
}

func TestValidateRejectsInterferenceViolation(t *testing.T) {
	users := map[beam.UserID]geovec.Vector{
		1: geovec.New(6371, 0, 0),
		2: geovec.New(6370.99999, 1.1117, 0),
	}
	sats := map[beam.SatID]geovec.Vector{1: geovec.New(10000, 0, 0)}
	a := solver.Assignment{
		1: {Sat: 1, Color: beam.A},
		2: {Sat: 1, Color: beam.A},
	}
	err := Validate(Input{Users: users, Sats: sats, MinCoverage: 0}, a, beamconfig.DefaultSolverConfig())
	assert.Error(t, err)
}

func TestValidateAllowsSameColorOnDifferentSatellites(t *testing.T) {
	users := map[beam.UserID]geovec.Vector{
		1: geovec.New(6371, 0, 0),
		2: geovec.New(0, 6371, 0),
	}
	sats := map[beam.SatID]geovec.Vector{
		1: geovec.New(10000, 0, 0),
		2: geovec.New(0, 10000, 0),
	}
	a := solver.Assignment{
		1: {Sat: 1, Color: beam.A},
		2: {Sat: 2, Color: beam.A},
	}
	assert.NoError(t, Validate(Input{Users: users, Sats: sats, MinCoverage: 1.0}, a, beamconfig.DefaultSolverConfig()))
}

func TestValidateRejectsCoverageBelowThreshold(t *testing.T) {
	users := map[beam.UserID]geovec.Vector{
		1: geovec.New(6371, 0, 0),
		2: geovec.New(0, 6371, 0),
	}
	sats := map[beam.SatID]geovec.Vector{1: geovec.New(10000, 0, 0)}
	a := solver.Assignment{1: {Sat: 1, Color: beam.A}}
	err := Validate(Input{Users: users, Sats: sats, MinCoverage: 1.0}, a, beamconfig.DefaultSolverConfig())
	assert.Error(t, err)
}

func TestValidateEmptyAssignmentIsFineAtZeroCoverage(t *testing.T) {
	assert.NoError(t, Validate(Input{MinCoverage: 0}, solver.Assignment{}, beamconfig.DefaultSolverConfig()))
}
