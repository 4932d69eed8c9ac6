package beammap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurel42/beamplanner/pkg/beam"
	"github.com/aurel42/beamplanner/pkg/geovec"
	"github.com/aurel42/beamplanner/pkg/scenario"
	"github.com/aurel42/beamplanner/pkg/solver"
)

func TestRenderOneFeaturePerBeam(t *testing.T) {
	sc := &scenario.Scenario{
		Users: map[beam.UserID]geovec.Vector{1: geovec.New(6371, 0, 0)},
		Sats:  map[beam.SatID]geovec.Vector{1: geovec.New(10000, 0, 0)},
	}
	assignment := solver.Assignment{1: {Sat: 1, Color: beam.A}}

	fc, err := Render(sc, assignment)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "A", fc.Features[0].Properties["color"])
	assert.Equal(t, markerColors[beam.A], fc.Features[0].Properties["marker-color"])
}

func TestRenderSkipsUnknownPositions(t *testing.T) {
	sc := &scenario.Scenario{
		Users: map[beam.UserID]geovec.Vector{},
		Sats:  map[beam.SatID]geovec.Vector{1: geovec.New(10000, 0, 0)},
	}
	assignment := solver.Assignment{1: {Sat: 1, Color: beam.A}}

	fc, err := Render(sc, assignment)
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
}

func TestRenderJSONProducesValidBytes(t *testing.T) {
	sc := &scenario.Scenario{
		Users: map[beam.UserID]geovec.Vector{1: geovec.New(6371, 0, 0)},
		Sats:  map[beam.SatID]geovec.Vector{1: geovec.New(10000, 0, 0)},
	}
	assignment := solver.Assignment{1: {Sat: 1, Color: beam.B}}

	data, err := RenderJSON(sc, assignment)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FeatureCollection")
}
