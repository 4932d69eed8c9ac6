// Package beammap renders a solved assignment as a GeoJSON coverage map,
// one LineString feature per beam, for visual debugging. It is pure and
// side-effect-free: writing the result to disk is the caller's job, the
// same division of labor the teacher codebase's shp2geojson tool uses
// between building orb geometries and serializing them.
package beammap

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/aurel42/beamplanner/pkg/beam"
	"github.com/aurel42/beamplanner/pkg/geovec"
	"github.com/aurel42/beamplanner/pkg/scenario"
	"github.com/aurel42/beamplanner/pkg/solver"
)

// markerColors maps each beam color to a display color property, matching
// the convention many GeoJSON viewers (e.g. geojson.io) recognize for a
// "marker-color" / "stroke" property.
var markerColors = map[beam.Color]string{
	beam.A: "#e6194b",
	beam.B: "#3cb44b",
	beam.C: "#4363d8",
	beam.D: "#f58231",
}

// Render builds a FeatureCollection with one LineString feature per
// assigned beam, running from the user's sub-point to the satellite's.
// Users and satellites with degenerate (zero-magnitude) positions are
// skipped rather than failing the whole render, since a map is a debugging
// aid, not a correctness-bearing artifact.
func Render(sc *scenario.Scenario, assignment solver.Assignment) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()

	for user, b := range assignment {
		userPos, ok := sc.Users[user]
		if !ok {
			continue
		}
		satPos, ok := sc.Sats[b.Sat]
		if !ok {
			continue
		}

		userLat, userLon, err := geovec.LatLon(userPos)
		if err != nil {
			continue
		}
		satLat, satLon, err := geovec.LatLon(satPos)
		if err != nil {
			continue
		}

		line := orb.LineString{
			{userLon, userLat},
			{satLon, satLat},
		}

		f := geojson.NewFeature(line)
		f.Properties["user"] = int(user)
		f.Properties["sat"] = int(b.Sat)
		f.Properties["color"] = b.Color.String()
		f.Properties["marker-color"] = markerColors[b.Color]
		f.Properties["stroke"] = markerColors[b.Color]
		fc.Append(f)
	}

	return fc, nil
}

// RenderJSON is a convenience wrapper returning the indented GeoJSON bytes
// directly, for callers (e.g. cmd/beamreplay) that just want to write a
// file.
func RenderJSON(sc *scenario.Scenario, assignment solver.Assignment) ([]byte, error) {
	fc, err := Render(sc, assignment)
	if err != nil {
		return nil, fmt.Errorf("beammap: %w", err)
	}
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("beammap: marshal geojson: %w", err)
	}
	return data, nil
}
