package feasibility

import (
	"github.com/uber/h3-go/v4"

	"github.com/aurel42/beamplanner/pkg/beam"
	"github.com/aurel42/beamplanner/pkg/geovec"
)

// hexResolution is coarse on purpose: the index only needs to rule out
// (satellite, user) pairs that are nowhere near each other on the sky
// before the exact elevation check runs. A satellite within visibility
// range (45 degrees of the user's vertical) maps to a sub-satellite point
// within a wide neighborhood of the user's own cell.
const hexResolution = 2

// hexSearchRadius is the k-ring size searched around a satellite's cell
// for candidate users. Sized for low-Earth-orbit constellations (a few
// hundred to ~1000km altitude), where a 45 degree off-zenith cone maps to
// at most a few hundred km of sub-point separation; scenarios with much
// higher orbits (e.g. geostationary) would need a larger radius to keep
// this a true superset of the exact visibility set.
const hexSearchRadius = 8

// spatialIndex buckets users by the H3 cell of their sub-point projection,
// so Build can skip exact geometry for (satellite, user) pairs that are
// nowhere near each other. It is purely an optimization: its candidate
// lists are supersets of the true visibility set, never a subset, and a
// failure to index a position (h3 rejects degenerate coordinates) simply
// falls back to scanning every user for that satellite.
type spatialIndex struct {
	usersByCell map[h3.Cell][]beam.UserID
	allUsers    []beam.UserID
	usable      bool
}

func newSpatialIndex(users map[beam.UserID]geovec.Vector, sats map[beam.SatID]geovec.Vector) *spatialIndex {
	idx := &spatialIndex{
		usersByCell: make(map[h3.Cell][]beam.UserID, len(users)),
		allUsers:    make([]beam.UserID, 0, len(users)),
		usable:      true,
	}
	for u, pos := range users {
		idx.allUsers = append(idx.allUsers, u)
		cell, ok := cellFor(pos)
		if !ok {
			idx.usable = false
			continue
		}
		idx.usersByCell[cell] = append(idx.usersByCell[cell], u)
	}
	return idx
}

// candidateUsers returns the users worth an exact elevation check against
// satellite s. When the index could not place every position on the grid
// (e.g. a degenerate vector that will be rejected downstream anyway), it
// degrades gracefully to the full user list.
func (idx *spatialIndex) candidateUsers(_ beam.SatID, satPos geovec.Vector) []beam.UserID {
	if !idx.usable {
		return idx.allUsers
	}

	center, ok := cellFor(satPos)
	if !ok {
		return idx.allUsers
	}

	disk, err := h3.GridDisk(center, hexSearchRadius)
	if err != nil {
		return idx.allUsers
	}

	var candidates []beam.UserID
	for _, cell := range disk {
		candidates = append(candidates, idx.usersByCell[cell]...)
	}
	return candidates
}

// cellFor projects an Earth-centered position onto a unit sphere and
// returns the H3 cell of its sub-point. Used only for spatial bucketing;
// it never influences the exact elevation/interference math.
func cellFor(v geovec.Vector) (h3.Cell, bool) {
	lat, lon, err := geovec.LatLon(v)
	if err != nil {
		return 0, false
	}

	cell, err := h3.LatLngToCell(h3.NewLatLng(lat, lon), hexResolution)
	if err != nil {
		return 0, false
	}
	return cell, true
}
