// Package feasibility builds the visibility and interference relations the
// solver consumes: which (satellite, user) pairs are geometrically
// possible, and which user-pairs would collide on the same satellite beam.
package feasibility

import (
	"runtime"
	"sync"

	"github.com/aurel42/beamplanner/pkg/beam"
	"github.com/aurel42/beamplanner/pkg/beamconfig"
	"github.com/aurel42/beamplanner/pkg/geovec"
)

// Graph is the read-only feasibility structure handed to the solver: the
// bipartite visibility adjacency in both directions, and the per-satellite
// interference relation.
type Graph struct {
	// VisibleUsers maps a satellite to the users it can see.
	VisibleUsers map[beam.SatID][]beam.UserID
	// VisibleSats maps a user to the satellites that can see it.
	VisibleSats map[beam.UserID][]beam.SatID
	// Interference maps a satellite to, for each user, the set of other
	// users it may not share a color with on that satellite. Symmetric:
	// v is in Interference[s][u] iff u is in Interference[s][v].
	Interference map[beam.SatID]map[beam.UserID]map[beam.UserID]struct{}
}

// Interferes reports whether users u and v interfere on satellite s.
func (g *Graph) Interferes(s beam.SatID, u, v beam.UserID) bool {
	peers, ok := g.Interference[s]
	if !ok {
		return false
	}
	_, ok = peers[u][v]
	return ok
}

// Build runs the visibility and interference passes over the given
// positions and returns the resulting Graph. Workers bounds the number of
// goroutines used to parallelize both passes; a value <= 0 falls back to
// runtime.NumCPU().
func Build(users map[beam.UserID]geovec.Vector, sats map[beam.SatID]geovec.Vector, cfg beamconfig.SolverConfig, workers int) (*Graph, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	satIDs := make([]beam.SatID, 0, len(sats))
	for s := range sats {
		satIDs = append(satIDs, s)
	}

	// Below this pair count an exhaustive scan is already cheap enough
	// that the index's own bookkeeping wouldn't pay for itself, so skip
	// it entirely rather than lean on its LEO-altitude assumption.
	const indexWorthwhileThreshold = 2000
	var index *spatialIndex
	if len(users)*len(sats) > indexWorthwhileThreshold {
		index = newSpatialIndex(users, sats)
	} else {
		index = &spatialIndex{allUsers: allUserIDs(users)}
	}

	g := &Graph{
		VisibleUsers: make(map[beam.SatID][]beam.UserID, len(sats)),
		VisibleSats:  make(map[beam.UserID][]beam.SatID, len(users)),
		Interference: make(map[beam.SatID]map[beam.UserID]map[beam.UserID]struct{}, len(sats)),
	}

	type satResult struct {
		sat      beam.SatID
		visUsers []beam.UserID
	}

	results := make([]satResult, len(satIDs))
	var degErr error
	var mu sync.Mutex

	runPool(len(satIDs), workers, func(i int) {
		s := satIDs[i]
		satPos := sats[s]
		candidates := index.candidateUsers(s, satPos)

		var visible []beam.UserID
		for _, u := range candidates {
			userPos := users[u]
			if geovec.Dot(userPos, satPos) <= 0 {
				continue // opposite hemisphere, necessarily > 90 deg
			}
			elev, err := geovec.ElevationFromVertical(userPos, satPos)
			if err != nil {
				mu.Lock()
				if degErr == nil {
					degErr = err
				}
				mu.Unlock()
				return
			}
			if elev <= cfg.MaxElevationDeg+cfg.ToleranceDeg {
				visible = append(visible, u)
			}
		}
		results[i] = satResult{sat: s, visUsers: visible}
	})

	if degErr != nil {
		return nil, degErr
	}

	for _, r := range results {
		if len(r.visUsers) == 0 {
			continue
		}
		g.VisibleUsers[r.sat] = r.visUsers
		for _, u := range r.visUsers {
			g.VisibleSats[u] = append(g.VisibleSats[u], r.sat)
		}
	}

	type interferenceResult struct {
		sat   beam.SatID
		pairs map[beam.UserID]map[beam.UserID]struct{}
	}

	interferenceResults := make([]interferenceResult, len(satIDs))
	runPool(len(satIDs), workers, func(i int) {
		s := satIDs[i]
		visible := g.VisibleUsers[s]
		if len(visible) < 2 {
			return
		}
		satPos := sats[s]
		pairs := make(map[beam.UserID]map[beam.UserID]struct{})

		for a := 0; a < len(visible); a++ {
			for b := a + 1; b < len(visible); b++ {
				u, v := visible[a], visible[b]
				angle, err := geovec.AngleBetween(satPos, users[u], users[v])
				// A user at the satellite's own position has no direction
				// from it, so its separation from a peer is undefined; the
				// pair is recorded as interfering.
				if err != nil || angle < cfg.MinBeamDeg-cfg.ToleranceDeg {
					addInterferencePair(pairs, u, v)
					addInterferencePair(pairs, v, u)
				}
			}
		}
		interferenceResults[i] = interferenceResult{sat: s, pairs: pairs}
	})

	for _, r := range interferenceResults {
		if len(r.pairs) == 0 {
			continue
		}
		g.Interference[r.sat] = r.pairs
	}

	return g, nil
}

func allUserIDs(users map[beam.UserID]geovec.Vector) []beam.UserID {
	ids := make([]beam.UserID, 0, len(users))
	for u := range users {
		ids = append(ids, u)
	}
	return ids
}

func addInterferencePair(pairs map[beam.UserID]map[beam.UserID]struct{}, u, v beam.UserID) {
	peers, ok := pairs[u]
	if !ok {
		peers = make(map[beam.UserID]struct{})
		pairs[u] = peers
	}
	peers[v] = struct{}{}
}

// runPool runs fn(i) for i in [0,n) across at most workers goroutines,
// blocking until every call has completed. This is the same bounded
// semaphore + WaitGroup shape used elsewhere in this codebase's
// concurrency-bound CLI tooling.
func runPool(n, workers int, fn func(i int)) {
	if n == 0 {
		return
	}
	if workers > n {
		workers = n
	}
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			fn(idx)
		}(i)
	}
	wg.Wait()
}
