// Package validator re-derives every solver invariant from raw positions.
// It never touches solver internals: given the same positions and
// constants the solver used, it recomputes visibility, fanout and
// interference independently and either accepts the assignment or
// reports the first violation it finds.
package validator

import (
	"fmt"

	"github.com/aurel42/beamplanner/pkg/beam"
	"github.com/aurel42/beamplanner/pkg/beamconfig"
	"github.com/aurel42/beamplanner/pkg/geovec"
	"github.com/aurel42/beamplanner/pkg/solver"
)

// Input bundles the raw positions and coverage requirement a solution is
// checked against. It intentionally does not carry the feasibility graph
// or any solver-owned state — the validator recomputes everything itself.
type Input struct {
	Users       map[beam.UserID]geovec.Vector
	Sats        map[beam.SatID]geovec.Vector
	MinCoverage float64
}

// ValidationFailure reports the first invariant the validator found
// broken. Its presence signals a solver bug, not a malformed scenario.
type ValidationFailure struct {
	Reason string
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("validation failure: %s", e.Reason)
}

func fail(format string, args ...any) error {
	return &ValidationFailure{Reason: fmt.Sprintf(format, args...)}
}

// Validate re-checks an assignment against the raw scenario positions.
// cfg supplies the numeric constants and the tolerance ε used to absorb
// floating rounding at the 10°/45° boundaries; it must match the
// configuration the solver ran with.
func Validate(in Input, assignment solver.Assignment, cfg beamconfig.SolverConfig) error {
	eps := cfg.ToleranceDeg

	fanout := make(map[beam.SatID]int)
	byBeam := make(map[beam.SatID]map[beam.Color][]beam.UserID)

	for user, b := range assignment {
		userPos, ok := in.Users[user]
		if !ok {
			return fail("assigned user %d has no known position", user)
		}
		satPos, ok := in.Sats[b.Sat]
		if !ok {
			return fail("assigned satellite %d has no known position", b.Sat)
		}
		if !isKnownColor(b.Color) {
			return fail("user %d assigned unassigned/invalid color", user)
		}

		elev, err := geovec.ElevationFromVertical(userPos, satPos)
		if err != nil {
			return fail("user %d: %v", user, err)
		}
		if elev > cfg.MaxElevationDeg+eps {
			return fail("user %d on sat %d: elevation %.4f exceeds %.4f", user, b.Sat, elev, cfg.MaxElevationDeg)
		}

		fanout[b.Sat]++
		if byBeam[b.Sat] == nil {
			byBeam[b.Sat] = make(map[beam.Color][]beam.UserID)
		}
		byBeam[b.Sat][b.Color] = append(byBeam[b.Sat][b.Color], user)
	}

	for sat, n := range fanout {
		if n > cfg.MaxFanout {
			return fail("satellite %d serves %d users, exceeds fanout cap %d", sat, n, cfg.MaxFanout)
		}
	}

	for sat, colors := range byBeam {
		satPos := in.Sats[sat]
		for color, users := range colors {
			for i := 0; i < len(users); i++ {
				for j := i + 1; j < len(users); j++ {
					u, v := users[i], users[j]
					angle, err := geovec.AngleBetween(satPos, in.Users[u], in.Users[v])
					if err != nil {
						return fail("sat %d color %s users %d,%d: %v", sat, color, u, v, err)
					}
					if angle < cfg.MinBeamDeg-eps {
						return fail("sat %d color %s: users %d,%d separated by %.4f, below %.4f", sat, color, u, v, angle, cfg.MinBeamDeg)
					}
				}
			}
		}
	}

	if len(in.Users) > 0 {
		coverage := float64(len(assignment)) / float64(len(in.Users))
		if coverage < in.MinCoverage-eps {
			return fail("coverage %.4f below required %.4f", coverage, in.MinCoverage)
		}
	}

	return nil
}

func isKnownColor(c beam.Color) bool {
	for _, known := range beam.Colors {
		if c == known {
			return true
		}
	}
	return false
}
