// Package solver implements the greedy candidate-pool assignment described
// by the specification: a single-threaded commit loop that consumes a
// feasibility graph and produces a coverage-maximizing partial assignment
// of users to (satellite, color) pairs.
package solver

import (
	"context"
	"errors"

	"github.com/aurel42/beamplanner/pkg/beam"
	"github.com/aurel42/beamplanner/pkg/beamconfig"
	"github.com/aurel42/beamplanner/pkg/feasibility"
)

// ErrAssignmentInvariantViolated signals that a user was picked for a
// second commit. The pruning in step (d) of the commit loop removes every
// other candidate for a user the moment it commits, so this is
// unreachable on a correctly built feasibility graph; its presence here
// is a defensive check for a programming error, not a recoverable state.
var ErrAssignmentInvariantViolated = errors.New("solver: user assigned twice")

// Beam is the (satellite, color) pair a user was assigned to.
type Beam struct {
	Sat   beam.SatID
	Color beam.Color
}

// Assignment maps each served user to its beam.
type Assignment map[beam.UserID]Beam

// Candidate is one (color, user, satellite) triple in the pool.
type Candidate struct {
	Sat   beam.SatID
	User  beam.UserID
	Color beam.Color
}

// Solve runs the commit loop over graph and returns the resulting
// assignment. It never fails on a well-formed graph: degenerate geometry
// is rejected earlier, by feasibility.Build. If ctx is canceled or its
// deadline expires, Solve stops committing and returns whatever partial
// assignment it has accumulated so far — the caller (the CLI runner) is
// responsible for deciding whether that counts as a time-budget failure.
func Solve(ctx context.Context, graph *feasibility.Graph, cfg beamconfig.SolverConfig) (Assignment, error) {
	sess := newSession(graph, cfg)
	return sess.run(ctx)
}
