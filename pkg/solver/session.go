package solver

import (
	"context"

	"github.com/aurel42/beamplanner/pkg/beam"
	"github.com/aurel42/beamplanner/pkg/beamconfig"
	"github.com/aurel42/beamplanner/pkg/feasibility"
)

// session owns the candidate pool and the evolving assignment for a single
// solve call. It borrows the feasibility graph read-only and mutates
// nothing outside itself — mirroring the per-cycle session objects used
// elsewhere in this codebase to scope mutable state to one run.
type session struct {
	graph *feasibility.Graph
	cfg   beamconfig.SolverConfig

	pool         map[Candidate]struct{}
	countForUser map[beam.UserID]int
	fanout       map[beam.SatID]int
	assignment   Assignment
}

func newSession(graph *feasibility.Graph, cfg beamconfig.SolverConfig) *session {
	sess := &session{
		graph:        graph,
		cfg:          cfg,
		pool:         make(map[Candidate]struct{}),
		countForUser: make(map[beam.UserID]int),
		fanout:       make(map[beam.SatID]int),
		assignment:   make(Assignment),
	}
	sess.seedPool()
	return sess
}

// seedPool enumerates the full candidate pool: every (sat, user) pair the
// feasibility graph marks visible, crossed with every usable color.
func (s *session) seedPool() {
	for sat, users := range s.graph.VisibleUsers {
		for _, u := range users {
			for _, c := range beam.Colors {
				s.pool[Candidate{Sat: sat, User: u, Color: c}] = struct{}{}
				s.countForUser[u]++
			}
		}
	}
}

// remove deletes a candidate from the pool if present; a no-op otherwise,
// so callers can blindly remove candidates named by the original
// visibility/interference relations without tracking what already went.
func (s *session) remove(c Candidate) {
	if _, ok := s.pool[c]; !ok {
		return
	}
	delete(s.pool, c)
	s.countForUser[c.User]--
}

// pick selects the next candidate to commit, deterministically. The
// primary key is ascending user degree (fewest remaining options for that
// user first), the secondary key is ascending satellite slack (fill
// near-saturated satellites first), and the final tie-break is a fixed
// total order over (Sat, User, Color) so the same graph always yields the
// same assignment regardless of map iteration order.
func (s *session) pick() (Candidate, bool) {
	var best Candidate
	var bestSlack int
	var bestDegree int
	found := false

	for c := range s.pool {
		degree := s.countForUser[c.User]
		slack := s.cfg.MaxFanout - s.fanout[c.Sat]

		if !found || better(degree, slack, c, bestDegree, bestSlack, best) {
			best, bestDegree, bestSlack, found = c, degree, slack, true
		}
	}
	return best, found
}

func better(degree, slack int, c Candidate, bestDegree, bestSlack int, best Candidate) bool {
	if degree != bestDegree {
		return degree < bestDegree
	}
	if slack != bestSlack {
		return slack < bestSlack
	}
	if c.Sat != best.Sat {
		return c.Sat < best.Sat
	}
	if c.User != best.User {
		return c.User < best.User
	}
	return c.Color < best.Color
}

func (s *session) run(ctx context.Context) (Assignment, error) {
	for len(s.pool) > 0 {
		select {
		case <-ctx.Done():
			return s.assignment, nil
		default:
		}

		best, ok := s.pick()
		if !ok {
			break
		}
		s.remove(best)

		if _, already := s.assignment[best.User]; already {
			return nil, ErrAssignmentInvariantViolated
		}
		s.assignment[best.User] = Beam{Sat: best.Sat, Color: best.Color}
		s.fanout[best.Sat]++

		// (c) prune interfering peers on this beam
		for v := range s.graph.Interference[best.Sat][best.User] {
			s.remove(Candidate{Sat: best.Sat, User: v, Color: best.Color})
		}

		// (d) prune further assignments of this user
		for _, s2 := range s.graph.VisibleSats[best.User] {
			for _, c2 := range beam.Colors {
				s.remove(Candidate{Sat: s2, User: best.User, Color: c2})
			}
		}

		// (e) prune saturated satellite
		if s.fanout[best.Sat] >= s.cfg.MaxFanout {
			for _, u2 := range s.graph.VisibleUsers[best.Sat] {
				for _, c2 := range beam.Colors {
					s.remove(Candidate{Sat: best.Sat, User: u2, Color: c2})
				}
			}
		}
	}

	return s.assignment, nil
}
