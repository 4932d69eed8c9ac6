// Command beamreplay re-solves a scenario and writes its coverage map as
// GeoJSON, for visual inspection. It is a debugging aid, not part of the
// solver's required contract.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aurel42/beamplanner/pkg/beamconfig"
	"github.com/aurel42/beamplanner/pkg/beammap"
	"github.com/aurel42/beamplanner/pkg/feasibility"
	"github.com/aurel42/beamplanner/pkg/scenario"
	"github.com/aurel42/beamplanner/pkg/solver"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: beamreplay TEST_CASE OUT.geojson")
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "beamreplay:", err)
		os.Exit(1)
	}
}

func run(testCase, outPath string) error {
	sc, err := scenario.Load(testCase)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	cfg := beamconfig.DefaultSolverConfig()
	graph, err := feasibility.Build(sc.Users, sc.Sats, cfg, 0)
	if err != nil {
		return fmt.Errorf("building feasibility graph: %w", err)
	}

	assignment, err := solver.Solve(context.Background(), graph, cfg)
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}

	data, err := beammap.RenderJSON(sc, assignment)
	if err != nil {
		return fmt.Errorf("rendering map: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Printf("wrote %d beams to %s\n", len(assignment), outPath)
	return nil
}
