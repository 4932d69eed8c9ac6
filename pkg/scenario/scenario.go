// Package scenario parses the line-oriented scenario file format described
// by the specification: sat/user position records plus an optional
// minimum-coverage threshold.
package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aurel42/beamplanner/pkg/beam"
	"github.com/aurel42/beamplanner/pkg/geovec"
)

// ErrMalformedScenario wraps any lexing or parsing failure in a scenario
// file: an unknown record keyword, a missing field, or an unparsable
// number.
var ErrMalformedScenario = errors.New("scenario: malformed input")

// Scenario is the fully parsed input to a solve run.
type Scenario struct {
	Sats        map[beam.SatID]geovec.Vector
	Users       map[beam.UserID]geovec.Vector
	MinCoverage float64
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a scenario from r. min_coverage defaults to 1.0 if the file
// never sets it.
func Parse(r io.Reader) (*Scenario, error) {
	s := &Scenario{
		Sats:        make(map[beam.SatID]geovec.Vector),
		Users:       make(map[beam.UserID]geovec.Vector),
		MinCoverage: 1.0,
	}

	scan := bufio.NewScanner(r)
	lineNo := 0
	for scan.Scan() {
		lineNo++
		line := scan.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "sat":
			id, pos, err := parsePositionRecord(fields)
			if err != nil {
				return nil, fmt.Errorf("scenario: line %d: %w", lineNo, err)
			}
			s.Sats[beam.SatID(id)] = pos
		case "user":
			id, pos, err := parsePositionRecord(fields)
			if err != nil {
				return nil, fmt.Errorf("scenario: line %d: %w", lineNo, err)
			}
			s.Users[beam.UserID(id)] = pos
		case "min_coverage":
			if len(fields) != 2 {
				return nil, fmt.Errorf("scenario: line %d: %w: min_coverage wants one field", lineNo, ErrMalformedScenario)
			}
			v, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("scenario: line %d: %w: %v", lineNo, ErrMalformedScenario, err)
			}
			s.MinCoverage = v
		default:
			return nil, fmt.Errorf("scenario: line %d: %w: unknown record %q", lineNo, ErrMalformedScenario, fields[0])
		}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	return s, nil
}

func parsePositionRecord(fields []string) (int, geovec.Vector, error) {
	if len(fields) != 5 {
		return 0, geovec.Vector{}, fmt.Errorf("%w: expected \"%s id x y z\"", ErrMalformedScenario, fields[0])
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, geovec.Vector{}, fmt.Errorf("%w: bad id %q: %v", ErrMalformedScenario, fields[1], err)
	}
	x, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, geovec.Vector{}, fmt.Errorf("%w: bad x %q: %v", ErrMalformedScenario, fields[2], err)
	}
	y, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return 0, geovec.Vector{}, fmt.Errorf("%w: bad y %q: %v", ErrMalformedScenario, fields[3], err)
	}
	z, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return 0, geovec.Vector{}, fmt.Errorf("%w: bad z %q: %v", ErrMalformedScenario, fields[4], err)
	}
	return id, geovec.New(x, y, z), nil
}
