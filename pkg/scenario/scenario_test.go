package scenario

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurel42/beamplanner/pkg/beam"
)

func TestParseBasicScenario(t *testing.T) {
	input := `
# a comment line
sat 1 6371 0 0   # trailing comment
user 1 6371 0 0

min_coverage 0.5
`
	s, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.MinCoverage)
	require.Contains(t, s.Sats, beam.SatID(1))
	require.Contains(t, s.Users, beam.UserID(1))
	assert.Equal(t, 6371.0, s.Sats[1].X)
}

func TestParseDefaultsMinCoverageToOne(t *testing.T) {
	s, err := Parse(strings.NewReader("sat 1 1 0 0\nuser 1 1 0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.MinCoverage)
}

func TestParseRejectsUnknownRecord(t *testing.T) {
	_, err := Parse(strings.NewReader("bogus 1 2 3 4\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedScenario))
}

func TestParseRejectsMalformedFields(t *testing.T) {
	_, err := Parse(strings.NewReader("sat 1 notanumber 0 0\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedScenario))
}

func TestParseEmptyInput(t *testing.T) {
	s, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Sats)
	assert.Empty(t, s.Users)
	assert.Equal(t, 1.0, s.MinCoverage)
}

func TestParseIgnoresBlankAndCommentOnlyLines(t *testing.T) {
	s, err := Parse(strings.NewReader("\n# just a comment\n   \nsat 1 1 2 3\n"))
	require.NoError(t, err)
	assert.Len(t, s.Sats, 1)
}
