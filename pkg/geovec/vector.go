// Package geovec implements the 3D geometry primitives the beam solver is
// built on: an Earth-centered position vector, dot products, and the angle
// and elevation operators used to decide visibility and interference.
package geovec

import (
	"errors"
	"math"
)

// ErrDegenerateVector is returned by Unit when asked to normalize a
// zero-magnitude vector.
var ErrDegenerateVector = errors.New("geovec: degenerate vector (zero magnitude)")

// Vector is an immutable 3D point in an Earth-centered Cartesian frame.
type Vector struct {
	X, Y, Z float64
}

// New builds a Vector from its three components.
func New(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Dot returns the standard Euclidean dot product of a and b.
func Dot(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Sub returns a - b.
func Sub(a, b Vector) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns v / ||v||. It fails with ErrDegenerateVector when v has zero
// magnitude; callers are expected to guarantee non-degenerate inputs ahead
// of time (e.g. real user/satellite positions never sit at the origin).
func Unit(v Vector) (Vector, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}, ErrDegenerateVector
	}
	return Vector{X: v.X / m, Y: v.Y / m, Z: v.Z / m}, nil
}

// AngleBetween returns the degree angle ∠a-origin-c, i.e. the angle at
// vertex origin between rays to a and to c. The dot product of the two unit
// rays is clamped to [-1, 1] before acos to absorb floating-point rounding
// near the poles of the range.
func AngleBetween(origin, a, c Vector) (float64, error) {
	m, err := Unit(Sub(a, origin))
	if err != nil {
		return 0, err
	}
	n, err := Unit(Sub(c, origin))
	if err != nil {
		return 0, err
	}
	d := Dot(m, n)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d) * 180.0 / math.Pi, nil
}

// Origin is the center of the Earth-centered frame.
var Origin = Vector{}

// ElevationFromVertical returns the angle, in degrees, between the user's
// local vertical (its position vector from the planet center) and the
// line-of-sight to the satellite. A user sees the satellite when this
// angle is at or below the configured maximum elevation. The vertex of
// the angle is the coordinate origin: this is acos(unit(user) ·
// unit(sat − user)), not the angle measured at the user's own position.
func ElevationFromVertical(user, sat Vector) (float64, error) {
	lineOfSight := Sub(sat, user)
	if lineOfSight.Magnitude() == 0 {
		// Satellite exactly at the user's position: the line of sight has
		// no defined direction, but this degenerates to directly overhead
		// rather than an error, since the user's own position is still
		// well-defined.
		if user.Magnitude() == 0 {
			return 0, ErrDegenerateVector
		}
		return 0, nil
	}
	return AngleBetween(Origin, user, lineOfSight)
}

// LatLon projects v onto the sphere through its own magnitude and returns
// its sub-point latitude/longitude in degrees. It fails on a degenerate
// vector. Used by code that only needs an approximate ground position —
// spatial indexing, map rendering — never by the exact visibility math.
func LatLon(v Vector) (lat, lon float64, err error) {
	m := v.Magnitude()
	if m == 0 {
		return 0, 0, ErrDegenerateVector
	}
	lat = math.Asin(v.Z/m) * 180.0 / math.Pi
	lon = math.Atan2(v.Y, v.X) * 180.0 / math.Pi
	return lat, lon, nil
}
