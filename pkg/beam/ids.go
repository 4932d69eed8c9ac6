// Package beam defines the opaque domain identifiers and the color
// enumeration the feasibility builder and solver operate over.
package beam

// UserID is an opaque handle for a ground-station user. Values are the
// scenario's raw integer ids; nothing renumbers them, so callers must not
// assume they are dense or contiguous.
type UserID int

// SatID is an opaque handle for a satellite.
type SatID int

// Color is one of four disjoint frequency/polarization channels a beam may
// use, plus an internal sentinel that never appears in a final assignment.
type Color int

const (
	// Unassigned is the zero value of Color and is used only internally;
	// it never equals an assigned color.
	Unassigned Color = iota
	A
	B
	C
	D
)

// ColorCount is the number of usable colors (excludes Unassigned).
const ColorCount = 4

// Colors lists the usable colors in a fixed order, used to enumerate the
// candidate pool deterministically.
var Colors = [ColorCount]Color{A, B, C, D}

// Next returns the cycle successor: A→B→C→D→A, Unassigned→A.
func (c Color) Next() Color {
	switch c {
	case A:
		return B
	case B:
		return C
	case C:
		return D
	case D:
		return A
	default:
		return A
	}
}

// String renders the color as its letter name ("A".."D") or "?" for the
// internal sentinel.
func (c Color) String() string {
	switch c {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	default:
		return "?"
	}
}
