package geometry

type Point struct {
	X float64
	Y float64
}

// A Vector is a 2D displacement with a magnitude and a direction. The
// magnitude is unitless. The direction is always stored in radians, whatever
// unit it was supplied in.
type Vector struct {
	Magnitude float64
	Direction float64
}

// Vertices are pointers so that they can be used as map keys (see dbg.Name),
// and are never modified once they belong to a polygon.
type Polygon struct {
	Points []*Point
}

type Triangle struct {
	A, B, C *Point
}

type AngleUnit int

// Degrees is the zero value, so an unspecified unit means degrees.
const (
	Degrees AngleUnit = iota
	Radians
)
