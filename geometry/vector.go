package geometry

import "math"

// Build a vector from a magnitude and a direction given in unit.
func NewVector(magnitude, direction float64, unit AngleUnit) Vector {
	if unit == Degrees {
		direction = degreesToRadians(direction)
	}
	return Vector{Magnitude: magnitude, Direction: direction}
}

// Find the tip of the vector in cartesian coordinates.
//
// The origin is accepted for symmetry with the way vectors are described (a
// displacement from some point), but it is not applied: the tip is always
// computed relative to (0,0). Passing nil is fine.
func (v Vector) Cartesian(origin *Point) *Point {
	return &Point{
		X: v.Magnitude * math.Cos(v.Direction),
		Y: v.Magnitude * math.Sin(v.Direction),
	}
}
