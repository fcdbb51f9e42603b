package geometry

import "math"

// Vertices are computed with sin and cos, so exact comparisons are meaningless.
// Everything that compares coordinates goes through Equal.
const Tolerance = 1e-9

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
