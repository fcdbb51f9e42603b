package geometry

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSides  = errors.New("invalid number of sides")
	ErrInvalidRadius = errors.New("invalid radius")
)

// A side count is usable for the quadrant construction when it is a positive
// multiple of 4, so that vertices land exactly on both axes.
func ValidQuadrantSides(sides int) bool {
	return sides > 0 && sides%4 == 0
}

// Build the vertices of a regular polygon inscribed in a circle of the given
// radius, but only those in the first quadrant, from 0° to 90° inclusive. The
// result has sides/4+1 points. By symmetry, the path through them is a quarter
// of the polygon's perimeter.
func InscribedQuadrant(sides int, radius float64) (Polygon, error) {
	if !ValidQuadrantSides(sides) {
		return Polygon{}, errors.Wrapf(ErrInvalidSides, "%d is not a positive multiple of 4", sides)
	}
	if err := checkRadius(radius); err != nil {
		return Polygon{}, err
	}

	quadrantSides := sides / 4
	step := 90.0 / float64(quadrantSides)
	points := make([]*Point, 0, quadrantSides+1)
	for s := 0; s <= quadrantSides; s++ {
		v := NewVector(radius, float64(s)*step, Degrees)
		points = append(points, v.Cartesian(nil))
	}
	return Polygon{Points: points}, nil
}

// Build every vertex of a regular polygon inscribed in a circle, counterclockwise
// starting at angle 0. Any polygon with at least 3 sides is allowed.
func InscribedPolygon(sides int, radius float64) (Polygon, error) {
	if sides < 3 {
		return Polygon{}, errors.Wrapf(ErrInvalidSides, "a polygon needs at least 3 sides, got %d", sides)
	}
	if err := checkRadius(radius); err != nil {
		return Polygon{}, err
	}

	step := 360.0 / float64(sides)
	points := make([]*Point, 0, sides)
	for s := 0; s < sides; s++ {
		v := NewVector(radius, float64(s)*step, Degrees)
		points = append(points, v.Cartesian(nil))
	}
	return Polygon{Points: points}, nil
}

func checkRadius(radius float64) error {
	if radius <= 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
		return errors.Wrapf(ErrInvalidRadius, "radius must be finite and positive, got %v", radius)
	}
	return nil
}
