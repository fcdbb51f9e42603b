// Approximation of pi by the method of exhaustion.
//
// A regular polygon inscribed in a circle has a perimeter a little shorter than
// the circle's circumference. As the number of sides grows, the two converge,
// so perimeter / diameter converges to pi. Vertices are found by projecting
// vectors with sin and cos, and only the first quadrant is ever built: by
// symmetry, its path length is a quarter of the perimeter.
package polypi

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/polypi/geometry"
	"github.com/pkg/errors"
)

type Point = geometry.Point
type Vector = geometry.Vector
type Polygon = geometry.Polygon

var (
	ErrInvalidSides  = geometry.ErrInvalidSides
	ErrInvalidRadius = geometry.ErrInvalidRadius
)

const DefaultRadius = 1.0

// The result of approximating pi with one polygon.
type Approximation struct {
	Sides  int
	Radius float64

	// First quadrant vertices, 0° to 90° inclusive
	Quadrant      Polygon
	QuadrantArc   float64
	Circumference float64
	Pi            float64
	// Absolute difference between Pi and math.Pi
	Error float64

	// Independent estimate from the area of the full polygon, area / r²
	AreaPi float64
}

// Sides are accepted when they are a positive multiple of 4.
func ValidSides(sides int) bool {
	return geometry.ValidQuadrantSides(sides)
}

// Approximate pi using a regular polygon with the given number of sides,
// inscribed in a circle with the given radius.
func Approximate(sides int, radius float64) (*Approximation, error) {
	quadrant, err := geometry.InscribedQuadrant(sides, radius)
	if err != nil {
		Logger().Debug("rejected polygon", "sides", sides, "radius", radius, "err", err)
		return nil, err
	}

	arc := quadrant.PathLength()
	a := &Approximation{
		Sides:         sides,
		Radius:        radius,
		Quadrant:      quadrant,
		QuadrantArc:   arc,
		Circumference: arc * 4,
		Pi:            arc * 2 / radius,
	}
	a.Error = math.Abs(math.Pi - a.Pi)
	// The four quadrant sectors together cover the whole polygon
	a.AreaPi = quadrant.SweptArea(&Point{}) * 4 / (radius * radius)

	Logger().Debug("approximated pi",
		"sides", a.Sides,
		"radius", a.Radius,
		"circumference", a.Circumference,
		"pi", a.Pi,
		"error", a.Error,
		"area_pi", a.AreaPi,
	)
	return a, nil
}

// The full polygon, built on demand for rendering.
func (a *Approximation) Polygon() Polygon {
	// The side count was already validated, so this cannot fail
	full, _ := geometry.InscribedPolygon(a.Sides, a.Radius)
	return full
}

// Write the four line summary of the approximation.
func (a *Approximation) Report(w io.Writer) error {
	lines := []struct {
		label string
		value float64
	}{
		{"Approximation of circumference = ", a.Circumference},
		{"Radius of circle = ", a.Radius},
		{"Approximation of pi = ", a.Pi},
		{"Difference of approximate pi and math library reference value = ", a.Error},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line.label, FormatFloat(line.value)); err != nil {
			return errors.Wrap(err, "writing report")
		}
	}
	return nil
}

// Format a float for the report: 12 significant digits, and always marked as
// a float, so 1 prints as "1.0" and 2.8284271247461903 as "2.82842712475".
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', 12, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

// Approximate pi, print the report to w, and return the approximate
// circumference of the circle.
func ApproximateCircumference(w io.Writer, sides int, radius float64) (float64, error) {
	a, err := Approximate(sides, radius)
	if err != nil {
		return 0, err
	}
	if err := a.Report(w); err != nil {
		return 0, err
	}
	return a.Circumference, nil
}
