package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Euclidean distance between two points.
func (p *Point) Distance(other *Point) float64 {
	return r2.Norm(r2.Sub(other.vec(), p.vec()))
}

func (p *Point) ApproxEqual(other *Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

func (p *Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

func (p *Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}
