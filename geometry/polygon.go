package geometry

// Length of the open path through the points in order. The last point is not
// joined back to the first.
func (poly Polygon) PathLength() float64 {
	length := 0.0
	for i := 0; i < len(poly.Points)-1; i++ {
		length += poly.Points[i].Distance(poly.Points[i+1])
	}
	return length
}

// Length of the closed boundary, including the edge from the last point back
// to the first.
func (poly Polygon) Perimeter() float64 {
	n := len(poly.Points)
	if n < 2 {
		return 0
	}
	perimeter := 0.0
	for i, vertex := range poly.Points {
		perimeter += vertex.Distance(poly.Points[CircularIndex(i+1, n)])
	}
	return perimeter
}

// Split a convex polygon into triangles which all share the first vertex. The
// triangles keep the polygon's winding.
func (poly Polygon) Fan() []*Triangle {
	if len(poly.Points) < 3 {
		return nil
	}
	apex := poly.Points[0]
	triangles := make([]*Triangle, 0, len(poly.Points)-2)
	for i := 1; i < len(poly.Points)-1; i++ {
		triangles = append(triangles, &Triangle{apex, poly.Points[i], poly.Points[i+1]})
	}
	return triangles
}

// Area of a convex polygon, by summing its fan.
func (poly Polygon) Area() float64 {
	area := 0.0
	for _, tri := range poly.Fan() {
		area += tri.Area()
	}
	return area
}

// Counterclockwise triangles have positive area, clockwise ones negative.
func (tri *Triangle) SignedArea() float64 {
	return ((tri.B.X-tri.A.X)*(tri.C.Y-tri.A.Y) - (tri.C.X-tri.A.X)*(tri.B.Y-tri.A.Y)) / 2
}

func (tri *Triangle) Area() float64 {
	area := tri.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

// Area swept by the path through the points as seen from center: the sum of
// the triangles joining center to each pair of consecutive points. For a path
// along a convex polygon's boundary this is the area of that slice of the
// polygon.
func (poly Polygon) SweptArea(center *Point) float64 {
	area := 0.0
	for i := 0; i < len(poly.Points)-1; i++ {
		area += (&Triangle{center, poly.Points[i], poly.Points[i+1]}).Area()
	}
	return area
}
