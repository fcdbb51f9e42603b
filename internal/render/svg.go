package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/polypi/geometry"
	"github.com/pkg/errors"
)

// Write an SVG document showing the full polygon and, on top of it, the
// quadrant path that the perimeter is measured along. Coordinates are written
// unrounded, so the document can be parsed back into the same vertices.
func WriteSVG(w io.Writer, full, quadrant geometry.Polygon, radius float64) error {
	r := formatFloat(radius)
	d := formatFloat(2 * radius)
	stroke := formatFloat(radius / 100)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-%s -%s %s %s">`+"\n", r, r, d, d)
	b.WriteString(`  <g transform="scale(1,-1)">` + "\n")
	fmt.Fprintf(&b, `    <circle cx="0" cy="0" r="%s" fill="none" stroke="black" stroke-width="%s"></circle>`+"\n", r, stroke)
	fmt.Fprintf(&b, `    <polygon points="%s" fill="green" fill-opacity="0.5" stroke="teal" stroke-width="%s"></polygon>`+"\n", formatPoints(full), stroke)
	fmt.Fprintf(&b, `    <polyline points="%s" fill="none" stroke="red" stroke-width="%s"></polyline>`+"\n", formatPoints(quadrant), stroke)
	b.WriteString("  </g>\n</svg>\n")

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing svg")
}

func formatPoints(poly geometry.Polygon) string {
	pointStrings := make([]string, len(poly.Points))
	for i, p := range poly.Points {
		pointStrings[i] = formatFloat(p.X) + "," + formatFloat(p.Y)
	}
	return strings.Join(pointStrings, " ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
