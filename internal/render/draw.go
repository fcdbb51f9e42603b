package render

import (
	"bytes"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polypi/geometry"
	"github.com/pkg/errors"
)

// Padding around the circle, in pixels
const drawPadding = 20

// Largest width or height of a drawing, in pixels, padding included.
const MaxCanvasSize = 4096

// Draw the polygon inside the circle it is inscribed in. The circle is centered
// at the origin, and scale is the number of pixels per unit. The scale is
// reduced when the drawing would otherwise be larger than MaxCanvasSize.
func Draw(poly geometry.Polygon, radius, scale float64) *gg.Context {
	scale = math.Min(scale, MaxScale(radius))
	size := int(2*radius*scale) + drawPadding*2
	c := gg.NewContext(size, size)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()

	// Flip the context so y points up, then move the origin to the center
	c.Translate(float64(size)/2, float64(size)/2)
	c.Scale(scale, -scale)

	c.SetLineWidth(2)
	c.DrawCircle(0, 0, radius)
	c.SetRGB(1, 1, 0)
	c.Stroke()

	if len(poly.Points) > 0 {
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}
	return c
}

// The largest scale at which a circle of the given radius fits the canvas.
func MaxScale(radius float64) float64 {
	return float64(MaxCanvasSize-drawPadding*2) / (2 * radius)
}

// Draw the polygon and print it inline in the terminal (iTerm only).
func Inline(w io.Writer, poly geometry.Polygon, radius, scale float64) error {
	var buf bytes.Buffer
	if err := Draw(poly, radius, scale).EncodePNG(&buf); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return errors.Wrap(imgcat.Cat(&buf, w), "printing image")
}
