package render

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polypi/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	poly, err := geometry.InscribedPolygon(8, 1)
	require.NoError(t, err)

	c := Draw(poly, 1, 50)
	assert.Equal(t, 100+drawPadding*2, c.Width())
	assert.Equal(t, 100+drawPadding*2, c.Height())

	img := c.Image()
	// Background in the corner
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	// Polygon fill in the middle
	_, g, _, _ = img.At(c.Width()/2, c.Height()/2).RGBA()
	assert.NotZero(t, g)
}

func TestDraw_Clamped(t *testing.T) {
	const radius = 1e6
	poly, err := geometry.InscribedPolygon(4, radius)
	require.NoError(t, err)

	c := Draw(poly, radius, 200)
	assert.LessOrEqual(t, c.Width(), MaxCanvasSize)
	assert.LessOrEqual(t, c.Height(), MaxCanvasSize)
	assert.Greater(t, c.Width(), MaxCanvasSize-10)

	// Small drawings keep their scale
	assert.Equal(t, 2*200+drawPadding*2, Draw(poly, 1, 200).Width())
}

func TestInline(t *testing.T) {
	poly, err := geometry.InscribedPolygon(4, 1)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Inline(&out, poly, 1, 20))
	// Base64 of the PNG signature
	assert.Contains(t, out.String(), "iVBORw0KGgo")
}

func TestWriteSVG(t *testing.T) {
	const radius = 2.5
	full, err := geometry.InscribedPolygon(12, radius)
	require.NoError(t, err)
	quadrant, err := geometry.InscribedQuadrant(12, radius)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteSVG(&out, full, quadrant, radius))

	root, err := svgparser.Parse(&out, false)
	require.NoError(t, err)

	circles := root.FindAll("circle")
	require.Len(t, circles, 1)
	assert.Equal(t, "2.5", circles[0].Attributes["r"])

	polygons := root.FindAll("polygon")
	require.Len(t, polygons, 1)
	assertPoints(t, full, polygons[0].Attributes["points"])

	polylines := root.FindAll("polyline")
	require.Len(t, polylines, 1)
	assertPoints(t, quadrant, polylines[0].Attributes["points"])
}

// Parse an SVG points attribute and compare it to the polygon's vertices.
func assertPoints(t *testing.T, expected geometry.Polygon, pointString string) {
	pointStrings := strings.Fields(pointString)
	require.Len(t, pointStrings, len(expected.Points))
	for i, pointString := range pointStrings {
		coordinates := strings.Split(pointString, ",")
		require.Len(t, coordinates, 2, "invalid point string %q", pointString)
		x, err := strconv.ParseFloat(coordinates[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(coordinates[1], 64)
		require.NoError(t, err)
		assert.Equal(t, *expected.Points[i], geometry.Point{X: x, Y: y})
	}
}
