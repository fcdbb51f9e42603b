package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDistance(t *testing.T) {
	origin := &Point{0, 0}
	assert.Equal(t, 5.0, origin.Distance(&Point{3, 4}))
	assert.Equal(t, 5.0, (&Point{3, 4}).Distance(origin))
	assert.Equal(t, 0.0, origin.Distance(origin))
	assert.InDelta(t, 2.0, (&Point{-1, 0}).Distance(&Point{1, 0}), Tolerance)
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(3,4)", (&Point{3, 4}).String())
	assert.Equal(t, "(0.5,-1.25)", (&Point{0.5, -1.25}).String())
}

func TestPointApproxEqual(t *testing.T) {
	p := &Point{1, 2}
	assert.True(t, p.ApproxEqual(&Point{1 + Tolerance/10, 2}))
	assert.False(t, p.ApproxEqual(&Point{1, 2.001}))
}
