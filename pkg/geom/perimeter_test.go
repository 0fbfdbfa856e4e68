package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerimeterPointAxisAligned(t *testing.T) {
	r := R(0, 0, 100, 60)
	inside := Pt(50, 30)

	tests := []struct {
		name    string
		outside Point
		want    Point
	}{
		{"right", Pt(200, 30), Pt(100, 30)},
		{"left", Pt(-50, 30), Pt(0, 30)},
		{"top", Pt(50, -10), Pt(50, 0)},
		{"bottom", Pt(50, 300), Pt(50, 60)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PerimeterPoint(r, inside, tc.outside))
		})
	}
}

func TestPerimeterPointDiagonal(t *testing.T) {
	r := R(0, 0, 100, 100)

	// 45 degrees from the centre exits exactly at the corner
	assert.Equal(t, Pt(100, 100), PerimeterPoint(r, Pt(50, 50), Pt(150, 150)))

	// shallow slope exits through the right edge
	p := PerimeterPoint(r, Pt(50, 50), Pt(250, 100))
	assert.Equal(t, 100, p.X)
	assert.Equal(t, 63, p.Y) // 50 + 50*50/200 = 62.5
}

func TestPerimeterPointOutsideStillInside(t *testing.T) {
	r := R(0, 0, 100, 100)
	assert.Equal(t, Pt(60, 60), PerimeterPoint(r, Pt(50, 50), Pt(60, 60)))
}

func TestEllipsePerimeterPoint(t *testing.T) {
	r := R(0, 0, 100, 60) // semi-axes 50 and 30, centre (50,30)

	assert.Equal(t, Pt(100, 30), EllipsePerimeterPoint(r, Pt(50, 30), Pt(300, 30)))
	assert.Equal(t, Pt(50, 0), EllipsePerimeterPoint(r, Pt(50, 30), Pt(50, -40)))

	p := EllipsePerimeterPoint(r, Pt(50, 30), Pt(250, 230))
	nx := float64(p.X-50) / 50
	ny := float64(p.Y-30) / 30
	assert.InDelta(t, 1.0, nx*nx+ny*ny, 0.05)
}

func TestPolygonPerimeterPoint(t *testing.T) {
	diamond := []Point{{50, 0}, {100, 50}, {50, 100}, {0, 50}}

	assert.Equal(t, Pt(100, 50), PolygonPerimeterPoint(diamond, Pt(50, 50), Pt(200, 50)))
	assert.Equal(t, Pt(75, 25), PolygonPerimeterPoint(diamond, Pt(50, 50), Pt(150, -50)))

	// too few vertices
	assert.Equal(t, Pt(9, 9), PolygonPerimeterPoint(diamond[:2], Pt(0, 0), Pt(9, 9)))
}

func TestPerimeterPointOnSegment(t *testing.T) {
	r := R(-40, -25, 80, 50)
	inside := Pt(3, -4)

	for angle := 0.0; angle < 2*math.Pi; angle += math.Pi / 17 {
		outside := Pt(Round(300*math.Cos(angle)), Round(300*math.Sin(angle)))
		p := PerimeterPoint(r, inside, outside)

		onX := p.X == r.X || p.X == r.X+r.W
		onY := p.Y == r.Y || p.Y == r.Y+r.H
		assert.True(t, onX || onY, "angle %.2f: %v not on an edge", angle, p)

		// collinear within rounding
		cross := float64(p.X-inside.X)*float64(outside.Y-inside.Y) -
			float64(p.Y-inside.Y)*float64(outside.X-inside.X)
		assert.LessOrEqual(t, math.Abs(cross)/Dist(inside, outside), 1.0)
	}
}
