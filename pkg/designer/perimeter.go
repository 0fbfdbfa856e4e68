package designer

import (
	"math"

	"github.com/ha1tch/graphctrl/pkg/geom"
)

// Intersect returns where the segment from inside to outside crosses the
// outline of a rounded rectangle drawn with a pen of borderThickness. inside
// should lie within boundary and outside beyond it.
//
// The straight-edge crossing is computed first; when it lands in one of the
// corner squares the crossing is recomputed against that corner's circle.
// Axis-aligned segments and boundaries too small for their corners keep the
// straight-edge point.
func Intersect(boundary geom.RoundedRect, borderThickness int, inside, outside geom.Point) geom.Point {
	pt := geom.PerimeterPoint(boundary.Rect, inside, outside)

	r := boundary.Radius + borderThickness/2

	// deflate so the corners of b are the centres of the corner circles
	b := boundary.Rect.Deflate(r)

	if b.IsEmpty() || inside.X == outside.X || inside.Y == outside.Y {
		return pt
	}

	switch {
	case pt.X < b.X && pt.Y < b.Y:
		return cornerPoint(b.TopLeft(), r, -1, inside, outside)
	case pt.X > b.Right() && pt.Y < b.Y:
		return cornerPoint(b.TopRight(), r, 1, inside, outside)
	case pt.X < b.X && pt.Y > b.Bottom():
		return cornerPoint(b.BottomLeft(), r, -1, inside, outside)
	case pt.X > b.Right() && pt.Y > b.Bottom():
		return cornerPoint(b.BottomRight(), r, 1, inside, outside)
	}
	return pt
}

// cornerPoint intersects the line through inside and outside with the
// circle of radius+1 about centre. sign picks the root: -1 for the left
// hand corners, +1 for the right. The caller guarantees inside.X != outside.X.
func cornerPoint(centre geom.Point, radius int, sign float64, inside, outside geom.Point) geom.Point {
	radius++ // no hairline between the straight edges and the arcs

	// with the circle at the origin it is x^2 + y^2 = radius^2
	k := inside.Sub(centre)
	p := outside.Sub(centre)

	// y = m x + c through both points
	m := float64(p.Y-k.Y) / float64(p.X-k.X)
	c := float64(p.Y) - m*float64(p.X)

	r2 := float64(radius * radius)
	m2 := m * m

	disc := (m2+1)*r2 - c*c
	if disc < 0 {
		// the line misses the circle; settle for the nearest point on it
		lg().Debug("corner line misses circle, using tangent point",
			"centre", centre, "radius", radius, "inside", inside, "outside", outside)
		disc = 0
	}
	g := math.Sqrt(disc)

	x := (sign*g - c*m) / (m2 + 1)
	y := (sign*g*m + c) / (m2 + 1)

	return centre.Add(geom.Pt(geom.Round(x), geom.Round(y)))
}
