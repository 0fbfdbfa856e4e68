package graph

import (
	"image/color"
	"math"

	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
)

// Edge is a directed connection between two nodes.
type Edge struct {
	from, to Node
	colour   color.Color
}

func (e *Edge) From() Node          { return e.from }
func (e *Edge) To() Node            { return e.to }
func (e *Edge) Colour() color.Color { return e.colour }

func (e *Edge) SetColour(c color.Color) { e.colour = c }

// IsSelfLoop reports whether the edge starts and ends at the same node.
func (e *Edge) IsSelfLoop() bool { return e.from == e.to }

// Endpoints returns where the edge leaves its source and meets its target.
// Each end is on its node's outline, along the line between the two node
// centres. Nodes sharing a centre give the centres themselves. A self
// loop gives its tail and head ports.
func (e *Edge) Endpoints() (geom.Point, geom.Point) {
	if e.IsSelfLoop() {
		pts := e.LoopPoints()
		return pts[0], pts[len(pts)-1]
	}

	a := e.from.Bounds().Center()
	b := e.to.Bounds().Center()
	if a == b {
		return a, b
	}
	return e.from.PerimeterPoint(a, b), e.to.PerimeterPoint(b, a)
}

// LoopPoints returns the seven control points of a self loop on the right
// of the node: two cubic Bézier segments, tail to apex and apex to head.
func (e *Edge) LoopPoints() []geom.Point {
	return SelfLoopControlPoints(e.from.Bounds(), DefaultSelfLoop())
}

// Path returns the polyline the edge is drawn along.
func (e *Edge) Path() []geom.Point {
	if e.IsSelfLoop() {
		p := e.LoopPoints()
		path := FlattenCubic(p[0], p[1], p[2], p[3], loopSteps)
		return append(path, FlattenCubic(p[3], p[4], p[5], p[6], loopSteps)[1:]...)
	}
	a, b := e.Endpoints()
	return []geom.Point{a, b}
}

// Bounds covers the edge's path.
func (e *Edge) Bounds() geom.Rect {
	path := e.Path()
	x0, y0 := path[0].X, path[0].Y
	x1, y1 := x0, y0
	for _, p := range path[1:] {
		x0, y0 = min(x0, p.X), min(y0, p.Y)
		x1, y1 = max(x1, p.X), max(y1, p.Y)
	}
	return geom.R(x0, y0, x1-x0+1, y1-y0+1)
}

func (e *Edge) near(p geom.Point, tolerance float64) bool {
	path := e.Path()
	for i := 1; i < len(path); i++ {
		if geom.SegmentDist(p, path[i-1], path[i]) <= tolerance {
			return true
		}
	}
	return false
}

// ArrowSize is the default length of an arrowhead.
const ArrowSize = 10

// Arrowhead returns the triangle of an arrow pointing at tip, coming from
// the direction of from.
func Arrowhead(tip, from geom.Point, size int) []geom.Point {
	dx := float64(tip.X - from.X)
	dy := float64(tip.Y - from.Y)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	ux, uy := dx/l, dy/l
	s := float64(size)
	bx := float64(tip.X) - ux*s
	by := float64(tip.Y) - uy*s
	return []geom.Point{
		tip,
		geom.Pt(geom.Round(bx-uy*s/2), geom.Round(by+ux*s/2)),
		geom.Pt(geom.Round(bx+uy*s/2), geom.Round(by-ux*s/2)),
	}
}

// Draw strokes the edge with an arrowhead of the given length at its
// target. A length below 1 draws no arrowhead.
func (e *Edge) Draw(s designer.Surface, selected bool, arrow int) {
	width := 1
	if selected {
		width = 3
	}
	s.SetPen(e.colour, width)

	path := e.Path()
	for i := 1; i < len(path); i++ {
		s.DrawLine(path[i-1], path[i])
	}

	if arrow < 1 {
		return
	}
	n := len(path)
	if head := Arrowhead(path[n-1], path[n-2], arrow); head != nil {
		s.SetPen(e.colour, 1)
		s.SetBrush(e.colour)
		s.DrawPolygon(head)
	}
}
