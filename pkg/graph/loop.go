package graph

import "github.com/ha1tch/graphctrl/pkg/geom"

// LoopSide is the side of a node a self loop bulges out of.
type LoopSide int

const (
	LoopRight LoopSide = iota
	LoopLeft
	LoopTop
	LoopBottom
)

// SelfLoop shapes a self loop.
type SelfLoop struct {
	Side       LoopSide
	Offset     float64 // distance from the outline to the apex
	PortOffset float64 // port distance from the centre line, as a fraction of the half height
}

// DefaultSelfLoop is a loop on the right, 25px out.
func DefaultSelfLoop() SelfLoop {
	return SelfLoop{Side: LoopRight, Offset: 25, PortOffset: 0.35}
}

const loopSteps = 8

// SelfLoopControlPoints returns P0..P6 of a self loop on the node in r:
// P0-P3 runs from the tail port to the apex and P3-P6 on to the head port.
func SelfLoopControlPoints(r geom.Rect, l SelfLoop) []geom.Point {
	cx := float64(r.X) + float64(r.W)/2
	cy := float64(r.Y) + float64(r.H)/2
	rx := float64(r.W) / 2
	ry := float64(r.H) / 2

	spread := ry * 0.5

	var pts [7][2]float64
	switch l.Side {
	case LoopRight, LoopLeft:
		dir := 1.0
		if l.Side == LoopLeft {
			dir = -1
		}
		port := ry * l.PortOffset
		d := rx + l.Offset
		pts = [7][2]float64{
			{cx + dir*rx, cy - port},
			{cx + dir*(rx+d*0.4), cy - port - spread},
			{cx + dir*d, cy - spread},
			{cx + dir*d, cy},
			{cx + dir*d, cy + spread},
			{cx + dir*(rx+d*0.4), cy + port + spread},
			{cx + dir*rx, cy + port},
		}
	default:
		dir := -1.0
		if l.Side == LoopBottom {
			dir = 1
		}
		port := rx * l.PortOffset
		d := ry + l.Offset
		pts = [7][2]float64{
			{cx - port, cy + dir*ry},
			{cx - port - spread, cy + dir*(ry+d*0.4)},
			{cx - spread, cy + dir*d},
			{cx, cy + dir*d},
			{cx + spread, cy + dir*d},
			{cx + port + spread, cy + dir*(ry+d*0.4)},
			{cx + port, cy + dir*ry},
		}
	}

	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = geom.Pt(geom.Round(p[0]), geom.Round(p[1]))
	}
	return out
}

// FlattenCubic approximates the cubic Bézier p0..p3 with steps segments.
func FlattenCubic(p0, p1, p2, p3 geom.Point, steps int) []geom.Point {
	out := make([]geom.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		u := 1 - t
		a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		x := a*float64(p0.X) + b*float64(p1.X) + c*float64(p2.X) + d*float64(p3.X)
		y := a*float64(p0.Y) + b*float64(p1.Y) + c*float64(p2.Y) + d*float64(p3.Y)
		out = append(out, geom.Pt(geom.Round(x), geom.Round(y)))
	}
	return out
}
