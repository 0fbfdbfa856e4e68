// Integer geometry for node and edge placement.
// Rectangles use inclusive Right/Bottom edges, so a rectangle at X with
// width W covers pixels X..X+W-1.

package geom

import (
	"fmt"
	"math"
)

// Point is a 2D integer coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{x, y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Less orders points top to bottom, then left to right.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Size is a width and height.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y int
	W, H int
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h int) Rect { return Rect{x, y, w, h} }

// RectAt returns a rectangle of the given size with its top-left at p.
func RectAt(p Point, s Size) Rect { return Rect{p.X, p.Y, s.W, s.H} }

// Right is the X coordinate of the rightmost column inside r.
func (r Rect) Right() int { return r.X + r.W - 1 }

// Bottom is the Y coordinate of the bottom row inside r.
func (r Rect) Bottom() int { return r.Y + r.H - 1 }

func (r Rect) TopLeft() Point     { return Point{r.X, r.Y} }
func (r Rect) TopRight() Point    { return Point{r.Right(), r.Y} }
func (r Rect) BottomLeft() Point  { return Point{r.X, r.Bottom()} }
func (r Rect) BottomRight() Point { return Point{r.Right(), r.Bottom()} }

// Size returns the width and height of r.
func (r Rect) Size() Size { return Size{r.W, r.H} }

// Center returns the centre of r, rounded towards the top-left.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.Right() && p.Y <= r.Bottom()
}

// Deflate shrinks r by d on all four sides.
func (r Rect) Deflate(d int) Rect {
	return Rect{r.X + d, r.Y + d, r.W - 2*d, r.H - 2*d}
}

// Inflate grows r by d on all four sides.
func (r Rect) Inflate(d int) Rect { return r.Deflate(-d) }

// Offset returns r translated by p.
func (r Rect) Offset(p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Union returns the smallest rectangle containing both r and o.
// An empty rectangle contributes nothing.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.X+r.W, o.X+o.W)
	y1 := max(r.Y+r.H, o.Y+o.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Intersects reports whether r and o share any pixel.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("rect(%d,%d,%d,%d)", r.X, r.Y, r.W, r.H)
}

// RoundedRect is a rectangle whose corners are quarter circles of Radius.
// Callers keep Radius <= min(W, H)/2.
type RoundedRect struct {
	Rect
	Radius int
}

// Round converts a float to the nearest integer, halves away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// SegmentDist returns the distance from p to the segment ab.
func SegmentDist(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return Dist(p, a)
	}
	t := (float64(p.X-a.X)*dx + float64(p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	x := float64(a.X) + t*dx - float64(p.X)
	y := float64(a.Y) + t*dy - float64(p.Y)
	return math.Hypot(x, y)
}
