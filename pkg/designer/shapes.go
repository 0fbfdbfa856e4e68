package designer

import (
	"image/color"

	"github.com/ha1tch/graphctrl/pkg/geom"
)

// Style selects a node's appearance.
type Style int

const (
	StyleCustom    Style = iota // Drawn by the node itself
	StyleRectangle              // Plain rectangle
	StyleEllipse                // Ellipse inscribed in the bounds
	StyleTriangle               // Upward pointing triangle
	StyleDiamond                // Diamond touching the edge midpoints
)

var styleNames = [...]string{"custom", "rectangle", "ellipse", "triangle", "diamond"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "unknown"
	}
	return styleNames[s]
}

// ParseStyle is the inverse of Style.String.
func ParseStyle(name string) (Style, bool) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), true
		}
	}
	return StyleCustom, false
}

// StylePolygon returns the outline of a polygonal style inside r, or nil
// for styles that are not polygons.
func StylePolygon(s Style, r geom.Rect) []geom.Point {
	switch s {
	case StyleTriangle:
		return []geom.Point{
			{X: r.X + r.W/2, Y: r.Y},
			{X: r.X + r.W, Y: r.Y + r.H},
			{X: r.X, Y: r.Y + r.H},
		}
	case StyleDiamond:
		return []geom.Point{
			{X: r.X + r.W/2, Y: r.Y},
			{X: r.X + r.W, Y: r.Y + r.H/2},
			{X: r.X + r.W/2, Y: r.Y + r.H},
			{X: r.X, Y: r.Y + r.H/2},
		}
	}
	return nil
}

// StylePerimeterPoint returns where a line from inside to outside crosses
// the outline of a built-in style drawn in r. StyleCustom is treated as a
// plain rectangle.
func StylePerimeterPoint(s Style, r geom.Rect, inside, outside geom.Point) geom.Point {
	switch s {
	case StyleEllipse:
		return geom.EllipsePerimeterPoint(r, inside, outside)
	case StyleTriangle, StyleDiamond:
		return geom.PolygonPerimeterPoint(StylePolygon(s, r), inside, outside)
	}
	return geom.PerimeterPoint(r, inside, outside)
}

// DrawStyle outlines and fills a built-in style in r and centres a label
// of the given extent inside it.
func DrawStyle(sf Surface, s Style, r geom.Rect, pen, fill color.Color, label string, extent geom.Size, f Font, text color.Color) {
	sf.SetPen(pen, 1)
	sf.SetBrush(fill)

	switch s {
	case StyleEllipse:
		sf.DrawEllipse(r)
	case StyleTriangle, StyleDiamond:
		sf.DrawPolygon(StylePolygon(s, r))
	default:
		sf.DrawRectangle(r)
	}

	if label == "" {
		return
	}
	c := r.Center()
	at := geom.Rect{X: c.X - extent.W/2, Y: c.Y - extent.H/2, W: extent.W, H: extent.H}
	sf.DrawLabel(label, at, f, text)
}
