package graph

import (
	"image/color"

	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
)

// ShapeNode is a plain node drawn as one of the built-in styles with its
// text centred inside.
type ShapeNode struct {
	text       string
	style      designer.Style
	font       designer.Font
	colour     color.Color
	background color.Color
	textColour color.Color
	bounds     geom.Rect

	extent   geom.Size
	measured bool
}

// shapePadding is the room kept around the text of a ShapeNode.
const shapePadding = 8

// NewShapeNode returns a node of the given style. StyleCustom is drawn
// as a rectangle.
func NewShapeNode(text string, style designer.Style) *ShapeNode {
	return &ShapeNode{
		text:       text,
		style:      style,
		font:       designer.DefaultFont,
		colour:     designer.Black,
		background: designer.White,
		textColour: designer.Black,
	}
}

func (n *ShapeNode) Text() string          { return n.text }
func (n *ShapeNode) Style() designer.Style { return n.style }
func (n *ShapeNode) Font() designer.Font   { return n.font }
func (n *ShapeNode) Bounds() geom.Rect     { return n.bounds }

func (n *ShapeNode) SetText(text string) {
	n.text = text
	n.measured = false
}

func (n *ShapeNode) SetFont(f designer.Font) {
	n.font = f
	n.measured = false
}

func (n *ShapeNode) SetStyle(s designer.Style)   { n.style = s }
func (n *ShapeNode) SetColour(c color.Color)     { n.colour = c }
func (n *ShapeNode) SetBackground(c color.Color) { n.background = c }
func (n *ShapeNode) SetTextColour(c color.Color) { n.textColour = c }
func (n *ShapeNode) SetBounds(r geom.Rect)       { n.bounds = r }

func (n *ShapeNode) SetPosition(p geom.Point) {
	n.bounds.X = p.X - n.bounds.W/2
	n.bounds.Y = p.Y - n.bounds.H/2
}

// Layout measures the text and grows the node to hold it with padding.
// Ellipses and diamonds need more room than their bounding box suggests.
func (n *ShapeNode) Layout(m designer.Measurer) {
	if !n.measured {
		w, h := m.MeasureMultilineText(n.text, n.font)
		n.extent = geom.Size{W: w, H: h}
		n.measured = true
	}

	need := geom.Size{W: n.extent.W + 2*shapePadding, H: n.extent.H + 2*shapePadding}
	switch n.style {
	case designer.StyleEllipse:
		need.W = need.W * 1414 / 1000
		need.H = need.H * 1414 / 1000
	case designer.StyleDiamond, designer.StyleTriangle:
		need.W *= 2
		need.H *= 2
	}

	c := n.bounds.Center()
	grown := false
	if n.bounds.W < need.W {
		n.bounds.W = need.W
		grown = true
	}
	if n.bounds.H < need.H {
		n.bounds.H = need.H
		grown = true
	}
	if grown {
		n.SetPosition(c)
	}
}

func (n *ShapeNode) Draw(s designer.Surface, m designer.Measurer) {
	if !n.measured && m != nil {
		n.Layout(m)
	}
	designer.DrawStyle(s, n.style, n.bounds, n.colour, n.background, n.text, n.extent, n.font, n.textColour)
}

func (n *ShapeNode) PerimeterPoint(inside, outside geom.Point) geom.Point {
	return designer.StylePerimeterPoint(n.style, n.bounds, inside, outside)
}

func (n *ShapeNode) HitTest(p geom.Point) designer.Hit {
	if n.bounds.Contains(p) {
		return designer.HitBody
	}
	return designer.HitNone
}
