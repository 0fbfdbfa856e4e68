// Package designer implements the project designer node: a rounded
// rectangle with a coloured header band holding the operation label, an
// optional icon and a result text underneath. It lays out its regions
// against a text Measurer, grows to fit them, computes where edges meet its
// rounded outline and draws itself onto any Surface.
package designer

import (
	"image"
	"image/color"

	"github.com/ha1tch/graphctrl/pkg/geom"
)

// Hit names the part of a node found at a point.
type Hit int

const (
	HitNone   Hit = iota // Outside the node
	HitBody              // Inside, but not on a labelled region
	HitLabel             // The operation label in the header band
	HitResult            // The result text
	HitIcon              // The icon
)

func (h Hit) String() string {
	switch h {
	case HitBody:
		return "body"
	case HitLabel:
		return "label"
	case HitResult:
		return "result"
	case HitIcon:
		return "icon"
	}
	return "none"
}

// Default appearance of a new node.
const (
	DefaultBorderThickness = 6
	DefaultCornerRadius    = 10
)

// ProjectNode is a project designer node.
type ProjectNode struct {
	id     string
	text   string
	result string
	icon   image.Image
	font   Font
	style  Style

	colour     color.Color // border and header band
	background color.Color
	textColour color.Color

	borderThickness int
	cornerRadius    int

	bounds geom.Rect
	layout LayoutState

	// measurer, when set, lets setters lay the node out straight away.
	measurer Measurer
}

// NewProjectNode returns a node with the default border, corner radius and
// font, labelled with the given operation.
func NewProjectNode(operation string) *ProjectNode {
	return &ProjectNode{
		text:            operation,
		font:            DefaultFont,
		style:           StyleCustom,
		colour:          Hex(0x16a8fa),
		background:      White,
		textColour:      Black,
		borderThickness: DefaultBorderThickness,
		cornerRadius:    DefaultCornerRadius,
	}
}

func (n *ProjectNode) ID() string              { return n.id }
func (n *ProjectNode) Text() string            { return n.text }
func (n *ProjectNode) Operation() string       { return n.text }
func (n *ProjectNode) Result() string          { return n.result }
func (n *ProjectNode) Icon() image.Image       { return n.icon }
func (n *ProjectNode) Font() Font              { return n.font }
func (n *ProjectNode) Style() Style            { return n.style }
func (n *ProjectNode) Colour() color.Color     { return n.colour }
func (n *ProjectNode) Background() color.Color { return n.background }
func (n *ProjectNode) TextColour() color.Color { return n.textColour }
func (n *ProjectNode) BorderThickness() int    { return n.borderThickness }
func (n *ProjectNode) CornerRadius() int       { return n.cornerRadius }
func (n *ProjectNode) Bounds() geom.Rect       { return n.bounds }

// LayoutState returns the node's cached layout.
func (n *ProjectNode) LayoutState() *LayoutState { return &n.layout }

// SetID sets the node's identifier. It takes no part in layout.
func (n *ProjectNode) SetID(id string) { n.id = id }

// SetMeasurer attaches the measurer used for immediate relayout by the
// setters that change the result, icon, border or corners.
func (n *ProjectNode) SetMeasurer(m Measurer) { n.measurer = m }

// SetText sets the operation label.
func (n *ProjectNode) SetText(text string) {
	n.text = text
	n.layout.invalidate()
}

// SetOperation is SetText under the designer's name for the label.
func (n *ProjectNode) SetOperation(text string) { n.SetText(text) }

// SetFont changes the font of both label and result.
func (n *ProjectNode) SetFont(f Font) {
	n.font = f
	n.layout.invalidate()
}

// SetResult sets the result text shown beside the icon.
func (n *ProjectNode) SetResult(text string) {
	n.result = text
	n.layout.invalidate()
	n.relayout()
}

// SetIcon sets the icon; nil removes it. The result is placed after the
// icon, so every region is laid out again.
func (n *ProjectNode) SetIcon(img image.Image) {
	n.icon = img
	n.layout.invalidate()
	n.relayout()
}

// SetBorderThickness sets the outline width, which also drives the header
// band and the text insets.
func (n *ProjectNode) SetBorderThickness(thickness int) {
	n.borderThickness = thickness
	n.layout.invalidate()
	n.relayout()
}

// SetCornerRadius sets the radius of the rounded corners.
func (n *ProjectNode) SetCornerRadius(radius int) {
	n.cornerRadius = radius
	n.layout.invalidate()
	n.relayout()
}

// SetStyle switches between the custom designer look and a built-in shape.
func (n *ProjectNode) SetStyle(s Style) {
	n.style = s
	n.layout.valid = false
}

func (n *ProjectNode) SetColour(c color.Color)     { n.colour = c }
func (n *ProjectNode) SetBackground(c color.Color) { n.background = c }
func (n *ProjectNode) SetTextColour(c color.Color) { n.textColour = c }

// SetBounds moves and resizes the node. Layout may later grow it again.
func (n *ProjectNode) SetBounds(r geom.Rect) {
	n.bounds = r
	n.layout.valid = false
}

// SetSize resizes the node keeping its top-left corner.
func (n *ProjectNode) SetSize(s geom.Size) {
	n.SetBounds(geom.RectAt(n.bounds.TopLeft(), s))
}

// SetPosition centres the node on p.
func (n *ProjectNode) SetPosition(p geom.Point) {
	n.bounds.X = p.X - n.bounds.W/2
	n.bounds.Y = p.Y - n.bounds.H/2
}

// InvalidateSize lets the node shrink to fit its content on the next
// layout, which otherwise only ever grows it.
func (n *ProjectNode) InvalidateSize() {
	n.bounds.W, n.bounds.H = 0, 0
	n.layout.valid = false
}

func (n *ProjectNode) relayout() {
	if n.measurer != nil {
		n.Layout(n.measurer)
	}
}

// Layout runs a layout pass with m.
func (n *ProjectNode) Layout(m Measurer) {
	Layout(n, m)
}

// HitTest reports which part of the node is at p.
func (n *ProjectNode) HitTest(p geom.Point) Hit {
	if !n.bounds.Contains(p) {
		return HitNone
	}

	if n.style == StyleCustom {
		local := p.Sub(n.bounds.TopLeft())

		if r, ok := n.layout.TextRect(); ok && r.Contains(local) {
			return HitLabel
		}
		if r, ok := n.layout.ResultRect(); ok && r.Contains(local) {
			return HitResult
		}
		if r, ok := n.layout.IconRect(); ok && r.Contains(local) {
			return HitIcon
		}
	}

	return HitBody
}

// PerimeterPoint returns where a line from inside to outside meets the
// node's outline.
func (n *ProjectNode) PerimeterPoint(inside, outside geom.Point) geom.Point {
	if n.style != StyleCustom {
		return StylePerimeterPoint(n.style, n.bounds, inside, outside)
	}
	boundary := geom.RoundedRect{Rect: n.bounds, Radius: n.cornerRadius}
	return Intersect(boundary, n.borderThickness, inside, outside)
}
