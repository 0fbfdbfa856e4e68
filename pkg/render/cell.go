package render

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
)

// CellSurface draws onto a terminal screen, one canvas unit per cell.
// Brushes colour cell backgrounds and pens draw box and line characters.
type CellSurface struct {
	screen   tcell.Screen
	origin   geom.Point // canvas point shown in the clip's top-left cell
	clip     geom.Rect  // screen cells that may be written
	pen      color.Color
	penWidth int
	brush    color.Color
}

// NewCellSurface draws into the clip cells of screen with origin at the
// clip's top-left.
func NewCellSurface(screen tcell.Screen, origin geom.Point, clip geom.Rect) *CellSurface {
	return &CellSurface{screen: screen, origin: origin, clip: clip, pen: designer.Black, penWidth: 1}
}

// ToCanvas maps a screen cell to the canvas point it shows.
func (s *CellSurface) ToCanvas(x, y int) geom.Point {
	return geom.Pt(x-s.clip.X+s.origin.X, y-s.clip.Y+s.origin.Y)
}

func (s *CellSurface) SetPen(c color.Color, width int) {
	s.pen = c
	s.penWidth = width
}

func (s *CellSurface) SetBrush(c color.Color) { s.brush = c }

func (s *CellSurface) stroking() bool { return s.pen != nil && s.penWidth > 0 }

// set writes r at canvas point (x, y). A nil fg or bg keeps the cell's
// current colour.
func (s *CellSurface) set(x, y int, r rune, fg, bg color.Color) {
	sx, sy := x-s.origin.X+s.clip.X, y-s.origin.Y+s.clip.Y
	if !s.clip.Contains(geom.Pt(sx, sy)) {
		return
	}
	_, _, style, _ := s.screen.GetContent(sx, sy)
	if fg != nil {
		style = style.Foreground(cellColour(fg))
	}
	if bg != nil {
		style = style.Background(cellColour(bg))
	}
	s.screen.SetContent(sx, sy, r, nil, style)
}

func cellColour(c color.Color) tcell.Color {
	n := color.RGBAModel.Convert(c).(color.RGBA)
	if n.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

var (
	squareCorners  = [4]rune{'┌', '┐', '└', '┘'}
	roundedCorners = [4]rune{'╭', '╮', '╰', '╯'}
)

func (s *CellSurface) box(r geom.Rect, corners [4]rune) {
	if r.IsEmpty() {
		return
	}
	if s.brush != nil {
		for y := r.Y; y <= r.Bottom(); y++ {
			for x := r.X; x <= r.Right(); x++ {
				s.set(x, y, ' ', nil, s.brush)
			}
		}
	}
	if !s.stroking() {
		return
	}
	if r.W == 1 || r.H == 1 {
		s.DrawLine(r.TopLeft(), r.BottomRight())
		return
	}

	for x := r.X + 1; x < r.Right(); x++ {
		s.set(x, r.Y, '─', s.pen, nil)
		s.set(x, r.Bottom(), '─', s.pen, nil)
	}
	for y := r.Y + 1; y < r.Bottom(); y++ {
		s.set(r.X, y, '│', s.pen, nil)
		s.set(r.Right(), y, '│', s.pen, nil)
	}
	s.set(r.X, r.Y, corners[0], s.pen, nil)
	s.set(r.Right(), r.Y, corners[1], s.pen, nil)
	s.set(r.X, r.Bottom(), corners[2], s.pen, nil)
	s.set(r.Right(), r.Bottom(), corners[3], s.pen, nil)
}

func (s *CellSurface) DrawRectangle(r geom.Rect) { s.box(r, squareCorners) }

// DrawRoundedRectangle uses rounded corner characters; the radius only
// decides between square and rounded.
func (s *CellSurface) DrawRoundedRectangle(r geom.Rect, radius int) {
	if radius <= 0 {
		s.box(r, squareCorners)
		return
	}
	s.box(r, roundedCorners)
}

func (s *CellSurface) DrawEllipse(r geom.Rect) {
	if r.IsEmpty() {
		return
	}
	a, b := float64(r.W)/2, float64(r.H)/2
	cx, cy := float64(r.X)+a, float64(r.Y)+b
	inside := func(x, y int) bool {
		dx := (float64(x) + 0.5 - cx) / a
		dy := (float64(y) + 0.5 - cy) / b
		return dx*dx+dy*dy <= 1
	}

	for y := r.Y; y <= r.Bottom(); y++ {
		for x := r.X; x <= r.Right(); x++ {
			if !inside(x, y) {
				continue
			}
			edge := !inside(x-1, y) || !inside(x+1, y) || !inside(x, y-1) || !inside(x, y+1)
			switch {
			case edge && s.stroking():
				s.set(x, y, '•', s.pen, s.brush)
			case s.brush != nil:
				s.set(x, y, ' ', nil, s.brush)
			}
		}
	}
}

func (s *CellSurface) DrawPolygon(pts []geom.Point) {
	if len(pts) == 0 {
		return
	}
	if s.brush != nil && len(pts) > 2 {
		var r geom.Rect
		for _, p := range pts {
			r = r.Union(geom.R(p.X, p.Y, 1, 1))
		}
		for y := r.Y; y <= r.Bottom(); y++ {
			for x := r.X; x <= r.Right(); x++ {
				if inPolygon(pts, float64(x)+0.5, float64(y)+0.5) {
					s.set(x, y, ' ', nil, s.brush)
				}
			}
		}
	}
	if s.stroking() {
		for i := range pts {
			s.DrawLine(pts[i], pts[(i+1)%len(pts)])
		}
	}
}

func inPolygon(pts []geom.Point, x, y float64) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		xi, yi := float64(pts[i].X), float64(pts[i].Y)
		xj, yj := float64(pts[j].X), float64(pts[j].Y)
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			in = !in
		}
	}
	return in
}

// lineRune picks the character that best follows a line's direction.
func lineRune(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '•'
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	}
	slope := math.Abs(float64(dy) / float64(dx))
	switch {
	case slope < 0.4:
		return '─'
	case slope > 2.5:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	}
	return '╱'
}

// DrawLine steps through the cells of a-b with Bresenham's algorithm.
func (s *CellSurface) DrawLine(a, b geom.Point) {
	if !s.stroking() {
		return
	}
	ch := lineRune(b.X-a.X, b.Y-a.Y)

	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		s.set(x, y, ch, s.pen, nil)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawLabel writes each line from r's top-left, keeping cell backgrounds.
func (s *CellSurface) DrawLabel(text string, r geom.Rect, _ designer.Font, c color.Color) {
	if c == nil {
		c = designer.Black
	}
	for i, line := range strings.Split(text, "\n") {
		x := r.X
		for _, ch := range line {
			s.set(x, r.Y+i, ch, c, nil)
			x += max(runewidth.RuneWidth(ch), 1)
		}
	}
}

// DrawIcon paints one full block per opaque pixel.
func (s *CellSurface) DrawIcon(img image.Image, at geom.Point) {
	if img == nil {
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a < 0x8000 {
				continue
			}
			s.set(at.X+x-b.Min.X, at.Y+y-b.Min.Y, '█', c, nil)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
