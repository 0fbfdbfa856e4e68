package designer

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ha1tch/graphctrl/pkg/geom"
)

// Background paints the designer canvas: a left to right colour ramp in
// vertical stripes, optionally overlaid with a grid.
type Background struct {
	From, To    color.Color
	ShowGrid    bool
	GridColour  color.Color
	GridSpacing int // canvas grid spacing in pixels
	Zoom        int // percent; 0 when unknown
}

// DefaultBackground is white fading to the designer blue.
func DefaultBackground() Background {
	return Background{
		From:        White,
		To:          Hex(0x1f97f6),
		ShowGrid:    true,
		GridColour:  Hex(0xd0d8e8),
		GridSpacing: 10,
		Zoom:        100,
	}
}

// stripe returns the stripe spacing and the ramp step per stripe. With the
// grid shown the stripes are five grid cells wide, doubling for every
// halving of the zoom below 50%.
func (bg Background) stripe() (spacing, factor int) {
	grid := bg.GridSpacing
	if grid <= 0 {
		grid = 1
	}
	if !bg.ShowGrid {
		return grid, 1
	}

	factor = 5
	if zoom := bg.Zoom; zoom > 0 {
		for zoom <= 50 {
			factor *= 2
			zoom *= 2
		}
	}
	return factor * grid, factor
}

// Colour returns the ramp colour at step i of 255.
func (bg Background) Colour(i int) color.Color {
	i = min(max(i, 0), 255)
	from, ok := colorful.MakeColor(bg.From)
	if !ok {
		from = colorful.Color{R: 1, G: 1, B: 1}
	}
	to, ok := colorful.MakeColor(bg.To)
	if !ok {
		to = from
	}
	r, g, b := from.BlendRgb(to, float64(i)/255).Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// Paint fills clip, in canvas coordinates, with the ramp and grid.
func (bg Background) Paint(s Surface, clip geom.Rect) {
	clip = clip.Inflate(1)
	spacing, factor := bg.stripe()

	rc := clip
	rc.X -= rc.X % spacing
	if clip.X < 0 {
		rc.X -= spacing
	}
	rc.W = spacing + 1

	s.SetPen(nil, 0)

	var last color.Color
	for rc.X < clip.Right() {
		i := min(abs(rc.X/spacing)*factor, 255)
		c := bg.Colour(i)
		if c != last {
			s.SetBrush(c)
			last = c
		}
		s.DrawRectangle(rc)
		rc.X += spacing
	}

	if !bg.ShowGrid {
		return
	}

	s.SetPen(bg.GridColour, 1)

	x1 := clip.X - clip.X%spacing
	if clip.X < 0 {
		x1 -= spacing
	}
	x2 := clip.Right() - clip.Right()%spacing
	if clip.Right() > 0 {
		x2 += spacing
	}
	for x := x1; x <= x2; x += spacing {
		s.DrawLine(geom.Pt(x, clip.Y), geom.Pt(x, clip.Bottom()))
	}

	y1 := clip.Y - clip.Y%spacing
	if clip.Y < 0 {
		y1 -= spacing
	}
	y2 := clip.Bottom() - clip.Bottom()%spacing
	if clip.Bottom() > 0 {
		y2 += spacing
	}
	for y := y1; y <= y2; y += spacing {
		s.DrawLine(geom.Pt(clip.X, y), geom.Pt(clip.Right(), y))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
