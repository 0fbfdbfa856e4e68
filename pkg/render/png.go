package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
)

// PNGSurface rasterises drawing calls into an RGBA image. Drawing happens
// at scale times the view size and Image scales the result back down, so
// edges come out smooth without per-primitive antialiasing.
type PNGSurface struct {
	img      *image.RGBA
	view     geom.Rect
	scale    float64
	fonts    *FontMeasurer
	pen      color.Color
	penWidth int
	brush    color.Color
}

// NewPNGSurface allocates a transparent image for view, in canvas
// coordinates, supersampled scale times. A scale below 1 is taken as 1.
func NewPNGSurface(view geom.Rect, scale int) (*PNGSurface, error) {
	scale = max(scale, 1)
	fonts, err := NewFontMeasurer(float64(DefaultDPI * scale))
	if err != nil {
		return nil, err
	}
	return &PNGSurface{
		img:      image.NewRGBA(image.Rect(0, 0, max(view.W, 0)*scale, max(view.H, 0)*scale)),
		view:     view,
		scale:    float64(scale),
		fonts:    fonts,
		pen:      designer.Black,
		penWidth: 1,
	}, nil
}

func (s *PNGSurface) SetPen(c color.Color, width int) {
	s.pen = c
	s.penWidth = width
}

func (s *PNGSurface) SetBrush(c color.Color) { s.brush = c }

// px converts a canvas point to supersampled pixel space.
func (s *PNGSurface) px(p geom.Point) (float64, float64) {
	return float64(p.X-s.view.X) * s.scale, float64(p.Y-s.view.Y) * s.scale
}

func (s *PNGSurface) halfPen() float64 {
	if s.pen == nil || s.penWidth <= 0 {
		return 0
	}
	return float64(s.penWidth) * s.scale / 2
}

// plot composites c over the pixel at (x, y).
func (s *PNGSurface) plot(x, y int, c color.Color) {
	if !image.Pt(x, y).In(s.img.Rect) {
		return
	}
	r, g, b, a := c.RGBA()
	switch a {
	case 0:
		return
	case 0xffff:
		s.img.SetRGBA(x, y, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff})
		return
	}
	dst := s.img.RGBAAt(x, y)
	ia := 0xffff - a
	over := func(src uint32, d uint8) uint8 {
		return uint8((src + uint32(d)*0x101*ia/0xffff) >> 8)
	}
	s.img.SetRGBA(x, y, color.RGBA{over(r, dst.R), over(g, dst.G), over(b, dst.B), over(a, dst.A)})
}

// shade fills pixels whose centre has a negative signed distance with the
// brush and strokes those within half the pen width of the outline.
func (s *PNGSurface) shade(x0, y0, x1, y1 float64, dist func(x, y float64) float64) {
	half := s.halfPen()
	fill := s.brush != nil
	if !fill && half == 0 {
		return
	}

	bounds := image.Rect(
		int(math.Floor(x0-half-1)), int(math.Floor(y0-half-1)),
		int(math.Ceil(x1+half+1)), int(math.Ceil(y1+half+1)),
	).Intersect(s.img.Rect)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := dist(float64(x)+0.5, float64(y)+0.5)
			if fill && d <= 0 {
				s.plot(x, y, s.brush)
			}
			if half > 0 && math.Abs(d) <= half {
				s.plot(x, y, s.pen)
			}
		}
	}
}

// roundedBox is the signed distance to a box with circular corners.
func roundedBox(x0, y0, x1, y1, radius float64) func(x, y float64) float64 {
	cx, cy := (x0+x1)/2, (y0+y1)/2
	hw, hh := (x1-x0)/2, (y1-y0)/2
	radius = math.Min(radius, math.Min(hw, hh))
	return func(x, y float64) float64 {
		qx := math.Abs(x-cx) - (hw - radius)
		qy := math.Abs(y-cy) - (hh - radius)
		outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
		inside := math.Min(math.Max(qx, qy), 0)
		return outside + inside - radius
	}
}

func (s *PNGSurface) DrawRectangle(r geom.Rect) { s.DrawRoundedRectangle(r, 0) }

func (s *PNGSurface) DrawRoundedRectangle(r geom.Rect, radius int) {
	x0, y0 := s.px(r.TopLeft())
	x1, y1 := x0+float64(r.W)*s.scale, y0+float64(r.H)*s.scale
	s.shade(x0, y0, x1, y1, roundedBox(x0, y0, x1, y1, float64(radius)*s.scale))
}

// DrawEllipse uses the scaled radial distance, which is exact on the axes
// and close enough elsewhere for outlines a few pixels wide.
func (s *PNGSurface) DrawEllipse(r geom.Rect) {
	x0, y0 := s.px(r.TopLeft())
	a, b := float64(r.W)*s.scale/2, float64(r.H)*s.scale/2
	if a <= 0 || b <= 0 {
		return
	}
	cx, cy := x0+a, y0+b
	s.shade(x0, y0, x0+2*a, y0+2*b, func(x, y float64) float64 {
		k := math.Hypot((x-cx)/a, (y-cy)/b)
		return (k - 1) * math.Min(a, b)
	})
}

func (s *PNGSurface) DrawPolygon(pts []geom.Point) {
	if len(pts) < 2 {
		return
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for i, p := range pts {
		xs[i], ys[i] = s.px(p)
		x0, y0 = math.Min(x0, xs[i]), math.Min(y0, ys[i])
		x1, y1 = math.Max(x1, xs[i]), math.Max(y1, ys[i])
	}

	s.shade(x0, y0, x1, y1, func(x, y float64) float64 {
		d := math.Inf(1)
		in := false
		for i, j := 0, len(xs)-1; i < len(xs); j, i = i, i+1 {
			d = math.Min(d, segmentDist(x, y, xs[j], ys[j], xs[i], ys[i]))
			if (ys[i] > y) != (ys[j] > y) && x < (xs[j]-xs[i])*(y-ys[i])/(ys[j]-ys[i])+xs[i] {
				in = !in
			}
		}
		if in {
			return -d
		}
		return d
	})
}

func (s *PNGSurface) DrawLine(a, b geom.Point) {
	half := s.halfPen()
	if half == 0 {
		return
	}
	ax, ay := s.px(a)
	bx, by := s.px(b)
	x0, y0 := math.Min(ax, bx), math.Min(ay, by)
	x1, y1 := math.Max(ax, bx), math.Max(ay, by)

	brush := s.brush
	s.brush = nil
	s.shade(x0, y0, x1, y1, func(x, y float64) float64 {
		return segmentDist(x, y, ax, ay, bx, by)
	})
	s.brush = brush
}

func segmentDist(x, y, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(x-ax, y-ay)
	}
	t := math.Max(0, math.Min(1, ((x-ax)*dx+(y-ay)*dy)/l2))
	return math.Hypot(x-(ax+t*dx), y-(ay+t*dy))
}

// DrawLabel draws each line of text with its ascent starting at the top of
// r.
func (s *PNGSurface) DrawLabel(text string, r geom.Rect, f designer.Font, c color.Color) {
	face, err := s.fonts.Face(f)
	if err != nil {
		slog.Warn("draw label", "font", f.String(), "err", err)
		return
	}
	if c == nil {
		c = designer.Black
	}
	x, y := s.px(r.TopLeft())
	metrics := face.Metrics()

	d := &font.Drawer{Dst: s.img, Src: image.NewUniform(c), Face: face}
	baseline := fixed.I(int(y)) + metrics.Ascent
	for _, line := range strings.Split(text, "\n") {
		d.Dot = fixed.Point26_6{X: fixed.I(int(x)), Y: baseline}
		d.DrawString(line)
		baseline += metrics.Height
	}
}

// DrawIcon blits img at its natural canvas size.
func (s *PNGSurface) DrawIcon(img image.Image, at geom.Point) {
	if img == nil {
		return
	}
	x, y := s.px(at)
	b := img.Bounds()
	dst := image.Rect(int(x), int(y),
		int(x+float64(b.Dx())*s.scale), int(y+float64(b.Dy())*s.scale))
	draw.NearestNeighbor.Scale(s.img, dst, img, b, draw.Over, nil)
}

// Image returns the picture at the view's size.
func (s *PNGSurface) Image() *image.RGBA {
	if s.scale == 1 {
		return s.img
	}
	out := image.NewRGBA(image.Rect(0, 0, max(s.view.W, 0), max(s.view.H, 0)))
	draw.CatmullRom.Scale(out, out.Bounds(), s.img, s.img.Bounds(), draw.Over, nil)
	return out
}

// Encode writes the picture as PNG.
func (s *PNGSurface) Encode(w io.Writer) error {
	return png.Encode(w, s.Image())
}
