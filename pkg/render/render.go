package render

import (
	"fmt"
	"io"

	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
	"github.com/ha1tch/graphctrl/pkg/graph"
)

// Options configures whole-graph rendering.
type Options struct {
	Width      int                  // minimum canvas width; the graph is centred
	Height     int                  // minimum canvas height
	Padding    int                  // margin around the graph
	Scale      int                  // PNG supersampling factor
	Background *designer.Background // nil paints plain white
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	bg := designer.DefaultBackground()
	return Options{
		Padding:    20,
		Scale:      4,
		Background: &bg,
	}
}

// View returns the canvas rectangle rendered for g: the graph bounds plus
// padding, grown about its centre to the minimum size.
func View(g *graph.Graph, opts Options) geom.Rect {
	r := g.Bounds()
	if r.IsEmpty() {
		r = geom.R(0, 0, 1, 1)
	}
	r = r.Inflate(opts.Padding)
	if dw := opts.Width - r.W; dw > 0 {
		r.X -= dw / 2
		r.W = opts.Width
	}
	if dh := opts.Height - r.H; dh > 0 {
		r.Y -= dh / 2
		r.H = opts.Height
	}
	return r
}

func paint(s designer.Surface, g *graph.Graph, view geom.Rect, m designer.Measurer, opts Options) {
	if opts.Background != nil {
		opts.Background.Paint(s, view)
	} else {
		s.SetPen(nil, 0)
		s.SetBrush(designer.White)
		s.DrawRectangle(view)
	}
	g.Draw(s, m)
}

// RenderSVG lays g out with the Go fonts and writes it as an SVG document.
func RenderSVG(w io.Writer, g *graph.Graph, opts Options) error {
	m, err := NewFontMeasurer(DefaultDPI)
	if err != nil {
		return err
	}
	g.LayoutAll(m)

	view := View(g, opts)
	s := NewSVGSurface(view)
	paint(s, g, view, m, opts)
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// RenderPNG lays g out with the Go fonts and writes it as a PNG image.
func RenderPNG(w io.Writer, g *graph.Graph, opts Options) error {
	m, err := NewFontMeasurer(DefaultDPI)
	if err != nil {
		return err
	}
	g.LayoutAll(m)

	view := View(g, opts)
	s, err := NewPNGSurface(view, opts.Scale)
	if err != nil {
		return err
	}
	paint(s, g, view, m, opts)
	if err := s.Encode(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
