package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
)

// SVGSurface records drawing calls as SVG elements. The view rectangle, in
// canvas coordinates, becomes the document's viewBox.
type SVGSurface struct {
	view     geom.Rect
	sb       strings.Builder
	pen      color.Color
	penWidth int
	brush    color.Color
	lineGap  float64
}

// NewSVGSurface starts a document showing view.
func NewSVGSurface(view geom.Rect) *SVGSurface {
	return &SVGSurface{view: view, pen: designer.Black, penWidth: 1, lineGap: 1.2}
}

func (s *SVGSurface) SetPen(c color.Color, width int) {
	s.pen = c
	s.penWidth = width
}

func (s *SVGSurface) SetBrush(c color.Color) { s.brush = c }

func (s *SVGSurface) paint() string {
	stroke := "none"
	if s.pen != nil && s.penWidth > 0 {
		stroke = svgColour(s.pen)
	}
	attrs := fmt.Sprintf(`fill="%s" stroke="%s"`, svgColour(s.brush), stroke)
	if stroke != "none" {
		attrs += fmt.Sprintf(` stroke-width="%d"`, s.penWidth)
	}
	return attrs
}

func (s *SVGSurface) DrawRectangle(r geom.Rect) {
	fmt.Fprintf(&s.sb, `  <rect x="%d" y="%d" width="%d" height="%d" %s/>`+"\n",
		r.X, r.Y, r.W, r.H, s.paint())
}

func (s *SVGSurface) DrawRoundedRectangle(r geom.Rect, radius int) {
	fmt.Fprintf(&s.sb, `  <rect x="%d" y="%d" width="%d" height="%d" rx="%d" ry="%d" %s/>`+"\n",
		r.X, r.Y, r.W, r.H, radius, radius, s.paint())
}

func (s *SVGSurface) DrawEllipse(r geom.Rect) {
	fmt.Fprintf(&s.sb, `  <ellipse cx="%g" cy="%g" rx="%g" ry="%g" %s/>`+"\n",
		float64(r.X)+float64(r.W)/2, float64(r.Y)+float64(r.H)/2,
		float64(r.W)/2, float64(r.H)/2, s.paint())
}

func (s *SVGSurface) DrawPolygon(pts []geom.Point) {
	if len(pts) == 0 {
		return
	}
	coords := make([]string, len(pts))
	for i, p := range pts {
		coords[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	fmt.Fprintf(&s.sb, `  <polygon points="%s" %s/>`+"\n", strings.Join(coords, " "), s.paint())
}

func (s *SVGSurface) DrawLine(a, b geom.Point) {
	if s.pen == nil || s.penWidth <= 0 {
		return
	}
	fmt.Fprintf(&s.sb, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%d"/>`+"\n",
		a.X, a.Y, b.X, b.Y, svgColour(s.pen), s.penWidth)
}

// DrawLabel writes a text element with one tspan per line. Lines hang from
// the top of r.
func (s *SVGSurface) DrawLabel(text string, r geom.Rect, f designer.Font, c color.Color) {
	size := f.Size
	if size <= 0 {
		size = designer.DefaultFont.Size
	}
	weight := "normal"
	if f.Bold {
		weight = "bold"
	}
	family := f.Family
	if family == "" {
		family = designer.DefaultFont.Family
	}

	fmt.Fprintf(&s.sb, `  <text x="%d" y="%d" font-family="%s, sans-serif" font-size="%g" font-weight="%s" fill="%s" dominant-baseline="hanging">`,
		r.X, r.Y, html.EscapeString(family), size, weight, svgColour(c))
	for i, line := range strings.Split(text, "\n") {
		dy := 0.0
		if i > 0 {
			dy = size * s.lineGap
		}
		fmt.Fprintf(&s.sb, `<tspan x="%d" dy="%g">%s</tspan>`, r.X, dy, html.EscapeString(line))
	}
	s.sb.WriteString("</text>\n")
}

// DrawIcon embeds img as a base64 PNG.
func (s *SVGSurface) DrawIcon(img image.Image, at geom.Point) {
	if img == nil {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		fmt.Fprintf(&s.sb, "  <!-- icon: %s -->\n", html.EscapeString(err.Error()))
		return
	}
	b := img.Bounds()
	fmt.Fprintf(&s.sb, `  <image x="%d" y="%d" width="%d" height="%d" href="data:image/png;base64,%s"/>`+"\n",
		at.X, at.Y, b.Dx(), b.Dy(), base64.StdEncoding.EncodeToString(buf.Bytes()))
}

// String returns the complete document.
func (s *SVGSurface) String() string {
	var out strings.Builder
	v := s.view
	out.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%d %d %d %d">`+"\n",
		v.W, v.H, v.X, v.Y, v.W, v.H)
	out.WriteString(s.sb.String())
	out.WriteString("</svg>\n")
	return out.String()
}

// WriteTo writes the complete document to w.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// svgColour formats c as #rrggbb, with an rgba() form for translucent
// colours. A nil colour is "none".
func svgColour(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return "none"
	}
	if n.A < 0xff {
		return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", n.R, n.G, n.B, float64(n.A)/255)
	}
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
