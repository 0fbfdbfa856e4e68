// Package render provides drawing surfaces and text measurers for the
// designer: SVG and PNG output backed by the Go fonts, and a terminal cell
// measurer.
package render

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ha1tch/graphctrl/pkg/designer"
)

// DefaultDPI maps one point to one pixel.
const DefaultDPI = 72

type faceKey struct {
	size float64
	bold bool
}

// FontMeasurer measures and draws text in Go Regular and Go Bold. Faces are
// created on first use and cached per size and weight. A FontMeasurer is
// not safe for concurrent use.
type FontMeasurer struct {
	dpi     float64
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

// NewFontMeasurer parses the embedded Go fonts. A dpi of zero means
// DefaultDPI.
func NewFontMeasurer(dpi float64) (*FontMeasurer, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go bold: %w", err)
	}
	return &FontMeasurer{
		dpi:     dpi,
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// DPI reports the resolution faces are built at.
func (m *FontMeasurer) DPI() float64 { return m.dpi }

// Face returns the cached face for f. The family is ignored; a zero size
// means designer.DefaultFont's size.
func (m *FontMeasurer) Face(f designer.Font) (font.Face, error) {
	size := f.Size
	if size <= 0 {
		size = designer.DefaultFont.Size
	}
	key := faceKey{size, f.Bold}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}

	src := m.regular
	if f.Bold {
		src = m.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     m.dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s: %w", f, err)
	}
	m.faces[key] = face
	return face, nil
}

// MeasureMultilineText returns the widest line's advance and the line
// height times the number of lines.
func (m *FontMeasurer) MeasureMultilineText(text string, f designer.Font) (int, int) {
	face, err := m.Face(f)
	if err != nil {
		slog.Warn("measure text", "font", f.String(), "err", err)
		return 0, 0
	}

	lines := strings.Split(text, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, font.MeasureString(face, line).Ceil())
	}
	return w, len(lines) * face.Metrics().Height.Ceil()
}

// CellMeasurer measures text in terminal cells: wide runes take two
// columns and each line is one row.
type CellMeasurer struct{}

func (CellMeasurer) MeasureMultilineText(text string, _ designer.Font) (int, int) {
	lines := strings.Split(text, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return w, len(lines)
}
