package designer

import (
	"image"
	"image/color"

	"github.com/ha1tch/graphctrl/pkg/geom"
)

// Surface is a drawing target. Shapes are outlined with the current pen and
// filled with the current brush; a nil pen colour or zero width draws no
// outline and a nil brush draws no fill.
type Surface interface {
	SetPen(c color.Color, width int)
	SetBrush(c color.Color)

	DrawRectangle(r geom.Rect)
	DrawRoundedRectangle(r geom.Rect, radius int)
	DrawEllipse(r geom.Rect)
	DrawPolygon(pts []geom.Point)
	DrawLine(a, b geom.Point)

	// DrawLabel draws text with its top-left line starting at r's top-left.
	DrawLabel(text string, r geom.Rect, f Font, c color.Color)
	DrawIcon(img image.Image, at geom.Point)
}

// Hex builds an opaque colour from 0xRRGGBB.
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xff,
	}
}

var (
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black = color.RGBA{0x00, 0x00, 0x00, 0xff}
)
