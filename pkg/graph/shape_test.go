package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
)

func TestShapeNodeLayout(t *testing.T) {
	m := designer.MeasurerFunc(func(text string, f designer.Font) (int, int) {
		return 6 * len(text), 14
	})

	tests := []struct {
		style designer.Style
		want  geom.Size
	}{
		{designer.StyleRectangle, geom.Size{W: 40, H: 30}},
		{designer.StyleEllipse, geom.Size{W: 56, H: 42}},
		{designer.StyleDiamond, geom.Size{W: 80, H: 60}},
		{designer.StyleTriangle, geom.Size{W: 80, H: 60}},
	}

	for _, tc := range tests {
		t.Run(tc.style.String(), func(t *testing.T) {
			n := NewShapeNode("Sort", tc.style)
			n.Layout(m)
			assert.Equal(t, tc.want, n.Bounds().Size())
			assert.Equal(t, geom.Pt(0, 0), n.Bounds().Center())
		})
	}
}

func TestShapeNodeKeepsLargerBounds(t *testing.T) {
	n := NewShapeNode("Sort", designer.StyleRectangle)
	n.SetBounds(geom.R(0, 0, 100, 50))
	n.Layout(designer.MeasurerFunc(func(string, designer.Font) (int, int) { return 10, 10 }))
	assert.Equal(t, geom.R(0, 0, 100, 50), n.Bounds())
}

func TestShapeNodeHitAndPerimeter(t *testing.T) {
	n := NewShapeNode("Merge", designer.StyleEllipse)
	n.SetBounds(geom.R(0, 0, 100, 60))

	assert.Equal(t, designer.HitBody, n.HitTest(geom.Pt(50, 30)))
	assert.Equal(t, designer.HitNone, n.HitTest(geom.Pt(100, 30)))
	assert.Equal(t, geom.Pt(100, 30), n.PerimeterPoint(geom.Pt(50, 30), geom.Pt(300, 30)))
}
