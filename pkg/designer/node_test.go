package designer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ha1tch/graphctrl/pkg/geom"
)

func TestHitTest(t *testing.T) {
	n := newTestNode()
	n.SetBounds(geom.R(100, 100, 50, 30))
	Layout(n, &fakeMeasurer{})
	// bounds (100,100,73,64); text (9,9,40,14), icon (9,37,16,16) and
	// result (34,31,30,28) relative to the top-left

	tests := []struct {
		name string
		p    geom.Point
		want Hit
	}{
		{"label", geom.Pt(110, 110), HitLabel},
		{"result", geom.Pt(140, 135), HitResult},
		{"icon", geom.Pt(112, 140), HitIcon},
		{"body", geom.Pt(170, 160), HitBody},
		{"top left corner", geom.Pt(100, 100), HitBody},
		{"bottom right corner", geom.Pt(172, 163), HitBody},
		{"left of node", geom.Pt(99, 110), HitNone},
		{"below node", geom.Pt(110, 164), HitNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, n.HitTest(tc.p))
		})
	}
}

func TestHitTestPriority(t *testing.T) {
	n := NewProjectNode("Join")
	n.SetBounds(geom.R(0, 0, 100, 100))

	// overlapping regions
	n.layout.text.set(geom.R(0, 0, 30, 30))
	n.layout.result.set(geom.R(20, 20, 30, 30))
	n.layout.icon.set(geom.R(10, 10, 50, 50))

	assert.Equal(t, HitLabel, n.HitTest(geom.Pt(25, 25)))
	assert.Equal(t, HitResult, n.HitTest(geom.Pt(45, 45)))
	assert.Equal(t, HitIcon, n.HitTest(geom.Pt(55, 55)))
	assert.Equal(t, HitBody, n.HitTest(geom.Pt(80, 80)))
}

func TestHitTestBeforeLayout(t *testing.T) {
	n := NewProjectNode("Join")
	n.SetBounds(geom.R(0, 0, 100, 100))
	assert.Equal(t, HitBody, n.HitTest(geom.Pt(12, 12)))
}

func TestHitTestBuiltInStyle(t *testing.T) {
	n := newTestNode()
	Layout(n, &fakeMeasurer{})
	n.SetStyle(StyleEllipse)
	assert.Equal(t, HitBody, n.HitTest(geom.Pt(10, 10)))
}

func TestHitString(t *testing.T) {
	assert.Equal(t, "label", HitLabel.String())
	assert.Equal(t, "none", HitNone.String())
	assert.Equal(t, "none", Hit(42).String())
}

func TestSetPositionCentres(t *testing.T) {
	n := NewProjectNode("Sort")
	n.SetBounds(geom.R(0, 0, 80, 40))
	Layout(n, &fakeMeasurer{})
	assert.True(t, n.LayoutState().Valid())

	n.SetPosition(geom.Pt(200, 100))
	assert.Equal(t, geom.R(160, 80, 80, 40), n.Bounds())
	assert.True(t, n.LayoutState().Valid(), "moving keeps the layout")
}

func TestParseStyle(t *testing.T) {
	for _, s := range []Style{StyleCustom, StyleRectangle, StyleEllipse, StyleTriangle, StyleDiamond} {
		got, ok := ParseStyle(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ParseStyle("hexagon")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Style(-1).String())
}
