package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
)

func TestOnAndUnsubscribe(t *testing.T) {
	g := New()
	var first, second int
	off := g.On(EventNodeAdd, func(*Event) { first++ })
	g.On(EventNodeAdd, func(*Event) { second++ })

	mustAdd(t, g, box("a"), geom.Pt(0, 0))
	off()
	off() // twice is harmless
	mustAdd(t, g, box("b"), geom.Pt(0, 0))

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestEdgeAddEventCarriesEnds(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))
	b := mustAdd(t, g, box("b"), geom.Pt(200, 0))

	var got *Event
	g.On(EventEdgeAdd, func(ev *Event) { got = ev })
	e := mustConnect(t, g, a, b)

	require.NotNil(t, got)
	assert.Same(t, a, got.Node)
	assert.Same(t, b, got.Target)
	assert.Same(t, e, got.Edge)
}

func TestClickSelection(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))
	b := mustAdd(t, g, box("b"), geom.Pt(200, 0))

	var clicks []*Event
	g.On(EventNodeClick, func(ev *Event) { clicks = append(clicks, ev) })

	assert.Equal(t, a, g.Click(geom.Pt(0, 0), false))
	assert.Equal(t, []Element{a}, g.Selection())

	// a plain click moves the selection
	g.Click(geom.Pt(200, 0), false)
	assert.Equal(t, []Element{b}, g.Selection())

	// extending toggles
	g.Click(geom.Pt(0, 0), true)
	assert.Equal(t, []Element{a, b}, g.Selection())
	g.Click(geom.Pt(200, 0), true)
	assert.Equal(t, []Element{a}, g.Selection())

	// clicking the only selected node toggles it off
	g.Click(geom.Pt(0, 0), false)
	assert.Empty(t, g.Selection())

	// empty canvas clears
	g.Select(b)
	assert.Nil(t, g.Click(geom.Pt(500, 500), false))
	assert.Empty(t, g.Selection())

	require.Len(t, clicks, 5)
	assert.Equal(t, designer.HitBody, clicks[0].Hit)
	assert.Equal(t, geom.Pt(200, 0), clicks[1].Point)
}

func TestClickHitRegion(t *testing.T) {
	m := designer.MeasurerFunc(func(text string, f designer.Font) (int, int) {
		return 6 * len(text), 14
	})
	g := New(WithMeasurer(m))
	pn := designer.NewProjectNode("Import")
	mustAdd(t, g, pn, geom.Pt(100, 100))

	var hit designer.Hit
	g.On(EventNodeClick, func(ev *Event) { hit = ev.Hit })

	text, ok := pn.LayoutState().TextRect()
	require.True(t, ok)
	g.Click(pn.Bounds().TopLeft().Add(text.TopLeft()), false)
	assert.Equal(t, designer.HitLabel, hit)
}

func TestClickEdge(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(100, 100))
	b := mustAdd(t, g, box("b"), geom.Pt(300, 100))
	e := mustConnect(t, g, a, b)

	var got *Edge
	g.On(EventEdgeClick, func(ev *Event) { got = ev.Edge })

	g.Click(geom.Pt(200, 100), false)
	assert.Same(t, e, got)
	assert.True(t, g.IsSelected(e))
}

func TestActivate(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))
	b := mustAdd(t, g, box("b"), geom.Pt(200, 0))
	g.Select(b)

	assert.Equal(t, a, g.Activate(geom.Pt(0, 0)))
	assert.Equal(t, []Element{a}, g.Selection())

	g.UnselectAll()
	g.On(EventNodeActivate, func(ev *Event) { ev.Veto() })
	g.Activate(geom.Pt(200, 0))
	assert.Empty(t, g.Selection())

	assert.Nil(t, g.Activate(geom.Pt(900, 0)))
}

func TestConnectSelection(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))
	b := mustAdd(t, g, box("b"), geom.Pt(200, 0))
	c := mustAdd(t, g, box("c"), geom.Pt(100, 200))

	var sources []Node
	g.On(EventConnect, func(ev *Event) { sources = ev.Sources })
	g.On(EventEdgeAdd, func(ev *Event) {
		if ev.Node == b {
			ev.Veto()
		}
	})

	g.Select(a, b)
	edges, err := g.ConnectSelection(c)
	require.NoError(t, err)
	assert.Equal(t, []Node{a, b}, sources)
	require.Len(t, edges, 1)
	assert.Same(t, a, edges[0].From())
	assert.Same(t, c, edges[0].To())
}

func TestSelection(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))
	b := mustAdd(t, g, box("b"), geom.Pt(200, 0))
	e := mustConnect(t, g, a, b)

	g.Select(box("stray"))
	assert.Empty(t, g.Selection())

	g.SelectAll()
	assert.Equal(t, []Element{a, b, e}, g.Selection())
	assert.Equal(t, []Node{a, b}, g.SelectedNodes())

	g.Unselect(a)
	assert.Equal(t, []Element{b, e}, g.Selection())

	g.UnselectAll()
	assert.Empty(t, g.Selection())
}

func TestDeleteSelection(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))
	b := mustAdd(t, g, box("b"), geom.Pt(200, 0))
	c := mustAdd(t, g, box("c"), geom.Pt(400, 0))
	ab := mustConnect(t, g, a, b)
	mustConnect(t, g, b, c)

	g.Select(a, ab)
	require.NoError(t, g.DeleteSelection())

	assert.Equal(t, []Node{b, c}, g.Nodes())
	assert.Len(t, g.Edges(), 1)
	assert.Empty(t, g.Selection())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "node-click", EventNodeClick.String())
	assert.Equal(t, "unknown", EventKind(99).String())
}
