package graph

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
)

// box returns a 100x50 rectangle node.
func box(text string) *ShapeNode {
	n := NewShapeNode(text, designer.StyleRectangle)
	n.SetBounds(geom.R(0, 0, 100, 50))
	return n
}

func mustAdd(t *testing.T, g *Graph, n Node, p geom.Point) Node {
	t.Helper()
	added, err := g.Add(n, p)
	require.NoError(t, err)
	return added
}

func mustConnect(t *testing.T, g *Graph, a, b Node) *Edge {
	t.Helper()
	e, err := g.Connect(a, b)
	require.NoError(t, err)
	return e
}

func TestAddCentresNode(t *testing.T) {
	g := New()
	n := mustAdd(t, g, box("a"), geom.Pt(103, 47))
	assert.Equal(t, geom.R(53, 22, 100, 50), n.Bounds())
	assert.Equal(t, []Node{n}, g.Nodes())
}

func TestAddSnapsToGrid(t *testing.T) {
	g := New(WithGrid(10))
	n := mustAdd(t, g, box("a"), geom.Pt(103, 47))
	assert.Equal(t, geom.R(50, 25, 100, 50), n.Bounds())

	assert.Equal(t, geom.Pt(-10, 0), g.Snap(geom.Pt(-6, 4)))
	g.SetSnapToGrid(false)
	assert.Equal(t, geom.Pt(-6, 4), g.Snap(geom.Pt(-6, 4)))
}

func TestAddGivesEmptyNodesDefaultSize(t *testing.T) {
	g := New()
	n := mustAdd(t, g, designer.NewProjectNode("Import"), geom.Pt(0, 0))
	assert.Equal(t, geom.R(-50, -25, 100, 50), n.Bounds())
}

func TestAddWithoutDefaultSizeFitsContent(t *testing.T) {
	cells := designer.MeasurerFunc(func(text string, f designer.Font) (int, int) {
		return len(text), 1
	})
	g := New(WithMeasurer(cells), WithDefaultNodeSize(geom.Size{}))

	pn := designer.NewProjectNode("Import")
	pn.SetBorderThickness(0)
	pn.SetCornerRadius(1)
	pn.SetResult("3 files")
	mustAdd(t, g, pn, geom.Pt(10, 4))
	assert.Equal(t, geom.R(5, 1, 10, 6), pn.Bounds())

	sn := mustAdd(t, g, NewShapeNode("ok", designer.StyleRectangle), geom.Pt(0, 0))
	assert.Equal(t, geom.R(-9, -8, 18, 17), sn.Bounds())
}

func TestAddLaysOutWithMeasurer(t *testing.T) {
	m := designer.MeasurerFunc(func(text string, f designer.Font) (int, int) {
		return 8 * len(text), 16
	})
	g := New(WithMeasurer(m))
	pn := designer.NewProjectNode("A rather long operation name")
	mustAdd(t, g, pn, geom.Pt(0, 0))

	assert.True(t, pn.LayoutState().Valid())
	assert.Greater(t, pn.Bounds().W, 100)

	// the node keeps the measurer for later edits
	pn.SetResult("done")
	assert.True(t, pn.LayoutState().Valid())
}

func TestAddTwice(t *testing.T) {
	g := New()
	n := mustAdd(t, g, box("a"), geom.Pt(0, 0))
	_, err := g.Add(n, geom.Pt(5, 5))
	assert.Error(t, err)
	assert.Len(t, g.Nodes(), 1)
}

func TestConnectRequiresMembership(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))

	_, err := g.Connect(a, box("stray"))
	assert.ErrorIs(t, err, ErrNotInGraph)
	assert.Empty(t, g.Edges())
}

func TestEdgeQueries(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))
	b := mustAdd(t, g, box("b"), geom.Pt(200, 0))
	c := mustAdd(t, g, box("c"), geom.Pt(400, 0))
	ab := mustConnect(t, g, a, b)
	bc := mustConnect(t, g, b, c)
	bb := mustConnect(t, g, b, b)

	assert.Equal(t, []*Edge{ab, bc, bb}, g.EdgesOf(b))
	assert.Equal(t, []*Edge{ab, bb}, g.InEdges(b))
	assert.Equal(t, []*Edge{bc, bb}, g.OutEdges(b))
	assert.Equal(t, []*Edge{ab}, g.EdgesOf(a))
	assert.True(t, bb.IsSelfLoop())
	assert.Same(t, a, ab.From())
	assert.Same(t, b, ab.To())
}

func TestDeleteNodeTakesItsEdges(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))
	b := mustAdd(t, g, box("b"), geom.Pt(200, 0))
	c := mustAdd(t, g, box("c"), geom.Pt(400, 0))
	mustConnect(t, g, a, b)
	bc := mustConnect(t, g, b, c)
	ca := mustConnect(t, g, c, a)

	var deleted []EventKind
	g.On(EventEdgeDelete, func(ev *Event) { deleted = append(deleted, ev.Kind) })
	g.On(EventNodeDelete, func(ev *Event) { deleted = append(deleted, ev.Kind) })

	require.NoError(t, g.Delete(a))
	assert.Equal(t, []Node{b, c}, g.Nodes())
	assert.Equal(t, []*Edge{bc}, g.Edges())
	assert.Equal(t, []EventKind{EventNodeDelete, EventEdgeDelete, EventEdgeDelete}, deleted)

	assert.ErrorIs(t, g.Delete(a), ErrNotInGraph)
	assert.ErrorIs(t, g.Delete(ca), ErrNotInGraph)
}

func TestDeleteNodeKeptWhenEdgeVetoed(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))
	b := mustAdd(t, g, box("b"), geom.Pt(200, 0))
	ab := mustConnect(t, g, a, b)

	g.On(EventEdgeDelete, func(ev *Event) { ev.Veto() })

	err := g.Delete(a)
	assert.ErrorIs(t, err, ErrVetoed)
	assert.Len(t, g.Nodes(), 2)
	assert.Equal(t, []*Edge{ab}, g.Edges())
}

func TestVetoAdd(t *testing.T) {
	g := New()
	g.On(EventNodeAdd, func(ev *Event) {
		if ev.Node.Text() == "forbidden" {
			ev.Veto()
		}
	})

	_, err := g.Add(box("forbidden"), geom.Pt(0, 0))
	assert.ErrorIs(t, err, ErrVetoed)
	_, err = g.Add(box("fine"), geom.Pt(0, 0))
	assert.NoError(t, err)
	assert.Len(t, g.Nodes(), 1)
}

func TestNodeAtPrefersTopmost(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))
	b := mustAdd(t, g, box("b"), geom.Pt(40, 10))

	assert.Same(t, b, g.NodeAt(geom.Pt(20, 5)))
	assert.Same(t, a, g.NodeAt(geom.Pt(-40, -20)))
	assert.Nil(t, g.NodeAt(geom.Pt(500, 500)))

	g.Raise(a)
	assert.Same(t, a, g.NodeAt(geom.Pt(20, 5)))
	assert.Equal(t, []Node{b, a}, g.Nodes())
}

func TestEdgeAt(t *testing.T) {
	g := New()
	a := mustAdd(t, g, box("a"), geom.Pt(100, 100))
	b := mustAdd(t, g, box("b"), geom.Pt(300, 100))
	e := mustConnect(t, g, a, b)

	assert.Same(t, e, g.EdgeAt(geom.Pt(200, 102)))
	assert.Nil(t, g.EdgeAt(geom.Pt(200, 110)))
	assert.Equal(t, e, g.ElementAt(geom.Pt(200, 100)))
	assert.Equal(t, a, g.ElementAt(geom.Pt(100, 100)))
}

func TestGraphBounds(t *testing.T) {
	g := New()
	assert.True(t, g.Bounds().IsEmpty())

	a := mustAdd(t, g, box("a"), geom.Pt(100, 100))
	mustAdd(t, g, box("b"), geom.Pt(300, 200))
	assert.Equal(t, geom.R(50, 75, 300, 150), g.Bounds())

	// a self loop reaches out to the right of its node
	loop := mustConnect(t, g, a, a)
	assert.Equal(t, 175, loop.Bounds().Right())
	assert.Equal(t, geom.R(50, 75, 300, 150), g.Bounds())
}

func TestMove(t *testing.T) {
	g := New(WithGrid(10))
	a := mustAdd(t, g, box("a"), geom.Pt(0, 0))

	require.NoError(t, g.Move(a, geom.Pt(198, 101)))
	assert.Equal(t, geom.Pt(200, 100), a.Bounds().Center())
	assert.ErrorIs(t, g.Move(box("x"), geom.Pt(0, 0)), ErrNotInGraph)
}

func TestLayoutAll(t *testing.T) {
	g := New()
	pn := designer.NewProjectNode("Export")
	mustAdd(t, g, pn, geom.Pt(0, 0))
	assert.False(t, pn.LayoutState().Valid())

	m := designer.MeasurerFunc(func(string, designer.Font) (int, int) { return 10, 10 })
	g.LayoutAll(m)
	assert.True(t, pn.LayoutState().Valid())
	assert.NotNil(t, g.Measurer())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := New(WithLogger(l))

	mustAdd(t, g, box("Sort"), geom.Pt(0, 0))
	assert.Contains(t, buf.String(), "node added")
	assert.Contains(t, buf.String(), "node=Sort")
}
