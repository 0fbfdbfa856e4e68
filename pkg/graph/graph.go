// Package graph holds the nodes and edges of a project diagram: it places
// nodes, connects them, tracks the selection, dispatches click and edit
// events and arranges the nodes in layers.
package graph

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
)

var (
	// ErrNotInGraph is returned when an operation names a node or edge
	// that does not belong to the graph.
	ErrNotInGraph = errors.New("element not in graph")

	// ErrVetoed is returned when an event handler refused the change.
	ErrVetoed = errors.New("vetoed by handler")
)

// Node is anything the graph can place, connect and draw.
type Node interface {
	Bounds() geom.Rect
	SetBounds(r geom.Rect)
	// SetPosition centres the node on p.
	SetPosition(p geom.Point)
	Text() string
	Style() designer.Style
	Layout(m designer.Measurer)
	Draw(s designer.Surface, m designer.Measurer)
	PerimeterPoint(inside, outside geom.Point) geom.Point
	HitTest(p geom.Point) designer.Hit
}

// Element is a Node or an *Edge.
type Element interface {
	Bounds() geom.Rect
}

// measurerSetter is implemented by nodes that can relayout themselves as
// soon as their content changes.
type measurerSetter interface {
	SetMeasurer(m designer.Measurer)
}

// DefaultNodeSize is the size given to a node added with empty bounds,
// unless changed with WithDefaultNodeSize.
var DefaultNodeSize = geom.Size{W: 100, H: 50}

// Graph is a directed graph of nodes. It is not safe for concurrent use.
type Graph struct {
	nodes    []Node
	edges    []*Edge
	selected map[Element]bool

	gridSpacing int
	snap        bool
	arrowSize   int
	nodeSize    geom.Size

	measurer designer.Measurer
	handlers map[EventKind][]handler
	nextID   int

	log *slog.Logger
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger for graph edits. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Graph) { g.log = l }
}

// WithMeasurer lays nodes out with m as they are added.
func WithMeasurer(m designer.Measurer) Option {
	return func(g *Graph) { g.measurer = m }
}

// WithGrid sets the grid spacing and turns snapping on. A spacing below 1
// leaves snapping off.
func WithGrid(spacing int) Option {
	return func(g *Graph) {
		if spacing > 0 {
			g.gridSpacing = spacing
			g.snap = true
		}
	}
}

// WithArrowSize sets the arrowhead length edges are drawn with; 0 draws
// none. The default is ArrowSize.
func WithArrowSize(size int) Option {
	return func(g *Graph) { g.arrowSize = size }
}

// WithDefaultNodeSize sets the size given to nodes added with empty
// bounds. An empty size leaves them to grow to their content on layout,
// which suits measurers with small units such as terminal cells.
func WithDefaultNodeSize(size geom.Size) Option {
	return func(g *Graph) { g.nodeSize = size }
}

// New returns an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		selected:    make(map[Element]bool),
		handlers:    make(map[EventKind][]handler),
		gridSpacing: 10,
		arrowSize:   ArrowSize,
		nodeSize:    DefaultNodeSize,
		log:         slog.Default(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Add places n centred on p. Handlers of EventNodeAdd may veto it.
func (g *Graph) Add(n Node, p geom.Point) (Node, error) {
	if g.index(n) >= 0 {
		return n, fmt.Errorf("add %q: already in graph", n.Text())
	}

	ev := &Event{Kind: EventNodeAdd, Node: n, Point: p}
	if !g.emit(ev) {
		return nil, fmt.Errorf("add %q: %w", n.Text(), ErrVetoed)
	}

	if n.Bounds().IsEmpty() && g.nodeSize.W > 0 && g.nodeSize.H > 0 {
		n.SetBounds(geom.RectAt(n.Bounds().TopLeft(), g.nodeSize))
	}
	if g.measurer != nil {
		if ms, ok := n.(measurerSetter); ok {
			ms.SetMeasurer(g.measurer)
		}
		n.Layout(g.measurer)
	}
	n.SetPosition(g.Snap(p))

	g.nodes = append(g.nodes, n)
	g.log.Debug("node added", "node", n.Text(), "bounds", n.Bounds())
	return n, nil
}

// Connect adds an edge from one node to another. Both must already be in
// the graph. A node may be connected to itself.
func (g *Graph) Connect(from, to Node) (*Edge, error) {
	if g.index(from) < 0 || g.index(to) < 0 {
		return nil, fmt.Errorf("connect %q to %q: %w", from.Text(), to.Text(), ErrNotInGraph)
	}

	e := &Edge{from: from, to: to, colour: designer.Black}
	ev := &Event{Kind: EventEdgeAdd, Node: from, Target: to, Edge: e}
	if !g.emit(ev) {
		return nil, fmt.Errorf("connect %q to %q: %w", from.Text(), to.Text(), ErrVetoed)
	}

	g.edges = append(g.edges, e)
	g.log.Debug("edge added", "from", from.Text(), "to", to.Text())
	return e, nil
}

// ConnectSelection connects every selected node to target, the way a drag
// from the selection onto a node does. Handlers of EventConnect see the
// sources and may veto the whole operation.
func (g *Graph) ConnectSelection(target Node) ([]*Edge, error) {
	if g.index(target) < 0 {
		return nil, fmt.Errorf("connect to %q: %w", target.Text(), ErrNotInGraph)
	}

	sources := g.SelectedNodes()
	ev := &Event{Kind: EventConnect, Target: target, Sources: sources}
	if !g.emit(ev) {
		return nil, fmt.Errorf("connect to %q: %w", target.Text(), ErrVetoed)
	}

	var added []*Edge
	for _, n := range sources {
		e, err := g.Connect(n, target)
		if errors.Is(err, ErrVetoed) {
			continue
		}
		if err != nil {
			return added, err
		}
		added = append(added, e)
	}
	return added, nil
}

// Delete removes a node or an edge. Deleting a node first deletes its
// edges; if a handler keeps any of them the node stays too.
func (g *Graph) Delete(el Element) error {
	switch el := el.(type) {
	case *Edge:
		return g.deleteEdge(el)
	case Node:
		return g.deleteNode(el)
	}
	return fmt.Errorf("delete %T: %w", el, ErrNotInGraph)
}

func (g *Graph) deleteEdge(e *Edge) error {
	i := g.edgeIndex(e)
	if i < 0 {
		return fmt.Errorf("delete edge: %w", ErrNotInGraph)
	}
	if !g.emit(&Event{Kind: EventEdgeDelete, Edge: e, Node: e.from, Target: e.to}) {
		return fmt.Errorf("delete edge %q to %q: %w", e.from.Text(), e.to.Text(), ErrVetoed)
	}

	g.edges = append(g.edges[:i], g.edges[i+1:]...)
	delete(g.selected, e)
	g.log.Debug("edge deleted", "from", e.from.Text(), "to", e.to.Text())
	return nil
}

func (g *Graph) deleteNode(n Node) error {
	i := g.index(n)
	if i < 0 {
		return fmt.Errorf("delete %q: %w", n.Text(), ErrNotInGraph)
	}
	if !g.emit(&Event{Kind: EventNodeDelete, Node: n}) {
		return fmt.Errorf("delete %q: %w", n.Text(), ErrVetoed)
	}

	for _, e := range g.EdgesOf(n) {
		if err := g.deleteEdge(e); err != nil && !errors.Is(err, ErrVetoed) {
			return err
		}
	}
	if len(g.EdgesOf(n)) > 0 {
		return fmt.Errorf("delete %q: edge kept: %w", n.Text(), ErrVetoed)
	}

	g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
	delete(g.selected, n)
	g.log.Debug("node deleted", "node", n.Text())
	return nil
}

// DeleteSelection deletes every selected element, stopping at the first
// error other than a veto.
func (g *Graph) DeleteSelection() error {
	for _, el := range g.Selection() {
		if !g.Contains(el) {
			continue // edge went with its node
		}
		if err := g.Delete(el); err != nil && !errors.Is(err, ErrVetoed) {
			return err
		}
	}
	return nil
}

// Nodes returns the nodes in drawing order, bottom first.
func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// Edges returns the edges in the order they were added.
func (g *Graph) Edges() []*Edge {
	return append([]*Edge(nil), g.edges...)
}

// EdgesOf returns every edge starting or ending at n.
func (g *Graph) EdgesOf(n Node) []*Edge {
	return g.filterEdges(func(e *Edge) bool { return e.from == n || e.to == n })
}

// InEdges returns the edges ending at n.
func (g *Graph) InEdges(n Node) []*Edge {
	return g.filterEdges(func(e *Edge) bool { return e.to == n })
}

// OutEdges returns the edges starting at n.
func (g *Graph) OutEdges(n Node) []*Edge {
	return g.filterEdges(func(e *Edge) bool { return e.from == n })
}

func (g *Graph) filterEdges(keep func(*Edge) bool) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether el belongs to the graph.
func (g *Graph) Contains(el Element) bool {
	switch el := el.(type) {
	case *Edge:
		return g.edgeIndex(el) >= 0
	case Node:
		return g.index(el) >= 0
	}
	return false
}

func (g *Graph) index(n Node) int {
	for i, m := range g.nodes {
		if m == n {
			return i
		}
	}
	return -1
}

func (g *Graph) edgeIndex(e *Edge) int {
	for i, f := range g.edges {
		if f == e {
			return i
		}
	}
	return -1
}

// NodeAt returns the topmost node under p, or nil.
func (g *Graph) NodeAt(p geom.Point) Node {
	for i := len(g.nodes) - 1; i >= 0; i-- {
		if g.nodes[i].HitTest(p) != designer.HitNone {
			return g.nodes[i]
		}
	}
	return nil
}

// EdgeTolerance is how far from an edge's line a point may be and still
// hit it.
const EdgeTolerance = 3

// EdgeAt returns the most recently added edge passing within
// EdgeTolerance of p, or nil.
func (g *Graph) EdgeAt(p geom.Point) *Edge {
	for i := len(g.edges) - 1; i >= 0; i-- {
		if g.edges[i].near(p, EdgeTolerance) {
			return g.edges[i]
		}
	}
	return nil
}

// ElementAt returns the node under p, or failing that the edge.
func (g *Graph) ElementAt(p geom.Point) Element {
	if n := g.NodeAt(p); n != nil {
		return n
	}
	if e := g.EdgeAt(p); e != nil {
		return e
	}
	return nil
}

// Bounds is the smallest rectangle holding every node and edge.
func (g *Graph) Bounds() geom.Rect {
	var r geom.Rect
	for _, n := range g.nodes {
		r = r.Union(n.Bounds())
	}
	for _, e := range g.edges {
		r = r.Union(e.Bounds())
	}
	return r
}

// GridSpacing is the distance between grid lines.
func (g *Graph) GridSpacing() int { return g.gridSpacing }

// SetGridSpacing sets the grid spacing; values below 1 are taken as 1.
func (g *Graph) SetGridSpacing(spacing int) { g.gridSpacing = max(spacing, 1) }

// SnapToGrid reports whether positions snap to the grid.
func (g *Graph) SnapToGrid() bool { return g.snap }

func (g *Graph) SetSnapToGrid(snap bool) { g.snap = snap }

// Snap returns p moved to the nearest grid point when snapping is on.
func (g *Graph) Snap(p geom.Point) geom.Point {
	if !g.snap || g.gridSpacing <= 1 {
		return p
	}
	return geom.Pt(snap(p.X, g.gridSpacing), snap(p.Y, g.gridSpacing))
}

func snap(v, spacing int) int {
	if v < 0 {
		return -snap(-v, spacing)
	}
	return (v + spacing/2) / spacing * spacing
}

// Move centres n on p, snapping to the grid.
func (g *Graph) Move(n Node, p geom.Point) error {
	if g.index(n) < 0 {
		return fmt.Errorf("move %q: %w", n.Text(), ErrNotInGraph)
	}
	n.SetPosition(g.Snap(p))
	return nil
}

// Raise brings n to the top of the drawing order.
func (g *Graph) Raise(n Node) {
	if i := g.index(n); i >= 0 {
		g.nodes = append(append(g.nodes[:i:i], g.nodes[i+1:]...), n)
	}
}

// Measurer returns the measurer given to LayoutAll or WithMeasurer.
func (g *Graph) Measurer() designer.Measurer { return g.measurer }

// LayoutAll lays out every node with m and keeps m for nodes added later.
func (g *Graph) LayoutAll(m designer.Measurer) {
	g.measurer = m
	for _, n := range g.nodes {
		if ms, ok := n.(measurerSetter); ok {
			ms.SetMeasurer(m)
		}
		n.Layout(m)
	}
}
