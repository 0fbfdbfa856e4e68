package graph

import (
	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
)

// EventKind identifies what happened to the graph.
type EventKind int

const (
	EventNodeAdd      EventKind = iota // Node is about to be added at Point
	EventNodeDelete                    // Node is about to be deleted
	EventEdgeAdd                       // Edge from Node to Target is about to be added
	EventEdgeDelete                    // Edge is about to be deleted
	EventConnect                       // Sources are about to be connected to Target
	EventNodeClick                     // Node was clicked at Point, on Hit
	EventNodeActivate                  // Node was double clicked
	EventEdgeClick                     // Edge was clicked
)

var eventNames = [...]string{
	"node-add", "node-delete", "edge-add", "edge-delete",
	"connect", "node-click", "node-activate", "edge-click",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event describes a change or a click. Handlers of the add, delete,
// connect and activate events may Veto them.
type Event struct {
	Kind    EventKind
	Node    Node
	Target  Node
	Edge    *Edge
	Sources []Node
	Hit     designer.Hit
	Point   geom.Point

	vetoed bool
}

// Veto stops the change the event announces.
func (e *Event) Veto() { e.vetoed = true }

// Allowed reports whether no handler vetoed the event.
func (e *Event) Allowed() bool { return !e.vetoed }

// Handler receives events.
type Handler func(*Event)

type handler struct {
	id int
	fn Handler
}

// On registers fn for events of kind. Handlers run in registration order.
// The returned function removes the registration.
func (g *Graph) On(kind EventKind, fn Handler) (unsubscribe func()) {
	g.nextID++
	id := g.nextID
	g.handlers[kind] = append(g.handlers[kind], handler{id: id, fn: fn})

	return func() {
		hs := g.handlers[kind]
		for i, h := range hs {
			if h.id == id {
				g.handlers[kind] = append(hs[:i:i], hs[i+1:]...)
				return
			}
		}
	}
}

// emit runs the handlers for ev and reports whether it was allowed.
func (g *Graph) emit(ev *Event) bool {
	for _, h := range g.handlers[ev.Kind] {
		h.fn(ev)
	}
	if !ev.Allowed() {
		g.log.Debug("event vetoed", "event", ev.Kind)
	}
	return ev.Allowed()
}

// Click handles a click at p. The element under p becomes the selection;
// with extend set its selection is toggled and the rest kept. It returns
// the element clicked, or nil for empty canvas, which clears the
// selection unless extending.
func (g *Graph) Click(p geom.Point, extend bool) Element {
	el := g.ElementAt(p)
	if el == nil {
		if !extend {
			g.UnselectAll()
		}
		return nil
	}

	g.clickSelect(el, extend)

	ev := &Event{Point: p}
	switch el := el.(type) {
	case *Edge:
		ev.Kind = EventEdgeClick
		ev.Edge = el
	case Node:
		ev.Kind = EventNodeClick
		ev.Node = el
		ev.Hit = el.HitTest(p)
	}
	g.emit(ev)
	return el
}

func (g *Graph) clickSelect(el Element, extend bool) {
	sel := !g.selected[el]
	if !extend {
		for other := range g.selected {
			if other != el {
				delete(g.selected, other)
				sel = true
			}
		}
	}
	if sel {
		g.selected[el] = true
	} else {
		delete(g.selected, el)
	}
}

// Activate handles a double click at p on a node. Unless vetoed the node
// ends up selected. It returns the node, or nil.
func (g *Graph) Activate(p geom.Point) Node {
	n := g.NodeAt(p)
	if n == nil {
		return nil
	}
	ev := &Event{Kind: EventNodeActivate, Node: n, Hit: n.HitTest(p), Point: p}
	if g.emit(ev) && !g.selected[n] {
		g.UnselectAll()
		g.selected[n] = true
	}
	return n
}
