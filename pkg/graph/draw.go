package graph

import "github.com/ha1tch/graphctrl/pkg/designer"

// Draw paints the edges, then the nodes bottom to top, then a frame around
// each selected node.
func (g *Graph) Draw(s designer.Surface, m designer.Measurer) {
	// nodes first lay out, so edges meet their final outlines
	if m != nil {
		for _, n := range g.nodes {
			n.Layout(m)
		}
	}

	for _, e := range g.edges {
		e.Draw(s, g.selected[e], g.arrowSize)
	}
	for _, n := range g.nodes {
		n.Draw(s, m)
	}

	s.SetPen(designer.Black, 1)
	s.SetBrush(nil)
	for _, n := range g.nodes {
		if g.selected[n] {
			s.DrawRectangle(n.Bounds().Inflate(2))
		}
	}
}
