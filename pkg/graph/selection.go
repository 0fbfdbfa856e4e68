package graph

// Select adds elements of the graph to the selection. Elements not in
// the graph are ignored.
func (g *Graph) Select(els ...Element) {
	for _, el := range els {
		if g.Contains(el) {
			g.selected[el] = true
		}
	}
}

// Unselect removes elements from the selection.
func (g *Graph) Unselect(els ...Element) {
	for _, el := range els {
		delete(g.selected, el)
	}
}

// SelectAll selects every node and edge.
func (g *Graph) SelectAll() {
	for _, n := range g.nodes {
		g.selected[n] = true
	}
	for _, e := range g.edges {
		g.selected[e] = true
	}
}

// UnselectAll clears the selection.
func (g *Graph) UnselectAll() {
	clear(g.selected)
}

// IsSelected reports whether el is selected.
func (g *Graph) IsSelected(el Element) bool { return g.selected[el] }

// Selection returns the selected nodes in drawing order followed by the
// selected edges.
func (g *Graph) Selection() []Element {
	var out []Element
	for _, n := range g.nodes {
		if g.selected[n] {
			out = append(out, n)
		}
	}
	for _, e := range g.edges {
		if g.selected[e] {
			out = append(out, e)
		}
	}
	return out
}

// SelectedNodes returns the selected nodes in drawing order.
func (g *Graph) SelectedNodes() []Node {
	var out []Node
	for _, n := range g.nodes {
		if g.selected[n] {
			out = append(out, n)
		}
	}
	return out
}
