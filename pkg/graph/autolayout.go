package graph

import (
	"fmt"
	"sort"

	"github.com/ha1tch/graphctrl/pkg/geom"
)

// LayoutOptions controls AutoLayout.
type LayoutOptions struct {
	RankSep int // vertical gap between layers
	NodeSep int // horizontal gap between nodes in a layer
	Passes  int // crossing reduction sweeps
}

// DefaultLayoutOptions matches dot's defaults at 96 DPI.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{RankSep: 48, NodeSep: 24, Passes: 4}
}

// layered is the subgraph being arranged, by index into nodes.
type layered struct {
	nodes    []Node
	forward  [][]int
	backward [][]int
}

// AutoLayoutAll arranges every node of the graph.
func (g *Graph) AutoLayoutAll(opts LayoutOptions) error {
	return g.AutoLayout(g.nodes, opts)
}

// AutoLayout arranges nodes in layers, top to bottom, following their
// edges. Edges leaving the set are ignored for placement, but the first
// node with such an edge keeps its position and the rest are placed around
// it; without one the top-left-most node stays put.
//
// Layout works in four phases: cycle breaking, longest-path layering,
// barycentre crossing reduction and placement by node size.
func (g *Graph) AutoLayout(nodes []Node, opts LayoutOptions) error {
	if len(nodes) == 0 {
		return nil
	}
	for _, n := range nodes {
		if g.index(n) < 0 {
			return fmt.Errorf("layout %q: %w", n.Text(), ErrNotInGraph)
		}
	}
	if opts.Passes <= 0 {
		opts.Passes = DefaultLayoutOptions().Passes
	}

	lg, fixed := g.buildLayered(nodes)
	breakCycles(lg)
	layers := assignLayers(lg)
	for i := 0; i < opts.Passes; i++ {
		layers = reduceCrossings(layers, lg)
	}
	centres := placeNodes(layers, lg, opts)

	// keep the fixed node where it was
	before := nodes[fixed].Bounds().Center()
	offset := before.Sub(centres[fixed])
	for i, n := range lg.nodes {
		n.SetPosition(g.Snap(centres[i].Add(offset)))
	}

	crossings := 0
	for l := 1; l < len(layers); l++ {
		crossings += countCrossings(layers[l-1], layers[l], lg)
	}
	g.log.Debug("auto layout", "nodes", len(nodes), "layers", len(layers),
		"crossings", crossings, "fixed", nodes[fixed].Text())
	return nil
}

// buildLayered collects the edges between nodes, dropping self loops and
// duplicates, and picks the node that stays in place.
func (g *Graph) buildLayered(nodes []Node) (*layered, int) {
	lg := &layered{
		nodes:    nodes,
		forward:  make([][]int, len(nodes)),
		backward: make([][]int, len(nodes)),
	}
	idx := make(map[Node]int, len(nodes))
	for i, n := range nodes {
		idx[n] = i
	}

	fixed, fixedExt := -1, false
	seen := make(map[[2]int]bool)

	for i, n := range nodes {
		ext := false
		for _, e := range g.EdgesOf(n) {
			other := e.to
			if other == n {
				other = e.from
			}
			j, in := idx[other]
			if !in {
				ext = true
				continue
			}
			if e.from != n || j == i || seen[[2]int{i, j}] {
				continue
			}
			seen[[2]int{i, j}] = true
			lg.forward[i] = append(lg.forward[i], j)
			lg.backward[j] = append(lg.backward[j], i)
		}

		pos := n.Bounds().Center()
		if fixed < 0 || (!fixedExt && ext) ||
			(fixedExt == ext && pos.Less(nodes[fixed].Bounds().Center())) {
			fixed, fixedExt = i, ext
		}
	}
	return lg, fixed
}

// breakCycles reverses the back edges found by a depth-first search so the
// graph becomes acyclic.
func breakCycles(lg *layered) {
	const (
		unvisited = iota
		active
		done
	)
	state := make([]int, len(lg.nodes))
	var reversed [][2]int

	var visit func(int)
	visit = func(u int) {
		state[u] = active
		for _, v := range lg.forward[u] {
			switch state[v] {
			case active:
				reversed = append(reversed, [2]int{u, v})
			case unvisited:
				visit(v)
			}
		}
		state[u] = done
	}
	for u := range lg.nodes {
		if state[u] == unvisited {
			visit(u)
		}
	}

	for _, e := range reversed {
		u, v := e[0], e[1]
		lg.forward[u] = removeInt(lg.forward[u], v)
		lg.backward[v] = removeInt(lg.backward[v], u)
		if !containsInt(lg.forward[v], u) {
			lg.forward[v] = append(lg.forward[v], u)
			lg.backward[u] = append(lg.backward[u], v)
		}
	}
}

// assignLayers puts every node one layer below its deepest predecessor, so
// sources are on top.
func assignLayers(lg *layered) [][]int {
	n := len(lg.nodes)
	layer := make([]int, n)
	indeg := make([]int, n)
	for v := range lg.nodes {
		indeg[v] = len(lg.backward[v])
	}

	var queue []int
	for v := range lg.nodes {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	deepest := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range lg.forward[u] {
			layer[v] = max(layer[v], layer[u]+1)
			deepest = max(deepest, layer[v])
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	layers := make([][]int, deepest+1)
	for v := range lg.nodes {
		layers[layer[v]] = append(layers[layer[v]], v)
	}
	return layers
}

// reduceCrossings reorders each layer by the barycentre of its neighbours,
// sweeping down by predecessors and back up by successors.
func reduceCrossings(layers [][]int, lg *layered) [][]int {
	if len(layers) <= 1 {
		return layers
	}

	result := make([][]int, len(layers))
	pos := make([]float64, len(lg.nodes))
	for l, layer := range layers {
		result[l] = append([]int(nil), layer...)
		for i, v := range layer {
			pos[v] = float64(i)
		}
	}

	sweep := func(l int, neighbours [][]int) {
		bary := make(map[int]float64, len(result[l]))
		for _, v := range result[l] {
			sum, count := 0.0, 0
			for _, u := range neighbours[v] {
				sum += pos[u]
				count++
			}
			if count > 0 {
				bary[v] = sum / float64(count)
			} else {
				bary[v] = pos[v]
			}
		}
		sort.SliceStable(result[l], func(i, j int) bool {
			a, b := result[l][i], result[l][j]
			if bary[a] != bary[b] {
				return bary[a] < bary[b]
			}
			return a < b
		})
		for i, v := range result[l] {
			pos[v] = float64(i)
		}
	}

	for l := 1; l < len(result); l++ {
		sweep(l, lg.backward)
	}
	for l := len(result) - 2; l >= 0; l-- {
		sweep(l, lg.forward)
	}
	return result
}

// countCrossings counts the edges between two adjacent layers that cross.
func countCrossings(upper, lower []int, lg *layered) int {
	pos := make(map[int]int, len(lower))
	for i, v := range lower {
		pos[v] = i
	}

	var edges [][2]int
	for i, u := range upper {
		for _, v := range lg.forward[u] {
			if j, ok := pos[v]; ok {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	crossings := 0
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			a, b := edges[i], edges[j]
			if (a[0] < b[0] && a[1] > b[1]) || (a[0] > b[0] && a[1] < b[1]) {
				crossings++
			}
		}
	}
	return crossings
}

// placeNodes returns node centres. Layers are stacked by their tallest
// node; within a layer nodes sit side by side, centred on x = 0, then
// drift towards the median of their neighbours without overlapping.
func placeNodes(layers [][]int, lg *layered, opts LayoutOptions) []geom.Point {
	size := make([]geom.Size, len(lg.nodes))
	for v, n := range lg.nodes {
		size[v] = n.Bounds().Size()
	}

	x := make([]float64, len(lg.nodes))
	y := make([]int, len(lg.nodes))

	top := 0
	for _, layer := range layers {
		height, width := 0, 0
		for i, v := range layer {
			height = max(height, size[v].H)
			width += size[v].W
			if i > 0 {
				width += opts.NodeSep
			}
		}

		cur := float64(-width / 2)
		for _, v := range layer {
			x[v] = cur + float64(size[v].W)/2
			y[v] = top + height/2
			cur += float64(size[v].W + opts.NodeSep)
		}
		top += height + opts.RankSep
	}

	median := func(vs []int) (float64, bool) {
		if len(vs) == 0 {
			return 0, false
		}
		xs := make([]float64, len(vs))
		for i, v := range vs {
			xs[i] = x[v]
		}
		sort.Float64s(xs)
		return xs[len(xs)/2], true
	}

	for pass := 0; pass < 3; pass++ {
		for l := 1; l < len(layers); l++ {
			for _, v := range layers[l] {
				if m, ok := median(lg.backward[v]); ok {
					x[v] += (m - x[v]) * 0.5
				}
			}
			separate(layers[l], x, size, opts.NodeSep)
		}
		for l := len(layers) - 2; l >= 0; l-- {
			for _, v := range layers[l] {
				if m, ok := median(lg.forward[v]); ok {
					x[v] += (m - x[v]) * 0.3
				}
			}
			separate(layers[l], x, size, opts.NodeSep)
		}
	}

	out := make([]geom.Point, len(lg.nodes))
	for v := range lg.nodes {
		out[v] = geom.Pt(geom.Round(x[v]), y[v])
	}
	return out
}

// separate pushes the nodes of a layer right until none overlap, keeping
// their left to right order.
func separate(layer []int, x []float64, size []geom.Size, gap int) {
	for i := 1; i < len(layer); i++ {
		prev, cur := layer[i-1], layer[i]
		need := float64(size[prev].W+size[cur].W)/2 + float64(gap)
		if x[cur]-x[prev] < need {
			x[cur] = x[prev] + need
		}
	}
}

func removeInt(s []int, v int) []int {
	for i, w := range s {
		if w == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func containsInt(s []int, v int) bool {
	for _, w := range s {
		if w == v {
			return true
		}
	}
	return false
}
