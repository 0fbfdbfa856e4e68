package graph

import (
	"fmt"
	"strings"
)

// DOT writes nodes and the edges between them as a Graphviz digraph.
// Nodes are fixed-size unlabelled boxes, sized in inches at dpi, so the
// result can be fed to dot for placement. nil nodes means all of them.
func (g *Graph) DOT(nodes []Node, dpi float64) string {
	if nodes == nil {
		nodes = g.nodes
	}
	if dpi <= 0 {
		dpi = 96
	}

	names := make(map[Node]string, len(nodes))
	for _, n := range nodes {
		names[n] = fmt.Sprintf("n%d", g.index(n))
	}

	var sb strings.Builder
	sb.WriteString("digraph Project {\n")
	sb.WriteString("\tnode [label=\"\", shape=box, fixedsize=true];\n")

	for _, n := range nodes {
		for _, e := range g.OutEdges(n) {
			if to, ok := names[e.to]; ok {
				fmt.Fprintf(&sb, "\t%s -> %s;\n", names[n], to)
			}
		}

		size := n.Bounds().Size()
		fmt.Fprintf(&sb, "\t%s [width=\"%g\", height=\"%g\", comment=\"%s\"];\n",
			names[n], float64(size.W)/dpi, float64(size.H)/dpi, escapeDOT(n.Text()))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
