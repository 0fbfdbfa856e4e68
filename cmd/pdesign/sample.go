package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/ha1tch/graphctrl/pkg/config"
	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
	"github.com/ha1tch/graphctrl/pkg/graph"
)

// operation describes one node of the sample project.
type operation struct {
	name   string
	result string
	colour uint32
	glyph  string // icon pattern, see makeIcon
	at     geom.Point
}

var sampleOperations = []operation{
	{"Import", "3 files\n12,408 rows", 0x6bd79c, "arrow", geom.Pt(120, 80)},
	{"Clean", "211 rows dropped", 0x7b9af7, "bars", geom.Pt(120, 240)},
	{"Analyse", "r = 0.82", 0xd6aa6b, "dots", geom.Pt(360, 240)},
	{"Export", "report.csv", 0x6bd79c, "arrow", geom.Pt(240, 400)},
}

var sampleEdges = [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {2, 2}}

// sampleProject builds the demonstration graph: four project nodes, a
// decision diamond and an ellipse note, styled from cfg.
func sampleProject(cfg config.Config, m designer.Measurer, log *slog.Logger) (*graph.Graph, error) {
	opts := []graph.Option{graph.WithLogger(log), graph.WithMeasurer(m)}
	if cfg.Canvas.SnapToGrid {
		opts = append(opts, graph.WithGrid(cfg.Canvas.GridSpacing))
	}
	g := graph.New(opts...)

	nodes := make([]graph.Node, 0, len(sampleOperations)+2)
	for i, op := range sampleOperations {
		n := designer.NewProjectNode(op.name)
		n.SetID(fmt.Sprintf("op%d", i))
		cfg.Apply(n)
		n.SetColour(designer.Hex(op.colour))
		n.SetResult(op.result)
		n.SetIcon(makeIcon(op.glyph, designer.Hex(op.colour)))
		if _, err := g.Add(n, op.at); err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	for _, e := range sampleEdges {
		if _, err := g.Connect(nodes[e[0]], nodes[e[1]]); err != nil {
			return nil, err
		}
	}

	check := graph.NewShapeNode("valid?", designer.StyleDiamond)
	if _, err := g.Add(check, geom.Pt(400, 400)); err != nil {
		return nil, err
	}
	note := graph.NewShapeNode("draft", designer.StyleEllipse)
	if _, err := g.Add(note, geom.Pt(380, 80)); err != nil {
		return nil, err
	}
	if _, err := g.Connect(nodes[3], check); err != nil {
		return nil, err
	}
	return g, nil
}

// makeIcon draws a 16x16 icon in c: "arrow", "bars" or "dots".
func makeIcon(glyph string, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	set := func(x, y int) { img.Set(x, y, c) }

	switch glyph {
	case "arrow":
		for x := 2; x < 12; x++ {
			set(x, 7)
			set(x, 8)
		}
		for i := 0; i < 5; i++ {
			for y := 3 + i; y <= 12-i; y++ {
				set(10+i, y)
			}
		}
	case "bars":
		for i, h := range []int{6, 10, 14} {
			for y := 15 - h; y < 15; y++ {
				for x := 2 + i*5; x < 5+i*5; x++ {
					set(x, y)
				}
			}
		}
	default:
		for y := 2; y < 16; y += 5 {
			for x := 2; x < 16; x += 5 {
				for dy := 0; dy < 3; dy++ {
					for dx := 0; dx < 3; dx++ {
						set(x+dx, y+dy)
					}
				}
			}
		}
	}
	return img
}
