package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/graphctrl/pkg/config"
	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/render"
)

func TestSampleProject(t *testing.T) {
	m, err := render.NewFontMeasurer(render.DefaultDPI)
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Node.CornerRadius = 4

	g, err := sampleProject(cfg, m, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	nodes := g.Nodes()
	require.Len(t, nodes, len(sampleOperations)+2)
	assert.Len(t, g.Edges(), len(sampleEdges)+1)
	assert.True(t, g.SnapToGrid())

	for i, op := range sampleOperations {
		n, ok := nodes[i].(*designer.ProjectNode)
		require.True(t, ok)
		assert.Equal(t, op.name, n.Operation())
		assert.Equal(t, op.result, n.Result())
		assert.Equal(t, 4, n.CornerRadius())
		assert.Equal(t, op.at, n.Bounds().Center())
		assert.NotNil(t, n.Icon())
	}
	assert.Equal(t, designer.StyleDiamond, nodes[4].Style())
	assert.Equal(t, designer.StyleEllipse, nodes[5].Style())

	var loops int
	for _, e := range g.Edges() {
		if e.IsSelfLoop() {
			loops++
		}
	}
	assert.Equal(t, 1, loops)
}

func TestSampleProjectWithoutSnap(t *testing.T) {
	cfg := config.Default()
	cfg.Canvas.SnapToGrid = false
	g, err := sampleProject(cfg, render.CellMeasurer{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.False(t, g.SnapToGrid())
}

func TestMakeIcon(t *testing.T) {
	c := designer.Hex(0x6bd79c)
	tests := []struct {
		glyph       string
		solid, none [2]int
	}{
		{"arrow", [2]int{5, 7}, [2]int{0, 0}},
		{"bars", [2]int{2, 14}, [2]int{2, 2}},
		{"dots", [2]int{2, 2}, [2]int{5, 5}},
	}
	for _, tc := range tests {
		t.Run(tc.glyph, func(t *testing.T) {
			img := makeIcon(tc.glyph, c)
			assert.Equal(t, 16, img.Bounds().Dx())
			assert.Equal(t, 16, img.Bounds().Dy())

			_, _, _, a := img.At(tc.solid[0], tc.solid[1]).RGBA()
			assert.Equal(t, uint32(0xffff), a)
			_, _, _, a = img.At(tc.none[0], tc.none[1]).RGBA()
			assert.Zero(t, a)
		})
	}
}
