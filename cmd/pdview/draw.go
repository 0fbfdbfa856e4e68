package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/graphctrl/pkg/geom"
	"github.com/ha1tch/graphctrl/pkg/render"
)

// Styles
var (
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleConnect = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy).Bold(true)
)

const helpText = "q quit  arrows scroll  l layout  a all  c connect  del delete  right-click activate"

func (v *Viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if h < 2 {
		return
	}

	canvas := geom.R(0, 0, w, h-1)
	s := render.NewCellSurface(v.screen, v.origin, canvas)
	v.bg.Paint(s, geom.RectAt(v.origin, canvas.Size()))
	v.g.Draw(s, render.CellMeasurer{})

	v.drawStatusBar(w, h)
}

func (v *Viewer) drawStatusBar(w, h int) {
	style := styleStatus
	if v.mode == ModeConnect {
		style = styleConnect
	}
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, h-1, ' ', nil, style)
	}

	text := v.message
	if text == "" {
		text = helpText
	}
	x := 1
	for _, r := range text {
		if x >= w {
			break
		}
		v.screen.SetContent(x, h-1, r, nil, style)
		x++
	}
}
