// Command pdview is a terminal viewer for project designer graphs.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/graphctrl/pkg/config"
	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
	"github.com/ha1tch/graphctrl/pkg/graph"
	"github.com/ha1tch/graphctrl/pkg/render"
)

// Mode is the viewer's input mode.
type Mode int

const (
	ModeView    Mode = iota // scroll, select and drag
	ModeConnect             // next click picks the target for the selection
)

// drag tracks a node being moved with the mouse.
type drag struct {
	node graph.Node
	grab geom.Point // pointer offset from the node centre
}

// Viewer holds all viewer state
type Viewer struct {
	screen  tcell.Screen
	g       *graph.Graph
	bg      designer.Background
	origin  geom.Point // canvas point in the top-left cell
	mode    Mode
	message string
	drag    *drag
	pressed bool
	layout  graph.LayoutOptions
	log     *slog.Logger
}

// terminal nodes: no outline, one cell of spacing
const (
	cellBorder = 0
	cellCorner = 1
)

type cellOp struct {
	name   string
	result string
	colour uint32
	at     geom.Point
}

var cellOps = []cellOp{
	{"Import", "3 files", 0x6bd79c, geom.Pt(10, 4)},
	{"Clean", "211 dropped", 0x7b9af7, geom.Pt(10, 14)},
	{"Analyse", "r = 0.82", 0xd6aa6b, geom.Pt(34, 14)},
	{"Export", "report.csv", 0x6bd79c, geom.Pt(22, 24)},
}

// NewViewer builds the sample project laid out in cells.
func NewViewer(screen tcell.Screen, cfg config.Config, log *slog.Logger) (*Viewer, error) {
	v := &Viewer{
		screen: screen,
		bg:     cfg.Background(),
		origin: geom.Pt(-2, -1),
		layout: graph.LayoutOptions{RankSep: 3, NodeSep: 4, Passes: 4},
		log:    log,
	}
	v.bg.ShowGrid = false
	v.bg.GridSpacing = 1
	v.g = graph.New(
		graph.WithLogger(log),
		graph.WithMeasurer(render.CellMeasurer{}),
		graph.WithArrowSize(2),
		graph.WithDefaultNodeSize(geom.Size{}),
	)

	nodes := make([]graph.Node, len(cellOps))
	for i, op := range cellOps {
		n := designer.NewProjectNode(op.name)
		n.SetBorderThickness(cellBorder)
		n.SetCornerRadius(cellCorner)
		n.SetColour(designer.Hex(op.colour))
		n.SetTextColour(designer.Black)
		n.SetResult(op.result)
		n.SetIcon(swatch(designer.Hex(op.colour)))
		if _, err := v.g.Add(n, op.at); err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		if _, err := v.g.Connect(nodes[e[0]], nodes[e[1]]); err != nil {
			return nil, err
		}
	}

	v.g.On(graph.EventNodeClick, func(ev *graph.Event) {
		v.message = fmt.Sprintf("%s: %s", ev.Node.Text(), ev.Hit)
	})
	v.g.On(graph.EventEdgeClick, func(ev *graph.Event) {
		v.message = fmt.Sprintf("edge %s -> %s", ev.Edge.From().Text(), ev.Edge.To().Text())
	})
	v.g.On(graph.EventNodeActivate, func(ev *graph.Event) {
		v.message = fmt.Sprintf("activated %s", ev.Node.Text())
	})
	return v, nil
}

// swatch is a two cell icon.
func swatch(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, c)
	img.Set(1, 0, c)
	return img
}

func main() {
	cfgPath := config.Path()
	var logFile string
	for i := 1; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "-c", "--config":
			if i+1 < len(os.Args) {
				cfgPath = os.Args[i+1]
				i++
			}
		case "--log":
			if i+1 < len(os.Args) {
				logFile = os.Args[i+1]
				i++
			}
		case "-h", "--help":
			fmt.Println("Usage: pdview [-c config] [--log file]")
			return
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	// the screen owns the terminal, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log %s: %v\n", logFile, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	designer.SetLogger(log)

	// Initialize screen
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.Clear()

	v, err := NewViewer(screen, cfg, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error building project: %v\n", err)
		os.Exit(1)
	}
	v.run()
	screen.Fini()
}

func (v *Viewer) run() {
	for {
		v.draw()
		v.screen.Show()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case nil:
			return
		}
	}
}

// handleKey returns true when the viewer should quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if v.mode == ModeConnect {
			v.mode = ModeView
			v.message = "connect cancelled"
			return false
		}
		return true
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.origin.X -= 2
	case tcell.KeyRight:
		v.origin.X += 2
	case tcell.KeyUp:
		v.origin.Y--
	case tcell.KeyDown:
		v.origin.Y++
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		v.deleteSelection()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'l':
			if err := v.g.AutoLayoutAll(v.layout); err != nil {
				v.message = err.Error()
			} else {
				v.message = "layout done"
			}
		case 'a':
			v.g.SelectAll()
		case 'c':
			if len(v.g.SelectedNodes()) == 0 {
				v.message = "select nodes to connect first"
				break
			}
			v.mode = ModeConnect
			v.message = "click the target node"
		}
	}
	return false
}

func (v *Viewer) deleteSelection() {
	n := len(v.g.Selection())
	if n == 0 {
		return
	}
	if err := v.g.DeleteSelection(); err != nil {
		v.message = err.Error()
		return
	}
	v.message = fmt.Sprintf("deleted %d", n)
}

// canvasPoint maps a screen cell to the canvas.
func (v *Viewer) canvasPoint(x, y int) geom.Point {
	return geom.Pt(x, y).Add(v.origin)
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := v.canvasPoint(x, y)
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.Button1 != 0 && !v.pressed:
		v.pressed = true
		v.press(p, ev.Modifiers()&tcell.ModShift != 0)
	case buttons&tcell.Button1 != 0:
		if v.drag != nil {
			if err := v.g.Move(v.drag.node, p.Sub(v.drag.grab)); err != nil {
				v.message = err.Error()
				v.drag = nil
			}
		}
	case buttons&tcell.Button3 != 0:
		v.g.Activate(p)
	case buttons == tcell.ButtonNone:
		v.pressed = false
		v.drag = nil
		v.hover(p)
	}
}

func (v *Viewer) press(p geom.Point, extend bool) {
	if v.mode == ModeConnect {
		v.mode = ModeView
		target := v.g.NodeAt(p)
		if target == nil {
			v.message = "no node there"
			return
		}
		edges, err := v.g.ConnectSelection(target)
		switch {
		case errors.Is(err, graph.ErrVetoed):
			v.message = "connect refused"
		case err != nil:
			v.message = err.Error()
		default:
			v.message = fmt.Sprintf("%d connected to %s", len(edges), target.Text())
		}
		return
	}

	if n, ok := v.g.Click(p, extend).(graph.Node); ok {
		v.g.Raise(n)
		v.drag = &drag{node: n, grab: p.Sub(n.Bounds().Center())}
	}
}

func (v *Viewer) hover(p geom.Point) {
	if v.mode == ModeConnect {
		return
	}
	if n := v.g.NodeAt(p); n != nil {
		v.message = fmt.Sprintf("%s: %s", n.Text(), n.HitTest(p))
	}
}
