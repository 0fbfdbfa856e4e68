// Command pdesign renders and inspects project designer graphs.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/ha1tch/graphctrl/pkg/config"
	"github.com/ha1tch/graphctrl/pkg/designer"
	"github.com/ha1tch/graphctrl/pkg/geom"
	"github.com/ha1tch/graphctrl/pkg/graph"
	"github.com/ha1tch/graphctrl/pkg/render"
)

const usage = `pdesign - project designer graph tool

Usage:
  pdesign <command> [options]

Commands:
  svg        Render the sample project as SVG
  png        Render the sample project as PNG
  dot        Generate Graphviz DOT output
  layout     Auto-layout the sample project and list node positions
  hit        Report what lies under a canvas point
  perimeter  Intersect a line with a rounded rectangle
  config     Show or initialise the configuration file

Common options:
  -c, --config <file>   configuration file (default ~/.pdesign.toml)
  -v, --verbose         debug logging

Examples:
  pdesign svg -o project.svg --layout
  pdesign png -o project.png --scale 2
  pdesign dot | dot -Tpng -o project.png
  pdesign hit 130 70
  pdesign perimeter 0 0 100 60 10 6 50 30 200 200
  pdesign config --init

Use "pdesign <command> -h" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "svg", "png":
		cmdRender(cmd, args)
	case "dot":
		cmdDot(args)
	case "layout":
		cmdLayout(args)
	case "hit":
		cmdHit(args)
	case "perimeter":
		cmdPerimeter(args)
	case "config":
		cmdConfig(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

// env is the state every command starts from.
type env struct {
	cfgPath string
	cfg     config.Config
	log     *slog.Logger
	rest    []string // arguments not consumed as common options
}

// setup strips the common options from args, loads the configuration and
// builds the logger.
func setup(args []string) env {
	e := env{cfgPath: config.Path()}
	verbose := false
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c", "--config":
			if i+1 < len(args) {
				e.cfgPath = args[i+1]
				i++
			}
		case "-v", "--verbose":
			verbose = true
		default:
			e.rest = append(e.rest, args[i])
		}
	}

	cfg, err := config.Load(e.cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	e.cfg = cfg

	level, _ := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	e.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	designer.SetLogger(e.log)
	return e
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

// project builds the sample graph measured with the Go fonts.
func (e env) project(autoLayout bool) *graph.Graph {
	m, err := render.NewFontMeasurer(render.DefaultDPI)
	if err != nil {
		fail("Error loading fonts: %v", err)
	}
	g, err := sampleProject(e.cfg, m, e.log)
	if err != nil {
		fail("Error building project: %v", err)
	}
	if autoLayout {
		if err := g.AutoLayoutAll(graph.DefaultLayoutOptions()); err != nil {
			fail("Error laying out: %v", err)
		}
	}
	return g
}

func (e env) renderOptions() render.Options {
	bg := e.cfg.Background()
	return render.Options{
		Width:      e.cfg.Output.Width,
		Height:     e.cfg.Output.Height,
		Padding:    e.cfg.Output.Padding,
		Scale:      e.cfg.Output.Scale,
		Background: &bg,
	}
}

func cmdRender(format string, args []string) {
	e := setup(args)
	opts := e.renderOptions()
	var output string
	autoLayout := false

	for i := 0; i < len(e.rest); i++ {
		switch e.rest[i] {
		case "-o", "--output":
			if i+1 < len(e.rest) {
				output = e.rest[i+1]
				i++
			}
		case "--layout":
			autoLayout = true
		case "--no-grid":
			opts.Background.ShowGrid = false
		case "--plain":
			opts.Background = nil
		case "--scale":
			if i+1 < len(e.rest) {
				opts.Scale = atoi(e.rest[i+1])
				i++
			}
		case "-h", "--help":
			fmt.Printf("Usage: pdesign %s [-o output] [--layout] [--no-grid] [--plain] [--scale n]\n", format)
			return
		default:
			fail("Unknown option: %s", e.rest[i])
		}
	}

	g := e.project(autoLayout)

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			fail("Error creating %s: %v", output, err)
		}
		defer f.Close()
		w = f
	}

	var err error
	if format == "png" {
		err = render.RenderPNG(w, g, opts)
	} else {
		err = render.RenderSVG(w, g, opts)
	}
	if err != nil {
		fail("Error rendering: %v", err)
	}
	if output != "" {
		fmt.Fprintf(os.Stderr, "Written: %s\n", output)
	}
}

func cmdDot(args []string) {
	e := setup(args)
	dpi := 96.0
	for i := 0; i < len(e.rest); i++ {
		switch e.rest[i] {
		case "--dpi":
			if i+1 < len(e.rest) {
				v, err := strconv.ParseFloat(e.rest[i+1], 64)
				if err != nil || v <= 0 {
					fail("Invalid dpi: %s", e.rest[i+1])
				}
				dpi = v
				i++
			}
		case "-h", "--help":
			fmt.Println("Usage: pdesign dot [--dpi n]")
			return
		}
	}
	fmt.Print(e.project(false).DOT(nil, dpi))
}

func cmdLayout(args []string) {
	e := setup(args)
	opts := graph.DefaultLayoutOptions()
	for i := 0; i < len(e.rest); i++ {
		switch e.rest[i] {
		case "--rank-sep":
			if i+1 < len(e.rest) {
				opts.RankSep = atoi(e.rest[i+1])
				i++
			}
		case "--node-sep":
			if i+1 < len(e.rest) {
				opts.NodeSep = atoi(e.rest[i+1])
				i++
			}
		case "-h", "--help":
			fmt.Println("Usage: pdesign layout [--rank-sep n] [--node-sep n]")
			return
		}
	}

	g := e.project(false)
	if err := g.AutoLayoutAll(opts); err != nil {
		fail("Error laying out: %v", err)
	}
	for _, n := range g.Nodes() {
		fmt.Printf("%-10s %-9s %s\n", n.Text(), n.Style(), n.Bounds())
	}
}

func cmdHit(args []string) {
	e := setup(args)
	if len(e.rest) < 2 {
		fail("Usage: pdesign hit <x> <y> [--layout]")
	}
	p := geom.Pt(atoi(e.rest[0]), atoi(e.rest[1]))
	autoLayout := len(e.rest) > 2 && e.rest[2] == "--layout"

	g := e.project(autoLayout)
	g.On(graph.EventNodeClick, func(ev *graph.Event) {
		fmt.Printf("node %q: %s\n", ev.Node.Text(), ev.Hit)
	})
	g.On(graph.EventEdgeClick, func(ev *graph.Event) {
		fmt.Printf("edge %q -> %q\n", ev.Edge.From().Text(), ev.Edge.To().Text())
	})
	if g.Click(p, false) == nil {
		fmt.Printf("nothing at %s\n", p)
	}
}

func cmdPerimeter(args []string) {
	e := setup(args)
	if len(e.rest) < 10 {
		fail("Usage: pdesign perimeter <x> <y> <w> <h> <radius> <border> <inside-x> <inside-y> <outside-x> <outside-y>")
	}
	v := make([]int, 10)
	for i := range v {
		v[i] = atoi(e.rest[i])
	}
	boundary := geom.RoundedRect{Rect: geom.R(v[0], v[1], v[2], v[3]), Radius: v[4]}
	inside, outside := geom.Pt(v[6], v[7]), geom.Pt(v[8], v[9])

	fmt.Printf("rectangle: %s\n", geom.PerimeterPoint(boundary.Rect, inside, outside))
	fmt.Printf("rounded:   %s\n", designer.Intersect(boundary, v[5], inside, outside))
}

func cmdConfig(args []string) {
	e := setup(args)
	for _, a := range e.rest {
		switch a {
		case "--init":
			if err := config.Save(e.cfgPath, e.cfg); err != nil {
				fail("Error: %v", err)
			}
			fmt.Printf("Written: %s\n", e.cfgPath)
			return
		case "-h", "--help":
			fmt.Println("Usage: pdesign config [--init]")
			return
		}
	}

	if _, err := os.Stat(e.cfgPath); err != nil {
		fmt.Printf("# %s not present, showing defaults\n", e.cfgPath)
	} else {
		fmt.Printf("# %s\n", e.cfgPath)
	}
	if err := config.Write(os.Stdout, e.cfg); err != nil {
		fail("Error: %v", err)
	}
}

func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		fail("Invalid number: %s", s)
	}
	return v
}
