// Package config loads and saves the designer's persistent settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/ha1tch/graphctrl/pkg/designer"
)

// FileName is the settings file in the user's home directory.
const FileName = ".pdesign.toml"

// Config holds user settings
type Config struct {
	Output   Output `toml:"output"`
	Node     Node   `toml:"node"`
	Canvas   Canvas `toml:"canvas"`
	LogLevel string `toml:"log_level"` // debug, info, warn or error
}

// Output controls rendered images.
type Output struct {
	Width   int `toml:"width"`   // minimum width in pixels
	Height  int `toml:"height"`  // minimum height in pixels
	Padding int `toml:"padding"` // margin around the graph
	Scale   int `toml:"scale"`   // PNG supersampling
}

// Node holds the defaults for new project nodes.
type Node struct {
	FontSize        float64 `toml:"font_size"`
	BorderThickness int     `toml:"border_thickness"`
	CornerRadius    int     `toml:"corner_radius"`
}

// Canvas describes the background.
type Canvas struct {
	From        string `toml:"from"` // hex colour at the left
	To          string `toml:"to"`   // hex colour at the right
	GridColour  string `toml:"grid_colour"`
	ShowGrid    bool   `toml:"show_grid"`
	GridSpacing int    `toml:"grid_spacing"`
	SnapToGrid  bool   `toml:"snap_to_grid"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Output: Output{Padding: 20, Scale: 4},
		Node: Node{
			FontSize:        designer.DefaultFont.Size,
			BorderThickness: designer.DefaultBorderThickness,
			CornerRadius:    designer.DefaultCornerRadius,
		},
		Canvas: Canvas{
			From:        "#ffffff",
			To:          "#1f97f6",
			GridColour:  "#d0d8e8",
			ShowGrid:    true,
			GridSpacing: 10,
			SnapToGrid:  true,
		},
		LogLevel: "info",
	}
}

// Path returns the path to the config file
func Path() string {
	home, err := homedir.Dir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes cfg as commented TOML.
func Write(w io.Writer, cfg Config) error {
	if _, err := io.WriteString(w, "# pdesign configuration\n"); err != nil {
		return err
	}
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks the colours, the log level and the sizes.
func (c Config) Validate() error {
	for name, hex := range map[string]string{
		"canvas.from":        c.Canvas.From,
		"canvas.to":          c.Canvas.To,
		"canvas.grid_colour": c.Canvas.GridColour,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Node.FontSize <= 0 {
		return fmt.Errorf("node.font_size must be positive, got %g", c.Node.FontSize)
	}
	if c.Node.BorderThickness < 0 || c.Node.CornerRadius < 0 {
		return errors.New("node border thickness and corner radius must not be negative")
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// Background builds the canvas painter. Colours that fail to parse fall
// back to the defaults.
func (c Config) Background() designer.Background {
	bg := designer.DefaultBackground()
	bg.From = parseColour(c.Canvas.From, bg.From)
	bg.To = parseColour(c.Canvas.To, bg.To)
	bg.GridColour = parseColour(c.Canvas.GridColour, bg.GridColour)
	bg.ShowGrid = c.Canvas.ShowGrid
	if c.Canvas.GridSpacing > 0 {
		bg.GridSpacing = c.Canvas.GridSpacing
	}
	return bg
}

// Apply sets a project node's font, border and corner from the defaults.
func (c Config) Apply(n *designer.ProjectNode) {
	f := n.Font()
	f.Size = c.Node.FontSize
	n.SetFont(f)
	n.SetBorderThickness(c.Node.BorderThickness)
	n.SetCornerRadius(c.Node.CornerRadius)
}

func parseColour(hex string, fallback color.Color) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}
}
