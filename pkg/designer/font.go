package designer

import "fmt"

// Font describes the face a node's text is measured and drawn with.
// The zero Font means the renderer's default face.
type Font struct {
	Family string
	Size   float64 // points
	Bold   bool
}

// DefaultFont is used by new nodes.
var DefaultFont = Font{Family: "Go", Size: 12}

func (f Font) String() string {
	weight := "regular"
	if f.Bold {
		weight = "bold"
	}
	return fmt.Sprintf("%s %s %.1fpt", f.Family, weight, f.Size)
}

// Measurer reports the extent of text drawn in a font. Text may contain
// newlines; the extent covers every line.
type Measurer interface {
	MeasureMultilineText(text string, f Font) (w, h int)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(text string, f Font) (w, h int)

func (fn MeasurerFunc) MeasureMultilineText(text string, f Font) (int, int) {
	return fn(text, f)
}
