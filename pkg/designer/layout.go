package designer

import "github.com/ha1tch/graphctrl/pkg/geom"

// The corner cut is (outer radius - inner radius) / sqrt(2), kept as an
// integer ratio so layouts match pixel for pixel.
const (
	diagNum = 1000000
	diagDen = 1414214
)

// slot is a cached rectangle that may not have been computed yet. A
// computed rectangle can legitimately have zero size.
type slot struct {
	rect geom.Rect
	ok   bool
}

func (s *slot) get() (geom.Rect, bool) { return s.rect, s.ok }
func (s *slot) set(r geom.Rect)        { s.rect, s.ok = r, true }
func (s *slot) clear()                 { *s = slot{} }

// or returns the cached rectangle, or the zero rectangle when absent.
func (s *slot) or() geom.Rect {
	if s.ok {
		return s.rect
	}
	return geom.Rect{}
}

// LayoutState holds a node's layout cache. Rectangles are relative to the
// node's top-left corner.
type LayoutState struct {
	text   slot
	result slot
	icon   slot

	minSize geom.Size
	divide  int
	valid   bool // minSize and divide reflect the last pass
}

func (s *LayoutState) TextRect() (geom.Rect, bool)   { return s.text.get() }
func (s *LayoutState) ResultRect() (geom.Rect, bool) { return s.result.get() }
func (s *LayoutState) IconRect() (geom.Rect, bool)   { return s.icon.get() }

// MinSize is the smallest size that fits the content. The bool is false
// when an input changed since the last layout pass.
func (s *LayoutState) MinSize() (geom.Size, bool) { return s.minSize, s.valid }

// Divide is the height of the header band, with the same staleness rule
// as MinSize.
func (s *LayoutState) Divide() (int, bool) { return s.divide, s.valid }

// Valid reports whether the last layout pass is still current.
func (s *LayoutState) Valid() bool { return s.valid }

func (s *LayoutState) invalidate() {
	s.text.clear()
	s.result.clear()
	s.icon.clear()
	s.valid = false
}

// Spacing is the inset that keeps text clear of a rounded corner: the outer
// corner radius less the diagonal cut between outer and inner radius.
func Spacing(cornerRadius, borderThickness int) int {
	half := borderThickness / 2
	return cornerRadius + half - (cornerRadius-half)*diagNum/diagDen
}

// Layout measures the node's content, places the label, icon and result
// regions, grows the node's bounds to fit and records the header divide.
// Regions already cached are reused, so a second pass with unchanged
// inputs changes nothing.
func Layout(n *ProjectNode, m Measurer) {
	st := &n.layout
	bt := n.borderThickness
	spacing := Spacing(n.cornerRadius, bt)

	if !st.text.ok {
		w, h := m.MeasureMultilineText(n.text, n.font)
		st.text.set(geom.Rect{X: spacing, Y: spacing, W: w, H: h})
	}

	if n.icon != nil && !st.icon.ok {
		b := n.icon.Bounds()
		st.icon.set(geom.Rect{X: spacing, Y: 0, W: b.Dx(), H: b.Dy()})
	}

	iconHSpace := st.icon.or().W + spacing

	if !st.result.ok {
		w, h := m.MeasureMultilineText(n.result, n.font)
		st.result.set(geom.Rect{X: spacing + iconHSpace, Y: 0, W: w, H: h})
	}

	text := st.text.rect
	result := st.result.rect
	icon := st.icon.or()

	st.minSize.W = max(text.Right(), result.Right()) + spacing + 1
	st.minSize.H = max(icon.H, result.H) + text.Bottom() + 2 + 2*spacing - bt

	bounds := n.bounds
	if bounds.W < st.minSize.W || bounds.H < st.minSize.H {
		if bounds.W < st.minSize.W {
			bounds.W = st.minSize.W
		}
		if bounds.H < st.minSize.H {
			bounds.H = st.minSize.H
		}
		lg().Debug("node grown to fit content",
			"node", n.text, "from", n.bounds.Size(), "to", bounds.Size())
		n.bounds = bounds
	}

	st.divide = text.Bottom() + 1 + spacing - bt
	mid := (st.divide + bounds.H) / 2

	if st.icon.ok {
		st.icon.rect.Y = mid - st.icon.rect.H/2
	}
	st.result.rect.Y = mid - st.result.rect.H/2

	st.valid = true
}
