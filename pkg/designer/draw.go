package designer

// Draw paints the node onto s, laying it out with m first if any input
// changed since the last pass. m may be nil when the layout is known to be
// current.
func (n *ProjectNode) Draw(s Surface, m Measurer) {
	if !n.layout.valid && m != nil {
		Layout(n, m)
	}

	if n.style != StyleCustom {
		DrawStyle(s, n.style, n.bounds, n.colour, n.background,
			n.text, n.layout.text.or().Size(), n.font, n.textColour)
		return
	}

	bounds := n.bounds
	bt := n.borderThickness
	cr := n.cornerRadius
	rc := bounds.Deflate(bt / 2)

	s.SetPen(n.colour, bt)
	s.SetBrush(n.background)
	s.DrawRoundedRectangle(rc, cr)

	// header band in the border colour
	rc.H = n.layout.divide
	s.SetBrush(n.colour)
	s.DrawRoundedRectangle(rc, cr)
	if cr > bt {
		// square off the bottom of the band
		rc.Y += cr
		rc.H -= cr
		s.DrawRectangle(rc)
	}

	origin := bounds.TopLeft()
	if r, ok := n.layout.TextRect(); ok && n.text != "" {
		s.DrawLabel(n.text, r.Offset(origin), n.font, n.textColour)
	}
	if r, ok := n.layout.ResultRect(); ok && n.result != "" {
		s.DrawLabel(n.result, r.Offset(origin), n.font, n.textColour)
	}
	if r, ok := n.layout.IconRect(); ok && n.icon != nil {
		s.DrawIcon(n.icon, origin.Add(r.TopLeft()))
	}
}
