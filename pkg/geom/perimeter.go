package geom

import "math"

// PerimeterPoint returns where the segment from inside to outside leaves the
// plain rectangle r. The outer edges are x = X, x = X+W, y = Y and y = Y+H.
// The crossing coordinate on the edge axis is exact; the other is rounded.
// If the segment never leaves r, outside is returned.
func PerimeterPoint(r Rect, inside, outside Point) Point {
	x0, y0 := float64(inside.X), float64(inside.Y)
	dx := float64(outside.X - inside.X)
	dy := float64(outside.Y - inside.Y)

	left, right := float64(r.X), float64(r.X+r.W)
	top, bottom := float64(r.Y), float64(r.Y+r.H)

	best := math.Inf(1)
	var hit Point

	if dx != 0 {
		for _, ex := range [2]int{r.X, r.X + r.W} {
			t := (float64(ex) - x0) / dx
			if t <= 0 || t > 1 || t >= best {
				continue
			}
			y := y0 + t*dy
			if y >= top && y <= bottom {
				best = t
				hit = Point{ex, Round(y)}
			}
		}
	}

	if dy != 0 {
		for _, ey := range [2]int{r.Y, r.Y + r.H} {
			t := (float64(ey) - y0) / dy
			if t <= 0 || t > 1 || t >= best {
				continue
			}
			x := x0 + t*dx
			if x >= left && x <= right {
				best = t
				hit = Point{Round(x), ey}
			}
		}
	}

	if math.IsInf(best, 1) {
		return outside
	}
	return hit
}

// EllipsePerimeterPoint returns where the segment from inside to outside
// leaves the ellipse inscribed in r. Degenerate ellipses fall back to the
// plain rectangle.
func EllipsePerimeterPoint(r Rect, inside, outside Point) Point {
	a := float64(r.W) / 2
	b := float64(r.H) / 2
	if a <= 0 || b <= 0 {
		return PerimeterPoint(r, inside, outside)
	}
	cx := float64(r.X) + a
	cy := float64(r.Y) + b

	px := float64(inside.X) - cx
	py := float64(inside.Y) - cy
	dx := float64(outside.X - inside.X)
	dy := float64(outside.Y - inside.Y)

	// (px + t dx)^2/a^2 + (py + t dy)^2/b^2 = 1
	qa := dx*dx/(a*a) + dy*dy/(b*b)
	qb := 2 * (px*dx/(a*a) + py*dy/(b*b))
	qc := px*px/(a*a) + py*py/(b*b) - 1
	if qa == 0 {
		return outside
	}
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return PerimeterPoint(r, inside, outside)
	}
	t := (-qb + math.Sqrt(disc)) / (2 * qa)
	if t <= 0 || t > 1 {
		return outside
	}
	return Point{
		X: Round(float64(inside.X) + t*dx),
		Y: Round(float64(inside.Y) + t*dy),
	}
}

// PolygonPerimeterPoint returns the first crossing of the segment from
// inside to outside with the closed polygon poly.
func PolygonPerimeterPoint(poly []Point, inside, outside Point) Point {
	if len(poly) < 3 {
		return outside
	}

	x0, y0 := float64(inside.X), float64(inside.Y)
	dx := float64(outside.X - inside.X)
	dy := float64(outside.Y - inside.Y)

	best := math.Inf(1)
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		ex := float64(b.X - a.X)
		ey := float64(b.Y - a.Y)

		denom := dx*ey - dy*ex
		if denom == 0 {
			continue // parallel
		}
		ax := float64(a.X) - x0
		ay := float64(a.Y) - y0
		t := (ax*ey - ay*ex) / denom
		u := (ax*dy - ay*dx) / denom
		if t > 0 && t <= 1 && u >= 0 && u <= 1 && t < best {
			best = t
		}
	}

	if math.IsInf(best, 1) {
		return outside
	}
	return Point{Round(x0 + best*dx), Round(y0 + best*dy)}
}
