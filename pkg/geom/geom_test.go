package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := R(13, 13, 74, 34)

	assert.Equal(t, 86, r.Right())
	assert.Equal(t, 46, r.Bottom())
	assert.Equal(t, Pt(13, 13), r.TopLeft())
	assert.Equal(t, Pt(86, 13), r.TopRight())
	assert.Equal(t, Pt(13, 46), r.BottomLeft())
	assert.Equal(t, Pt(86, 46), r.BottomRight())
	assert.Equal(t, Pt(50, 30), r.Center())
}

func TestRectDeflate(t *testing.T) {
	b := R(0, 0, 100, 60).Deflate(13)
	assert.Equal(t, R(13, 13, 74, 34), b)
	assert.False(t, b.IsEmpty())

	assert.True(t, R(0, 0, 20, 20).Deflate(10).IsEmpty())
	assert.Equal(t, R(-2, -2, 14, 14), R(0, 0, 10, 10).Inflate(2))
}

func TestRectContains(t *testing.T) {
	r := R(10, 10, 5, 5)

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(14, 14), true},
		{Pt(15, 14), false},
		{Pt(9, 12), false},
		{Pt(12, 15), false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, r.Contains(tc.p), "point %v", tc.p)
	}

	assert.False(t, Rect{}.Contains(Pt(0, 0)))
}

func TestRectUnion(t *testing.T) {
	u := R(0, 0, 10, 10).Union(R(20, 5, 5, 20))
	assert.Equal(t, R(0, 0, 25, 25), u)
	assert.Equal(t, R(1, 2, 3, 4), Rect{}.Union(R(1, 2, 3, 4)))
}

func TestRectIntersects(t *testing.T) {
	a := R(0, 0, 10, 10)
	assert.True(t, a.Intersects(R(9, 9, 5, 5)))
	assert.False(t, a.Intersects(R(10, 0, 5, 5)))
	assert.False(t, a.Intersects(Rect{}))
}

func TestPointOrdering(t *testing.T) {
	assert.True(t, Pt(50, 1).Less(Pt(0, 2)))
	assert.True(t, Pt(1, 2).Less(Pt(3, 2)))
	assert.False(t, Pt(3, 2).Less(Pt(3, 2)))
	assert.Equal(t, Pt(4, 6), Pt(1, 2).Add(Pt(3, 4)))
	assert.Equal(t, Pt(-2, -2), Pt(1, 2).Sub(Pt(3, 4)))
}

func TestDist(t *testing.T) {
	assert.InDelta(t, 5.0, Dist(Pt(0, 0), Pt(3, 4)), 1e-9)
	assert.InDelta(t, math.Sqrt2, Dist(Pt(1, 1), Pt(2, 2)), 1e-9)
}

func TestSegmentDist(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	assert.InDelta(t, 3.0, SegmentDist(Pt(5, 3), a, b), 1e-9)
	assert.InDelta(t, 5.0, SegmentDist(Pt(13, 4), a, b), 1e-9, "beyond the end")
	assert.InDelta(t, 5.0, SegmentDist(Pt(3, 4), a, a), 1e-9, "degenerate segment")
}
