package geometry

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointIntDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Pt(0, 0).Distance(Pt(3, 4)), 1e-12)
	assert.InDelta(t, 5.0, Pt(3, 4).Distance(Pt(0, 0)), 1e-12)
	assert.Zero(t, Pt(7, 7).Distance(Pt(7, 7)))
}

func TestPointIntMidpointTruncates(t *testing.T) {
	assert.Equal(t, Pt(77, 300), Pt(100, 300).Midpoint(Pt(55, 300)))
	assert.Equal(t, Pt(0, 0), Pt(-1, 1).Midpoint(Pt(0, 0)))
}

func TestRectIntContains(t *testing.T) {
	r := RectInt{Width: 10, Height: 5}
	assert.True(t, r.Contains(Pt(0, 0)))
	assert.True(t, r.Contains(Pt(9, 4)))
	assert.False(t, r.Contains(Pt(10, 4)))
	assert.False(t, r.Contains(Pt(3, -1)))
}

func TestPolygonEdgesWrap(t *testing.T) {
	poly := Polygon{Pt(0, 0), Pt(4, 0), Pt(4, 3)}
	edges := poly.Edges()
	require.Len(t, edges, 3)

	last := edges[2]
	assert.Equal(t, 2, last.Index)
	assert.Equal(t, Pt(4, 3), last.From)
	assert.Equal(t, Pt(0, 0), last.To)
	assert.InDelta(t, 5.0, last.Length(), 1e-12)
}

func TestEdgeSharedVertex(t *testing.T) {
	a := Edge{From: Pt(0, 0), To: Pt(1, 1)}
	b := Edge{From: Pt(1, 1), To: Pt(2, 0)}
	c := Edge{From: Pt(5, 5), To: Pt(6, 6)}

	v, ok := a.SharedVertex(b)
	require.True(t, ok)
	assert.Equal(t, Pt(1, 1), v)

	_, ok = a.SharedVertex(c)
	assert.False(t, ok)
}

func TestPolygonArea(t *testing.T) {
	square := Polygon{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	assert.InDelta(t, 100.0, square.Area(), 1e-12)

	reversed := Polygon{Pt(0, 10), Pt(10, 10), Pt(10, 0), Pt(0, 0)}
	assert.InDelta(t, 100.0, reversed.Area(), 1e-12)
	assert.Zero(t, Polygon{Pt(0, 0), Pt(1, 1)}.Area())
}

func TestPolygonImagePointsRoundTrip(t *testing.T) {
	pts := []image.Point{{1, 2}, {3, 4}, {5, 6}}
	poly := PolygonFromPoints(pts)
	assert.Equal(t, Polygon{Pt(1, 2), Pt(3, 4), Pt(5, 6)}, poly)
	assert.Equal(t, pts, poly.ImagePoints())
}
