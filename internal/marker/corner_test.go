package marker

import (
	"math"
	"testing"

	"marker-tracker/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regularPentagon(cx, cy, r float64) geometry.Polygon {
	poly := make(geometry.Polygon, 5)
	for i := range poly {
		a := float64(i) * 2 * math.Pi / 5
		poly[i] = geometry.Pt(int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))))
	}
	return poly
}

func TestLocateCornerPinched(t *testing.T) {
	res := LocateCorner(pinchedPentagon(), DefaultParams())

	require.True(t, res.Found)
	require.NoError(t, res.Err())
	assert.Equal(t, []int{0, 1, 3}, res.ShortEdges)
	assert.Equal(t, geometry.Pt(100, 100), res.Corner)
	assert.Equal(t, geometry.Pt(77, 300), res.BaseMidpoint)
}

func TestLocateCornerWrapsAroundShortEdgeList(t *testing.T) {
	// Short edges 4 and 0 meet at vertex 0; edge 2 is the base.
	poly := geometry.Polygon{
		geometry.Pt(200, 200),
		geometry.Pt(240, 200),
		geometry.Pt(240, 400),
		geometry.Pt(200, 400),
		geometry.Pt(200, 240),
	}

	res := LocateCorner(poly, DefaultParams())

	require.True(t, res.Found)
	assert.Equal(t, []int{0, 2, 4}, res.ShortEdges)
	assert.Equal(t, geometry.Pt(200, 200), res.Corner)
	assert.Equal(t, geometry.Pt(220, 400), res.BaseMidpoint)
}

func TestLocateCornerRegularPentagonNotFound(t *testing.T) {
	poly := regularPentagon(500, 500, 140)
	for _, e := range poly.Edges() {
		require.GreaterOrEqual(t, e.Length(), 150.0)
	}

	res := LocateCorner(poly, DefaultParams())

	assert.False(t, res.Found)
	assert.Empty(t, res.ShortEdges)
	assert.ErrorIs(t, res.Err(), ErrGeometryMismatch)
}

func TestLocateCornerWrongShortEdgeCount(t *testing.T) {
	// Four short sides and one long one.
	poly := geometry.Polygon{
		geometry.Pt(0, 0),
		geometry.Pt(40, 0),
		geometry.Pt(80, 0),
		geometry.Pt(120, 0),
		geometry.Pt(160, 0),
	}

	res := LocateCorner(poly, DefaultParams())

	assert.False(t, res.Found)
	assert.Len(t, res.ShortEdges, 4)
	assert.ErrorIs(t, res.Err(), ErrGeometryMismatch)
}

func TestLocateCornerRejectsNonPentagon(t *testing.T) {
	square := geometry.Polygon{
		geometry.Pt(0, 0), geometry.Pt(40, 0), geometry.Pt(40, 40), geometry.Pt(0, 40),
	}
	res := LocateCorner(square, DefaultParams())
	assert.False(t, res.Found)
	assert.ErrorIs(t, res.Err(), ErrGeometryMismatch)
}

func TestLocateCornerThresholdIsStrict(t *testing.T) {
	params := DefaultParams().WithShortEdgeMax(40)
	// The two notch sides are exactly 40px and no longer count as short.
	res := LocateCorner(pinchedPentagon(), params)
	assert.False(t, res.Found)
}
