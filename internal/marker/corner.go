package marker

import (
	"fmt"

	"marker-tracker/pkg/geometry"
)

// markerVertices is the vertex count of a marker outline.
const markerVertices = 5

// shortEdgeCount is the number of short sides: the two notch sides and the base.
const shortEdgeCount = 3

// CornerResult is the outcome of LocateCorner. Corner and BaseMidpoint are
// only meaningful when Found is true.
type CornerResult struct {
	Found        bool
	Corner       geometry.PointInt // Concave corner where two short sides meet
	BaseMidpoint geometry.PointInt // Middle of the remaining short side
	ShortEdges   []int             // Start vertex index of every short edge
}

// Err returns nil for a located corner and a wrapped ErrGeometryMismatch otherwise.
func (r CornerResult) Err() error {
	if r.Found {
		return nil
	}
	return fmt.Errorf("%d short edges %v: %w", len(r.ShortEdges), r.ShortEdges, ErrGeometryMismatch)
}

// ShortEdges returns the start indices of the edges shorter than maxLen.
func ShortEdges(poly geometry.Polygon, maxLen float64) []int {
	var short []int
	for _, e := range poly.Edges() {
		if e.Length() < maxLen {
			short = append(short, e.Index)
		}
	}
	return short
}

// LocateCorner finds the concave corner of a marker outline and the middle
// of its base. Each short edge is paired with the next one (cyclically); the
// first pair sharing an endpoint gives the corner and the third short edge
// is the base.
func LocateCorner(poly geometry.Polygon, params Params) CornerResult {
	if len(poly) != markerVertices {
		return CornerResult{}
	}

	short := ShortEdges(poly, params.ShortEdgeMax)
	result := CornerResult{ShortEdges: short}
	if len(short) != shortEdgeCount {
		return result
	}

	for i, idx := range short {
		next := poly.Edge(short[(i+1)%shortEdgeCount])
		corner, ok := poly.Edge(idx).SharedVertex(next)
		if !ok {
			continue
		}
		base := poly.Edge(short[(i+2)%shortEdgeCount])
		result.Found = true
		result.Corner = corner
		result.BaseMidpoint = base.Midpoint()
		return result
	}
	return result
}
