package geometry

import "image"

// Polygon is an ordered, cyclic list of vertices in contour traversal order.
type Polygon []PointInt

// Edge joins vertex Index to vertex (Index+1) mod n.
type Edge struct {
	Index    int
	From, To PointInt
}

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float64 {
	return e.From.Distance(e.To)
}

// Midpoint returns the integer midpoint of the edge.
func (e Edge) Midpoint() PointInt {
	return e.From.Midpoint(e.To)
}

// SharedVertex returns the endpoint e has in common with other.
// e.From is tested before e.To, so the result is deterministic when
// both edges are degenerate.
func (e Edge) SharedVertex(other Edge) (PointInt, bool) {
	if e.From == other.From || e.From == other.To {
		return e.From, true
	}
	if e.To == other.From || e.To == other.To {
		return e.To, true
	}
	return PointInt{}, false
}

// PolygonFromPoints converts OpenCV contour points into a Polygon.
func PolygonFromPoints(points []image.Point) Polygon {
	poly := make(Polygon, len(points))
	for i, p := range points {
		poly[i] = FromImagePoint(p)
	}
	return poly
}

// Edge returns the edge starting at vertex i.
func (p Polygon) Edge(i int) Edge {
	n := len(p)
	return Edge{Index: i, From: p[i], To: p[(i+1)%n]}
}

// Edges returns all edges of the polygon in traversal order.
func (p Polygon) Edges() []Edge {
	edges := make([]Edge, len(p))
	for i := range p {
		edges[i] = p.Edge(i)
	}
	return edges
}

// ImagePoints converts the polygon back to image points for drawing.
func (p Polygon) ImagePoints() []image.Point {
	pts := make([]image.Point, len(p))
	for i, v := range p {
		pts[i] = v.ImagePoint()
	}
	return pts
}

// Area returns the absolute area of the polygon (shoelace formula).
func (p Polygon) Area() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var twice int
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		twice += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	if twice < 0 {
		twice = -twice
	}
	return float64(twice) / 2
}
