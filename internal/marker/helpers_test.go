package marker

import (
	"marker-tracker/pkg/geometry"
)

// grayBuffer is an in-memory GrayImage for tests.
type grayBuffer struct {
	w, h int
	pix  []uint8
}

func newGrayBuffer(w, h int, fill uint8) *grayBuffer {
	g := &grayBuffer{w: w, h: h, pix: make([]uint8, w*h)}
	for i := range g.pix {
		g.pix[i] = fill
	}
	return g
}

func (g *grayBuffer) Intensity(x, y int) (uint8, bool) {
	if !(geometry.RectInt{Width: g.w, Height: g.h}).Contains(geometry.Pt(x, y)) {
		return 0, false
	}
	return g.pix[y*g.w+x], true
}

func (g *grayBuffer) set(x, y int, v uint8) {
	g.pix[y*g.w+x] = v
}

func (g *grayBuffer) fillRow(y int, v uint8) {
	for x := 0; x < g.w; x++ {
		g.set(x, y, v)
	}
}

// recorder is an Annotator that remembers what it was shown.
type recorder struct {
	corners []geometry.PointInt
	samples []geometry.PointInt
	labels  []ID
}

func (r *recorder) Corner(p geometry.PointInt)       { r.corners = append(r.corners, p) }
func (r *recorder) Sample(p geometry.PointInt)       { r.samples = append(r.samples, p) }
func (r *recorder) Label(_ geometry.PointInt, id ID) { r.labels = append(r.labels, id) }

// pinchedPentagon has two 40px sides meeting at (100,100), a 45px base
// from (100,300) to (55,300) and two long flanks.
func pinchedPentagon() geometry.Polygon {
	return geometry.Polygon{
		geometry.Pt(60, 100),
		geometry.Pt(100, 100),
		geometry.Pt(100, 140),
		geometry.Pt(100, 300),
		geometry.Pt(55, 300),
	}
}
