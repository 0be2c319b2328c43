// Package annotate draws marker detections onto BGR frames.
package annotate

import (
	"image"
	"strconv"

	"marker-tracker/internal/marker"
	"marker-tracker/pkg/colorutil"
	"marker-tracker/pkg/geometry"

	"gocv.io/x/gocv"
)

// Overlay draws on a frame it does not own. It implements marker.Annotator.
type Overlay struct {
	img *gocv.Mat
}

var _ marker.Annotator = (*Overlay)(nil)

// NewOverlay returns an Overlay drawing onto img.
func NewOverlay(img *gocv.Mat) *Overlay {
	return &Overlay{img: img}
}

// Polygons outlines every candidate in green.
func (o *Overlay) Polygons(polys []geometry.Polygon) {
	if len(polys) == 0 {
		return
	}
	pts := make([][]image.Point, len(polys))
	for i, p := range polys {
		pts[i] = p.ImagePoints()
	}
	pv := gocv.NewPointsVectorFromPoints(pts)
	defer pv.Close()
	gocv.Polylines(o.img, pv, true, colorutil.Green, 2)
}

// Corner marks the concave corner with a red dot.
func (o *Overlay) Corner(p geometry.PointInt) {
	gocv.Circle(o.img, p.ImagePoint(), 1, colorutil.Red, 6)
}

// Sample marks a slot sample point in blue.
func (o *Overlay) Sample(p geometry.PointInt) {
	gocv.Circle(o.img, p.ImagePoint(), 1, colorutil.Blue, 2)
}

// Label writes the decoded ID at the axis origin, white on a black outline.
func (o *Overlay) Label(origin geometry.PointInt, id marker.ID) {
	text := strconv.Itoa(int(id))
	gocv.PutText(o.img, text, origin.ImagePoint(), gocv.FontHersheySimplex, 1.0, colorutil.Black, 9)
	gocv.PutText(o.img, text, origin.ImagePoint(), gocv.FontHersheySimplex, 1.0, colorutil.White, 3)
}
