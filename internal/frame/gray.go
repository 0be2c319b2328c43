package frame

import (
	"marker-tracker/internal/marker"
	"marker-tracker/pkg/geometry"

	"gocv.io/x/gocv"
)

// MatGray exposes a single-channel 8-bit Mat as a marker.GrayImage.
type MatGray struct {
	m gocv.Mat
}

var _ marker.GrayImage = MatGray{}

// NewMatGray wraps m without copying; m must outlive the wrapper.
func NewMatGray(m gocv.Mat) MatGray {
	return MatGray{m: m}
}

// Bounds returns the readable pixel area.
func (g MatGray) Bounds() geometry.RectInt {
	return geometry.RectInt{Width: g.m.Cols(), Height: g.m.Rows()}
}

// Intensity returns the pixel at column x, row y.
func (g MatGray) Intensity(x, y int) (uint8, bool) {
	if !g.Bounds().Contains(geometry.Pt(x, y)) {
		return 0, false
	}
	return g.m.GetUCharAt(y, x), true
}
