// Package contour finds pentagon marker candidates in video frames.
package contour

// Params holds the candidate extraction settings.
type Params struct {
	// Markers right next to the object's base are misdetected, so the
	// left part of the frame is blanked before thresholding.
	MaskColumns int

	// Binary threshold on the grayscale frame. 190 separates the white
	// marker faces well but lets small fake markers through, hence the area check.
	BinaryThreshold float64
	MinContourArea  float64

	// Polygon approximation tolerance as a fraction of the contour perimeter.
	ApproxEpsilon float64

	// Vertex count of an accepted polygon.
	Vertices int
}

// DefaultParams returns the tuned extraction parameters for 1080p footage.
func DefaultParams() Params {
	return Params{
		MaskColumns:     1200,
		BinaryThreshold: 190,
		MinContourArea:  1200,
		ApproxEpsilon:   0.0155,
		Vertices:        5,
	}
}

// WithMask returns a copy of params blanking the given number of left columns.
func (p Params) WithMask(columns int) Params {
	p.MaskColumns = columns
	return p
}

// WithThreshold returns a copy of params with a custom binary threshold.
func (p Params) WithThreshold(level float64) Params {
	p.BinaryThreshold = level
	return p
}

// WithMinArea returns a copy of params with a custom minimum contour area.
func (p Params) WithMinArea(area float64) Params {
	p.MinContourArea = area
	return p
}

// WithEpsilon returns a copy of params with a custom approximation tolerance.
func (p Params) WithEpsilon(fraction float64) Params {
	p.ApproxEpsilon = fraction
	return p
}
