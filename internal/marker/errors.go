package marker

import "errors"

var (
	// ErrGeometryMismatch means a polygon is not a marker: it does not have
	// exactly three short edges, or no two of them meet at a corner.
	ErrGeometryMismatch = errors.New("polygon does not match marker geometry")

	// ErrSampleOutOfRange means a corrected sample index fell outside the
	// axis, or the axis pixel lies outside the image.
	ErrSampleOutOfRange = errors.New("code sample out of range")

	// ErrEmptyAxis is returned when sampling an axis with no pixels.
	ErrEmptyAxis = errors.New("empty marker axis")
)
