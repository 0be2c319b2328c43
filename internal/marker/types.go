// Package marker locates, reads and decodes pentagon fiducial markers.
//
// A marker is a white pentagon with a notch: two short sides meet at a
// concave corner and a third short side forms the base. Five black or white
// slots lie along the axis from the concave corner to the middle of the base
// and encode a 5-bit identifier.
package marker

import (
	"strings"

	"marker-tracker/pkg/geometry"
)

// CodeLength is the number of slots on a marker.
const CodeLength = 5

// CodeBits holds the slot values in sampling order, closest to the corner first.
// A 0 is a bright (empty) slot, a 1 a dark one.
type CodeBits [CodeLength]uint8

// String renders the bits in sampling order, e.g. "10110".
func (b CodeBits) String() string {
	var sb strings.Builder
	for _, bit := range b {
		sb.WriteByte('0' + bit)
	}
	return sb.String()
}

// ID is a decoded marker identifier in [0, 31].
type ID uint8

// Offset is the nominal planar position assigned to a marker ID.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Record is one decoded marker in one frame.
type Record struct {
	Frame  int               `json:"frame"`
	Object int               `json:"object"` // Tracked object the video belongs to
	ID     ID                `json:"mark_id"`
	Origin geometry.PointInt `json:"origin"` // Axis origin (concave corner)
	Offset Offset            `json:"offset"`
}

// GrayImage is a read-only 8-bit intensity buffer.
// Intensity reports false for pixels outside the image.
type GrayImage interface {
	Intensity(x, y int) (uint8, bool)
}

// Annotator receives visual feedback while a marker is being read.
// Implementations draw on the caller's overlay; all methods are optional
// side effects and must not influence decoding.
type Annotator interface {
	Corner(p geometry.PointInt)
	Sample(p geometry.PointInt)
	Label(origin geometry.PointInt, id ID)
}

// nopAnnotator discards all feedback.
type nopAnnotator struct{}

func (nopAnnotator) Corner(geometry.PointInt)    {}
func (nopAnnotator) Sample(geometry.PointInt)    {}
func (nopAnnotator) Label(geometry.PointInt, ID) {}

func annotatorOrNop(a Annotator) Annotator {
	if a == nil {
		return nopAnnotator{}
	}
	return a
}
