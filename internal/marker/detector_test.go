package marker

import (
	"testing"

	"marker-tracker/pkg/geometry"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pinchedFrame paints the slots of pinchedPentagon so that they read "10110".
// The axis runs from (100,100) to (77,300), one pixel per row, so slot k is
// read on row 100+index.
func pinchedFrame() *grayBuffer {
	gray := newGrayBuffer(200, 400, 255)
	for _, idx := range []int{35, 99, 132} {
		gray.fillRow(100+idx, 0)
	}
	return gray
}

func TestReadMarker(t *testing.T) {
	d := NewDetector(DefaultParams(), zerolog.Nop())
	rec := &recorder{}

	det, err := d.ReadMarker(pinchedPentagon(), pinchedFrame(), rec)
	require.NoError(t, err)

	assert.Equal(t, "10110", det.Bits.String())
	assert.Equal(t, ID(13), det.ID)
	assert.Equal(t, geometry.Pt(100, 100), det.Origin)
	assert.Equal(t, geometry.Pt(77, 300), det.BaseMidpoint)
	assert.Len(t, det.Axis, 201)
	assert.Equal(t, det.Origin, det.Axis[0])

	assert.Equal(t, []geometry.PointInt{geometry.Pt(100, 100)}, rec.corners)
	assert.Len(t, rec.samples, CodeLength)
	assert.Equal(t, []ID{13}, rec.labels)
}

func TestDetectMarkersSkipsBadCandidates(t *testing.T) {
	d := NewDetector(DefaultParams(), zerolog.Nop())

	// A marker whose axis runs off the bottom of the image.
	offImage := geometry.Polygon{
		geometry.Pt(60, 350),
		geometry.Pt(100, 350),
		geometry.Pt(100, 390),
		geometry.Pt(100, 550),
		geometry.Pt(55, 550),
	}
	polygons := []geometry.Polygon{
		regularPentagon(500, 500, 140),
		pinchedPentagon(),
		offImage,
	}

	gray := newGrayBuffer(200, 400, 255)
	result := d.DetectMarkers(gray, polygons, 42, 4, nil)

	assert.Equal(t, 1, result.Mismatched)
	assert.Equal(t, 1, result.Rejected)
	require.Len(t, result.Detections, 1)

	records := result.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 42, records[0].Frame)
	assert.Equal(t, 4, records[0].Object)
	assert.Equal(t, ID(0), records[0].ID, "all slots bright")
	assert.InDelta(t, 70.0, records[0].Offset.X, 1e-9)
}

func TestDetectMarkersEmptyFrame(t *testing.T) {
	d := NewDetector(DefaultParams(), zerolog.Nop())
	result := d.DetectMarkers(newGrayBuffer(10, 10, 0), nil, 0, 1, nil)

	assert.Empty(t, result.Detections)
	assert.Empty(t, result.Records())
	assert.Zero(t, result.Mismatched)
	assert.Zero(t, result.Rejected)
}
