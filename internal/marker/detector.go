package marker

import (
	"errors"

	"marker-tracker/pkg/geometry"

	"github.com/rs/zerolog"
)

// Detection is the full trace of one decoded marker, kept for diagnostics.
type Detection struct {
	Record
	Bits         CodeBits
	BaseMidpoint geometry.PointInt
	Axis         []geometry.PointInt
}

// FrameResult holds everything DetectMarkers found in one frame.
type FrameResult struct {
	Detections []Detection
	Mismatched int // Candidates that were not marker-shaped
	Rejected   int // Marker-shaped candidates whose code could not be read
}

// Records returns the records of all detections in candidate order.
func (r FrameResult) Records() []Record {
	records := make([]Record, len(r.Detections))
	for i, d := range r.Detections {
		records[i] = d.Record
	}
	return records
}

// Detector runs the marker pipeline on polygon candidates.
type Detector struct {
	Params Params
	Log    zerolog.Logger
}

// NewDetector creates a Detector. A zero logger discards output.
func NewDetector(params Params, log zerolog.Logger) *Detector {
	return &Detector{
		Params: params,
		Log:    log.With().Str("component", "marker").Logger(),
	}
}

// ReadMarker runs corner location, axis rasterization, code sampling and
// decoding on a single polygon.
func (d *Detector) ReadMarker(poly geometry.Polygon, gray GrayImage, annot Annotator) (Detection, error) {
	annot = annotatorOrNop(annot)

	corner := LocateCorner(poly, d.Params)
	if err := corner.Err(); err != nil {
		return Detection{}, err
	}
	annot.Corner(corner.Corner)

	axis := Rasterize(corner.Corner, corner.BaseMidpoint)
	bits, err := SampleCode(axis, gray, d.Params, annot)
	if err != nil {
		return Detection{}, err
	}

	id, offset := Decode(bits, d.Params)
	annot.Label(axis[0], id)

	return Detection{
		Record: Record{
			ID:     id,
			Origin: axis[0],
			Offset: offset,
		},
		Bits:         bits,
		BaseMidpoint: corner.BaseMidpoint,
		Axis:         axis,
	}, nil
}

// DetectMarkers reads every candidate of one frame. Candidates that fail are
// skipped; the frame index and object are copied into each record.
func (d *Detector) DetectMarkers(gray GrayImage, polygons []geometry.Polygon, frame, object int, annot Annotator) FrameResult {
	var result FrameResult
	for i, poly := range polygons {
		det, err := d.ReadMarker(poly, gray, annot)
		switch {
		case err == nil:
			det.Frame = frame
			det.Object = object
			result.Detections = append(result.Detections, det)
			d.Log.Debug().
				Int("frame", frame).
				Int("candidate", i).
				Str("bits", det.Bits.String()).
				Uint8("id", uint8(det.ID)).
				Msg("marker decoded")
		case errors.Is(err, ErrGeometryMismatch):
			result.Mismatched++
			d.Log.Debug().Int("frame", frame).Int("candidate", i).Err(err).Msg("candidate skipped")
		default:
			result.Rejected++
			d.Log.Warn().Int("frame", frame).Int("candidate", i).Err(err).Msg("marker code unreadable")
		}
	}
	return result
}
