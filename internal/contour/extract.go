package contour

import (
	"fmt"
	"image"

	"marker-tracker/pkg/geometry"

	"gocv.io/x/gocv"
)

// Candidates holds the polygons found in a frame and the grayscale frame
// they were found in. The caller owns Gray and must Close it.
type Candidates struct {
	Gray     gocv.Mat
	Polygons []geometry.Polygon
	Contours int // Contours inspected before filtering
}

// Close releases the grayscale frame.
func (c *Candidates) Close() error {
	return c.Gray.Close()
}

// ExtractPolygons converts a BGR frame to gray, blanks the masked columns,
// thresholds it and returns every large enough contour that approximates
// to a polygon with params.Vertices corners.
func ExtractPolygons(frame gocv.Mat, params Params) (*Candidates, error) {
	if frame.Empty() {
		return nil, fmt.Errorf("empty frame")
	}

	gray := gocv.NewMat()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	maskColumns(&gray, params.MaskColumns)

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(gray, &thresh, float32(params.BinaryThreshold), 255, gocv.ThresholdBinary)

	contours := gocv.FindContours(thresh, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	result := &Candidates{Gray: gray, Contours: contours.Size()}
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		if gocv.ContourArea(contour) <= params.MinContourArea {
			continue
		}

		epsilon := params.ApproxEpsilon * gocv.ArcLength(contour, true)
		approx := gocv.ApproxPolyDP(contour, epsilon, true)
		if approx.Size() == params.Vertices {
			result.Polygons = append(result.Polygons, geometry.PolygonFromPoints(approx.ToPoints()))
		}
		approx.Close()
	}
	return result, nil
}

// maskColumns zeroes the first n columns of a single-channel image.
func maskColumns(gray *gocv.Mat, n int) {
	if n <= 0 {
		return
	}
	if n > gray.Cols() {
		n = gray.Cols()
	}
	region := gray.Region(image.Rect(0, 0, n, gray.Rows()))
	defer region.Close()
	region.SetTo(gocv.NewScalar(0, 0, 0, 0))
}
