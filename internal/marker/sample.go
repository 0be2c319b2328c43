package marker

import (
	"fmt"

	"marker-tracker/pkg/geometry"
)

// SampleIndices returns the axis indices of the five slots for an axis of n
// pixels, innermost first. Slot k sits at k*step before the perspective
// correction is applied.
func SampleIndices(n int, params Params) [CodeLength]int {
	step := int(float64(n) / 10 * params.StepScale)

	var idx [CodeLength]int
	for k := range idx {
		correction := params.OtherCorrection
		if k == 0 {
			correction = params.FirstCorrection
		}
		idx[k] = int(float64((k+1)*step) * correction)
	}
	return idx
}

// SampleCode reads the five slots along axis. A slot is bright (0) when its
// intensity is above params.BrightLevel and dark (1) otherwise.
func SampleCode(axis []geometry.PointInt, gray GrayImage, params Params, annot Annotator) (CodeBits, error) {
	if len(axis) == 0 {
		return CodeBits{}, ErrEmptyAxis
	}
	annot = annotatorOrNop(annot)

	var bits CodeBits
	for k, i := range SampleIndices(len(axis), params) {
		if i < 0 || i >= len(axis) {
			return CodeBits{}, fmt.Errorf("slot %d: index %d, axis length %d: %w",
				k+1, i, len(axis), ErrSampleOutOfRange)
		}
		p := axis[i]
		v, ok := gray.Intensity(p.X, p.Y)
		if !ok {
			return CodeBits{}, fmt.Errorf("slot %d: pixel (%d,%d) outside image: %w",
				k+1, p.X, p.Y, ErrSampleOutOfRange)
		}
		if v <= params.BrightLevel {
			bits[k] = 1
		}
		annot.Sample(p)
	}
	return bits, nil
}
