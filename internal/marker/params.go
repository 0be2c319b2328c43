package marker

// Params holds the geometric and photometric constants of the marker decoder.
// The defaults were fitted empirically to one camera and marker print size.
type Params struct {
	// Corner search
	ShortEdgeMax float64 // Edges shorter than this (pixels) are marker sides, longer ones are the flanks

	// Code sampling along the axis
	StepScale       float64 // Sample spacing per tenth of the axis length
	FirstCorrection float64 // Perspective pull-back for the innermost slot
	OtherCorrection float64 // Perspective pull-back for slots 2-5
	BrightLevel     uint8   // Intensity above this reads as an empty (white) slot

	// Planar offset encoding
	AngleStepDegrees float64 // Angle per unit of marker ID
	Radius           float64 // Radius of the circle the IDs are laid out on
}

// DefaultParams returns the tuned marker parameters.
func DefaultParams() Params {
	return Params{
		ShortEdgeMax: 80, // Long flanks are well above 80px at 1080p

		// Theoretically the axis splits into five equal slots, but the
		// marker is perspectively warped so the centres are pulled back.
		StepScale:       1.95,
		FirstCorrection: 0.9,
		OtherCorrection: 0.85,
		BrightLevel:     180,

		// No documented derivation; IDs map onto a circle of radius 70.
		AngleStepDegrees: -15,
		Radius:           70,
	}
}

// WithShortEdgeMax returns a copy of params with a different short-edge threshold.
func (p Params) WithShortEdgeMax(maxLen float64) Params {
	p.ShortEdgeMax = maxLen
	return p
}

// WithBrightLevel returns a copy of params with a different slot threshold.
func (p Params) WithBrightLevel(level uint8) Params {
	p.BrightLevel = level
	return p
}

// WithSampling returns a copy of params with custom sample spacing and corrections.
func (p Params) WithSampling(stepScale, first, other float64) Params {
	p.StepScale = stepScale
	p.FirstCorrection = first
	p.OtherCorrection = other
	return p
}

// WithLayout returns a copy of params with a custom ID-to-offset circle.
func (p Params) WithLayout(angleStepDegrees, radius float64) Params {
	p.AngleStepDegrees = angleStepDegrees
	p.Radius = radius
	return p
}
