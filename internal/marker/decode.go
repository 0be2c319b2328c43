package marker

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MaxID is the largest identifier five slots can encode.
const MaxID ID = 1<<CodeLength - 1

// DecodeID reads the bits from the base towards the corner, i.e. in reverse
// sampling order, as an unsigned binary number.
func DecodeID(bits CodeBits) ID {
	var id ID
	for i := CodeLength - 1; i >= 0; i-- {
		id = id<<1 | ID(bits[i]&1)
	}
	return id
}

// OffsetFor maps an ID onto its nominal planar position: a point on a
// circle of params.Radius, params.AngleStepDegrees apart per ID. Z is 0.
func OffsetFor(id ID, params Params) Offset {
	angle := params.AngleStepDegrees * math.Pi / 180 * float64(id)
	v := r2.Scale(params.Radius, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)})
	return Offset{X: v.X, Y: v.Y}
}

// Decode turns sampled bits into an ID and its planar offset.
func Decode(bits CodeBits, params Params) (ID, Offset) {
	id := DecodeID(bits)
	return id, OffsetFor(id, params)
}
