package marker

import "marker-tracker/pkg/geometry"

// steepSentinel stands in for dy/dx on vertical lines. Only the comparison
// against 1 matters, so any value above it selects the steep walk.
const steepSentinel = 10.0

// axisPolicy chooses which image axis is the major (always stepped) axis
// of the Bresenham walk.
type axisPolicy struct {
	steep bool // major axis is y
}

func (a axisPolicy) split(p geometry.PointInt) (major, minor int) {
	if a.steep {
		return p.Y, p.X
	}
	return p.X, p.Y
}

func (a axisPolicy) join(major, minor int) geometry.PointInt {
	if a.steep {
		return geometry.PointInt{X: minor, Y: major}
	}
	return geometry.PointInt{X: major, Y: minor}
}

// policyFor picks the walk direction from the slope magnitude.
func policyFor(from, to geometry.PointInt) axisPolicy {
	dx := abs(to.X - from.X)
	dy := abs(to.Y - from.Y)
	slope := steepSentinel
	if dx != 0 {
		slope = float64(dy) / float64(dx)
	}
	return axisPolicy{steep: slope >= 1}
}

// stepDirection returns the per-call steps as {X: xStep, Y: yStep}. The walk
// always advances the major axis by yStep and the minor axis by xStep, so on
// shallow lines the pair is applied to swapped coordinates and the major axis
// only ever moves right. Axes with no displacement step by +1.
func stepDirection(from, to geometry.PointInt, policy axisPolicy) geometry.PointInt {
	left := from.X > to.X
	up := from.Y > to.Y
	down := from.Y < to.Y

	step := geometry.PointInt{X: 1, Y: 1}
	if policy.steep && up {
		step.Y = -1
	}
	switch {
	case !policy.steep && (left || up),
		policy.steep && left && up,
		left && down:
		step.X = -1
	}
	return step
}

// Rasterize returns the pixels of the segment from -> to, using integer
// Bresenham stepping. The result always starts with from and has
// max(|dx|, |dy|)+1 points. It ends with to except on shallow lines drawn
// leftwards, which are walked mirrored to the right of from.
func Rasterize(from, to geometry.PointInt) []geometry.PointInt {
	return walk(from, to, policyFor(from, to))
}

// RasterizeXY is Rasterize on raw coordinates.
func RasterizeXY(x0, y0, x1, y1 int) []geometry.PointInt {
	return Rasterize(geometry.Pt(x0, y0), geometry.Pt(x1, y1))
}

func walk(from, to geometry.PointInt, policy axisPolicy) []geometry.PointInt {
	major, minor := policy.split(from)
	endMajor, endMinor := policy.split(to)
	dMajor := abs(endMajor - major)
	dMinor := abs(endMinor - minor)
	step := stepDirection(from, to, policy)
	stepMajor, stepMinor := step.Y, step.X

	line := make([]geometry.PointInt, 0, dMajor+1)
	line = append(line, from)

	p := 2*dMinor - dMajor
	for i := 0; i < dMajor; i++ {
		prev := minor
		if p >= 0 {
			minor += stepMinor
		}
		p += 2*dMinor - 2*dMajor*abs(minor-prev)
		major += stepMajor
		line = append(line, policy.join(major, minor))
	}
	return line
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
