package nscp

import "math"

// Shear clause values, NSCP 2015 Section 422.5 / 409.7.6

const (
	// Absolute stirrup spacing ceiling (mm)
	StirrupSpacingMax = 300.0
)

// Vc calculates the concrete shear capacity (N) of a rectangular
// section, Section 422.5.5.1.
func Vc(fc, b, d float64) float64 {
	return (Lambda / 6) * math.Sqrt(fc) * b * d
}

// AvMinPerLength calculates the minimum shear reinforcement area per
// unit length of member (mm²/mm), Section 409.6.3.3.
func AvMinPerLength(fc, b, fy float64) float64 {
	a1 := 0.062 * math.Sqrt(fc) * b / fy
	a2 := 0.35 * b / fy
	return math.Max(a1, a2)
}

// VsHalfDepthThreshold returns the steel shear contribution above which
// the d/2 spacing cap tightens to d/4, Section 409.7.6.2.2.
func VsHalfDepthThreshold(fc, b, d float64) float64 {
	return (1.0 / 3.0) * math.Sqrt(fc) * b * d
}

// VsMax returns the upper bound on the steel shear contribution; beyond
// this the section itself must be enlarged, Section 422.5.1.2.
func VsMax(fc, b, d float64) float64 {
	return (2.0 / 3.0) * math.Sqrt(fc) * b * d
}
