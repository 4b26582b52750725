package nscp

import "math"

// Development and detailing clause values, NSCP 2015 Section 425

// DevelopmentLength calculates the tension development length (mm) for
// a deformed bar of diameter db using the simplified expressions of
// Section 425.4.2.3 (bottom bars, uncoated, normal-weight concrete).
func DevelopmentLength(fy, fc, db float64) float64 {
	var ld float64
	if db <= 20 {
		ld = fy * db / (2.1 * Lambda * math.Sqrt(fc))
	} else {
		ld = fy * db / (1.7 * Lambda * math.Sqrt(fc))
	}
	return math.Max(ld, 300)
}

// HookLength calculates the development length of a standard 90° hook
// (mm), Section 425.4.3.
func HookLength(fy, fc, db float64) float64 {
	ldh := 0.24 * fy * db / (Lambda * math.Sqrt(fc))
	return math.Max(math.Max(ldh, 8*db), 150)
}

// TieSpacingMax returns the maximum tie spacing for a tied column,
// Section 425.7.2.1: 16 longitudinal bar diameters, 48 tie diameters,
// or the least cross-section dimension.
func TieSpacingMax(dbLong, dbTie, leastDim float64) float64 {
	s := 16 * dbLong
	if 48*dbTie < s {
		s = 48 * dbTie
	}
	if leastDim < s {
		s = leastDim
	}
	return s
}
