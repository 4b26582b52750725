// Package section describes rectangular cross-section geometry and the
// derived properties the design engine needs. All lengths are in mm.
package section

// Rectangular is a rectangular cross-section. Width and Height are the
// outside dimensions; ClearCover is measured to the face of the
// outermost reinforcement (the stirrup or tie).
type Rectangular struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	ClearCover float64 `json:"clearCover"`
	Span       float64 `json:"span,omitempty"` // clear span, 0 when not applicable
}

// Area returns the gross concrete area (mm²).
func (r Rectangular) Area() float64 {
	return r.Width * r.Height
}

// Ig returns the gross moment of inertia about the strong axis (mm⁴).
func (r Rectangular) Ig() float64 {
	return r.Width * r.Height * r.Height * r.Height / 12
}

// Yt returns the distance from the centroid to the extreme tension
// fiber (mm).
func (r Rectangular) Yt() float64 {
	return r.Height / 2
}

// Perimeter returns the section perimeter (mm).
func (r Rectangular) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// LeastDimension returns the smaller of width and height (mm).
func (r Rectangular) LeastDimension() float64 {
	if r.Width < r.Height {
		return r.Width
	}
	return r.Height
}

// EffectiveDepth returns d, the depth to the centroid of the tension
// steel, for a single layer of bars of diameter barDia placed inside
// stirrups of diameter stirrupDia.
func (r Rectangular) EffectiveDepth(barDia, stirrupDia float64) float64 {
	return r.Height - r.ClearCover - stirrupDia - barDia/2
}

// CompressionSteelDepth returns d', the depth to the centroid of
// compression steel measured from the compression face.
func (r Rectangular) CompressionSteelDepth(barDia, stirrupDia float64) float64 {
	return r.ClearCover + stirrupDia + barDia/2
}

// BarCenterCover returns dc, the cover to the center of the tension
// bars measured from the tension face. Used by the crack-width check.
func (r Rectangular) BarCenterCover(barDia, stirrupDia float64) float64 {
	return r.ClearCover + stirrupDia + barDia/2
}

// Classify guesses the element kind from proportions alone: wide, thin
// sections behave as slabs, deep narrow ones as beams. Callers that
// know the kind should say so; this is a fallback for bare geometry.
func (r Rectangular) Classify() Kind {
	switch {
	case r.Width >= 4*r.Height:
		return Slab
	case r.Height >= 1.5*r.Width:
		return Beam
	}
	return Column
}
