package design

import (
	"math"

	"github.com/alexiusacademia/gorcm/internal/material"
	"github.com/alexiusacademia/gorcm/internal/nscp"
)

// SpacingLimits itemizes every stirrup spacing constraint that applied.
// The governing spacing is the minimum over all of them simultaneously,
// never a priority order.
type SpacingLimits struct {
	Strength         float64 `json:"strength"`         // from Vs demand (mm)
	MinReinforcement float64 `json:"minReinforcement"` // from Av,min (mm)
	DepthFraction    float64 `json:"depthFraction"`    // d/2 or d/4 (mm)
	Absolute         float64 `json:"absolute"`         // code ceiling (mm)
}

// Min returns the tightest of all limits.
func (l SpacingLimits) Min() float64 {
	s := l.Strength
	for _, v := range []float64{l.MinReinforcement, l.DepthFraction, l.Absolute} {
		if v < s {
			s = v
		}
	}
	return s
}

// ShearRequirement is the output of the shear designer.
type ShearRequirement struct {
	Vc         float64 `json:"vc"`         // concrete contribution (kN)
	VsRequired float64 `json:"vsRequired"` // required steel contribution (kN)

	StirrupDia float64       `json:"stirrupDiameter"` // mm
	Legs       int           `json:"legs"`
	Spacing    float64       `json:"spacing"` // governing, constructible (mm)
	Limits     SpacingLimits `json:"limits"`

	// ExceedsVsMax flags a section too small to carry the shear with
	// stirrups at any spacing; the capacity check reports the failure.
	ExceedsVsMax bool `json:"exceedsVsMax,omitempty"`
}

// Construction increments for stirrup spacing (mm).
const (
	spacingIncrement = 10.0
	spacingFloor     = 50.0
)

// DesignShear computes the concrete shear contribution, the required
// stirrup contribution, and a constructible two-legged stirrup spacing
// for a factored shear vu (kN) on a b×d section (mm).
func DesignShear(vu, b, d float64, mat material.Set) ShearRequirement {
	fc := mat.Concrete.Fc
	fy := mat.Steel.Fy

	vcN := nscp.Vc(fc, b, d)
	vnReqN := math.Max(vu, 0) * 1000 / nscp.PhiShear
	vsN := math.Max(0, vnReqN-vcN)

	req := ShearRequirement{
		Vc:         vcN / 1000,
		VsRequired: vsN / 1000,
		StirrupDia: StirrupBarDia,
		Legs:       2,
	}

	av := StirrupSelection{Dia: StirrupBarDia, Legs: 2}.LegArea()

	// Every limit is computed; the governing spacing is their minimum.
	req.Limits.Absolute = nscp.StirrupSpacingMax
	req.Limits.MinReinforcement = av / nscp.AvMinPerLength(fc, b, fy)

	if vsN > nscp.VsHalfDepthThreshold(fc, b, d) {
		req.Limits.DepthFraction = d / 4
	} else {
		req.Limits.DepthFraction = d / 2
	}

	if vsN > 0 {
		req.Limits.Strength = av * fy * d / vsN
	} else {
		req.Limits.Strength = nscp.StirrupSpacingMax
	}

	req.ExceedsVsMax = vsN > nscp.VsMax(fc, b, d)

	s := req.Limits.Min()
	s = math.Floor(s/spacingIncrement) * spacingIncrement
	if s < spacingFloor {
		s = spacingFloor
	}
	req.Spacing = s

	return req
}
