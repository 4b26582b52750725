package design

import (
	"github.com/alexiusacademia/gorcm/internal/section"
)

// CheckStatus is a pass/fail verdict. Engineering failures live here,
// never in error returns.
type CheckStatus string

const (
	Pass CheckStatus = "pass"
	Fail CheckStatus = "fail"
)

// Check is one named capacity or serviceability verdict. Ratio is the
// demand-capacity quotient (required/provided); ≤ 1 passes. A check
// with zero demand passes with ratio 0.
type Check struct {
	Required float64     `json:"required"`
	Provided float64     `json:"provided"`
	Ratio    float64     `json:"ratio"`
	Status   CheckStatus `json:"status"`
}

// Slack beyond which a marginal ratio still passes; floating point,
// not engineering judgment.
const checkTolerance = 1e-9

func newCheck(required, provided float64) Check {
	c := Check{
		Required: required,
		Provided: provided,
		Ratio:    demandRatio(required, provided),
	}
	if c.Ratio <= 1+checkTolerance {
		c.Status = Pass
	} else {
		c.Status = Fail
	}
	return c
}

// boolCheck expresses a qualitative verdict (e.g. tension-controlled)
// in the same shape; required/provided carry the compared quantities.
func boolCheck(ok bool, required, provided float64) Check {
	c := Check{
		Required: required,
		Provided: provided,
		Ratio:    demandRatio(required, provided),
	}
	if ok {
		c.Status = Pass
	} else {
		c.Status = Fail
	}
	return c
}

// passedCheck is a zero-demand check that trivially passes.
func passedCheck() Check {
	return Check{Status: Pass}
}

// Checks is the fixed set of named verdicts on a design. The field
// names are a JSON contract with the validator and report consumers.
type Checks struct {
	FlexuralStrength Check `json:"flexuralStrength"`
	ShearStrength    Check `json:"shearStrength"`
	AxialStrength    Check `json:"axialStrength"`
	Ductility        Check `json:"ductility"`
	MinimumSteel     Check `json:"minimumSteel"`
	Deflection       Check `json:"deflection"`
	CrackWidth       Check `json:"crackWidth"`
}

// AllPass reports the conjunction of every check status.
func (c Checks) AllPass() bool {
	for _, ch := range []Check{
		c.FlexuralStrength, c.ShearStrength, c.AxialStrength,
		c.Ductility, c.MinimumSteel, c.Deflection, c.CrackWidth,
	} {
		if ch.Status != Pass {
			return false
		}
	}
	return true
}

// Detailing is the development-length block consumed by drawings.
type Detailing struct {
	DevelopmentLength float64 `json:"developmentLength"`       // mm
	HookLength        float64 `json:"hookLength"`              // mm
	TieSpacingMax     float64 `json:"tieSpacingMax,omitempty"` // mm, columns
	BarSpacing        float64 `json:"barSpacing,omitempty"`    // mm on centers, slabs
}

// Reinforcement is the full selected (discretized) reinforcement of a
// member. Consumers annotate drawings from this block alone; nothing
// here needs re-derivation.
type Reinforcement struct {
	Main        Selection         `json:"main"`
	Compression *Selection        `json:"compression,omitempty"`
	Stirrups    *StirrupSelection `json:"stirrups,omitempty"`
	Detailing   Detailing         `json:"detailing"`
}

// DesignResult is the complete output of one design call: resolved
// geometry and grades, the selected reinforcement, the fixed check set,
// and the cost estimate. It is a transient value, directly JSON-
// serializable for the UI layer.
type DesignResult struct {
	Kind          section.Kind        `json:"elementKind"`
	Geometry      section.Rectangular `json:"geometry"`
	ConcreteGrade string              `json:"concreteGrade"`
	SteelGrade    string              `json:"steelGrade"`

	EffectiveDepth float64 `json:"effectiveDepth"` // mm, with selected bars in place

	// GoverningCombination is set when demand was factored from
	// unfactored loads rather than supplied directly.
	GoverningCombination string `json:"governingCombination,omitempty"`
	Forces               Forces `json:"forces"` // demand actually designed for

	Flexure        FlexuralRequirement  `json:"flexure"`
	Shear          *ShearRequirement    `json:"shear,omitempty"`
	Capacity       FlexuralCapacity     `json:"capacity"`
	Serviceability ServiceabilityResult `json:"serviceability"`

	Reinforcement Reinforcement `json:"reinforcement"`
	Checks        Checks        `json:"checks"`
	Cost          CostBreakdown `json:"cost"`

	IsValid bool `json:"isValid"`
}
