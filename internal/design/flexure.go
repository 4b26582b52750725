package design

import (
	"math"

	"github.com/alexiusacademia/gorcm/internal/material"
	"github.com/alexiusacademia/gorcm/internal/nscp"
)

// FlexuralRequirement is the continuous steel demand produced by the
// flexural designer, before discretization into bars.
type FlexuralRequirement struct {
	As     float64 `json:"as"`               // tension steel (mm²)
	AsComp float64 `json:"asComp,omitempty"` // compression steel (mm²)

	AsMin float64 `json:"asMin"` // mm²
	AsMax float64 `json:"asMax"` // mm², singly-reinforced ceiling

	Rho         float64 `json:"rho"`
	RhoMin      float64 `json:"rhoMin"`
	RhoMax      float64 `json:"rhoMax"`
	RhoBalanced float64 `json:"rhoBalanced"`

	DoublyReinforced bool `json:"doublyReinforced"`
	// Clamped is set when an extreme demand pushed the closed-form
	// solve past its valid range and the result was clamped to ρmax.
	// The capacity check surfaces the shortfall.
	Clamped bool `json:"clamped,omitempty"`
}

// DesignFlexure computes the required tension (and, past the singly-
// reinforced ceiling, compression) steel area for a factored moment.
//
// mu is in N·mm; b, d and dPrime in mm. The resistance coefficient
// carries the flexural φ so that a bar selection matching the required
// area verifies at a demand-capacity ratio of 1.0.
func DesignFlexure(mu, b, d, dPrime float64, mat material.Set) FlexuralRequirement {
	fc := mat.Concrete.Fc
	fy := mat.Steel.Fy
	beta1 := mat.Concrete.Beta1()

	req := FlexuralRequirement{
		RhoMin:      mat.RhoMin(),
		RhoMax:      mat.RhoMax(),
		RhoBalanced: mat.RhoBalanced(),
	}
	req.AsMin = req.RhoMin * b * d
	req.AsMax = req.RhoMax * b * d

	if mu <= 0 {
		// No moment demand still gets the code minimum.
		req.As = req.AsMin
		req.Rho = req.RhoMin
		return req
	}

	phi := nscp.PhiFlexure
	rn := mu / (phi * b * d * d)

	// Nominal resistance coefficient at the ρmax ceiling.
	rnMax := req.RhoMax * fy * (1 - req.RhoMax*fy/(1.7*fc))

	if rn <= rnMax {
		rho := solveRho(rn, fc, fy)
		if rho < 0 {
			// Negative discriminant on malformed extreme input: clamp
			// to ρmax rather than propagating a numeric error.
			rho = req.RhoMax
			req.Clamped = true
		}
		if rho < req.RhoMin {
			rho = req.RhoMin
		}
		req.Rho = rho
		req.As = rho * b * d
		return req
	}

	// Doubly reinforced: concrete-steel couple at ρmax carries what it
	// can, a symmetric steel couple carries the rest.
	req.DoublyReinforced = true
	as1 := req.AsMax
	muMax := phi * rnMax * b * d * d
	deltaMu := mu - muMax

	leverArm := d - dPrime
	if leverArm <= 0 {
		// Compression steel depth at or below tension steel: no couple
		// possible. Clamp to the singly-reinforced ceiling.
		req.As = as1
		req.Rho = req.RhoMax
		req.Clamped = true
		return req
	}

	as2 := deltaMu / (phi * fy * leverArm)

	// Compression steel stress from strain compatibility at the ρmax
	// neutral axis; an unyielded compression steel needs more area.
	aMax := req.RhoMax * fy * d / (0.85 * fc)
	cMax := aMax / beta1
	fsc := fy
	if cMax > 0 {
		epsSc := nscp.EpsilonCU * (cMax - dPrime) / cMax
		if epsSc <= 0 {
			req.Clamped = true
		} else {
			fsc = math.Min(epsSc*nscp.Es, fy)
		}
	}

	req.As = as1 + as2
	req.AsComp = as2 * fy / fsc
	req.Rho = req.As / (b * d)
	return req
}

// solveRho inverts Rn = ρ·fy·(1 − ρ·fy/(1.7·f'c)) via the standard
// closed form. Returns a negative value when the discriminant is
// negative (Rn beyond what the section can ever carry).
func solveRho(rn, fc, fy float64) float64 {
	term := 1 - 2*rn/(0.85*fc)
	if term < 0 {
		return -1
	}
	return (0.85 * fc / fy) * (1 - math.Sqrt(term))
}
