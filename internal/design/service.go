package design

import (
	"math"

	"github.com/alexiusacademia/gorcm/internal/material"
	"github.com/alexiusacademia/gorcm/internal/nscp"
	"github.com/alexiusacademia/gorcm/internal/section"
)

// Blended load factor used to back service-level actions out of
// factored demand when only Mu is known.
const serviceLoadFactor = 1.4

// ServiceabilityParams collects everything the deflection and
// crack-width checks need.
type ServiceabilityParams struct {
	Geometry section.Rectangular
	Material material.Set

	As         float64 // provided tension steel (mm²)
	BarDia     float64 // main bar diameter (mm)
	BarCount   int
	StirrupDia float64 // 0 for members without stirrups
	D          float64 // effective depth (mm)

	Mu float64 // factored moment (N·mm)

	DeflectionDenominator float64 // span/N limit
	CrackLimit            float64 // mm
}

// ServiceabilityResult holds both serviceability checks' quantities.
type ServiceabilityResult struct {
	// Deflection
	Ig              float64 `json:"ig"`  // mm⁴
	Icr             float64 `json:"icr"` // mm⁴
	Ie              float64 `json:"ie"`  // mm⁴
	Mcr             float64 `json:"mcr"` // kN·m
	Deflection      float64 `json:"deflection"`      // mm, 0 when no span
	DeflectionLimit float64 `json:"deflectionLimit"` // mm, 0 when no span

	// Crack width
	CrackWidth      float64 `json:"crackWidth"`      // mm
	CrackWidthLimit float64 `json:"crackWidthLimit"` // mm
}

// CheckServiceability runs the cracked-section deflection check and the
// Gergely-Lutz crack-width check. Both are monotonic in the provided
// steel area: more steel stiffens the section and distributes cracking.
func CheckServiceability(p ServiceabilityParams) ServiceabilityResult {
	g := p.Geometry
	ec := p.Material.Concrete.ElasticModulus()
	n := p.Material.ModularRatio()

	res := ServiceabilityResult{
		Ig:              g.Ig(),
		CrackWidthLimit: p.CrackLimit,
	}

	// Cracking moment Mcr = fr·Ig/yt.
	mcrNmm := p.Material.Concrete.RuptureModulus() * res.Ig / g.Yt()
	res.Mcr = mcrNmm / 1e6

	// Cracked transformed inertia via the neutral-axis factor
	// k = √(2ρn + (ρn)²) − ρn.
	b := g.Width
	d := p.D
	rho := 0.0
	if b > 0 && d > 0 {
		rho = p.As / (b * d)
	}
	rn := rho * n
	k := math.Sqrt(2*rn+rn*rn) - rn
	kd := k * d
	res.Icr = b*kd*kd*kd/3 + n*p.As*(d-kd)*(d-kd)

	// Branson effective inertia, Ig-capped.
	ma := p.Mu / serviceLoadFactor
	if ma > mcrNmm {
		ratio := mcrNmm / ma
		res.Ie = res.Icr + (res.Ig-res.Icr)*ratio*ratio*ratio
	} else {
		res.Ie = res.Ig
	}
	if res.Ie > res.Ig {
		res.Ie = res.Ig
	}

	// Midspan deflection of a uniformly loaded simple span with
	// midspan moment Ma: Δ = 5·Ma·L²/(48·Ec·Ie). No span, no check.
	if g.Span > 0 && res.Ie > 0 {
		res.Deflection = 5 * ma * g.Span * g.Span / (48 * ec * res.Ie)
		res.DeflectionLimit = g.Span / p.DeflectionDenominator
	}

	res.CrackWidth = crackWidth(g, p, kd)

	return res
}

// crackWidth evaluates the SI Gergely-Lutz expression
// w = 2.2·β·fs·∛(dc·A)/Es with fs = 0.6·fy.
func crackWidth(g section.Rectangular, p ServiceabilityParams, kd float64) float64 {
	if p.BarCount < 1 {
		return 0
	}

	fs := 0.6 * p.Material.Steel.Fy
	dc := g.BarCenterCover(p.BarDia, p.StirrupDia)

	// Effective tension area per bar.
	a := 2 * dc * g.Width / float64(p.BarCount)

	// β: distance ratio from neutral axis to tension face vs to steel.
	beta := 1.2
	if p.D > kd {
		beta = (g.Height - kd) / (p.D - kd)
	}

	return 2.2 * beta * fs * math.Cbrt(dc*a) / nscp.Es
}
