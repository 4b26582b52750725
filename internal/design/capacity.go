package design

import (
	"math"

	"github.com/alexiusacademia/gorcm/internal/material"
	"github.com/alexiusacademia/gorcm/internal/nscp"
)

// FlexuralCapacity is the recomputed capacity of a section with its
// selected, discretized reinforcement in place.
type FlexuralCapacity struct {
	PhiMn float64 `json:"phiMn"` // kN·m
	Mn    float64 `json:"mn"`    // kN·m

	A        float64 `json:"a"`        // stress block depth (mm)
	C        float64 `json:"c"`        // neutral axis depth (mm)
	CLimit   float64 `json:"cLimit"`   // tension-controlled ceiling (mm)
	EpsilonT float64 `json:"epsilonT"`
	Phi      float64 `json:"phi"`

	TensionControlled bool `json:"tensionControlled"`
}

// VerifyFlexure recomputes the nominal and design moment capacity from
// the provided (discrete) steel areas. Strain compatibility sets φ; a
// compression-controlled outcome is a ductility failure regardless of
// raw strength.
func VerifyFlexure(asProvided, asCompProvided, b, d, dPrime float64, mat material.Set) FlexuralCapacity {
	fc := mat.Concrete.Fc
	fy := mat.Steel.Fy
	beta1 := mat.Concrete.Beta1()

	cap := FlexuralCapacity{CLimit: nscp.CTensionControlled(d)}
	if asProvided <= 0 || b <= 0 || d <= 0 {
		return cap
	}

	// Compression steel assumed at yield for the block equilibrium;
	// conservative for the tension-controlled sections we certify.
	asNet := asProvided - asCompProvided
	if asNet < 0 {
		asNet = 0
	}

	cap.A = asNet * fy / (0.85 * fc * b)
	cap.C = cap.A / beta1
	if cap.C <= 0 {
		// All tension steel balanced by compression steel: strain state
		// is fully ductile.
		cap.C = 1e-9
	}
	cap.EpsilonT = nscp.EpsilonCU * (d - cap.C) / cap.C
	cap.Phi = nscp.Phi(cap.EpsilonT, fy)
	cap.TensionControlled = cap.C <= cap.CLimit

	mn := asNet*fy*(d-cap.A/2) + asCompProvided*fy*(d-dPrime)
	cap.Mn = mn / 1e6
	cap.PhiMn = cap.Phi * cap.Mn

	return cap
}

// VerifyShear returns φVn (kN) for the selected stirrup arrangement.
func VerifyShear(st StirrupSelection, b, d float64, mat material.Set) float64 {
	fc := mat.Concrete.Fc
	fy := mat.Steel.Fy

	vn := nscp.Vc(fc, b, d)
	if st.Spacing > 0 && st.Legs > 0 {
		vs := st.LegArea() * fy * d / st.Spacing
		// Beyond Vs,max the web crushes before the stirrups work.
		if max := nscp.VsMax(fc, b, d); vs > max {
			vs = max
		}
		vn += vs
	}
	return nscp.PhiShear * vn / 1000
}

// VerifyAxial returns φPn (kN) for a tied column with the provided
// longitudinal steel, per the maximum-axial-strength clause.
func VerifyAxial(astProvided, ag float64, mat material.Set) float64 {
	fc := mat.Concrete.Fc
	fy := mat.Steel.Fy

	pn := 0.80 * (0.85*fc*(ag-astProvided) + fy*astProvided)
	return nscp.PhiCompression * pn / 1000
}

// VerifyConcreteShear returns φVc (kN), the shear check for members
// without stirrups (slabs).
func VerifyConcreteShear(b, d float64, mat material.Set) float64 {
	return nscp.PhiShear * nscp.Vc(mat.Concrete.Fc, b, d) / 1000
}

// demandRatio is the demand-capacity quotient used by every check.
func demandRatio(required, provided float64) float64 {
	if required == 0 {
		return 0
	}
	if provided <= 0 {
		return math.Inf(1)
	}
	return required / provided
}
