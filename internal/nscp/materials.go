package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Section 410.2.7.3
	Beta1Max = 0.85 // for f'c <= 28 MPa
	Beta1Min = 0.65 // for f'c >= 55 MPa

	// Strain limits
	EpsilonCU = 0.003 // Ultimate concrete strain (Section 410.2.2.1)

	// Strength reduction factors (Section 409.3.2)
	PhiFlexure       = 0.90 // Tension-controlled sections
	PhiShear         = 0.75 // Shear and torsion
	PhiCompression   = 0.65 // Compression-controlled (tied)
	PhiCompressionSp = 0.75 // Compression-controlled (spiral)

	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Lightweight concrete modification factor (normal-weight)
	Lambda = 1.0

	// Steel density for weight takeoffs (kg/m³)
	SteelDensity = 7850.0
)

// Beta1 calculates the factor for equivalent rectangular stress block.
// 0.85 up to f'c = 28 MPa, falling linearly to 0.65 at f'c = 55 MPa.
func Beta1(fc float64) float64 {
	switch {
	case fc <= 28:
		return Beta1Max
	case fc >= 55:
		return Beta1Min
	}
	return Beta1Max - (Beta1Max-Beta1Min)*(fc-28)/(55-28)
}

// Ec calculates the concrete modulus of elasticity (MPa)
// NSCP 2015 Section 419.2.2, normal-weight concrete
func Ec(fc float64) float64 {
	return 4700 * math.Sqrt(fc)
}

// Fr calculates the modulus of rupture (MPa)
// NSCP 2015 Section 419.2.3
func Fr(fc float64) float64 {
	return 0.62 * Lambda * math.Sqrt(fc)
}

// Phi calculates the strength reduction factor based on strain
// NSCP 2015 Section 409.3.2
func Phi(epsilonT float64, fy float64) float64 {
	epsilonTY := fy / Es

	if epsilonT >= epsilonTY+0.003 {
		// Tension-controlled
		return PhiFlexure
	} else if epsilonT <= epsilonTY {
		// Compression-controlled
		return PhiCompression
	}
	// Transition zone
	return PhiCompression + (PhiFlexure-PhiCompression)*(epsilonT-epsilonTY)/0.003
}

// RhoMin calculates minimum flexural reinforcement ratio
// NSCP 2015 Section 409.6.1.2
func RhoMin(fc, fy float64) float64 {
	// ρmin = max(√f'c / 4fy, 1.4/fy)
	rho1 := math.Sqrt(fc) / (4 * fy)
	rho2 := 1.4 / fy
	return math.Max(rho1, rho2)
}

// RhoBalanced calculates the balanced reinforcement ratio.
// The 600/(600+fy) term is Es·εcu expressed in MPa.
func RhoBalanced(fc, fy float64) float64 {
	beta1 := Beta1(fc)
	return 0.85 * beta1 * (fc / fy) * (600 / (600 + fy))
}

// RhoMax calculates the maximum reinforcement ratio, 0.75·ρb,
// the ductility ceiling for flexural design.
func RhoMax(fc, fy float64) float64 {
	return 0.75 * RhoBalanced(fc, fy)
}

// CTensionControlled returns the neutral-axis depth limit for a
// tension-controlled section, from strain compatibility at εt = 0.004.
func CTensionControlled(d float64) float64 {
	return d * EpsilonCU / (EpsilonCU + 0.004)
}
