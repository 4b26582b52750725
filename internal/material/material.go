// Package material holds the value types for concrete and steel grades
// and their code-derived properties. All values are plain MPa/mm
// quantities; the types carry no state beyond the grade itself.
package material

import (
	"fmt"

	"github.com/alexiusacademia/gorcm/internal/nscp"
)

// Concrete represents a concrete grade by its specified compressive
// strength f'c (MPa).
type Concrete struct {
	Fc float64 `json:"fc"`
}

// ElasticModulus returns Ec (MPa) for normal-weight concrete.
func (c Concrete) ElasticModulus() float64 {
	return nscp.Ec(c.Fc)
}

// RuptureModulus returns the modulus of rupture fr (MPa).
func (c Concrete) RuptureModulus() float64 {
	return nscp.Fr(c.Fc)
}

// Beta1 returns the equivalent stress-block depth factor.
func (c Concrete) Beta1() float64 {
	return nscp.Beta1(c.Fc)
}

// Grade returns a display label, e.g. "C28".
func (c Concrete) Grade() string {
	return fmt.Sprintf("C%.0f", c.Fc)
}

// Steel represents a reinforcing steel grade by its yield strength fy (MPa).
type Steel struct {
	Fy float64 `json:"fy"`
}

// YieldStrain returns εy = fy/Es.
func (s Steel) YieldStrain() float64 {
	return s.Fy / nscp.Es
}

// Grade returns a display label, e.g. "Grade 415".
func (s Steel) Grade() string {
	return fmt.Sprintf("Grade %.0f", s.Fy)
}

// Set pairs the two grades used by one member.
type Set struct {
	Concrete Concrete `json:"concrete"`
	Steel    Steel    `json:"steel"`
}

// ModularRatio returns n = Es/Ec for the pair.
func (m Set) ModularRatio() float64 {
	return nscp.Es / m.Concrete.ElasticModulus()
}

// RhoMin returns the minimum flexural reinforcement ratio for the pair.
func (m Set) RhoMin() float64 {
	return nscp.RhoMin(m.Concrete.Fc, m.Steel.Fy)
}

// RhoMax returns the maximum flexural reinforcement ratio (0.75·ρb).
func (m Set) RhoMax() float64 {
	return nscp.RhoMax(m.Concrete.Fc, m.Steel.Fy)
}

// RhoBalanced returns the balanced reinforcement ratio.
func (m Set) RhoBalanced() float64 {
	return nscp.RhoBalanced(m.Concrete.Fc, m.Steel.Fy)
}

// Common grades, used as CLI defaults and in examples.
var (
	CommonConcreteGrades = []Concrete{{Fc: 21}, {Fc: 28}, {Fc: 35}, {Fc: 42}}
	CommonSteelGrades    = []Steel{{Fy: 275}, {Fy: 415}, {Fy: 520}}
)
