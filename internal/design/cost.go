package design

import (
	"math"

	"github.com/alexiusacademia/gorcm/internal/nscp"
	"github.com/alexiusacademia/gorcm/internal/section"
)

// Unit prices (PHP). Flat constants; a costing database is someone
// else's problem.
const (
	concreteUnitPrice = 5500.0 // per m³
	steelUnitPrice    = 62.0   // per kg
	formworkUnitPrice = 480.0  // per m² of contact area
	laborVolumeRate   = 900.0  // per m³ of concrete placed
	laborSteelRate    = 9.0    // per kg of steel fixed
	overheadFactor    = 0.10
)

// Hook and lap allowance added to each stirrup hoop (mm).
const stirrupHookAllowance = 150.0

// CostBreakdown itemizes the estimate. Field names and 2-decimal
// rounding are part of the contract with downstream consumers.
type CostBreakdown struct {
	ConcreteVolume float64 `json:"concreteVolume"` // m³
	SteelWeight    float64 `json:"steelWeight"`    // kg
	FormworkArea   float64 `json:"formworkArea"`   // m²

	Concrete float64 `json:"concrete"`
	Steel    float64 `json:"steel"`
	Formwork float64 `json:"formwork"`
	Material float64 `json:"material"`
	Labor    float64 `json:"labor"`
	Overhead float64 `json:"overhead"`
	Total    float64 `json:"total"`
}

// EstimateCost converts geometry plus the selected reinforcement into
// quantities and cost. Pure reporting arithmetic; no design decisions.
// A member with no span is costed per meter of length.
func EstimateCost(g section.Rectangular, r Reinforcement) CostBreakdown {
	lengthM := 1.0
	if g.Span > 0 {
		lengthM = g.Span / 1000
	}

	var c CostBreakdown
	c.ConcreteVolume = (g.Width / 1000) * (g.Height / 1000) * lengthM

	// Main and compression bars run the member length.
	longArea := r.Main.ProvidedArea
	if r.Compression != nil {
		longArea += r.Compression.ProvidedArea
	}
	steelVolume := (longArea / 1e6) * lengthM // m²·m

	// Stirrup hoops at the selected spacing.
	if r.Stirrups != nil && r.Stirrups.Spacing > 0 {
		hoopLen := 2*((g.Width-2*g.ClearCover)+(g.Height-2*g.ClearCover)) + stirrupHookAllowance
		count := math.Floor(lengthM*1000/r.Stirrups.Spacing) + 1
		stirrupArea := barAreaByDia(r.Stirrups.Dia)
		steelVolume += count * (hoopLen / 1000) * (stirrupArea / 1e6)
	}

	c.SteelWeight = steelVolume * nscp.SteelDensity

	// Contact area: two sides and the soffit.
	c.FormworkArea = (2*(g.Height/1000) + g.Width/1000) * lengthM

	c.Concrete = round2(c.ConcreteVolume * concreteUnitPrice)
	c.Steel = round2(c.SteelWeight * steelUnitPrice)
	c.Formwork = round2(c.FormworkArea * formworkUnitPrice)
	c.Material = round2(c.Concrete + c.Steel + c.Formwork)
	c.Labor = round2(c.ConcreteVolume*laborVolumeRate + c.SteelWeight*laborSteelRate)
	c.Overhead = round2((c.Material + c.Labor) * overheadFactor)
	c.Total = round2(c.Material + c.Labor + c.Overhead)

	c.ConcreteVolume = round2(c.ConcreteVolume)
	c.SteelWeight = round2(c.SteelWeight)
	c.FormworkArea = round2(c.FormworkArea)

	return c
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
