package design

import (
	"math"
)

// Bar is one entry of the standard deformed-bar catalog.
type Bar struct {
	Dia  float64 // mm
	Area float64 // mm²
}

// BarCatalog lists the standard bar sizes in ascending diameter. It is
// immutable process-wide constant data; never modify it.
var BarCatalog = []Bar{
	{10, 78.54},
	{12, 113.10},
	{16, 201.06},
	{20, 314.16},
	{25, 490.87},
	{28, 615.75},
	{32, 804.25},
	{36, 1017.88},
}

// StirrupBarDia is the fixed diameter used for stirrups and ties (mm).
const StirrupBarDia = 10.0

// barAreaByDia looks up the single-bar area for a diameter; 0 when the
// diameter is not in the catalog.
func barAreaByDia(dia float64) float64 {
	for _, b := range BarCatalog {
		if b.Dia == dia {
			return b.Area
		}
	}
	return 0
}

// Layout classifies how the selected bars are arranged. Derived purely
// from the bar count; consumed only as a drawing hint.
type Layout string

const (
	SingleRow Layout = "single-row"
	DoubleRow Layout = "double-row"
	MultiRow  Layout = "multi-row"
)

func layoutForCount(count int) Layout {
	switch {
	case count <= 4:
		return SingleRow
	case count <= 8:
		return DoubleRow
	}
	return MultiRow
}

// Selection is a constructible bar configuration for one reinforcement
// role (main tension, compression, column longitudinal).
type Selection struct {
	Dia          float64 `json:"diameter"`     // mm
	Count        int     `json:"count"`
	ProvidedArea float64 `json:"providedArea"` // mm²
	RequiredArea float64 `json:"requiredArea"` // mm²
	Layout       Layout  `json:"layout"`
}

// SelectLimits bounds the practical bar count for a member role.
type SelectLimits struct {
	MinCount int
	MaxCount int
}

// BeamLimits is the practical count range for beam flexural steel.
var BeamLimits = SelectLimits{MinCount: 2, MaxCount: 12}

// ColumnLimits is the practical count range for column longitudinal steel.
var ColumnLimits = SelectLimits{MinCount: 4, MaxCount: 20}

// Cost-proxy weights for scoring candidate configurations. The area
// term stands in for steel weight; the count term penalizes placement
// complexity.
const (
	areaCostWeight      = 1.0
	placementCostWeight = 40.0
)

// SelectBars maps a required steel area to the lowest-cost (diameter,
// count) pair from the catalog. The search is a full enumeration over
// the catalog; ties score equal, and the ascending scan keeps the
// smaller diameter. A positive required area never yields zero bars.
//
// When no in-range configuration can cover the required area (extreme
// demand), the largest configuration is returned with ProvidedArea
// short of RequiredArea; the capacity check downstream reports the
// failure.
func SelectBars(required float64, lim SelectLimits) Selection {
	if lim.MinCount < 2 {
		lim.MinCount = 2
	}
	if lim.MaxCount < lim.MinCount {
		lim.MaxCount = lim.MinCount
	}

	best := Selection{}
	bestScore := math.Inf(1)

	for _, bar := range BarCatalog {
		count := lim.MinCount
		if required > 0 {
			if n := int(math.Ceil(required / bar.Area)); n > count {
				count = n
			}
		}
		if count > lim.MaxCount {
			continue
		}
		provided := float64(count) * bar.Area
		if provided < required {
			continue
		}
		score := provided*areaCostWeight + float64(count)*placementCostWeight
		if score < bestScore {
			bestScore = score
			best = Selection{
				Dia:          bar.Dia,
				Count:        count,
				ProvidedArea: provided,
				RequiredArea: required,
				Layout:       layoutForCount(count),
			}
		}
	}

	if best.Count == 0 {
		// Demand beyond the catalog: clamp to the largest configuration
		// and let the capacity check fail on the shortfall.
		bar := BarCatalog[len(BarCatalog)-1]
		best = Selection{
			Dia:          bar.Dia,
			Count:        lim.MaxCount,
			ProvidedArea: float64(lim.MaxCount) * bar.Area,
			RequiredArea: required,
			Layout:       layoutForCount(lim.MaxCount),
		}
	}

	return best
}

// StirrupSelection is a constructible stirrup or tie arrangement.
type StirrupSelection struct {
	Dia     float64 `json:"diameter"` // mm
	Legs    int     `json:"legs"`
	Spacing float64 `json:"spacing"`  // mm on centers
}

// LegArea returns the total cross-sectional area of the stirrup legs (mm²).
func (s StirrupSelection) LegArea() float64 {
	return float64(s.Legs) * barAreaByDia(s.Dia)
}
