package design

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gorcm/internal/section"
)

func costReinforcement() Reinforcement {
	return Reinforcement{
		Main:     Selection{Dia: 20, Count: 4, ProvidedArea: 1256.64},
		Stirrups: &StirrupSelection{Dia: 10, Legs: 2, Spacing: 200},
	}
}

func TestEstimateCostPerMeterDefault(t *testing.T) {
	g := section.Rectangular{Width: 300, Height: 500, ClearCover: 40}
	c := EstimateCost(g, costReinforcement())

	// 0.3 × 0.5 × 1.0 m
	if c.ConcreteVolume != 0.15 {
		t.Errorf("concrete volume = %v m³, want 0.15 per meter", c.ConcreteVolume)
	}
	// Two sides plus soffit: 2·0.5 + 0.3
	if c.FormworkArea != 1.3 {
		t.Errorf("formwork area = %v m², want 1.3", c.FormworkArea)
	}
	if c.SteelWeight <= 0 {
		t.Errorf("steel weight = %v, want positive", c.SteelWeight)
	}
	if c.Total <= 0 {
		t.Errorf("total = %v, want positive", c.Total)
	}
}

func TestEstimateCostScalesWithSpan(t *testing.T) {
	g := section.Rectangular{Width: 300, Height: 500, ClearCover: 40}
	perMeter := EstimateCost(g, costReinforcement())

	g.Span = 6000
	full := EstimateCost(g, costReinforcement())

	if got, want := full.ConcreteVolume, 6*perMeter.ConcreteVolume; math.Abs(got-want) > 0.01 {
		t.Errorf("concrete volume = %v, want %v for a 6 m span", got, want)
	}
	if full.Total <= perMeter.Total {
		t.Errorf("6 m member costs %v, not above per-meter %v", full.Total, perMeter.Total)
	}
}

func TestEstimateCostSums(t *testing.T) {
	g := section.Rectangular{Width: 300, Height: 500, ClearCover: 40, Span: 6000}
	c := EstimateCost(g, costReinforcement())

	if got, want := c.Material, round2(c.Concrete+c.Steel+c.Formwork); got != want {
		t.Errorf("material = %v, want sum of line items %v", got, want)
	}
	if got, want := c.Total, round2(c.Material+c.Labor+c.Overhead); got != want {
		t.Errorf("total = %v, want %v", got, want)
	}
	if got, want := c.Overhead, round2((c.Material+c.Labor)*0.10); got != want {
		t.Errorf("overhead = %v, want 10%% of material+labor %v", got, want)
	}
}

func TestEstimateCostNoStirrups(t *testing.T) {
	g := section.Rectangular{Width: 1000, Height: 150, ClearCover: 20, Span: 4000}
	r := Reinforcement{Main: Selection{Dia: 16, Count: 5, ProvidedArea: 1005.3}}

	c := EstimateCost(g, r)
	if c.SteelWeight <= 0 || c.Total <= 0 {
		t.Errorf("slab cost: steel %v, total %v, want positive", c.SteelWeight, c.Total)
	}
}
