// Package design is the member design engine: deterministic numeric
// algorithms that take geometry, materials and factored demand and
// produce a constructible reinforcement layout, a fixed set of
// pass/fail checks, and a cost estimate.
//
// Every function here is pure. Design calls share no state, so callers
// may design independent members concurrently without coordination.
package design

import (
	"math"

	"github.com/alexiusacademia/gorcm/internal/material"
	"github.com/alexiusacademia/gorcm/internal/nscp"
	"github.com/alexiusacademia/gorcm/internal/section"
)

// Trial bar diameter used to place the compression-steel centroid
// before the selector has chosen actual bars (mm).
const trialBarDia = 20.0

// trialDepth places the tension-steel centroid for the continuous
// solve using the largest catalog bar. Conservative on purpose: the
// actual effective depth with any selected bar can only be equal or
// deeper, so the discretized selection never verifies short of demand.
func trialDepth(g section.Rectangular, stirrupDia float64) float64 {
	largest := BarCatalog[len(BarCatalog)-1].Dia
	return g.EffectiveDepth(largest, stirrupDia)
}

// Design runs the full pipeline for one member and returns its result.
// Only precondition violations return an error; every engineering
// outcome, including clearly inadequate designs, is a successful return
// with failing checks.
func Design(in DesignInput) (*DesignResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	forces, combo := resolveForces(in)

	switch in.Kind {
	case section.Column:
		return designColumn(in, forces, combo), nil
	case section.Slab:
		return designSlab(in, forces, combo), nil
	default:
		return designBeam(in, forces, combo), nil
	}
}

// resolveForces returns the demand to design for. Supplied factored
// forces win; otherwise unfactored loads are pushed through the NSCP
// combinations and the governing one is reported.
func resolveForces(in DesignInput) (Forces, string) {
	if !in.Forces.IsZero() || in.Loads.IsZero() {
		return in.Forces, ""
	}

	mu, mCombo := nscp.Governing(in.Loads.Moment, nscp.LoadCombinations)
	vu, vCombo := nscp.Governing(in.Loads.Shear, nscp.LoadCombinations)
	pu, pCombo := nscp.Governing(in.Loads.Axial, nscp.LoadCombinations)

	label := mCombo.Description
	if label == "" {
		label = vCombo.Description
	}
	if label == "" {
		label = pCombo.Description
	}

	return Forces{Moment: mu, Shear: vu, Axial: pu}, label
}

func designBeam(in DesignInput, f Forces, combo string) *DesignResult {
	g := in.Geometry
	mat := in.Material

	mu := math.Abs(f.Moment) * 1e6 // kN·m -> N·mm
	vu := math.Abs(f.Shear)

	// Trial effective depth for the continuous solve; the discrete bar
	// choice moves the centroid, so d is recomputed afterwards.
	dTrial := trialDepth(g, StirrupBarDia)
	dPrime := g.CompressionSteelDepth(trialBarDia, StirrupBarDia)

	flex := DesignFlexure(mu, g.Width, dTrial, dPrime, mat)

	main := SelectBars(flex.As, BeamLimits)
	var comp *Selection
	var compArea float64
	if flex.AsComp > 0 {
		sel := SelectBars(flex.AsComp, BeamLimits)
		comp = &sel
		compArea = sel.ProvidedArea
	}

	d := g.EffectiveDepth(main.Dia, StirrupBarDia)

	shear := DesignShear(vu, g.Width, d, mat)
	stirrups := &StirrupSelection{Dia: shear.StirrupDia, Legs: shear.Legs, Spacing: shear.Spacing}

	capacity := VerifyFlexure(main.ProvidedArea, compArea, g.Width, d, dPrime, mat)
	phiVn := VerifyShear(*stirrups, g.Width, d, mat)

	svc := CheckServiceability(ServiceabilityParams{
		Geometry:              g,
		Material:              mat,
		As:                    main.ProvidedArea,
		BarDia:                main.Dia,
		BarCount:              main.Count,
		StirrupDia:            StirrupBarDia,
		D:                     d,
		Mu:                    mu,
		DeflectionDenominator: in.Constraints.DeflectionDenominator(),
		CrackLimit:            in.Constraints.CrackLimit(),
	})

	reinf := Reinforcement{
		Main:        main,
		Compression: comp,
		Stirrups:    stirrups,
		Detailing: Detailing{
			DevelopmentLength: nscp.DevelopmentLength(mat.Steel.Fy, mat.Concrete.Fc, main.Dia),
			HookLength:        nscp.HookLength(mat.Steel.Fy, mat.Concrete.Fc, main.Dia),
		},
	}

	checks := Checks{
		FlexuralStrength: newCheck(mu/1e6, capacity.PhiMn),
		ShearStrength:    newCheck(vu, phiVn),
		AxialStrength:    beamAxialCheck(f, main.ProvidedArea+compArea, g.Area(), mat),
		Ductility:        boolCheck(capacity.TensionControlled, capacity.C, capacity.CLimit),
		MinimumSteel:     newCheck(flex.AsMin, main.ProvidedArea),
		Deflection:       deflectionCheck(svc),
		CrackWidth:       newCheck(svc.CrackWidth, svc.CrackWidthLimit),
	}

	return &DesignResult{
		Kind:                 section.Beam,
		Geometry:             g,
		ConcreteGrade:        mat.Concrete.Grade(),
		SteelGrade:           mat.Steel.Grade(),
		EffectiveDepth:       d,
		GoverningCombination: combo,
		Forces:               f,
		Flexure:              flex,
		Shear:                &shear,
		Capacity:             capacity,
		Serviceability:       svc,
		Reinforcement:        reinf,
		Checks:               checks,
		Cost:                 EstimateCost(g, reinf),
		IsValid:              checks.AllPass(),
	}
}

func designColumn(in DesignInput, f Forces, combo string) *DesignResult {
	g := in.Geometry
	mat := in.Material
	fc := mat.Concrete.Fc
	fy := mat.Steel.Fy

	pu := math.Abs(f.Axial) * 1000 // kN -> N
	mu := math.Abs(f.Moment) * 1e6
	vu := math.Abs(f.Shear)
	ag := g.Area()

	d := g.EffectiveDepth(trialBarDia, StirrupBarDia)
	dPrime := g.CompressionSteelDepth(trialBarDia, StirrupBarDia)

	// Longitudinal steel from the tied-column axial clause:
	// φPn = 0.65·0.80·(0.85·f'c·(Ag−Ast) + fy·Ast).
	astAxial := (pu/(nscp.PhiCompression*0.80) - 0.85*fc*ag) / (fy - 0.85*fc)
	if astAxial < 0 {
		astAxial = 0
	}

	// Moment, if any, adds a symmetric steel-couple demand.
	var flex FlexuralRequirement
	if mu > 0 {
		flex = DesignFlexure(mu, g.Width, d, dPrime, mat)
	} else {
		flex = FlexuralRequirement{
			RhoMin:      mat.RhoMin(),
			RhoMax:      mat.RhoMax(),
			RhoBalanced: mat.RhoBalanced(),
		}
	}

	astMin := 0.01 * ag
	astMax := 0.08 * ag
	astReq := math.Max(math.Max(astAxial, flex.As+flex.AsComp), astMin)
	if astReq > astMax {
		astReq = astMax // capacity check surfaces the shortfall
	}

	minBars := int(math.Ceil(g.Perimeter() / 300))
	if minBars < ColumnLimits.MinCount {
		minBars = ColumnLimits.MinCount
	}
	long := SelectBars(astReq, SelectLimits{MinCount: minBars, MaxCount: ColumnLimits.MaxCount})

	// Tie spacing: detailing caps, tightened by shear demand if any.
	tieMax := nscp.TieSpacingMax(long.Dia, StirrupBarDia, g.LeastDimension())
	tieSpacing := tieMax
	var shearReq *ShearRequirement
	if vu > 0 {
		sr := DesignShear(vu, g.Width, d, mat)
		shearReq = &sr
		if sr.Spacing < tieSpacing {
			tieSpacing = sr.Spacing
		}
	}
	ties := &StirrupSelection{Dia: StirrupBarDia, Legs: 2, Spacing: tieSpacing}

	phiPn := VerifyAxial(long.ProvidedArea, ag, mat)

	// Moment capacity of the symmetric steel couple alone; conservative
	// for a tied column carrying its axial load through the clause above.
	capacity := VerifyFlexure(long.ProvidedArea/2, long.ProvidedArea/2, g.Width, d, dPrime, mat)

	flexCheck := passedCheck()
	if mu > 0 {
		flexCheck = newCheck(mu/1e6, capacity.PhiMn)
	}
	shearCheck := passedCheck()
	if vu > 0 {
		shearCheck = newCheck(vu, VerifyShear(*ties, g.Width, d, mat))
	}

	reinf := Reinforcement{
		Main:     long,
		Stirrups: ties,
		Detailing: Detailing{
			DevelopmentLength: nscp.DevelopmentLength(fy, fc, long.Dia),
			HookLength:        nscp.HookLength(fy, fc, long.Dia),
			TieSpacingMax:     tieMax,
		},
	}

	checks := Checks{
		FlexuralStrength: flexCheck,
		ShearStrength:    shearCheck,
		AxialStrength:    newCheck(pu/1000, phiPn),
		Ductility:        passedCheck(), // compression member; φ = 0.65 already binds
		MinimumSteel:     newCheck(astMin, long.ProvidedArea),
		Deflection:       passedCheck(),
		CrackWidth:       passedCheck(),
	}

	return &DesignResult{
		Kind:                 section.Column,
		Geometry:             g,
		ConcreteGrade:        mat.Concrete.Grade(),
		SteelGrade:           mat.Steel.Grade(),
		EffectiveDepth:       d,
		GoverningCombination: combo,
		Forces:               f,
		Flexure:              flex,
		Shear:                shearReq,
		Capacity:             capacity,
		Reinforcement:        reinf,
		Checks:               checks,
		Cost:                 EstimateCost(g, reinf),
		IsValid:              checks.AllPass(),
	}
}

func designSlab(in DesignInput, f Forces, combo string) *DesignResult {
	g := in.Geometry
	mat := in.Material

	mu := math.Abs(f.Moment) * 1e6
	vu := math.Abs(f.Shear)

	dTrial := trialDepth(g, 0)

	flex := DesignFlexure(mu, g.Width, dTrial, g.CompressionSteelDepth(trialBarDia, 0), mat)

	// Temperature/shrinkage floor for slabs.
	asTemp := 0.0018 * g.Width * g.Height
	asMin := math.Max(flex.AsMin, asTemp)
	required := math.Max(flex.As, asMin)

	// Bar count bracketed by the spacing caps: min(3h, 450) above, a
	// 75 mm placement clearance below.
	maxSpacing := math.Min(3*g.Height, 450)
	minCount := int(math.Ceil(g.Width / maxSpacing))
	if minCount < 2 {
		minCount = 2
	}
	maxCount := int(g.Width / 75)
	if maxCount < minCount {
		maxCount = minCount
	}
	main := SelectBars(required, SelectLimits{MinCount: minCount, MaxCount: maxCount})

	d := g.EffectiveDepth(main.Dia, 0)
	barSpacing := math.Floor(g.Width/float64(main.Count)/spacingIncrement) * spacingIncrement

	capacity := VerifyFlexure(main.ProvidedArea, 0, g.Width, d, g.CompressionSteelDepth(main.Dia, 0), mat)

	// One-way shear on concrete alone: slabs carry no stirrups.
	phiVc := VerifyConcreteShear(g.Width, d, mat)

	svc := CheckServiceability(ServiceabilityParams{
		Geometry:              g,
		Material:              mat,
		As:                    main.ProvidedArea,
		BarDia:                main.Dia,
		BarCount:              main.Count,
		StirrupDia:            0,
		D:                     d,
		Mu:                    mu,
		DeflectionDenominator: in.Constraints.DeflectionDenominator(),
		CrackLimit:            in.Constraints.CrackLimit(),
	})

	reinf := Reinforcement{
		Main: main,
		Detailing: Detailing{
			DevelopmentLength: nscp.DevelopmentLength(mat.Steel.Fy, mat.Concrete.Fc, main.Dia),
			HookLength:        nscp.HookLength(mat.Steel.Fy, mat.Concrete.Fc, main.Dia),
			BarSpacing:        barSpacing,
		},
	}

	checks := Checks{
		FlexuralStrength: newCheck(mu/1e6, capacity.PhiMn),
		ShearStrength:    newCheck(vu, phiVc),
		AxialStrength:    passedCheck(),
		Ductility:        boolCheck(capacity.TensionControlled, capacity.C, capacity.CLimit),
		MinimumSteel:     newCheck(asMin, main.ProvidedArea),
		Deflection:       deflectionCheck(svc),
		CrackWidth:       newCheck(svc.CrackWidth, svc.CrackWidthLimit),
	}

	return &DesignResult{
		Kind:                 section.Slab,
		Geometry:             g,
		ConcreteGrade:        mat.Concrete.Grade(),
		SteelGrade:           mat.Steel.Grade(),
		EffectiveDepth:       d,
		GoverningCombination: combo,
		Forces:               f,
		Flexure:              flex,
		Capacity:             capacity,
		Serviceability:       svc,
		Reinforcement:        reinf,
		Checks:               checks,
		Cost:                 EstimateCost(g, reinf),
		IsValid:              checks.AllPass(),
	}
}

func deflectionCheck(svc ServiceabilityResult) Check {
	if svc.DeflectionLimit <= 0 {
		// No span, no deflection demand.
		return passedCheck()
	}
	return newCheck(svc.Deflection, svc.DeflectionLimit)
}

func beamAxialCheck(f Forces, providedSteel, ag float64, mat material.Set) Check {
	if f.Axial == 0 {
		return passedCheck()
	}
	return newCheck(math.Abs(f.Axial), VerifyAxial(providedSteel, ag, mat))
}
