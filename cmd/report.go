package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcm/internal/design"
	"github.com/alexiusacademia/gorcm/internal/diagram"
	"github.com/alexiusacademia/gorcm/internal/section"
)

// printDesignReport renders a full design result to stdout in the
// standard report layout.
func printDesignReport(res *design.DesignResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("          NSCP 2015 %s DESIGN\n", upperKind(res.Kind))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Println("SECTION AND MATERIALS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Fprintf(w, "  Width (b):\t%.0f mm\n", res.Geometry.Width)
	fmt.Fprintf(w, "  Height (h):\t%.0f mm\n", res.Geometry.Height)
	fmt.Fprintf(w, "  Clear Cover:\t%.0f mm\n", res.Geometry.ClearCover)
	if res.Geometry.Span > 0 {
		fmt.Fprintf(w, "  Span (L):\t%.0f mm\n", res.Geometry.Span)
	}
	fmt.Fprintf(w, "  Effective Depth (d):\t%.1f mm\n", res.EffectiveDepth)
	fmt.Fprintf(w, "  Concrete:\t%s\n", res.ConcreteGrade)
	fmt.Fprintf(w, "  Steel:\t%s\n", res.SteelGrade)
	w.Flush()
	fmt.Println()

	fmt.Println("FACTORED DEMAND:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if res.GoverningCombination != "" {
		fmt.Fprintf(w, "  Governing Combination:\t%s\n", res.GoverningCombination)
	}
	if res.Forces.Moment != 0 {
		fmt.Fprintf(w, "  Moment (Mu):\t%.2f kN-m\n", res.Forces.Moment)
	}
	if res.Forces.Shear != 0 {
		fmt.Fprintf(w, "  Shear (Vu):\t%.2f kN\n", res.Forces.Shear)
	}
	if res.Forces.Axial != 0 {
		fmt.Fprintf(w, "  Axial (Pu):\t%.2f kN\n", res.Forces.Axial)
	}
	w.Flush()
	fmt.Println()

	printFlexureSection(res)
	printReinforcementSection(res)
	printShearSection(res)
	printServiceabilitySection(res)

	fmt.Println("COST ESTIMATE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Concrete:\t%.3f m³\t%10.2f\n", res.Cost.ConcreteVolume, res.Cost.Concrete)
	fmt.Fprintf(w, "  Steel:\t%.1f kg\t%10.2f\n", res.Cost.SteelWeight, res.Cost.Steel)
	fmt.Fprintf(w, "  Formwork:\t%.2f m²\t%10.2f\n", res.Cost.FormworkArea, res.Cost.Formwork)
	fmt.Fprintf(w, "  Labor:\t\t%10.2f\n", res.Cost.Labor)
	fmt.Fprintf(w, "  Overhead:\t\t%10.2f\n", res.Cost.Overhead)
	fmt.Fprintf(w, "  Total:\t\t%10.2f\n", res.Cost.Total)
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawChecks(res.Checks))

	verdict := "DESIGN ADEQUATE"
	if !res.IsValid {
		verdict = "DESIGN NOT ADEQUATE"
	}
	fmt.Println(diagram.DrawSummaryBox(verdict, summaryLines(res)))
	fmt.Println()
}

func printFlexureSection(res *design.DesignResult) {
	fmt.Println("FLEXURAL DESIGN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Required As:\t%.1f mm²\n", res.Flexure.As)
	fmt.Fprintf(w, "  Minimum As:\t%.1f mm²\n", res.Flexure.AsMin)
	fmt.Fprintf(w, "  Maximum As (singly):\t%.1f mm²\n", res.Flexure.AsMax)
	if res.Flexure.DoublyReinforced {
		fmt.Fprintf(w, "  Required As' (compression):\t%.1f mm²\n", res.Flexure.AsComp)
	}
	fmt.Fprintf(w, "  ρ required:\t%.5f\n", res.Flexure.Rho)
	fmt.Fprintf(w, "  ρ min / ρ max:\t%.5f / %.5f\n", res.Flexure.RhoMin, res.Flexure.RhoMax)
	w.Flush()

	if res.Flexure.Clamped {
		fmt.Println("  Note: demand exceeds the section's reinforceable capacity;")
		fmt.Println("        steel was capped and the strength check reports the shortfall.")
	}
	fmt.Println()

	fmt.Println("CAPACITY VERIFICATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nominal Moment (Mn):\t%.2f kN-m\n", res.Capacity.Mn)
	fmt.Fprintf(w, "  Design Moment (φMn):\t%.2f kN-m\n", res.Capacity.PhiMn)
	fmt.Fprintf(w, "  Neutral Axis (c):\t%.1f mm\n", res.Capacity.C)
	fmt.Fprintf(w, "  Steel Strain (εt):\t%.5f\n", res.Capacity.EpsilonT)
	fmt.Fprintf(w, "  φ:\t%.3f\n", res.Capacity.Phi)
	tc := "No"
	if res.Capacity.TensionControlled {
		tc = "Yes"
	}
	fmt.Fprintf(w, "  Tension-Controlled:\t%s\n", tc)
	w.Flush()
	fmt.Println()
}

func printReinforcementSection(res *design.DesignResult) {
	fmt.Println("SELECTED REINFORCEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	main := res.Reinforcement.Main
	fmt.Fprintf(w, "  Main Bars:\t%d-φ%.0f (%s)\t%.1f mm² provided\n",
		main.Count, main.Dia, main.Layout, main.ProvidedArea)
	if comp := res.Reinforcement.Compression; comp != nil {
		fmt.Fprintf(w, "  Compression Bars:\t%d-φ%.0f\t%.1f mm² provided\n",
			comp.Count, comp.Dia, comp.ProvidedArea)
	}
	if st := res.Reinforcement.Stirrups; st != nil {
		label := "Stirrups"
		if res.Kind == section.Column {
			label = "Ties"
		}
		fmt.Fprintf(w, "  %s:\tφ%.0f @ %.0f mm o.c. (%d legs)\n",
			label, st.Dia, st.Spacing, st.Legs)
	}
	det := res.Reinforcement.Detailing
	fmt.Fprintf(w, "  Development Length:\t%.0f mm\n", det.DevelopmentLength)
	fmt.Fprintf(w, "  Hook Length:\t%.0f mm\n", det.HookLength)
	if det.BarSpacing > 0 {
		fmt.Fprintf(w, "  Bar Spacing:\t%.0f mm o.c.\n", det.BarSpacing)
	}
	w.Flush()
	fmt.Println()
}

func printShearSection(res *design.DesignResult) {
	if res.Shear == nil {
		return
	}
	fmt.Println("SHEAR DESIGN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Concrete Shear (Vc):\t%.2f kN\n", res.Shear.Vc)
	fmt.Fprintf(w, "  Required Steel Shear (Vs):\t%.2f kN\n", res.Shear.VsRequired)
	fmt.Fprintf(w, "  Spacing Limits (mm):\tstrength %.0f, min-Av %.0f, depth %.0f, max %.0f\n",
		res.Shear.Limits.Strength, res.Shear.Limits.MinReinforcement,
		res.Shear.Limits.DepthFraction, res.Shear.Limits.Absolute)
	fmt.Fprintf(w, "  Governing Spacing:\t%.0f mm\n", res.Shear.Spacing)
	w.Flush()
	if res.Shear.ExceedsVsMax {
		fmt.Println("  Note: Vs exceeds the web-crushing ceiling; enlarge the section.")
	}
	fmt.Println()
}

func printServiceabilitySection(res *design.DesignResult) {
	fmt.Println("SERVICEABILITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	svc := res.Serviceability
	fmt.Fprintf(w, "  Cracking Moment (Mcr):\t%.2f kN-m\n", svc.Mcr)
	fmt.Fprintf(w, "  Effective Inertia (Ie):\t%.3e mm⁴\n", svc.Ie)
	if svc.DeflectionLimit > 0 {
		fmt.Fprintf(w, "  Deflection:\t%.2f mm (limit %.2f mm)\n", svc.Deflection, svc.DeflectionLimit)
	} else {
		fmt.Fprintf(w, "  Deflection:\tnot checked (no span)\n")
	}
	fmt.Fprintf(w, "  Crack Width:\t%.3f mm (limit %.2f mm)\n", svc.CrackWidth, svc.CrackWidthLimit)
	w.Flush()
	fmt.Println()
}

func upperKind(k section.Kind) string {
	switch k {
	case section.Beam:
		return "BEAM"
	case section.Column:
		return "COLUMN"
	case section.Slab:
		return "SLAB"
	}
	return "MEMBER"
}

func summaryLines(res *design.DesignResult) []string {
	main := res.Reinforcement.Main
	lines := []string{
		fmt.Sprintf("Main Bars: %d-φ%.0f (As = %.0f mm²)", main.Count, main.Dia, main.ProvidedArea),
		fmt.Sprintf("φMn = %.2f kN-m", res.Capacity.PhiMn),
	}
	if comp := res.Reinforcement.Compression; comp != nil {
		lines = append(lines,
			fmt.Sprintf("Compression Bars: %d-φ%.0f", comp.Count, comp.Dia))
	}
	if st := res.Reinforcement.Stirrups; st != nil {
		lines = append(lines,
			fmt.Sprintf("Stirrups: φ%.0f @ %.0f mm o.c.", st.Dia, st.Spacing))
	}
	lines = append(lines, fmt.Sprintf("Estimated Cost: %.2f", res.Cost.Total))
	return lines
}
