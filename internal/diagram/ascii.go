// Package diagram renders section and strain diagrams from a design
// result, as terminal ASCII art or as image files via gonum/plot. It
// consumes the result object only and re-derives nothing.
package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gorcm/internal/design"
	"github.com/alexiusacademia/gorcm/internal/nscp"
)

// Data is the drawing model extracted from one design result.
type Data struct {
	// Section (mm)
	Width  float64
	Height float64

	NeutralAxisDepth float64 // c, from compression face
	StressBlockDepth float64 // a, from compression face

	// Reinforcement
	TensionSteelY    float64 // from bottom face
	TensionSteelArea float64
	TensionBars      string // e.g. "4-φ20"
	CompSteelY       float64 // from bottom face, 0 if none
	CompSteelArea    float64
	CompBars         string

	// Strains
	EpsilonCU float64
	EpsilonT  float64
	EpsilonY  float64

	// Stresses (MPa)
	Fc float64 // 0.85·f'c
	Fs float64

	TensionYields bool
	IsDoubly      bool
}

// FromResult builds the drawing model from a design result and the
// material grades it echoes.
func FromResult(res *design.DesignResult, fy float64) Data {
	d := Data{
		Width:            res.Geometry.Width,
		Height:           res.Geometry.Height,
		NeutralAxisDepth: res.Capacity.C,
		StressBlockDepth: res.Capacity.A,
		TensionSteelY:    res.Geometry.Height - res.EffectiveDepth,
		TensionSteelArea: res.Reinforcement.Main.ProvidedArea,
		TensionBars:      fmt.Sprintf("%d-φ%.0f", res.Reinforcement.Main.Count, res.Reinforcement.Main.Dia),
		EpsilonCU:        nscp.EpsilonCU,
		EpsilonT:         res.Capacity.EpsilonT,
		EpsilonY:         fy / nscp.Es,
		Fs:               fy,
	}
	d.TensionYields = d.EpsilonT >= d.EpsilonY

	if comp := res.Reinforcement.Compression; comp != nil {
		d.IsDoubly = true
		d.CompSteelArea = comp.ProvidedArea
		d.CompBars = fmt.Sprintf("%d-φ%.0f", comp.Count, comp.Dia)
		d.CompSteelY = res.Geometry.Height - res.Geometry.ClearCover - design.StirrupBarDia - comp.Dia/2
	}
	return d
}

// DrawSection renders the cross-section with the stress block, neutral
// axis and bar rows.
func DrawSection(data Data) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 20

	naLine := scaleLine(data.NeutralAxisDepth, data.Height, heightChars)
	aLine := scaleLine(data.StressBlockDepth, data.Height, heightChars)
	tensionLine := heightChars - scaleLine(data.TensionSteelY, data.Height, heightChars)
	compLine := heightChars - scaleLine(data.CompSteelY, data.Height, heightChars)

	sb.WriteString("\n")
	sb.WriteString("  SECTION                         STRAIN\n")
	sb.WriteString("  ───────                         ──────\n")

	for i := 0; i <= heightChars; i++ {
		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		case heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		default:
			fill := strings.Repeat(" ", widthChars)
			if i <= aLine {
				fill = strings.Repeat("░", widthChars)
			}
			if data.IsDoubly && i == compLine {
				fill = markBars(fill, 4)
			}
			if i == tensionLine {
				fill = markBars(fill, 6)
			}
			sb.WriteString(fmt.Sprintf("  │%s│", fill))
			if i == naLine {
				sb.WriteString(" ◄─ N.A.")
			}
		}

		sb.WriteString("    ")
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ├── εcu = %.4f", data.EpsilonCU))
		case i == naLine:
			sb.WriteString("  ├── ε = 0")
		case i == tensionLine:
			yieldMark := ""
			if data.TensionYields {
				yieldMark = " (yields)"
			}
			sb.WriteString(fmt.Sprintf("  ├── εt = %.4f%s", data.EpsilonT, yieldMark))
		case i > 0 && i < heightChars:
			sb.WriteString("  │")
		}

		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Tension steel: %s (%.0f mm²)\n", data.TensionBars, data.TensionSteelArea))
	if data.IsDoubly {
		sb.WriteString(fmt.Sprintf("  Compression steel: %s (%.0f mm²)\n", data.CompBars, data.CompSteelArea))
	}
	sb.WriteString(fmt.Sprintf("  N.A. at c = %.1f mm, stress block a = %.1f mm\n", data.NeutralAxisDepth, data.StressBlockDepth))

	return sb.String()
}

// DrawChecks renders the check set as a compact verdict table.
func DrawChecks(checks design.Checks) string {
	rows := []struct {
		name  string
		check design.Check
	}{
		{"Flexural strength", checks.FlexuralStrength},
		{"Shear strength", checks.ShearStrength},
		{"Axial strength", checks.AxialStrength},
		{"Ductility", checks.Ductility},
		{"Minimum steel", checks.MinimumSteel},
		{"Deflection", checks.Deflection},
		{"Crack width", checks.CrackWidth},
	}

	var sb strings.Builder
	sb.WriteString("\n  DESIGN CHECKS\n")
	sb.WriteString("  ─────────────\n")
	for _, r := range rows {
		mark := "✓"
		if r.check.Status != design.Pass {
			mark = "✗"
		}
		if r.check.Ratio > 0 {
			sb.WriteString(fmt.Sprintf("  %s %-20s ratio %.3f\n", mark, r.name, r.check.Ratio))
		} else {
			sb.WriteString(fmt.Sprintf("  %s %-20s -\n", mark, r.name))
		}
	}
	return sb.String()
}

// DrawSummaryBox frames result lines in a titled box.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-2-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func scaleLine(v, total float64, chars int) int {
	if total <= 0 {
		return 0
	}
	line := int(v / total * float64(chars))
	if line < 0 {
		line = 0
	}
	if line > chars {
		line = chars
	}
	return line
}

func markBars(fill string, span int) string {
	mid := len([]rune(fill)) / 2
	runes := []rune(fill)
	marker := []rune("●" + strings.Repeat("─", span-2) + "●")
	copy(runes[mid-span/2:], marker)
	return string(runes)
}
