package diagram

import (
	"strings"
	"testing"

	"github.com/alexiusacademia/gorcm/internal/design"
	"github.com/alexiusacademia/gorcm/internal/material"
	"github.com/alexiusacademia/gorcm/internal/section"
)

func designedBeam(t *testing.T, mu float64) *design.DesignResult {
	t.Helper()
	res, err := design.Design(design.DesignInput{
		Kind:     section.Beam,
		Geometry: section.Rectangular{Width: 300, Height: 500, ClearCover: 40},
		Material: material.Set{
			Concrete: material.Concrete{Fc: 30},
			Steel:    material.Steel{Fy: 400},
		},
		Forces: design.Forces{Moment: mu, Shear: 120},
	})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestFromResult(t *testing.T) {
	res := designedBeam(t, 180)
	data := FromResult(res, 400)

	if data.Width != 300 || data.Height != 500 {
		t.Errorf("section %vx%v, want 300x500", data.Width, data.Height)
	}
	if data.NeutralAxisDepth <= 0 || data.NeutralAxisDepth >= data.Height {
		t.Errorf("neutral axis %v outside section", data.NeutralAxisDepth)
	}
	if data.TensionBars == "" {
		t.Error("tension bar label empty")
	}
	if !data.TensionYields {
		t.Error("tension steel should yield in a moderately reinforced beam")
	}
	if data.IsDoubly {
		t.Error("singly reinforced result flagged doubly")
	}
}

func TestFromResultDoubly(t *testing.T) {
	res := designedBeam(t, 900)
	data := FromResult(res, 400)

	if !data.IsDoubly {
		t.Fatal("doubly reinforced result not flagged")
	}
	if data.CompBars == "" || data.CompSteelArea <= 0 {
		t.Error("compression steel missing from drawing model")
	}
	if data.CompSteelY <= data.TensionSteelY {
		t.Error("compression steel must sit above the tension steel")
	}
}

func TestDrawSection(t *testing.T) {
	out := DrawSection(FromResult(designedBeam(t, 180), 400))

	for _, want := range []string{"SECTION", "STRAIN", "N.A.", "Tension steel", "εcu"} {
		if !strings.Contains(out, want) {
			t.Errorf("section drawing missing %q", want)
		}
	}
}

func TestDrawChecks(t *testing.T) {
	res := designedBeam(t, 180)
	out := DrawChecks(res.Checks)

	if !strings.Contains(out, "Flexural strength") {
		t.Error("check table missing flexural row")
	}
	if strings.Contains(out, "✗") {
		t.Errorf("adequate design should draw no failing mark:\n%s", out)
	}

	// An impossible demand flips marks to failures.
	bad := designedBeam(t, 3000)
	out = DrawChecks(bad.Checks)
	if !strings.Contains(out, "✗") {
		t.Error("overloaded design should draw failing marks")
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("DESIGN ADEQUATE", []string{"Main Bars: 4-φ20", "φMn = 184.20 kN-m"})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("box has %d lines, want 5", len(lines))
	}
	if !strings.Contains(lines[1], "DESIGN ADEQUATE") {
		t.Errorf("title missing: %q", lines[1])
	}
	// Every row closes at the same column.
	width := len([]rune(lines[0]))
	for i, l := range lines {
		if len([]rune(l)) != width {
			t.Errorf("line %d width %d, want %d", i, len([]rune(l)), width)
		}
	}
}
