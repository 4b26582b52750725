package design

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gorcm/internal/material"
)

func matC30G400() material.Set {
	return material.Set{
		Concrete: material.Concrete{Fc: 30},
		Steel:    material.Steel{Fy: 400},
	}
}

func TestDesignFlexureSingly(t *testing.T) {
	mat := matC30G400()
	req := DesignFlexure(180e6, 300, 440, 60, mat)

	if req.DoublyReinforced {
		t.Fatal("moderate moment should stay singly reinforced")
	}
	if req.As < 1200 || req.As > 1300 {
		t.Errorf("As = %.1f mm², want around 1250", req.As)
	}
	if req.As < req.AsMin {
		t.Errorf("As %.1f below AsMin %.1f", req.As, req.AsMin)
	}
	if req.As > req.AsMax {
		t.Errorf("As %.1f above singly ceiling %.1f", req.As, req.AsMax)
	}
}

func TestDesignFlexureRoundTrip(t *testing.T) {
	// Steel sized for a moment must verify at that exact moment: the
	// demand-capacity ratio of the continuous solution is 1.0.
	mat := matC30G400()
	const mu = 180e6 // N·mm

	req := DesignFlexure(mu, 300, 440, 60, mat)
	cap := VerifyFlexure(req.As, 0, 300, 440, 60, mat)

	ratio := (mu / 1e6) / cap.PhiMn
	if math.Abs(ratio-1) > 1e-6 {
		t.Errorf("round-trip ratio = %v, want 1.0 (φMn = %.3f kN-m)", ratio, cap.PhiMn)
	}
	if !cap.TensionControlled {
		t.Error("moderately reinforced section should be tension-controlled")
	}
	if cap.Phi != 0.90 {
		t.Errorf("φ = %v, want 0.90", cap.Phi)
	}
}

func TestDesignFlexureDoublyRoundTrip(t *testing.T) {
	// Past the singly ceiling the compression couple carries the excess.
	// The nominal capacity round-trips exactly; the strain-based φ in
	// verification lands below 0.90 because a section at ρmax sits just
	// past the tension-controlled strain limit, and the ductility check
	// is what reports that.
	mat := matC30G400()
	const mu = 420e6

	req := DesignFlexure(mu, 300, 440, 60, mat)
	if !req.DoublyReinforced {
		t.Fatal("want doubly reinforced at this demand")
	}
	if req.AsComp <= 0 {
		t.Fatal("doubly reinforced design must require compression steel")
	}

	cap := VerifyFlexure(req.As, req.AsComp, 300, 440, 60, mat)

	wantMn := mu / 0.9 / 1e6
	if math.Abs(cap.Mn/wantMn-1) > 1e-6 {
		t.Errorf("nominal Mn = %.3f kN-m, want %.3f", cap.Mn, wantMn)
	}
	if cap.TensionControlled {
		t.Error("section at ρmax must not report tension-controlled")
	}
	if cap.Phi >= 0.90 {
		t.Errorf("φ = %v, want below 0.90 past the strain limit", cap.Phi)
	}
}

func TestDesignFlexureMonotonic(t *testing.T) {
	mat := matC30G400()

	prev := 0.0
	for mu := 50e6; mu <= 500e6; mu += 25e6 {
		req := DesignFlexure(mu, 300, 440, 60, mat)
		if req.As <= prev {
			t.Fatalf("As not increasing: %.1f at Mu=%.0f kN-m after %.1f", req.As, mu/1e6, prev)
		}
		prev = req.As
	}
}

func TestDesignFlexureZeroMoment(t *testing.T) {
	mat := matC30G400()
	req := DesignFlexure(0, 300, 440, 60, mat)

	if req.As != req.AsMin {
		t.Errorf("As = %.1f, want code minimum %.1f", req.As, req.AsMin)
	}
	if req.DoublyReinforced || req.Clamped {
		t.Error("zero moment must not flag doubly or clamped")
	}
}

func TestDesignFlexureMinimumGoverns(t *testing.T) {
	mat := matC30G400()
	// Tiny moment: the solved ρ falls below ρmin and the floor applies.
	req := DesignFlexure(5e6, 300, 440, 60, mat)

	if req.As != req.AsMin {
		t.Errorf("As = %.1f, want AsMin %.1f", req.As, req.AsMin)
	}
	if req.Rho != req.RhoMin {
		t.Errorf("ρ = %v, want ρmin %v", req.Rho, req.RhoMin)
	}
}

func TestDesignFlexureInvertedLeverArm(t *testing.T) {
	mat := matC30G400()
	// d' beyond d: no compression couple is possible; the design clamps
	// at the singly ceiling instead of producing negative areas.
	req := DesignFlexure(900e6, 300, 200, 250, mat)

	if !req.Clamped {
		t.Error("want clamped when compression steel sits below tension steel")
	}
	if req.As <= 0 || math.IsNaN(req.As) {
		t.Errorf("As = %v, want positive finite", req.As)
	}
}
