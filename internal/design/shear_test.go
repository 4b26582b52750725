package design

import (
	"math"
	"testing"
)

func TestDesignShearTypicalBeam(t *testing.T) {
	mat := matC30G400()
	req := DesignShear(120, 300, 440, mat)

	// Vc = (√30/6)·300·440 ≈ 120.5 kN
	if math.Abs(req.Vc-120.5) > 0.5 {
		t.Errorf("Vc = %.2f kN, want about 120.5", req.Vc)
	}
	// Vs = 120/0.75 − Vc ≈ 39.5 kN
	if math.Abs(req.VsRequired-39.5) > 0.5 {
		t.Errorf("Vs = %.2f kN, want about 39.5", req.VsRequired)
	}

	// Light Vs: d/2 = 220 governs over strength and Av,min.
	if req.Spacing != 220 {
		t.Errorf("spacing = %.0f mm, want 220", req.Spacing)
	}
	if req.ExceedsVsMax {
		t.Error("moderate shear flagged as exceeding Vs,max")
	}
}

func TestDesignShearSpacingRespectsEveryLimit(t *testing.T) {
	mat := matC30G400()

	for vu := 20.0; vu <= 600; vu += 35 {
		req := DesignShear(vu, 300, 440, mat)

		lims := []float64{
			req.Limits.Strength,
			req.Limits.MinReinforcement,
			req.Limits.DepthFraction,
			req.Limits.Absolute,
		}
		for _, lim := range lims {
			if req.Spacing > lim+1e-9 && req.Spacing > spacingFloor {
				t.Fatalf("Vu=%.0f: spacing %.0f exceeds limit %.1f", vu, req.Spacing, lim)
			}
		}

		if rem := math.Mod(req.Spacing, spacingIncrement); rem > 1e-9 {
			t.Fatalf("Vu=%.0f: spacing %.1f not a %.0f mm multiple", vu, req.Spacing, spacingIncrement)
		}
		if req.Spacing < spacingFloor {
			t.Fatalf("Vu=%.0f: spacing %.1f below floor", vu, req.Spacing)
		}
	}
}

func TestDesignShearHighDemandTightensDepthCap(t *testing.T) {
	mat := matC30G400()

	// Vs beyond ⅓√f'c·b·d drops the depth cap from d/2 to d/4.
	req := DesignShear(450, 300, 440, mat)
	if req.Limits.DepthFraction != 110 {
		t.Errorf("depth cap = %.0f mm, want d/4 = 110", req.Limits.DepthFraction)
	}
}

func TestDesignShearExceedsVsMax(t *testing.T) {
	mat := matC30G400()

	// Vs,max = ⅔√30·300·440 ≈ 482 kN; demand far beyond it flags the
	// section rather than silently producing a spacing.
	req := DesignShear(800, 300, 440, mat)
	if !req.ExceedsVsMax {
		t.Error("want ExceedsVsMax for a section this overloaded")
	}
	if req.Spacing < spacingFloor {
		t.Errorf("spacing %.0f below constructible floor", req.Spacing)
	}
}

func TestDesignShearConcreteAloneSuffices(t *testing.T) {
	mat := matC30G400()

	req := DesignShear(30, 300, 440, mat)
	if req.VsRequired != 0 {
		t.Errorf("Vs = %.2f, want 0 when concrete alone carries the shear", req.VsRequired)
	}
	// Minimum stirrups still get a spacing.
	if req.Spacing <= 0 {
		t.Errorf("spacing = %.0f, want positive minimum-stirrup spacing", req.Spacing)
	}
}
