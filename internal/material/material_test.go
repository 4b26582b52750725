package material

import (
	"math"
	"testing"
)

func TestGradeLabels(t *testing.T) {
	if got, want := (Concrete{Fc: 28}).Grade(), "C28"; got != want {
		t.Errorf("Concrete.Grade() = %q, want %q", got, want)
	}
	if got, want := (Steel{Fy: 415}).Grade(), "Grade 415"; got != want {
		t.Errorf("Steel.Grade() = %q, want %q", got, want)
	}
}

func TestModularRatio(t *testing.T) {
	m := Set{Concrete: Concrete{Fc: 25}, Steel: Steel{Fy: 415}}

	// n = 200000 / (4700·√25) = 8.51
	want := 200000.0 / (4700 * 5)
	if got := m.ModularRatio(); math.Abs(got-want) > 1e-9 {
		t.Errorf("ModularRatio = %v, want %v", got, want)
	}
}

func TestYieldStrain(t *testing.T) {
	if got, want := (Steel{Fy: 400}).YieldStrain(), 0.002; math.Abs(got-want) > 1e-12 {
		t.Errorf("YieldStrain = %v, want %v", got, want)
	}
}

func TestRhoOrdering(t *testing.T) {
	for _, c := range CommonConcreteGrades {
		for _, s := range CommonSteelGrades {
			m := Set{Concrete: c, Steel: s}
			if m.RhoMin() >= m.RhoMax() {
				t.Errorf("fc=%v fy=%v: RhoMin %v not below RhoMax %v",
					c.Fc, s.Fy, m.RhoMin(), m.RhoMax())
			}
			if m.RhoMax() >= m.RhoBalanced() {
				t.Errorf("fc=%v fy=%v: RhoMax %v not below RhoBalanced %v",
					c.Fc, s.Fy, m.RhoMax(), m.RhoBalanced())
			}
		}
	}
}
