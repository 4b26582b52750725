package section

import (
	"math"
	"testing"
)

func TestDerivedProperties(t *testing.T) {
	r := Rectangular{Width: 300, Height: 500, ClearCover: 40}

	if got, want := r.Area(), 150000.0; got != want {
		t.Errorf("Area = %v, want %v", got, want)
	}
	if got, want := r.Ig(), 300*500.0*500*500/12; math.Abs(got-want) > 1e-6 {
		t.Errorf("Ig = %v, want %v", got, want)
	}
	if got, want := r.Yt(), 250.0; got != want {
		t.Errorf("Yt = %v, want %v", got, want)
	}
	if got, want := r.Perimeter(), 1600.0; got != want {
		t.Errorf("Perimeter = %v, want %v", got, want)
	}
	if got, want := r.LeastDimension(), 300.0; got != want {
		t.Errorf("LeastDimension = %v, want %v", got, want)
	}
}

func TestEffectiveDepth(t *testing.T) {
	r := Rectangular{Width: 300, Height: 500, ClearCover: 40}

	// 20 mm bars inside 10 mm stirrups: 500 - 40 - 10 - 10
	if got, want := r.EffectiveDepth(20, 10), 440.0; got != want {
		t.Errorf("EffectiveDepth = %v, want %v", got, want)
	}
	if got, want := r.CompressionSteelDepth(20, 10), 60.0; got != want {
		t.Errorf("CompressionSteelDepth = %v, want %v", got, want)
	}
	if got, want := r.BarCenterCover(20, 10), 60.0; got != want {
		t.Errorf("BarCenterCover = %v, want %v", got, want)
	}

	// Slabs carry no stirrups.
	s := Rectangular{Width: 1000, Height: 150, ClearCover: 20}
	if got, want := s.EffectiveDepth(12, 0), 124.0; got != want {
		t.Errorf("slab EffectiveDepth = %v, want %v", got, want)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		r    Rectangular
		want Kind
	}{
		{"deep beam", Rectangular{Width: 300, Height: 500}, Beam},
		{"square column", Rectangular{Width: 400, Height: 400}, Column},
		{"stocky column", Rectangular{Width: 400, Height: 500}, Column},
		{"thin slab strip", Rectangular{Width: 1000, Height: 150}, Slab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Classify(); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
