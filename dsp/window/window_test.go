package window

import (
	"math"
	"testing"
)

func TestGenerateShapes(t *testing.T) {
	tests := []struct {
		typ        Type
		edge, peak float64
	}{
		{TypeHann, 0, 1},
		{TypeHamming, 0.08, 1},
		{TypeBlackman, 0, 1},
		{TypeRectangular, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			w := Generate(tt.typ, 65)
			if len(w) != 65 {
				t.Fatalf("len=%d, want 65", len(w))
			}

			if math.Abs(w[0]-tt.edge) > 1e-12 || math.Abs(w[64]-tt.edge) > 1e-12 {
				t.Fatalf("edges = %v, %v, want %v", w[0], w[64], tt.edge)
			}
			if math.Abs(w[32]-tt.peak) > 1e-12 {
				t.Fatalf("center = %v, want %v", w[32], tt.peak)
			}

			for i := range 32 {
				if math.Abs(w[i]-w[64-i]) > 1e-12 {
					t.Fatalf("asymmetric at %d: %v vs %v", i, w[i], w[64-i])
				}
			}
		})
	}
}

func TestParseType(t *testing.T) {
	for _, want := range []Type{TypeHann, TypeHamming, TypeBlackman, TypeRectangular} {
		got, err := ParseType(want.String())
		if err != nil || got != want {
			t.Fatalf("ParseType(%q) = %v, %v", want.String(), got, err)
		}
	}

	if _, err := ParseType("kaiser"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}

func TestGenerateEdgeCases(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}

	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 1 {
		t.Fatalf("Generate(1) = %v, want [1]", w)
	}

	if got := Type(99).String(); got != "Type(99)" {
		t.Fatalf("String() = %q", got)
	}
	if w := Generate(Type(99), 3); w[0] != 1 || w[1] != 1 || w[2] != 1 {
		t.Fatalf("unknown type = %v, want rectangular", w)
	}
}

func TestGenerateOptions(t *testing.T) {
	periodic := Generate(TypeHann, 8, WithPeriodic())
	if periodic[0] != 0 || periodic[7] == 0 {
		t.Fatalf("periodic window should only touch zero at the start: %v", periodic)
	}
	if math.Abs(periodic[4]-1) > 1e-12 {
		t.Fatalf("periodic center = %v, want 1", periodic[4])
	}

	w := Generate(TypeHann, 16, WithDCRemoval(), nil)
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	if math.Abs(sum) > 1e-12 {
		t.Fatalf("DC-removed window sums to %v", sum)
	}
}

func TestHann(t *testing.T) {
	w, err := Hann(4)
	if err != nil {
		t.Fatalf("Hann: %v", err)
	}
	if math.Abs(w[1]-0.75) > 1e-12 {
		t.Fatalf("w[1] = %v, want 0.75", w[1])
	}

	if _, err := Hann(0); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestEnergy(t *testing.T) {
	// Sum of squares of a long Hann window approaches 3N/8.
	w := Generate(TypeHann, 4096, WithPeriodic())
	got, err := Energy(w)
	if err != nil {
		t.Fatalf("Energy: %v", err)
	}
	if want := 3.0 * 4096 / 8; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Energy = %v, want %v", got, want)
	}

	if _, err := Energy(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	samples := []float64{2, 2, 2}
	if err := ApplyCoefficientsInPlace(samples, []float64{0, 0.5, 1}); err != nil {
		t.Fatalf("ApplyCoefficientsInPlace: %v", err)
	}
	if samples[0] != 0 || samples[1] != 1 || samples[2] != 2 {
		t.Fatalf("samples = %v", samples)
	}

	if err := ApplyCoefficientsInPlace(samples, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestApplyEmpty(t *testing.T) {
	Apply(TypeHann, nil)
}
