package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: -1, max: 1, expected: 0.5},
		{name: "below", value: -3, min: -1, max: 1, expected: -1},
		{name: "above", value: 7, min: -1, max: 1, expected: 1},
		{name: "boundary", value: 1, min: -1, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: -1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFullScaleAndLSB(t *testing.T) {
	tests := []struct {
		bits      int
		full, lsb float64
	}{
		{bits: 1, full: 1, lsb: 1},
		{bits: 8, full: 128, lsb: 1.0 / 128},
		{bits: 16, full: 32768, lsb: 1.0 / 32768},
		{bits: 0, full: 0, lsb: 0},
		{bits: MaxWordBits + 1, full: 0, lsb: 0},
	}

	for _, tt := range tests {
		if got := FullScale(tt.bits); got != tt.full {
			t.Fatalf("FullScale(%d) = %v, want %v", tt.bits, got, tt.full)
		}
		if got := LSB(tt.bits); got != tt.lsb {
			t.Fatalf("LSB(%d) = %v, want %v", tt.bits, got, tt.lsb)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(1e6, 1e6+1e-7, 0) {
		t.Fatal("default epsilon should compare relative to magnitude")
	}
	if NearlyEqual(math.NaN(), math.NaN(), 1) {
		t.Fatal("NaN compared equal")
	}
}

func TestFlushDenormals(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 1e-31, want: 0},
		{in: -1e-35, want: 0},
		{in: math.SmallestNonzeroFloat64, want: 0},
		{in: 1e-20, want: 1e-20},
		{in: -0.5, want: -0.5},
	}

	for _, tt := range tests {
		if got := FlushDenormals(tt.in); got != tt.want {
			t.Fatalf("FlushDenormals(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestIsDenormal(t *testing.T) {
	if IsDenormal(0) {
		t.Fatal("zero reported as denormal")
	}
	if !IsDenormal(math.SmallestNonzeroFloat64) {
		t.Fatal("smallest subnormal not reported as denormal")
	}
	if IsDenormal(1e-3) {
		t.Fatal("1e-3 reported as denormal")
	}
}

func TestDBConversions(t *testing.T) {
	if db := LinearToDB(0.5); !NearlyEqual(db, -6.0206, 1e-4) {
		t.Fatalf("LinearToDB(0.5) = %v, want ~-6.02", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
	if db := LinearPowerToDB(0.01); !NearlyEqual(db, -20, 1e-10) {
		t.Fatalf("LinearPowerToDB(0.01) = %v, want -20", db)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
}
