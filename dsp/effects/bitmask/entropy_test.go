package bitmask

import (
	"math"
	"testing"
)

func TestShapeEntropy(t *testing.T) {
	tests := []struct {
		name                  string
		x, last, value, amount float64
		want                  float64
	}{
		{name: "zero value falls back to zero", x: 0.5, last: 0.1, value: 0, amount: 1, want: 0},
		{name: "zero value with zero amount passes x", x: 0.5, last: 0, value: 0, amount: 0, want: 0.5},
		{name: "nan base with zero amount passes x", x: 0.5, last: -0.9, value: 0.3, amount: 0, want: 0.5},
		{name: "negative base nan", x: 0.5, last: -1, value: 0.3, amount: 1, want: 0},
		{name: "clamp high", x: 0.5, last: 0, value: 1, amount: 10, want: 1},
		{name: "clamp low", x: 0.5, last: 0, value: 1, amount: -10, want: -1},
		{name: "zero amount passes x", x: 0.25, last: 0, value: 0.5, amount: 0, want: 0.25},
		{name: "unit value offsets by half amount", x: 0.25, last: 0.7, value: 1, amount: 1, want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shapeEntropy(tt.x, tt.last, tt.value, tt.amount)
			if got != tt.want {
				t.Fatalf("shapeEntropy(%v, %v, %v, %v) = %v, want %v",
					tt.x, tt.last, tt.value, tt.amount, got, tt.want)
			}
		})
	}
}

func TestShapeEntropyFormula(t *testing.T) {
	x, last, value, amount := 0.2, -0.1, 0.5, 0.8
	want := math.Pow(value, math.Pow(last-x+1, 1/value))*amount + x - amount/2

	got := shapeEntropy(x, last, value, amount)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("shapeEntropy = %v, want %v", got, want)
	}
}

func TestShapeEntropyAlwaysBounded(t *testing.T) {
	for _, value := range []float64{0, 1e-300, 1e-9, 0.1, 0.5, 0.999, 1} {
		for _, amount := range []float64{-10, -1, 0, 1, 10} {
			for _, x := range []float64{-1, -0.5, 0, 0.5, 1} {
				for _, last := range []float64{-2, -1, 0, 1, 2} {
					y := shapeEntropy(x, last, value, amount)
					if math.IsNaN(y) || y < -1 || y > 1 {
						t.Fatalf("shapeEntropy(%v, %v, %v, %v) = %v out of [-1, 1]", x, last, value, amount, y)
					}
				}
			}
		}
	}
}
