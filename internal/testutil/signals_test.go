package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	RequireBounded(t, s, 1)
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 64)
	b := DeterministicNoise(42, 0.5, 64)
	RequireSliceEqual(t, a, b)
	RequireBounded(t, a, 0.5)

	c := DeterministicNoise(43, 0.5, 64)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestDC(t *testing.T) {
	for i, v := range DC(0.5, 4) {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestLevels(t *testing.T) {
	l := Levels(8)
	if len(l) != 256 {
		t.Fatalf("len = %d, want 256", len(l))
	}
	if l[0] != -1 || l[128] != 0 || l[255] != 127.0/128 {
		t.Fatalf("levels = %v %v %v", l[0], l[128], l[255])
	}
	if Levels(0) != nil || Levels(25) != nil {
		t.Fatal("unsupported widths should return nil")
	}
}

func TestBlockCopies(t *testing.T) {
	src := []float64{1, 2, 3}
	b := Block(src, src)
	b[0][0] = 9
	if src[0] != 1 || b[1][0] != 1 {
		t.Fatal("Block shares backing arrays")
	}
}
