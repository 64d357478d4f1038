package fft

import (
	"math"
	"testing"
)

func TestComplex_Basic(t *testing.T) {
	c := Complex{Re: 3.0, Im: 4.0}
	if c.Re != 3.0 || c.Im != 4.0 {
		t.Errorf("Complex{3, 4} = %v, want {3, 4}", c)
	}
}

func TestComplexMult(t *testing.T) {
	tests := []struct {
		name   string
		x1, x2 float32
		c1, c2 float32
		wantY1 float32
		wantY2 float32
	}{
		{
			name: "identity c1=1 c2=0",
			x1:   2.0, x2: 3.0,
			c1: 1.0, c2: 0.0,
			wantY1: 2.0,
			wantY2: 3.0,
		},
		{
			name: "swap c1=0 c2=1",
			x1:   2.0, x2: 3.0,
			c1: 0.0, c2: 1.0,
			wantY1: 3.0,
			wantY2: -2.0,
		},
		{
			name: "general case",
			x1:   1.0, x2: 2.0,
			c1: 0.5, c2: 0.5,
			wantY1: 1.5,
			wantY2: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y1, y2 := ComplexMult(tt.x1, tt.x2, tt.c1, tt.c2)
			if math.Abs(float64(y1-tt.wantY1)) > 1e-6 {
				t.Errorf("y1 = %v, want %v", y1, tt.wantY1)
			}
			if math.Abs(float64(y2-tt.wantY2)) > 1e-6 {
				t.Errorf("y2 = %v, want %v", y2, tt.wantY2)
			}
		})
	}
}

func TestButterflyZero(t *testing.T) {
	a0 := Complex{1, 2}
	a1 := Complex{3, 4}
	a2 := Complex{5, 6}
	a3 := Complex{7, 8}

	butterflyZero(&a0, &a1, &a2, &a3)

	// tmp1 = 12, tmp2 = 14, tmp3 = -2, tmp4 = 2
	want := [4]Complex{{13, 16}, {1, 6}, {-11, -12}, {5, 2}}
	got := [4]Complex{a0, a1, a2, a3}
	if got != want {
		t.Errorf("butterflyZero = %v, want %v", got, want)
	}
}

func TestButterfly_UnitTwiddleMatchesZero(t *testing.T) {
	in := [4]Complex{{0.5, -1}, {2, 0.25}, {-3, 1.5}, {0.75, 4}}

	z := in
	butterflyZero(&z[0], &z[1], &z[2], &z[3])

	w := in
	butterfly(&w[0], &w[1], &w[2], &w[3], 1, 0)

	if z != w {
		t.Errorf("butterfly(w=1) = %v, butterflyZero = %v", w, z)
	}
}

func TestButterflyHalf_MatchesWeighted(t *testing.T) {
	in := [4]Complex{{0.5, -1}, {2, 0.25}, {-3, 1.5}, {0.75, 4}}
	c := float32(math.Sqrt(0.5))

	h := in
	butterflyHalf(&h[0], &h[1], &h[2], &h[3], c)

	w := in
	butterfly(&w[0], &w[1], &w[2], &w[3], c, c)

	for i := range h {
		if !closeTo(h[i], w[i], 1e-5) {
			t.Errorf("element %d: butterflyHalf = %v, butterfly = %v", i, h[i], w[i])
		}
	}
}

func closeTo(a, b Complex, tol float64) bool {
	return math.Abs(float64(a.Re-b.Re)) <= tol && math.Abs(float64(a.Im-b.Im)) <= tol
}
