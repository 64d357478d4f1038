package fft

// Complex represents a complex number with real and imaginary parts.
type Complex struct {
	Re float32
	Im float32
}

// ComplexMult performs the complex multiplication used in FFT twiddle operations.
// It computes:
//
//	y1 = x1*c1 + x2*c2
//	y2 = x2*c1 - x1*c2
//
// i.e. (x1 + j*x2) rotated by the conjugate of (c1 + j*c2).
func ComplexMult(x1, x2, c1, c2 float32) (y1, y2 float32) {
	y1 = x1*c1 + x2*c2
	y2 = x2*c1 - x1*c2
	return
}

// butterfly is the weighted split-radix recombination step. a2 is rotated by
// the conjugate of (wr + j*wi) and a3 by (wr + j*wi); their sum and the
// j-rotated difference are folded into a0/a1 and the mirrored a2/a3.
func butterfly(a0, a1, a2, a3 *Complex, wr, wi float32) {
	tmp5, tmp6 := ComplexMult(a2.Re, a2.Im, wr, wi)
	tmp7 := a3.Re*wr - a3.Im*wi
	tmp8 := a3.Im*wr + a3.Re*wi

	tmp1 := tmp5 + tmp7
	tmp2 := tmp6 + tmp8
	tmp3 := tmp6 - tmp8
	tmp4 := tmp7 - tmp5

	a2.Re = a0.Re - tmp1
	a2.Im = a0.Im - tmp2
	a3.Re = a1.Re - tmp3
	a3.Im = a1.Im - tmp4
	a0.Re += tmp1
	a0.Im += tmp2
	a1.Re += tmp3
	a1.Im += tmp4
}

// butterflyZero is butterfly with a twiddle of exactly 1.
func butterflyZero(a0, a1, a2, a3 *Complex) {
	tmp1 := a2.Re + a3.Re
	tmp2 := a2.Im + a3.Im
	tmp3 := a2.Im - a3.Im
	tmp4 := a3.Re - a2.Re

	a2.Re = a0.Re - tmp1
	a2.Im = a0.Im - tmp2
	a3.Re = a1.Re - tmp3
	a3.Im = a1.Im - tmp4
	a0.Re += tmp1
	a0.Im += tmp2
	a1.Re += tmp3
	a1.Im += tmp4
}

// butterflyHalf is butterfly at 45 degrees, where wr == wi == w.
func butterflyHalf(a0, a1, a2, a3 *Complex, w float32) {
	tmp5 := (a2.Re + a2.Im) * w
	tmp6 := (a2.Im - a2.Re) * w
	tmp7 := (a3.Re - a3.Im) * w
	tmp8 := (a3.Im + a3.Re) * w

	tmp1 := tmp5 + tmp7
	tmp2 := tmp6 + tmp8
	tmp3 := tmp6 - tmp8
	tmp4 := tmp7 - tmp5

	a2.Re = a0.Re - tmp1
	a2.Im = a0.Im - tmp2
	a3.Re = a1.Re - tmp3
	a3.Im = a1.Im - tmp4
	a0.Re += tmp1
	a0.Im += tmp2
	a1.Re += tmp3
	a1.Im += tmp4
}
