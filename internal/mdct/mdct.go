// Package mdct implements the inverse MDCT cores of the A/52 synthesis
// filter bank on top of the split-radix FFT. Windowing and overlap-add are
// left to the caller.
package mdct

import "github.com/llehouerou/go-a52/internal/fft"

// IMDCT computes the unwindowed inverse MDCT of N/2 coefficients into N
// samples:
//
//	y[n] = sum_k X[k] * cos(2*pi/N * (n + 1/2 + N/4) * (k + 1/2))
//
// with one N/4-point complex FFT. The transform is unnormalized.
//
// An IMDCT holds scratch buffers and is not safe for concurrent use.
type IMDCT struct {
	N  int // Output samples (512 for long blocks, 256 for short blocks)
	N2 int // Input coefficients
	N4 int // FFT size

	sincos []fft.Complex // Pre/post twiddle factors (N/4 entries)
	order  []int         // FFT input order
	buf    []fft.Complex
	dct    []float32
}

// NewIMDCT creates an IMDCT for n output samples. n/4 must be a transform
// size supported by fft.Transform (2 to 128).
func NewIMDCT(n int) *IMDCT {
	switch n {
	case 8, 16, 32, 64, 128, 256, 512:
	default:
		panic("mdct: unsupported transform size")
	}

	m := &IMDCT{
		N:  n,
		N2: n >> 1,
		N4: n >> 2,
	}
	m.sincos = makeSinCos(n)
	m.order = fft.Order(m.N4)
	m.buf = make([]fft.Complex, m.N4)
	m.dct = make([]float32, m.N2)
	return m
}

// Backward transforms in (N/2 coefficients) into out (N samples).
//
// The coefficients are folded into N/4 complex values, rotated, passed
// through the FFT and rotated back, which yields the DCT-IV of the input.
// The IMDCT output is the DCT-IV output unfolded with its odd and even
// symmetries.
func (m *IMDCT) Backward(in, out []float32) {
	_ = in[m.N2-1]
	_ = out[m.N-1]

	// Pre-twiddle, loading the FFT input in split-radix order.
	for i, k := range m.order {
		re, im := fft.ComplexMult(in[2*k], in[m.N2-1-2*k], m.sincos[k].Re, m.sincos[k].Im)
		m.buf[i] = fft.Complex{Re: re, Im: im}
	}

	fft.Transform(m.buf)

	// Post-twiddle.
	for k := 0; k < m.N4; k++ {
		re, im := fft.ComplexMult(m.buf[k].Re, m.buf[k].Im, m.sincos[k].Re, m.sincos[k].Im)
		m.dct[2*k] = re
		m.dct[m.N2-1-2*k] = -im
	}

	n4, n34 := m.N4, 3*m.N4
	for n := 0; n < n4; n++ {
		out[n] = m.dct[n+n4]
	}
	for n := n4; n < n34; n++ {
		out[n] = -m.dct[n34-1-n]
	}
	for n := n34; n < m.N; n++ {
		out[n] = -m.dct[n-n34]
	}
}
