package a52

import "github.com/llehouerou/go-a52/internal/fft"

const (
	longBlock  = 2 * blockCoeffs // Samples out of a long block transform
	shortBlock = blockCoeffs     // Samples out of each short block transform
	channels   = fbwChannels + 1 // Full-bandwidth channels plus LFE
)

// LFEChannel is the channel index of the LFE channel in the sample buffer.
const LFEChannel = fbwChannels

// Complex is one complex sample of the transform engine.
type Complex = fft.Complex

// IFFT runs the unnormalized split-radix FFT matching len(buf) in place:
//
//	X[k] = sum_n x[n] * exp(-2*pi*j*n*k/N)
//
// buf must hold x in the order returned by IFFTOrder; the result is in
// natural order. IFFT panics for lengths other than 2, 4, 8, 16, 32, 64
// and 128.
func IFFT(buf []Complex) {
	fft.Transform(buf)
}

// IFFTOrder returns the input permutation IFFT expects for an n-point
// transform: buf[i] must hold x[order[i]].
func IFFTOrder(n int) []int {
	return fft.Order(n)
}

// InverseTransform runs the unwindowed IMDCT of the 256 coefficients of
// channel ch (0-4 full bandwidth, LFEChannel) in the sample buffer and
// writes 512 samples to out.
//
// A long block is one 512-point transform. A short block (blksw set) is
// two 256-point transforms, of the even and of the odd coefficients,
// written to out[:256] and out[256:]. The LFE channel is always long.
// Windowing and overlap with the delay block are left to the caller.
//
// Source: ATSC A/52 section 7.9.4
func (d *Decoder) InverseTransform(ch int, short bool, out []float32) error {
	if d == nil {
		return ErrNilDecoder
	}
	if d.samples == nil {
		return ErrAllocation
	}
	if ch < 0 || ch >= channels || (short && ch == LFEChannel) || len(out) < longBlock {
		return ErrInvalidBlock
	}

	coeffs := d.samples[ch*blockCoeffs : (ch+1)*blockCoeffs]
	if !short {
		d.long.Backward(coeffs, out[:longBlock])
		return nil
	}

	half := blockCoeffs / 2
	for k := range half {
		d.scratch[k] = coeffs[2*k]
		d.scratch[half+k] = coeffs[2*k+1]
	}
	d.short.Backward(d.scratch[:half], out[:shortBlock])
	d.short.Backward(d.scratch[half:], out[shortBlock:longBlock])
	return nil
}
