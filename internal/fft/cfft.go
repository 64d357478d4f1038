// Package fft implements the split-radix complex FFT used by the A/52 IMDCT.
//
// Transforms run in place on a []Complex of length 2..128. The input is in
// conjugate-pair split-radix order and the output is in natural order:
//
//	X[k] = sum_n x[n] * exp(-2*pi*j*n*k/N)
//
// Scaling is left to the caller (the transform is unnormalized).
package fft

// IFFT2 is the 2-point transform.
func IFFT2(buf []Complex) {
	_ = buf[1]

	r := buf[0].Re
	i := buf[0].Im
	buf[0].Re += buf[1].Re
	buf[0].Im += buf[1].Im
	buf[1].Re = r - buf[1].Re
	buf[1].Im = i - buf[1].Im
}

// IFFT4 is the 4-point transform. All of its twiddles are trivial
// rotations, so it is written out in closed form.
func IFFT4(buf []Complex) {
	_ = buf[3]

	tmp1 := buf[0].Re + buf[1].Re
	tmp2 := buf[3].Re + buf[2].Re
	tmp3 := buf[0].Im + buf[1].Im
	tmp4 := buf[2].Im + buf[3].Im
	tmp5 := buf[0].Re - buf[1].Re
	tmp6 := buf[0].Im - buf[1].Im
	tmp7 := buf[2].Im - buf[3].Im
	tmp8 := buf[3].Re - buf[2].Re

	buf[0].Re = tmp1 + tmp2
	buf[0].Im = tmp3 + tmp4
	buf[2].Re = tmp1 - tmp2
	buf[2].Im = tmp3 - tmp4
	buf[1].Re = tmp5 + tmp7
	buf[1].Im = tmp6 + tmp8
	buf[3].Re = tmp5 - tmp7
	buf[3].Im = tmp6 - tmp8
}

// IFFT8 is the 8-point transform: one 4-point and two 2-point transforms
// recombined by a zero-twiddle and a 45-degree butterfly.
func IFFT8(buf []Complex) {
	_ = buf[7]

	IFFT4(buf[0:4])
	IFFT2(buf[4:6])
	IFFT2(buf[6:8])
	butterflyZero(&buf[0], &buf[2], &buf[4], &buf[6])
	butterflyHalf(&buf[1], &buf[3], &buf[5], &buf[7], roots16[1])
}

// IFFT16 is the 16-point transform.
func IFFT16(buf []Complex) {
	_ = buf[15]

	IFFT8(buf[0:8])
	IFFT4(buf[8:12])
	IFFT4(buf[12:16])
	Pass(buf, roots16, 4)
}

// IFFT32 is the 32-point transform.
func IFFT32(buf []Complex) {
	_ = buf[31]
	Init(AccelDetect)

	IFFT16(buf[0:16])
	IFFT8(buf[16:24])
	IFFT8(buf[24:32])
	passImpl(buf, roots32, 8)
}

// IFFT64 is the 64-point transform used by the 256-point IMDCT.
func IFFT64(buf []Complex) {
	_ = buf[63]
	Init(AccelDetect)

	IFFT32(buf[0:32])
	IFFT16(buf[32:48])
	IFFT16(buf[48:64])
	passImpl(buf, roots64, 16)
}

// IFFT128 is the 128-point transform used by the 512-point IMDCT.
func IFFT128(buf []Complex) {
	_ = buf[127]
	Init(AccelDetect)

	IFFT64(buf[0:64])
	IFFT32(buf[64:96])
	IFFT32(buf[96:128])
	passImpl(buf, roots128, 32)
}

// Transform runs the transform matching len(buf). It panics for lengths
// other than 2, 4, 8, 16, 32, 64 and 128.
func Transform(buf []Complex) {
	switch len(buf) {
	case 2:
		IFFT2(buf)
	case 4:
		IFFT4(buf)
	case 8:
		IFFT8(buf)
	case 16:
		IFFT16(buf)
	case 32:
		IFFT32(buf)
	case 64:
		IFFT64(buf)
	case 128:
		IFFT128(buf)
	default:
		panic("fft: unsupported transform size")
	}
}

// Pass recombines a half-size transform in buf[0:2n] and two quarter-size
// transforms in buf[2n:3n] and buf[3n:4n] into one 4n-point transform.
// roots holds cos(2*pi/(4n) * (i+1)) for i = 0..n-2; the sine of each angle
// is read from the mirrored end of the same table.
func Pass(buf []Complex, roots []float32, n int) {
	passGeneric(buf, roots, n)
}

func passGeneric(buf []Complex, roots []float32, n int) {
	_ = buf[4*n-1]
	_ = roots[n-2]

	butterflyZero(&buf[0], &buf[n], &buf[2*n], &buf[3*n])

	for k := 1; k < n; k++ {
		butterfly(&buf[k], &buf[n+k], &buf[2*n+k], &buf[3*n+k], roots[k-1], roots[n-1-k])
	}
}

// passUnrolled computes the same butterflies as passGeneric two at a time
// over pre-sliced quarters, so the loop body carries no bounds checks.
func passUnrolled(buf []Complex, roots []float32, n int) {
	b0 := buf[0:n:n]
	b1 := buf[n : 2*n : 2*n]
	b2 := buf[2*n : 3*n : 3*n]
	b3 := buf[3*n : 4*n : 4*n]
	w := roots[: n-1 : n-1]

	butterflyZero(&b0[0], &b1[0], &b2[0], &b3[0])

	k := 1
	for ; k+1 < n; k += 2 {
		butterfly(&b0[k], &b1[k], &b2[k], &b3[k], w[k-1], w[n-1-k])
		butterfly(&b0[k+1], &b1[k+1], &b2[k+1], &b3[k+1], w[k], w[n-2-k])
	}
	for ; k < n; k++ {
		butterfly(&b0[k], &b1[k], &b2[k], &b3[k], w[k-1], w[n-1-k])
	}
}
