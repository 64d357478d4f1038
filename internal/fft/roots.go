package fft

import (
	"math"
	"sync"

	"golang.org/x/sys/cpu"
)

// Accel selects optional transform kernels. It is a bit set; AccelDetect
// asks Init to probe the running CPU.
//
// The kernels differ only in loop shape. Every set computes the same
// butterflies in the same order, so output is bit-identical.
type Accel uint32

const (
	// AccelNone uses the reference recombination pass.
	AccelNone Accel = 0
	// AccelUnrolled selects the pass unrolled by two over pre-sliced
	// quarters, which has no bounds checks in its loop body.
	AccelUnrolled Accel = 1 << 0
	// AccelDetect resolves to the best set the CPU supports.
	AccelDetect Accel = 1 << 31
)

// roots16 holds cos(pi/8 * (i+1)) for i = 0..2: the 1/16-turn twiddles
// shared by every 8- and 16-point transform.
var roots16 = makeRoots(16)

// Larger root tables, built once by Init.
var (
	initOnce sync.Once
	active   Accel

	roots32  []float32
	roots64  []float32
	roots128 []float32

	passImpl = passGeneric
)

// makeRoots returns cos(2*pi/n * (i+1)) for i = 0 .. n/4-2.
func makeRoots(n int) []float32 {
	roots := make([]float32, n/4-1)
	for i := range roots {
		roots[i] = float32(math.Cos(2 * math.Pi / float64(n) * float64(i+1)))
	}
	return roots
}

// Roots16 returns a copy of the 16-point twiddle table.
func Roots16() [3]float32 {
	return [3]float32{roots16[0], roots16[1], roots16[2]}
}

// Init builds the 32/64/128-point twiddle tables and selects the pass kernel.
// Only the first call has an effect; it returns the acceleration set that is
// in use.
func Init(accel Accel) Accel {
	initOnce.Do(func() {
		roots32 = makeRoots(32)
		roots64 = makeRoots(64)
		roots128 = makeRoots(128)

		if accel&AccelDetect != 0 {
			accel = detect()
		}
		active = accel
		if active&AccelUnrolled != 0 {
			passImpl = passUnrolled
		}
	})
	return active
}

// Active reports the acceleration set chosen by Init.
func Active() Accel {
	Init(AccelDetect)
	return active
}

// detect enables the unrolled pass on CPUs with 128-bit vector units.
func detect() Accel {
	var a Accel
	if cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD {
		a |= AccelUnrolled
	}
	return a
}
