package mdct

import (
	"math"

	"github.com/llehouerou/go-a52/internal/fft"
)

// makeSinCos returns the pre/post rotation table for an n-point IMDCT.
//
// The formula for each entry k (0 <= k < n/4) is:
//
//	Re = cos(2*pi*(k+1/8) / n)
//	Im = sin(2*pi*(k+1/8) / n)
func makeSinCos(n int) []fft.Complex {
	tab := make([]fft.Complex, n/4)
	for k := range tab {
		angle := 2 * math.Pi * (float64(k) + 0.125) / float64(n)
		tab[k] = fft.Complex{
			Re: float32(math.Cos(angle)),
			Im: float32(math.Sin(angle)),
		}
	}
	return tab
}
