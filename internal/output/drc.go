package output

import "math"

// DynRngGain converts a coded 8-bit dynrng word to a linear gain. The top
// three bits are a signed exponent in 6.02 dB steps; the low five bits are
// the mantissa of a gain in [1, 2).
//
// Source: ATSC A/52 section 5.4.3.3
func DynRngGain(word int8) float32 {
	mant := int32(word&0x1f) | 0x20
	exp := int(word >> 5)
	return float32(math.Ldexp(float64(mant<<13), exp-18))
}

// DRC scales the coded dynamic range gain the way a listener asks for:
// Cut applies to gains below unity (loud passages being compressed), Boost
// to gains above unity (quiet passages being lifted). 1 applies the coded
// gain as-is, 0 ignores it.
type DRC struct {
	Cut   float32
	Boost float32
}

// NewDRC creates a DRC with the given cut and boost factors.
func NewDRC(cut, boost float32) *DRC {
	return &DRC{
		Cut:   cut,
		Boost: boost,
	}
}

// Scale applies the cut or boost factor to gain in the log domain.
func (d *DRC) Scale(gain float32) float32 {
	if gain <= 0 {
		return gain
	}
	factor := d.Boost
	if gain < 1 {
		factor = d.Cut
	}
	return float32(math.Pow(float64(gain), float64(factor)))
}
