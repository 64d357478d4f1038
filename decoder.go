package a52

import (
	"github.com/llehouerou/go-a52/internal/fft"
	"github.com/llehouerou/go-a52/internal/mdct"
	"github.com/llehouerou/go-a52/internal/output"
)

const (
	blockCoeffs  = 256 // Coefficients per channel per audio block
	sampleBlocks = 12  // 6 channels, each with a sample and a delay block
	fbwChannels  = 5   // Maximum full-bandwidth channels
	lfsrSeed     = 1   // Dither generator seed
)

// CouplingChannel selects the coupling channel in DeltaBitAllocation.
const CouplingChannel = fbwChannels

// DeltaMode is the delta bit allocation mode of a channel (deltbae).
//
// Source: ATSC A/52 Table 5.16
type DeltaMode uint8

// Delta bit allocation modes.
const (
	DeltaReuse    DeltaMode = 0 // Reuse the previous block's allocation
	DeltaNew      DeltaMode = 1 // New allocation follows
	DeltaNone     DeltaMode = 2 // No delta allocation
	DeltaReserved DeltaMode = 3
)

// DynamicRange scales the coded dynamic range gain of each audio block
// before it is applied. *output.DRC (see NewDRC) is one implementation.
type DynamicRange interface {
	Scale(gain float32) float32
}

// DynamicRangeFunc adapts a function to the DynamicRange interface.
type DynamicRangeFunc func(gain float32) float32

// Scale calls f(gain).
func (f DynamicRangeFunc) Scale(gain float32) float32 {
	return f(gain)
}

// NewDRC returns a DynamicRange that applies cut to gains below unity and
// boost to gains above it, in the log domain. NewDRC(1, 1) applies the
// coded gain as-is; NewDRC(0, 0) disables compression.
func NewDRC(cut, boost float32) DynamicRange {
	return output.NewDRC(cut, boost)
}

// Decoder holds the state of one A/52 stream.
//
// A Decoder is not safe for concurrent use. Independent decoders share only
// read-only transform tables.
type Decoder struct {
	config Config

	// Sample and delay buffer, reused every frame.
	samples []float32

	// Header state of the current frame.
	hdr FrameHeader

	// Internal level (twice the output level) and current dynamic range gain.
	level   float32
	dynrng  float32
	dynrnge bool
	drc     DynamicRange

	// Delta bit allocation mode carried across blocks.
	cpldeltbae DeltaMode
	deltbae    [fbwChannels]DeltaMode

	lfsr uint16

	// Inverse transforms for long and short blocks, with the short block
	// coefficient scratch.
	long    *mdct.IMDCT
	short   *mdct.IMDCT
	scratch [blockCoeffs]float32
}

// New creates a decoder. The sample buffer is allocated zeroed once and
// reused for every frame; the first decoder in the process also builds the
// transform tables using cfg.Accel.
func New(cfg Config) (*Decoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.MaxFrameBytes == 0 {
		cfg.MaxFrameBytes = DefaultMaxFrameBytes
	}

	fft.Init(cfg.Accel)

	return &Decoder{
		config:  cfg,
		samples: make([]float32, blockCoeffs*sampleBlocks),
		lfsr:    lfsrSeed,
		long:    mdct.NewIMDCT(longBlock),
		short:   mdct.NewIMDCT(shortBlock),
	}, nil
}

func (c Config) validate() error {
	if c.Accel&^(AccelUnrolled|AccelDetect) != 0 {
		return ErrInvalidConfig
	}
	if c.MaxFrameBytes < 0 || (c.MaxFrameBytes > 0 && c.MaxFrameBytes < SyncInfoSize) {
		return ErrInvalidConfig
	}
	return nil
}

// Config returns the decoder configuration.
func (d *Decoder) Config() Config {
	return d.config
}

// Close releases the sample buffer. Frame fails with ErrAllocation on a
// closed decoder. Close is idempotent.
func (d *Decoder) Close() {
	if d == nil {
		return
	}
	d.samples = nil
	d.drc = nil
	d.long = nil
	d.short = nil
}

// Samples returns the decoder's sample buffer: 256 coefficients for each of
// six channels, followed by their delay blocks. It is nil after Close.
func (d *Decoder) Samples() []float32 {
	return d.samples
}

// Header returns the header of the last frame accepted by Frame.
func (d *Decoder) Header() FrameHeader {
	return d.hdr
}

// SetDynamicRange installs the scaling applied to each block's coded
// dynamic range gain. A nil dr disables dynamic range compression until
// the next Frame, which re-enables it with no scaling.
func (d *Decoder) SetDynamicRange(dr DynamicRange) {
	d.drc = dr
	d.dynrnge = dr != nil
}

// DynamicRange returns the current dynamic range gain.
func (d *Decoder) DynamicRange() float32 {
	return d.dynrng
}

// BlockDynamicRange applies a coded dynrng word to the decoder. When dynamic
// range compression is enabled the word's gain is passed through the
// installed DynamicRange and scaled by the internal level. It returns the
// resulting dynamic range gain.
func (d *Decoder) BlockDynamicRange(word int8) float32 {
	if !d.dynrnge {
		return d.dynrng
	}
	gain := output.DynRngGain(word)
	if d.drc != nil {
		gain = d.drc.Scale(gain)
	}
	d.dynrng = d.level * gain
	return d.dynrng
}

// DeltaBitAllocation returns the delta bit allocation mode of a
// full-bandwidth channel (0-4) or of CouplingChannel. Other channels have
// no delta allocation and report DeltaNone.
func (d *Decoder) DeltaBitAllocation(ch int) DeltaMode {
	switch {
	case ch == CouplingChannel:
		return d.cpldeltbae
	case ch >= 0 && ch < fbwChannels:
		return d.deltbae[ch]
	}
	return DeltaNone
}

// resetDeltaBitAllocation clears the carried allocation of the coupling and
// full-bandwidth channels at the start of a frame.
func (d *Decoder) resetDeltaBitAllocation() {
	d.cpldeltbae = DeltaNone
	for i := range d.deltbae {
		d.deltbae[i] = DeltaNone
	}
}

// DitherSeed returns the state of the dither generator used when
// reconstructing zero-bit mantissas. A new decoder starts at 1.
func (d *Decoder) DitherSeed() uint16 {
	return d.lfsr
}
