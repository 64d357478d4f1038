// Package output resolves the output channel layout of an A/52 stream and
// the gains that go with it.
//
// This file contains output negotiation: given the coded channel mode and
// the layout a caller asks for, pick the layout that will actually be
// produced and compensate the output level for the channels folded into it.
package output

import (
	"errors"

	"github.com/llehouerou/go-a52/internal/tables"
)

// Channel layout codes. The low four bits select the layout; LFE and
// AdjustLevel are flags OR'ed on top.
const (
	Channel     = 0  // Dual mono, both channels
	Mono        = 1  // 1/0
	Stereo      = 2  // 2/0
	ThreeF      = 3  // 3/0
	TwoF1R      = 4  // 2/1
	ThreeF1R    = 5  // 3/1
	TwoF2R      = 6  // 2/2
	ThreeF2R    = 7  // 3/2
	Channel1    = 8  // Dual mono, first channel only
	Channel2    = 9  // Dual mono, second channel only
	Dolby       = 10 // 2/0 Dolby Surround (matrix) encoded
	ChannelMask = 15

	LFE         = 16 // LFE channel present / requested
	AdjustLevel = 32 // Compensate the level for folded-down channels
)

// ErrUnsupportedOutput indicates a requested layout outside 0..Dolby.
var ErrUnsupportedOutput = errors.New("output: unsupported output layout")

// layouts maps [requested layout][coded acmod] to the produced layout.
var layouts = [Dolby + 1][8]uint8{
	Channel:  {Channel, Dolby, Stereo, Stereo, Stereo, Stereo, Stereo, Stereo},
	Mono:     {Mono, Mono, Mono, Mono, Mono, Mono, Mono, Mono},
	Stereo:   {Channel, Dolby, Stereo, Stereo, Stereo, Stereo, Stereo, Stereo},
	ThreeF:   {Channel, Dolby, Stereo, ThreeF, Stereo, ThreeF, Stereo, ThreeF},
	TwoF1R:   {Channel, Dolby, Stereo, Stereo, TwoF1R, TwoF1R, TwoF1R, TwoF1R},
	ThreeF1R: {Channel, Dolby, Stereo, Stereo, TwoF1R, ThreeF1R, TwoF1R, ThreeF1R},
	TwoF2R:   {Channel, Dolby, Stereo, ThreeF, TwoF2R, TwoF2R, TwoF2R, TwoF2R},
	ThreeF2R: {Channel, Dolby, Stereo, ThreeF, TwoF2R, ThreeF2R, TwoF2R, ThreeF2R},
	Channel1: {Channel1, Mono, Mono, Mono, Mono, Mono, Mono, Mono},
	Channel2: {Channel2, Mono, Mono, Mono, Mono, Mono, Mono, Mono},
	Dolby:    {Channel, Dolby, Stereo, Dolby, Dolby, Dolby, Dolby, Dolby},
}

// Negotiate returns the layout produced for a stream coded as input
// (an acmod, or Dolby) when flags are requested, together with the output
// level. When flags has AdjustLevel set the level is scaled so that the
// channels folded into the output cannot clip; otherwise it is returned
// unchanged.
//
// clev and slev are the stream's center and surround mix levels.
func Negotiate(input, flags int, level, clev, slev float32) (int, float32, error) {
	out := flags & ChannelMask
	if out > Dolby {
		return 0, level, ErrUnsupportedOutput
	}

	out = int(layouts[out][input&7])

	if out == Stereo && (input == Dolby || (input == ThreeF && clev == tables.Level3dB)) {
		out = Dolby
	}

	if flags&AdjustLevel != 0 {
		if adjust, ok := levelAdjust(input&7, out, clev, slev); ok {
			level *= adjust
		}
	}

	return out, level, nil
}

// convert keys a conversion by output layout, then coded acmod. from is
// at most 7, so every key is unique even for Dolby output.
func convert(from, to int) int {
	return to<<3 + from
}

// levelAdjust returns the gain that keeps the sum of the channels mixed into
// each output channel at or below unity.
func levelAdjust(input, out int, clev, slev float32) (float32, bool) {
	switch convert(input, out) {
	case convert(ThreeF, Mono):
		return tables.Level3dB / (1 + clev), true

	case convert(Stereo, Mono),
		convert(TwoF2R, TwoF1R),
		convert(ThreeF2R, ThreeF1R):
		return tables.Level3dB, true

	case convert(ThreeF2R, TwoF1R):
		if clev < tables.LevelPlus3dB-1 {
			return tables.Level3dB, true
		}
		return 1 / (1 + clev), true

	case convert(ThreeF, Stereo),
		convert(ThreeF1R, TwoF1R),
		convert(ThreeF1R, TwoF2R),
		convert(ThreeF2R, TwoF2R):
		return 1 / (1 + clev), true

	case convert(TwoF1R, Mono):
		return tables.LevelPlus3dB / (2 + slev), true

	case convert(TwoF1R, Stereo),
		convert(ThreeF1R, ThreeF):
		return 1 / (1 + slev*tables.Level3dB), true

	case convert(ThreeF1R, Mono):
		return tables.Level3dB / (1 + clev + slev*0.5), true

	case convert(ThreeF1R, Stereo):
		return 1 / (1 + clev + slev*tables.Level3dB), true

	case convert(TwoF2R, Mono):
		return tables.Level3dB / (1 + slev), true

	case convert(TwoF2R, Stereo),
		convert(ThreeF2R, ThreeF):
		return 1 / (1 + slev), true

	case convert(ThreeF2R, Mono):
		return tables.Level3dB / (1 + clev + slev), true

	case convert(ThreeF2R, Stereo):
		return 1 / (1 + clev + slev), true

	case convert(Mono, Dolby):
		return tables.LevelPlus3dB, true

	case convert(ThreeF, Dolby),
		convert(TwoF1R, Dolby):
		return 1 / (1 + tables.Level3dB), true

	case convert(ThreeF1R, Dolby),
		convert(TwoF2R, Dolby):
		return 1 / (1 + 2*tables.Level3dB), true

	case convert(ThreeF2R, Dolby):
		return 1 / (1 + 3*tables.Level3dB), true
	}
	return 1, false
}
