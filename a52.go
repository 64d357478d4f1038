package a52

import (
	"strings"

	"github.com/llehouerou/go-a52/internal/fft"
	"github.com/llehouerou/go-a52/internal/output"
	"github.com/llehouerou/go-a52/internal/tables"
)

// Flags describes a channel layout. The low four bits select the layout;
// LFE and AdjustLevel are OR'ed on top.
//
// Source: ATSC A/52 Table 5.8
type Flags int

// Channel layouts.
const (
	Channel     Flags = output.Channel  // 1+1 dual mono, both programs
	Mono        Flags = output.Mono     // 1/0
	Stereo      Flags = output.Stereo   // 2/0
	ThreeF      Flags = output.ThreeF   // 3/0
	TwoF1R      Flags = output.TwoF1R   // 2/1
	ThreeF1R    Flags = output.ThreeF1R // 3/1
	TwoF2R      Flags = output.TwoF2R   // 2/2
	ThreeF2R    Flags = output.ThreeF2R // 3/2
	Channel1    Flags = output.Channel1 // first program of a dual mono stream
	Channel2    Flags = output.Channel2 // second program of a dual mono stream
	Dolby       Flags = output.Dolby    // 2/0 Dolby Surround encoded
	ChannelMask Flags = output.ChannelMask

	LFE         Flags = output.LFE
	AdjustLevel Flags = output.AdjustLevel
)

var layoutNames = [Dolby + 1]string{
	"1+1", "1/0", "2/0", "3/0", "2/1", "3/1", "2/2", "3/2",
	"1+1 ch1", "1+1 ch2", "2/0 dolby",
}

var layoutChannels = [Dolby + 1]int{2, 1, 2, 3, 3, 4, 4, 5, 1, 1, 2}

// Layout returns f without the LFE and AdjustLevel bits.
func (f Flags) Layout() Flags {
	return f & ChannelMask
}

// HasLFE reports whether the LFE bit is set.
func (f Flags) HasLFE() bool {
	return f&LFE != 0
}

// Channels returns the number of output channels, LFE included.
// Returns 0 for an unknown layout.
func (f Flags) Channels() int {
	l := f.Layout()
	if l > Dolby {
		return 0
	}
	n := layoutChannels[l]
	if f.HasLFE() {
		n++
	}
	return n
}

// String returns the front/rear notation of the layout, e.g. "3/2+lfe".
func (f Flags) String() string {
	l := f.Layout()
	if l > Dolby {
		return "unknown"
	}
	var b strings.Builder
	b.WriteString(layoutNames[l])
	if f.HasLFE() {
		b.WriteString("+lfe")
	}
	return b.String()
}

// Accel selects optional transform kernels.
type Accel = fft.Accel

// Acceleration sets.
const (
	AccelNone     = fft.AccelNone
	AccelUnrolled = fft.AccelUnrolled
	AccelDetect   = fft.AccelDetect
)

// SyncInfoSize is the number of bytes SyncInfo needs to see.
const SyncInfoSize = 7

// DefaultMaxFrameBytes is the largest A/52 frame: 640 kbps at 32 kHz.
const DefaultMaxFrameBytes = 3840

// Info is the stream description recovered from the first bytes of a frame.
type Info struct {
	FrameLength int   // Frame size in bytes, sync word included
	SampleRate  int   // Hz, after the half-rate shift
	BitRate     int   // bits per second, after the half-rate shift
	Flags       Flags // Coded layout, with LFE when the stream carries it
}

// Config contains decoder configuration options.
type Config struct {
	// Accel selects the transform kernels. The first decoder created in a
	// process fixes the choice for all of them.
	Accel Accel

	// MaxFrameBytes bounds the frames a FrameReader accepts.
	// Zero means DefaultMaxFrameBytes.
	MaxFrameBytes int
}

// FrameHeader is the decoded bit stream information of one frame.
type FrameHeader struct {
	SampleRateCode uint8 // fscod
	FrameSizeCode  uint8 // frmsizecod
	BSID           uint8
	BSMod          uint8
	HalfRate       uint8 // Right shift applied to the sample rate

	// ChannelMode is the coded acmod, or Dolby for a Dolby Surround
	// encoded 2/0 program.
	ChannelMode Flags

	CenterLevel   float32 // 0 when no center mix level is coded
	SurroundLevel float32 // 0 when no surround mix level is coded
	LFE           bool

	// Output is the negotiated output layout, with LFE when both the stream
	// and the caller have it.
	Output Flags

	// Level is the output level after negotiation.
	Level float32

	// DynamicRange is the initial dynamic range gain of the frame: twice
	// Level, matching the transform's scaling.
	DynamicRange float32

	Bias float32

	// Programs is the number of per-program info blocks: 2 for dual mono.
	Programs int

	// AddBSILength is the number of additional bit stream information
	// bytes skipped.
	AddBSILength int
}

// SampleRate returns the frame's sample rate in Hz.
func (h FrameHeader) SampleRate() int {
	return int(tables.GetSampleRate(h.SampleRateCode, h.HalfRate))
}
