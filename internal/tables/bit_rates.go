package tables

// MaxFrameSizeCode is the first frmsizecod that is rejected.
const MaxFrameSizeCode = 38

// BitRates holds the nominal bit rate in kbps for frmsizecod >> 1.
//
// Source: ATSC A/52 Table 5.18
var BitRates = [MaxFrameSizeCode / 2]uint16{
	32, 40, 48, 56, 64, 80, 96, 112, 128, 160,
	192, 224, 256, 320, 384, 448, 512, 576, 640,
}

// GetBitRate returns the nominal bit rate in kbps for frmsizecod.
// Returns 0 for reserved codes.
func GetBitRate(frmsizecod uint8) uint16 {
	if frmsizecod >= MaxFrameSizeCode {
		return 0
	}
	return BitRates[frmsizecod>>1]
}

// FrameBytes returns the frame length in bytes for fscod and frmsizecod.
// A frame always carries 1536 samples, so the length is bitrate*1536/8/rate:
// exact for 48 and 32 kHz, and rounded down to a whole 16-bit word at
// 44.1 kHz with the odd frmsizecod of each pair adding one word.
// Returns 0 for reserved codes.
//
// Source: ATSC A/52 Table 5.18
func FrameBytes(fscod, frmsizecod uint8) int {
	if frmsizecod >= MaxFrameSizeCode {
		return 0
	}
	rate := int(BitRates[frmsizecod>>1])

	switch fscod {
	case FSCod48000:
		return 4 * rate
	case FSCod44100:
		return 2 * (320*rate/147 + int(frmsizecod&1))
	case FSCod32000:
		return 6 * rate
	default:
		return 0
	}
}
