package tables

// Sync bytes that open every A/52 frame.
// Source: ATSC A/52 section 5.4.1.1
const (
	SyncByte0 = 0x0B
	SyncByte1 = 0x77
)

// SampleRates maps fscod to the full-rate sample rate in Hz.
// fscod 3 is reserved.
//
// Source: ATSC A/52 Table 5.6
var SampleRates = [3]uint32{48000, 44100, 32000}

// Sample rate families (fscod values).
const (
	FSCod48000 = 0
	FSCod44100 = 1
	FSCod32000 = 2
)

// MaxBSID is the first bsid that is rejected. bsid 9-11 are the
// reduced-sample-rate streams, decoded at 1/2, 1/4 and 1/8 rate.
const MaxBSID = 12

// halfRate maps bsid to the sample-rate shift applied to the stream.
var halfRate = [MaxBSID]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3}

// HalfRate returns the right shift applied to sample and bit rates for a
// given bsid. Returns 0 for bsid values >= MaxBSID.
func HalfRate(bsid uint8) uint8 {
	if bsid >= MaxBSID {
		return 0
	}
	return halfRate[bsid]
}

// GetSampleRate returns the sample rate for fscod after applying the
// half-rate shift. Returns 0 for the reserved fscod.
func GetSampleRate(fscod, half uint8) uint32 {
	if int(fscod) >= len(SampleRates) {
		return 0
	}
	return SampleRates[fscod] >> half
}
