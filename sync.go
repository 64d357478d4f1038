package a52

import (
	"fmt"

	"github.com/llehouerou/go-a52/internal/tables"
)

// bsidLimit is the first value of byte 5 whose bsid (top five bits) is
// rejected: bsid 12 and above.
const bsidLimit = tables.MaxBSID << 3

// dolbyMask selects acmod and dsurmod in byte 6; dolbyCode is a 2/0 stream
// with dsurmod = 2.
const (
	dolbyMask = 0xF8
	dolbyCode = tables.ACModStereo<<5 | tables.DSurModDolby<<3
)

// SyncInfo validates the syncinfo and the start of the BSI of the frame at
// the head of buf and returns the frame's size, sample rate, bit rate and
// coded channel layout. buf must hold at least SyncInfoSize bytes.
//
// The sync word, bsid, frmsizecod and fscod are all checked. On rejection
// the returned Info is the zero value and the error wraps ErrSyncRejected.
//
// Source: ATSC A/52 section 5.4.1 and Table 5.18
func SyncInfo(buf []byte) (Info, error) {
	if len(buf) < SyncInfoSize {
		return Info{}, fmt.Errorf("%w: need %d bytes, have %d", ErrSyncRejected, SyncInfoSize, len(buf))
	}
	if buf[0] != tables.SyncByte0 || buf[1] != tables.SyncByte1 {
		return Info{}, fmt.Errorf("%w: bad sync word 0x%02X%02X", ErrSyncRejected, buf[0], buf[1])
	}
	if buf[5] >= bsidLimit {
		return Info{}, fmt.Errorf("%w: unsupported bsid %d", ErrSyncRejected, buf[5]>>3)
	}

	fscod := buf[4] >> 6
	frmsizecod := buf[4] & 0x3F
	if frmsizecod >= tables.MaxFrameSizeCode {
		return Info{}, fmt.Errorf("%w: reserved frmsizecod %d", ErrSyncRejected, frmsizecod)
	}
	if int(fscod) >= len(tables.SampleRates) {
		return Info{}, fmt.Errorf("%w: reserved fscod %d", ErrSyncRejected, fscod)
	}

	half := tables.HalfRate(buf[5] >> 3)
	acmod := buf[6] >> 5

	flags := Flags(acmod)
	if buf[6]&dolbyMask == dolbyCode {
		flags = Dolby
	}
	if buf[6]&tables.LFEMask(acmod) != 0 {
		flags |= LFE
	}

	return Info{
		FrameLength: tables.FrameBytes(fscod, frmsizecod),
		SampleRate:  int(tables.GetSampleRate(fscod, half)),
		BitRate:     int(tables.GetBitRate(frmsizecod)) * 1000 >> half,
		Flags:       flags,
	}, nil
}
