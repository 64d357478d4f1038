package a52

import (
	"errors"
	"fmt"

	"github.com/llehouerou/go-a52/internal/bits"
	"github.com/llehouerou/go-a52/internal/output"
	"github.com/llehouerou/go-a52/internal/tables"
)

// Frame decodes the bit stream information of the frame at the head of buf
// and prepares the decoder for its audio blocks.
//
// req is the output layout the caller wants; OR in LFE to keep the LFE
// channel and AdjustLevel to have level reduced for channels folded into
// the output. The layout actually produced, and the level that goes with
// it, are returned in the header.
//
// Frame does not re-check the sync word; run SyncInfo first. A header that
// runs past the end of buf fails with ErrMalformedFrame and an unsupported
// req with ErrDownmixRejected. On error the decoder state is unchanged.
//
// Source: ATSC A/52 section 5.3.2 and 5.4.2
func (d *Decoder) Frame(buf []byte, req Flags, level, bias float32) (FrameHeader, error) {
	if d == nil {
		return FrameHeader{}, ErrNilDecoder
	}
	if d.samples == nil {
		return FrameHeader{}, ErrAllocation
	}

	r := bits.NewCursor(buf)

	hdr, err := parseBSIHead(r)
	if err != nil {
		return FrameHeader{}, malformed(err)
	}

	out, outLevel, err := output.Negotiate(int(hdr.ChannelMode), int(req), level, hdr.CenterLevel, hdr.SurroundLevel)
	if err != nil {
		return FrameHeader{}, fmt.Errorf("%w: %w", ErrDownmixRejected, err)
	}
	hdr.Output = Flags(out)
	if hdr.LFE && req.HasLFE() {
		hdr.Output |= LFE
	}
	hdr.Level = outLevel
	hdr.DynamicRange = 2 * outLevel
	hdr.Bias = bias

	if err := parseBSITail(r, &hdr); err != nil {
		return FrameHeader{}, malformed(err)
	}

	d.commit(hdr)
	return hdr, nil
}

func malformed(err error) error {
	if errors.Is(err, bits.ErrOutOfBits) {
		return fmt.Errorf("%w: %w", ErrMalformedFrame, err)
	}
	return err
}

// commit folds an accepted header into the decoder.
func (d *Decoder) commit(hdr FrameHeader) {
	d.hdr = hdr

	// Twice the output level compensates for the transform's scaling.
	d.level = hdr.DynamicRange
	d.dynrng = d.level
	d.dynrnge = true
	d.drc = nil

	d.resetDeltaBitAllocation()
}

// parseBSIHead reads syncinfo and the BSI up to and including lfeon: the
// fields that decide the channel layout.
//
// Source: ATSC A/52 section 5.3.1 and 5.3.2
func parseBSIHead(r *bits.Cursor) (FrameHeader, error) {
	var hdr FrameHeader

	// syncword (16), crc1 (16)
	if err := r.Skip(32); err != nil {
		return hdr, err
	}

	fscod, err := r.Read(2)
	if err != nil {
		return hdr, err
	}
	frmsizecod, err := r.Read(6)
	if err != nil {
		return hdr, err
	}
	bsid, err := r.Read(5)
	if err != nil {
		return hdr, err
	}
	bsmod, err := r.Read(3)
	if err != nil {
		return hdr, err
	}
	acmod, err := r.Read(3)
	if err != nil {
		return hdr, err
	}

	hdr.SampleRateCode = uint8(fscod)
	hdr.FrameSizeCode = uint8(frmsizecod)
	hdr.BSID = uint8(bsid)
	hdr.BSMod = uint8(bsmod)
	hdr.HalfRate = tables.HalfRate(uint8(bsid))
	hdr.ChannelMode = Flags(acmod)

	if acmod == tables.ACModStereo {
		dsurmod, err := r.Read(2)
		if err != nil {
			return hdr, err
		}
		if dsurmod == tables.DSurModDolby {
			hdr.ChannelMode = Dolby
		}
	}

	if tables.HasCenterMixLevel(uint8(acmod)) {
		cmixlev, err := r.Read(2)
		if err != nil {
			return hdr, err
		}
		hdr.CenterLevel = tables.CenterMixLevels[cmixlev]
	}

	if tables.HasSurroundMixLevel(uint8(acmod)) {
		surmixlev, err := r.Read(2)
		if err != nil {
			return hdr, err
		}
		hdr.SurroundLevel = tables.SurroundMixLevels[surmixlev]
	}

	if hdr.LFE, err = r.ReadBool(); err != nil {
		return hdr, err
	}

	return hdr, nil
}

// parseBSITail skips the rest of the BSI: the per-program info, copyright
// flags, time codes and additional BSI.
func parseBSITail(r *bits.Cursor, hdr *FrameHeader) error {
	hdr.Programs = 1
	if hdr.ChannelMode == Channel {
		hdr.Programs = 2
	}

	for range hdr.Programs {
		if err := skipProgramInfo(r); err != nil {
			return err
		}
	}

	// copyrightb, origbs
	if err := r.Skip(2); err != nil {
		return err
	}

	// timecod1, timecod2
	for range 2 {
		if err := skipOptional(r, 14); err != nil {
			return err
		}
	}

	addbsie, err := r.ReadBool()
	if err != nil {
		return err
	}
	if addbsie {
		addbsil, err := r.Read(6)
		if err != nil {
			return err
		}
		if err := r.Skip(8 * uint(addbsil)); err != nil {
			return err
		}
		hdr.AddBSILength = int(addbsil)
	}

	return nil
}

// skipProgramInfo skips dialnorm and the optional compr, langcod and
// mixlevel/roomtyp fields of one program.
func skipProgramInfo(r *bits.Cursor) error {
	// dialnorm
	if err := r.Skip(5); err != nil {
		return err
	}
	// compr
	if err := skipOptional(r, 8); err != nil {
		return err
	}
	// langcod
	if err := skipOptional(r, 8); err != nil {
		return err
	}
	// mixlevel (5), roomtyp (2)
	return skipOptional(r, 7)
}

// skipOptional reads a presence bit and skips n bits if it is set.
func skipOptional(r *bits.Cursor, n uint) error {
	present, err := r.ReadBool()
	if err != nil {
		return err
	}
	if !present {
		return nil
	}
	return r.Skip(n)
}
