// Package a52 provides the front end of a pure Go ATSC A/52 (AC-3) decoder:
// frame synchronization, bit stream information decoding and the split-radix
// FFT the IMDCT is built on.
//
// # Basic Usage
//
// To walk the frames of an elementary stream:
//
//	dec, err := a52.New(a52.Config{Accel: a52.AccelDetect})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dec.Close()
//
//	fr := dec.NewFrameReader(file)
//	for {
//	    frame, info, err := fr.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    hdr, err := dec.Frame(frame, a52.Stereo|a52.AdjustLevel, 1, 0)
//	    if err != nil {
//	        continue
//	    }
//	    // info.SampleRate, hdr.Output, hdr.Level...
//	}
//
// # Output Negotiation
//
// Frame is given the layout the caller wants and returns the layout that
// will be produced. Front channels are folded down, never invented, so a 2/0
// stream asked for 3/2 still yields 2/0.
// With AdjustLevel the returned level is reduced so the folded channels
// cannot clip.
//
// # Dynamic Range
//
// Each frame starts with dynamic range compression enabled and no scaling.
// Install a DynamicRange (NewDRC, or any DynamicRangeFunc) after Frame to
// scale the coded per-block gains; SetDynamicRange(nil) turns compression
// off for the rest of the frame.
//
// # Transforms
//
// Once the external block decoder has written a channel's coefficients into
// Samples, InverseTransform runs the unwindowed 512-point IMDCT of a long
// block, or the two 256-point transforms of a short block. IFFT exposes the
// underlying split-radix FFT (2 to 128 points) with its input order given
// by IFFTOrder.
//
// # Thread Safety
//
// Decoder instances are NOT safe for concurrent use. Each goroutine should
// have its own Decoder. SyncInfo and IFFT are safe to call from any
// goroutine.
//
// # Reference
//
// ATSC A/52: Digital Audio Compression (AC-3, E-AC-3) Standard.
package a52
