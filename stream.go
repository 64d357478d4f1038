package a52

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// FrameReader splits an A/52 elementary stream into frames. Bytes that do
// not start a valid frame are skipped one at a time until sync is found.
type FrameReader struct {
	r       *bufio.Reader
	max     int
	frame   []byte
	skipped int64
}

// NewFrameReader returns a FrameReader over r that accepts frames of at most
// maxFrameBytes bytes. Zero means DefaultMaxFrameBytes.
func NewFrameReader(r io.Reader, maxFrameBytes int) *FrameReader {
	if maxFrameBytes <= 0 {
		maxFrameBytes = DefaultMaxFrameBytes
	}
	return &FrameReader{
		r:     bufio.NewReaderSize(r, max(maxFrameBytes, 16)),
		max:   maxFrameBytes,
		frame: make([]byte, 0, maxFrameBytes),
	}
}

// NewFrameReader returns a FrameReader over r bounded by the decoder's
// MaxFrameBytes.
func (d *Decoder) NewFrameReader(r io.Reader) *FrameReader {
	return NewFrameReader(r, d.config.MaxFrameBytes)
}

// Next returns the next frame and its sync info. The returned slice is
// only valid until the following call. At the end of the stream Next
// returns io.EOF; a final frame cut short returns io.ErrUnexpectedEOF.
func (fr *FrameReader) Next() ([]byte, Info, error) {
	for {
		head, err := fr.r.Peek(SyncInfoSize)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, Info{}, err
			}
			n, _ := fr.r.Discard(len(head))
			fr.skipped += int64(n)
			return nil, Info{}, io.EOF
		}

		info, err := SyncInfo(head)
		if err != nil || info.FrameLength > fr.max {
			if _, err := fr.r.Discard(1); err != nil {
				return nil, Info{}, err
			}
			fr.skipped++
			continue
		}

		data, err := fr.r.Peek(info.FrameLength)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, Info{}, fmt.Errorf("a52: frame of %d bytes: %w", info.FrameLength, io.ErrUnexpectedEOF)
			}
			return nil, Info{}, err
		}

		fr.frame = append(fr.frame[:0], data...)
		if _, err := fr.r.Discard(info.FrameLength); err != nil {
			return nil, Info{}, err
		}
		return fr.frame, info, nil
	}
}

// Skipped returns the number of bytes discarded while searching for sync.
func (fr *FrameReader) Skipped() int64 {
	return fr.skipped
}
