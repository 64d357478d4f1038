package a52

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/llehouerou/go-a52/internal/tables"
)

func testStream(garbage [][]byte, frames ...[]byte) []byte {
	var buf bytes.Buffer
	for i, f := range frames {
		if i < len(garbage) {
			buf.Write(garbage[i])
		}
		buf.Write(f)
	}
	return buf.Bytes()
}

func TestFrameReader_Frames(t *testing.T) {
	a := buildFrame(defaultBSI(tables.ACMod3F2R))
	b := defaultBSI(tables.ACModStereo)
	b.fscod = tables.FSCod44100
	b.frmsizecod = 9
	frameB := buildFrame(b)

	stream := testStream(nil, a, frameB, a)
	fr := NewFrameReader(bytes.NewReader(stream), 0)

	want := [][]byte{a, frameB, a}
	for i, w := range want {
		frame, info, err := fr.Next()
		require.NoError(t, err, "frame %d", i)
		require.Equal(t, w, frame)
		require.Equal(t, len(w), info.FrameLength)
	}

	_, _, err := fr.Next()
	require.ErrorIs(t, err, io.EOF)
	require.Zero(t, fr.Skipped())
}

func TestFrameReader_Resync(t *testing.T) {
	frame := buildFrame(defaultBSI(tables.ACMod2F2R))
	garbage := [][]byte{
		{0x00, 0x0B, 0x0B},
		{0x0B, 0x77, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		bytes.Repeat([]byte{0x77}, 100),
	}
	stream := testStream(garbage, frame, frame, frame)
	stream = append(stream, 0x0B, 0x77, 0x00)

	fr := NewFrameReader(iotest.OneByteReader(bytes.NewReader(stream)), 0)
	for i := range 3 {
		got, info, err := fr.Next()
		require.NoError(t, err, "frame %d", i)
		require.Equal(t, frame, got)
		require.Equal(t, TwoF2R, info.Flags)
	}

	_, _, err := fr.Next()
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, int64(3+7+100+3), fr.Skipped())
}

func TestFrameReader_Truncated(t *testing.T) {
	frame := buildFrame(defaultBSI(tables.ACModStereo))
	fr := NewFrameReader(bytes.NewReader(frame[:len(frame)-1]), 0)

	_, _, err := fr.Next()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestFrameReader_MaxFrameBytes(t *testing.T) {
	small := buildFrame(defaultBSI(tables.ACModMono))
	big := defaultBSI(tables.ACModMono)
	big.frmsizecod = 36
	bigFrame := buildFrame(big)

	stream := testStream(nil, bigFrame, small)
	fr := NewFrameReader(bytes.NewReader(stream), 1024)

	got, _, err := fr.Next()
	require.NoError(t, err)
	require.Equal(t, small, got)
	require.Equal(t, int64(len(bigFrame)), fr.Skipped())
}

func TestFrameReader_ReadError(t *testing.T) {
	boom := errors.New("boom")
	fr := NewFrameReader(iotest.ErrReader(boom), 0)

	_, _, err := fr.Next()
	require.ErrorIs(t, err, boom)
}

func TestDecoder_NewFrameReader(t *testing.T) {
	dec, err := New(Config{MaxFrameBytes: 600})
	require.NoError(t, err)
	defer dec.Close()

	frame := buildFrame(defaultBSI(tables.ACMod3F))
	fr := dec.NewFrameReader(bytes.NewReader(frame))
	require.Equal(t, 600, fr.max)

	got, info, err := fr.Next()
	require.NoError(t, err)

	hdr, err := dec.Frame(got, Stereo, 1, 0)
	require.NoError(t, err)
	require.Equal(t, info.SampleRate, hdr.SampleRate())
}
