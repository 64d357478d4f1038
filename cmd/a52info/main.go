// Package main prints the frame headers of an A/52 (AC-3) elementary stream.
//
// Usage:
//
//	go run ./cmd/a52info -in movie.ac3
//	go run ./cmd/a52info -in movie.ac3 -out 2/0 -adjust -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/llehouerou/go-a52"
)

var layouts = map[string]a52.Flags{
	"1+1":    a52.Channel,
	"1/0":    a52.Mono,
	"mono":   a52.Mono,
	"2/0":    a52.Stereo,
	"stereo": a52.Stereo,
	"3/0":    a52.ThreeF,
	"2/1":    a52.TwoF1R,
	"3/1":    a52.ThreeF1R,
	"2/2":    a52.TwoF2R,
	"3/2":    a52.ThreeF2R,
	"ch1":    a52.Channel1,
	"ch2":    a52.Channel2,
	"dolby":  a52.Dolby,
}

type summary struct {
	frames    int
	bytes     int64
	rates     map[int]int
	layouts   map[a52.Flags]int
	rejected  int
	skipped   int64
	truncated bool
}

func main() {
	inFile := flag.String("in", "", "Input .ac3 file (- for stdin)")
	out := flag.String("out", "3/2", "Requested output layout (1+1, 1/0, 2/0, 3/0, 2/1, 3/1, 2/2, 3/2, ch1, ch2, dolby)")
	lfe := flag.Bool("lfe", true, "Keep the LFE channel")
	adjust := flag.Bool("adjust", false, "Adjust the output level for folded channels")
	level := flag.Float64("level", 1, "Output level")
	maxFrame := flag.Int("max", a52.DefaultMaxFrameBytes, "Largest accepted frame in bytes")
	verbose := flag.Bool("v", false, "Print every frame")
	flag.Parse()

	if *inFile == "" {
		fmt.Println("Usage: a52info -in <file.ac3> [-out 2/0] [-adjust] [-v]")
		flag.PrintDefaults()
		return
	}

	req, ok := layouts[strings.ToLower(*out)]
	if !ok {
		log.Fatalf("Unknown layout %q", *out)
	}
	if *lfe {
		req |= a52.LFE
	}
	if *adjust {
		req |= a52.AdjustLevel
	}

	var r io.Reader = os.Stdin
	if *inFile != "-" {
		f, err := os.Open(*inFile)
		if err != nil {
			log.Fatalf("Open failed: %v", err)
		}
		defer f.Close()
		r = f
	}

	dec, err := a52.New(a52.Config{Accel: a52.AccelDetect, MaxFrameBytes: *maxFrame})
	if err != nil {
		log.Fatalf("Create decoder failed: %v", err)
	}
	defer dec.Close()

	s, err := scan(dec, dec.NewFrameReader(r), req, float32(*level), *verbose)
	if err != nil {
		log.Fatalf("Read failed: %v", err)
	}
	s.print(os.Stdout)
}

func scan(dec *a52.Decoder, fr *a52.FrameReader, req a52.Flags, level float32, verbose bool) (*summary, error) {
	s := &summary{
		rates:   make(map[int]int),
		layouts: make(map[a52.Flags]int),
	}

	for {
		frame, info, err := fr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			s.truncated = true
			break
		}
		if err != nil {
			return s, err
		}

		hdr, err := dec.Frame(frame, req, level, 0)
		if err != nil {
			s.rejected++
			if verbose {
				fmt.Printf("frame %6d: %v\n", s.frames, err)
			}
			continue
		}

		if verbose {
			fmt.Printf("frame %6d: %5d Hz %6d bps %4d bytes  bsid %2d  %-9s -> %-9s level %.4f\n",
				s.frames, info.SampleRate, info.BitRate, info.FrameLength,
				hdr.BSID, info.Flags, hdr.Output, hdr.Level)
		}

		s.frames++
		s.bytes += int64(info.FrameLength)
		s.rates[info.BitRate]++
		s.layouts[info.Flags]++
	}

	s.skipped = fr.Skipped()
	return s, nil
}

func (s *summary) print(w io.Writer) {
	fmt.Fprintf(w, "Frames:   %d (%d bytes)\n", s.frames, s.bytes)
	if s.frames > 0 {
		fmt.Fprintf(w, "Duration: %d samples per channel\n", s.frames*1536)
	}
	for _, rate := range slices.Sorted(maps.Keys(s.rates)) {
		fmt.Fprintf(w, "Bit rate: %d bps (%d frames)\n", rate, s.rates[rate])
	}
	for _, layout := range slices.Sorted(maps.Keys(s.layouts)) {
		fmt.Fprintf(w, "Layout:   %s (%d frames)\n", layout, s.layouts[layout])
	}
	if s.rejected > 0 {
		fmt.Fprintf(w, "Rejected: %d frames\n", s.rejected)
	}
	if s.skipped > 0 {
		fmt.Fprintf(w, "Skipped:  %d bytes\n", s.skipped)
	}
	if s.truncated {
		fmt.Fprintln(w, "Truncated: last frame cut short")
	}
}
