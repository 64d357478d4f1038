//go:build ignore

// This script generates A/52 elementary streams for decoder testing.
// Run with: go run testdata/generate.go
//
// Requirements: FFmpeg must be installed and available in PATH.
//
// Generated test data structure:
//   testdata/generated/
//   ├── 48000_stereo_192k/
//   │   ├── sine1k.ac3
//   │   └── sine1k.json
//   ├── 44100_5.1_448k/
//   └── ...

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// TestConfig describes a test configuration
type TestConfig struct {
	SampleRate int    `json:"sample_rate"`
	Layout     string `json:"layout"`  // FFmpeg channel layout name
	ACMod      int    `json:"acmod"`   // Expected coded channel mode
	LFE        bool   `json:"lfe"`     // Expected LFE channel
	Bitrate    int    `json:"bitrate"` // Target bitrate in kbps
}

var configs = []TestConfig{
	{48000, "mono", 1, false, 96},
	{48000, "stereo", 2, false, 192},
	{48000, "3.0", 3, false, 256},
	{48000, "2.1", 2, true, 224},
	{48000, "3.1", 3, true, 320},
	{48000, "quad", 6, false, 320},
	{48000, "5.0", 7, false, 384},
	{48000, "5.1", 7, true, 448},
	{48000, "5.1", 7, true, 640},
	{44100, "stereo", 2, false, 128},
	{44100, "5.1", 7, true, 448},
	{32000, "mono", 1, false, 64},
	{32000, "5.1", 7, true, 384},
}

// FFmpeg lavfi sources, 2 seconds each
var sources = map[string]string{
	"silence": "anullsrc=r=%d",
	"sine1k":  "sine=frequency=1000:sample_rate=%d",
	"noise":   "anoisesrc=sample_rate=%d:amplitude=0.5:seed=12345",
}

func main() {
	if err := checkFFmpeg(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Please install FFmpeg: https://ffmpeg.org/download.html\n")
		os.Exit(1)
	}

	baseDir := filepath.Join("testdata", "generated")
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	for _, cfg := range configs {
		dirName := fmt.Sprintf("%d_%s_%dk", cfg.SampleRate, cfg.Layout, cfg.Bitrate)
		dir := filepath.Join(baseDir, dirName)
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating directory %s: %v\n", dir, err)
			continue
		}

		for name, source := range sources {
			if err := generateTestCase(dir, name, source, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error generating %s/%s: %v\n", dirName, name, err)
			} else {
				fmt.Printf("Generated %s/%s\n", dirName, name)
			}
		}
	}

	fmt.Println("\nDone!")
}

func checkFFmpeg() error {
	cmd := exec.Command("ffmpeg", "-version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg not found: %w", err)
	}
	return nil
}

func generateTestCase(dir, name, source string, cfg TestConfig) error {
	ac3Path := filepath.Join(dir, name+".ac3")
	jsonPath := filepath.Join(dir, name+".json")

	// Skip if all files exist
	if fileExists(ac3Path) && fileExists(jsonPath) {
		return nil
	}

	input := fmt.Sprintf(source, cfg.SampleRate)
	cmd := exec.Command("ffmpeg", "-y",
		"-f", "lavfi", "-t", "2", "-i", input,
		"-af", "aformat=channel_layouts="+cfg.Layout,
		"-c:a", "ac3", "-b:a", fmt.Sprintf("%dk", cfg.Bitrate),
		"-f", "ac3", ac3Path)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("encoding AC-3: %w", err)
	}

	return writeConfig(jsonPath, cfg)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func writeConfig(path string, cfg TestConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
