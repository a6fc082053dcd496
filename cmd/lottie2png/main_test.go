package main

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gogpu/lottie"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff8000", color.NRGBA{0xFF, 0x80, 0x00, 0xFF}, false},
		{"00ff00", color.NRGBA{0x00, 0xFF, 0x00, 0xFF}, false},
		{"#fff", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestComposeBackground(t *testing.T) {
	s := lottie.NewSurface(2, 1)
	s.Buffer()[0] = 0xFFFF0000 // opaque red, second pixel transparent

	img := compose(s, color.NRGBA{0, 0, 0xFF, 0xFF})
	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0xFFFF || b != 0 {
		t.Errorf("opaque pixel = %v, want red", img.At(0, 0))
	}
	if r, _, b, _ := img.At(1, 0).RGBA(); r != 0 || b != 0xFFFF {
		t.Errorf("transparent pixel = %v, want background blue", img.At(1, 0))
	}

	if _, _, _, a := compose(s, nil).At(1, 0).RGBA(); a != 0 {
		t.Error("without background transparency should be kept")
	}
}

func TestRunAllFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		input:      "../../testdata/spinner.json",
		output:     filepath.Join(dir, "frame-%02d.png"),
		frame:      -1,
		width:      64,
		height:     64,
		engine:     "software",
		background: "#000000",
		keypath:    "**.fill",
		fill:       "0,0,1",
		workers:    3,
	}
	if err := run(cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "frame-*.png"))
	if len(matches) != 60 {
		t.Fatalf("wrote %d frames, want 60", len(matches))
	}

	f, err := os.Open(filepath.Join(dir, "frame-00.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("frame size = %v, want 64x64", b)
	}
	if r, _, b, _ := img.At(32, 32).RGBA(); r > 0x0400 || b < 0xFB00 {
		t.Errorf("center = %v, want the blue fill override", img.At(32, 32))
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		total, n int
		want     [][2]int
	}{
		{0, 4, nil},
		{5, 1, [][2]int{{0, 5}}},
		{3, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{10, 3, [][2]int{{0, 4}, {4, 8}, {8, 10}}},
		{4, 0, [][2]int{{0, 4}}},
	}
	for _, tt := range tests {
		got := chunks(tt.total, tt.n)
		if !slices.Equal(got, tt.want) {
			t.Errorf("chunks(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
		}
	}
}

func TestRunSingleFrame(t *testing.T) {
	out := filepath.Join(t.TempDir(), "one.png")
	cfg := config{
		input:   "../../testdata/spinner.json",
		output:  out,
		frame:   45,
		engine:  "software",
		keypath: "**",
	}
	if err := run(cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestCheckPattern(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr bool
	}{
		{"frame-%03d.png", false},
		{"out/%d.png", false},
		{"frame.png", true},
		{"frame-%s.png", true},
		{"frame-%d-%d.png", true},
		{"100%.png", true},
	}
	for _, tt := range tests {
		if err := checkPattern(tt.pattern); (err != nil) != tt.wantErr {
			t.Errorf("checkPattern(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
		}
	}
}

func TestRunAllFramesNeedsPattern(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		input:   "../../testdata/spinner.json",
		output:  filepath.Join(dir, "frame.png"),
		frame:   -1,
		engine:  "software",
		keypath: "**",
	}
	if err := run(cfg); err == nil {
		t.Error("run() should reject an output without a frame verb")
	}
	if matches, _ := filepath.Glob(filepath.Join(dir, "*")); len(matches) != 0 {
		t.Errorf("run() wrote %v before rejecting the pattern", matches)
	}
}

func TestRunRejectsBadFill(t *testing.T) {
	cfg := config{
		input:   "../../testdata/spinner.json",
		output:  filepath.Join(t.TempDir(), "x.png"),
		engine:  "software",
		keypath: "**",
		fill:    "2,0,0",
	}
	if err := run(cfg); err == nil {
		t.Error("run() should reject out-of-range fill channels")
	}
}
