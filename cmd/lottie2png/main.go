// Command lottie2png renders frames of a Lottie animation to PNG files.
//
// Usage:
//
//	lottie2png -input spinner.json -output frame.png -frame 10
//	lottie2png -input spinner.json -output out/frame-%03d.png -frame -1
//	lottie2png -input spinner.json -keypath "**.fill" -fill 1,0,0 -background "#ffffff"
//
// With -frame -1 the frames are split into contiguous ranges rendered in
// parallel; each worker loads its own Animation.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/lottie"
	"github.com/gogpu/lottie/internal/parallel"
	"golang.org/x/image/draw"
)

type config struct {
	input      string
	output     string
	frame      int
	width      int
	height     int
	engine     string
	background string
	keypath    string
	fill       string
	workers    int
	verbose    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.input, "input", "", "animation file (JSON)")
	flag.StringVar(&cfg.output, "output", "frame.png", "output file; with -frame -1 a pattern such as frame-%03d.png")
	flag.IntVar(&cfg.frame, "frame", 0, "frame to render, -1 renders all frames")
	flag.IntVar(&cfg.width, "width", 0, "output width (0 = animation width)")
	flag.IntVar(&cfg.height, "height", 0, "output height (0 = animation height)")
	flag.StringVar(&cfg.engine, "engine", "", "engine name (rlottie, software); empty selects the best available")
	flag.StringVar(&cfg.background, "background", "", "background color #rrggbb; empty keeps transparency")
	flag.StringVar(&cfg.keypath, "keypath", "**", "keypath for -fill")
	flag.StringVar(&cfg.fill, "fill", "", "fill color override r,g,b in [0, 1]")
	flag.IntVar(&cfg.workers, "workers", 0, "parallel workers for -frame -1 (0 = GOMAXPROCS)")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	if cfg.input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if cfg.verbose {
		lottie.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil {
		log.Fatalf("lottie2png: %v", err)
	}
}

func run(cfg config) error {
	var opts []lottie.Option
	if cfg.engine != "" {
		opts = append(opts, lottie.WithEngineName(cfg.engine))
	}

	if cfg.frame < 0 {
		if err := checkPattern(cfg.output); err != nil {
			return err
		}
	}

	var bg color.Color
	if cfg.background != "" {
		c, err := parseHexColor(cfg.background)
		if err != nil {
			return err
		}
		bg = c
	}

	anim, err := open(cfg, opts)
	if err != nil {
		return err
	}
	defer anim.Close()

	w, h := anim.Size()
	if cfg.width > 0 {
		w = cfg.width
	}
	if cfg.height > 0 {
		h = cfg.height
	}

	if cfg.frame >= 0 {
		s := lottie.NewSurface(w, h)
		if err := renderFrame(anim, s, cfg.frame, cfg.output, bg); err != nil {
			return err
		}
		log.Printf("rendered frame %d of %s (%dx%d, %s engine)", cfg.frame, cfg.input, w, h, anim.EngineName())
		return nil
	}

	total := anim.TotalFrames()
	pool := parallel.NewPool(cfg.workers)
	defer pool.Close()

	var jobs []func() error
	for _, r := range chunks(total, pool.Workers()) {
		jobs = append(jobs, func() error {
			a, err := open(cfg, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			s := lottie.NewSurface(w, h)
			for frame := r[0]; frame < r[1]; frame++ {
				if err := renderFrame(a, s, frame, fmt.Sprintf(cfg.output, frame), bg); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := pool.Run(jobs); err != nil {
		return err
	}

	log.Printf("rendered %d frames of %s (%dx%d, %s engine, %d workers)",
		total, cfg.input, w, h, anim.EngineName(), pool.Workers())
	return nil
}

// open loads the input and applies the -fill override.
func open(cfg config, opts []lottie.Option) (*lottie.Animation, error) {
	anim, err := lottie.FromFile(cfg.input, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.fill != "" {
		if err := applyFill(anim, cfg.keypath, cfg.fill); err != nil {
			_ = anim.Close()
			return nil, err
		}
	}
	return anim, nil
}

func renderFrame(anim *lottie.Animation, s *lottie.Surface, frame int, path string, bg color.Color) error {
	if err := anim.Render(frame, s); err != nil {
		return fmt.Errorf("frame %d: %w", frame, err)
	}
	return writePNG(path, compose(s, bg))
}

// checkPattern reports an output pattern that does not give every frame
// its own file name.
func checkPattern(pattern string) error {
	first, second := fmt.Sprintf(pattern, 0), fmt.Sprintf(pattern, 1)
	if strings.Contains(first, "%!") || first == second {
		return fmt.Errorf("-output %q: rendering all frames needs one integer verb such as frame-%%03d.png", pattern)
	}
	return nil
}

// chunks splits [0, total) into at most n contiguous [start, end) ranges.
func chunks(total, n int) [][2]int {
	if total <= 0 {
		return nil
	}
	n = max(1, min(n, total))
	size := (total + n - 1) / n
	var out [][2]int
	for start := 0; start < total; start += size {
		out = append(out, [2]int{start, min(start+size, total)})
	}
	return out
}

// applyFill parses "r,g,b" and overrides the fill color at keypath.
func applyFill(anim *lottie.Animation, keypath, rgb string) error {
	parts := strings.Split(rgb, ",")
	if len(parts) != 3 {
		return fmt.Errorf("-fill %q: want r,g,b", rgb)
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("-fill %q: %w", rgb, err)
		}
		c[i] = v
	}
	prop, ok := lottie.NewFillColor(c[0], c[1], c[2])
	if !ok {
		return fmt.Errorf("-fill %q: channels must be in [0, 1]", rgb)
	}
	kp, err := lottie.NewKeyPath(keypath)
	if err != nil {
		return err
	}
	return anim.SetProperty(kp, prop)
}

// parseHexColor parses "#rrggbb" or "rrggbb".
func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xFF}, nil
}

// compose returns the surface as an image, drawn over bg when bg is set.
func compose(s *lottie.Surface, bg color.Color) image.Image {
	frame := s.Image()
	if bg == nil {
		return frame
	}
	dst := image.NewNRGBA(frame.Bounds())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), frame, image.Point{}, draw.Over)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
