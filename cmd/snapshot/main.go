// Command snapshot renders the backdrop headlessly and writes a PNG.
//
// Usage:
//
//	go run ./cmd/snapshot -w 1280 -h 800 -frames 120 -out backdrop.png
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/render"
	"github.com/iburimskiy/particle-backdrop/internal/scene"
)

var (
	configFlag  = flag.String("config", "", "YAML config file (defaults are used when empty)")
	widthFlag   = flag.Int("w", config.WindowWidth, "Image width")
	heightFlag  = flag.Int("h", config.WindowHeight, "Image height")
	framesFlag  = flag.Int("frames", 60, "Frames to simulate before saving")
	seedFlag    = flag.Uint64("seed", 1, "Particle seed")
	scrollFlag  = flag.Float64("scroll", 0, "Scroll offset in pixels")
	pointerFlag = flag.String("pointer", "", "Cursor position as x,y (hidden when empty)")
	fontFlag    = flag.Float64("font", 13, "Label font size")
	outFlag     = flag.String("out", "backdrop.png", "Output PNG path")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

var background = color.RGBA{R: 10, G: 10, B: 12, A: 255}

// parsePoint reads an "x,y" pair.
func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("point %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: %w", s, err)
	}
	return x, y, nil
}

type options struct {
	width, height int
	frames        int
	seed          uint64
	scroll        float64
	pointer       *[2]float64
	fontSize      float64
}

// renderSnapshot simulates the scene for opts.frames frames and returns the surface
// holding the last one.
func renderSnapshot(cfg *config.Config, opts options) (*render.ImageSurface, error) {
	if opts.width <= 0 || opts.height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	if opts.frames < 1 {
		opts.frames = 1
	}

	surface := render.NewImageSurface(opts.width, opts.height, background)
	if err := surface.UseMonoFont(opts.fontSize); err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	s := scene.New(cfg, rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15)))
	s.SetVerbose(*verboseFlag)
	s.Mount(opts.width, opts.height)
	defer s.Unmount()

	if opts.pointer != nil {
		s.PointerMove(opts.pointer[0], opts.pointer[1])
	} else {
		// park the cursor off-canvas
		s.PointerMove(-1000, -1000)
	}
	s.ScrollTo(opts.scroll)

	for i := 0; i < opts.frames; i++ {
		s.Frame(surface)
	}
	if *verboseFlag {
		st := s.Tracker().Snapshot()
		log.Printf("%d particles, scroll %s, cursor %s",
			s.Field().Len(), render.FormatPercent(st.ScrollProgress), st.Variant)
	}
	return surface, nil
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	// headless: never open an audio device
	cfg.Sound.Enabled = false

	opts := options{
		width:    *widthFlag,
		height:   *heightFlag,
		frames:   *framesFlag,
		seed:     *seedFlag,
		scroll:   *scrollFlag,
		fontSize: *fontFlag,
	}
	if *pointerFlag != "" {
		x, y, err := parsePoint(*pointerFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.pointer = &[2]float64{x, y}
	}

	surface, err := renderSnapshot(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := surface.SavePNG(*outFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s (%dx%d, %d frames)\n", *outFlag, opts.width, opts.height, opts.frames)
}
