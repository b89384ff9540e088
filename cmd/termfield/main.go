// Command termfield renders the particle backdrop in a terminal.
//
// Usage:
//
//	go run ./cmd/termfield [flags]
//
// Controls:
//
//	Mouse move        - Move the cursor follower
//	Mouse click       - Click variant (and blip with -sound)
//	Wheel, Up/Down    - Scroll the page
//	PgUp/PgDn         - Scroll by a screen
//	Home/End          - Jump to top/bottom
//	Esc/Ctrl+C/q      - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/frame"
	"github.com/iburimskiy/particle-backdrop/internal/render"
	"github.com/iburimskiy/particle-backdrop/internal/scene"
)

var (
	configFlag  = flag.String("config", "", "YAML config file (defaults are used when empty)")
	seedFlag    = flag.Uint64("seed", 0, "Particle seed; 0 picks a random one")
	soundFlag   = flag.Bool("sound", false, "Play a blip on click")
	logFlag     = flag.String("log", "", "Write logs to this file (the terminal is busy drawing)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

var background = color.RGBA{R: 10, G: 10, B: 12, A: 255}

type host struct {
	cfg     *config.Config
	screen  tcell.Screen
	surface *render.TerminalSurface
	scene   *scene.Scene

	buttons tcell.ButtonMask
}

func newHost(cfg *config.Config, screen tcell.Screen, seed uint64) *host {
	s := scene.New(cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	s.SetVerbose(*verboseFlag)
	return &host{
		cfg:     cfg,
		screen:  screen,
		surface: render.NewTerminalSurface(screen, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, background),
		scene:   s,
	}
}

// handle translates one terminal event into scene calls.
// It returns false when the user asked to quit.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		_, height := h.surface.Size()
		page := float64(height) * 0.9
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown:
			h.scene.ScrollBy(h.cfg.Scroll.WheelStep)
		case tcell.KeyUp:
			h.scene.ScrollBy(-h.cfg.Scroll.WheelStep)
		case tcell.KeyPgDn:
			h.scene.ScrollBy(page)
		case tcell.KeyPgUp:
			h.scene.ScrollBy(-page)
		case tcell.KeyHome:
			h.scene.ScrollTo(0)
		case tcell.KeyEnd:
			h.scene.ScrollTo(h.scene.Page().ScrollableHeight())
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}

	case *tcell.EventMouse:
		x, y := h.surface.CellToPixel(ev.Position())
		h.scene.PointerMove(x, y)

		buttons := ev.Buttons()
		if buttons&tcell.WheelDown != 0 {
			h.scene.Wheel(1)
		}
		if buttons&tcell.WheelUp != 0 {
			h.scene.Wheel(-1)
		}
		pressed := buttons&tcell.Button1 != 0
		wasPressed := h.buttons&tcell.Button1 != 0
		if pressed && !wasPressed {
			h.scene.PointerDown()
		}
		if !pressed && wasPressed {
			h.scene.PointerUp()
		}
		h.buttons = buttons

	case *tcell.EventResize:
		h.screen.Sync()
		h.scene.Resize(h.surface.Size())
	}
	return true
}

func (h *host) draw() {
	h.scene.Frame(h.surface)
	st := h.scene.Tracker().Snapshot()
	h.surface.Text(fmt.Sprintf(" %d particles | %s | %s ",
		h.scene.Field().Len(), render.FormatPercent(st.ScrollProgress), st.Variant), 0, float64(h.cfg.Terminal.CellHeight))
	h.screen.Show()
}

func (h *host) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h.scene.Mount(h.surface.Size())
	defer h.scene.Unmount()

	inbox := make(chan func(), 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			select {
			case inbox <- func() {
				if !h.handle(ev) {
					cancel()
				}
			}:
			case <-ctx.Done():
				return
			}
		}
	}()

	loop := frame.NewLoop(h.cfg.Terminal.FPS)
	err := loop.Run(ctx, inbox, h.draw)
	if *verboseFlag {
		log.Printf("rendered %d frames", loop.Frames())
	}
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func main() {
	flag.Parse()

	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Sound.Enabled = cfg.Sound.Enabled || *soundFlag

	screen, err := tcell.NewScreen()
	if err != nil {
		// No terminal to draw on: the backdrop is decorative, so just leave.
		log.Printf("Warning: terminal unavailable: %v", err)
		return
	}
	if err := screen.Init(); err != nil {
		log.Printf("Warning: terminal unavailable: %v", err)
		return
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	seed := *seedFlag
	if seed == 0 {
		seed = rand.Uint64()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	h := newHost(cfg, screen, seed)
	runErr := h.run(ctx)
	stop()
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
