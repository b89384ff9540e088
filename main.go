package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/render"
	"github.com/iburimskiy/particle-backdrop/internal/scene"
)

const (
	// Button dimensions
	buttonWidth  = 120
	buttonHeight = 40
	buttonX      = 20
	buttonY      = 50
)

var (
	configFlag  = flag.String("config", "", "YAML config file (defaults are used when empty)")
	seedFlag    = flag.Uint64("seed", 0, "Particle seed; 0 picks a random one")
	soundFlag   = flag.Bool("sound", false, "Play a blip on click")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

var background = color.RGBA{R: 10, G: 10, B: 12, A: 255}

type game struct {
	ctx   context.Context
	cfg   *config.Config
	scene *scene.Scene

	// viewport
	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

func newGame(ctx context.Context, cfg *config.Config) *game {
	g := &game{
		ctx:     ctx,
		cfg:     cfg,
		prevKey: map[ebiten.Key]bool{},
	}
	g.scene = newScene(cfg)
	return g
}

func newScene(cfg *config.Config) *scene.Scene {
	seed := *seedFlag
	if seed == 0 {
		seed = rand.Uint64()
	}
	s := scene.New(cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	s.SetVerbose(*verboseFlag)
	return s
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.syncViewport()

	mouseX, mouseY := ebiten.CursorPosition()
	g.scene.PointerMove(float64(mouseX), float64(mouseY))

	// Button hover is reported to the tracker like any other hover source
	hovered := mouseX >= buttonX && mouseX <= buttonX+buttonWidth &&
		mouseY >= buttonY && mouseY <= buttonY+buttonHeight
	if hovered != g.buttonHovered {
		g.buttonHovered = hovered
		g.scene.Tracker().SetHovering(hovered)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.scene.PointerDown()
		if g.buttonHovered {
			g.buttonPressed = true
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.scene.PointerUp()
		if g.buttonPressed && g.buttonHovered {
			if err := g.openConfigDialog(); err != nil {
				g.lastErr = err
			}
		}
		g.buttonPressed = false
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		// ebiten reports positive values when scrolling up
		g.scene.Wheel(-wheelY)
	}

	step := g.cfg.Scroll.WheelStep
	page := float64(g.height) * 0.9
	if justPressed(ebiten.KeyArrowDown) {
		g.scene.ScrollBy(step)
	}
	if justPressed(ebiten.KeyArrowUp) {
		g.scene.ScrollBy(-step)
	}
	pageDown := justPressed(ebiten.KeyPageDown)
	if justPressed(ebiten.KeySpace) || pageDown {
		g.scene.ScrollBy(page)
	}
	if justPressed(ebiten.KeyPageUp) {
		g.scene.ScrollBy(-page)
	}
	if justPressed(ebiten.KeyHome) {
		g.scene.ScrollTo(0)
	}
	if justPressed(ebiten.KeyEnd) && g.scene.Mounted() {
		g.scene.ScrollTo(g.scene.Page().ScrollableHeight())
	}

	if justPressed(ebiten.KeyO) {
		if err := g.openConfigDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	return nil
}

// syncViewport mounts the scene on the first frame and forwards window
// resizes afterwards.
func (g *game) syncViewport() {
	if g.width == 0 || g.height == 0 {
		return
	}
	if !g.scene.Mounted() {
		g.scene.Mount(g.width, g.height)
		g.updateCursorMode()
		return
	}
	if w, h := g.scene.Size(); w != g.width || h != g.height {
		g.scene.Resize(g.width, g.height)
		g.updateCursorMode()
	}
}

// updateCursorMode hides the system cursor whenever the custom one is drawn.
func (g *game) updateCursorMode() {
	if g.width >= g.cfg.Cursor.MinViewportWidth {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.scene.Mounted() {
		screen.Fill(background)
		return
	}
	g.scene.Frame(render.NewEbitenSurface(screen, background))

	g.drawButton(screen)

	st := g.scene.Tracker().Snapshot()
	direction := "up"
	if st.ScrollingDown {
		direction = "down"
	}
	status := fmt.Sprintf("%d particles | scroll %s (%s) | cursor %s",
		g.scene.Field().Len(), render.FormatPercent(st.ScrollProgress), direction, st.Variant)
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *game) drawButton(screen *ebiten.Image) {
	// Button background
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, float32(buttonX), float32(buttonY), float32(buttonWidth), float32(buttonHeight), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(buttonX), float32(buttonY), float32(buttonWidth), float32(buttonHeight), 2, borderColor, false)

	text := "Open Config"
	textWidth := len(text) * 6 // debug font glyph width
	textX := buttonX + (buttonWidth-textWidth)/2
	textY := buttonY + (buttonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *game) openConfigDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Backdrop Config"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(filename)
	if err != nil {
		return err
	}
	log.Printf("Loaded config %s", filename)
	g.applyConfig(cfg)
	return nil
}

// applyConfig swaps in a new scene built from cfg. The old scene is fully
// unmounted before the new one is mounted.
func (g *game) applyConfig(cfg *config.Config) {
	cfg.Sound.Enabled = cfg.Sound.Enabled || *soundFlag
	g.scene.Unmount()
	g.cfg = cfg
	g.scene = newScene(cfg)
	// re-report the button hover to the new tracker on the next update
	g.buttonHovered = false
	g.lastErr = nil
	ebiten.SetWindowTitle(cfg.Window.Title)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func fail(err error) {
	log.Printf("Error: %v", err)
	if dlgErr := zenity.Error(err.Error(), zenity.Title("Particle Backdrop")); dlgErr != nil && *verboseFlag {
		log.Printf("Warning: failed to show error dialog: %v", dlgErr)
	}
	os.Exit(1)
}

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fail(err)
	}
	cfg.Sound.Enabled = cfg.Sound.Enabled || *soundFlag

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := newGame(ctx, cfg)
	err = ebiten.RunGame(g)
	g.scene.Unmount()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		fail(err)
	}
}
