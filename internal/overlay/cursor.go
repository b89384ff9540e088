// Package overlay renders the visual subscribers of the interaction
// tracker: the cursor follower and the scroll progress indicator. They only
// read tracker state.
package overlay

import (
	"image/color"
	"sync"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/interaction"
	"github.com/iburimskiy/particle-backdrop/internal/render"
)

var (
	// radial gradient, core to rim
	cursorCore = color.NRGBA{R: 102, G: 126, B: 234, A: 204}
	cursorRim  = color.NRGBA{R: 118, G: 75, B: 162, A: 102}

	cursorHover = color.NRGBA{R: 99, G: 102, B: 241, A: 77}
	cursorClick = color.NRGBA{R: 168, G: 85, B: 247, A: 128}
)

// Cursor draws a disc that follows the pointer.
type Cursor struct {
	cfg config.CursorConfig

	mu    sync.RWMutex
	state interaction.State

	unsubscribe func()
}

func NewCursor(cfg config.CursorConfig, tracker *interaction.Tracker) *Cursor {
	c := &Cursor{cfg: cfg}
	c.unsubscribe = tracker.Subscribe(c.onState)
	return c
}

func (c *Cursor) onState(s interaction.State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Close stops following the tracker.
func (c *Cursor) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Visible reports whether the cursor is shown on a viewport this wide.
func (c *Cursor) Visible(viewportWidth int) bool {
	return viewportWidth >= c.cfg.MinViewportWidth
}

// Scale returns the size multiplier for the current variant.
func (c *Cursor) Scale() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return scaleFor(c.cfg, c.state)
}

func scaleFor(cfg config.CursorConfig, s interaction.State) float64 {
	switch {
	case s.Variant == interaction.CursorHover || s.Hovering:
		return cfg.HoverScale
	case s.Variant == interaction.CursorClick:
		return cfg.ClickScale
	default:
		return 1
	}
}

func (c *Cursor) Draw(s render.Surface) {
	if s == nil {
		return
	}
	w, _ := s.Size()
	if !c.Visible(w) {
		return
	}

	c.mu.RLock()
	state := c.state
	c.mu.RUnlock()

	r := c.cfg.Size / 2 * scaleFor(c.cfg, state)
	x, y := state.Pointer.X, state.Pointer.Y

	s.FillCircle(x, y, r, cursorRim)
	s.FillCircle(x, y, r*0.6, cursorCore)
	switch {
	case state.Variant == interaction.CursorHover || state.Hovering:
		s.FillCircle(x, y, r, cursorHover)
	case state.Variant == interaction.CursorClick:
		s.FillCircle(x, y, r, cursorClick)
	}
}
