// Package scene composes the backdrop: it owns the tracker, the particle
// field and the overlays, and exposes the boundary every host feeds with
// its native events.
package scene

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/particle-backdrop/internal/audio"
	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/interaction"
	"github.com/iburimskiy/particle-backdrop/internal/overlay"
	"github.com/iburimskiy/particle-backdrop/internal/page"
	"github.com/iburimskiy/particle-backdrop/internal/particle"
	"github.com/iburimskiy/particle-backdrop/internal/render"
)

// shadeBands is the number of horizontal bands of the hero shade.
const shadeBands = 24

var (
	navIdle  = color.NRGBA{R: 23, G: 23, B: 23, A: 200}
	navHover = color.NRGBA{R: 79, G: 70, B: 229, A: 220}
)

// Scene is mounted once per host session. Everything it acquires in Mount
// is released together in Unmount; calls made while unmounted are ignored.
type Scene struct {
	cfg     *config.Config
	rng     *rand.Rand
	verbose bool

	tracker *interaction.Tracker
	field   *particle.Field
	page    *page.Page
	nav     *page.Nav

	cursor *overlay.Cursor
	scroll *overlay.ScrollIndicator
	cue    *audio.Cue

	mounted       bool
	width, height int
	pressed       bool
}

// New prepares a scene. rng drives particle generation; pass a seeded
// generator for reproducible output.
func New(cfg *config.Config, rng *rand.Rand) *Scene {
	return &Scene{
		cfg:     cfg,
		rng:     rng,
		tracker: interaction.NewTracker(),
		nav:     page.NewNav(page.DefaultLinks),
	}
}

// SetVerbose enables per-event logging.
func (s *Scene) SetVerbose(v bool) {
	s.verbose = v
}

func (s *Scene) Tracker() *interaction.Tracker {
	return s.tracker
}

func (s *Scene) Field() *particle.Field {
	return s.field
}

func (s *Scene) Page() *page.Page {
	return s.page
}

func (s *Scene) Nav() *page.Nav {
	return s.nav
}

func (s *Scene) Mounted() bool {
	return s.mounted
}

// Mount sizes the field to the viewport, attaches a fresh tracker to the
// page and subscribes the overlays. A remount starts from the initial
// interaction state.
func (s *Scene) Mount(w, h int) {
	if s.mounted {
		return
	}
	s.tracker = interaction.NewTracker()
	s.pressed = false
	s.field = particle.NewField(s.cfg.Field, s.rng)
	s.page = page.New(s.cfg.Scroll.ContentHeight)
	s.mounted = true
	s.resize(w, h)

	s.tracker.Attach(s.page)
	s.cursor = overlay.NewCursor(s.cfg.Cursor, s.tracker)
	s.scroll = overlay.NewScrollIndicator(s.cfg.Scroll, s.tracker)
	s.cue = audio.NewCue(s.cfg.Sound, s.tracker)

	if s.verbose {
		log.Printf("scene mounted at %dx%d with %d particles", w, h, s.field.Len())
	}
}

// Unmount releases the tracker and the subscribers. It is safe to call
// more than once and before any frame was drawn.
func (s *Scene) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.tracker.Detach()
	if s.cursor != nil {
		s.cursor.Close()
	}
	if s.scroll != nil {
		s.scroll.Close()
	}
	if s.cue != nil {
		s.cue.Close()
	}
	if s.verbose {
		log.Println("scene unmounted")
	}
}

// Resize regenerates the particle population for a new viewport.
func (s *Scene) Resize(w, h int) {
	if !s.mounted {
		return
	}
	s.resize(w, h)
	s.tracker.OnScroll()
}

func (s *Scene) resize(w, h int) {
	s.width, s.height = w, h
	regenerated := s.field.Resize(w, h)
	s.page.SetViewportHeight(float64(h))

	_, wasHovered := s.nav.Hovered()
	s.nav.Layout(float64(w))
	if wasHovered {
		p := s.tracker.Snapshot().Pointer
		if entered, _ := s.nav.Pointer(p.X, p.Y); !entered {
			s.leaveLink()
		}
	}
	if regenerated && s.verbose {
		log.Printf("viewport %dx%d: %d particles", w, h, s.field.Len())
	}
}

func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

func (s *Scene) PointerMove(x, y float64) {
	if !s.mounted {
		return
	}
	s.tracker.OnPointerMove(x, y)

	entered, left := s.nav.Pointer(x, y)
	switch {
	case entered:
		s.enterLink()
	case left:
		s.leaveLink()
	}
}

func (s *Scene) enterLink() {
	s.tracker.SetHovering(true)
	if !s.pressed {
		s.tracker.SetCursorVariant(interaction.CursorHover)
	}
}

func (s *Scene) leaveLink() {
	s.tracker.SetHovering(false)
	if !s.pressed {
		s.tracker.SetCursorVariant(interaction.CursorDefault)
	}
}

func (s *Scene) PointerDown() {
	if !s.mounted {
		return
	}
	s.pressed = true
	s.tracker.SetCursorVariant(interaction.CursorClick)
}

func (s *Scene) PointerUp() {
	if !s.mounted || !s.pressed {
		return
	}
	s.pressed = false
	if _, ok := s.nav.Hovered(); ok {
		s.tracker.SetCursorVariant(interaction.CursorHover)
		return
	}
	s.tracker.SetCursorVariant(interaction.CursorDefault)
}

// Wheel scrolls by dy wheel notches; positive values scroll down.
func (s *Scene) Wheel(notches float64) {
	s.ScrollBy(notches * s.cfg.Scroll.WheelStep)
}

// ScrollBy scrolls the page by dy pixels and notifies the tracker.
func (s *Scene) ScrollBy(dy float64) {
	if !s.mounted {
		return
	}
	s.page.Scroll(dy)
	s.tracker.OnScroll()
}

// ScrollTo jumps to an absolute offset.
func (s *Scene) ScrollTo(y float64) {
	if !s.mounted {
		return
	}
	s.page.ScrollTo(y)
	s.tracker.OnScroll()
}

// Frame runs one update and draw pass of the field and paints the
// overlays on top. Without a surface, or once unmounted, it does nothing.
func (s *Scene) Frame(surface render.Surface) {
	if !s.mounted || surface == nil {
		return
	}
	s.field.Frame(surface)
	s.drawShade(surface)
	s.drawNav(surface)
	s.scroll.Draw(surface)
	s.cursor.Draw(surface)
}

func (s *Scene) drawNav(surface render.Surface) {
	hovered, ok := s.nav.Hovered()
	for _, l := range s.nav.Links() {
		bg := navIdle
		if ok && l.Label == hovered.Label {
			bg = navHover
		}
		surface.FillRect(l.Rect.X, l.Rect.Y, l.Rect.W, l.Rect.H, bg)
		surface.Text(l.Label, l.Rect.X+8, l.Rect.Y+l.Rect.H/2-8)
	}
}

// drawShade darkens the field toward the top and bottom edges, lighter in
// the middle, like the hero's black gradient.
func (s *Scene) drawShade(surface render.Surface) {
	w, h := surface.Size()
	band := float64(h) / shadeBands
	for i := 0; i < shadeBands; i++ {
		mid := (float64(i) + 0.5) / shadeBands
		// 0.6 at the edges, 0.3 in the middle
		alpha := 0.3 + 0.3*math.Abs(mid-0.5)*2
		surface.FillRect(0, float64(i)*band, float64(w), band+0.5, render.RGBA(0, 0, 0, alpha))
	}
}
