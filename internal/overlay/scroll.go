package overlay

import (
	"image/color"
	"math"
	"sync"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/interaction"
	"github.com/iburimskiy/particle-backdrop/internal/render"
)

const (
	barHeight = 4

	ringSize   = 48
	ringMargin = 32
	ringWidth  = 2.5
)

var (
	barTrack   = color.NRGBA{R: 38, G: 38, B: 38, A: 255}
	barStart   = color.NRGBA{R: 99, G: 102, B: 241, A: 255}
	barEnd     = color.NRGBA{R: 168, G: 85, B: 247, A: 255}
	ringTrack  = color.NRGBA{R: 64, G: 64, B: 64, A: 255}
	ringStroke = barStart
)

// gradientSteps is how many bands approximate the bar gradient.
const gradientSteps = 32

// ScrollIndicator shows scroll progress as a top bar and a corner ring.
type ScrollIndicator struct {
	cfg config.ScrollConfig

	mu       sync.RWMutex
	progress float64

	unsubscribe func()
}

func NewScrollIndicator(cfg config.ScrollConfig, tracker *interaction.Tracker) *ScrollIndicator {
	si := &ScrollIndicator{cfg: cfg}
	si.unsubscribe = tracker.Subscribe(si.onState)
	return si
}

func (si *ScrollIndicator) onState(s interaction.State) {
	si.mu.Lock()
	si.progress = s.ScrollProgress
	si.mu.Unlock()
}

func (si *ScrollIndicator) Close() {
	if si.unsubscribe != nil {
		si.unsubscribe()
		si.unsubscribe = nil
	}
}

func (si *ScrollIndicator) Progress() float64 {
	si.mu.RLock()
	defer si.mu.RUnlock()
	return si.progress
}

// BarWidth is the filled width of the top bar on a viewport this wide.
func (si *ScrollIndicator) BarWidth(viewportWidth int) float64 {
	return float64(viewportWidth) * si.Progress() / 100
}

// RingVisible reports whether the corner ring fits this viewport.
func (si *ScrollIndicator) RingVisible(viewportWidth int) bool {
	return viewportWidth >= si.cfg.RingMinWidth
}

func (si *ScrollIndicator) Draw(s render.Surface) {
	if s == nil {
		return
	}
	w, h := s.Size()
	progress := si.Progress()

	s.FillRect(0, 0, float64(w), barHeight, barTrack)
	si.drawBar(s, si.BarWidth(w))

	if !si.RingVisible(w) {
		return
	}
	cx := float64(w) - ringMargin - ringSize/2
	cy := float64(h) - ringMargin - ringSize/2
	r := ringSize / 2 * 0.85

	s.StrokeArc(cx, cy, r, 0, 2*math.Pi, ringWidth, ringTrack)
	if progress > 0 {
		start := -math.Pi / 2
		s.StrokeArc(cx, cy, r, start, start+2*math.Pi*progress/100, ringWidth, ringStroke)
	}
	label := render.FormatPercent(progress)
	s.Text(label, cx-float64(len(label))*3, cy-8)
}

// drawBar fills the bar in bands so the gradient spans the filled part.
func (si *ScrollIndicator) drawBar(s render.Surface, width float64) {
	if width <= 0 {
		return
	}
	band := width / gradientSteps
	for i := 0; i < gradientSteps; i++ {
		c := render.Lerp(barStart, barEnd, float64(i)/float64(gradientSteps-1))
		s.FillRect(float64(i)*band, 0, band+0.5, barHeight, c)
	}
}
