// Package particle implements the animated backdrop: a population of
// drifting points sized to the surface area, joined by faint lines when
// they come close to each other.
package particle

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/render"
)

// PopulationSize returns min(limit, floor(w*h/density)). The result never
// exceeds config.MaxParticles, whatever limit is passed.
func PopulationSize(w, h int, density float64, limit int) int {
	if w <= 0 || h <= 0 || density <= 0 || limit <= 0 {
		return 0
	}
	n := math.Floor(float64(w) * float64(h) / density)
	if n > config.MaxParticles {
		n = config.MaxParticles
	}
	return min(limit, int(n))
}

// LinkOpacity is the line opacity for two particles at distance d.
// It falls linearly from maxOpacity at d=0 to 0 at d=threshold and is 0
// beyond it.
func LinkOpacity(d, threshold, maxOpacity float64) float64 {
	if d >= threshold {
		return 0
	}
	return maxOpacity * (1 - d/threshold)
}

// Field owns the particle population for one drawing surface.
type Field struct {
	cfg       config.FieldConfig
	rng       *rand.Rand
	width     int
	height    int
	particles []Particle
	linkColor color.NRGBA
}

// NewField creates an empty field. Call Resize to populate it.
// rng may be seeded for reproducible runs.
func NewField(cfg config.FieldConfig, rng *rand.Rand) *Field {
	return &Field{
		cfg: cfg,
		rng: rng,
		linkColor: color.NRGBA{
			R: cfg.LinkColor[0],
			G: cfg.LinkColor[1],
			B: cfg.LinkColor[2],
		},
	}
}

// Resize matches the field to a w x h surface and regenerates every
// particle. Resizing a populated field to its current size keeps the
// population; it reports whether a regeneration happened.
func (f *Field) Resize(w, h int) bool {
	if w == f.width && h == f.height && f.particles != nil {
		return false
	}
	f.width, f.height = max(w, 0), max(h, 0)

	n := PopulationSize(f.width, f.height, f.cfg.Density, f.cfg.MaxParticles)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = newParticle(f.rng, float64(f.width), float64(f.height))
	}
	return true
}

func (f *Field) Size() (int, int) {
	return f.width, f.height
}

func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns a copy of the current population.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Update advances every particle by one frame.
func (f *Field) Update() {
	w, h := float64(f.width), float64(f.height)
	for i := range f.particles {
		f.particles[i].step(w, h)
	}
}

// Links calls fn for every unordered pair closer than the link distance,
// together with the opacity of the line joining them.
func (f *Field) Links(fn func(a, b *Particle, opacity float64)) {
	limit := f.cfg.LinkDistance
	limitSq := limit * limit
	for i := 0; i < len(f.particles); i++ {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			dx, dy := a.X-b.X, a.Y-b.Y
			d2 := dx*dx + dy*dy
			if d2 >= limitSq {
				continue
			}
			fn(a, b, LinkOpacity(math.Sqrt(d2), limit, f.cfg.LinkOpacity))
		}
	}
}

// Draw paints the particles and their links.
func (f *Field) Draw(s render.Surface) {
	if s == nil {
		return
	}
	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}
	f.Links(func(a, b *Particle, opacity float64) {
		s.StrokeLine(a.X, a.Y, b.X, b.Y, f.cfg.LinkWidth, render.WithAlpha(f.linkColor, opacity))
	})
}

// Frame performs one full pass: clear, update, draw.
// Without a surface nothing happens, not even the update.
func (f *Field) Frame(s render.Surface) {
	if s == nil {
		return
	}
	s.Clear()
	f.Update()
	f.Draw(s)
}
