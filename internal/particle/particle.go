package particle

import (
	"image/color"
	"math"
	"math/rand/v2"
)

const (
	minRadius  = 0.5
	radiusSpan = 3.0
	maxSpeed   = 0.5

	// Channels are drawn from [colorFloor, colorFloor+colorSpan).
	colorFloor = 155
	colorSpan  = 100
	minAlpha   = 0.1
	alphaSpan  = 0.5
)

// Particle is a point drifting at constant velocity across the surface.
type Particle struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Color  color.NRGBA
}

func newParticle(rng *rand.Rand, w, h float64) Particle {
	return Particle{
		X:      rng.Float64() * w,
		Y:      rng.Float64() * h,
		Radius: rng.Float64()*radiusSpan + minRadius,
		VX:     rng.Float64()*2*maxSpeed - maxSpeed,
		VY:     rng.Float64()*2*maxSpeed - maxSpeed,
		Color: color.NRGBA{
			R: uint8(colorFloor + rng.IntN(colorSpan)),
			G: uint8(colorFloor + rng.IntN(colorSpan)),
			// blue reaches full intensity so the field leans cool
			B: uint8(colorFloor + rng.IntN(colorSpan+1)),
			A: uint8(math.Round((rng.Float64()*alphaSpan + minAlpha) * 255)),
		},
	}
}

// step moves the particle one frame and wraps it into [0,w) x [0,h).
func (p *Particle) step(w, h float64) {
	p.X = wrap(p.X+p.VX, w)
	p.Y = wrap(p.Y+p.VY, h)
}

// wrap teleports v to the opposite edge when it leaves [0, bound).
func wrap(v, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	if v >= bound {
		return 0
	}
	if v < 0 {
		v += bound
		if v < 0 || v >= bound {
			// rounding, or a step larger than the surface
			return math.Nextafter(bound, 0)
		}
	}
	return v
}
