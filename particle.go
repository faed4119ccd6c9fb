package sandcore

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Particle is one free-flying ballistic effect (spark, debris) composited
// over the grid's pixel buffer. Particles never touch the grid; they are
// purely visual (spec.md §4.5).
type Particle struct {
	X, Y int // integer cell position
	W, H int // width/height in cells; zero means 1x1

	Color RGBA

	VX, VY float64 // velocity, cells per frame
	AX, AY float64 // constant acceleration applied each frame

	AccumX, AccumY float64 // sub-pixel motion accumulators

	Lifetime     float64 // frames remaining
	OriginalLife float64 // initial lifetime, for the fade-window calculation

	// FadeThreshold is the fraction of OriginalLife below which alpha begins
	// to decay toward zero (spec.md glossary: "fade threshold").
	FadeThreshold float64
	InitialAlpha  float64 // stored alpha at birth

	alpha float64      // current computed alpha, written by updateAll
	fade  *gween.Tween // lazily started once Lifetime crosses the fade window
}

// ParticlePool is the fixed-capacity free list of Particle records (component
// E). spawn is O(1) append; dead particles are removed by swap-with-last, so
// the live slice never needs to shift (spec.md invariant 6).
type ParticlePool struct {
	particles []Particle
	alive     int
}

// newParticlePool preallocates a pool of the given capacity. Per-frame
// allocation is zero thereafter (spec.md §5).
func newParticlePool(capacity int) *ParticlePool {
	if capacity <= 0 {
		capacity = 4096
	}
	return &ParticlePool{particles: make([]Particle, capacity)}
}

// spawn appends p to the pool if capacity allows. Returns false (and drops
// the effect) if the pool is already at capacity — callers are expected to
// ignore the failure (spec.md §7).
func (pp *ParticlePool) spawn(p Particle) bool {
	if pp.alive >= len(pp.particles) {
		return false
	}
	if p.W <= 0 {
		p.W = 1
	}
	if p.H <= 0 {
		p.H = 1
	}
	if p.OriginalLife <= 0 {
		p.OriginalLife = p.Lifetime
	}
	if p.InitialAlpha <= 0 {
		p.InitialAlpha = 1
	}
	p.alpha = p.InitialAlpha
	pp.particles[pp.alive] = p
	pp.alive++
	return true
}

// AliveCount returns the number of currently live particles.
func (pp *ParticlePool) AliveCount() int { return pp.alive }

// updateAll advances every live particle by one frame: acceleration into
// velocity, velocity into the sub-pixel accumulator, integer moves extracted
// from the accumulator, lifetime decremented, and alpha recomputed from the
// fade window. Particles whose lifetime expires or that leave the W×H
// bounds are removed by swap-with-last without advancing the scan index
// (spec.md §4.5).
func (pp *ParticlePool) updateAll(w, h int) {
	i := 0
	for i < pp.alive {
		p := &pp.particles[i]

		p.VX += p.AX
		p.VY += p.AY
		p.AccumX += p.VX
		p.AccumY += p.VY

		dx := int(p.AccumX)
		dy := int(p.AccumY)
		p.AccumX -= float64(dx)
		p.AccumY -= float64(dy)
		p.X += dx
		p.Y += dy

		p.Lifetime--

		outOfBounds := p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h
		if p.Lifetime <= 0 || outOfBounds {
			pp.alive--
			pp.particles[i] = pp.particles[pp.alive]
			continue
		}

		p.alpha = fadeAlpha(p)
		i++
	}
}

// fadeAlpha computes the particle's current alpha. Once remaining lifetime
// drops into the fade window (OriginalLife*FadeThreshold), alpha eases from
// InitialAlpha to zero via gween's cubic-out curve instead of a bare linear
// ramp (the window's entry/exit values match spec.md's linear formula
// exactly; only the path between them is eased).
func fadeAlpha(p *Particle) float64 {
	window := p.OriginalLife * p.FadeThreshold
	if window <= 0 || p.Lifetime >= window {
		return p.InitialAlpha
	}
	if p.fade == nil {
		p.fade = gween.New(float32(p.InitialAlpha), 0, float32(window), ease.OutCubic)
	}
	v, _ := p.fade.Update(1)
	return float64(v)
}

// compositeParticles alpha-composites every live particle over the packed
// RGBA8888 frame buffer using "over" blending: out = fg*a + bg*(1-a) per
// channel, output alpha = max(fg_a, bg_a) (spec.md §4.6).
func compositeParticles(frame []uint32, w, h int, pool *ParticlePool) {
	for i := 0; i < pool.alive; i++ {
		p := &pool.particles[i]
		for dy := 0; dy < p.H; dy++ {
			py := p.Y + dy
			if py < 0 || py >= h {
				continue
			}
			for dx := 0; dx < p.W; dx++ {
				px := p.X + dx
				if px < 0 || px >= w {
					continue
				}
				idx := py*w + px
				frame[idx] = compositeOver(frame[idx], p.Color, p.alpha)
			}
		}
	}
}

// compositeOver blends fg (at the given alpha, overriding fg's own alpha
// channel) over the packed background pixel bg.
func compositeOver(bg uint32, fg RGBA, alpha float64) uint32 {
	if alpha <= 0 {
		return bg
	}
	if alpha > 1 {
		alpha = 1
	}
	bgR := uint8(bg >> 24)
	bgG := uint8(bg >> 16)
	bgB := uint8(bg >> 8)
	bgA := uint8(bg)

	blend := func(f, b uint8) uint8 {
		return uint8(float64(f)*alpha + float64(b)*(1-alpha))
	}
	outA := fg.A
	if bgA > outA {
		outA = bgA
	}
	out := RGBA{
		R: blend(fg.R, bgR),
		G: blend(fg.G, bgG),
		B: blend(fg.B, bgB),
		A: outA,
	}
	return out.pack()
}
