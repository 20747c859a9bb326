package entity

import (
	"image/color"
	"math/rand"

	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/render"
)

// ParticleKind selects a particle's motion profile and colour
type ParticleKind uint8

const (
	ParticleExplosion ParticleKind = iota
	ParticleSmoke
	ParticleMuzzle
)

// Particle is a short-lived visual effect
type Particle struct {
	Kind   ParticleKind
	X, Y   float64
	VX, VY float64
	Life   float64
	Decay  float64
	Size   float64
	Color  color.NRGBA
}

// NewParticle builds a particle at p with kind-specific random motion.
func NewParticle(kind ParticleKind, p core.Vec2, rng *rand.Rand) Particle {
	pt := Particle{Kind: kind, X: p.X, Y: p.Y, Life: 1}
	switch kind {
	case ParticleExplosion:
		pt.VX = (rng.Float64() - 0.5) * 6
		pt.VY = (rng.Float64() - 0.5) * 6
		pt.Size = 3 + rng.Float64()*4
		pt.Decay = 0.02 + rng.Float64()*0.02
		if rng.Float64() > 0.5 {
			pt.Color = render.Hex(0xff4500)
		} else {
			pt.Color = render.Hex(0xffa500)
		}
	case ParticleSmoke:
		pt.VX = rng.Float64() - 0.5
		pt.VY = -1 - rng.Float64()*2
		pt.Size = 5 + rng.Float64()*5
		pt.Decay = 0.01
		pt.Color = render.Hex(0x555555)
	case ParticleMuzzle:
		pt.VX = (rng.Float64() - 0.5) * 2
		pt.VY = (rng.Float64() - 0.5) * 2
		pt.Size = 2 + rng.Float64()*3
		pt.Decay = 0.08
		pt.Color = render.Hex(0xffff00)
	}
	return pt
}

func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= p.Decay
	p.VY += core.Gravity
}

func (p *Particle) Dead() bool { return p.Life <= 0 }

func (p *Particle) Draw(dl *render.DrawList) {
	dl.Circle(p.X, p.Y, p.Size, render.WithAlpha(p.Color, p.Life))
}

// DefaultParticleCap bounds the pool so a long session cannot grow it
// without limit.
const DefaultParticleCap = 4096

// ParticlePool owns every live particle regardless of who spawned it.
type ParticlePool struct {
	items []Particle
	cap   int
}

func NewParticlePool(capacity int) *ParticlePool {
	if capacity <= 0 {
		capacity = DefaultParticleCap
	}
	return &ParticlePool{items: make([]Particle, 0, 256), cap: capacity}
}

// Emit adds n particles of kind at p. Emission stops silently at capacity.
func (pp *ParticlePool) Emit(kind ParticleKind, p core.Vec2, n int, rng *rand.Rand) {
	for i := 0; i < n && len(pp.items) < pp.cap; i++ {
		pp.items = append(pp.items, NewParticle(kind, p, rng))
	}
}

// Update advances every particle and drops the dead ones.
func (pp *ParticlePool) Update() {
	kept := pp.items[:0]
	for i := range pp.items {
		pp.items[i].Update()
		if !pp.items[i].Dead() {
			kept = append(kept, pp.items[i])
		}
	}
	pp.items = kept
}

func (pp *ParticlePool) Len() int { return len(pp.items) }

// Count returns the number of live particles of one kind
func (pp *ParticlePool) Count(kind ParticleKind) int {
	n := 0
	for i := range pp.items {
		if pp.items[i].Kind == kind {
			n++
		}
	}
	return n
}

func (pp *ParticlePool) Clear() { pp.items = pp.items[:0] }

func (pp *ParticlePool) Draw(dl *render.DrawList) {
	for i := range pp.items {
		pp.items[i].Draw(dl)
	}
}
