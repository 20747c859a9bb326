package entity

import (
	"math/rand"

	"github.com/1siamBot/dogfight/engine/core"
)

// Arena owns every entity in play.
type Arena struct {
	Field     core.Rect
	Atlas     *core.Atlas
	Ally      *Plane
	Enemies   []*Plane
	Clouds    []Cloud
	Particles *ParticlePool
	PowerUps  []*PowerUp

	ids core.IDSource
}

// NewArena builds the ally and the cloud layer for a w x h playfield.
func NewArena(w, h float64, atlas *core.Atlas, rng *rand.Rand) *Arena {
	a := &Arena{
		Field:     core.Rect{W: w, H: h},
		Atlas:     atlas,
		Particles: NewParticlePool(DefaultParticleCap),
	}
	start := a.AllyStart()
	a.Ally = NewPlane(a.ids.Next(), core.TeamAlly, start.X, start.Y, atlas)
	for i := 0; i < core.CloudCount; i++ {
		a.Clouds = append(a.Clouds, NewCloud(a.Field, rng))
	}
	return a
}

// AllyStart is where the ally begins each session
func (a *Arena) AllyStart() core.Vec2 {
	return core.Vec2{X: core.AllyStartX, Y: a.Field.H/2 - core.AllyStartYOffset}
}

// AllyBounds is the box the ally's origin may move within.
func (a *Arena) AllyBounds() core.Rect {
	top := core.AllyMarginTop
	bottom := a.Field.H - a.Ally.H - core.AllyMarginBottom
	return core.Rect{
		X: core.AllyMarginLeft,
		Y: top,
		W: a.Field.W/2 - core.AllyMarginLeft,
		H: max(0, bottom-top),
	}
}

// SpawnEnemy adds an enemy at the right edge at height y.
func (a *Arena) SpawnEnemy(y float64) *Plane {
	p := NewPlane(a.ids.Next(), core.TeamEnemy, a.Field.W-core.EnemySpawnInset, y, a.Atlas)
	a.Enemies = append(a.Enemies, p)
	return p
}

// AddEnemy places an enemy at an exact position.
func (a *Arena) AddEnemy(x, y float64) *Plane {
	p := NewPlane(a.ids.Next(), core.TeamEnemy, x, y, a.Atlas)
	a.Enemies = append(a.Enemies, p)
	return p
}

// SpawnPowerUp adds a pickup at the right edge at height y.
func (a *Arena) SpawnPowerUp(y float64, rng *rand.Rand) *PowerUp {
	p := NewPowerUp(a.ids.Next(), a.Field.W-core.PowerUpInset, y, rng)
	a.PowerUps = append(a.PowerUps, p)
	return p
}

// Plane finds the ally or an enemy by id.
func (a *Arena) Plane(id core.EntityID) *Plane {
	if a.Ally.ID == id {
		return a.Ally
	}
	for _, e := range a.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// RemoveEnemy drops an enemy by id and reports whether it was present.
func (a *Arena) RemoveEnemy(id core.EntityID) bool {
	for i, e := range a.Enemies {
		if e.ID == id {
			a.Enemies = append(a.Enemies[:i], a.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// UpdatePowerUps drifts pickups and drops those past the left edge.
func (a *Arena) UpdatePowerUps() {
	kept := a.PowerUps[:0]
	for _, p := range a.PowerUps {
		p.Update()
		if !p.Gone() && !p.Collected {
			kept = append(kept, p)
		}
	}
	a.PowerUps = kept
}

// UpdateClouds drifts the cloud layer.
func (a *Arena) UpdateClouds(rng *rand.Rand) {
	for i := range a.Clouds {
		a.Clouds[i].Update(a.Field, rng)
	}
}

// Reset returns the arena to the start of a session. Clouds are kept.
func (a *Arena) Reset() {
	start := a.AllyStart()
	a.Ally.Reset(start.X, start.Y)
	a.Enemies = a.Enemies[:0]
	a.PowerUps = a.PowerUps[:0]
	a.Particles.Clear()
}
