package ai

import (
	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/entity"
)

// Difficulty scales how trigger-happy enemy pilots are
type Difficulty int

const (
	DiffEasy Difficulty = iota
	DiffMedium
	DiffHard
)

// ParseDifficulty maps a config string to a level, defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return DiffEasy
	case "hard":
		return DiffHard
	}
	return DiffMedium
}

func (d Difficulty) String() string {
	return [...]string{"easy", "medium", "hard"}[d]
}

// Controller flies every enemy plane.
type Controller struct {
	Difficulty  Difficulty
	TrackFactor float64
	DeadZone    float64
	DriftFactor float64
	FireChance  float64
	EscapeX     float64
}

func NewController(diff Difficulty) *Controller {
	fire := core.AIFireChance
	switch diff {
	case DiffEasy:
		fire *= 0.5
	case DiffHard:
		fire *= 1.5
	}
	return &Controller{
		Difficulty:  diff,
		TrackFactor: core.AITrackFactor,
		DeadZone:    core.AIDeadZone,
		DriftFactor: core.AIDriftFactor,
		FireChance:  fire,
		EscapeX:     core.AIEscapeX,
	}
}

// Update steers, fires and retires enemies. Planes that fly past the left
// edge are removed from the arena; the number removed is returned so the
// caller can credit the enemy side.
func (c *Controller) Update(t *entity.Tick, a *entity.Arena) (escaped int) {
	targetY := a.Ally.Y
	kept := a.Enemies[:0]
	for _, p := range a.Enemies {
		switch {
		case p.Y < targetY-c.DeadZone:
			p.Y += p.Speed * c.TrackFactor
		case p.Y > targetY+c.DeadZone:
			p.Y -= p.Speed * c.TrackFactor
		}
		p.X -= p.Speed * c.DriftFactor

		if t.Rand.Float64() < c.FireChance {
			p.Shoot(t)
		}

		if p.X < c.EscapeX {
			// a wreck drifting off the edge was already scored as a kill
			if !p.Wrecked() {
				escaped++
			}
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(a.Enemies); i++ {
		a.Enemies[i] = nil
	}
	a.Enemies = kept
	return escaped
}
